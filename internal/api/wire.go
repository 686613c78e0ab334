//go:build wireinject

//go:generate wire

package api

import (
	"database/sql"
	"testing"

	"github.com/google/wire"
	"github/custodia/signing-service/internal/approver"
	"github/custodia/signing-service/internal/cache"
	"github/custodia/signing-service/internal/chain"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/metrics"
	"github/custodia/signing-service/internal/nonce"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/policy"
	"github/custodia/signing-service/internal/sponsored"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewClock,
	NewRedisClient,
	cache.New,
	NewLocker,
	metrics.New,
	order.NewStore,
	nonce.NewLedger,
	keys.NewDirectory,
	keys.NewCreator,
	policy.NewResolver,
	sponsored.NewConfigStore,
	NewMaestroClient,
	NewRPCPool,
	NewFeeService,
	chain.NewBalanceService,
	chain.NewSubmitter,
	chain.NewReconciler,
	NewMonitor,
	NewSelector,
	approver.NewBus,
	NewCoordinator,
	NewReplacementService,
	NewIntakeService,
	NewSponsoredService,
	NewBundler,
	NewEngine,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewDB, NoTest)
	return new(Server), nil
}

// InitNewServerWithDB returns a new Server instance with the given DB instance.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithDB(
	_ config.Server,
	_ *sql.DB,
	t ...*testing.T,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
