package api

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/dlmiddlecote/sqlstats"
	"github.com/dropbox/godropbox/time2"
	"github.com/kat-co/vala"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github/custodia/signing-service/internal/approver"
	"github/custodia/signing-service/internal/cache"
	"github/custodia/signing-service/internal/chain"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/engine"
	"github/custodia/signing-service/internal/intake"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/maestro"
	"github/custodia/signing-service/internal/metrics"
	"github/custodia/signing-service/internal/nonce"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/policy"
	"github/custodia/signing-service/internal/replacement"
	"github/custodia/signing-service/internal/selector"
	"github/custodia/signing-service/internal/sponsored"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirements for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if useMock {
		clock = time2.NewMockClock(time.Now())
	} else {
		clock = time2.DefaultClock
	}

	return clock
}

// NewDB opens the database connection pool and exposes its stats as
// prometheus metrics.
func NewDB(cfg config.Server) (*sql.DB, error) {
	dbCfg := cfg.Database

	if err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(dbCfg.Host, "host"),
		vala.GreaterThan(dbCfg.Port, 0, "port"),
		vala.StringNotEmpty(dbCfg.Username, "username"),
		vala.StringNotEmpty(dbCfg.Database, "database"),
	).Check(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	db, err := sql.Open("postgres", dbCfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	db.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)

	collector := sqlstats.NewStatsCollector(dbCfg.Database, db)
	if err := prometheus.Register(collector); err != nil {
		// already registered when the server restarts within the same process, e.g. in tests
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			return nil, fmt.Errorf("failed to register database stats collector: %w", err)
		}
	}

	return db, nil
}

func NewRedisClient(cfg config.Server) (*redis.Client, error) {
	client := cache.NewRedisClient(cfg.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

func NewLocker(cfg config.Server, rdb *redis.Client) *cache.Locker {
	return cache.NewLocker(rdb, cfg.Redis.LockTTL)
}

func NewMaestroClient(cfg config.Server, m *metrics.Service) *maestro.Client {
	return maestro.NewClient(cfg.Maestro, m)
}

func NewRPCPool(cfg config.Server) *chain.RPCPool {
	return chain.NewRPCPool(cfg.Chain)
}

func NewFeeService(cfg config.Server, pool *chain.RPCPool, c *cache.Cache) *chain.FeeService {
	return chain.NewFeeService(pool, c, cfg.Redis.FeeCacheTTL)
}

func NewMonitor(cfg config.Server, orders *order.Store, pool *chain.RPCPool, clock time2.Clock) *chain.Monitor {
	return chain.NewMonitor(cfg.Engine, orders, pool, clock)
}

func NewSelector(cfg config.Server, orders *order.Store, ledger *nonce.Ledger, keyDir *keys.Directory, locker *cache.Locker, clock time2.Clock) *selector.Selector {
	return selector.New(cfg.Engine, orders, ledger, keyDir, locker, clock)
}

func NewCoordinator(cfg config.Server, orders *order.Store, policies *policy.Resolver, signer *maestro.Client, bus *approver.Bus, clock time2.Clock) *approver.Coordinator {
	return approver.NewCoordinator(cfg.Engine, orders, policies, signer, bus, clock)
}

func NewBundler(cfg config.Server, orders *order.Store, keyDir *keys.Directory, fees *chain.FeeService, approvals *approver.Coordinator) *sponsored.Bundler {
	return sponsored.NewBundler(cfg.Engine, orders, keyDir, fees, approvals)
}

func NewSponsoredService(cfg config.Server, orders *order.Store, keyDir *keys.Directory, sponsors *sponsored.ConfigStore, approvals *approver.Coordinator) *sponsored.Service {
	return sponsored.NewService(cfg.Engine, orders, keyDir, sponsors, approvals)
}

func NewIntakeService(cfg config.Server, orders *order.Store, keyDir *keys.Directory, approvals *approver.Coordinator) *intake.Service {
	return intake.NewService(cfg.Engine, orders, keyDir, approvals)
}

func NewReplacementService(orders *order.Store, approvals *approver.Coordinator) *replacement.Service {
	return replacement.NewService(orders, approvals)
}

func NewEngine(
	cfg config.Server,
	orders *order.Store,
	sel *selector.Selector,
	monitor *chain.Monitor,
	approvals *approver.Coordinator,
	bus *approver.Bus,
	bundler *sponsored.Bundler,
	creator *keys.Creator,
	signer *maestro.Client,
	submitter *chain.Submitter,
) *engine.Engine {
	return engine.New(cfg.Engine, orders, sel, monitor, approvals, bus, bundler, creator, signer, submitter)
}

func NoTest() []*testing.T {
	return nil
}
