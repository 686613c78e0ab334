package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
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
	"github/custodia/signing-service/internal/util"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

type Router struct {
	Routes      []*echo.Route
	Root        *echo.Group
	Management  *echo.Group
	APIV1Keys   *echo.Group
	APIV1Orders *echo.Group
	APIV1Chains *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config       config.Server
	DB           *sql.DB
	Redis        *redis.Client
	Clock        time2.Clock
	Cache        *cache.Cache
	Locker       *cache.Locker
	Metrics      *metrics.Service
	Orders       *order.Store
	Ledger       *nonce.Ledger
	Keys         *keys.Directory
	Creator      *keys.Creator
	Policies     *policy.Resolver
	Sponsors     *sponsored.ConfigStore
	Maestro      *maestro.Client
	Pool         *chain.RPCPool
	Fees         *chain.FeeService
	Balances     *chain.BalanceService
	Submitter    *chain.Submitter
	Reconciler   *chain.Reconciler
	Monitor      *chain.Monitor
	Selector     *selector.Selector
	Approvals    *approver.Coordinator
	Bus          *approver.Bus
	Replacements *replacement.Service
	Intake       *intake.Service
	Sponsored    *sponsored.Service
	Bundler      *sponsored.Bundler
	Engine       *engine.Engine
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	db *sql.DB,
	rdb *redis.Client,
	clock time2.Clock,
	redisCache *cache.Cache,
	locker *cache.Locker,
	metrics *metrics.Service,
	orders *order.Store,
	ledger *nonce.Ledger,
	keyDir *keys.Directory,
	creator *keys.Creator,
	policies *policy.Resolver,
	sponsors *sponsored.ConfigStore,
	signer *maestro.Client,
	pool *chain.RPCPool,
	fees *chain.FeeService,
	balances *chain.BalanceService,
	submitter *chain.Submitter,
	reconciler *chain.Reconciler,
	monitor *chain.Monitor,
	sel *selector.Selector,
	approvals *approver.Coordinator,
	bus *approver.Bus,
	replacements *replacement.Service,
	intakeService *intake.Service,
	sponsoredService *sponsored.Service,
	bundler *sponsored.Bundler,
	eng *engine.Engine,
) *Server {
	return &Server{
		Config:       cfg,
		DB:           db,
		Redis:        rdb,
		Clock:        clock,
		Cache:        redisCache,
		Locker:       locker,
		Metrics:      metrics,
		Orders:       orders,
		Ledger:       ledger,
		Keys:         keyDir,
		Creator:      creator,
		Policies:     policies,
		Sponsors:     sponsors,
		Maestro:      signer,
		Pool:         pool,
		Fees:         fees,
		Balances:     balances,
		Submitter:    submitter,
		Reconciler:   reconciler,
		Monitor:      monitor,
		Selector:     sel,
		Approvals:    approvals,
		Bus:          bus,
		Replacements: replacements,
		Intake:       intakeService,
		Sponsored:    sponsoredService,
		Bundler:      bundler,
		Engine:       eng,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Engine != nil {
		log.Debug().Msg("Stopping order engine")
		s.Engine.Stop()
	}

	if s.DB != nil {
		log.Debug().Msg("Closing database connection")

		if err := s.DB.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			log.Error().Err(err).Msg("Failed to close database connection")
			errs = append(errs, err)
		}
	}

	if s.Redis != nil {
		log.Debug().Msg("Closing redis connection")

		if err := s.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis connection")
			errs = append(errs, err)
		}
	}

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
