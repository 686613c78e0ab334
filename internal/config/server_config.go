package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github/custodia/signing-service/internal/util"
)

// Database holds the PostgreSQL connection settings.
type Database struct {
	Host             string
	Port             int
	Username         string
	Password         string `json:"-"` // sensitive
	Database         string
	AdditionalParams map[string]string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
}

// ConnectionString generates a connection string to be passed to sql.Open.
func (c Database) ConnectionString() string {
	parts := []string{
		fmt.Sprintf("host=%s", c.Host),
		fmt.Sprintf("port=%d", c.Port),
		fmt.Sprintf("user=%s", c.Username),
		fmt.Sprintf("dbname=%s", c.Database),
	}

	if c.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", c.Password))
	}

	params := make([]string, 0, len(c.AdditionalParams))
	for k, v := range c.AdditionalParams {
		params = append(params, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(params)

	return strings.Join(append(parts, params...), " ")
}

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
	EnableSecureMiddleware         bool
}

type AuthServer struct {
	JWTSecret     string `json:"-"` // sensitive
	ClientIDClaim string
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogRequestHeader   bool
	LogRequestQuery    bool
	LogResponseBody    bool
	LogResponseHeader  bool
	PrettyPrintConsole bool
}

type ManagementServer struct {
	Secret                  string `json:"-"` // sensitive
	ReadinessTimeout        time.Duration
	LivenessTimeout         time.Duration
	ProbeWriteablePathsAbs  []string
	ProbeWriteableTouchfile string
}

// Maestro configures the signer authority client.
type Maestro struct {
	URL            string
	TenantName     string
	ServiceName    string
	APIKey         string `json:"-"` // sensitive
	RequestTimeout time.Duration
}

// Chain configures RPC access per supported chain.
type Chain struct {
	RPCEndpoints      map[int64][]string
	RequestTimeout    time.Duration
	ConfirmationDepth int64
}

// Redis configures the cache and the selector address locks.
type Redis struct {
	Endpoint    string
	Password    string `json:"-"` // sensitive
	LockTTL     time.Duration
	FeeCacheTTL time.Duration
	KeyCacheTTL time.Duration
}

// Engine configures the order lifecycle workers.
type Engine struct {
	SelectorInterval      time.Duration
	SelectorOrderAge      time.Duration
	MonitorInterval       time.Duration
	LastModifiedThreshold time.Duration
	ApprovalTimeout       time.Duration
	ApprovalSweepInterval time.Duration
	SponsoredWrapperGas   uint64
	DefaultOrderVersion   string
}

type Server struct {
	Database   Database
	Echo       EchoServer
	Logger     LoggerServer
	Auth       AuthServer
	Management ManagementServer
	Maestro    Maestro
	Chain      Chain
	Redis      Redis
	Engine     Engine
}

var (
	config     Server
	configOnce sync.Once
)

// DefaultServiceConfigFromEnv returns the server config as parsed from the environment.
// The config is cached after the first call.
func DefaultServiceConfigFromEnv() Server {
	configOnce.Do(func() {
		util.DotEnvTryLoad(util.GetEnv("DOTENV_FILE", ".env.local"))

		config = Server{
			Database: Database{
				Host:     util.GetEnv("PGHOST", "postgres"),
				Port:     util.GetEnvAsInt("PGPORT", 5432),
				Username: util.GetEnv("PGUSER", "dbuser"),
				Password: util.GetEnv("PGPASSWORD", ""),
				Database: util.GetEnv("PGDATABASE", "development"),
				AdditionalParams: map[string]string{
					"sslmode": util.GetEnv("PGSSLMODE", "disable"),
				},
				MaxOpenConns:    util.GetEnvAsInt("DB_MAX_OPEN_CONNS", 30),
				MaxIdleConns:    util.GetEnvAsInt("DB_MAX_IDLE_CONNS", 15),
				ConnMaxLifetime: time.Second * time.Duration(util.GetEnvAsInt("DB_CONN_MAX_LIFETIME_SEC", 900)),
			},
			Echo: EchoServer{
				Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
				ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
				HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
				BaseURL:                        util.GetEnv("SERVER_ECHO_BASE_URL", "http://localhost:8080"),
				EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
				EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
				EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
				EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
				EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
				EnableSecureMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_SECURE_MIDDLEWARE", true),
			},
			Logger: LoggerServer{
				Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
				RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
				LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
				LogRequestHeader:   util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_HEADER", false),
				LogRequestQuery:    util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_QUERY", false),
				LogResponseBody:    util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_BODY", false),
				LogResponseHeader:  util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_HEADER", false),
				PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
			},
			Auth: AuthServer{
				JWTSecret:     util.GetEnv("SERVER_AUTH_JWT_SECRET", ""),
				ClientIDClaim: util.GetEnv("SERVER_AUTH_CLIENT_ID_CLAIM", "client_id"),
			},
			Management: ManagementServer{
				Secret:                  util.GetMgmtSecret("SERVER_MANAGEMENT_SECRET"),
				ReadinessTimeout:        time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_READINESS_TIMEOUT_SEC", 4)),
				LivenessTimeout:         time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_LIVENESS_TIMEOUT_SEC", 9)),
				ProbeWriteablePathsAbs:  util.GetEnvAsStringArr("SERVER_MANAGEMENT_PROBE_WRITEABLE_PATHS_ABS", []string{"/app/assets/mnt"}, ","),
				ProbeWriteableTouchfile: util.GetEnv("SERVER_MANAGEMENT_PROBE_WRITEABLE_TOUCHFILE", ".healthy"),
			},
			Maestro: Maestro{
				URL:            util.GetEnv("SERVER_MAESTRO_URL", "http://maestro:9000"),
				TenantName:     util.GetEnv("SERVER_MAESTRO_TENANT_NAME", "custodia"),
				ServiceName:    util.GetEnv("SERVER_MAESTRO_SERVICE_NAME", "signing-service"),
				APIKey:         util.GetEnv("SERVER_MAESTRO_API_KEY", ""),
				RequestTimeout: time.Second * time.Duration(util.GetEnvAsInt("SERVER_MAESTRO_REQUEST_TIMEOUT_SEC", 15)),
			},
			Chain: Chain{
				RPCEndpoints:      util.GetEnvAsChainEndpoints("SERVER_CHAIN_RPC_ENDPOINTS", nil),
				RequestTimeout:    time.Second * time.Duration(util.GetEnvAsInt("SERVER_CHAIN_REQUEST_TIMEOUT_SEC", 10)),
				ConfirmationDepth: int64(util.GetEnvAsInt("SERVER_CHAIN_CONFIRMATION_DEPTH", 12)),
			},
			Redis: Redis{
				Endpoint:    util.GetEnv("SERVER_REDIS_ENDPOINT", "redis:6379"),
				Password:    util.GetEnv("SERVER_REDIS_PASSWORD", ""),
				LockTTL:     time.Second * time.Duration(util.GetEnvAsInt("SERVER_REDIS_LOCK_TTL_SEC", 60)),
				FeeCacheTTL: time.Second * time.Duration(util.GetEnvAsInt("SERVER_REDIS_FEE_CACHE_TTL_SEC", 15)),
				KeyCacheTTL: time.Second * time.Duration(util.GetEnvAsInt("SERVER_REDIS_KEY_CACHE_TTL_SEC", 300)),
			},
			Engine: Engine{
				SelectorInterval:      time.Second * time.Duration(util.GetEnvAsInt("SERVER_ENGINE_SELECTOR_INTERVAL_SEC", 5)),
				SelectorOrderAge:      time.Second * time.Duration(util.GetEnvAsInt("SERVER_ENGINE_SELECTOR_ORDER_AGE_SEC", 90)),
				MonitorInterval:       time.Second * time.Duration(util.GetEnvAsInt("SERVER_ENGINE_MONITOR_INTERVAL_SEC", 30)),
				LastModifiedThreshold: time.Second * time.Duration(util.GetEnvAsInt("SERVER_ENGINE_LAST_MODIFIED_THRESHOLD_SEC", 300)),
				ApprovalTimeout:       time.Second * time.Duration(util.GetEnvAsInt("SERVER_ENGINE_APPROVAL_TIMEOUT_SEC", 86400)),
				ApprovalSweepInterval: time.Second * time.Duration(util.GetEnvAsInt("SERVER_ENGINE_APPROVAL_SWEEP_INTERVAL_SEC", 60)),
				SponsoredWrapperGas:   uint64(util.GetEnvAsInt("SERVER_ENGINE_SPONSORED_WRAPPER_GAS", 200000)),
				DefaultOrderVersion:   util.GetEnv("SERVER_ENGINE_DEFAULT_ORDER_VERSION", "1"),
			},
		}
	})

	return config
}
