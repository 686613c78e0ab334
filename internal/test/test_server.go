package test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/router"
	"github/custodia/signing-service/internal/config"
)

// WithTestServer runs the closure against a fully initialized server wired to
// the test database. Requires a reachable redis besides TEST_DATABASE_DSN.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestDatabase(t, func(db *sql.DB) {
		cfg := config.DefaultServiceConfigFromEnv()
		cfg.Echo.ListenAddress = ":0"

		execClosureNewTestServer(t, cfg, db, closure)
	})
}

func execClosureNewTestServer(t *testing.T, cfg config.Server, db *sql.DB, closure func(s *api.Server)) {
	t.Helper()

	s, err := api.InitNewServerWithDB(cfg, db, t)
	require.NoError(t, err)

	router.Init(s)

	closure(s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// connections are owned by WithTestDatabase, ignore shutdown errors
	_ = s.Shutdown(ctx)
}
