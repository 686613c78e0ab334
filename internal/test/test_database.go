package test

import (
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/data"
)

// WithTestDatabase runs the closure against the database named by
// TEST_DATABASE_DSN, fully migrated and seeded with the fixture set.
// The test is skipped when no test database is configured.
func WithTestDatabase(t *testing.T, closure func(db *sql.DB)) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set, skipping database test")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := t.Context()
	require.NoError(t, db.PingContext(ctx))

	migrations := &migrate.FileMigrationSource{Dir: migrationsDir(t)}
	_, err = migrate.Exec(db, "postgres", migrations, migrate.Up)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "TRUNCATE orders, keys, nonces, address_policies, sponsor_addresses")
	require.NoError(t, err)

	require.NoError(t, data.ApplyFixtures(ctx, db))

	closure(db)
}

func migrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "failed to resolve test helper source path")

	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}
