package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"github/custodia/signing-service/internal/config"
)

const migrationsDir = "migrations"

func newMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Executes all migrations which are not yet applied.",
		Run: func(_ *cobra.Command, _ []string) {
			n, err := applyMigrations()
			if err != nil {
				log.Fatal().Err(err).Msg("Error while applying migrations")
			}

			log.Info().Int("appliedMigrations", n).Msg("Applied migrations.")
		},
	}
}

func applyMigrations() (int, error) {
	cfg := config.DefaultServiceConfigFromEnv()

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return 0, fmt.Errorf("failed to ping database: %w", err)
	}

	migrations := &migrate.FileMigrationSource{Dir: migrationsDir}

	return migrate.Exec(db, "postgres", migrations, migrate.Up)
}
