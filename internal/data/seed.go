package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github/custodia/signing-service/internal/data/fixtures"
	"github/custodia/signing-service/internal/util/db"
)

// ApplyFixtures upserts the full development fixture set within a single
// transaction.
func ApplyFixtures(ctx context.Context, database *sql.DB) error {
	return db.WithTransaction(ctx, database, func(tx boil.ContextExecutor) error {
		for _, fixture := range fixtures.Inserts() {
			if err := fixture.Upsert(ctx, tx, true, nil, boil.Infer(), boil.Infer()); err != nil {
				return fmt.Errorf("failed to upsert fixture: %w", err)
			}
		}

		return nil
	})
}
