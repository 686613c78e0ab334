package db

import (
	"context"
	"database/sql"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/util"
)

// TxFn is the signature of a function running within a database transaction.
type TxFn func(boil.ContextExecutor) error

// WithTransaction wraps the given function in a transaction, rolling back on
// error or panic and committing otherwise.
func WithTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback(); txErr != nil {
				util.LogFromContext(ctx).Warn().Err(txErr).Msg("Failed to roll back transaction after recovered panic")
			}

			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if txErr := tx.Rollback(); txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			util.LogFromContext(ctx).Warn().Err(txErr).Msg("Failed to roll back transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
