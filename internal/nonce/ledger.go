package nonce

import (
	"context"
	"database/sql"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/util"
	dbutil "github/custodia/signing-service/internal/util/db"
)

// ErrConflict is returned when the stored nonce no longer matches the
// expected value, meaning another worker advanced the ledger first.
var ErrConflict = errors.New("nonce ledger conflict")

// Ledger tracks the next nonce to issue per (address, chain_id). The value is
// advanced only after chain confirmation, gated on the expected current value.
type Ledger struct {
	db    *sql.DB
	clock time2.Clock
}

func NewLedger(db *sql.DB, clock time2.Clock) *Ledger {
	return &Ledger{
		db:    db,
		clock: clock,
	}
}

// Next returns the next nonce to issue for the address on the chain,
// initializing the row to zero when absent.
func (l *Ledger) Next(ctx context.Context, address string, chainID int64) (int64, error) {
	var current int64

	err := dbutil.WithTransaction(ctx, l.db, func(exec boil.ContextExecutor) error {
		row, err := models.Nonces(
			models.NonceWhere.Address.EQ(address),
			models.NonceWhere.ChainID.EQ(chainID),
			qm.For("UPDATE"),
		).One(ctx, exec)
		if err == nil {
			current = row.Nonce
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return errors.Wrap(err, "failed to load nonce row")
		}

		now := l.clock.Now()
		row = &models.Nonce{
			Address:        address,
			ChainID:        chainID,
			Nonce:          0,
			CreatedAt:      now,
			LastModifiedAt: now,
		}
		if err := row.Insert(ctx, exec, boil.Infer()); err != nil {
			return errors.Wrap(err, "failed to initialize nonce row")
		}

		current = 0
		return nil
	})
	if err != nil {
		return 0, err
	}

	return current, nil
}

// Advance increments the stored nonce by one, recording the confirmed
// transaction hash. The update is gated on the stored value still being
// expected; ErrConflict means a concurrent worker advanced it first.
func (l *Ledger) Advance(ctx context.Context, address string, chainID int64, expected int64, transactionHash string) error {
	rowsAff, err := models.Nonces(
		models.NonceWhere.Address.EQ(address),
		models.NonceWhere.ChainID.EQ(chainID),
		models.NonceWhere.Nonce.EQ(expected),
	).UpdateAll(ctx, l.db, models.M{
		models.NonceColumns.Nonce:           expected + 1,
		models.NonceColumns.TransactionHash: null.StringFrom(transactionHash),
		models.NonceColumns.LastModifiedAt:  l.clock.Now(),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to advance nonce for %s on chain %d", address, chainID)
	}

	if rowsAff != 1 {
		return ErrConflict
	}

	util.LogFromContext(ctx).Info().
		Str("address", address).
		Int64("chain_id", chainID).
		Int64("nonce", expected+1).
		Msg("Advanced nonce ledger")

	return nil
}

// Reset overwrites the stored nonce, used by admin reconciliation after
// dropped transactions. Creates the row when absent.
func (l *Ledger) Reset(ctx context.Context, address string, chainID int64, value int64) error {
	return dbutil.WithTransaction(ctx, l.db, func(exec boil.ContextExecutor) error {
		now := l.clock.Now()

		row, err := models.Nonces(
			models.NonceWhere.Address.EQ(address),
			models.NonceWhere.ChainID.EQ(chainID),
			qm.For("UPDATE"),
		).One(ctx, exec)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return errors.Wrap(err, "failed to load nonce row")
			}

			row = &models.Nonce{
				Address:        address,
				ChainID:        chainID,
				Nonce:          value,
				CreatedAt:      now,
				LastModifiedAt: now,
			}

			return errors.Wrap(row.Insert(ctx, exec, boil.Infer()), "failed to insert nonce row")
		}

		row.Nonce = value
		row.LastModifiedAt = now

		_, err = row.Update(ctx, exec, boil.Whitelist(
			models.NonceColumns.Nonce,
			models.NonceColumns.LastModifiedAt,
		))

		return errors.Wrap(err, "failed to reset nonce row")
	})
}
