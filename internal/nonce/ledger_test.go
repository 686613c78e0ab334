package nonce_test

import (
	"database/sql"
	"testing"

	"github.com/dropbox/godropbox/time2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/data/fixtures"
	"github/custodia/signing-service/internal/nonce"
	"github/custodia/signing-service/internal/test"
)

func TestLedgerNextInitializesRow(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		ledger := nonce.NewLedger(db, time2.DefaultClock)

		next, err := ledger.Next(ctx, "0x000000000000000000000000000000000000beef", 1)
		require.NoError(t, err)
		assert.EqualValues(t, 0, next)

		// the row persists, a second read does not re-initialize
		next, err = ledger.Next(ctx, "0x000000000000000000000000000000000000beef", 1)
		require.NoError(t, err)
		assert.EqualValues(t, 0, next)
	})
}

func TestLedgerAdvanceGatesOnExpectedValue(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		ledger := nonce.NewLedger(db, time2.DefaultClock)

		err := ledger.Advance(ctx, fixtures.Key1Address, 11155111, 0, "0xaa")
		require.NoError(t, err)

		// a second worker confirming the same nonce finds the ledger moved
		err = ledger.Advance(ctx, fixtures.Key1Address, 11155111, 0, "0xbb")
		require.ErrorIs(t, err, nonce.ErrConflict)

		next, err := ledger.Next(ctx, fixtures.Key1Address, 11155111)
		require.NoError(t, err)
		assert.EqualValues(t, 1, next)
	})
}

func TestLedgerResetOverwrites(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		ledger := nonce.NewLedger(db, time2.DefaultClock)

		require.NoError(t, ledger.Reset(ctx, fixtures.Key1Address, 11155111, 7))

		next, err := ledger.Next(ctx, fixtures.Key1Address, 11155111)
		require.NoError(t, err)
		assert.EqualValues(t, 7, next)

		// resets also create missing rows
		require.NoError(t, ledger.Reset(ctx, "0x000000000000000000000000000000000000cafe", 1, 3))

		next, err = ledger.Next(ctx, "0x000000000000000000000000000000000000cafe", 1)
		require.NoError(t, err)
		assert.EqualValues(t, 3, next)
	})
}
