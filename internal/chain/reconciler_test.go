package chain_test

import (
	"database/sql"
	"testing"

	"github.com/dropbox/godropbox/time2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/chain"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/data/fixtures"
	"github/custodia/signing-service/internal/nonce"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/test"
)

func newTestReconciler(db *sql.DB) (*chain.Reconciler, *order.Store, *nonce.Ledger) {
	store := order.NewStore(db, time2.DefaultClock)
	ledger := nonce.NewLedger(db, time2.DefaultClock)
	pool := chain.NewRPCPool(config.DefaultServiceConfigFromEnv().Chain)

	return chain.NewReconciler(store, ledger, pool), store, ledger
}

func TestHandleIncludedIgnoresTerminalOrders(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		rec, store, ledger := newTestReconciler(db)
		fix := fixtures.Fixtures()
		hash := fix.Client1SignatureOrder.TransactionHash.String

		require.NoError(t, store.Transition(ctx, fix.Client1SignatureOrder.ID, order.StateCompleted, nil))

		// re-delivery after the order terminated must not touch anything,
		// in particular not the nonce ledger
		err := rec.HandleIncluded(ctx, &chain.IncludedEvent{Hash: hash, ChainID: 11155111})
		require.NoError(t, err)

		o, err := store.GetByID(ctx, fix.Client1SignatureOrder.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateCompleted), o.State)

		next, err := ledger.Next(ctx, fixtures.Key1Address, 11155111)
		require.NoError(t, err)
		assert.EqualValues(t, 0, next)
	})
}

func TestHandleIncludedIgnoresUnknownTransaction(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		rec, _, _ := newTestReconciler(db)

		err := rec.HandleIncluded(t.Context(), &chain.IncludedEvent{
			Hash:    "0x000000000000000000000000000000000000000000000000000000000000dead",
			ChainID: 11155111,
		})
		require.NoError(t, err)
	})
}

func TestHandleReorgDefaultsToReorged(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		rec, store, _ := newTestReconciler(db)
		fix := fixtures.Fixtures()

		affected, err := rec.HandleReorg(ctx, &chain.ReorgEvent{
			ChainID:           11155111,
			TransactionHashes: []string{fix.Client1SignatureOrder.TransactionHash.String},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		o, err := store.GetByID(ctx, fix.Client1SignatureOrder.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateReorged), o.State)
	})
}

func TestHandleReorgAppliesWatcherState(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		rec, store, _ := newTestReconciler(db)
		fix := fixtures.Fixtures()

		// a reorg that re-included the transaction lands the order in the
		// state the watcher computed instead of REORGED
		affected, err := rec.HandleReorg(ctx, &chain.ReorgEvent{
			ChainID:           11155111,
			TransactionHashes: []string{fix.Client1SignatureOrder.TransactionHash.String},
			NewState:          order.StateCompleted,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		o, err := store.GetByID(ctx, fix.Client1SignatureOrder.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateCompleted), o.State)
	})
}
