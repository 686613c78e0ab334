package order_test

import (
	"database/sql"
	"testing"

	"github.com/dropbox/godropbox/time2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/data/fixtures"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/test"
)

func TestTransitionRejectsIllegalMove(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		store := order.NewStore(db, time2.DefaultClock)
		fix := fixtures.Fixtures()

		// the fixture signature order sits in SUBMITTED
		err := store.Transition(ctx, fix.Client1SignatureOrder.ID, order.StateSigned, nil)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		o, err := store.GetByID(ctx, fix.Client1SignatureOrder.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateSubmitted), o.State)
	})
}

func TestTransitionIsConditionalOnCurrentState(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		store := order.NewStore(db, time2.DefaultClock)
		fix := fixtures.Fixtures()

		require.NoError(t, store.Transition(ctx, fix.Client1SignatureOrder.ID, order.StateCompleted, nil))

		// a second worker applying the same transition loses the race
		err := store.Transition(ctx, fix.Client1SignatureOrder.ID, order.StateCompleted, nil)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		// terminal states never move again
		err = store.Transition(ctx, fix.Client1SignatureOrder.ID, order.StateSubmitted, nil)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		o, err := store.GetByID(ctx, fix.Client1SignatureOrder.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateCompleted), o.State)
	})
}

func TestReorgByTransactionHashesAppliesTargetState(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		store := order.NewStore(db, time2.DefaultClock)
		fix := fixtures.Fixtures()
		hash := fix.Client1SignatureOrder.TransactionHash.String
		chainID := fix.Client1SignatureOrder.ChainID.Int64

		affected, err := store.ReorgByTransactionHashes(ctx, chainID, []string{hash}, order.StateReorged)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		o, err := store.GetByID(ctx, fix.Client1SignatureOrder.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateReorged), o.State)

		// REORGED is terminal for the reorg sweep, re-running changes nothing
		affected, err = store.ReorgByTransactionHashes(ctx, chainID, []string{hash}, order.StateReorged)
		require.NoError(t, err)
		assert.EqualValues(t, 0, affected)
	})
}

func TestReorgByTransactionHashesRejectsUnknownTarget(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		store := order.NewStore(db, time2.DefaultClock)

		_, err := store.ReorgByTransactionHashes(t.Context(), 11155111, []string{"0x01"}, order.State("NOT_A_STATE"))
		require.Error(t, err)
	})
}
