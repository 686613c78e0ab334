package keys_test

import (
	"database/sql"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/data/fixtures"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/test"
)

func TestFinalizeCompletesStuckOrder(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		store := order.NewStore(db, time2.DefaultClock)
		directory := keys.NewDirectory(db, time2.DefaultClock)
		creator := keys.NewCreator(db, store, directory, nil)

		// a crash between the SIGNED commit and the final transition leaves
		// the order in SIGNED with its key row already recorded
		o := &models.Order{
			ID:           uuid.NewString(),
			OrderVersion: "1",
			OrderType:    string(order.TypeKeyCreation),
			State:        string(order.StateSigned),
			ClientID:     fixtures.ClientID1,
			KeyID:        null.StringFrom(fixtures.Key1ID),
			Address:      null.StringFrom(fixtures.Key1Address),
			Data:         []byte(`{"client_user_id":"user-fixture-1","key_id":"` + fixtures.Key1ID + `","address":"` + fixtures.Key1Address + `"}`),
		}
		require.NoError(t, store.Create(ctx, o))

		require.NoError(t, creator.Finalize(ctx, o))

		got, err := store.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateCompleted), got.State)

		// re-running the sweep on the completed order is a no-op
		require.NoError(t, creator.Finalize(ctx, o))
	})
}
