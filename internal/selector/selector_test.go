package selector_test

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/data/fixtures"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/test"
)

const testChainID = int64(11155111)

func signedSignatureOrder(t *testing.T, ctx context.Context, s *api.Server, nonce string) *models.Order {
	t.Helper()

	transaction := `{"to":"0x52908400098527886e0f7030069857d2e4169ee7","chain_id":11155111,"gas":"21000","gas_price":"1000000000"`
	if nonce != "" {
		transaction += `,"nonce":"` + nonce + `"`
	}
	transaction += `}`

	o := &models.Order{
		ID:           uuid.NewString(),
		OrderVersion: "1",
		OrderType:    string(order.TypeSignature),
		State:        string(order.StateSigned),
		ClientID:     fixtures.ClientID1,
		KeyID:        null.StringFrom(fixtures.Key1ID),
		Address:      null.StringFrom(fixtures.Key1Address),
		ChainID:      null.Int64From(testChainID),
		Data:         []byte(`{"address":"` + fixtures.Key1Address + `","key_id":"` + fixtures.Key1ID + `","transaction":` + transaction + `}`),
	}
	require.NoError(t, s.Orders.Create(ctx, o))

	return o
}

func TestSelectNextSkipsNonceMismatch(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		ctx := t.Context()

		// the ledger's next nonce for the fixture key is 0
		pinned := signedSignatureOrder(t, ctx, s, "5")
		free := signedSignatureOrder(t, ctx, s, "")

		selected, err := s.Selector.SelectNext(ctx, fixtures.Key1ID, testChainID)
		require.NoError(t, err)
		require.NotNil(t, selected)
		assert.Equal(t, free.ID, selected.ID)
		assert.Equal(t, string(order.StateSelectedForSigning), selected.State)

		data, err := order.DecodeSignatureData(selected.Data)
		require.NoError(t, err)
		require.NotNil(t, data.Transaction.Nonce)
		assert.EqualValues(t, 0, data.Transaction.Nonce.ToInt().Int64())

		// the pinned order stays put until its nonce is due
		stale, err := s.Orders.GetByID(ctx, pinned.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateSigned), stale.State)
	})
}

func TestSelectNextHonorsInFlightSlot(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		ctx := t.Context()

		// a freshly submitted order holds the lane's single slot
		inflight := signedSignatureOrder(t, ctx, s, "")
		require.NoError(t, s.Orders.Transition(ctx, inflight.ID, order.StateSelectedForSigning, nil))

		waiting := signedSignatureOrder(t, ctx, s, "")

		selected, err := s.Selector.SelectNext(ctx, fixtures.Key1ID, testChainID)
		require.NoError(t, err)
		assert.Nil(t, selected)

		o, err := s.Orders.GetByID(ctx, waiting.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateSigned), o.State)
	})
}

func TestSelectNextCancelsFlaggedOrder(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		ctx := t.Context()

		flagged := signedSignatureOrder(t, ctx, s, "")
		_, err := models.Orders(models.OrderWhere.ID.EQ(flagged.ID)).
			UpdateAll(ctx, s.DB, models.M{models.OrderColumns.CancellationRequested: true})
		require.NoError(t, err)

		selected, err := s.Selector.SelectNext(ctx, fixtures.Key1ID, testChainID)
		require.NoError(t, err)
		assert.Nil(t, selected)

		o, err := s.Orders.GetByID(ctx, flagged.ID)
		require.NoError(t, err)
		assert.Equal(t, string(order.StateCancelled), o.State)
	})
}
