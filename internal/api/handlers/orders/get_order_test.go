package orders

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
)

func TestOrderStatusResponse(t *testing.T) {
	createdAt := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

	res := orderStatusResponse(&models.Order{
		ID:                    "5c73c1e2-9da2-489c-b996-7a1f44a4b50f",
		OrderVersion:          "1",
		OrderType:             string(order.TypeSignature),
		State:                 string(order.StateSubmitted),
		TransactionHash:       null.StringFrom("0xabc"),
		Replaces:              null.StringFrom("9e1d6a4f-af09-4598-9c0c-3ed392c6cbb0"),
		CancellationRequested: null.BoolFrom(true),
		CreatedAt:             createdAt,
		LastModifiedAt:        createdAt.Add(time.Minute),
	})

	require.NotNil(t, res.OrderID)
	assert.Equal(t, "5c73c1e2-9da2-489c-b996-7a1f44a4b50f", *res.OrderID)
	assert.Equal(t, string(order.TypeSignature), *res.OrderType)
	assert.Equal(t, string(order.StateSubmitted), *res.State)
	assert.Equal(t, "0xabc", res.TransactionHash)
	assert.Equal(t, "9e1d6a4f-af09-4598-9c0c-3ed392c6cbb0", res.Replaces)
	assert.Empty(t, res.ReplacedBy)
	assert.True(t, res.CancellationRequested)
	assert.Equal(t, "2025-11-03T12:00:00Z", res.CreatedAt)
	assert.Equal(t, "2025-11-03T12:01:00Z", res.LastModifiedAt)
	assert.Nil(t, res.Error)
}

func TestOrderStatusResponseWithError(t *testing.T) {
	res := orderStatusResponse(&models.Order{
		ID:             "5c73c1e2-9da2-489c-b996-7a1f44a4b50f",
		OrderVersion:   "1",
		OrderType:      string(order.TypeSignature),
		State:          string(order.StateCompletedWithError),
		Error:          null.JSONFrom([]byte(`{"code":"EXECUTION_REVERTED","message":"execution reverted"}`)),
		CreatedAt:      time.Now(),
		LastModifiedAt: time.Now(),
	})

	require.NotNil(t, res.Error)
	require.NotNil(t, res.Error.Code)
	assert.Equal(t, "EXECUTION_REVERTED", *res.Error.Code)
	require.NotNil(t, res.Error.Message)
	assert.Equal(t, "execution reverted", *res.Error.Message)
}
