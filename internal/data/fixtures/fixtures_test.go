package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	data "github/custodia/signing-service/internal/data/fixtures"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
)

func TestUpsertableInterface(t *testing.T) {
	var o any = &models.Order{
		ID: "62b13d29-5c4e-420e-b991-a631d3938776",
	}

	_, ok := o.(data.Upsertable)
	assert.True(t, ok, "Order should implement the Upsertable interface")
}

func TestFixturesAreConsistent(t *testing.T) {
	fix := data.Fixtures()

	assert.Equal(t, fix.Client1Key.ID, fix.Client1KeyCreationOrder.KeyID.String)
	assert.Equal(t, fix.Client1Key.OrderID, fix.Client1KeyCreationOrder.ID)
	assert.Equal(t, fix.Client1Key.Address, fix.Client1SignatureOrder.Address.String)
	assert.Equal(t, fix.Client1Key.Address, fix.Client1Nonce.Address)
	assert.Equal(t, string(order.StateCompleted), fix.Client1KeyCreationOrder.State)
	assert.Equal(t, string(order.StateSubmitted), fix.Client1SignatureOrder.State)

	inserts := data.Inserts()
	assert.Len(t, inserts, 6)
}
