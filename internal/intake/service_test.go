package intake

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/order"
)

func newBig(v int64) *order.U256 {
	return (*order.U256)(big.NewInt(v))
}

func validLegacy() *order.Transaction {
	return &order.Transaction{
		To:       "0x1C965d1241D0040A3fC2A030BAeeEfB35C155a4e",
		ChainID:  11155111,
		Gas:      newBig(21000),
		GasPrice: newBig(1000),
	}
}

func TestValidateTransaction(t *testing.T) {
	assert.NoError(t, validateTransaction(validLegacy()))

	eip1559 := validLegacy()
	eip1559.GasPrice = nil
	eip1559.MaxFeePerGas = newBig(2000)
	eip1559.MaxPriorityFeePerGas = newBig(100)
	assert.NoError(t, validateTransaction(eip1559))

	tests := []struct {
		name    string
		mutate  func(tx *order.Transaction)
		wantErr string
	}{
		{
			name:    "missing to",
			mutate:  func(tx *order.Transaction) { tx.To = "" },
			wantErr: "transaction to address is required",
		},
		{
			name:    "missing chain",
			mutate:  func(tx *order.Transaction) { tx.ChainID = 0 },
			wantErr: "transaction chain_id is required",
		},
		{
			name:    "both fee models",
			mutate:  func(tx *order.Transaction) { tx.MaxFeePerGas = newBig(1) },
			wantErr: "transaction can't carry both gas_price and EIP-1559 fee fields",
		},
		{
			name:    "no fee model",
			mutate:  func(tx *order.Transaction) { tx.GasPrice = nil },
			wantErr: "transaction must carry gas_price or max_fee_per_gas and max_priority_fee_per_gas",
		},
		{
			name: "partial eip1559",
			mutate: func(tx *order.Transaction) {
				tx.GasPrice = nil
				tx.MaxFeePerGas = newBig(2000)
			},
			wantErr: "EIP-1559 transactions require both max_fee_per_gas and max_priority_fee_per_gas",
		},
		{
			name:    "missing gas",
			mutate:  func(tx *order.Transaction) { tx.Gas = nil },
			wantErr: "transaction gas is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validLegacy()
			tt.mutate(tx)

			err := validateTransaction(tx)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Message)
		})
	}

	err := validateTransaction(nil)
	require.Error(t, err)
	assert.EqualError(t, err, "transaction is required")
}
