package replacement

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
)

func newBig(v int64) *order.U256 {
	return (*order.U256)(big.NewInt(v))
}

func legacyTransaction(gasPrice int64) *order.Transaction {
	return &order.Transaction{
		To:       "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1",
		ChainID:  1,
		GasPrice: newBig(gasPrice),
	}
}

func eip1559Transaction(maxFee, maxPriority int64) *order.Transaction {
	return &order.Transaction{
		To:                   "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1",
		ChainID:              1,
		MaxFeePerGas:         newBig(maxFee),
		MaxPriorityFeePerGas: newBig(maxPriority),
	}
}

func TestValidateGasValues(t *testing.T) {
	tests := []struct {
		name        string
		original    *order.Transaction
		replacement *GasValues
		wantErr     string
	}{
		{
			name:        "legacy strictly greater",
			original:    legacyTransaction(100),
			replacement: &GasValues{GasPrice: newBig(101)},
		},
		{
			name:        "legacy equal rejected",
			original:    legacyTransaction(100),
			replacement: &GasValues{GasPrice: newBig(100)},
			wantErr:     "original gas price (100) is higher than new gas price (100)",
		},
		{
			name:        "legacy lower rejected",
			original:    legacyTransaction(100),
			replacement: &GasValues{GasPrice: newBig(99)},
			wantErr:     "original gas price (100) is higher than new gas price (99)",
		},
		{
			name:        "eip1559 strictly greater",
			original:    eip1559Transaction(200, 20),
			replacement: &GasValues{MaxFeePerGas: newBig(201), MaxPriorityFeePerGas: newBig(21)},
		},
		{
			name:        "eip1559 max fee equal rejected",
			original:    eip1559Transaction(200, 20),
			replacement: &GasValues{MaxFeePerGas: newBig(200), MaxPriorityFeePerGas: newBig(21)},
			wantErr:     "original max fee per gas (200) is higher than new max fee per gas (200)",
		},
		{
			name:        "eip1559 priority fee lower rejected",
			original:    eip1559Transaction(200, 20),
			replacement: &GasValues{MaxFeePerGas: newBig(201), MaxPriorityFeePerGas: newBig(19)},
			wantErr:     "original max fee priority per gas (20) is higher than new max priority fee per gas (19)",
		},
		{
			name:        "eip1559 replacement for legacy order rejected",
			original:    legacyTransaction(100),
			replacement: &GasValues{MaxFeePerGas: newBig(201), MaxPriorityFeePerGas: newBig(21)},
			wantErr:     "can't perform this operation on a legacy transaction with an EIP-1559 transaction",
		},
		{
			name:        "legacy replacement for eip1559 order rejected",
			original:    eip1559Transaction(200, 20),
			replacement: &GasValues{GasPrice: newBig(101)},
			wantErr:     "can't perform this operation on an EIP-1559 transaction with a legacy transaction",
		},
		{
			name:        "missing gas fields rejected",
			original:    eip1559Transaction(200, 20),
			replacement: &GasValues{MaxFeePerGas: newBig(201)},
			wantErr:     "replacement transaction must carry gas_price or max_fee_per_gas and max_priority_fee_per_gas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGasValues(tt.original, tt.replacement)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Message)
		})
	}
}

func TestValidateSpeedupType(t *testing.T) {
	assert.NoError(t, validateSpeedupType(&models.Order{OrderType: string(order.TypeSignature)}))

	err := validateSpeedupType(&models.Order{OrderType: string(order.TypeSponsored)})
	require.Error(t, err)
	assert.EqualError(t, err, "sponsored transactions can't be sped up")

	err = validateSpeedupType(&models.Order{OrderType: string(order.TypeKeyCreation)})
	require.Error(t, err)
	assert.EqualError(t, err, "can't perform this operation for an order of type KEY_CREATION_ORDER")
}

func TestCancellationTransaction(t *testing.T) {
	data := &order.SignatureData{
		Transaction:      *eip1559Transaction(200, 20),
		Address:          "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1",
		MaestroSignature: "0xdeadbeef",
	}
	data.Transaction.To = "0x1c965d1241d0040a3fc2a030baeeefb35c155a4e"
	data.Transaction.Value = newBig(1000)
	data.Transaction.Data = hexutil.Bytes{0xab, 0xcd}
	data.Transaction.Nonce = newBig(7)

	cancellationTransaction(data, &GasValues{MaxFeePerGas: newBig(300), MaxPriorityFeePerGas: newBig(30)})

	assert.Equal(t, "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1", data.Transaction.To)
	assert.Zero(t, data.Transaction.Value.ToInt().Sign())
	assert.Equal(t, hexutil.Bytes{0x00}, data.Transaction.Data)
	assert.Equal(t, int64(300), data.Transaction.MaxFeePerGas.ToInt().Int64())
	assert.Equal(t, int64(30), data.Transaction.MaxPriorityFeePerGas.ToInt().Int64())
	assert.Equal(t, int64(7), data.Transaction.Nonce.ToInt().Int64())
	assert.Empty(t, data.MaestroSignature)
}
