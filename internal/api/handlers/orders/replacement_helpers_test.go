package orders

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/types"
)

func TestGasValuesFromPayloadNil(t *testing.T) {
	gas, err := gasValuesFromPayload(nil)
	require.NoError(t, err)
	require.NotNil(t, gas)

	assert.Nil(t, gas.GasPrice)
	assert.Nil(t, gas.MaxFeePerGas)
	assert.Nil(t, gas.MaxPriorityFeePerGas)
}

func TestGasValuesFromPayloadHex(t *testing.T) {
	gas, err := gasValuesFromPayload(&types.ReplacementTransactionPayload{
		MaxFeePerGas:         "0x3b9aca00",
		MaxPriorityFeePerGas: "0x77359400",
	})
	require.NoError(t, err)

	assert.Nil(t, gas.GasPrice)
	require.NotNil(t, gas.MaxFeePerGas)
	require.NotNil(t, gas.MaxPriorityFeePerGas)
	assert.Equal(t, big.NewInt(1000000000), gas.MaxFeePerGas.ToInt())
	assert.Equal(t, big.NewInt(2000000000), gas.MaxPriorityFeePerGas.ToInt())
}

func TestGasValuesFromPayloadDecimal(t *testing.T) {
	gas, err := gasValuesFromPayload(&types.ReplacementTransactionPayload{
		GasPrice: "1000000000",
	})
	require.NoError(t, err)

	require.NotNil(t, gas.GasPrice)
	assert.Equal(t, big.NewInt(1000000000), gas.GasPrice.ToInt())
	assert.Nil(t, gas.MaxFeePerGas)
	assert.Nil(t, gas.MaxPriorityFeePerGas)
}

func TestGasValuesFromPayloadInvalid(t *testing.T) {
	_, err := gasValuesFromPayload(&types.ReplacementTransactionPayload{
		GasPrice: "not-a-number",
	})
	require.Error(t, err)
}
