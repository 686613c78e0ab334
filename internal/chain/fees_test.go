package chain_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/chain"
)

func bigs(vals ...int64) []*big.Int {
	out := make([]*big.Int, 0, len(vals))
	for _, v := range vals {
		out = append(out, big.NewInt(v))
	}

	return out
}

func TestProcessFeeHistorySingleBlock(t *testing.T) {
	history := &ethereum.FeeHistory{
		Reward:  [][]*big.Int{bigs(11, 12, 13)},
		BaseFee: bigs(100),
	}

	fees, err := chain.ProcessFeeHistory(history)
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(11), fees.MaxPriorityFeePerGas.Min)
	assert.Equal(t, big.NewInt(12), fees.MaxPriorityFeePerGas.Median)
	assert.Equal(t, big.NewInt(13), fees.MaxPriorityFeePerGas.Max)

	assert.Equal(t, big.NewInt(111), fees.MaxFeePerGas.Min)
	assert.Equal(t, big.NewInt(112), fees.MaxFeePerGas.Median)
	assert.Equal(t, big.NewInt(113), fees.MaxFeePerGas.Max)

	assert.Equal(t, fees.MaxFeePerGas, fees.GasPrice)
}

func TestProcessFeeHistoryThreeBlocks(t *testing.T) {
	history := &ethereum.FeeHistory{
		Reward: [][]*big.Int{
			bigs(31, 32, 33),
			bigs(11, 12, 13),
			bigs(21, 22, 23),
		},
		BaseFee: bigs(200, 300, 100),
	}

	fees, err := chain.ProcessFeeHistory(history)
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(11), fees.MaxPriorityFeePerGas.Min)
	assert.Equal(t, big.NewInt(22), fees.MaxPriorityFeePerGas.Median)
	assert.Equal(t, big.NewInt(33), fees.MaxPriorityFeePerGas.Max)

	assert.Equal(t, big.NewInt(211), fees.MaxFeePerGas.Min)
	assert.Equal(t, big.NewInt(222), fees.MaxFeePerGas.Median)
	assert.Equal(t, big.NewInt(233), fees.MaxFeePerGas.Max)
}

func TestProcessFeeHistoryEmptyReward(t *testing.T) {
	_, err := chain.ProcessFeeHistory(&ethereum.FeeHistory{BaseFee: bigs(100)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reward")
}

func TestProcessFeeHistoryEmptyBaseFee(t *testing.T) {
	_, err := chain.ProcessFeeHistory(&ethereum.FeeHistory{
		Reward: [][]*big.Int{bigs(11, 12, 13), bigs(21, 22, 33)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_fee_per_gas")
}

func TestProcessSuggestedFees(t *testing.T) {
	fees, err := chain.ProcessSuggestedFees(bigs(11, 12, 13), big.NewInt(100))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(11), fees.MaxPriorityFeePerGas.Low)
	assert.Equal(t, big.NewInt(12), fees.MaxPriorityFeePerGas.Medium)
	assert.Equal(t, big.NewInt(13), fees.MaxPriorityFeePerGas.High)

	assert.Equal(t, big.NewInt(111), fees.MaxFeePerGas.Low)
	assert.Equal(t, big.NewInt(112), fees.MaxFeePerGas.Medium)
	assert.Equal(t, big.NewInt(113), fees.MaxFeePerGas.High)

	assert.Equal(t, fees.MaxFeePerGas, fees.GasPrice)
}

func TestProcessSuggestedFeesSingleEntry(t *testing.T) {
	fees, err := chain.ProcessSuggestedFees(bigs(7), big.NewInt(1))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(7), fees.MaxPriorityFeePerGas.Low)
	assert.Equal(t, big.NewInt(7), fees.MaxPriorityFeePerGas.High)
	assert.Equal(t, big.NewInt(8), fees.MaxFeePerGas.Medium)
}

func TestProcessSuggestedFeesEmpty(t *testing.T) {
	_, err := chain.ProcessSuggestedFees(nil, big.NewInt(100))
	require.Error(t, err)
}
