package chains

import (
	"math/big"

	"github/custodia/signing-service/internal/chain"
	"github/custodia/signing-service/internal/types"
)

// newHistoricalFeesResponse maps the fee-history aggregate into its wire form.
func newHistoricalFeesResponse(fees *chain.HistoricalFees) *types.HistoricalFeesResponse {
	return &types.HistoricalFeesResponse{
		EIP1559: &types.EIP1559FeesResponse{
			MaxPriorityFeePerGas: newFeeBandResponse(fees.MaxPriorityFeePerGas),
			MaxFeePerGas:         newFeeBandResponse(fees.MaxFeePerGas),
		},
		Legacy: &types.LegacyFeesResponse{
			GasPrice: newFeeBandResponse(fees.GasPrice),
		},
	}
}

func newFeeBandResponse(band chain.FeeBand) *types.FeeBandResponse {
	return &types.FeeBandResponse{
		Min:    decimalString(band.Min),
		Median: decimalString(band.Median),
		Max:    decimalString(band.Max),
	}
}

// newPredictedFeesResponse maps the pending-block prediction into its wire form.
func newPredictedFeesResponse(fees *chain.PredictedFees) *types.PredictedFeesResponse {
	return &types.PredictedFeesResponse{
		EIP1559: &types.PredictedEIP1559FeesResponse{
			MaxPriorityFeePerGas: newSuggestedFeesResponse(fees.MaxPriorityFeePerGas),
			MaxFeePerGas:         newSuggestedFeesResponse(fees.MaxFeePerGas),
		},
		Legacy: &types.PredictedLegacyFeesResponse{
			GasPrice: newSuggestedFeesResponse(fees.GasPrice),
		},
	}
}

func newSuggestedFeesResponse(fees chain.SuggestedFees) *types.SuggestedFeesResponse {
	return &types.SuggestedFeesResponse{
		Low:    decimalString(fees.Low),
		Medium: decimalString(fees.Medium),
		High:   decimalString(fees.High),
	}
}

// newTokenBalanceListResponse maps contract balances into their wire form.
func newTokenBalanceListResponse(balances []chain.TokenBalance) *types.TokenBalanceListResponse {
	out := make([]*types.TokenBalanceResponse, 0, len(balances))
	for _, b := range balances {
		contract := b.ContractAddress
		out = append(out, &types.TokenBalanceResponse{
			ContractAddress: &contract,
			Balance:         decimalString(b.Balance),
		})
	}

	return &types.TokenBalanceListResponse{Balances: out}
}

func decimalString(v *big.Int) *string {
	if v == nil {
		zero := "0"
		return &zero
	}

	s := v.String()

	return &s
}
