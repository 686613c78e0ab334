package chain

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/cache"
)

// Fee history request parameters.
const (
	DefaultFeeHistoryBlockCount = 5
	MaxFeeHistoryBlockCount     = 100
)

// feeHistoryRewardPercentiles samples the cheapest, median and most expensive
// priority fee of each block.
var feeHistoryRewardPercentiles = []float64{0.0, 50.0, 100.0}

// FeeBand is a min/median/max aggregate over historical blocks.
type FeeBand struct {
	Min    *big.Int
	Median *big.Int
	Max    *big.Int
}

// HistoricalFees aggregates fee history into per-field bands. GasPrice equals
// MaxFeePerGas, for legacy callers.
type HistoricalFees struct {
	MaxPriorityFeePerGas FeeBand
	MaxFeePerGas         FeeBand
	GasPrice             FeeBand
}

// SuggestedFees is a low/medium/high prediction drawn from the pending block.
type SuggestedFees struct {
	Low    *big.Int
	Medium *big.Int
	High   *big.Int
}

// PredictedFees aggregates pending-block fees into per-field suggestions.
type PredictedFees struct {
	MaxPriorityFeePerGas SuggestedFees
	MaxFeePerGas         SuggestedFees
	GasPrice             SuggestedFees
}

// calculateMedian sorts values in place and returns their median.
func calculateMedian(values []*big.Int) *big.Int {
	sort.Slice(values, func(i, j int) bool { return values[i].Cmp(values[j]) < 0 })

	n := len(values)
	if n%2 == 0 {
		sum := new(big.Int).Add(values[n/2], values[n/2-1])
		return sum.Div(sum, big.NewInt(2))
	}

	return values[n/2]
}

// ProcessFeeHistory aggregates a fee-history response. Per block, the first
// reward entry is the minimum priority fee, the middle entry the median, the
// last the maximum; the bands combine those across blocks. The max-fee band
// adds the median base fee onto the priority band.
func ProcessFeeHistory(history *ethereum.FeeHistory) (*HistoricalFees, error) {
	if len(history.Reward) == 0 {
		return nil, errors.New("the \"reward\" array was empty, check the RPC response")
	}

	minVals := make([]*big.Int, 0, len(history.Reward))
	medianVals := make([]*big.Int, 0, len(history.Reward))
	maxVals := make([]*big.Int, 0, len(history.Reward))

	for _, row := range history.Reward {
		if len(row) == 0 {
			return nil, errors.New("the \"reward detail\" array was empty, check the RPC response")
		}

		minVals = append(minVals, row[0])
		medianVals = append(medianVals, row[len(row)/2])
		maxVals = append(maxVals, row[len(row)-1])
	}

	sort.Slice(minVals, func(i, j int) bool { return minVals[i].Cmp(minVals[j]) < 0 })
	sort.Slice(maxVals, func(i, j int) bool { return maxVals[i].Cmp(maxVals[j]) < 0 })

	priority := FeeBand{
		Min:    minVals[0],
		Median: calculateMedian(medianVals),
		Max:    maxVals[len(maxVals)-1],
	}

	if len(history.BaseFee) == 0 {
		return nil, errors.New("the \"base_fee_per_gas\" array was empty, check the RPC response")
	}

	baseFees := make([]*big.Int, len(history.BaseFee))
	copy(baseFees, history.BaseFee)
	medianBase := calculateMedian(baseFees)

	maxFee := FeeBand{
		Min:    new(big.Int).Add(medianBase, priority.Min),
		Median: new(big.Int).Add(medianBase, priority.Median),
		Max:    new(big.Int).Add(medianBase, priority.Max),
	}

	return &HistoricalFees{
		MaxPriorityFeePerGas: priority,
		MaxFeePerGas:         maxFee,
		GasPrice:             maxFee,
	}, nil
}

// percentile returns the value at percentile p of the sorted prices.
func percentile(prices []*big.Int, p float64) *big.Int {
	index := int(math.Ceil(p*float64(len(prices)))) - 1
	if index < 0 {
		index = 0
	}
	if index >= len(prices) {
		index = len(prices) - 1
	}

	return prices[index]
}

// ProcessSuggestedFees predicts fees from the sorted priority fees of the
// pending block: low, medium and high are the 25th, 50th and 95th
// percentiles, and the max-fee suggestions add the pending base fee.
func ProcessSuggestedFees(maxPriorityFees []*big.Int, baseFeePerGas *big.Int) (*PredictedFees, error) {
	if len(maxPriorityFees) == 0 {
		return nil, errors.New("no priority fees in the pending block")
	}

	priority := SuggestedFees{
		Low:    percentile(maxPriorityFees, 0.25),
		Medium: percentile(maxPriorityFees, 0.50),
		High:   percentile(maxPriorityFees, 0.95),
	}

	maxFee := SuggestedFees{
		Low:    new(big.Int).Add(priority.Low, baseFeePerGas),
		Medium: new(big.Int).Add(priority.Medium, baseFeePerGas),
		High:   new(big.Int).Add(priority.High, baseFeePerGas),
	}

	return &PredictedFees{
		MaxPriorityFeePerGas: priority,
		MaxFeePerGas:         maxFee,
		GasPrice:             maxFee,
	}, nil
}

// FeeService serves historical and predicted fees per chain, caching
// predictions briefly since they feed every sponsored wrap.
type FeeService struct {
	pool     *RPCPool
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewFeeService(pool *RPCPool, c *cache.Cache, cacheTTL time.Duration) *FeeService {
	return &FeeService{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// Historical aggregates the fee history of the last blockCount blocks.
// A blockCount of zero asks for the default window.
func (f *FeeService) Historical(ctx context.Context, chainID int64, blockCount uint64) (*HistoricalFees, error) {
	if blockCount == 0 {
		blockCount = DefaultFeeHistoryBlockCount
	}
	if blockCount > MaxFeeHistoryBlockCount {
		blockCount = MaxFeeHistoryBlockCount
	}

	client, err := f.pool.ForChain(chainID)
	if err != nil {
		return nil, err
	}

	history, err := client.FeeHistory(ctx, blockCount, feeHistoryRewardPercentiles)
	if err != nil {
		return nil, err
	}

	return ProcessFeeHistory(history)
}

type cachedPrediction struct {
	MaxPriorityLow    string `json:"max_priority_low"`
	MaxPriorityMedium string `json:"max_priority_medium"`
	MaxPriorityHigh   string `json:"max_priority_high"`
	BaseFee           string `json:"base_fee"`
}

// Predicted derives fee suggestions from the pending block, cached per chain.
func (f *FeeService) Predicted(ctx context.Context, chainID int64) (*PredictedFees, error) {
	key := fmt.Sprintf("fees:prediction:%d", chainID)

	if f.cache != nil {
		var cached cachedPrediction
		ok, err := f.cache.GetJSON(ctx, key, &cached)
		if err == nil && ok {
			if fees := predictionFromCache(cached); fees != nil {
				return fees, nil
			}
		}
	}

	client, err := f.pool.ForChain(chainID)
	if err != nil {
		return nil, err
	}

	block, err := client.PendingBlock(ctx)
	if err != nil {
		return nil, err
	}
	if block.BaseFee() == nil {
		return nil, errors.Errorf("chain %d does not report a base fee", chainID)
	}

	priorityFees := make([]*big.Int, 0, len(block.Transactions()))
	for _, tx := range block.Transactions() {
		if tx.Type() != types.DynamicFeeTxType {
			continue
		}
		priorityFees = append(priorityFees, tx.GasTipCap())
	}
	sort.Slice(priorityFees, func(i, j int) bool { return priorityFees[i].Cmp(priorityFees[j]) < 0 })

	fees, err := ProcessSuggestedFees(priorityFees, block.BaseFee())
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		_ = f.cache.SetJSON(ctx, key, cachedPrediction{
			MaxPriorityLow:    fees.MaxPriorityFeePerGas.Low.String(),
			MaxPriorityMedium: fees.MaxPriorityFeePerGas.Medium.String(),
			MaxPriorityHigh:   fees.MaxPriorityFeePerGas.High.String(),
			BaseFee:           block.BaseFee().String(),
		}, f.cacheTTL)
	}

	return fees, nil
}

func predictionFromCache(cached cachedPrediction) *PredictedFees {
	low, ok1 := new(big.Int).SetString(cached.MaxPriorityLow, 10)
	medium, ok2 := new(big.Int).SetString(cached.MaxPriorityMedium, 10)
	high, ok3 := new(big.Int).SetString(cached.MaxPriorityHigh, 10)
	baseFee, ok4 := new(big.Int).SetString(cached.BaseFee, 10)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}

	return &PredictedFees{
		MaxPriorityFeePerGas: SuggestedFees{Low: low, Medium: medium, High: high},
		MaxFeePerGas: SuggestedFees{
			Low:    new(big.Int).Add(low, baseFee),
			Medium: new(big.Int).Add(medium, baseFee),
			High:   new(big.Int).Add(high, baseFee),
		},
		GasPrice: SuggestedFees{
			Low:    new(big.Int).Add(low, baseFee),
			Medium: new(big.Int).Add(medium, baseFee),
			High:   new(big.Int).Add(high, baseFee),
		},
	}
}
