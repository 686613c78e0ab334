package chain

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// balanceOf(address) is shared by ERC-20 and ERC-721.
const balanceOfABI = `[{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`

var tokenABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(balanceOfABI))
	if err != nil {
		panic(err)
	}

	return parsed
}()

// TokenBalance is the balance of one token contract for an owner.
type TokenBalance struct {
	ContractAddress string
	Balance         *big.Int
}

// BalanceService reads native and token balances through the RPC pool.
type BalanceService struct {
	pool *RPCPool
}

func NewBalanceService(pool *RPCPool) *BalanceService {
	return &BalanceService{pool: pool}
}

// Native returns the native balance of the address at the latest block.
func (b *BalanceService) Native(ctx context.Context, chainID int64, address string) (*big.Int, error) {
	client, err := b.pool.ForChain(chainID)
	if err != nil {
		return nil, err
	}

	return client.BalanceAt(ctx, common.HexToAddress(address))
}

// TokenBalances calls balanceOf(owner) on each contract. Works for both
// ERC-20 and ERC-721 contracts.
func (b *BalanceService) TokenBalances(ctx context.Context, chainID int64, owner string, contracts []string) ([]TokenBalance, error) {
	client, err := b.pool.ForChain(chainID)
	if err != nil {
		return nil, err
	}

	input, err := tokenABI.Pack("balanceOf", common.HexToAddress(owner))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode balanceOf call")
	}

	balances := make([]TokenBalance, 0, len(contracts))
	for _, contract := range contracts {
		to := common.HexToAddress(contract)
		raw, err := client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: input})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to query balance of %s", contract)
		}

		out, err := tokenABI.Unpack("balanceOf", raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode balance of %s", contract)
		}

		balance, ok := out[0].(*big.Int)
		if !ok {
			return nil, errors.Errorf("unexpected balanceOf return type for %s", contract)
		}

		balances = append(balances, TokenBalance{
			ContractAddress: strings.ToLower(contract),
			Balance:         balance,
		})
	}

	return balances, nil
}
