package chain

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/custodia/signing-service/internal/config"
)

// RPCPool hands out one failover RPC client per configured chain.
type RPCPool struct {
	config config.Chain

	mu      sync.Mutex
	clients map[int64]*RPCClient
}

func NewRPCPool(cfg config.Chain) *RPCPool {
	return &RPCPool{
		config:  cfg,
		clients: make(map[int64]*RPCClient),
	}
}

// ForChain returns the client for the chain, dialing it on first use.
func (p *RPCPool) ForChain(chainID int64) (*RPCClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[chainID]; ok {
		return client, nil
	}

	urls, ok := p.config.RPCEndpoints[chainID]
	if !ok || len(urls) == 0 {
		return nil, errors.Errorf("no RPC endpoints configured for chain %d", chainID)
	}

	client, err := NewRPCClient(urls)
	if err != nil {
		return nil, err
	}

	p.clients[chainID] = client

	return client, nil
}

// Close closes all dialed clients.
func (p *RPCPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, client := range p.clients {
		client.Close()
	}
}

// RPCClient wraps a set of RPC endpoints for one chain with failover. A
// failing endpoint is skipped and redialed on the next use.
type RPCClient struct {
	urls    []string
	mu      sync.Mutex
	clients []*ethclient.Client
	current int
}

func NewRPCClient(urls []string) (*RPCClient, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*ethclient.Client, len(urls))
	connected := false
	for i, url := range urls {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			continue
		}
		clients[i] = client
		connected = true
	}

	if !connected {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return &RPCClient{
		urls:    urls,
		clients: clients,
	}, nil
}

// Close closes all endpoint connections.
func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, client := range c.clients {
		if client != nil {
			client.Close()
		}
	}
}

// SendRawTransaction decodes the signed RLP blob and broadcasts it, returning
// the transaction hash.
func (c *RPCClient) SendRawTransaction(ctx context.Context, raw []byte) (string, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return "", errors.Wrap(err, "failed to decode signed transaction")
	}

	client, err := c.getClient(ctx)
	if err != nil {
		return "", err
	}

	if err := client.SendTransaction(ctx, tx); err != nil {
		return "", errors.Wrap(err, "failed to send transaction")
	}

	return tx.Hash().Hex(), nil
}

// TransactionByHash returns the transaction and whether it is still pending.
func (c *RPCClient) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, false, err
	}

	tx, pending, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to get transaction by hash")
	}

	return tx, pending, nil
}

// TransactionReceipt returns the receipt of a mined transaction.
func (c *RPCClient) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := client.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction receipt")
	}

	return receipt, nil
}

// BlockNumber returns the latest block number.
func (c *RPCClient) BlockNumber(ctx context.Context) (uint64, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return 0, err
	}

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get latest block number")
	}

	return blockNumber, nil
}

// HeaderByNumber returns the header of the given block, or the latest when nil.
func (c *RPCClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	header, err := client.HeaderByNumber(ctx, number)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get block header")
	}

	return header, nil
}

// PendingBlock returns the pending block with its transactions.
func (c *RPCClient) PendingBlock(ctx context.Context) (*types.Block, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	block, err := client.BlockByNumber(ctx, big.NewInt(int64(rpc.PendingBlockNumber)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pending block")
	}
	if block == nil {
		return nil, errors.New("pending block not available")
	}

	return block, nil
}

// FeeHistory returns base fees and priority fee rewards over the last
// blockCount blocks at the given reward percentiles.
func (c *RPCClient) FeeHistory(ctx context.Context, blockCount uint64, rewardPercentiles []float64) (*ethereum.FeeHistory, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	history, err := client.FeeHistory(ctx, blockCount, nil, rewardPercentiles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get fee history")
	}

	return history, nil
}

// SuggestGasPrice returns the node's legacy gas price suggestion.
func (c *RPCClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	price, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas price")
	}

	return price, nil
}

// BalanceAt returns the native balance of an address at the latest block.
func (c *RPCClient) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := client.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}

	return balance, nil
}

// PendingNonceAt returns the pending nonce for the given address.
func (c *RPCClient) PendingNonceAt(ctx context.Context, address common.Address) (uint64, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return 0, err
	}

	nonce, err := client.PendingNonceAt(ctx, address)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pending nonce")
	}

	return nonce, nil
}

// CallContract executes a read-only contract call at the latest block.
func (c *RPCClient) CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call contract")
	}

	return out, nil
}

// getClient returns a healthy client, starting from the last known good
// endpoint and redialing dead ones.
func (c *RPCClient) getClient(ctx context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i < len(c.clients); i++ {
		idx := (c.current + i) % len(c.clients)

		if c.clients[idx] == nil {
			client, err := ethclient.Dial(c.urls[idx])
			if err != nil {
				log.Warn().
					Str("url", c.urls[idx]).
					Err(err).
					Msg("Failed to reconnect to RPC node")
				continue
			}
			c.clients[idx] = client
		}

		if _, err := c.clients[idx].ChainID(ctx); err != nil {
			log.Warn().
				Str("url", c.urls[idx]).
				Err(err).
				Msg("RPC client health check failed, trying next endpoint")
			c.clients[idx].Close()
			c.clients[idx] = nil
			continue
		}

		c.current = idx

		return c.clients[idx], nil
	}

	return nil, errors.New("all RPC clients are unavailable")
}
