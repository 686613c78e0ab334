//go:build tools
// +build tools

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/types"
)

// One-off diagnostic: fetches a mined transaction from the chain and replays
// its included event against the management endpoint, for orders the watcher
// missed.
func main() {
	pflag.Int64("chain", 0, "Chain ID of the transaction")
	pflag.String("tx", "", "Transaction hash to replay")
	pflag.String("rpc", "", "RPC URL override")
	pflag.Parse()

	v := viper.New()
	v.SetEnvPrefix("REPLAY_INCLUDED")
	v.AutomaticEnv()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flags: %v\n", err)
		os.Exit(1)
	}

	chainID := v.GetInt64("chain")
	txHash := v.GetString("tx")
	if chainID == 0 || txHash == "" {
		fmt.Println("Error: chain ID and transaction hash are required")
		pflag.Usage()
		os.Exit(1)
	}

	cfg := config.DefaultServiceConfigFromEnv()
	ctx := context.Background()

	rpcURL := v.GetString("rpc")
	if rpcURL == "" {
		if endpoints := cfg.Chain.RPCEndpoints[chainID]; len(endpoints) > 0 {
			rpcURL = endpoints[0]
		}
	}
	if rpcURL == "" {
		fmt.Printf("Error: no RPC endpoint configured for chain %d\n", chainID)
		os.Exit(1)
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		fmt.Printf("Error connecting to RPC: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	hash := common.HexToHash(txHash)

	tx, isPending, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		fmt.Printf("Error getting transaction: %v\n", err)
		os.Exit(1)
	}
	if isPending {
		fmt.Println("Transaction is still pending, nothing to replay.")
		os.Exit(1)
	}

	receipt, err := client.TransactionReceipt(ctx, hash)
	if err != nil {
		fmt.Printf("Error getting receipt: %v\n", err)
		os.Exit(1)
	}

	from, err := ethtypes.Sender(ethtypes.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		fmt.Printf("Error recovering sender: %v\n", err)
		os.Exit(1)
	}

	logs := make([]ethtypes.Log, 0, len(receipt.Logs))
	for _, l := range receipt.Logs {
		logs = append(logs, *l)
	}

	txHashLower := strings.ToLower(hash.Hex())

	evt := types.PostIncludedEventPayload{
		Hash:        &txHashLower,
		From:        strings.ToLower(from.Hex()),
		ChainID:     &chainID,
		BlockNumber: receipt.BlockNumber.Uint64(),
		BlockHash:   strings.ToLower(receipt.BlockHash.Hex()),
		Logs:        logs,
	}

	body, err := json.Marshal(evt)
	if err != nil {
		fmt.Printf("Error marshalling event: %v\n", err)
		os.Exit(1)
	}

	query := url.Values{"mgmt-secret": []string{cfg.Management.Secret}}
	endpoint := cfg.Echo.BaseURL + "/-/events/included?" + query.Encode()

	fmt.Printf("Replaying included event for %s on chain %d (block %s)...\n",
		txHashLower, chainID, receipt.BlockNumber.String())

	res, err := http.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error posting event: %v\n", err)
		os.Exit(1)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent {
		fmt.Printf("Replay failed with status %d\n", res.StatusCode)
		os.Exit(1)
	}

	fmt.Println("Included event replayed successfully.")
}
