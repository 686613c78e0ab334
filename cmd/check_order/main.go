//go:build tools
// +build tools

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	_ "github.com/lib/pq"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github/custodia/signing-service/internal/config"
)

// One-off diagnostic: inspects an order row and, when a transaction hash is
// recorded, cross-checks it against the chain via the configured RPC.
func main() {
	pflag.String("order", "", "Order ID to inspect")
	pflag.String("rpc", "", "RPC URL override")
	pflag.Parse()

	v := viper.New()
	v.SetEnvPrefix("CHECK_ORDER")
	v.AutomaticEnv()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flags: %v\n", err)
		os.Exit(1)
	}

	orderID := v.GetString("order")
	if orderID == "" {
		fmt.Println("Error: order ID is required")
		pflag.Usage()
		os.Exit(1)
	}

	cfg := config.DefaultServiceConfigFromEnv()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		orderType             string
		state                 string
		chainID               sql.NullInt64
		transactionHash       sql.NullString
		replaces              sql.NullString
		replacedBy            sql.NullString
		cancellationRequested sql.NullBool
	)

	err = db.QueryRowContext(ctx, `
		SELECT order_type, state, chain_id, transaction_hash, replaces, replaced_by, cancellation_requested
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&orderType, &state, &chainID, &transactionHash, &replaces, &replacedBy, &cancellationRequested)
	if err != nil {
		if err == sql.ErrNoRows {
			fmt.Printf("Order %s does not exist\n", orderID)
		} else {
			fmt.Printf("Error loading order: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Order ID: %s\n", orderID)
	fmt.Printf("Type: %s\n", orderType)
	fmt.Printf("State: %s\n", state)
	if chainID.Valid {
		fmt.Printf("Chain ID: %d\n", chainID.Int64)
	}
	if replaces.Valid {
		fmt.Printf("Replaces: %s\n", replaces.String)
	}
	if replacedBy.Valid {
		fmt.Printf("Replaced By: %s\n", replacedBy.String)
	}
	if cancellationRequested.Valid && cancellationRequested.Bool {
		fmt.Println("Cancellation requested: yes")
	}

	if !transactionHash.Valid {
		fmt.Println("No transaction hash recorded, nothing to check on-chain.")
		return
	}

	fmt.Printf("Transaction Hash: %s\n", transactionHash.String)
	fmt.Println()

	rpcURL := v.GetString("rpc")
	if rpcURL == "" && chainID.Valid {
		if endpoints := cfg.Chain.RPCEndpoints[chainID.Int64]; len(endpoints) > 0 {
			rpcURL = endpoints[0]
		}
	}
	if rpcURL == "" {
		fmt.Println("No RPC endpoint configured for this chain, skipping on-chain check.")
		return
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		fmt.Printf("Error connecting to RPC: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	hash := common.HexToHash(transactionHash.String)

	_, isPending, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		fmt.Printf("Transaction not found on chain: %v\n", err)
		os.Exit(1)
	}

	if isPending {
		fmt.Println("Transaction is still pending in the mempool.")
		return
	}

	receipt, err := client.TransactionReceipt(ctx, hash)
	if err != nil {
		fmt.Printf("Error getting receipt: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Block Number: %s\n", receipt.BlockNumber.String())
	fmt.Printf("Block Hash: %s\n", strings.ToLower(receipt.BlockHash.Hex()))
	if receipt.Status == 1 {
		fmt.Println("Receipt Status: success")
	} else {
		fmt.Println("Receipt Status: reverted")
	}

	switch state {
	case "COMPLETED":
		if receipt.Status != 1 {
			fmt.Println("Mismatch: order is COMPLETED but the receipt reverted.")
		}
	case "COMPLETED_WITH_ERROR":
		if receipt.Status == 1 {
			fmt.Println("Mismatch: order is COMPLETED_WITH_ERROR but the receipt succeeded.")
		}
	case "SUBMITTED":
		fmt.Println("Order is still SUBMITTED, the included event has not been processed yet.")
		fmt.Printf("Replay it with: go run -tags tools ./cmd/replay_included -chain %d -tx %s\n",
			chainID.Int64, transactionHash.String)
	}
}
