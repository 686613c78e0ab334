package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/nonce"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

// IncludedEvent reports a transaction mined into a block, with the logs it
// emitted.
type IncludedEvent struct {
	Hash        string         `json:"hash"`
	From        string         `json:"from"`
	ChainID     int64          `json:"chainId"`
	BlockNumber uint64         `json:"blockNumber"`
	BlockHash   string         `json:"blockHash"`
	Logs        []ethtypes.Log `json:"logs"`
}

// ReorgEvent names submitted or completed transactions whose blocks were
// reorged out of the chain. NewState is the state the chain watcher computed
// for the affected orders: REORGED when the transaction vanished, or a
// terminal state again when it was re-included in a new block.
type ReorgEvent struct {
	ChainID           int64       `json:"chainId"`
	TransactionHashes []string    `json:"transactionHashes"`
	NewState          order.State `json:"newState"`
}

// Reconciler moves orders into terminal states as the chain confirms,
// rejects or reorgs their transactions.
type Reconciler struct {
	orders *order.Store
	ledger *nonce.Ledger
	pool   *RPCPool
}

func NewReconciler(orders *order.Store, ledger *nonce.Ledger, pool *RPCPool) *Reconciler {
	return &Reconciler{
		orders: orders,
		ledger: ledger,
		pool:   pool,
	}
}

// HandleIncluded processes a mined transaction. Sponsored wrapper calls are
// classified by their forwarder logs; plain transactions by their receipt
// status. Re-delivery after the order reached a terminal state is a no-op.
func (r *Reconciler) HandleIncluded(ctx context.Context, evt *IncludedEvent) error {
	logger := util.LogFromContext(ctx).With().
		Str("transaction_hash", evt.Hash).
		Int64("chain_id", evt.ChainID).
		Logger()

	o, err := r.orders.ByTransactionHash(ctx, evt.ChainID, evt.Hash)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			logger.Debug().Msg("No order for mined transaction, skipping")
			return nil
		}
		return err
	}

	if order.IsTerminal(order.State(o.State)) {
		return nil
	}

	target, err := r.outcomeFor(ctx, o, evt)
	if err != nil {
		return err
	}
	if target == "" {
		logger.Info().Msg("No known forwarder log yet, leaving order submitted")
		return nil
	}

	if err := r.orders.Transition(ctx, o.ID, target, nil); err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			logger.Info().Msg("Order moved concurrently, skipping")
			return nil
		}
		return err
	}

	r.advanceLedger(ctx, o, evt.Hash)
	r.mirrorSponsoredParent(ctx, o, target)

	logger.Info().Str("order_id", o.ID).Str("state", string(target)).Msg("Reconciled mined transaction")

	return nil
}

// outcomeFor decides the terminal state of a mined order. Returns the empty
// state when a sponsored wrapper has no classifiable forwarder log yet.
func (r *Reconciler) outcomeFor(ctx context.Context, o *models.Order, evt *IncludedEvent) (order.State, error) {
	if isForwarderWrapper(o) {
		decoded, err := ClassifyForwarderLogs(evt.Logs)
		if err != nil {
			return "", err
		}
		if decoded == nil {
			return "", nil
		}
		if *decoded.Success {
			return order.StateCompleted, nil
		}

		return order.StateCompletedWithError, nil
	}

	client, err := r.pool.ForChain(evt.ChainID)
	if err != nil {
		return "", err
	}

	receipt, err := client.TransactionReceipt(ctx, common.HexToHash(evt.Hash))
	if err != nil {
		return "", err
	}

	if receipt.Status == ethtypes.ReceiptStatusSuccessful {
		return order.StateCompleted, nil
	}

	return order.StateCompletedWithError, nil
}

// advanceLedger bumps the nonce ledger past the confirmed nonce. A conflict
// means another worker already advanced it.
func (r *Reconciler) advanceLedger(ctx context.Context, o *models.Order, hash string) {
	data, err := order.DecodeSignatureData(o.Data)
	if err != nil || data.Transaction.Nonce == nil {
		return
	}

	err = r.ledger.Advance(ctx, data.Address, o.ChainID.Int64, data.Transaction.Nonce.ToInt().Int64(), hash)
	if err != nil && !errors.Is(err, nonce.ErrConflict) {
		util.LogFromContext(ctx).Warn().Err(err).Str("order_id", o.ID).Msg("Failed to advance nonce ledger")
	}
}

// mirrorSponsoredParent propagates the wrapper's terminal state to the
// sponsored order it replaces.
func (r *Reconciler) mirrorSponsoredParent(ctx context.Context, o *models.Order, target order.State) {
	if !o.Replaces.Valid {
		return
	}

	parent, err := r.orders.GetByID(ctx, o.Replaces.String)
	if err != nil || parent.OrderType != string(order.TypeSponsored) {
		return
	}

	if err := r.orders.Transition(ctx, parent.ID, target, nil); err != nil && !errors.Is(err, order.ErrInvalidTransition) {
		util.LogFromContext(ctx).Warn().Err(err).Str("order_id", parent.ID).Msg("Failed to mirror sponsored parent state")
	}
}

// HandleReorg batch-moves affected orders to the watcher's computed state,
// REORGED unless the event says otherwise. Orders the transition map does not
// allow to move are skipped without error.
func (r *Reconciler) HandleReorg(ctx context.Context, evt *ReorgEvent) (int64, error) {
	target := evt.NewState
	if target == "" {
		target = order.StateReorged
	}

	affected, err := r.orders.ReorgByTransactionHashes(ctx, evt.ChainID, evt.TransactionHashes, target)
	if err != nil {
		return 0, err
	}

	util.LogFromContext(ctx).Info().
		Int64("chain_id", evt.ChainID).
		Int("transaction_hashes", len(evt.TransactionHashes)).
		Str("new_state", string(target)).
		Int64("affected", affected).
		Msg("Reorged orders")

	return affected, nil
}

// isForwarderWrapper reports whether the order's transaction is an ERC-2771
// forwarder call spawned from a sponsored order.
func isForwarderWrapper(o *models.Order) bool {
	if !o.Replaces.Valid {
		return false
	}

	data, err := order.DecodeSignatureData(o.Data)
	if err != nil {
		return false
	}

	return data.Transaction.SponsorAddresses != nil
}
