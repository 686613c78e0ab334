package chain

import (
	"context"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

const monitorBatchLimit = 100

// sweepableTypes are the order types the stale sweep may drop. Sponsored
// orders are resolved only by forwarder log decoding and are never swept.
var sweepableTypes = []order.Type{
	order.TypeSignature,
	order.TypeSpeedup,
	order.TypeCancellation,
}

// Monitor periodically rechecks orders that stopped moving: submitted
// transactions that fell out of the mempool are dropped, and selections whose
// submit worker died are failed so the address unblocks.
type Monitor struct {
	config config.Engine
	orders *order.Store
	pool   *RPCPool
	clock  time2.Clock
}

func NewMonitor(cfg config.Engine, orders *order.Store, pool *RPCPool, clock time2.Clock) *Monitor {
	return &Monitor{
		config: cfg,
		orders: orders,
		pool:   pool,
		clock:  clock,
	}
}

// Sweep runs one pass over stale submitted and stale selected orders. Scans
// resume naturally on the next tick via last_modified_at.
func (m *Monitor) Sweep(ctx context.Context) error {
	cutoff := order.BoundedTime{
		Time:  m.clock.Now().Add(-m.config.LastModifiedThreshold),
		Limit: monitorBatchLimit,
	}

	if err := m.sweepSubmitted(ctx, cutoff); err != nil {
		return err
	}

	return m.sweepSelected(ctx, cutoff)
}

func (m *Monitor) sweepSubmitted(ctx context.Context, cutoff order.BoundedTime) error {
	stale, err := m.orders.StaleSubmitted(ctx, cutoff, sweepableTypes)
	if err != nil {
		return err
	}

	for _, o := range stale {
		if err := m.checkSubmitted(ctx, o); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Str("order_id", o.ID).Msg("Failed to check stale submitted order")
		}
	}

	return nil
}

func (m *Monitor) checkSubmitted(ctx context.Context, o *models.Order) error {
	if !o.TransactionHash.Valid || !o.ChainID.Valid {
		return errors.Errorf("submitted order %s has no transaction hash", o.ID)
	}

	client, err := m.pool.ForChain(o.ChainID.Int64)
	if err != nil {
		return err
	}

	_, _, err = client.TransactionByHash(ctx, common.HexToHash(o.TransactionHash.String))
	if err == nil {
		// still known to the chain, wait for the listener
		return m.orders.Touch(ctx, o.ID)
	}
	if !errors.Is(errors.Cause(err), ethereum.NotFound) {
		return err
	}

	if err := m.orders.Transition(ctx, o.ID, order.StateDropped, nil); err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			return nil
		}
		return err
	}

	util.LogFromContext(ctx).Info().
		Str("order_id", o.ID).
		Str("transaction_hash", o.TransactionHash.String).
		Msg("Dropped stale order, transaction no longer in chain")

	return nil
}

func (m *Monitor) sweepSelected(ctx context.Context, cutoff order.BoundedTime) error {
	stale, err := m.orders.StaleInState(ctx, order.StateSelectedForSigning, cutoff)
	if err != nil {
		return err
	}

	for _, o := range stale {
		err := m.orders.SetTerminalError(ctx, o.ID, order.Error{
			Code:    "stale_selection",
			Message: "order was selected for signing but never submitted",
		})
		if err != nil && !errors.Is(err, order.ErrInvalidTransition) {
			util.LogFromContext(ctx).Warn().Err(err).Str("order_id", o.ID).Msg("Failed to fail stale selected order")
			continue
		}

		util.LogFromContext(ctx).Info().Str("order_id", o.ID).Msg("Failed stale selected order")
	}

	return nil
}
