package engine

import (
	"context"
	"encoding/json"
	"math/big"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/approver"
	"github/custodia/signing-service/internal/chain"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/maestro"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/selector"
	"github/custodia/signing-service/internal/sponsored"
	"github/custodia/signing-service/internal/util"
)

const tickBatchLimit = 25

// Engine drives the order pipeline: it processes key creation orders, wraps
// signed sponsored orders, selects signed orders for a nonce, re-signs them
// with the assigned nonce and broadcasts them. It also runs the approval
// timeout sweep and the stale-order monitor.
type Engine struct {
	config    config.Engine
	orders    *order.Store
	selector  *selector.Selector
	monitor   *chain.Monitor
	approvals *approver.Coordinator
	bus       *approver.Bus
	bundler   *sponsored.Bundler
	creator   *keys.Creator
	signer    *maestro.Client
	submitter *chain.Submitter

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(cfg config.Engine, orders *order.Store, sel *selector.Selector, monitor *chain.Monitor, approvals *approver.Coordinator, bus *approver.Bus, bundler *sponsored.Bundler, creator *keys.Creator, signer *maestro.Client, submitter *chain.Submitter) *Engine {
	return &Engine{
		config:    cfg,
		orders:    orders,
		selector:  sel,
		monitor:   monitor,
		approvals: approvals,
		bus:       bus,
		bundler:   bundler,
		creator:   creator,
		signer:    signer,
		submitter: submitter,
		stopCh:    make(chan struct{}),
	}
}

// Start launches the worker loops. They run until Stop is called or the
// context is cancelled.
func (e *Engine) Start(ctx context.Context) {
	e.loop(ctx, e.config.SelectorInterval, e.tick)
	e.loop(ctx, e.config.MonitorInterval, e.monitor.Sweep)
	e.loop(ctx, e.config.ApprovalSweepInterval, e.approvals.SweepTimeouts)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		err := e.bus.ConsumeResponses(ctx, e.approvals.IngestResponse)
		if err != nil && !errors.Is(err, context.Canceled) {
			util.LogFromContext(ctx).Error().Err(err).Msg("Approval response consumer stopped")
		}
	}()

	util.LogFromContext(ctx).Info().Msg("Started order engine")
}

// Stop signals all loops and waits for them to drain.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopCh)
	})
	e.wg.Wait()
}

func (e *Engine) loop(ctx context.Context, interval time.Duration, fn func(ctx context.Context) error) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-e.stopCh:
				return
			case <-ticker.C:
				if err := fn(ctx); err != nil {
					util.LogFromContext(ctx).Error().Err(err).Msg("Engine sweep failed")
				}
			}
		}
	}()
}

// tick runs one pipeline pass.
func (e *Engine) tick(ctx context.Context) error {
	logger := util.LogFromContext(ctx)

	pending, err := e.orders.ListByTypeState(ctx, order.TypeKeyCreation, order.StateReceived, tickBatchLimit)
	if err != nil {
		return err
	}
	for _, o := range pending {
		if err := e.creator.Process(ctx, o); err != nil {
			logger.Error().Err(err).Str("order_id", o.ID).Msg("Failed to process key creation order")
		}
	}

	stranded, err := e.orders.ListByTypeState(ctx, order.TypeKeyCreation, order.StateSigned, tickBatchLimit)
	if err != nil {
		return err
	}
	for _, o := range stranded {
		if err := e.creator.Finalize(ctx, o); err != nil {
			logger.Error().Err(err).Str("order_id", o.ID).Msg("Failed to finalize key creation order")
		}
	}

	unwrapped, err := e.orders.SignedSponsoredUnwrapped(ctx, tickBatchLimit)
	if err != nil {
		return err
	}
	for _, o := range unwrapped {
		if _, err := e.bundler.Wrap(ctx, o); err != nil {
			logger.Error().Err(err).Str("order_id", o.ID).Msg("Failed to wrap sponsored order")
		}
	}

	lanes, err := e.orders.SignedKeyChains(ctx, tickBatchLimit)
	if err != nil {
		return err
	}
	for _, lane := range lanes {
		o, err := e.selector.SelectNext(ctx, lane.KeyID, lane.ChainID)
		if err != nil {
			logger.Error().Err(err).Str("key_id", lane.KeyID).Int64("chain_id", lane.ChainID).Msg("Order selection failed")
			continue
		}
		if o == nil {
			continue
		}

		if err := e.submit(ctx, o); err != nil {
			logger.Error().Err(err).Str("order_id", o.ID).Msg("Order submission failed")
		}
	}

	return nil
}

// submit re-signs the selected order with its assigned nonce and broadcasts
// the result. The signer authority holds the key, so the nonce-zero payload
// the approvers reviewed is signed again with the replacement nonce.
func (e *Engine) submit(ctx context.Context, o *models.Order) error {
	data, err := order.DecodeSignatureData(o.Data)
	if err != nil {
		return err
	}
	if data.Transaction.Nonce == nil {
		return errors.Errorf("order %s was selected without a nonce", o.ID)
	}

	pol, err := order.DecodePolicy(o.Policy.JSON)
	if err != nil {
		return err
	}

	normalized := data.Transaction
	normalized.Nonce = (*order.U256)(big.NewInt(0))
	rawTransaction, err := json.Marshal(&normalized)
	if err != nil {
		return errors.Wrap(err, "failed to marshal transaction for signing")
	}

	replacementNonce := data.Transaction.Nonce.ToInt().Int64()
	res, err := e.signer.Sign(ctx, &maestro.SignRequest{
		OrderID:             o.ID,
		KeyID:               data.KeyID.String(),
		TransactionType:     data.Transaction.Kind(),
		Transaction:         rawTransaction,
		PolicyName:          pol.Name,
		AuthorizingEntities: approver.AuthorizingEntities(pol),
		ReplacementNonce:    &replacementNonce,
	})
	if err != nil {
		var rejected *maestro.ErrRejected
		if errors.As(err, &rejected) {
			return e.orders.SetTerminalError(ctx, o.ID, order.Error{
				Code:    "signer_rejected",
				Message: rejected.Reason,
			})
		}
		return err
	}

	return e.submitter.Submit(ctx, o, data.Transaction.ChainID, res.SignedTransaction)
}
