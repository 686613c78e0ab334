package selector

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/cache"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/nonce"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

const candidateBatchLimit = 25

// selectionPriority orders the candidate types: replacements must reach the
// chain before anything else, cancellations before speedups.
var selectionPriority = []order.Type{
	order.TypeCancellation,
	order.TypeSpeedup,
	order.TypeSignature,
}

// Selector promotes one signed order per (address, chain) into
// SELECTED_FOR_SIGNING, assigning it the next ledger nonce. A short-lived
// address lock serializes parallel selectors; the conditional state update
// catches whatever slips through.
type Selector struct {
	config config.Engine
	orders *order.Store
	ledger *nonce.Ledger
	keys   *keys.Directory
	locker *cache.Locker
	clock  time2.Clock
}

func New(cfg config.Engine, orders *order.Store, ledger *nonce.Ledger, keyDir *keys.Directory, locker *cache.Locker, clock time2.Clock) *Selector {
	return &Selector{
		config: cfg,
		orders: orders,
		ledger: ledger,
		keys:   keyDir,
		locker: locker,
		clock:  clock,
	}
}

// SelectNext picks the next order of the key on the chain, or nil when
// nothing is pending. Orders flagged for cancellation are cancelled instead
// of selected, and an order pinned to a nonce that is not due yet is skipped
// in favor of the next candidate.
func (s *Selector) SelectNext(ctx context.Context, keyID string, chainID int64) (*models.Order, error) {
	key, err := s.keys.ByID(ctx, keyID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.candidates(ctx, keyID, chainID)
	if err != nil || len(candidates) == 0 {
		return nil, err
	}

	locked, err := s.locker.Acquire(ctx, lockKey(key.Address, chainID))
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, nil
	}
	defer func() {
		if err := s.locker.Release(ctx, lockKey(key.Address, chainID)); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Failed to release address lock")
		}
	}()

	next := int64(-1)

	for _, candidate := range candidates {
		replacement := order.Type(candidate.OrderType).IsReplacement()

		data, err := order.DecodeSignatureData(candidate.Data)
		if err != nil {
			return nil, err
		}

		if !replacement {
			active, err := s.orders.ActiveForKey(ctx, keyID, chainID)
			if err != nil {
				return nil, err
			}
			if active != nil && s.clock.Now().Sub(active.LastModifiedAt) < s.config.SelectorOrderAge {
				// single in-flight slot taken, nothing else is eligible
				return nil, nil
			}

			if next < 0 {
				next, err = s.ledger.Next(ctx, key.Address, chainID)
				if err != nil {
					return nil, err
				}
			}

			if data.Transaction.Nonce != nil && data.Transaction.Nonce.ToInt().Int64() != next {
				// explicit nonce not due yet, try the next candidate
				continue
			}

			data.Transaction.Nonce = (*order.U256)(big.NewInt(next))
		} else if data.Transaction.Nonce == nil {
			return nil, errors.Errorf("replacement order %s carries no nonce", candidate.ID)
		}

		raw, err := json.Marshal(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal order data")
		}

		err = s.orders.Transition(ctx, candidate.ID, order.StateSelectedForSigning, models.M{
			models.OrderColumns.Data: raw,
		})
		if err != nil {
			if errors.Is(err, order.ErrInvalidTransition) {
				return nil, nil
			}
			return nil, err
		}

		candidate.State = string(order.StateSelectedForSigning)
		candidate.Data = raw

		util.LogFromContext(ctx).Info().
			Str("order_id", candidate.ID).
			Str("address", key.Address).
			Int64("chain_id", chainID).
			Msg("Selected order for signing")

		return candidate, nil
	}

	return nil, nil
}

// candidates returns the signed orders of the lane in priority order, oldest
// first within each type, cancelling flagged orders along the way.
func (s *Selector) candidates(ctx context.Context, keyID string, chainID int64) ([]*models.Order, error) {
	var out []*models.Order

	for _, t := range selectionPriority {
		batch, err := s.orders.ListByKeyChainTypeState(ctx, keyID, chainID, t, order.StateSigned, candidateBatchLimit)
		if err != nil {
			return nil, err
		}

		for _, o := range batch {
			if util.FalseIfNil(o.CancellationRequested.Ptr()) {
				if err := s.cancelFlagged(ctx, o); err != nil {
					return nil, err
				}
				continue
			}

			out = append(out, o)
		}
	}

	return out, nil
}

func (s *Selector) cancelFlagged(ctx context.Context, o *models.Order) error {
	err := s.orders.Transition(ctx, o.ID, order.StateCancelled, nil)
	if err != nil && !errors.Is(err, order.ErrInvalidTransition) {
		return err
	}

	util.LogFromContext(ctx).Info().Str("order_id", o.ID).Msg("Cancelled flagged order")

	return nil
}

func lockKey(address string, chainID int64) string {
	return "select:" + address + ":" + formatChainID(chainID)
}

func formatChainID(chainID int64) string {
	return big.NewInt(chainID).String()
}
