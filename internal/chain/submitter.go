package chain

import (
	"context"
	"encoding/json"

	"github.com/aarondl/null/v8"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/metrics"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

// Submitter broadcasts signed transactions and records the outcome on the
// order. A rejected broadcast is classified and terminally recorded as
// NOT_SUBMITTED; the order never retries on its own.
type Submitter struct {
	pool    *RPCPool
	orders  *order.Store
	metrics *metrics.Service
}

func NewSubmitter(pool *RPCPool, orders *order.Store, m *metrics.Service) *Submitter {
	return &Submitter{
		pool:    pool,
		orders:  orders,
		metrics: m,
	}
}

// Submit broadcasts the signed RLP blob for the order and transitions it to
// SUBMITTED with the transaction hash, or to NOT_SUBMITTED with the
// classified rejection.
func (s *Submitter) Submit(ctx context.Context, o *models.Order, chainID int64, signedTransaction string) error {
	logger := util.LogFromContext(ctx).With().Str("order_id", o.ID).Int64("chain_id", chainID).Logger()

	raw, err := hexutil.Decode(signedTransaction)
	if err != nil {
		return errors.Wrap(err, "failed to decode signed transaction hex")
	}

	client, err := s.pool.ForChain(chainID)
	if err != nil {
		return err
	}

	hash, err := client.SendRawTransaction(ctx, raw)
	s.metrics.CountSubmission(err == nil)
	if err != nil {
		submissionErr := ClassifySubmissionError(errors.Cause(err))
		logger.Warn().
			Err(err).
			Str("code", submissionErr.Code).
			Msg("Transaction rejected by RPC")

		errJSON, marshalErr := json.Marshal(submissionErr)
		if marshalErr != nil {
			return errors.Wrap(marshalErr, "failed to marshal submission error")
		}

		if transitionErr := s.orders.Transition(ctx, o.ID, order.StateNotSubmitted, models.M{
			models.OrderColumns.Error: null.JSONFrom(errJSON),
		}); transitionErr != nil {
			return transitionErr
		}

		return nil
	}

	if err := s.orders.Transition(ctx, o.ID, order.StateSubmitted, models.M{
		models.OrderColumns.TransactionHash: null.StringFrom(hash),
	}); err != nil {
		return err
	}

	logger.Info().Str("transaction_hash", hash).Msg("Submitted transaction")

	return nil
}
