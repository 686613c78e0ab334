package replacement

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

// Pipeline starts the approval flow for a freshly created order.
type Pipeline interface {
	Begin(ctx context.Context, o *models.Order) error
}

// Service creates speedup and cancellation replacements for submitted orders.
// A replacement reuses the original's assigned nonce, so once mined it evicts
// the original transaction from the chain.
type Service struct {
	orders   *order.Store
	pipeline Pipeline
}

func NewService(orders *order.Store, pipeline Pipeline) *Service {
	return &Service{
		orders:   orders,
		pipeline: pipeline,
	}
}

// Result reports the outcome of a speedup or cancellation request. Flagged
// means the order had not been submitted yet, so it was only marked for
// cancellation instead of being replaced on chain.
type Result struct {
	OrderID string
	Flagged bool
}

// Speedup replaces a submitted order with a copy carrying strictly higher gas
// values and the same nonce. The replacement runs through the approval flow
// again before it is signed and broadcast.
func (s *Service) Speedup(ctx context.Context, clientID string, orderID string, gas *GasValues) (*Result, error) {
	o, err := s.orders.GetForClient(ctx, orderID, clientID)
	if err != nil {
		return nil, err
	}

	if err := validateSpeedupType(o); err != nil {
		return nil, err
	}

	if o.State != string(order.StateSubmitted) {
		return nil, validationErrorf("can't perform this operation for an order in state %s", o.State)
	}

	data, err := order.DecodeSignatureData(o.Data)
	if err != nil {
		return nil, err
	}

	if err := validateGasValues(&data.Transaction, gas); err != nil {
		return nil, err
	}

	applyGasValues(&data.Transaction, gas)
	data.MaestroSignature = ""

	repl, err := s.replace(ctx, o, order.TypeSpeedup, data)
	if err != nil {
		return nil, err
	}

	util.LogFromContext(ctx).Info().
		Str("order_id", o.ID).
		Str("replacement_order_id", repl.ID).
		Msg("Created speedup order")

	return &Result{OrderID: repl.ID}, nil
}

// Cancel cancels an order. Orders that have not been submitted yet are only
// flagged, so the selector terminates them before they reach the chain. A
// submitted order is replaced by a zero-value self-transfer with strictly
// higher gas values and the same nonce.
func (s *Service) Cancel(ctx context.Context, clientID string, orderID string, gas *GasValues) (*Result, error) {
	o, err := s.orders.GetForClient(ctx, orderID, clientID)
	if err != nil {
		return nil, err
	}

	err = s.orders.RequestCancellation(ctx, o.ID)
	if err == nil {
		util.LogFromContext(ctx).Info().
			Str("order_id", o.ID).
			Msg("Flagged order for cancellation")

		return &Result{OrderID: o.ID, Flagged: true}, nil
	}
	if !errors.Is(err, order.ErrInvalidTransition) {
		return nil, err
	}

	// The flag did not stick, so the order either got submitted or reached a
	// terminal state in the meantime.
	o, err = s.orders.GetByID(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	if order.IsTerminal(order.State(o.State)) {
		return nil, &ValidationError{Message: "can't perform this operation because the order has reached a terminal state"}
	}

	if o.State != string(order.StateSubmitted) {
		return nil, validationErrorf("can't perform this operation for an order in state %s", o.State)
	}

	if err := validateCancellationType(o); err != nil {
		return nil, err
	}

	data, err := order.DecodeSignatureData(o.Data)
	if err != nil {
		return nil, err
	}

	if err := validateGasValues(&data.Transaction, gas); err != nil {
		return nil, err
	}

	cancellationTransaction(data, gas)

	repl, err := s.replace(ctx, o, order.TypeCancellation, data)
	if err != nil {
		return nil, err
	}

	util.LogFromContext(ctx).Info().
		Str("order_id", o.ID).
		Str("replacement_order_id", repl.ID).
		Msg("Created cancellation order")

	return &Result{OrderID: repl.ID}, nil
}

// replace atomically inserts the replacement order and moves the original to
// REPLACED, then hands the replacement to the approval flow.
func (s *Service) replace(ctx context.Context, original *models.Order, orderType order.Type, data *order.SignatureData) (*models.Order, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal replacement order data")
	}

	repl := &models.Order{
		ID:           uuid.NewString(),
		OrderVersion: original.OrderVersion,
		OrderType:    string(orderType),
		State:        string(order.StateReceived),
		ClientID:     original.ClientID,
		KeyID:        original.KeyID,
		Address:      original.Address,
		ChainID:      original.ChainID,
		Data:         raw,
	}

	if err := s.orders.ReplaceWith(ctx, original, repl); err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			return nil, validationErrorf("can't perform this operation for an order in state %s", original.State)
		}
		return nil, err
	}

	if err := s.pipeline.Begin(ctx, repl); err != nil {
		return nil, err
	}

	return repl, nil
}

// cancellationTransaction rewrites the order data into a zero-value
// self-transfer keeping the assigned nonce, which is the cheapest transaction
// able to occupy the nonce slot.
func cancellationTransaction(data *order.SignatureData, gas *GasValues) {
	data.Transaction.To = strings.ToLower(data.Address)
	data.Transaction.Value = (*order.U256)(big.NewInt(0))
	data.Transaction.Data = hexutil.Bytes{0x00}
	applyGasValues(&data.Transaction, gas)
	data.MaestroSignature = ""
}
