package intake

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

// ValidationError rejects a malformed signature order request. Handlers map
// it to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Pipeline starts the approval flow for a freshly created order.
type Pipeline interface {
	Begin(ctx context.Context, o *models.Order) error
}

// Service validates and records signature orders for a client's key.
type Service struct {
	config   config.Engine
	orders   *order.Store
	keys     *keys.Directory
	pipeline Pipeline
}

func NewService(cfg config.Engine, orders *order.Store, keyDir *keys.Directory, pipeline Pipeline) *Service {
	return &Service{
		config:   cfg,
		orders:   orders,
		keys:     keyDir,
		pipeline: pipeline,
	}
}

// CreateSignatureOrder records a signature order in RECEIVED for the key
// behind address and hands it to the approval flow. The key must belong to
// the calling client, foreign addresses surface as not found.
func (s *Service) CreateSignatureOrder(ctx context.Context, clientID string, address string, tx *order.Transaction) (*models.Order, error) {
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	key, err := s.keys.ByAddressForClient(ctx, address, clientID)
	if err != nil {
		return nil, err
	}

	data := &order.SignatureData{
		Transaction: *tx,
		Address:     key.Address,
		KeyID:       uuid.MustParse(key.ID),
	}
	data.Transaction.To = strings.ToLower(tx.To)

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal signature order data")
	}

	o := &models.Order{
		ID:           uuid.NewString(),
		OrderVersion: s.config.DefaultOrderVersion,
		OrderType:    string(order.TypeSignature),
		State:        string(order.StateReceived),
		ClientID:     clientID,
		KeyID:        null.StringFrom(key.ID),
		Address:      null.StringFrom(key.Address),
		ChainID:      null.Int64From(tx.ChainID),
		Data:         raw,
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	if err := s.pipeline.Begin(ctx, o); err != nil {
		return nil, err
	}

	util.LogFromContext(ctx).Info().
		Str("order_id", o.ID).
		Str("address", key.Address).
		Int64("chain_id", tx.ChainID).
		Msg("Created signature order")

	return o, nil
}

// validateTransaction enforces the transaction union: exactly one fee model,
// a destination and a chain.
func validateTransaction(tx *order.Transaction) error {
	if tx == nil {
		return &ValidationError{Message: "transaction is required"}
	}
	if tx.To == "" {
		return &ValidationError{Message: "transaction to address is required"}
	}
	if tx.ChainID == 0 {
		return &ValidationError{Message: "transaction chain_id is required"}
	}
	if tx.TypedData != nil {
		return &ValidationError{Message: "typed data transactions are created through the sponsored endpoint"}
	}

	legacy := tx.GasPrice != nil
	dynamic := tx.MaxFeePerGas != nil || tx.MaxPriorityFeePerGas != nil

	switch {
	case legacy && dynamic:
		return &ValidationError{Message: "transaction can't carry both gas_price and EIP-1559 fee fields"}
	case !legacy && !dynamic:
		return &ValidationError{Message: "transaction must carry gas_price or max_fee_per_gas and max_priority_fee_per_gas"}
	case dynamic && (tx.MaxFeePerGas == nil || tx.MaxPriorityFeePerGas == nil):
		return &ValidationError{Message: "EIP-1559 transactions require both max_fee_per_gas and max_priority_fee_per_gas"}
	}

	if tx.Gas == nil {
		return &ValidationError{Message: "transaction gas is required"}
	}

	return nil
}
