package replacement

import (
	"fmt"

	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
)

// ValidationError rejects a speedup or cancellation request. Handlers map it
// to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// GasValues carries the replacement gas fields of a speedup or cancellation
// request. Exactly one fee model is populated.
type GasValues struct {
	GasPrice             *order.U256 `json:"gas_price,omitempty"`
	MaxFeePerGas         *order.U256 `json:"max_fee_per_gas,omitempty"`
	MaxPriorityFeePerGas *order.U256 `json:"max_priority_fee_per_gas,omitempty"`
}

// IsLegacy reports whether the replacement uses the legacy fee model.
func (g *GasValues) IsLegacy() bool {
	return g.GasPrice != nil
}

// IsEIP1559 reports whether the replacement uses the dynamic fee model.
func (g *GasValues) IsEIP1559() bool {
	return g.MaxFeePerGas != nil && g.MaxPriorityFeePerGas != nil
}

// validateGasValues checks that the replacement fee model matches the
// original transaction and that every gas value is strictly greater than the
// one it replaces, otherwise the chain would not accept the replacement.
func validateGasValues(original *order.Transaction, replacement *GasValues) error {
	switch {
	case original.IsLegacy() && replacement.IsLegacy():
		if replacement.GasPrice.ToInt().Cmp(original.GasPrice.ToInt()) <= 0 {
			return validationErrorf("original gas price (%s) is higher than new gas price (%s)",
				original.GasPrice.ToInt(), replacement.GasPrice.ToInt())
		}
	case original.IsLegacy():
		return &ValidationError{Message: "can't perform this operation on a legacy transaction with an EIP-1559 transaction"}
	case replacement.IsLegacy():
		return &ValidationError{Message: "can't perform this operation on an EIP-1559 transaction with a legacy transaction"}
	case !replacement.IsEIP1559():
		return &ValidationError{Message: "replacement transaction must carry gas_price or max_fee_per_gas and max_priority_fee_per_gas"}
	default:
		if replacement.MaxFeePerGas.ToInt().Cmp(original.MaxFeePerGas.ToInt()) <= 0 {
			return validationErrorf("original max fee per gas (%s) is higher than new max fee per gas (%s)",
				original.MaxFeePerGas.ToInt(), replacement.MaxFeePerGas.ToInt())
		}
		if replacement.MaxPriorityFeePerGas.ToInt().Cmp(original.MaxPriorityFeePerGas.ToInt()) <= 0 {
			return validationErrorf("original max fee priority per gas (%s) is higher than new max priority fee per gas (%s)",
				original.MaxPriorityFeePerGas.ToInt(), replacement.MaxPriorityFeePerGas.ToInt())
		}
	}

	return nil
}

// validateSpeedupType restricts speedup to plain signature orders.
func validateSpeedupType(o *models.Order) error {
	switch order.Type(o.OrderType) {
	case order.TypeSignature:
		return nil
	case order.TypeSponsored:
		return &ValidationError{Message: "sponsored transactions can't be sped up"}
	default:
		return validationErrorf("can't perform this operation for an order of type %s", o.OrderType)
	}
}

// validateCancellationType restricts on-chain cancellation to plain signature
// orders.
func validateCancellationType(o *models.Order) error {
	if order.Type(o.OrderType) != order.TypeSignature {
		return validationErrorf("can't perform this operation for an order of type %s", o.OrderType)
	}

	return nil
}

// applyGasValues rewrites the transaction's gas fields with the replacement
// values. The fee models are known to match after validateGasValues.
func applyGasValues(tx *order.Transaction, replacement *GasValues) {
	if replacement.IsLegacy() {
		tx.GasPrice = replacement.GasPrice
		return
	}

	tx.MaxFeePerGas = replacement.MaxFeePerGas
	tx.MaxPriorityFeePerGas = replacement.MaxPriorityFeePerGas
}
