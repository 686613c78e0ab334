package chain

import (
	"strings"

	"github/custodia/signing-service/internal/order"
)

// Submission error codes recorded on NOT_SUBMITTED orders.
const (
	ErrCodeInsufficientFunds      = "insufficient_funds"
	ErrCodeReplacementUnderpriced = "replacement_underpriced"
	ErrCodeNonceConflict          = "nonce_conflict"
	ErrCodeGasLimit               = "gas_limit"
	ErrCodeUnknown                = "unknown_error"
)

// ClassifySubmissionError maps an RPC rejection to a machine-readable code
// while keeping the node's original reason as the message.
func ClassifySubmissionError(err error) order.Error {
	message := err.Error()
	lower := strings.ToLower(message)

	code := ErrCodeUnknown
	switch {
	case strings.Contains(lower, "insufficient funds"):
		code = ErrCodeInsufficientFunds
	case strings.Contains(lower, "replacement transaction underpriced"),
		strings.Contains(lower, "transaction underpriced"):
		code = ErrCodeReplacementUnderpriced
	case strings.Contains(lower, "nonce too low"),
		strings.Contains(lower, "nonce too high"),
		strings.Contains(lower, "already known"):
		code = ErrCodeNonceConflict
	case strings.Contains(lower, "exceeds block gas limit"),
		strings.Contains(lower, "intrinsic gas too low"):
		code = ErrCodeGasLimit
	}

	return order.Error{
		Code:    code,
		Message: message,
	}
}
