package types

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PutNoncePayload overrides the tracked nonce of an address on a chain.
type PutNoncePayload struct {
	// Required: true
	Value *int64 `json:"value"`
}

func (m *PutNoncePayload) Validate(formats strfmt.Registry) error {
	return validate.Required("value", "body", m.Value)
}

// CancelPendingResponse reports how many orders a bulk cancellation swept.
type CancelPendingResponse struct {
	// Required: true
	CancelledOrders *int64 `json:"cancelled_orders"`
}

func (m *CancelPendingResponse) Validate(formats strfmt.Registry) error {
	return validate.Required("cancelled_orders", "body", m.CancelledOrders)
}

// OrderCountsResponse maps order states to their current row counts.
type OrderCountsResponse struct {
	Counts map[string]int64 `json:"counts"`
}

func (m *OrderCountsResponse) Validate(formats strfmt.Registry) error {
	return nil
}
