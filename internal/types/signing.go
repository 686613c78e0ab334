package types

import (
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostCreateKeyPayload requests a new key pair for a client user.
type PostCreateKeyPayload struct {
	// Required: true
	ClientUserID *string `json:"client_user_id"`
	OwningUserID string  `json:"owning_user_id,omitempty"`
}

func (m *PostCreateKeyPayload) Validate(formats strfmt.Registry) error {
	return validate.Required("client_user_id", "body", m.ClientUserID)
}

// OrderCreatedResponse is the acknowledgement of an accepted order.
type OrderCreatedResponse struct {
	// Required: true
	OrderID *string `json:"order_id"`
}

func (m *OrderCreatedResponse) Validate(formats strfmt.Registry) error {
	return validate.Required("order_id", "body", m.OrderID)
}

// PostSignTransactionPayload carries the transaction to sign. The transaction
// is passed through verbatim and decoded by the intake layer, which owns its
// shape.
type PostSignTransactionPayload struct {
	// Required: true
	Transaction json.RawMessage `json:"transaction"`
}

func (m *PostSignTransactionPayload) Validate(formats strfmt.Registry) error {
	if len(m.Transaction) == 0 {
		return validate.Required("transaction", "body", nil)
	}

	return nil
}

// ReplacementTransactionPayload carries the gas fields of a speedup or
// cancellation request.
type ReplacementTransactionPayload struct {
	GasPrice             string `json:"gas_price,omitempty"`
	MaxFeePerGas         string `json:"max_fee_per_gas,omitempty"`
	MaxPriorityFeePerGas string `json:"max_priority_fee_per_gas,omitempty"`
}

func (m *ReplacementTransactionPayload) Validate(formats strfmt.Registry) error {
	return nil
}

// PostSpeedupPayload requests a speedup replacement.
type PostSpeedupPayload struct {
	// Required: true
	Transaction *ReplacementTransactionPayload `json:"transaction"`
}

func (m *PostSpeedupPayload) Validate(formats strfmt.Registry) error {
	return validate.Required("transaction", "body", m.Transaction)
}

// PostCancelPayload requests a cancellation. The transaction gas fields are
// only needed when the order already reached the chain.
type PostCancelPayload struct {
	Transaction *ReplacementTransactionPayload `json:"transaction,omitempty"`
}

func (m *PostCancelPayload) Validate(formats strfmt.Registry) error {
	return nil
}

// PostApprovalPayload is an approver's decision delivered over HTTP ingress.
type PostApprovalPayload struct {
	// Required: true
	ApproverName *string `json:"approver_name"`
	// Required: true
	ApprovalStatus    *int   `json:"approval_status"`
	StatusReason      string `json:"status_reason,omitempty"`
	Metadata          string `json:"metadata,omitempty"`
	MetadataSignature string `json:"metadata_signature,omitempty"`
}

func (m *PostApprovalPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("approver_name", "body", m.ApproverName); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("approval_status", "body", m.ApprovalStatus); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// OrderStatusResponse is the public projection of an order.
type OrderStatusResponse struct {
	// Required: true
	OrderID *string `json:"order_id"`
	// Required: true
	OrderType *string `json:"order_type"`
	// Required: true
	State                 *string          `json:"state"`
	OrderVersion          string           `json:"order_version,omitempty"`
	TransactionHash       string           `json:"transaction_hash,omitempty"`
	Replaces              string           `json:"replaces,omitempty"`
	ReplacedBy            string           `json:"replaced_by,omitempty"`
	CancellationRequested bool             `json:"cancellation_requested,omitempty"`
	Error                 *PublicHTTPError `json:"error,omitempty"`
	CreatedAt             string           `json:"created_at"`
	LastModifiedAt        string           `json:"last_modified_at"`
}

func (m *OrderStatusResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("order_id", "body", m.OrderID); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("order_type", "body", m.OrderType); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("state", "body", m.State); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// OrderListResponse wraps a page of order projections.
type OrderListResponse struct {
	Orders []*OrderStatusResponse `json:"orders"`
}

func (m *OrderListResponse) Validate(formats strfmt.Registry) error {
	for _, o := range m.Orders {
		if o == nil {
			continue
		}
		if err := o.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// KeyResponse is the public projection of a key.
type KeyResponse struct {
	// Required: true
	KeyID *string `json:"key_id"`
	// Required: true
	Address      *string `json:"address"`
	PublicKey    string  `json:"public_key,omitempty"`
	ClientUserID string  `json:"client_user_id,omitempty"`
	OwningUserID string  `json:"owning_user_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func (m *KeyResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("key_id", "body", m.KeyID); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// KeyListResponse wraps the keys of a client.
type KeyListResponse struct {
	Keys []*KeyResponse `json:"keys"`
}

func (m *KeyListResponse) Validate(formats strfmt.Registry) error {
	for _, k := range m.Keys {
		if k == nil {
			continue
		}
		if err := k.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}
