package order

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Transaction is the union of the supported transaction shapes. Exactly one of
// the discriminating field sets is populated: GasPrice for legacy
// transactions, MaxFeePerGas/MaxPriorityFeePerGas for EIP-1559 transactions
// and TypedData for sponsored meta transactions.
type Transaction struct {
	To      string        `json:"to"`
	ChainID int64         `json:"chain_id"`
	Gas     *U256         `json:"gas,omitempty"`
	Value   *U256         `json:"value,omitempty"`
	Data    hexutil.Bytes `json:"data,omitempty"`
	Nonce   *U256         `json:"nonce,omitempty"`

	// legacy only
	GasPrice *U256 `json:"gas_price,omitempty"`

	// EIP-1559 only
	MaxFeePerGas         *U256 `json:"max_fee_per_gas,omitempty"`
	MaxPriorityFeePerGas *U256 `json:"max_priority_fee_per_gas,omitempty"`

	// sponsored only
	TypedData        *apitypes.TypedData `json:"typed_data,omitempty"`
	SponsorAddresses *SponsorAddresses   `json:"sponsor_addresses,omitempty"`
}

// SponsorAddresses carries the gas pool and forwarder configuration resolved
// for a sponsored order at creation time.
type SponsorAddresses struct {
	GasPoolAddress   string `json:"gas_pool_address"`
	ForwarderAddress string `json:"forwarder_address"`
	ForwarderName    string `json:"forwarder_name"`
}

// IsLegacy reports whether the transaction uses the legacy fee model.
func (t *Transaction) IsLegacy() bool {
	return t.GasPrice != nil
}

// IsEIP1559 reports whether the transaction uses the dynamic fee model.
func (t *Transaction) IsEIP1559() bool {
	return t.MaxFeePerGas != nil || t.MaxPriorityFeePerGas != nil
}

// IsSponsored reports whether the transaction is a sponsored meta transaction.
func (t *Transaction) IsSponsored() bool {
	return t.TypedData != nil
}

// Kind returns the wire name of the transaction's shape.
func (t *Transaction) Kind() string {
	switch {
	case t.IsSponsored():
		return "SPONSORED"
	case t.IsEIP1559():
		return "EIP1559"
	default:
		return "LEGACY"
	}
}

// SignatureData is the order data payload of signature, speedup, cancellation
// and sponsored orders.
type SignatureData struct {
	Transaction      Transaction `json:"transaction"`
	Address          string      `json:"address"`
	KeyID            uuid.UUID   `json:"key_id"`
	MaestroSignature string      `json:"maestro_signature,omitempty"`
}

// KeyCreationData is the order data payload of key creation orders. KeyID,
// Address and PublicKey are filled in once the signer authority answers.
type KeyCreationData struct {
	ClientUserID string    `json:"client_user_id"`
	OwningUserID string    `json:"owning_user_id,omitempty"`
	KeyID        uuid.UUID `json:"key_id,omitempty"`
	Address      string    `json:"address,omitempty"`
	PublicKey    string    `json:"public_key,omitempty"`
}

// Error is the terminal error recorded on an order.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Policy is the approval policy snapshot attached to an order at creation.
type Policy struct {
	Name      string      `json:"name"`
	Approvals []*Approval `json:"approvals"`
}

// Approval tracks a single approver of a policy and its eventual response.
type Approval struct {
	Level    string            `json:"level"`
	Name     string            `json:"name"`
	Required bool              `json:"required"`
	Response *ApprovalResponse `json:"response,omitempty"`
}

// ApprovalResponse is the signed decision an approver posts back.
type ApprovalResponse struct {
	OrderID           uuid.UUID `json:"order_id"`
	StatusReason      string    `json:"status_reason"`
	ApprovalStatus    int       `json:"approval_status"`
	ApproverName      string    `json:"approver_name"`
	Metadata          string    `json:"metadata"`
	MetadataSignature string    `json:"metadata_signature"`
}

const (
	// ApprovalStatusApproved is the approval_status value marking approval.
	ApprovalStatusApproved = 1
)

// Approved reports whether every required approver of the policy responded
// with approval. Optional approvers cannot veto.
func (p *Policy) Approved() bool {
	for _, a := range p.Approvals {
		if !a.Required {
			continue
		}
		if a.Response == nil || a.Response.ApprovalStatus != ApprovalStatusApproved {
			return false
		}
	}

	return true
}

// RejectionReasons collects the status reasons of every required approver
// that rejected.
func (p *Policy) RejectionReasons() []string {
	var reasons []string
	for _, a := range p.Approvals {
		if !a.Required || a.Response == nil || a.Response.ApprovalStatus == ApprovalStatusApproved {
			continue
		}
		reason := a.Response.StatusReason
		if reason == "" {
			reason = a.Name + " rejected the order"
		}
		reasons = append(reasons, reason)
	}

	return reasons
}

// Complete reports whether every approver of the policy has responded.
func (p *Policy) Complete() bool {
	for _, a := range p.Approvals {
		if a.Response == nil {
			return false
		}
	}

	return true
}

// ApprovalFor returns the approval slot of the named approver, or nil.
func (p *Policy) ApprovalFor(approverName string) *Approval {
	for _, a := range p.Approvals {
		if a.Name == approverName {
			return a
		}
	}

	return nil
}

// DecodeSignatureData decodes the order data payload of a signature family order.
func DecodeSignatureData(raw []byte) (*SignatureData, error) {
	var data SignatureData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "failed to decode signature order data")
	}

	return &data, nil
}

// DecodeKeyCreationData decodes the order data payload of a key creation order.
func DecodeKeyCreationData(raw []byte) (*KeyCreationData, error) {
	var data KeyCreationData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "failed to decode key creation order data")
	}

	return &data, nil
}

// DecodePolicy decodes the policy snapshot stored on an order.
func DecodePolicy(raw []byte) (*Policy, error) {
	var policy Policy
	if err := json.Unmarshal(raw, &policy); err != nil {
		return nil, errors.Wrap(err, "failed to decode order policy")
	}

	return &policy, nil
}
