package types

import (
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostIncludedEventPayload reports a mined transaction from the chain
// watcher.
type PostIncludedEventPayload struct {
	// Required: true
	Hash *string `json:"hash"`
	From string  `json:"from,omitempty"`
	// Required: true
	ChainID     *int64         `json:"chain_id"`
	BlockNumber uint64         `json:"block_number,omitempty"`
	BlockHash   string         `json:"block_hash,omitempty"`
	Logs        []ethtypes.Log `json:"logs,omitempty"`
}

func (m *PostIncludedEventPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("hash", "body", m.Hash); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("chain_id", "body", m.ChainID); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostReorgEventPayload names transactions whose blocks were reorged out.
// NewState carries the state the watcher computed for the affected orders and
// defaults to REORGED when empty.
type PostReorgEventPayload struct {
	// Required: true
	ChainID *int64 `json:"chain_id"`
	// Required: true
	TransactionHashes []string `json:"transaction_hashes"`
	NewState          string   `json:"new_state,omitempty"`
}

func (m *PostReorgEventPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("chain_id", "body", m.ChainID); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("transaction_hashes", "body", m.TransactionHashes); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}
