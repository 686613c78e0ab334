package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostSignSponsoredPayload requests a gasless meta-transaction through the
// client's forwarder.
type PostSignSponsoredPayload struct {
	// Required: true
	To *string `json:"to"`
	// Required: true
	ChainID *int64        `json:"chain_id"`
	Value   string        `json:"value,omitempty"`
	Data    hexutil.Bytes `json:"data,omitempty"`
	// Required: true
	Deadline *string `json:"deadline"`
}

func (m *PostSignSponsoredPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("to", "body", m.To); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("chain_id", "body", m.ChainID); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("deadline", "body", m.Deadline); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}
