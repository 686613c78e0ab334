package orders

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/replacement"
	"github/custodia/signing-service/internal/types"
)

// gasValuesFromPayload parses the gas fields of a speedup or cancellation
// request, accepting decimal and 0x-hex values. A nil payload yields empty
// gas values, which the replacement validation rejects with a precise message
// when they are needed.
func gasValuesFromPayload(p *types.ReplacementTransactionPayload) (*replacement.GasValues, error) {
	gas := &replacement.GasValues{}
	if p == nil {
		return gas, nil
	}

	fields := []struct {
		key   string
		raw   string
		value **order.U256
	}{
		{"gas_price", p.GasPrice, &gas.GasPrice},
		{"max_fee_per_gas", p.MaxFeePerGas, &gas.MaxFeePerGas},
		{"max_priority_fee_per_gas", p.MaxPriorityFeePerGas, &gas.MaxPriorityFeePerGas},
	}

	for _, f := range fields {
		if f.raw == "" {
			continue
		}

		parsed, err := order.ParseU256(f.raw)
		if err != nil {
			return nil, httperrors.NewHTTPValidationError(
				http.StatusBadRequest,
				types.HTTPErrorCodeValidation,
				http.StatusText(http.StatusBadRequest),
				[]*types.HTTPValidationErrorDetail{
					{
						Key:   swag.String(f.key),
						In:    swag.String("body"),
						Error: swag.String(err.Error()),
					},
				},
			)
		}

		*f.value = parsed
	}

	return gas, nil
}

// replacementValidationError maps a replacement validation failure to HTTP 400
// keeping the service's message.
func replacementValidationError(valErr *replacement.ValidationError) error {
	return httperrors.NewHTTPValidationError(
		http.StatusBadRequest,
		types.HTTPErrorCodeValidation,
		valErr.Error(),
		[]*types.HTTPValidationErrorDetail{
			{
				Key:   swag.String("transaction"),
				In:    swag.String("body"),
				Error: swag.String(valErr.Error()),
			},
		},
	)
}
