package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// FeeBandResponse is a min/median/max aggregate, serialized as decimal
// strings so large fee values survive JSON round trips.
type FeeBandResponse struct {
	// Required: true
	Min *string `json:"min"`
	// Required: true
	Median *string `json:"median"`
	// Required: true
	Max *string `json:"max"`
}

func (m *FeeBandResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("min", "body", m.Min); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("median", "body", m.Median); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("max", "body", m.Max); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// EIP1559FeesResponse groups the dynamic-fee bands.
type EIP1559FeesResponse struct {
	// Required: true
	MaxPriorityFeePerGas *FeeBandResponse `json:"max_priority_fee_per_gas"`
	// Required: true
	MaxFeePerGas *FeeBandResponse `json:"max_fee_per_gas"`
}

func (m *EIP1559FeesResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("max_priority_fee_per_gas", "body", m.MaxPriorityFeePerGas); err != nil {
		res = append(res, err)
	} else if err := m.MaxPriorityFeePerGas.Validate(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("max_fee_per_gas", "body", m.MaxFeePerGas); err != nil {
		res = append(res, err)
	} else if err := m.MaxFeePerGas.Validate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// LegacyFeesResponse groups the legacy gas price band.
type LegacyFeesResponse struct {
	// Required: true
	GasPrice *FeeBandResponse `json:"gas_price"`
}

func (m *LegacyFeesResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("gas_price", "body", m.GasPrice); err != nil {
		return err
	}

	return m.GasPrice.Validate(formats)
}

// HistoricalFeesResponse is the fee-history aggregate for a chain.
type HistoricalFeesResponse struct {
	// Required: true
	EIP1559 *EIP1559FeesResponse `json:"eip1559"`
	// Required: true
	Legacy *LegacyFeesResponse `json:"legacy"`
}

func (m *HistoricalFeesResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("eip1559", "body", m.EIP1559); err != nil {
		res = append(res, err)
	} else if err := m.EIP1559.Validate(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("legacy", "body", m.Legacy); err != nil {
		res = append(res, err)
	} else if err := m.Legacy.Validate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// SuggestedFeesResponse is a low/medium/high suggestion as decimal strings.
type SuggestedFeesResponse struct {
	// Required: true
	Low *string `json:"low"`
	// Required: true
	Medium *string `json:"medium"`
	// Required: true
	High *string `json:"high"`
}

func (m *SuggestedFeesResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("low", "body", m.Low); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("medium", "body", m.Medium); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("high", "body", m.High); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PredictedEIP1559FeesResponse groups the dynamic-fee suggestions.
type PredictedEIP1559FeesResponse struct {
	// Required: true
	MaxPriorityFeePerGas *SuggestedFeesResponse `json:"max_priority_fee_per_gas"`
	// Required: true
	MaxFeePerGas *SuggestedFeesResponse `json:"max_fee_per_gas"`
}

func (m *PredictedEIP1559FeesResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("max_priority_fee_per_gas", "body", m.MaxPriorityFeePerGas); err != nil {
		res = append(res, err)
	} else if err := m.MaxPriorityFeePerGas.Validate(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("max_fee_per_gas", "body", m.MaxFeePerGas); err != nil {
		res = append(res, err)
	} else if err := m.MaxFeePerGas.Validate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PredictedLegacyFeesResponse groups the legacy gas price suggestion.
type PredictedLegacyFeesResponse struct {
	// Required: true
	GasPrice *SuggestedFeesResponse `json:"gas_price"`
}

func (m *PredictedLegacyFeesResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("gas_price", "body", m.GasPrice); err != nil {
		return err
	}

	return m.GasPrice.Validate(formats)
}

// PredictedFeesResponse is the pending-block fee prediction for a chain.
type PredictedFeesResponse struct {
	// Required: true
	EIP1559 *PredictedEIP1559FeesResponse `json:"eip1559"`
	// Required: true
	Legacy *PredictedLegacyFeesResponse `json:"legacy"`
}

func (m *PredictedFeesResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("eip1559", "body", m.EIP1559); err != nil {
		res = append(res, err)
	} else if err := m.EIP1559.Validate(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("legacy", "body", m.Legacy); err != nil {
		res = append(res, err)
	} else if err := m.Legacy.Validate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// NativeBalanceResponse is the native balance of an address as a decimal
// string.
type NativeBalanceResponse struct {
	// Required: true
	Address *string `json:"address"`
	// Required: true
	Balance *string `json:"balance"`
}

func (m *NativeBalanceResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("balance", "body", m.Balance); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostTokenBalancesPayload names the token contracts to query.
type PostTokenBalancesPayload struct {
	// Required: true
	ContractAddresses []string `json:"contract_addresses"`
}

func (m *PostTokenBalancesPayload) Validate(formats strfmt.Registry) error {
	return validate.Required("contract_addresses", "body", m.ContractAddresses)
}

// TokenBalanceResponse is the balance of one token contract.
type TokenBalanceResponse struct {
	// Required: true
	ContractAddress *string `json:"contract_address"`
	// Required: true
	Balance *string `json:"balance"`
}

func (m *TokenBalanceResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("contract_address", "body", m.ContractAddress); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("balance", "body", m.Balance); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// TokenBalanceListResponse wraps the balances of the requested contracts.
type TokenBalanceListResponse struct {
	Balances []*TokenBalanceResponse `json:"balances"`
}

func (m *TokenBalanceListResponse) Validate(formats strfmt.Registry) error {
	for _, b := range m.Balances {
		if b == nil {
			continue
		}
		if err := b.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// PutPolicyMappingPayload assigns a policy to an address or to the chain
// default.
type PutPolicyMappingPayload struct {
	// Required: true
	PolicyName *string `json:"policy_name"`
}

func (m *PutPolicyMappingPayload) Validate(formats strfmt.Registry) error {
	return validate.Required("policy_name", "body", m.PolicyName)
}

// PolicyMappingResponse is one address-to-policy mapping.
type PolicyMappingResponse struct {
	// Required: true
	PolicyName *string `json:"policy_name"`
	Address    string  `json:"address,omitempty"`
	// Required: true
	ChainID *int64 `json:"chain_id"`
}

func (m *PolicyMappingResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("policy_name", "body", m.PolicyName); err != nil {
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

// PostSponsorAddressPayload registers a forwarder and gas pool for a chain.
type PostSponsorAddressPayload struct {
	// Required: true
	ForwarderName *string `json:"forwarder_name"`
	// Required: true
	ForwarderAddress *string `json:"forwarder_address"`
	// Required: true
	GasPoolAddress *string `json:"gas_pool_address"`
}

func (m *PostSponsorAddressPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("forwarder_name", "body", m.ForwarderName); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("forwarder_address", "body", m.ForwarderAddress); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("gas_pool_address", "body", m.GasPoolAddress); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// SponsorAddressResponse is one sponsor configuration entry.
type SponsorAddressResponse struct {
	// Required: true
	ForwarderName *string `json:"forwarder_name"`
	// Required: true
	ForwarderAddress *string `json:"forwarder_address"`
	// Required: true
	GasPoolAddress *string `json:"gas_pool_address"`
	// Required: true
	ChainID   *int64 `json:"chain_id"`
	CreatedAt string `json:"created_at"`
}

func (m *SponsorAddressResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("forwarder_name", "body", m.ForwarderName); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("forwarder_address", "body", m.ForwarderAddress); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("gas_pool_address", "body", m.GasPoolAddress); err != nil {
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

// SponsorAddressListResponse wraps the sponsor entries of a chain.
type SponsorAddressListResponse struct {
	Sponsors []*SponsorAddressResponse `json:"sponsors"`
}

func (m *SponsorAddressListResponse) Validate(formats strfmt.Registry) error {
	for _, s := range m.Sponsors {
		if s == nil {
			continue
		}
		if err := s.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// ReorgEventResponse reports how many submitted orders a reorg touched.
type ReorgEventResponse struct {
	// Required: true
	AffectedOrders *int64 `json:"affected_orders"`
}

func (m *ReorgEventResponse) Validate(formats strfmt.Registry) error {
	return validate.Required("affected_orders", "body", m.AffectedOrders)
}
