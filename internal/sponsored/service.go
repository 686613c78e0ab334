package sponsored

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

// metaTransactionGas is the gas limit written into the EIP-712 forward
// request for the inner call.
const metaTransactionGas = "75000"

// Pipeline starts the approval flow for a freshly created order.
type Pipeline interface {
	Begin(ctx context.Context, o *models.Order) error
}

// Request is the client-supplied part of a sponsored meta transaction.
type Request struct {
	To       string        `json:"to"`
	Value    *order.U256   `json:"value"`
	Data     hexutil.Bytes `json:"data"`
	Deadline string        `json:"deadline"`
	ChainID  int64         `json:"chain_id"`
}

// Service creates sponsored orders: EIP-712 forward requests that are signed
// by the key holder but paid for by the client's gas pool.
type Service struct {
	config   config.Engine
	orders   *order.Store
	keys     *keys.Directory
	sponsors *ConfigStore
	pipeline Pipeline
}

func NewService(cfg config.Engine, orders *order.Store, keyDir *keys.Directory, sponsors *ConfigStore, pipeline Pipeline) *Service {
	return &Service{
		config:   cfg,
		orders:   orders,
		keys:     keyDir,
		sponsors: sponsors,
		pipeline: pipeline,
	}
}

// CreateOrder builds the forward-request typed data for the client's key and
// records a sponsored order in RECEIVED, handing it to the approval flow.
func (s *Service) CreateOrder(ctx context.Context, clientID string, address string, req *Request) (*models.Order, error) {
	key, err := s.keys.ByAddressForClient(ctx, address, clientID)
	if err != nil {
		return nil, err
	}

	sponsor, err := s.sponsors.Resolve(ctx, clientID, req.ChainID)
	if err != nil {
		return nil, err
	}

	typedData := buildTypedData(key.Address, sponsor, req)

	data := &order.SignatureData{
		Transaction: order.Transaction{
			To:        strings.ToLower(req.To),
			ChainID:   req.ChainID,
			TypedData: typedData,
			SponsorAddresses: &order.SponsorAddresses{
				GasPoolAddress:   sponsor.GasPoolAddress,
				ForwarderAddress: sponsor.ForwarderAddress,
				ForwarderName:    sponsor.ForwarderName,
			},
		},
		Address: key.Address,
		KeyID:   uuid.MustParse(key.ID),
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal sponsored order data")
	}

	o := &models.Order{
		ID:           uuid.NewString(),
		OrderVersion: s.config.DefaultOrderVersion,
		OrderType:    string(order.TypeSponsored),
		State:        string(order.StateReceived),
		ClientID:     clientID,
		KeyID:        null.StringFrom(key.ID),
		Address:      null.StringFrom(key.Address),
		ChainID:      null.Int64From(req.ChainID),
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
		Int64("chain_id", req.ChainID).
		Msg("Created sponsored order")

	return o, nil
}

// buildTypedData renders the ERC-2771 forward request the key holder signs.
// The nonce is the forwarder's, managed on chain, and always starts the flow
// at zero; value, gas and deadline ride as decimal strings.
func buildTypedData(from string, sponsor *models.SponsorAddress, req *Request) *apitypes.TypedData {
	value := "0"
	if req.Value != nil {
		value = req.Value.ToInt().String()
	}

	return &apitypes.TypedData{
		Domain: apitypes.TypedDataDomain{
			ChainId:           math.NewHexOrDecimal256(req.ChainID),
			Name:              sponsor.ForwarderName,
			VerifyingContract: sponsor.ForwarderAddress,
			Version:           "1",
		},
		PrimaryType: "ForwardRequest",
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "string"},
				{Name: "verifyingContract", Type: "address"},
			},
			"ForwardRequest": []apitypes.Type{
				{Name: "from", Type: "address"},
				{Name: "to", Type: "address"},
				{Name: "value", Type: "string"},
				{Name: "gas", Type: "string"},
				{Name: "nonce", Type: "string"},
				{Name: "deadline", Type: "string"},
				{Name: "data", Type: "bytes"},
			},
		},
		Message: apitypes.TypedDataMessage{
			"from":     from,
			"to":       strings.ToLower(req.To),
			"value":    value,
			"gas":      metaTransactionGas,
			"nonce":    "0",
			"deadline": req.Deadline,
			"data":     req.Data.String(),
		},
	}
}
