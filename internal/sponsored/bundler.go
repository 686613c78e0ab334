package sponsored

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/chain"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

// executeBatchABI is the ERC-2771 forwarder entrypoint the wrapper
// transaction calls. The refund receiver collects unspent gas value.
const executeBatchABI = `[{"inputs":[{"components":[{"internalType":"address","name":"from","type":"address"},{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"value","type":"uint256"},{"internalType":"uint256","name":"gas","type":"uint256"},{"internalType":"uint48","name":"deadline","type":"uint48"},{"internalType":"bytes","name":"data","type":"bytes"},{"internalType":"bytes","name":"signature","type":"bytes"}],"internalType":"struct ERC2771Forwarder.ForwardRequestData[]","name":"requests","type":"tuple[]"},{"internalType":"address payable","name":"refundReceiver","type":"address"}],"name":"executeBatch","outputs":[],"stateMutability":"payable","type":"function"}]`

var forwarderABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(executeBatchABI))
	if err != nil {
		panic(err)
	}
	return parsed
}()

// forwardRequest mirrors the forwarder's ForwardRequestData tuple.
type forwardRequest struct {
	From      common.Address
	To        common.Address
	Value     *big.Int
	Gas       *big.Int
	Deadline  *big.Int
	Data      []byte
	Signature []byte
}

// Bundler wraps a signed sponsored order into an EIP-1559 transaction from
// the client's gas pool calling the forwarder.
type Bundler struct {
	config   config.Engine
	orders   *order.Store
	keys     *keys.Directory
	fees     *chain.FeeService
	pipeline Pipeline
}

func NewBundler(cfg config.Engine, orders *order.Store, keyDir *keys.Directory, fees *chain.FeeService, pipeline Pipeline) *Bundler {
	return &Bundler{
		config:   cfg,
		orders:   orders,
		keys:     keyDir,
		fees:     fees,
		pipeline: pipeline,
	}
}

// Wrap creates the Signature wrapper of a sponsored order that holds its
// EIP-712 signature. The sponsored order stays SIGNED and mirrors the
// wrapper's terminal state later. Wrapping is idempotent: an order that
// already has a wrapper returns its id.
func (b *Bundler) Wrap(ctx context.Context, o *models.Order) (string, error) {
	if o.ReplacedBy.Valid {
		return o.ReplacedBy.String, nil
	}

	data, err := order.DecodeSignatureData(o.Data)
	if err != nil {
		return "", err
	}
	if !data.Transaction.IsSponsored() || data.Transaction.SponsorAddresses == nil {
		return "", errors.Errorf("order %s is not a sponsored order", o.ID)
	}
	if data.MaestroSignature == "" {
		return "", errors.Errorf("order %s has no typed data signature", o.ID)
	}

	request, err := forwardRequestFromTypedData(data)
	if err != nil {
		return "", err
	}

	encoded, err := forwarderABI.Pack("executeBatch", []forwardRequest{*request}, request.From)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode forwarder call")
	}

	// The gas pool is a service-held account, so it has a key entry.
	gasPool := data.Transaction.SponsorAddresses.GasPoolAddress
	gasPoolKey, err := b.keys.ByAddress(ctx, gasPool)
	if err != nil {
		return "", errors.Wrapf(err, "no key for gas pool address %s", gasPool)
	}

	fees, err := b.fees.Predicted(ctx, data.Transaction.ChainID)
	if err != nil {
		return "", err
	}
	maxFee := fees.MaxFeePerGas.High

	wrapperData := &order.SignatureData{
		Transaction: order.Transaction{
			To:                   strings.ToLower(data.Transaction.SponsorAddresses.ForwarderAddress),
			ChainID:              data.Transaction.ChainID,
			Gas:                  (*order.U256)(new(big.Int).SetUint64(b.config.SponsoredWrapperGas)),
			Value:                (*order.U256)(big.NewInt(0)),
			Data:                 encoded,
			MaxFeePerGas:         (*order.U256)(maxFee),
			MaxPriorityFeePerGas: (*order.U256)(maxFee),
			SponsorAddresses:     data.Transaction.SponsorAddresses,
		},
		Address: gasPoolKey.Address,
		KeyID:   uuid.MustParse(gasPoolKey.ID),
	}

	raw, err := json.Marshal(wrapperData)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal wrapper order data")
	}

	wrapper := &models.Order{
		ID:           uuid.NewString(),
		OrderVersion: o.OrderVersion,
		OrderType:    string(order.TypeSignature),
		State:        string(order.StateReceived),
		ClientID:     o.ClientID,
		KeyID:        null.StringFrom(gasPoolKey.ID),
		Address:      null.StringFrom(gasPoolKey.Address),
		ChainID:      o.ChainID,
		Data:         raw,
	}

	if err := b.orders.CreateLinkedReplacement(ctx, o, wrapper); err != nil {
		return "", err
	}

	if err := b.pipeline.Begin(ctx, wrapper); err != nil {
		return "", err
	}

	util.LogFromContext(ctx).Info().
		Str("order_id", o.ID).
		Str("wrapper_order_id", wrapper.ID).
		Str("gas_pool_address", gasPoolKey.Address).
		Msg("Wrapped sponsored order")

	return wrapper.ID, nil
}

// forwardRequestFromTypedData reads the signed message fields back out of the
// order's typed data.
func forwardRequestFromTypedData(data *order.SignatureData) (*forwardRequest, error) {
	message := data.Transaction.TypedData.Message

	from, err := messageAddress(message, "from")
	if err != nil {
		return nil, err
	}
	to, err := messageAddress(message, "to")
	if err != nil {
		return nil, err
	}
	value, err := messageBig(message, "value")
	if err != nil {
		return nil, err
	}
	gas, err := messageBig(message, "gas")
	if err != nil {
		return nil, err
	}
	deadline, err := messageBig(message, "deadline")
	if err != nil {
		return nil, err
	}
	callData, err := messageBytes(message, "data")
	if err != nil {
		return nil, err
	}
	signature, err := hexutil.Decode(data.MaestroSignature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode typed data signature")
	}

	return &forwardRequest{
		From:      from,
		To:        to,
		Value:     value,
		Gas:       gas,
		Deadline:  deadline,
		Data:      callData,
		Signature: signature,
	}, nil
}

func messageString(message map[string]interface{}, key string) (string, error) {
	v, ok := message[key].(string)
	if !ok {
		return "", errors.Errorf("typed data message field %s is missing or not a string", key)
	}

	return v, nil
}

func messageAddress(message map[string]interface{}, key string) (common.Address, error) {
	v, err := messageString(message, key)
	if err != nil {
		return common.Address{}, err
	}
	if !common.IsHexAddress(v) {
		return common.Address{}, errors.Errorf("typed data message field %s is not an address", key)
	}

	return common.HexToAddress(v), nil
}

func messageBig(message map[string]interface{}, key string) (*big.Int, error) {
	v, err := messageString(message, key)
	if err != nil {
		return nil, err
	}

	n, ok := new(big.Int).SetString(strings.TrimPrefix(v, "0x"), decimalOrHexBase(v))
	if !ok {
		return nil, errors.Errorf("typed data message field %s is not a number", key)
	}

	return n, nil
}

func messageBytes(message map[string]interface{}, key string) ([]byte, error) {
	v, err := messageString(message, key)
	if err != nil {
		return nil, err
	}
	if v == "" || v == "0x" {
		return []byte{}, nil
	}

	raw, err := hexutil.Decode(v)
	if err != nil {
		return nil, errors.Wrapf(err, "typed data message field %s is not hex", key)
	}

	return raw, nil
}

func decimalOrHexBase(v string) int {
	if strings.HasPrefix(v, "0x") {
		return 16
	}

	return 10
}
