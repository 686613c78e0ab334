package sponsored

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
)

func testRequest() *Request {
	return &Request{
		To:       "0x1C965d1241D0040A3fC2A030BAeeEfB35C155a4e",
		Value:    (*order.U256)(big.NewInt(1500)),
		Data:     hexutil.Bytes{0xa9, 0x05, 0x9c, 0xbb},
		Deadline: "1792534800",
		ChainID:  11155111,
	}
}

func testSponsor() *models.SponsorAddress {
	return &models.SponsorAddress{
		ClientID:         "client-1",
		ChainID:          11155111,
		GasPoolAddress:   "0x88d8bf6a479f320ead074411a4b0e7944ea8c9c1",
		ForwarderAddress: "0xd04f98c88ce1054ca90a7a2d92b5b669ce182cea",
		ForwarderName:    "Forwarder 1",
	}
}

func TestBuildTypedData(t *testing.T) {
	typedData := buildTypedData("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1", testSponsor(), testRequest())

	assert.Equal(t, "ForwardRequest", typedData.PrimaryType)
	assert.Equal(t, "Forwarder 1", typedData.Domain.Name)
	assert.Equal(t, "1", typedData.Domain.Version)
	assert.Equal(t, "0xd04f98c88ce1054ca90a7a2d92b5b669ce182cea", typedData.Domain.VerifyingContract)

	assert.Equal(t, "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1", typedData.Message["from"])
	assert.Equal(t, "0x1c965d1241d0040a3fc2a030baeeefb35c155a4e", typedData.Message["to"])
	assert.Equal(t, "1500", typedData.Message["value"])
	assert.Equal(t, metaTransactionGas, typedData.Message["gas"])
	assert.Equal(t, "0", typedData.Message["nonce"])
	assert.Equal(t, "1792534800", typedData.Message["deadline"])
	assert.Equal(t, "0xa9059cbb", typedData.Message["data"])

	require.Contains(t, typedData.Types, "ForwardRequest")
	assert.Len(t, typedData.Types["ForwardRequest"], 7)
}

func TestForwardRequestFromTypedData(t *testing.T) {
	sponsor := testSponsor()
	typedData := buildTypedData("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1", sponsor, testRequest())

	data := &order.SignatureData{
		Transaction: order.Transaction{
			ChainID:   11155111,
			TypedData: typedData,
			SponsorAddresses: &order.SponsorAddresses{
				GasPoolAddress:   sponsor.GasPoolAddress,
				ForwarderAddress: sponsor.ForwarderAddress,
				ForwarderName:    sponsor.ForwarderName,
			},
		},
		Address:          "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1",
		MaestroSignature: "0x1b2c3d",
	}

	request, err := forwardRequestFromTypedData(data)
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"), request.From)
	assert.Equal(t, common.HexToAddress("0x1c965d1241d0040a3fc2a030baeeefb35c155a4e"), request.To)
	assert.Equal(t, int64(1500), request.Value.Int64())
	assert.Equal(t, int64(75000), request.Gas.Int64())
	assert.Equal(t, int64(1792534800), request.Deadline.Int64())
	assert.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, request.Data)
	assert.Equal(t, []byte{0x1b, 0x2c, 0x3d}, request.Signature)
}

func TestForwardRequestFromTypedDataRejectsMissingSignature(t *testing.T) {
	typedData := buildTypedData("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1", testSponsor(), testRequest())

	data := &order.SignatureData{
		Transaction:      order.Transaction{ChainID: 11155111, TypedData: typedData},
		MaestroSignature: "not hex",
	}

	_, err := forwardRequestFromTypedData(data)
	require.Error(t, err)
}

func TestEncodeExecuteBatch(t *testing.T) {
	request := forwardRequest{
		From:      common.HexToAddress("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"),
		To:        common.HexToAddress("0x1c965d1241d0040a3fc2a030baeeefb35c155a4e"),
		Value:     big.NewInt(0),
		Gas:       big.NewInt(75000),
		Deadline:  big.NewInt(1792534800),
		Data:      []byte{0xa9, 0x05, 0x9c, 0xbb},
		Signature: []byte{0x1b},
	}

	encoded, err := forwarderABI.Pack("executeBatch", []forwardRequest{request}, request.From)
	require.NoError(t, err)

	// 4-byte selector of executeBatch((address,address,uint256,uint256,uint48,bytes,bytes)[],address)
	assert.Equal(t, forwarderABI.Methods["executeBatch"].ID, encoded[:4])
	assert.Greater(t, len(encoded), 4)
}
