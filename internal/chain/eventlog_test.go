package chain_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/chain"
)

var (
	dataSuccess = hexutil.MustDecode("0x00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001")
	dataError   = hexutil.MustDecode("0x00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000")
)

func buildLog(topic common.Hash, data []byte) types.Log {
	return types.Log{
		Address: common.HexToAddress("0xc59f67a8bff5d8cd03f6ac17265c550ed8f33907"),
		Topics: []common.Hash{
			topic,
			common.HexToHash("0x000000000000000000000000c0ccbc1f4596c7dd07f42fe2f0d3304aa97c9ed6"),
		},
		Data: data,
	}
}

func TestDecodeEventLogExecutedSuccess(t *testing.T) {
	decoded, err := chain.DecodeEventLog(buildLog(chain.TopicExecutedForwardRequest, dataSuccess))
	require.NoError(t, err)
	assert.Equal(t, "EXECUTED_FORWARD_REQUEST", decoded.EventName)
	require.NotNil(t, decoded.Success)
	assert.True(t, *decoded.Success)
}

func TestDecodeEventLogExecutedFailure(t *testing.T) {
	decoded, err := chain.DecodeEventLog(buildLog(chain.TopicExecutedForwardRequest, dataError))
	require.NoError(t, err)
	require.NotNil(t, decoded.Success)
	assert.False(t, *decoded.Success)
}

func TestDecodeEventLogFailureSignatures(t *testing.T) {
	for name, topic := range map[string]common.Hash{
		"ERC2771_FORWARD_INVALID_SIGNER":     chain.TopicForwardInvalidSigner,
		"ERC2771_FORWARDER_MISMATCHED_VALUE": chain.TopicForwarderMismatchedValue,
		"ERC2771_FORWARDER_EXPIRED_REQUEST":  chain.TopicForwarderExpiredRequest,
		"ERC2771_UNTRUSTFUL_TARGET":          chain.TopicForwarderUntrustfulTarget,
	} {
		decoded, err := chain.DecodeEventLog(buildLog(topic, dataSuccess))
		require.NoError(t, err)
		assert.Equal(t, name, decoded.EventName)
		require.NotNil(t, decoded.Success)
		assert.False(t, *decoded.Success, name)
	}
}

func TestDecodeEventLogUnknownSignature(t *testing.T) {
	unknown := common.HexToHash("0x4dfe1bbbcf077ddc3e01291eea2d5c70c2b422b415d95645b9adcfd678cb1d63")
	decoded, err := chain.DecodeEventLog(buildLog(unknown, dataError))
	require.NoError(t, err)
	assert.Empty(t, decoded.EventName)
	assert.Nil(t, decoded.Success)
}

func TestDecodeEventLogNoTopics(t *testing.T) {
	_, err := chain.DecodeEventLog(types.Log{Data: dataError})
	require.Error(t, err)
}

func TestClassifyForwarderLogs(t *testing.T) {
	unknown := common.HexToHash("0x4dfe1bbbcf077ddc3e01291eea2d5c70c2b422b415d95645b9adcfd678cb1d63")

	decoded, err := chain.ClassifyForwarderLogs([]types.Log{
		buildLog(unknown, dataError),
		buildLog(chain.TopicExecutedForwardRequest, dataSuccess),
	})
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.True(t, *decoded.Success)

	decoded, err = chain.ClassifyForwarderLogs([]types.Log{buildLog(unknown, dataError)})
	require.NoError(t, err)
	assert.Nil(t, decoded)
}
