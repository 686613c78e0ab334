package chain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Forwarder log signatures (topics[0]) emitted by the ERC-2771 forwarder.
var (
	TopicExecutedForwardRequest    = common.HexToHash("0x842fb24a83793558587a3dab2be7674da4a51d09c5542d6dd354e5d0ea70813c")
	TopicForwardInvalidSigner      = common.HexToHash("0xc845a056973bc1f7f2d7cd71736668c2145d9639779c36b557dd323c0d18f784")
	TopicForwarderMismatchedValue  = common.HexToHash("0x70647f79f9d7612ec5cfa541f407ca826be01b69a9a7b3e583781b1002fd93c7")
	TopicForwarderExpiredRequest   = common.HexToHash("0x94eef58a33b817a1b65237e0f9d0e329b852d5ae15f050799b8441eae4390556")
	TopicForwarderUntrustfulTarget = common.HexToHash("0xd2650cd17abcf9f73bc10fd31970fbe854729f4bab904be0d9865a7e3773aa63")
)

var forwarderEventNames = map[common.Hash]string{
	TopicExecutedForwardRequest:    "EXECUTED_FORWARD_REQUEST",
	TopicForwardInvalidSigner:      "ERC2771_FORWARD_INVALID_SIGNER",
	TopicForwarderMismatchedValue:  "ERC2771_FORWARDER_MISMATCHED_VALUE",
	TopicForwarderExpiredRequest:   "ERC2771_FORWARDER_EXPIRED_REQUEST",
	TopicForwarderUntrustfulTarget: "ERC2771_UNTRUSTFUL_TARGET",
}

// DecodedEvent classifies one forwarder log. Success is nil when the
// signature is not a known forwarder event.
type DecodedEvent struct {
	EventName      string
	EventSignature common.Hash
	Success        *bool
}

// DecodeEventLog classifies a log against the known forwarder signatures. An
// EXECUTED_FORWARD_REQUEST succeeds when the last data byte is one; the four
// failure signatures always decode as failed.
func DecodeEventLog(eventLog types.Log) (*DecodedEvent, error) {
	if len(eventLog.Topics) == 0 {
		return nil, errors.New("topics list was empty")
	}

	signature := eventLog.Topics[0]
	name, known := forwarderEventNames[signature]
	if !known {
		return &DecodedEvent{EventSignature: signature}, nil
	}

	success := false
	if signature == TopicExecutedForwardRequest {
		success = len(eventLog.Data) > 0 && eventLog.Data[len(eventLog.Data)-1] == 1
	}

	return &DecodedEvent{
		EventName:      name,
		EventSignature: signature,
		Success:        &success,
	}, nil
}

// ClassifyForwarderLogs scans the logs of a mined sponsored transaction and
// returns the outcome of the first known forwarder event, or nil when no log
// matched and the order must stay SUBMITTED awaiting further logs.
func ClassifyForwarderLogs(logs []types.Log) (*DecodedEvent, error) {
	for _, l := range logs {
		decoded, err := DecodeEventLog(l)
		if err != nil {
			return nil, err
		}
		if decoded.Success != nil {
			return decoded, nil
		}
	}

	return nil, nil
}
