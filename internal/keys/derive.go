package keys

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// AddressFromPublicKey derives the lower-case hex Ethereum address from a SEC1
// encoded secp256k1 public key, either 33-byte compressed or 65-byte
// uncompressed. The address is the last 20 bytes of the Keccak-256 hash of the
// uncompressed point without the 0x04 prefix.
func AddressFromPublicKey(sec1 []byte) (string, error) {
	switch len(sec1) {
	case 33:
		pub, err := crypto.DecompressPubkey(sec1)
		if err != nil {
			return "", errors.Wrap(err, "failed to decompress public key")
		}

		return strings.ToLower(crypto.PubkeyToAddress(*pub).Hex()), nil
	case 65:
		pub, err := crypto.UnmarshalPubkey(sec1)
		if err != nil {
			return "", errors.Wrap(err, "failed to parse uncompressed public key")
		}

		return strings.ToLower(crypto.PubkeyToAddress(*pub).Hex()), nil
	default:
		return "", errors.Errorf("unexpected public key length %d", len(sec1))
	}
}

// AddressFromPublicKeyHex is AddressFromPublicKey on a hex string, with or
// without 0x prefix.
func AddressFromPublicKeyHex(s string) (string, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	raw, err := hexutil.Decode(s)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode public key hex")
	}

	return AddressFromPublicKey(raw)
}
