package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/keys"
)

const (
	compressedKey   = "03e68acfc0253a10620dff706b0a1b1f1f5833ea3beb3bde2250d5f271f3563606"
	uncompressedKey = "04e68acfc0253a10620dff706b0a1b1f1f5833ea3beb3bde2250d5f271f3563606672ebc45e0b7ea2e816ecb70ca03137b1c9476eec63d4632e990020b7b6fba39"
	wantAddress     = "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"
)

func TestAddressFromCompressedPublicKey(t *testing.T) {
	addr, err := keys.AddressFromPublicKeyHex(compressedKey)
	require.NoError(t, err)
	assert.Equal(t, wantAddress, addr)
}

func TestAddressFromUncompressedPublicKey(t *testing.T) {
	addr, err := keys.AddressFromPublicKeyHex(uncompressedKey)
	require.NoError(t, err)
	assert.Equal(t, wantAddress, addr)
}

func TestAddressFromPublicKeyHexPrefix(t *testing.T) {
	addr, err := keys.AddressFromPublicKeyHex("0x" + compressedKey)
	require.NoError(t, err)
	assert.Equal(t, wantAddress, addr)
}

func TestAddressFromPublicKeyInvalid(t *testing.T) {
	_, err := keys.AddressFromPublicKeyHex("0xdeadbeef")
	require.Error(t, err)

	_, err = keys.AddressFromPublicKeyHex("zz")
	require.Error(t, err)
}
