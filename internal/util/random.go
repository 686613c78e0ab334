package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomBytes returns n cryptographically secure random bytes.
func GenerateRandomBytes(n int) []byte {
	b := make([]byte, n)
	// rand.Read never returns a partial read without an error
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return b
}

// GenerateRandomHexString returns a hex string encoding n random bytes.
func GenerateRandomHexString(n int) string {
	return hex.EncodeToString(GenerateRandomBytes(n))
}
