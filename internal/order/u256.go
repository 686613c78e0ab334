package order

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

var maxU256 = new(big.Int).Lsh(big.NewInt(1), 256)

// U256 is an unsigned 256-bit integer. It accepts decimal strings and
// 0x-prefixed hexadecimal strings on input and always serializes as a decimal
// string, so values survive JSON round trips without float truncation.
type U256 big.Int

// NewU256 wraps v. The caller keeps ownership of v.
func NewU256(v *big.Int) *U256 {
	if v == nil {
		return nil
	}

	return (*U256)(new(big.Int).Set(v))
}

// ParseU256 parses a decimal or 0x-prefixed hexadecimal string.
func ParseU256(s string) (*U256, error) {
	if s == "" {
		return nil, errors.New("empty integer value")
	}

	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errors.Errorf("invalid integer value %q", s)
	}
	if v.Sign() < 0 {
		return nil, errors.Errorf("negative integer value %q", s)
	}
	if v.Cmp(maxU256) >= 0 {
		return nil, errors.Errorf("integer value %q exceeds 256 bits", s)
	}

	return (*U256)(v), nil
}

// ToInt returns the wrapped big integer.
func (u *U256) ToInt() *big.Int {
	return (*big.Int)(u)
}

func (u *U256) String() string {
	if u == nil {
		return "0"
	}

	return (*big.Int)(u).String()
}

func (u U256) MarshalJSON() ([]byte, error) {
	return json.Marshal((*big.Int)(&u).String())
}

func (u *U256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "integer value must be a string")
	}

	v, err := ParseU256(s)
	if err != nil {
		return err
	}

	*u = *v

	return nil
}
