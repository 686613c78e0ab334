package order_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/order"
)

func TestParseU256(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *big.Int
		wantErr bool
	}{
		{name: "decimal", in: "1000000000", want: big.NewInt(1000000000)},
		{name: "hex", in: "0x3b9aca00", want: big.NewInt(1000000000)},
		{name: "hex uppercase prefix", in: "0X2A", want: big.NewInt(42)},
		{name: "zero", in: "0", want: big.NewInt(0)},
		{name: "empty", in: "", wantErr: true},
		{name: "negative", in: "-5", wantErr: true},
		{name: "garbage", in: "not-a-number", wantErr: true},
		{name: "invalid hex", in: "0xzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := order.ParseU256(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Zero(t, tt.want.Cmp(v.ToInt()))
		})
	}
}

func TestParseU256Overflow(t *testing.T) {
	max := new(big.Int).Lsh(big.NewInt(1), 256)

	_, err := order.ParseU256(max.String())
	require.Error(t, err)

	inRange := new(big.Int).Sub(max, big.NewInt(1))
	v, err := order.ParseU256(inRange.String())
	require.NoError(t, err)
	assert.Zero(t, inRange.Cmp(v.ToInt()))
}

func TestTransactionAcceptsDecimalAndHexGasValues(t *testing.T) {
	var decimal order.Transaction
	err := json.Unmarshal([]byte(`{"to":"0x1","chain_id":1,"gas":"21000","gas_price":"1000000000"}`), &decimal)
	require.NoError(t, err)
	assert.Zero(t, big.NewInt(21000).Cmp(decimal.Gas.ToInt()))
	assert.Zero(t, big.NewInt(1000000000).Cmp(decimal.GasPrice.ToInt()))

	var hex order.Transaction
	err = json.Unmarshal([]byte(`{"to":"0x1","chain_id":1,"gas":"0x5208","gas_price":"0x3b9aca00"}`), &hex)
	require.NoError(t, err)
	assert.Zero(t, big.NewInt(21000).Cmp(hex.Gas.ToInt()))
	assert.Zero(t, big.NewInt(1000000000).Cmp(hex.GasPrice.ToInt()))
}

func TestTransactionSerializesGasValuesAsDecimal(t *testing.T) {
	tx := order.Transaction{
		To:       "0x1",
		ChainID:  1,
		Gas:      order.NewU256(big.NewInt(21000)),
		GasPrice: order.NewU256(big.NewInt(1000000000)),
	}

	raw, err := json.Marshal(&tx)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "21000", decoded["gas"])
	assert.Equal(t, "1000000000", decoded["gas_price"])
}
