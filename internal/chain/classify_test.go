package chain_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github/custodia/signing-service/internal/chain"
)

func TestClassifySubmissionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "insufficient funds",
			err:      errors.New("insufficient funds for gas * price + value"),
			wantCode: chain.ErrCodeInsufficientFunds,
		},
		{
			name:     "replacement underpriced",
			err:      errors.New("replacement transaction underpriced"),
			wantCode: chain.ErrCodeReplacementUnderpriced,
		},
		{
			name:     "nonce too low",
			err:      errors.New("nonce too low"),
			wantCode: chain.ErrCodeNonceConflict,
		},
		{
			name:     "already known",
			err:      errors.New("already known"),
			wantCode: chain.ErrCodeNonceConflict,
		},
		{
			name:     "gas limit",
			err:      errors.New("exceeds block gas limit"),
			wantCode: chain.ErrCodeGasLimit,
		},
		{
			name:     "unknown",
			err:      errors.New("something odd happened"),
			wantCode: chain.ErrCodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chain.ClassifySubmissionError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.err.Error(), got.Message)
		})
	}
}
