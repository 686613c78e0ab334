package types_test

import (
	"encoding/json"
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/types"
)

func TestPostCreateKeyPayloadValidate(t *testing.T) {
	payload := &types.PostCreateKeyPayload{}
	require.Error(t, payload.Validate(strfmt.Default))

	payload.ClientUserID = swag.String("user-1")
	require.NoError(t, payload.Validate(strfmt.Default))
}

func TestPostApprovalPayloadValidate(t *testing.T) {
	payload := &types.PostApprovalPayload{}
	err := payload.Validate(strfmt.Default)
	require.Error(t, err)

	payload.ApproverName = swag.String("approver-1")
	payload.ApprovalStatus = swag.Int(1)
	assert.NoError(t, payload.Validate(strfmt.Default))
}

func TestPostSignTransactionPayloadValidate(t *testing.T) {
	payload := &types.PostSignTransactionPayload{}
	require.Error(t, payload.Validate(strfmt.Default))

	payload.Transaction = json.RawMessage(`{"to":"0x1"}`)
	assert.NoError(t, payload.Validate(strfmt.Default))
}
