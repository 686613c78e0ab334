package approver

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/maestro"
	"github/custodia/signing-service/internal/order"
)

func TestSnapshotPolicy(t *testing.T) {
	pol := snapshotPolicy("TreasuryPolicy", &maestro.PolicyDefinition{
		Required: []maestro.PolicyApprover{{Name: "compliance", Level: "tenant"}},
		Optional: []maestro.PolicyApprover{{Name: "auditor", Level: "domain"}},
	})

	assert.Equal(t, "TreasuryPolicy", pol.Name)
	require.Len(t, pol.Approvals, 2)

	assert.Equal(t, "compliance", pol.Approvals[0].Name)
	assert.True(t, pol.Approvals[0].Required)
	assert.Nil(t, pol.Approvals[0].Response)

	assert.Equal(t, "auditor", pol.Approvals[1].Name)
	assert.False(t, pol.Approvals[1].Required)

	assert.False(t, pol.Complete())
	assert.False(t, pol.Approved())
}

func TestNormalizedTransactionZeroesNonce(t *testing.T) {
	tx := &order.Transaction{
		To:       "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1",
		ChainID:  11155111,
		Nonce:    (*order.U256)(big.NewInt(42)),
		GasPrice: (*order.U256)(big.NewInt(1000)),
	}

	raw, err := normalizedTransaction(tx)
	require.NoError(t, err)

	var decoded order.Transaction
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Zero(t, decoded.Nonce.ToInt().Sign())
	assert.Equal(t, int64(1000), decoded.GasPrice.ToInt().Int64())

	// the caller's copy keeps its nonce
	assert.Equal(t, int64(42), tx.Nonce.ToInt().Int64())
}

func TestAuthorizingEntitiesSkipUnanswered(t *testing.T) {
	pol := &order.Policy{
		Name: "DefaultPolicy",
		Approvals: []*order.Approval{
			{
				Name:     "compliance",
				Level:    "tenant",
				Required: true,
				Response: &order.ApprovalResponse{
					OrderID:           uuid.New(),
					ApprovalStatus:    order.ApprovalStatusApproved,
					ApproverName:      "compliance",
					Metadata:          "bWV0YQ==",
					MetadataSignature: "0xsig",
				},
			},
			{Name: "auditor", Level: "domain"},
		},
	}

	entities := AuthorizingEntities(pol)
	require.Len(t, entities, 1)
	assert.Equal(t, "compliance", entities[0].Name)
	assert.Equal(t, "tenant", entities[0].Level)
	assert.Equal(t, "bWV0YQ==", entities[0].Metadata)
	assert.Equal(t, "0xsig", entities[0].MetadataSignature)
}

func TestPolicyDecision(t *testing.T) {
	approve := func(name string) *order.Approval {
		return &order.Approval{
			Name:     name,
			Required: true,
			Response: &order.ApprovalResponse{ApprovalStatus: order.ApprovalStatusApproved, ApproverName: name},
		}
	}
	reject := func(name, reason string) *order.Approval {
		return &order.Approval{
			Name:     name,
			Required: true,
			Response: &order.ApprovalResponse{ApprovalStatus: 0, ApproverName: name, StatusReason: reason},
		}
	}

	pol := &order.Policy{Approvals: []*order.Approval{approve("a"), approve("b")}}
	assert.True(t, pol.Complete())
	assert.True(t, pol.Approved())

	pol = &order.Policy{Approvals: []*order.Approval{approve("a"), reject("b", "amount over limit")}}
	assert.True(t, pol.Complete())
	assert.False(t, pol.Approved())
	assert.Equal(t, []string{"amount over limit"}, pol.RejectionReasons())

	// optional rejection cannot veto
	pol = &order.Policy{Approvals: []*order.Approval{
		approve("a"),
		{Name: "c", Response: &order.ApprovalResponse{ApprovalStatus: 0, ApproverName: "c"}},
	}}
	assert.True(t, pol.Complete())
	assert.True(t, pol.Approved())
	assert.Empty(t, pol.RejectionReasons())
}
