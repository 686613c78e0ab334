package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/order"
)

func TestPossibleCurrentStates(t *testing.T) {
	states, err := order.PossibleCurrentStates(order.StateCancelled)
	require.NoError(t, err)
	assert.ElementsMatch(t, []order.State{
		order.StateReceived,
		order.StateApproversReviewed,
		order.StateSigned,
		order.StateSelectedForSigning,
		order.StateSubmitted,
	}, states)

	states, err = order.PossibleCurrentStates(order.StateCompleted)
	require.NoError(t, err)
	assert.ElementsMatch(t, []order.State{order.StateSubmitted, order.StateSigned}, states)

	states, err = order.PossibleCurrentStates(order.StateSubmitted)
	require.NoError(t, err)
	assert.Equal(t, []order.State{order.StateSelectedForSigning}, states)

	_, err = order.PossibleCurrentStates(order.StateReceived)
	require.Error(t, err)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, order.CanTransition(order.StateReceived, order.StateApproversReviewed))
	assert.True(t, order.CanTransition(order.StateApproversReviewed, order.StateSigned))
	assert.True(t, order.CanTransition(order.StateSigned, order.StateSelectedForSigning))
	assert.True(t, order.CanTransition(order.StateSelectedForSigning, order.StateSubmitted))
	assert.True(t, order.CanTransition(order.StateSubmitted, order.StateCompleted))
	assert.True(t, order.CanTransition(order.StateSubmitted, order.StateDropped))
	assert.True(t, order.CanTransition(order.StateCompleted, order.StateReorged))
	assert.True(t, order.CanTransition(order.StateSubmitted, order.StateReorged))
	assert.True(t, order.CanTransition(order.StateSelectedForSigning, order.StateNotSubmitted))
	assert.True(t, order.CanTransition(order.StateReceived, order.StateNotSigned))
	assert.True(t, order.CanTransition(order.StateApproversReviewed, order.StateNotSigned))
	assert.True(t, order.CanTransition(order.StateSigned, order.StateCompleted))
	assert.True(t, order.CanTransition(order.StateSubmitted, order.StateReplaced))

	assert.False(t, order.CanTransition(order.StateReceived, order.StateSigned))
	assert.False(t, order.CanTransition(order.StateReceived, order.StateSelectedForSigning))
	assert.False(t, order.CanTransition(order.StateReorged, order.StateCompleted))
	assert.False(t, order.CanTransition(order.StateDropped, order.StateReplaced))
	assert.False(t, order.CanTransition(order.StateCompleted, order.StateError))
	assert.False(t, order.CanTransition(order.StateSigned, order.StateSubmitted))
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []order.State{
		order.StateCancelled,
		order.StateCompleted,
		order.StateCompletedWithError,
		order.StateDropped,
		order.StateError,
		order.StateNotSigned,
		order.StateNotSubmitted,
		order.StateReorged,
		order.StateReplaced,
	} {
		assert.True(t, order.IsTerminal(s), string(s))
	}

	for _, s := range order.PendingStates {
		assert.False(t, order.IsTerminal(s), string(s))
	}
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, []string{"RECEIVED", "SIGNED"}, order.StateStrings([]order.State{order.StateReceived, order.StateSigned}))
}
