package order

import "github.com/pkg/errors"

// Type enumerates the supported order types.
type Type string

const (
	TypeKeyCreation  Type = "KEY_CREATION_ORDER"
	TypeSignature    Type = "SIGNATURE_ORDER"
	TypeSpeedup      Type = "SPEEDUP_ORDER"
	TypeSponsored    Type = "SPONSORED_ORDER"
	TypeCancellation Type = "CANCELLATION_ORDER"
)

func (t Type) String() string {
	return string(t)
}

// IsValid reports whether the type is one of the known order types.
func (t Type) IsValid() bool {
	switch t {
	case TypeKeyCreation, TypeSignature, TypeSpeedup, TypeSponsored, TypeCancellation:
		return true
	default:
		return false
	}
}

// IsReplacement reports whether orders of this type replace another order on chain.
func (t Type) IsReplacement() bool {
	return t == TypeSpeedup || t == TypeCancellation
}

// State enumerates the lifecycle states of an order.
type State string

const (
	StateCancelled          State = "CANCELLED"
	StateCompleted          State = "COMPLETED"
	StateCompletedWithError State = "COMPLETED_WITH_ERROR"
	StateApproversReviewed  State = "APPROVERS_REVIEWED"
	StateDropped            State = "DROPPED"
	StateError              State = "ERROR"
	StateNotSigned          State = "NOT_SIGNED"
	StateNotSubmitted       State = "NOT_SUBMITTED"
	StateReceived           State = "RECEIVED"
	StateReorged            State = "REORGED"
	StateReplaced           State = "REPLACED"
	StateSelectedForSigning State = "SELECTED_FOR_SIGNING"
	StateSigned             State = "SIGNED"
	StateSubmitted          State = "SUBMITTED"
)

func (s State) String() string {
	return string(s)
}

// IsValid reports whether the state is one of the known order states.
func (s State) IsValid() bool {
	_, ok := possibleCurrentStates[s]
	return ok || s == StateReceived
}

// PendingStates are the states in which an order still progresses through the
// pipeline and counts against its sending address.
var PendingStates = []State{
	StateReceived,
	StateApproversReviewed,
	StateSigned,
	StateSelectedForSigning,
	StateSubmitted,
}

// LockingStates are the states in which an order exclusively holds its sending
// address. At most one order per (address, chain) may be in a locking state.
var LockingStates = []State{
	StateSelectedForSigning,
	StateSubmitted,
}

// TerminalStates are the states an order can never leave. Linkage fields
// (replaced_by) may still be written on terminal orders.
var TerminalStates = []State{
	StateCancelled,
	StateCompleted,
	StateCompletedWithError,
	StateDropped,
	StateError,
	StateNotSigned,
	StateNotSubmitted,
	StateReorged,
	StateReplaced,
}

// possibleCurrentStates maps a target state to the set of states an order must
// currently be in for the transition to be legal. Completed, CompletedWithError
// and Replaced are additionally reachable from Signed because a sponsored
// parent order stays in Signed until its wrapper terminates, then mirrors the
// wrapper's terminal state.
var possibleCurrentStates = map[State][]State{
	StateApproversReviewed:  {StateReceived},
	StateSigned:             {StateApproversReviewed},
	StateSelectedForSigning: {StateSigned},
	StateSubmitted:          {StateSelectedForSigning},
	StateNotSigned:          {StateReceived, StateApproversReviewed},
	StateNotSubmitted:       {StateSelectedForSigning},
	StateCompleted:          {StateSubmitted, StateSigned},
	StateCompletedWithError: {StateSubmitted, StateSigned},
	StateDropped:            {StateSubmitted},
	StateReorged:            {StateCompleted, StateCompletedWithError, StateSubmitted},
	StateReplaced:           {StateSelectedForSigning, StateSubmitted, StateSigned},
	StateCancelled:          {StateReceived, StateApproversReviewed, StateSigned, StateSelectedForSigning, StateSubmitted},
	StateError:              {StateReceived, StateApproversReviewed, StateSigned, StateSelectedForSigning, StateSubmitted},
}

// PossibleCurrentStates returns the states an order may currently be in to
// legally move to the given target state.
func PossibleCurrentStates(target State) ([]State, error) {
	states, ok := possibleCurrentStates[target]
	if !ok {
		return nil, errors.Errorf("state %q cannot be transitioned to", target)
	}

	return states, nil
}

// CanTransition reports whether moving from the current to the target state is legal.
func CanTransition(current State, target State) bool {
	states, ok := possibleCurrentStates[target]
	if !ok {
		return false
	}

	for _, s := range states {
		if s == current {
			return true
		}
	}

	return false
}

// IsTerminal reports whether the state is terminal.
func IsTerminal(s State) bool {
	for _, t := range TerminalStates {
		if s == t {
			return true
		}
	}

	return false
}

// StateStrings converts states to their string representation for queries.
func StateStrings(states []State) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, string(s))
	}

	return out
}
