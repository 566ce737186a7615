package credential

type State string

const (
	StatePending   State = "PENDING"
	StateActive    State = "ACTIVE"
	StateUsed      State = "USED"
	StateExpired   State = "EXPIRED"
	StateCancelled State = "CANCELLED"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StatePending, StateActive, StateUsed, StateExpired, StateCancelled:
		return true
	default:
		return false
	}
}

// Terminal states admit no further transitions.
func (s State) IsTerminal() bool {
	switch s {
	case StateUsed, StateExpired, StateCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the one-directional lifecycle. Only the
// time-driven PENDING→ACTIVE and {PENDING,ACTIVE}→EXPIRED moves plus the
// scan-driven →USED and cancellation →CANCELLED are permitted.
func (s State) CanTransitionTo(next State) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case StatePending:
		return next == StateActive || next == StateUsed || next == StateExpired || next == StateCancelled
	case StateActive:
		return next == StateUsed || next == StateExpired || next == StateCancelled
	default:
		return false
	}
}
