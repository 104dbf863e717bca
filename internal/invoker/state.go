package invoker

// State is the lifecycle position of an Invoker instance.
type State int

// Invoker lifecycle.
//
//	Idle -> Running -> Completed
//	                -> Compensating -> Compensated
//	                                -> RollbackFailed
//
// A Completed invoker that is compensated by an enclosing invoker moves on to
// Compensating as well.
const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCompensating
	StateCompensated
	StateRollbackFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCompensating:
		return "compensating"
	case StateCompensated:
		return "compensated"
	case StateRollbackFailed:
		return "rollback_failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateCompensated || s == StateRollbackFailed
}
