package glider

// State is the shared lifecycle/interaction state of a carousel instance.
type State uint8

const (
	// StateCreated is the state from construction until Mount completes.
	StateCreated State = iota

	// StateMounted is the transient state while components are mounting.
	StateMounted

	// StateIdle is the resting state; navigation and refresh are legal.
	StateIdle

	// StateMoving is set while a transition between indices is in flight.
	StateMoving

	// StateDragging is set by drag-style extensions while a pointer owns
	// the track.
	StateDragging

	// StateDestroyed is set after teardown. Only re-mounting leaves it.
	StateDestroyed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateMounted:
		return "mounted"
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateDragging:
		return "dragging"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// StateMachine is a single shared state cell. It performs no transition
// validation of its own: callers assert legality with Is before acting, since
// different components need different subsets of legal transitions (movement
// needs Idle→Moving→Idle, dragging needs Idle→Dragging→Idle, teardown needs
// *→Destroyed).
type StateMachine struct {
	current State
}

// NewStateMachine creates a state machine holding the given initial state.
func NewStateMachine(initial State) *StateMachine {
	return &StateMachine{current: initial}
}

// Set unconditionally overwrites the current state.
func (m *StateMachine) Set(s State) {
	m.current = s
}

// Get returns the current state.
func (m *StateMachine) Get() State {
	return m.current
}

// Is reports whether the current state is any of the given states.
func (m *StateMachine) Is(states ...State) bool {
	for _, s := range states {
		if m.current == s {
			return true
		}
	}
	return false
}
