package agent

// State is the agent's position in its lifecycle state machine.
type State int

const (
	// StateIdle means the agent is waiting for activation. Idle is both the
	// initial state and the terminal state between cycles.
	StateIdle State = iota

	// StateReasoning means the agent is running a reasoning cycle.
	StateReasoning

	// StateActing means the agent is executing actions.
	StateActing

	// StateLearning means the agent is reinforcing an experience.
	StateLearning

	// StateCommunicating means the agent is sending a message.
	StateCommunicating

	// StateBlocked means the agent is waiting on a resource. No core
	// operation transitions into or out of Blocked; it is reserved for
	// future blocking resource acquisition.
	StateBlocked
)

var stateNames = map[State]string{
	StateIdle:          "idle",
	StateReasoning:     "reasoning",
	StateActing:        "acting",
	StateLearning:      "learning",
	StateCommunicating: "communicating",
	StateBlocked:       "blocked",
}

// String returns the lowercase name of the state, or "unknown".
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether the state is one of the known lifecycle states.
func (s State) IsValid() bool {
	_, ok := stateNames[s]
	return ok
}
