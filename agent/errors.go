package agent

import "errors"

// Sentinel errors for agent operations.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNilAtom indicates a nil atom was passed where one is required.
	ErrNilAtom = errors.New("agent: nil atom")

	// ErrNilAgent indicates a nil agent handle.
	ErrNilAgent = errors.New("agent: nil agent")

	// ErrNoActivePlan indicates plan execution was requested while no plan
	// is active.
	ErrNoActivePlan = errors.New("agent: no active plan")

	// ErrDestroyed indicates the agent has been destroyed and holds no
	// further references.
	ErrDestroyed = errors.New("agent: destroyed")
)
