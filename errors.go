package agency

import "errors"

// Sentinel errors for system-level operations.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrClosed indicates the system has been shut down; no operation on it
	// is valid afterwards.
	ErrClosed = errors.New("agency: system closed")

	// ErrNilAgent indicates a nil agent handle.
	ErrNilAgent = errors.New("agency: nil agent")

	// ErrNilRule indicates a nil inference rule.
	ErrNilRule = errors.New("agency: nil rule")

	// ErrAgentNotFound indicates the agent is not registered with this
	// system.
	ErrAgentNotFound = errors.New("agency: agent not registered")

	// ErrInvalidConfig indicates the loaded configuration is invalid or
	// incomplete.
	ErrInvalidConfig = errors.New("agency: invalid configuration")
)
