package atomspace

import "errors"

// Sentinel errors for atomspace operations.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrSpaceFull indicates the space has reached its configured capacity.
	// The creating call fails with no side effects; the caller decides
	// whether to retry after freeing capacity.
	ErrSpaceFull = errors.New("atomspace: space at capacity")

	// ErrSpaceClosed indicates the space has been closed and can no longer
	// create or look up atoms.
	ErrSpaceClosed = errors.New("atomspace: space closed")

	// ErrNilAtom indicates a nil atom handle was passed to an operation
	// that requires one.
	ErrNilAtom = errors.New("atomspace: nil atom")

	// ErrInvalidType indicates an atom type outside the known range.
	ErrInvalidType = errors.New("atomspace: invalid atom type")

	// ErrInvalidTruth indicates a strength or confidence value outside
	// [0, 1]. The atom's truth value is left unchanged.
	ErrInvalidTruth = errors.New("atomspace: truth value out of range")

	// ErrInvalidStrength indicates a link strength outside [0, 1].
	ErrInvalidStrength = errors.New("atomspace: link strength out of range")

	// ErrLinkNotFound indicates no outgoing link to the given target exists.
	ErrLinkNotFound = errors.New("atomspace: link not found")

	// ErrNilVisitor indicates a nil traversal callback.
	ErrNilVisitor = errors.New("atomspace: nil visitor")
)
