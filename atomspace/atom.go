package atomspace

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Type classifies an atom within the knowledge graph.
type Type int

const (
	// TypeConcept is an abstract concept representation.
	TypeConcept Type = iota

	// TypePredicate is a relational predicate.
	TypePredicate

	// TypeLink is a reified connection between atoms.
	TypeLink

	// TypeValue is a concrete value.
	TypeValue

	// TypeGoal is an agent goal or objective.
	TypeGoal

	// TypeBelief is an agent belief state.
	TypeBelief

	// TypeAction is an executable action.
	TypeAction

	// TypeSchema is a behavioral schema.
	TypeSchema
)

var typeNames = map[Type]string{
	TypeConcept:   "concept",
	TypePredicate: "predicate",
	TypeLink:      "link",
	TypeValue:     "value",
	TypeGoal:      "goal",
	TypeBelief:    "belief",
	TypeAction:    "action",
	TypeSchema:    "schema",
}

// String returns the lowercase name of the type, or "unknown" for values
// outside the known range.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether the type is one of the known atom types.
func (t Type) IsValid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType converts a lowercase type name (as used in configuration files)
// to a Type. Returns ErrInvalidType for unrecognized names.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// MaxNameLen is the upper bound on atom name length. Longer names are
// truncated at creation; names are not required to be unique.
const MaxNameLen = 64

// Atom is the basic unit of knowledge: a typed, named node with a
// probabilistic truth value and directed links to other atoms.
//
// Atoms are created through a Space and shared by reference. The identity
// fields (ID, Type, Name) are immutable; the truth value, links, and payload
// are guarded by the atom's own lock.
type Atom struct {
	id      uint64
	typ     Type
	name    string
	refs    atomic.Int32

	mu       sync.Mutex
	truth    TruthValue
	payload  any
	outgoing []*Link
	incoming []*Link
}

func newAtom(id uint64, t Type, name string) *Atom {
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	a := &Atom{
		id:    id,
		typ:   t,
		name:  name,
		truth: DefaultTruth(),
	}
	a.refs.Store(1) // the owning space's reference
	return a
}

// ID returns the atom's unique, monotonically assigned identifier.
func (a *Atom) ID() uint64 { return a.id }

// Type returns the atom's type.
func (a *Atom) Type() Type { return a.typ }

// Name returns the atom's name. Names are bounded in length and not
// required to be unique within a space.
func (a *Atom) Name() string { return a.name }

// Retain takes an additional reference to the atom. Every Retain must be
// balanced by exactly one Release.
func (a *Atom) Retain() {
	a.refs.Add(1)
}

// Release gives back one reference and returns the remaining count.
// The atom is considered destroyed once the count reaches zero; holders
// must not use the atom after releasing their reference.
func (a *Atom) Release() int32 {
	return a.refs.Add(-1)
}

// RefCount returns the current reference count.
func (a *Atom) RefCount() int32 {
	return a.refs.Load()
}

// Truth returns a snapshot of the atom's truth value.
func (a *Atom) Truth() TruthValue {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.truth
}

// SetTruth overwrites the atom's strength and confidence and records one
// more observation. Returns ErrInvalidTruth, leaving the value unchanged,
// if either argument falls outside [0, 1].
func (a *Atom) SetTruth(strength, confidence float64) error {
	if !inUnitRange(strength) || !inUnitRange(confidence) {
		return fmt.Errorf("%w: strength=%v confidence=%v", ErrInvalidTruth, strength, confidence)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.truth.Strength = strength
	a.truth.Confidence = confidence
	a.truth.Count++
	return nil
}

// Reinforce raises the atom's confidence by step, clamped to 1.0, and
// records one more observation. This is linear reinforcement, not a
// Bayesian update.
func (a *Atom) Reinforce(step float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.truth.Confidence = clamp01(a.truth.Confidence + step)
	a.truth.Count++
}

// Payload returns the atom's opaque payload, if any.
func (a *Atom) Payload() any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.payload
}

// SetPayload attaches an opaque payload to the atom. The payload is not
// inspected by this package.
func (a *Atom) SetPayload(p any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.payload = p
}

// Outgoing returns a snapshot of the atom's outgoing links.
func (a *Atom) Outgoing() []*Link {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*Link, len(a.outgoing))
	copy(out, a.outgoing)
	return out
}

// Incoming returns a snapshot of the atom's incoming links.
func (a *Atom) Incoming() []*Link {
	a.mu.Lock()
	defer a.mu.Unlock()
	in := make([]*Link, len(a.incoming))
	copy(in, a.incoming)
	return in
}
