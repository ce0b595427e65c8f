package atomspace

import (
	"sync"
)

// DefaultCapacity is the atom capacity used when none is configured.
const DefaultCapacity = 10000

// Space is a bounded collection of atoms. It owns one reference to every
// atom it creates and enforces its capacity at creation time.
//
// Atoms are kept in insertion order; name lookups return the first match,
// so duplicate names are legal and ambiguous by design. Callers must not
// rely on name uniqueness.
type Space struct {
	mu       sync.Mutex
	atoms    []*Atom
	capacity int
	nextID   uint64
	closed   bool
}

// NewSpace creates an empty space with the given atom capacity.
// A capacity of zero or less selects DefaultCapacity.
func NewSpace(capacity int) *Space {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Space{capacity: capacity}
}

// CreateAtom allocates a new atom of the given type and name, with the
// default truth value and a reference count of one (the space's own).
// Names longer than MaxNameLen are truncated.
//
// Returns ErrSpaceFull if the space is at capacity and ErrSpaceClosed after
// Close; in both cases no atom is created.
func (s *Space) CreateAtom(t Type, name string) (*Atom, error) {
	if !t.IsValid() {
		return nil, ErrInvalidType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSpaceClosed
	}
	if len(s.atoms) >= s.capacity {
		return nil, ErrSpaceFull
	}

	s.nextID++
	atom := newAtom(s.nextID, t, name)
	s.atoms = append(s.atoms, atom)
	return atom, nil
}

// Lookup returns the first atom with exactly the given name, or nil if no
// atom matches. A hit takes a reference on behalf of the caller, who must
// Release it.
func (s *Space) Lookup(name string) *Atom {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, atom := range s.atoms {
		if atom.name == name {
			atom.refs.Add(1)
			return atom
		}
	}
	return nil
}

// FindByType returns the first atom of the given type, or nil. A hit takes
// a reference on behalf of the caller.
func (s *Space) FindByType(t Type) *Atom {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, atom := range s.atoms {
		if atom.typ == t {
			atom.refs.Add(1)
			return atom
		}
	}
	return nil
}

// QueryByType collects up to limit atoms of the given type, in insertion
// order, taking a reference to each on behalf of the caller. Returns an
// empty slice when nothing matches or limit is not positive.
func (s *Space) QueryByType(t Type, limit int) []*Atom {
	if limit <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var results []*Atom
	for _, atom := range s.atoms {
		if atom.typ != t {
			continue
		}
		atom.refs.Add(1)
		results = append(results, atom)
		if len(results) == limit {
			break
		}
	}
	return results
}

// Len returns the number of live atoms in the space.
func (s *Space) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.atoms)
}

// Capacity returns the configured atom capacity.
func (s *Space) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capacity
}

// Close releases the space's own reference to every atom it created and
// empties the space. Atoms still referenced elsewhere stay valid for their
// remaining holders but are logically orphaned: they can no longer be found
// through any lookup. Close is idempotent.
//
// The handles are collected under the lock and released after it is
// dropped, so no atom mutation happens while the space lock is held.
func (s *Space) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	atoms := s.atoms
	s.atoms = nil
	s.mu.Unlock()

	for _, atom := range atoms {
		atom.Release()
	}
}
