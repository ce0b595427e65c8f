package atomspace

import "fmt"

// Link is a directed, typed, weighted edge between two atoms. The same Link
// value is stored in the source atom's outgoing set and the target atom's
// incoming set.
type Link struct {
	// Target is the atom the link points at.
	Target *Atom

	// Kind is an integer tag classifying the relationship.
	Kind uint32

	// Strength is the link weight, within [0, 1].
	Strength float64
}

// CreateLink connects from to to with the given kind and strength. The link
// is inserted into from's outgoing set and into to's incoming set, and to
// gains one reference (the link holds it).
//
// Each half-insert runs under that atom's own lock, never both at once;
// a concurrent observer may briefly see the link from the source before it
// appears on the target.
func CreateLink(from, to *Atom, kind uint32, strength float64) error {
	if from == nil || to == nil {
		return ErrNilAtom
	}
	if !inUnitRange(strength) {
		return fmt.Errorf("%w: %v", ErrInvalidStrength, strength)
	}

	link := &Link{Target: to, Kind: kind, Strength: strength}

	from.mu.Lock()
	from.outgoing = append(from.outgoing, link)
	from.mu.Unlock()

	// The retain happens inside the target's critical section so the
	// incoming set and the reference count never diverge for an observer
	// holding the target's lock.
	to.mu.Lock()
	to.refs.Add(1)
	to.incoming = append(to.incoming, link)
	to.mu.Unlock()

	return nil
}

// RemoveLink removes the first outgoing link from from to to, removes its
// incoming half on to, and releases the reference the link held. Returns
// ErrLinkNotFound if no such link exists.
func RemoveLink(from, to *Atom) error {
	if from == nil || to == nil {
		return ErrNilAtom
	}

	var found *Link
	from.mu.Lock()
	for i, link := range from.outgoing {
		if link.Target == to {
			found = link
			from.outgoing = append(from.outgoing[:i], from.outgoing[i+1:]...)
			break
		}
	}
	from.mu.Unlock()

	if found == nil {
		return fmt.Errorf("%w: atom %d -> atom %d", ErrLinkNotFound, from.id, to.id)
	}

	to.mu.Lock()
	for i, link := range to.incoming {
		if link == found {
			to.incoming = append(to.incoming[:i], to.incoming[i+1:]...)
			break
		}
	}
	to.refs.Add(-1)
	to.mu.Unlock()

	return nil
}

// CountLinks returns the total number of links connected to the atom:
// outgoing plus incoming, counted under the atom's lock.
func CountLinks(a *Atom) int {
	if a == nil {
		return 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.outgoing) + len(a.incoming)
}

// TraverseLinks invokes visit once for each outgoing link's target. The
// atom's lock is held for the duration of the scan; visit must not call
// back into the atom.
func TraverseLinks(a *Atom, visit func(*Atom)) error {
	if a == nil {
		return ErrNilAtom
	}
	if visit == nil {
		return ErrNilVisitor
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, link := range a.outgoing {
		if link.Target != nil {
			visit(link.Target)
		}
	}
	return nil
}
