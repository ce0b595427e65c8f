// Package atomspace implements the shared knowledge graph: typed, named,
// truth-valued atoms connected by directed, weighted links, owned by a
// bounded Space.
//
// # Ownership
//
// Every atom carries a reference count. The Space that created an atom holds
// one reference; every other holder (a lookup result, a link endpoint, an
// agent's goal/belief/knowledge membership) takes its own reference with
// Retain and gives it back with Release, exactly once. An atom is live while
// its count is positive.
//
// # Locking
//
// Each Atom and each Space carries a single mutex guarding only its own
// fields. No operation in this package ever holds two of these locks at the
// same time: operations that touch two atoms (link creation and removal)
// fully release the first atom's lock before acquiring the second. This
// trades a brief window in which a link is visible from its source but not
// yet from its target for immunity to lock-ordering deadlock.
package atomspace
