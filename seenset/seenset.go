// Package seenset stores a value copy of every state the engine has ever
// admitted, keyed by its Fingerprint. It backs both deduplication and
// predecessor-chain trace reconstruction.
package seenset

import (
	"tlacheck/fingerprint"

	"golang.org/x/exp/maps"
)

// Set maps Fingerprint to a stored copy of the state discovered under it.
// Insert-only for the lifetime of a run. Not safe for concurrent use; the
// engine is the sole owner and mutator.
type Set[S any] struct {
	states map[fingerprint.Fingerprint]S
}

// New returns an empty Set.
func New[S any]() *Set[S] {
	return &Set[S]{
		states: make(map[fingerprint.Fingerprint]S),
	}
}

// InsertIfAbsent stores a copy of state under fp if fp is not already a
// key, and reports whether the insert happened.
func (s *Set[S]) InsertIfAbsent(fp fingerprint.Fingerprint, state S) bool {
	if _, ok := s.states[fp]; ok {
		return false
	}
	s.states[fp] = state
	return true
}

// Lookup returns the state stored under fp, if any.
func (s *Set[S]) Lookup(fp fingerprint.Fingerprint) (S, bool) {
	state, ok := s.states[fp]
	return state, ok
}

// Len returns the number of distinct fingerprints admitted so far.
func (s *Set[S]) Len() int {
	return len(s.states)
}

// Fingerprints returns every fingerprint admitted so far, in no
// particular order. Intended for diagnostics and tests.
func (s *Set[S]) Fingerprints() []fingerprint.Fingerprint {
	return maps.Keys(s.states)
}
