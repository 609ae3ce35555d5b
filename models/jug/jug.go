// Package jug implements the classic DieHard water-jug puzzle as a
// tlacheck model: a 5-gallon and a 3-gallon jug, filled from and
// emptied into an unlimited source, or poured between each other until
// one is full or the other is empty. The puzzle is to measure out
// exactly 4 gallons.
package jug

import (
	"fmt"

	"tlacheck"
	"tlacheck/fingerprint"
)

const (
	bigCapacity   = 5
	smallCapacity = 3
)

// State is the content, in gallons, of the big and small jug.
//
// CheckInvariant toggles whether SatisfyInvariant enforces the puzzle's
// property at all. It is constant for the lifetime of a run, carried
// unchanged through every generated state, letting the same model
// double as the "always safe" variant used to exercise a completed,
// violation-free exploration.
type State struct {
	Big   int
	Small int

	CheckInvariant bool

	prevHash fingerprint.Fingerprint
}

// Hash digests the jug contents. PrevHash is excluded, so the same
// (big, small) reached via two different paths is one logical state.
func (s *State) Hash() fingerprint.Fingerprint {
	return fingerprint.Combine(s.Big, s.Small)
}

// Equals reports whether two jug states hold the same contents.
func (s *State) Equals(other *State) bool {
	return s.Big == other.Big && s.Small == other.Small
}

func (s *State) PrevHash() fingerprint.Fingerprint { return s.prevHash }

func (s *State) SetPrevHash(h fingerprint.Fingerprint) { s.prevHash = h }

// SatisfyInvariant is the property under test: the big jug never holds
// exactly 4 gallons. DieHard's puzzle is to find the trace that breaks
// it.
func (s *State) SatisfyInvariant() bool {
	if !s.CheckInvariant {
		return true
	}
	return s.Big != 4
}

// SatisfyConstraint is unbounded here: both jugs are already
// capacity-bounded by Generate, so every reachable state is worth
// exploring.
func (s *State) SatisfyConstraint() bool {
	return true
}

func (s *State) Display() string {
	return fmt.Sprintf("[big: %d, small: %d]", s.Big, s.Small)
}

// Generate enumerates the six DieHard actions as non-deterministic
// branches.
func (s *State) Generate(emit tlacheck.Emitter) {
	// FillSmallJug
	emit(func() { s.Small = smallCapacity })

	// FillBigJug
	emit(func() { s.Big = bigCapacity })

	// EmptySmallJug
	emit(func() { s.Small = 0 })

	// EmptyBigJug
	emit(func() { s.Big = 0 })

	// SmallToBig: pour the small jug into the big jug until the small
	// jug is empty or the big jug is full, whichever comes first.
	emit(func() {
		total := s.Big + s.Small
		if total > bigCapacity {
			s.Small = total - bigCapacity
			s.Big = bigCapacity
		} else {
			s.Big = total
			s.Small = 0
		}
	})

	// BigToSmall: pour the big jug into the small jug until the big
	// jug is empty or the small jug is full, whichever comes first.
	emit(func() {
		total := s.Big + s.Small
		if total > smallCapacity {
			s.Big = total - smallCapacity
			s.Small = smallCapacity
		} else {
			s.Small = total
			s.Big = 0
		}
	})
}

// Initial returns the puzzle's starting state: both jugs empty, with
// the big-jug-never-holds-4 invariant enforced.
func Initial() State {
	return State{CheckInvariant: true}
}

// InitialUnchecked returns the same starting state with SatisfyInvariant
// disabled, so a run explores the full reachable state space instead of
// stopping at the first counterexample.
func InitialUnchecked() State {
	return State{CheckInvariant: false}
}
