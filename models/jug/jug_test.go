package jug

import (
	"testing"

	"tlacheck"
)

func TestViolationTrace(t *testing.T) {
	engine := tlacheck.New[State, *State]()
	err := engine.Run([]State{Initial()})

	violation, ok := err.(*tlacheck.Violation[State])
	if !ok {
		t.Fatalf("Run returned %v (%T), want *tlacheck.Violation[State]", err, err)
	}

	// The known shortest DieHard solution is 7 states long, ending with
	// the big jug holding exactly 4 gallons.
	if len(violation.Trace) != 7 {
		t.Errorf("got trace length %d, want 7", len(violation.Trace))
	}
	final := violation.Trace[len(violation.Trace)-1]
	if final.Big != 4 {
		t.Errorf("got final big jug = %d, want 4", final.Big)
	}
	initial := violation.Trace[0]
	if initial.Big != 0 || initial.Small != 0 {
		t.Errorf("got initial state %v, want both jugs empty", initial)
	}
}

func TestUncheckedExploresFullSpace(t *testing.T) {
	engine := tlacheck.New[State, *State]()
	err := engine.Run([]State{InitialUnchecked()})
	if err != nil {
		t.Fatalf("Run returned %v, want nil", err)
	}

	snap := engine.Stats()
	// Every action leaves at least one jug empty or full, so the reachable
	// (big, small) pairs are those with big in {0, 5} or small in {0, 3}:
	// 8 + 8 = 16 distinct states.
	if snap.Unique != 16 {
		t.Errorf("got unique=%d, want 16", snap.Unique)
	}
	if snap.SeenSetSize != 16 {
		t.Errorf("got seen set size=%d, want 16", snap.SeenSetSize)
	}
}

func TestDisplayFormat(t *testing.T) {
	s := State{Big: 2, Small: 1}
	got := s.Display()
	want := "[big: 2, small: 1]"
	if got != want {
		t.Errorf("got Display()=%q, want %q", got, want)
	}
}
