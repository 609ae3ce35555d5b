package raft

import (
	"testing"

	"tlacheck"
)

func TestGuardedRunIsSafe(t *testing.T) {
	engine := tlacheck.New[State, *State]()
	err := engine.Run([]State{Initial(true)})
	if err != nil {
		t.Fatalf("guarded Run returned %v, want nil", err)
	}
}

func TestUnguardedRunReproducesRollbackBug(t *testing.T) {
	engine := tlacheck.New[State, *State]()
	err := engine.Run([]State{Initial(false)})

	violation, ok := err.(*tlacheck.Violation[State])
	if !ok {
		t.Fatalf("unguarded Run returned %v (%T), want *tlacheck.Violation[State]", err, err)
	}
	if len(violation.Trace) < 2 {
		t.Fatalf("got trace length %d, want at least 2", len(violation.Trace))
	}

	final := violation.Trace[len(violation.Trace)-1]
	if final.SatisfyInvariant() {
		t.Errorf("final state in trace satisfies invariant, want a violation")
	}
}

func TestCanRollbackRespectsGuard(t *testing.T) {
	s := State{Guarded: true, GlobalCurrentTerm: 2}
	s.Logs[0] = []uint8{1, 2}
	s.Logs[1] = []uint8{1}

	if !s.canRollback(0, 1) {
		t.Fatalf("expected divergent, same-term entry to be rollback-eligible")
	}

	s.Logs[0] = []uint8{1, 1}
	if s.canRollback(0, 1) {
		t.Errorf("guarded model allowed rollback of an entry from an older term")
	}
}

func TestMajorityMatchedLen(t *testing.T) {
	logs := [NumNodes][]uint8{
		{1, 2, 3},
		{1, 2},
		{1, 2, 3},
	}
	if got := majorityMatchedLen(logs, 0); got != 3 {
		t.Errorf("got majorityMatchedLen=%d, want 3", got)
	}
	if got := majorityMatchedLen(logs, 1); got != 2 {
		t.Errorf("got majorityMatchedLen=%d, want 2", got)
	}
}
