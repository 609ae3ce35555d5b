package tlacheck

import "fmt"

// violationSignal unwinds from wherever an invariant is found broken,
// possibly deep inside nested Emitter calls within a model's Generate,
// back up to Run's recover. Returning a status through every enclosing
// emit call is impractical because Generate is written as linear,
// many-branch imperative code; a typed panic caught exactly at the BFS
// loop boundary is the non-local control-flow mechanism the model
// contract relies on. Because a violation always ends the run, no
// snapshot left un-restored by the unwind can be observed afterwards.
type violationSignal struct{ err error }

// InternalConsistencyError reports a defect in the engine itself, not
// in the user's model: a predecessor fingerprint that is missing from
// the seen-set while reconstructing a trace. This should never happen
// for a seen-set that only ever grows and whose SetPrevHash values
// always name an already-admitted state.
type InternalConsistencyError struct {
	MissingFingerprint fmt.Stringer
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("tlacheck: internal consistency failure: no state in the seen-set for predecessor fingerprint %s", e.MissingFingerprint)
}
