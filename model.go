package tlacheck

import "tlacheck/fingerprint"

// Emitter is handed to a model's Generate method. Calling emit wraps
// exactly one non-deterministic branch: it snapshots the working state,
// runs branch, presents the resulting state to the engine, then
// restores the snapshot so the next branch starts from the same
// pre-state. Branches may call emit again from within branch to express
// a nested choice; each nesting level snapshots and restores only its
// own local pre-state.
type Emitter func(branch func())

// Model is the contract the engine requires of a user-defined state
// type S. It is expressed as a constraint on *S (the "PS" type
// parameter of Engine) so that ordinary Go methods with pointer
// receivers satisfy it directly, without an extra wrapper type.
//
// Hash and Equals must be consistent with each other: equal states
// produce equal fingerprints. The engine itself never calls Equals —
// admission is driven purely by Fingerprint equality in the seen-set —
// but a correct Equals is still part of the contract a model promises.
type Model[S any] interface {
	*S

	// Hash computes this state's Fingerprint from its semantically
	// significant fields. PrevHash must not participate: two states
	// with identical fields but different predecessors must hash
	// equal, so that the frontier doesn't re-explore the same logical
	// state once for every path that reaches it.
	Hash() fingerprint.Fingerprint

	// Equals reports whether two states are semantically identical,
	// by the same notion of identity as Hash.
	Equals(other *S) bool

	// PrevHash returns the Fingerprint of the state this one was
	// produced from, or fingerprint.None for an initial state.
	PrevHash() fingerprint.Fingerprint

	// SetPrevHash records the Fingerprint of the predecessor this
	// state was produced from. Called by the engine, never by model
	// code.
	SetPrevHash(fingerprint.Fingerprint)

	// SatisfyInvariant reports whether this state is acceptable. A
	// state failing this check terminates the run with a reported
	// counterexample trace.
	SatisfyInvariant() bool

	// SatisfyConstraint reports whether the engine should continue
	// expanding from this state. A state failing this check stays in
	// the seen-set but is not enqueued for expansion; it is not an
	// error.
	SatisfyConstraint() bool

	// Generate enumerates this state's successors by mutating the
	// receiver in place between calls to emit, once per
	// non-deterministic branch.
	Generate(emit Emitter)

	// Display formats this state for trace and error reporting.
	Display() string
}
