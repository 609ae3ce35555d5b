package tlacheck

import (
	"tlacheck/fingerprint"
	"tlacheck/seenset"
)

// buildTrace walks the predecessor chain from end back to the initial
// state it descends from, using the fingerprints recorded in seen, and
// returns the chain in discovery order (initial state first, end last).
//
// Every state in the chain, including end, is already present in seen:
// end was inserted by onNewState before the invariant check ran, and
// every non-initial state's PrevHash names a fingerprint that was
// admitted before it. A missing lookup is therefore a bug in the
// engine, not in the user's model.
func buildTrace[S any, PS Model[S]](end S, seen *seenset.Set[S]) ([]S, error) {
	chain := []S{end}
	cur := end
	for {
		prev := PS(&cur).PrevHash()
		if prev == fingerprint.None {
			break
		}
		parent, ok := seen.Lookup(prev)
		if !ok {
			return nil, &InternalConsistencyError{MissingFingerprint: prev}
		}
		chain = append(chain, parent)
		cur = parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
