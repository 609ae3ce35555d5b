// Package fingerprint computes the 64-bit digests the engine uses to
// deduplicate states and to link a state to its predecessor.
package fingerprint

import (
	"encoding/gob"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint names a state for the seen-set and for predecessor links.
// The zero value is reserved to mean "no predecessor".
type Fingerprint uint64

// None is the reserved Fingerprint of an initial state, which has no
// predecessor.
const None Fingerprint = 0

func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// Combine deterministically digests fields, the semantically significant
// parts of a state, into a Fingerprint. Equal field sequences always
// combine to the same Fingerprint; callers are expected to pass the same
// fields, in the same order, on every call for a given state type.
//
// Fields are serialized with encoding/gob and hashed with xxhash, a
// fast, high-quality, non-cryptographic hash. Collisions are not
// detected: two distinct states hashing to the same Fingerprint would
// be treated as one, causing under-exploration. This is accepted for
// the state-space sizes this checker targets.
func Combine(fields ...any) Fingerprint {
	h := xxhash.New()
	enc := gob.NewEncoder(h)
	for _, field := range fields {
		if err := enc.Encode(field); err != nil {
			panic(fmt.Sprintf("fingerprint: cannot encode field of type %T: %v", field, err))
		}
	}
	return Fingerprint(h.Sum64())
}
