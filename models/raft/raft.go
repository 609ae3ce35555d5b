// Package raft implements a small MongoDB-replication-flavored model:
// three nodes, a single global term counter, per-node oplogs, and a
// simplified notion of a majority-committed log prefix. It reproduces
// the SERVER-22136 class of bug, where a node is allowed to roll back
// an oplog entry that a majority had already replicated, because the
// rollback guard only checks the entry's term instead of whether it
// has been committed.
package raft

import (
	"fmt"

	"tlacheck"
	"tlacheck/fingerprint"
)

// NumNodes is the number of replica set members in the model.
const NumNodes = 3

// Role is a node's replication role.
type Role uint8

const (
	Secondary Role = iota
	Primary
)

func (r Role) String() string {
	if r == Primary {
		return "Primary"
	}
	return "Secondary"
}

// State is the replicated-log configuration of the whole cluster at one
// instant.
//
// Guarded selects which of the two RollbackCommitted behaviors the
// model exercises: true reproduces the fixed behavior (gated on the
// rolled-back entry's term), false reproduces the SERVER-22136 bug (no
// gate, so a committed entry from an older term can be discarded). It
// is fixed for the lifetime of a run, copied unchanged through every
// generated state, so it plays no part in exploration, only in which
// transitions Generate is willing to take.
type State struct {
	GlobalCurrentTerm uint8
	Roles             [NumNodes]Role
	Logs              [NumNodes][]uint8
	// CommittedLen[n] is the number of leading entries in Logs[n] that
	// have been observed replicated to a majority of the cluster.
	// Those entries must never be discarded.
	CommittedLen [NumNodes]int
	Guarded      bool

	prevHash fingerprint.Fingerprint
}

// Initial returns the model's starting configuration: term 0, node 0 is
// primary with an empty log, every other node secondary and empty.
// guarded selects which RollbackCommitted behavior to check.
func Initial(guarded bool) State {
	var s State
	s.Roles[0] = Primary
	s.Guarded = guarded
	return s
}

func (s *State) Hash() fingerprint.Fingerprint {
	return fingerprint.Combine(s.GlobalCurrentTerm, s.Roles, s.Logs, s.CommittedLen, s.Guarded)
}

func (s *State) Equals(other *State) bool {
	if s.GlobalCurrentTerm != other.GlobalCurrentTerm || s.Roles != other.Roles || s.CommittedLen != other.CommittedLen || s.Guarded != other.Guarded {
		return false
	}
	for n := 0; n < NumNodes; n++ {
		if len(s.Logs[n]) != len(other.Logs[n]) {
			return false
		}
		for i, term := range s.Logs[n] {
			if other.Logs[n][i] != term {
				return false
			}
		}
	}
	return true
}

func (s *State) PrevHash() fingerprint.Fingerprint { return s.prevHash }

func (s *State) SetPrevHash(h fingerprint.Fingerprint) { s.prevHash = h }

// SatisfyInvariant holds as long as no node has lost an entry that was
// already observed committed: every node's committed prefix must still
// fit inside its current log.
func (s *State) SatisfyInvariant() bool {
	for n := 0; n < NumNodes; n++ {
		if s.CommittedLen[n] > len(s.Logs[n]) {
			return false
		}
	}
	return true
}

// SatisfyConstraint bounds the state space explored: terms beyond 3 and
// logs of length 3 or more are not expanded further.
func (s *State) SatisfyConstraint() bool {
	if s.GlobalCurrentTerm > 3 {
		return false
	}
	for n := 0; n < NumNodes; n++ {
		if len(s.Logs[n]) >= 3 {
			return false
		}
	}
	return true
}

func (s *State) Display() string {
	return fmt.Sprintf("[term: %d, roles: %v, logs: %v, committedLen: %v]", s.GlobalCurrentTerm, s.Roles, s.Logs, s.CommittedLen)
}

// Generate enumerates every oplog-replication action, election, client
// write, and rollback available from this configuration.
func (s *State) Generate(emit tlacheck.Emitter) {
	// AppendOplog: receiver copies the next entry of sender's log, if
	// sender's log is longer and agrees with receiver's last entry.
	for receiver := 0; receiver < NumNodes; receiver++ {
		for sender := 0; sender < NumNodes; sender++ {
			receiver, sender := receiver, sender
			emit(func() {
				s.appendOplog(receiver, sender)
			})
		}
	}

	// ClientWrite: the primary appends a new entry stamped with the
	// current term.
	for n := 0; n < NumNodes; n++ {
		n := n
		if s.Roles[n] == Primary {
			emit(func() {
				s.Logs[n] = append(append([]uint8{}, s.Logs[n]...), s.GlobalCurrentTerm)
			})
		}
	}

	// BecomePrimary: an election in a new term. The previous primary
	// steps down.
	for n := 0; n < NumNodes; n++ {
		n := n
		emit(func() {
			for i := range s.Roles {
				s.Roles[i] = Secondary
			}
			s.Roles[n] = Primary
			s.GlobalCurrentTerm++
		})
	}

	// RollbackCommitted: victim discards the suffix of its log that
	// diverges from donor's, adopting donor as the source of truth.
	for victim := 0; victim < NumNodes; victim++ {
		for donor := 0; donor < NumNodes; donor++ {
			if victim == donor {
				continue
			}
			victim, donor := victim, donor
			if !s.canRollback(victim, donor) {
				continue
			}
			emit(func() {
				s.rollback(victim, donor)
			})
		}
	}
}

// appendOplog copies sender's next entry onto receiver's log, if
// receiver's log is shorter than sender's and receiver's last entry
// equals sender's entry at the same index; earlier entries are not
// compared.
func (s *State) appendOplog(receiver, sender int) {
	rlog, slog := s.Logs[receiver], s.Logs[sender]
	if len(rlog) >= len(slog) {
		return
	}
	if len(rlog) > 0 && slog[len(rlog)-1] != rlog[len(rlog)-1] {
		return
	}
	next := append(append([]uint8{}, rlog...), slog[len(rlog)])
	s.Logs[receiver] = next
	if l := majorityMatchedLen(s.Logs, receiver); l > s.CommittedLen[receiver] {
		s.CommittedLen[receiver] = l
	}
}

// canRollback reports whether victim's log actually diverges from
// donor's, and, when the model is Guarded, whether the entry that
// would be discarded is safe to discard: only an entry written in the
// current term, which cannot yet have been committed by a majority
// under the real commit rule this model approximates.
func (s *State) canRollback(victim, donor int) bool {
	vlog, dlog := s.Logs[victim], s.Logs[donor]
	divergent := false
	for i := 0; i < len(vlog); i++ {
		if i >= len(dlog) || dlog[i] != vlog[i] {
			divergent = true
			break
		}
	}
	if !divergent {
		return false
	}
	if !s.Guarded {
		return true
	}
	return vlog[len(vlog)-1] == s.GlobalCurrentTerm
}

// rollback truncates victim's log down to the longest prefix shared
// with donor.
func (s *State) rollback(victim, donor int) {
	vlog, dlog := s.Logs[victim], s.Logs[donor]
	common := 0
	for common < len(vlog) && common < len(dlog) && vlog[common] == dlog[common] {
		common++
	}
	s.Logs[victim] = append([]uint8{}, vlog[:common]...)
}

// majorityMatchedLen returns the length of the longest prefix of
// logs[node] that at least one other node's log also has, i.e. that is
// replicated to 2 of the model's 3 nodes.
func majorityMatchedLen(logs [NumNodes][]uint8, node int) int {
	target := logs[node]
	best := 0
	for l := 1; l <= len(target); l++ {
		matches := 1
		for other := 0; other < NumNodes; other++ {
			if other == node {
				continue
			}
			if len(logs[other]) < l {
				continue
			}
			agree := true
			for i := 0; i < l; i++ {
				if logs[other][i] != target[i] {
					agree = false
					break
				}
			}
			if agree {
				matches++
			}
		}
		if matches >= 2 {
			best = l
		}
	}
	return best
}
