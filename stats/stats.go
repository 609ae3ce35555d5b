// Package stats tracks the engine's exploration counters and publishes
// them through a synchronization boundary so a concurrent reporter
// goroutine can poll them safely while the engine explores.
package stats

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// Stats holds the two monotonic counters the engine maintains during a
// run, plus the current seen-set size. Counters are backed by
// VictoriaMetrics/metrics, whose Counter and Gauge types are safe to
// read concurrently with the engine's single-threaded writes.
type Stats struct {
	set       *metrics.Set
	generated *metrics.Counter
	unique    *metrics.Counter
	seenSize  *metrics.Gauge
}

// New creates a Stats instance. seenSetSize is polled by the "hash table
// size" gauge whenever a snapshot is taken.
func New(seenSetSize func() float64) *Stats {
	set := metrics.NewSet()
	return &Stats{
		set:       set,
		generated: set.NewCounter("generated"),
		unique:    set.NewCounter("unique"),
		seenSize:  set.NewGauge("hash_table_size", seenSetSize),
	}
}

// IncGenerated increments the generated counter. Called on every
// emission, including duplicates.
func (s *Stats) IncGenerated() {
	s.generated.Inc()
}

// IncUnique increments the unique counter. Called on every successful
// seen-set insert.
func (s *Stats) IncUnique() {
	s.unique.Inc()
}

// Generated returns the current value of the generated counter.
func (s *Stats) Generated() uint64 {
	return s.generated.Get()
}

// Unique returns the current value of the unique counter.
func (s *Stats) Unique() uint64 {
	return s.unique.Get()
}

// Snapshot is a point-in-time, read-only copy of the counters, safe to
// hand to an observer running on another goroutine.
type Snapshot struct {
	Generated   uint64
	Unique      uint64
	SeenSetSize uint64
}

// Snapshot reads the current counters. Safe to call concurrently with
// the engine's writes.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Generated:   s.generated.Get(),
		Unique:      s.unique.Get(),
		SeenSetSize: uint64(s.seenSize.Get()),
	}
}

// String formats the snapshot the way the engine prints it to stdout.
func (snap Snapshot) String() string {
	return fmt.Sprintf("generated: %d unique: %d hash table size: %d", snap.Generated, snap.Unique, snap.SeenSetSize)
}
