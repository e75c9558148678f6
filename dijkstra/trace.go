// SPDX-License-Identifier: MIT

package dijkstra

import (
	"slices"

	"github.com/oklog/ulid/v2"
)

// Result is the outcome of a run: the path from start to finish and its
// total cost. Path is empty and TotalCost is Unreached when no path exists.
type Result struct {
	Path      []string
	TotalCost Cost
}

// Found reports whether a path exists.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Trace is a completed run: the ordered, immutable snapshot sequence and
// the Result. The first snapshot is always Initialized and the last is
// always Completed or NoPathFound.
type Trace struct {
	id        ulid.ULID
	start     string
	finish    string
	snapshots []Snapshot
	result    Result
}

// ID returns the run identifier (a ULID, sortable by creation time).
func (t *Trace) ID() string { return t.id.String() }

// Start returns the start node.
func (t *Trace) Start() string { return t.start }

// Finish returns the finish node.
func (t *Trace) Finish() string { return t.finish }

// Len returns the number of snapshots.
func (t *Trace) Len() int { return len(t.snapshots) }

// LastIndex returns Len()-1.
func (t *Trace) LastIndex() int { return len(t.snapshots) - 1 }

// Snapshot returns snapshot i, or false if i is out of range.
func (t *Trace) Snapshot(i int) (Snapshot, bool) {
	if i < 0 || i >= len(t.snapshots) {
		return Snapshot{}, false
	}
	return t.snapshots[i], true
}

// Snapshots returns the snapshot sequence. The slice is a copy; the
// snapshots themselves are immutable.
func (t *Trace) Snapshots() []Snapshot { return slices.Clone(t.snapshots) }

// Final returns the terminal snapshot.
func (t *Trace) Final() Snapshot { return t.snapshots[len(t.snapshots)-1] }

// Result returns the path and total cost.
func (t *Trace) Result() Result {
	return Result{Path: slices.Clone(t.result.Path), TotalCost: t.result.TotalCost}
}

// NoPathFound reports whether the run ended without reaching the finish.
func (t *Trace) NoPathFound() bool { return t.Final().Kind() == KindNoPathFound }

// Outcome classifies the run for metrics and logs.
func (t *Trace) Outcome() Outcome {
	if t.NoPathFound() {
		return OutcomeNoPath
	}
	return OutcomeFound
}
