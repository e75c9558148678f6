// SPDX-License-Identifier: MIT

// Package dijkstra runs Dijkstra's shortest-path algorithm on a core.Graph
// and records every decision it makes as an immutable Snapshot, so a
// learner can scrub forward and backward through the execution.
//
// Overview:
//
//   - Run executes to completion up front and returns a Trace: the ordered
//     snapshot sequence plus the Result (path and total cost).
//   - Each Snapshot is a deep, independent copy of the cost table, the
//     frontier, the predecessor table, the current node and a Decision.
//     Snapshots never share mutable storage with the engine or each other,
//     so a renderer may jump to any index in any order.
//   - Decision is a closed set of variants, one per state of the run:
//     Initialized, Visiting, EvaluatingNeighbor, ImprovementFound,
//     ImprovementApplied, NoImprovement, DestinationReached,
//     PathBacktrackStep, Completed and NoPathFound.
//
// State machine:
//
//	Initialized
//	loop while the frontier is non-empty:
//	    Visiting(peekMin)            // recorded before the dequeue
//	    dequeue
//	    if current == finish:
//	        DestinationReached
//	        PathBacktrackStep ×(len(path))
//	        Completed                 // terminal
//	    for each neighbor (sorted):
//	        EvaluatingNeighbor
//	        ImprovementFound → update tables → ImprovementApplied
//	        or NoImprovement
//	NoPathFound                       // terminal, frontier exhausted
//
// Stale frontier entries (left behind by a later improvement) are visited
// again rather than skipped; every one of their evaluations ends in
// NoImprovement.
//
// Cost semantics:
//
//   - Cost is an explicit sentinel value type. Unreached() compares greater
//     than every finite cost and reports itself as infinite; it is never
//     encoded as a placeholder number.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyGraph, ErrEmptyNodeID, ErrStartNotFound,
//     ErrFinishNotFound: input validation, returned before any snapshot.
//     ErrStartNotFound and ErrFinishNotFound wrap ErrNodeNotFound.
//   - ErrSnapshotLimit: the run exceeded Options.MaxSnapshots.
//   - ErrPredecessorCycle: the predecessor table does not lead back to the
//     start (only possible with weights the host should have rejected).
//
// An unreachable destination is not an error: the Trace ends with
// NoPathFound and an empty Result.
//
// API reference:
//
//	func Run(g *core.Graph, start, finish string, opts ...Option) (*Trace, error)
//
//	  - g:       graph to search; Run reads a private Clone of it.
//	  - start:   source node ID (must exist).
//	  - finish:  destination node ID (must exist, may equal start).
//	  - opts:    WithLogger, WithRecorder, WithMaxSnapshots.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the search itself, plus O(V) per snapshot
//     for the deep copies; the number of snapshots is O(V + E).
//   - Space: O((V + E) · V) for the snapshot sequence. This trades memory
//     for rewinding without re-execution.
//
// Thread safety:
//
//   - Run is safe to call concurrently; it only reads the graph via Clone.
//   - A Trace and its Snapshots are immutable and safe to share.
package dijkstra
