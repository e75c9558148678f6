// SPDX-License-Identifier: MIT

// Package frontier provides the priority-ordered worklist used by the
// instrumented Dijkstra engine.
//
// Overview:
//
//   - Entries are (id, priority) pairs; ExtractMin always yields the entry with
//     the smallest priority.
//   - Ties are broken by insertion order, so a replay of the same run extracts
//     nodes in exactly the same order.
//   - The same id may be held several times at once. Re-inserting a node after
//     a cost improvement leaves the older, stale entry in place; the engine
//     consults its cost table, not the frontier, for the authoritative cost.
//   - PeekMin exists so the engine can record "the node under consideration"
//     before it is removed.
//
// Performance and complexity:
//
//   - Insert, ExtractMin: O(log n) via container/heap.
//   - PeekMin, IsEmpty, Len: O(1).
//   - Entries: O(n log n), returns a sorted copy for snapshots and renderers.
//
// Thread safety:
//
//   - A Frontier is owned by a single engine run and is not safe for concurrent
//     use. Clone it before handing it to another goroutine.
package frontier
