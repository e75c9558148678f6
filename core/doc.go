// SPDX-License-Identifier: MIT

// Package core provides the in-memory, thread-safe weighted graph that the
// visualiser edits and the shortest-path engine reads.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: every edge is stored as two mirrored entries,
//     adjacency[a][b] = adjacency[b][a] = w.
//   - One edge per unordered pair: AddEdge on an existing pair overwrites
//     the weight (last write wins, no duplicate-edge error).
//   - Integer weights: the graph stores what it is given. Positivity is a
//     host rule enforced by the session layer, not here.
//   - Total functions: no operation returns an error. Missing keys are
//     auto-created (AddEdge) or treated as no-ops (RemoveEdge, RemoveNode).
//
// Why a separate core.Graph?
//
//   - Deterministic iteration: Nodes(), Neighbors() and Edges() are sorted,
//     so two runs over the same graph replay identically.
//   - Clone() gives the engine a private, consistent copy to read while the
//     host keeps editing the original.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string)                  // O(1), idempotent
//	RemoveNode(id string)               // O(deg(id))
//	HasNode(id string) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string, weight int64)  // O(1), symmetric, last write wins
//	RemoveEdge(a, b string)             // O(1), symmetric, no-op if absent
//	HasEdge(a, b string) bool           // O(1)
//	Weight(a, b string) (int64, bool)   // O(1)
//
//	// Query
//	Nodes() []string                    // O(V·log V)
//	Neighbors(id string) []string       // O(d·log d)
//	Edges() []Edge                      // O(E·log E), each pair once
//	NodeCount() int / EdgeCount() int   // O(1) / O(V)
//
//	// Maintenance
//	Reset()                             // O(1)
//	Clone() *Graph                      // O(V+E)
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency map. Readers share the lock,
//	mutations take it exclusively. All methods are safe for concurrent use.
package core
