// SPDX-License-Identifier: MIT

// Package core: Graph method implementations
//
// This file provides the node and edge lifecycle and the read-only queries
// on the Graph type defined in types.go. Every mutation keeps the adjacency
// map symmetric; every query returns sorted output for deterministic replay.

package core

import (
	"sort"
)

// AddNode inserts id with an empty neighbor set.
// If the node already exists, this is a no-op (idempotent).
// Empty IDs are ignored.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) {
	if id == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// RemoveNode deletes every edge incident to id and then id itself.
// Missing nodes are a no-op.
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	neighbors, exists := g.adjacency[id]
	if !exists {
		return
	}
	// Drop the mirrored half of each incident edge first.
	for nb := range neighbors {
		delete(g.adjacency[nb], id)
	}
	delete(g.adjacency, id)
	g.log.Debug("node removed", "node", id, "degree", len(neighbors))
}

// AddEdge sets the weight of the undirected edge a–b, creating a and b if
// they are missing. An existing weight for the pair is overwritten.
// Empty IDs are ignored.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight int64) {
	if a == "" || b == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(a)
	g.ensureNode(b)
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight
	g.log.Debug("edge set", "a", a, "b", b, "weight", weight)
}

// RemoveEdge deletes both directions of edge a–b.
// Silently does nothing if the edge does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[a][b]; !ok {
		return
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	g.log.Debug("edge removed", "a", a, "b", b)
}

// HasEdge reports whether a and b are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// Weight returns the weight of edge a–b and whether the edge exists.
// This is the single weight lookup shared by the engine and the
// prediction evaluator.
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[a][b]

	return w, ok
}

// Neighbors returns the IDs adjacent to id in ascending order.
// A missing node yields nil.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	inner, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(inner))
	for nb := range inner {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V·log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every undirected edge exactly once, sorted by (A, B).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Edge
	for a, inner := range g.adjacency {
		for b, w := range inner {
			// Each pair is stored twice; keep the half with a <= b.
			if a > b {
				continue
			}
			out = append(out, Edge{A: a, B: b, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges. O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for a, inner := range g.adjacency {
		for b := range inner {
			if a <= b {
				n++
			}
		}
	}

	return n
}

// Internal helper methods:
////////////////////

// ensureNode makes adjacency[id] non-nil. Caller holds mu.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]int64)
	}
}
