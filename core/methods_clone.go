// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Clone takes the read lock on the source; the clone shares no maps with it.
//   - Reset takes the write lock.

package core

// Clone returns a deep copy of the Graph. The engine runs on a clone so the
// host can keep editing the original during playback.
//
// The logger is shared; adjacency maps are not.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make(map[string]map[string]int64, len(g.adjacency)),
		log:       g.log,
	}
	var (
		id    string
		inner map[string]int64
	)
	for id, inner = range g.adjacency {
		cp := make(map[string]int64, len(inner))
		for nb, w := range inner {
			cp[nb] = w
		}
		clone.adjacency[id] = cp
	}

	return clone
}

// Reset removes every node and edge.
// Complexity: O(1) for map reallocation; no iteration over existing entries.
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adjacency = make(map[string]map[string]int64)
	g.log.Debug("graph reset")
}
