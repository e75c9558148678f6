// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring C_n: P_n plus the
// closing edge (n-1)–0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			addEdge(g, cfg, ids[i], ids[(i+1)%n])
		}

		return nil
	}
}
