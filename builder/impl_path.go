// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path P_n: 0–1–…–(n-1).
// Requires n ≥ 2. Edges are emitted in increasing index order.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			addEdge(g, cfg, ids[i-1], ids[i])
		}

		return nil
	}
}
