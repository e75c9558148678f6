// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that joins hub idFn(0) to leaves 1..n-1.
// Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			addEdge(g, cfg, ids[0], ids[i])
		}

		return nil
	}
}
