// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n. Requires n ≥ 1.
// Pairs (i, j) with i < j are emitted in lexicographic index order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				addEdge(g, cfg, ids[i], ids[j])
			}
		}

		return nil
	}
}
