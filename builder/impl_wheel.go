// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor for W_n: a ring over 1..n-1 plus spokes from
// hub idFn(0). Requires n ≥ 4. Ring edges are emitted before spokes.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		rim := ids[1:]
		for i := range rim {
			addEdge(g, cfg, rim[i], rim[(i+1)%len(rim)])
		}
		for _, v := range rim {
			addEdge(g, cfg, ids[0], v)
		}

		return nil
	}
}
