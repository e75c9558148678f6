// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols 4-neighbourhood lattice.
// Cell (r, c) gets ID idFn(r*cols + c). For each cell in row-major order
// the right edge is emitted before the down edge.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, rows*cols)
		at := func(r, c int) string { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					addEdge(g, cfg, at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					addEdge(g, cfg, at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
