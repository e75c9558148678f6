// SPDX-License-Identifier: MIT
package narrate_test

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/narrate"
)

// ExampleNarrator_Describe narrates the final snapshot of a run.
func ExampleNarrator_Describe() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	tr, _ := dijkstra.Run(g, "A", "B")

	n := narrate.New("A", "B")
	fmt.Println(n.Heading())
	for _, line := range n.Describe(tr.Final()) {
		fmt.Println(line)
	}
	// Output:
	// From A to B
	// Reverse the list, and we have the solution!
	//
	// Shortest path result (cost = 2):
	// - A
	// - B
}
