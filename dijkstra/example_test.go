// SPDX-License-Identifier: MIT
// Package dijkstra_test provides runnable examples for the instrumented engine.
package dijkstra_test

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
)

// ExampleRun runs the engine on a triangle and prints the result.
func ExampleRun() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 5)
	g.AddEdge("B", "C", 10)
	g.AddEdge("A", "C", 20)

	tr, err := dijkstra.Run(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res := tr.Result()
	fmt.Println(res.Path, res.TotalCost)
	fmt.Println(tr.Len(), "snapshots")
	// Output:
	// [A B C] 15
	// 20 snapshots
}

// ExampleRun_steps prints the decision sequence of a two-node run.
func ExampleRun_steps() {
	g := core.NewGraph()
	g.AddEdge("S", "T", 3)

	tr, _ := dijkstra.Run(g, "S", "T")
	for _, s := range tr.Snapshots() {
		fmt.Printf("%d %-20s T=%s\n", s.Index(), s.Kind(), s.Cost("T"))
	}
	// Output:
	// 0 Initialized          T=∞
	// 1 Visiting             T=∞
	// 2 EvaluatingNeighbor   T=∞
	// 3 ImprovementFound     T=∞
	// 4 ImprovementApplied   T=3
	// 5 Visiting             T=3
	// 6 DestinationReached   T=3
	// 7 PathBacktrackStep    T=3
	// 8 PathBacktrackStep    T=3
	// 9 Completed            T=3
}

// ExampleRun_unreachable shows that an unreachable finish is not an error.
func ExampleRun_unreachable() {
	g := core.NewGraph()
	g.AddNode("X")
	g.AddNode("Y")

	tr, err := dijkstra.Run(g, "X", "Y")
	fmt.Println(err, tr.NoPathFound(), tr.Final().Kind(), tr.Result().TotalCost)
	// Output: <nil> true NoPathFound ∞
}
