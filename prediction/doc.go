// SPDX-License-Identifier: MIT

// Package prediction holds a learner's hand-picked path and its cost.
//
// An Evaluator is pure data: it knows nothing about rendering. It reads edge
// weights through a WeightLookup (core.Graph satisfies it) and refuses to
// extend the path across a pair that is not an edge, so CurrentCost never
// sums a weight that does not exist.
//
// Errors (sentinel):
//
//	– ErrNotStarted   Extend or CurrentCost before Start.
//	– ErrNotAdjacent  the new node is not a neighbor of the last one, or an
//	                  edge on the path was removed after it was chosen.
//	– ErrEmptyNodeID  Start or Extend with "".
//
// Example usage:
//
//	ev := prediction.New(g)
//	ev.Start("A")
//	_ = ev.Extend("B")
//	_ = ev.Extend("C")
//	cost, _ := ev.CurrentCost() // 15 on A–B(5), B–C(10)
package prediction
