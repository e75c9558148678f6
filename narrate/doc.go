// SPDX-License-Identifier: MIT

// Package narrate turns dijkstra snapshots into short plain-text
// explanations for a learner, one paragraph per decision.
//
// A Narrator is bound to the start and finish of a run and, optionally, to
// a label function and a predicted path. Describe returns the lines for a
// single snapshot; an empty string marks a paragraph break. Renderers join
// the lines or style them as they see fit.
//
// Example usage:
//
//	n := narrate.New("1", "3", narrate.WithLabels(session.Label))
//	fmt.Println(n.Heading())
//	for _, line := range n.Describe(snapshot) {
//	    fmt.Println(line)
//	}
package narrate
