// SPDX-License-Identifier: MIT

package narrate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
)

// Option configures a Narrator.
type Option func(*Narrator)

// WithLabels sets the function used to display node IDs. Returning "" or
// the ID itself shows the bare ID.
func WithLabels(label func(id string) string) Option {
	return func(n *Narrator) {
		if label != nil {
			n.label = label
		}
	}
}

// WithPrediction appends the learner's predicted path and its cost to the
// Completed narration.
func WithPrediction(path []string, cost int64) Option {
	return func(n *Narrator) {
		n.prediction = append([]string(nil), path...)
		n.predictionCost = cost
		n.predicting = true
	}
}

// Narrator renders snapshots of one run.
type Narrator struct {
	start, finish  string
	label          func(string) string
	prediction     []string
	predictionCost int64
	predicting     bool
}

// New returns a Narrator for a run from start to finish.
func New(start, finish string, opts ...Option) *Narrator {
	n := &Narrator{
		start:  start,
		finish: finish,
		label:  func(id string) string { return id },
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Intro is shown before any run exists.
func Intro() []string {
	return []string{
		"Visualising Dijkstra's Algorithm",
		"This is a tool for learners to understand Dijkstra's shortest path algorithm.",
		"",
		"Make your own graph by adding nodes and edges.",
		"Run the algorithm to find the shortest path between two nodes.",
		"",
		"You can also try loading one of the example graphs.",
	}
}

// Heading names the run, e.g. "From A to C".
func (n *Narrator) Heading() string {
	return "From " + n.short(n.start) + " to " + n.short(n.finish)
}

// Text is Describe joined with newlines.
func (n *Narrator) Text(s dijkstra.Snapshot) string {
	return strings.Join(n.Describe(s), "\n")
}

// Describe explains the decision recorded in s.
func (n *Narrator) Describe(s dijkstra.Snapshot) []string {
	cur, _ := s.Current()

	switch d := s.Decision().(type) {
	case dijkstra.Initialized:
		return []string{
			"Initialised lists.",
			"Costs for all nodes initialised as Infinity.",
		}

	case dijkstra.Visiting:
		return []string{
			`Evaluating the next node with lowest "priority" value: ` + n.full(d.Node),
		}

	case dijkstra.DestinationReached:
		return []string{
			"Current node: " + n.short(d.Node) + " = destination node, so we've found a solution!",
		}

	case dijkstra.PathBacktrackStep:
		out := []string{
			"From the destination node, we go back to the starting node through the closest neighbours, and add them to a list.",
			"",
			"Current node: " + n.full(cur),
			"",
			"Shortest path result:",
		}
		for _, id := range d.Partial {
			out = append(out, n.listItem(id, id == cur))
		}
		return out

	case dijkstra.Completed:
		out := []string{
			"Reverse the list, and we have the solution!",
			"",
			fmt.Sprintf("Shortest path result (cost = %s):", d.TotalCost),
		}
		for _, id := range d.Path {
			out = append(out, n.listItem(id, false))
		}
		if n.predicting {
			out = append(out, "", fmt.Sprintf("Your predicted path (cost = %d):", n.predictionCost))
			for _, id := range n.prediction {
				out = append(out, n.listItem(id, false))
			}
		}
		return out

	case dijkstra.NoPathFound:
		return []string{
			"The algorithm has searched through all the neighbours connected by edges, but couldn't find any edges that connect to the destination.",
			"",
			"We couldn't find a shortest path because there is no path. Too bad...",
		}

	case dijkstra.EvaluatingNeighbor:
		return n.neighbor(s, d.Node, d.Neighbor, d.CostToNeighbor, false)

	case dijkstra.ImprovementFound:
		out := n.neighbor(s, d.Node, d.Neighbor, d.CostToNeighbor, false)
		return append(out, fmt.Sprintf("Since %d < %s, we should update the information for %s.",
			d.CostToNeighbor, d.Previous, n.short(d.Neighbor)))

	case dijkstra.ImprovementApplied:
		out := n.neighbor(s, d.Node, d.Neighbor, d.CostToNeighbor, true)
		return append(out, "Updated information for "+n.short(d.Neighbor)+" in the table.")

	case dijkstra.NoImprovement:
		out := n.neighbor(s, d.Node, d.Neighbor, d.CostToNeighbor, false)
		return append(out, fmt.Sprintf("Since %d is not < %s, we don't update the lists.",
			d.CostToNeighbor, d.Known))
	}

	return nil
}

// Prediction explains prediction mode and lists the path chosen so far.
func (n *Narrator) Prediction(path []string, cost int64) []string {
	out := []string{
		"Predict the shortest path:",
		"Compare your human intuition to the algorithm's result!",
		"",
		"Select a neighbouring node to add to your predicted path.",
		"Select the last node again to remove it from your predicted path.",
		"Run again to start the algorithm.",
		"",
		fmt.Sprintf("Selected path (cost = %d):", cost),
	}
	for _, id := range path {
		out = append(out, n.listItem(id, false))
	}
	return out
}

// neighbor renders the common block of the four evaluation decisions.
// Line 3 is omitted while evaluating the start's own neighbors, where it
// would repeat line 2.
func (n *Narrator) neighbor(s dijkstra.Snapshot, node, nb string, cost int64, updated bool) []string {
	out := []string{
		"Current node: " + n.full(node),
		"",
		"Loop through the neighbouring nodes of the current node and evaluate their cost.",
		"",
		"1. Neighbour node: " + n.full(nb),
	}
	if node == n.start {
		out = append(out, fmt.Sprintf("2. Cost from start (%s) to %s = %d", n.short(n.start), n.short(nb), cost))
		return append(out, "")
	}
	out = append(out,
		fmt.Sprintf("2. Cost from start (%s) to %s to %s = %d", n.short(n.start), n.short(node), n.short(nb), cost))
	line3 := fmt.Sprintf("3. Cost from start (%s) to %s = %s", n.short(n.start), n.short(nb), s.Cost(nb))
	if updated {
		line3 += " (updated)"
	}
	return append(out, line3, "")
}

// short is the display label of id.
func (n *Narrator) short(id string) string {
	if l := n.label(id); l != "" {
		return l
	}
	return id
}

// full is "label (#id)", or the bare ID when it has no distinct label.
func (n *Narrator) full(id string) string {
	l := n.short(id)
	if l == id {
		return id
	}
	return l + " (#" + id + ")"
}

// listItem renders one path entry; the current entry is starred.
func (n *Narrator) listItem(id string, current bool) string {
	item := "(#" + id + ") " + n.short(id)
	if n.short(id) == id {
		item = "- " + id
	}
	if current {
		item += " *"
	}
	return item
}

// FormatPath joins labels with arrows, e.g. "A → B → C".
func (n *Narrator) FormatPath(path []string) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = n.short(id)
	}
	return strings.Join(parts, " → ")
}

// Step renders a one-line progress marker, e.g. "Step 4 / 20".
func Step(cursor, length int) string {
	return "Step " + strconv.Itoa(cursor+1) + " / " + strconv.Itoa(length)
}
