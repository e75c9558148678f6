// SPDX-License-Identifier: MIT
package narrate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanxh33/visualise-dijkstra/core"
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/narrate"
)

var labels = map[string]string{"1": "A", "2": "B", "3": "C"}

func label(id string) string { return labels[id] }

// run builds 1–2(5), 2–3(10), 1–3(20) and runs 1→3.
func run(t *testing.T) *dijkstra.Trace {
	t.Helper()
	g := core.NewGraph()
	g.AddEdge("1", "2", 5)
	g.AddEdge("2", "3", 10)
	g.AddEdge("1", "3", 20)
	tr, err := dijkstra.Run(g, "1", "3")
	require.NoError(t, err)
	return tr
}

func at(t *testing.T, tr *dijkstra.Trace, i int) dijkstra.Snapshot {
	t.Helper()
	s, ok := tr.Snapshot(i)
	require.True(t, ok)
	return s
}

func TestNarrator_Heading(t *testing.T) {
	assert.Equal(t, "From A to C", narrate.New("1", "3", narrate.WithLabels(label)).Heading())
	assert.Equal(t, "From 1 to 3", narrate.New("1", "3").Heading())
}

func TestNarrator_EveryKindHasText(t *testing.T) {
	tr := run(t)
	n := narrate.New("1", "3", narrate.WithLabels(label))
	for _, s := range tr.Snapshots() {
		assert.NotEmpty(t, n.Describe(s), "kind %s", s.Kind())
	}
}

func TestNarrator_Describe(t *testing.T) {
	tr := run(t)
	n := narrate.New("1", "3", narrate.WithLabels(label))

	assert.Contains(t, n.Text(at(t, tr, 0)), "initialised as Infinity")
	assert.Contains(t, n.Text(at(t, tr, 1)), `lowest "priority" value: A (#1)`)

	// Evaluating from the start omits line 3.
	eval := n.Text(at(t, tr, 2))
	assert.Contains(t, eval, "1. Neighbour node: B (#2)")
	assert.Contains(t, eval, "2. Cost from start (A) to B = 5")
	assert.NotContains(t, eval, "3. Cost")

	found := n.Text(at(t, tr, 3))
	assert.Contains(t, found, "Since 5 < ∞, we should update the information for B.")

	applied := n.Text(at(t, tr, 4))
	assert.Contains(t, applied, "Updated information for B in the table.")

	// B→A: 10 is not below 0.
	noImp := n.Text(at(t, tr, 10))
	assert.Contains(t, noImp, "2. Cost from start (A) to B to A = 10")
	assert.Contains(t, noImp, "3. Cost from start (A) to A = 0")
	assert.Contains(t, noImp, "Since 10 is not < 0, we don't update the lists.")

	// B→C improves 20 to 15.
	assert.Contains(t, n.Text(at(t, tr, 12)), "Since 15 < 20")
	assert.Contains(t, n.Text(at(t, tr, 13)), "3. Cost from start (A) to C = 15 (updated)")

	assert.Contains(t, n.Text(at(t, tr, 15)), "Current node: C = destination node")

	back := n.Describe(at(t, tr, 17))
	assert.Equal(t, []string{"(#3) C", "(#2) B *"}, back[len(back)-2:])

	done := n.Text(tr.Final())
	assert.Contains(t, done, "Shortest path result (cost = 15):")
	assert.NotContains(t, done, "predicted")
}

func TestNarrator_CompletedWithPrediction(t *testing.T) {
	tr := run(t)
	n := narrate.New("1", "3", narrate.WithLabels(label), narrate.WithPrediction([]string{"1", "3"}, 20))

	lines := n.Describe(tr.Final())
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Your predicted path (cost = 20):")
	assert.Equal(t, []string{"(#1) A", "(#3) C"}, lines[len(lines)-2:])
}

func TestNarrator_NoPath(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("X")
	g.AddNode("Y")
	tr, err := dijkstra.Run(g, "X", "Y")
	require.NoError(t, err)

	text := narrate.New("X", "Y").Text(tr.Final())
	assert.Contains(t, text, "there is no path")
}

func TestNarrator_Prediction(t *testing.T) {
	n := narrate.New("1", "3", narrate.WithLabels(label))
	lines := n.Prediction([]string{"1", "2"}, 5)
	assert.Contains(t, lines, "Selected path (cost = 5):")
	assert.Equal(t, []string{"(#1) A", "(#2) B"}, lines[len(lines)-2:])
}

func TestNarrator_Unlabelled(t *testing.T) {
	tr := run(t)
	n := narrate.New("1", "3")
	assert.Contains(t, n.Text(at(t, tr, 1)), "value: 1")
	assert.Equal(t, "1 → 2 → 3", n.FormatPath(tr.Result().Path))
	lines := n.Describe(tr.Final())
	assert.Equal(t, "- 3", lines[len(lines)-1])
}

func TestStep(t *testing.T) {
	assert.Equal(t, "Step 1 / 20", narrate.Step(0, 20))
	assert.NotEmpty(t, narrate.Intro())
}
