// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tanxh33/visualise-dijkstra/core"
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/frontier"
)

// labeler maps a node ID to its display name.
type labeler func(id string) string

func (l labeler) name(id string) string {
	if l == nil {
		return id
	}
	if s := l(id); s != "" {
		return s
	}
	return id
}

// highlights picks out the nodes a snapshot is talking about.
type highlights struct {
	current  string
	neighbor string
	path     map[string]bool
}

func highlightsOf(s dijkstra.Snapshot) highlights {
	h := highlights{path: map[string]bool{}}
	h.current, _ = s.Current()
	var path []string
	switch d := s.Decision().(type) {
	case dijkstra.EvaluatingNeighbor:
		h.neighbor = d.Neighbor
	case dijkstra.ImprovementFound:
		h.neighbor = d.Neighbor
	case dijkstra.ImprovementApplied:
		h.neighbor = d.Neighbor
	case dijkstra.NoImprovement:
		h.neighbor = d.Neighbor
	case dijkstra.PathBacktrackStep:
		path = d.Partial
	case dijkstra.Completed:
		path = d.Path
	}
	for _, id := range path {
		h.path[id] = true
	}
	return h
}

func (h highlights) style(id, text string) string {
	switch {
	case h.path[id]:
		return PathStyle.Render(text)
	case id == h.current:
		return CurrentStyle.Render(text)
	case id == h.neighbor:
		return NeighborStyle.Render(text)
	}
	return text
}

// renderTable lists every node with its cost and predecessor.
func renderTable(s dijkstra.Snapshot, label labeler) string {
	nodes := s.Nodes()
	slices.SortFunc(nodes, compareIDs)
	h := highlightsOf(s)

	width := len("Node")
	for _, id := range nodes {
		width = max(width, len(label.name(id)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %6s  %s\n", width, "Node", "Cost", "Prev")
	for _, id := range nodes {
		prev := "-"
		if p, ok := s.Predecessor(id); ok {
			prev = label.name(p)
		}
		row := fmt.Sprintf("%-*s  %6s  %s", width, label.name(id), s.Cost(id), prev)
		b.WriteString(h.style(id, row))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFrontier shows the queue in extraction order.
func renderFrontier(entries []frontier.Entry, label labeler) string {
	if len(entries) == 0 {
		return "Frontier: (empty)"
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = label.name(e.ID) + " " + strconv.FormatInt(e.Priority, 10)
	}
	return "Frontier: " + strings.Join(parts, " · ")
}

// renderEdges lists the graph as "A —5— B" lines.
func renderEdges(edges []core.Edge, label labeler, h highlights) string {
	lines := make([]string, len(edges))
	for i, e := range edges {
		line := fmt.Sprintf("%s —%d— %s", label.name(e.A), e.Weight, label.name(e.B))
		switch {
		case h.path[e.A] && h.path[e.B]:
			line = PathStyle.Render(line)
		case (e.A == h.current && e.B == h.neighbor) || (e.B == h.current && e.A == h.neighbor):
			line = NeighborStyle.Render(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// compareIDs orders decimal IDs numerically and anything else as text.
func compareIDs(a, b string) int {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return x - y
	}
	return strings.Compare(a, b)
}
