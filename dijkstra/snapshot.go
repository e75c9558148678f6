// SPDX-License-Identifier: MIT

package dijkstra

import (
	"maps"
	"slices"
	"sort"

	"github.com/tanxh33/visualise-dijkstra/frontier"
)

// Snapshot is the recorded state of a run at one decision point.
//
// A Snapshot owns its tables outright: they are copied from the engine when
// the snapshot is taken and every accessor below returns a fresh copy, so
// neither the engine nor a caller can change a recorded snapshot.
type Snapshot struct {
	index        int
	costs        map[string]Cost
	frontier     []frontier.Entry
	predecessors map[string]string
	current      string
	decision     Decision
}

// Index is the position of the snapshot in its Trace.
func (s Snapshot) Index() int { return s.index }

// Kind is shorthand for Decision().Kind().
func (s Snapshot) Kind() DecisionKind { return s.decision.Kind() }

// Decision returns what the engine was doing at this instant.
func (s Snapshot) Decision() Decision { return cloneDecision(s.decision) }

// Current returns the node under consideration, if any.
// It is unset only in the Initialized snapshot.
func (s Snapshot) Current() (string, bool) { return s.current, s.current != "" }

// Cost returns the recorded cost of id; unknown IDs read as Unreached.
func (s Snapshot) Cost(id string) Cost { return s.costs[id] }

// Costs returns a copy of the whole cost table.
func (s Snapshot) Costs() map[string]Cost { return maps.Clone(s.costs) }

// Predecessor returns the node id was most recently reached from.
func (s Snapshot) Predecessor(id string) (string, bool) {
	p := s.predecessors[id]
	return p, p != ""
}

// Predecessors returns a copy of the predecessor table ("" means none).
func (s Snapshot) Predecessors() map[string]string { return maps.Clone(s.predecessors) }

// Frontier returns the frontier contents in extraction order.
func (s Snapshot) Frontier() []frontier.Entry { return slices.Clone(s.frontier) }

// Nodes returns the IDs in the cost table, sorted.
func (s Snapshot) Nodes() []string {
	out := make([]string, 0, len(s.costs))
	for id := range s.costs {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// PathTo walks the predecessor table back from id and returns the path in
// forward order (the first element has no predecessor). It stops after
// len(Nodes()) hops so a malformed table cannot loop.
func (s Snapshot) PathTo(id string) []string {
	if _, ok := s.costs[id]; !ok {
		return nil
	}
	var rev []string
	for node := id; node != "" && len(rev) <= len(s.costs); node = s.predecessors[node] {
		rev = append(rev, node)
	}
	slices.Reverse(rev)

	return rev
}
