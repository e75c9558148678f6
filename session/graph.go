// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tanxh33/visualise-dijkstra/builder"
	"github.com/tanxh33/visualise-dijkstra/core"
)

// AddNode creates a node with a fresh ID and returns the ID.
func (s *Session) AddNode(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrEmptyLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.predicting {
		return "", ErrPredicting
	}
	if _, taken := s.byLabel[label]; taken {
		return "", fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	id := strconv.Itoa(s.nextID)
	s.nextID++
	s.setLabelLocked(id, label)
	s.graph.AddNode(id)
	s.log.Debug("node added", "id", id, "label", label)

	return id, nil
}

// RemoveNode deletes id and its edges.
func (s *Session) RemoveNode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.predicting {
		return ErrPredicting
	}
	label, ok := s.labels[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	s.graph.RemoveNode(id)
	delete(s.labels, id)
	delete(s.byLabel, label)
	s.log.Debug("node removed", "id", id, "label", label)

	return nil
}

// AddEdge joins a and b with weight w.
func (s *Session) AddEdge(a, b string, w int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.predicting {
		return ErrPredicting
	}
	for _, id := range [2]string{a, b} {
		if _, ok := s.labels[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	switch {
	case a == b:
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	case w <= 0:
		return fmt.Errorf("%w: %d", ErrBadWeight, w)
	case s.graph.HasEdge(a, b):
		return fmt.Errorf("%w: %s–%s", ErrDuplicateEdge, a, b)
	}
	s.graph.AddEdge(a, b, w)
	s.log.Debug("edge added", "a", a, "b", b, "weight", w)

	return nil
}

// RemoveEdge deletes the edge a–b.
func (s *Session) RemoveEdge(a, b string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.predicting {
		return ErrPredicting
	}
	if !s.graph.HasEdge(a, b) {
		return fmt.Errorf("%w: %s–%s", ErrUnknownEdge, a, b)
	}
	s.graph.RemoveEdge(a, b)
	s.log.Debug("edge removed", "a", a, "b", b)

	return nil
}

// Clear stops playback and empties the graph. The ID counter keeps going.
func (s *Session) Clear() {
	s.ctl.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	s.log.Debug("graph cleared")
}

// LoadExample replaces the graph with the named preset.
func (s *Session) LoadExample(name string) error {
	p, err := builder.LoadPreset(name)
	if err != nil {
		return err
	}
	if err = s.Import(p.Graph(), p.Labels()); err != nil {
		return err
	}

	s.mu.Lock()
	s.example = name
	s.mu.Unlock()

	return nil
}

// Import replaces the graph with a copy of g. Nodes are renumbered from the
// session's ID counter in ID order, so earlier IDs are never handed out
// again; find imported nodes by label. Nodes missing from labels are
// labelled with their new ID. The host rules apply: labels must be unique
// and every weight positive.
func (s *Session) Import(g *core.Graph, labels map[string]string) error {
	if g == nil {
		return ErrNilGraph
	}
	src := g.Clone()
	for _, e := range src.Edges() {
		switch {
		case e.A == e.B:
			return fmt.Errorf("%w: %q", ErrSelfLoop, e.A)
		case e.Weight <= 0:
			return fmt.Errorf("%w: %s–%s %d", ErrBadWeight, e.A, e.B, e.Weight)
		}
	}
	ids := src.Nodes()
	slices.SortFunc(ids, compareIDs)

	s.mu.Lock()
	_, _, err := planImport(ids, labels, s.nextID)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.ctl.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	rename, named, err := planImport(ids, labels, s.nextID)
	if err != nil {
		return err
	}
	s.clearLocked()
	s.nextID += len(ids)
	for _, id := range ids {
		nid := rename[id]
		s.graph.AddNode(nid)
		s.setLabelLocked(nid, named[nid])
	}
	for _, e := range src.Edges() {
		s.graph.AddEdge(rename[e.A], rename[e.B], e.Weight)
	}
	s.log.Debug("graph imported", "nodes", src.NodeCount(), "edges", src.EdgeCount(), "next_id", s.nextID)

	return nil
}

// planImport numbers ids from base and checks their labels are unique.
func planImport(ids []string, labels map[string]string, base int) (rename, named map[string]string, err error) {
	rename = make(map[string]string, len(ids))
	named = make(map[string]string, len(ids))
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		nid := strconv.Itoa(base + i)
		l := strings.TrimSpace(labels[id])
		if l == "" {
			l = nid
		}
		if seen[l] {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		seen[l] = true
		rename[id] = nid
		named[nid] = l
	}
	return rename, named, nil
}

// LoadRandomExample loads a preset other than the one loaded last, and
// returns its name.
func (s *Session) LoadRandomExample() (string, error) {
	names, err := builder.Presets()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	last := s.example
	pick := names[s.rng.Intn(len(names))]
	for len(names) > 1 && pick == last {
		pick = names[s.rng.Intn(len(names))]
	}
	s.mu.Unlock()

	return pick, s.LoadExample(pick)
}

// Label returns the label of id, or "" if there is none.
func (s *Session) Label(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labels[id]
}

// NodeByLabel finds the node carrying label.
func (s *Session) NodeByLabel(label string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byLabel[strings.TrimSpace(label)]
	return id, ok
}

// Nodes lists every node in ID order (numeric where possible).
func (s *Session) Nodes() []Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Node, 0, len(s.labels))
	for id, l := range s.labels {
		out = append(out, Node{ID: id, Label: l})
	}
	slices.SortFunc(out, func(a, b Node) int { return compareIDs(a.ID, b.ID) })
	return out
}

// Edges lists every edge once.
func (s *Session) Edges() []core.Edge {
	return s.graph.Edges()
}

// Graph returns a copy of the graph being edited.
func (s *Session) Graph() *core.Graph {
	return s.graph.Clone()
}

func (s *Session) setLabelLocked(id, label string) {
	s.labels[id] = label
	s.byLabel[label] = id
}

func (s *Session) clearLocked() {
	s.graph.Reset()
	clear(s.labels)
	clear(s.byLabel)
	s.resetRunLocked()
	s.example = ""
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
