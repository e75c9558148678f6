// SPDX-License-Identifier: MIT

package builder

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tanxh33/visualise-dijkstra/core"
)

//go:embed presets.yaml
var presetsYAML []byte

// PresetNode is one labelled node of an example graph.
type PresetNode struct {
	ID    string `yaml:"id" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// PresetEdge is one weighted edge of an example graph.
type PresetEdge struct {
	A      string `yaml:"a" validate:"required"`
	B      string `yaml:"b" validate:"required,nefield=A"`
	Weight int64  `yaml:"weight" validate:"gte=1"`
}

// Preset is a ready-made example graph with a suggested run.
type Preset struct {
	Name        string       `yaml:"name" validate:"required"`
	Description string       `yaml:"description"`
	Start       string       `yaml:"start" validate:"required"`
	Finish      string       `yaml:"finish" validate:"required"`
	Nodes       []PresetNode `yaml:"nodes" validate:"required,min=1,dive"`
	Edges       []PresetEdge `yaml:"edges" validate:"dive"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets" validate:"required,min=1,dive"`
}

var (
	presetsOnce sync.Once
	presetsByID map[string]Preset
	presetNames []string
	presetsErr  error
)

// loadPresets parses and validates the embedded YAML once.
func loadPresets() {
	presetsOnce.Do(func() {
		var f presetFile
		if err := yaml.Unmarshal(presetsYAML, &f); err != nil {
			presetsErr = fmt.Errorf("%w: %v", ErrBadPreset, err)
			return
		}
		presetsByID, presetNames, presetsErr = indexPresets(f.Presets)
	})
}

// indexPresets validates ps and keys them by name.
func indexPresets(ps []Preset) (map[string]Preset, []string, error) {
	v := validator.New()
	byName := make(map[string]Preset, len(ps))
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		if err := v.Struct(p); err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %v", ErrBadPreset, p.Name, err)
		}
		if err := p.check(); err != nil {
			return nil, nil, err
		}
		if _, dup := byName[p.Name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate name %q", ErrBadPreset, p.Name)
		}
		byName[p.Name] = p
		names = append(names, p.Name)
	}
	sort.Strings(names)

	return byName, names, nil
}

// check enforces the rules struct tags cannot express: unique IDs and
// labels, endpoints that exist, no duplicate edges.
func (p Preset) check() error {
	ids := make(map[string]bool, len(p.Nodes))
	labels := make(map[string]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		if ids[n.ID] || labels[n.Label] {
			return fmt.Errorf("%w: %q: duplicate node %q/%q", ErrBadPreset, p.Name, n.ID, n.Label)
		}
		ids[n.ID], labels[n.Label] = true, true
	}
	if !ids[p.Start] || !ids[p.Finish] {
		return fmt.Errorf("%w: %q: start or finish is not a node", ErrBadPreset, p.Name)
	}
	type pair struct{ a, b string }
	seen := make(map[pair]bool, len(p.Edges))
	for _, e := range p.Edges {
		if !ids[e.A] || !ids[e.B] {
			return fmt.Errorf("%w: %q: edge %s–%s has an unknown endpoint", ErrBadPreset, p.Name, e.A, e.B)
		}
		k := pair{min(e.A, e.B), max(e.A, e.B)}
		if seen[k] {
			return fmt.Errorf("%w: %q: duplicate edge %s–%s", ErrBadPreset, p.Name, e.A, e.B)
		}
		seen[k] = true
	}

	return nil
}

// Presets returns the names of the embedded example graphs, sorted.
func Presets() ([]string, error) {
	loadPresets()
	if presetsErr != nil {
		return nil, presetsErr
	}
	return append([]string(nil), presetNames...), nil
}

// LoadPreset returns the example graph called name.
func LoadPreset(name string) (Preset, error) {
	loadPresets()
	if presetsErr != nil {
		return Preset{}, presetsErr
	}
	p, ok := presetsByID[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	p.Nodes = append([]PresetNode(nil), p.Nodes...)
	p.Edges = append([]PresetEdge(nil), p.Edges...)

	return p, nil
}

// PresetGraph is a Constructor that adds the nodes and edges of p.
func PresetGraph(p Preset) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, n := range p.Nodes {
			g.AddNode(n.ID)
		}
		for _, e := range p.Edges {
			g.AddEdge(e.A, e.B, e.Weight)
		}
		return nil
	}
}

// Graph builds a fresh core.Graph holding p.
func (p Preset) Graph(opts ...core.GraphOption) *core.Graph {
	g, _ := BuildGraph(opts, nil, PresetGraph(p))
	return g
}

// Labels maps node ID to label.
func (p Preset) Labels() map[string]string {
	out := make(map[string]string, len(p.Nodes))
	for _, n := range p.Nodes {
		out[n.ID] = n.Label
	}
	return out
}
