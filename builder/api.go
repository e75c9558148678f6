// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build is BuildGraph without graph options.
func Build(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return BuildGraph(nil, bopts, cons...)
}

// addNodes inserts cfg.idFn(0..n-1) and returns the IDs in index order.
func addNodes(g *core.Graph, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddNode(ids[i])
	}
	return ids
}

// addEdge draws one weight and sets edge u–v.
func addEdge(g *core.Graph, cfg builderConfig, u, v string) {
	g.AddEdge(u, v, cfg.weightFn(cfg.rng))
}
