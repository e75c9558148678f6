// SPDX-License-Identifier: MIT

// Package core defines the Graph and Edge types and the NewGraph
// constructor.
//
// This file declares Edge, Graph, GraphOption and NewGraph. The graph
// never signals errors, so there are no sentinel errors here.
package core

import (
	"log/slog"
	"sync"
)

// Edge is a read-only view of one undirected edge.
//
// A is always the lexicographically smaller endpoint so that every pair
// is reported exactly once by Graph.Edges.
type Edge struct {
	// A is the smaller endpoint ID.
	A string

	// B is the larger endpoint ID.
	B string

	// Weight is the cost of traversing the edge in either direction.
	Weight int64
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e Edge) Other(id string) string {
	switch id {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		return ""
	}
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithLogger attaches a structured logger that receives Debug records for
// every mutation. A nil logger is ignored.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is an undirected weighted graph stored as an adjacency map.
//
// adjacency[a][b] holds the weight of edge a–b. The relation is kept
// symmetric by every mutating method: adjacency[a][b] == adjacency[b][a].
// mu guards adjacency.
type Graph struct {
	mu sync.RWMutex

	// adjacency[(from)id][(to)id] = weight
	adjacency map[string]map[string]int64

	log *slog.Logger
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]int64),
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
