// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for the topology
// constructors: counts, edge placement, weights and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanxh33/visualise-dijkstra/builder"
	"github.com/tanxh33/visualise-dijkstra/core"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("2", "3"))
				assert.False(t, g.HasEdge("0", "3"))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("4", "0"), "closing edge")
				for _, id := range g.Nodes() {
					assert.Len(t, g.Neighbors(id), 2)
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"1", "2", "3", "4"}, g.Neighbors("0"))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Len(t, g.Neighbors("0"), 4)
				assert.True(t, g.HasEdge("4", "1"), "rim closes")
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("0", "3"))
				assert.False(t, g.HasEdge("2", "3"), "no wrap between rows")
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, .5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,.5) no rng", builder.RandomSparse(3, .5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)}
	a, err := builder.Build(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)}
	b, err := builder.Build(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestBuild_ComposesConstructors(t *testing.T) {
	g, err := builder.Build(
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(7)},
		builder.Path(3),
		builder.Star(4),
	)
	require.NoError(t, err)

	// Both constructors share IDs A..D; the star overwrites A–B with the same weight.
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
	w, ok := g.Weight("A", "D")
	require.True(t, ok)
	assert.Equal(t, int64(7), w)
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, int64(1), builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(4), builder.ConstantWeightFn(4)(nil))
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 8)(nil), "nil rng yields lo")

	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(0, 5) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
