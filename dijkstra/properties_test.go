// SPDX-License-Identifier: MIT
// Package dijkstra_test checks engine-wide properties on seeded random
// graphs, using Floyd–Warshall as the brute-force reference.

package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanxh33/visualise-dijkstra/core"
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
)

const (
	propSeed   = 20240601
	propGraphs = 60
	propMaxN   = 8
)

// randomGraph returns n nodes "n0".."n{n-1}" with each pair joined with
// probability p and weight in [1, 20].
func randomGraph(rng *rand.Rand, n int, p float64) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(fmt.Sprintf("n%d", i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", j), int64(rng.Intn(20)+1))
			}
		}
	}
	return g
}

// allPairs is the O(V³) reference; math.MaxInt64 marks unreachable.
func allPairs(g *core.Graph) map[string]map[string]int64 {
	nodes := g.Nodes()
	d := make(map[string]map[string]int64, len(nodes))
	for _, u := range nodes {
		d[u] = make(map[string]int64, len(nodes))
		for _, v := range nodes {
			d[u][v] = math.MaxInt64
		}
		d[u][u] = 0
	}
	for _, e := range g.Edges() {
		d[e.A][e.B] = e.Weight
		d[e.B][e.A] = e.Weight
	}
	for _, k := range nodes {
		for _, i := range nodes {
			if d[i][k] == math.MaxInt64 {
				continue
			}
			for _, j := range nodes {
				if d[k][j] == math.MaxInt64 {
					continue
				}
				if s := d[i][k] + d[k][j]; s < d[i][j] {
					d[i][j] = s
				}
			}
		}
	}
	return d
}

// pathWeight sums the edge weights along path, failing on a non-edge.
func pathWeight(t *testing.T, g *core.Graph, path []string) int64 {
	t.Helper()
	var sum int64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		require.True(t, ok, "%s–%s is not an edge", path[i-1], path[i])
		sum += w
	}
	return sum
}

func TestProperties_RandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed))

	for gi := 0; gi < propGraphs; gi++ {
		n := rng.Intn(propMaxN) + 1
		g := randomGraph(rng, n, 0.35)
		ref := allPairs(g)
		nodes := g.Nodes()
		start := nodes[rng.Intn(len(nodes))]
		finish := nodes[rng.Intn(len(nodes))]

		t.Run(fmt.Sprintf("g%02d_%s_%s", gi, start, finish), func(t *testing.T) {
			tr, err := dijkstra.Run(g, start, finish)
			require.NoError(t, err)

			// First snapshot Initialized, last terminal, nothing terminal before it.
			snaps := tr.Snapshots()
			require.NotEmpty(t, snaps)
			assert.Equal(t, dijkstra.KindInitialized, snaps[0].Kind())
			assert.True(t, snaps[len(snaps)-1].Kind().Terminal())
			for _, s := range snaps[1 : len(snaps)-1] {
				assert.NotEqual(t, dijkstra.KindInitialized, s.Kind())
				assert.False(t, s.Kind().Terminal())
			}

			want := ref[start][finish]
			res := tr.Result()
			if want == math.MaxInt64 {
				assert.True(t, tr.NoPathFound())
				assert.Empty(t, res.Path)
				assert.True(t, res.TotalCost.IsInf())
				return
			}

			// Optimality and consistency of the reported path.
			require.True(t, res.Found())
			got, ok := res.TotalCost.Value()
			require.True(t, ok)
			assert.Equal(t, want, got)
			assert.Equal(t, start, res.Path[0])
			assert.Equal(t, finish, res.Path[len(res.Path)-1])
			assert.Equal(t, got, pathWeight(t, g, res.Path))

			// Round trip through the predecessor table of the final snapshot.
			final := tr.Final()
			hops := 0
			for node := finish; node != start; hops++ {
				p, ok := final.Predecessor(node)
				require.True(t, ok, "no predecessor for %s", node)
				node = p
				require.LessOrEqual(t, hops, len(nodes))
			}
			assert.Equal(t, len(res.Path)-1, hops)
			assert.Equal(t, res.Path, final.PathTo(finish))
		})
	}
}

func TestProperties_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed + 1))
	for i := 0; i < 10; i++ {
		g := randomGraph(rng, 7, 0.5)
		a, err := dijkstra.Run(g, "n0", "n6")
		require.NoError(t, err)
		b, err := dijkstra.Run(g, "n0", "n6")
		require.NoError(t, err)

		assert.Equal(t, a.Snapshots(), b.Snapshots())
		assert.Equal(t, a.Result(), b.Result())
	}
}

// TestProperties_CostsNeverIncrease checks that a node's recorded cost
// only ever moves downward across the sequence.
func TestProperties_CostsNeverIncrease(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed + 2))
	g := randomGraph(rng, propMaxN, 0.6)
	tr, err := dijkstra.Run(g, "n0", fmt.Sprintf("n%d", propMaxN-1))
	require.NoError(t, err)

	prev := tr.Snapshots()[0].Costs()
	for _, s := range tr.Snapshots()[1:] {
		cur := s.Costs()
		for id, c := range cur {
			assert.False(t, prev[id].Less(c), "cost of %s rose at %d", id, s.Index())
		}
		prev = cur
	}
}
