// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanxh33/visualise-dijkstra/builder"
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
)

func TestPresets_AllValid(t *testing.T) {
	names, err := builder.Presets()
	require.NoError(t, err)
	assert.Equal(t, []string{"city", "detour", "islands", "ladder", "triangle"}, names)

	for _, name := range names {
		p, err := builder.LoadPreset(name)
		require.NoError(t, err, name)

		g := p.Graph()
		assert.Equal(t, len(p.Nodes), g.NodeCount(), name)
		assert.Equal(t, len(p.Edges), g.EdgeCount(), name)
		assert.Len(t, p.Labels(), len(p.Nodes))

		_, err = dijkstra.Run(g, p.Start, p.Finish)
		require.NoError(t, err, name)
	}
}

func TestPresets_Triangle(t *testing.T) {
	p, err := builder.LoadPreset("triangle")
	require.NoError(t, err)

	tr, err := dijkstra.Run(p.Graph(), p.Start, p.Finish)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, tr.Result().Path)
	assert.Equal(t, "15", tr.Result().TotalCost.String())
	assert.Equal(t, "B", p.Labels()["1"])
}

func TestPresets_Outcomes(t *testing.T) {
	islands, err := builder.LoadPreset("islands")
	require.NoError(t, err)
	tr, err := dijkstra.Run(islands.Graph(), islands.Start, islands.Finish)
	require.NoError(t, err)
	assert.True(t, tr.NoPathFound())

	detour, err := builder.LoadPreset("detour")
	require.NoError(t, err)
	tr, err = dijkstra.Run(detour.Graph(), detour.Start, detour.Finish)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "4", "5"}, tr.Result().Path)
	assert.Equal(t, "9", tr.Result().TotalCost.String())
}

func TestLoadPreset_Unknown(t *testing.T) {
	_, err := builder.LoadPreset("nope")
	assert.ErrorIs(t, err, builder.ErrUnknownPreset)
}

func TestLoadPreset_ReturnsCopy(t *testing.T) {
	p, err := builder.LoadPreset("triangle")
	require.NoError(t, err)
	p.Nodes[0].Label = "Z"

	again, err := builder.LoadPreset("triangle")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Nodes[0].Label)
}
