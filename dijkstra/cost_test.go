// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
)

func TestCost_Unreached(t *testing.T) {
	var zero dijkstra.Cost
	inf := dijkstra.Unreached()

	assert.Equal(t, inf, zero, "zero value is Unreached")
	assert.True(t, inf.IsInf())
	assert.Equal(t, "∞", inf.String())
	assert.True(t, math.IsInf(inf.Float64(), 1))
	v, ok := inf.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.True(t, inf.Add(5).IsInf())
}

func TestCost_Ordering(t *testing.T) {
	inf := dijkstra.Unreached()
	big := dijkstra.Finite(math.MaxInt64)
	one := dijkstra.Finite(1)

	assert.True(t, one.Less(big))
	assert.True(t, big.Less(inf), "every finite cost is below Unreached")
	assert.False(t, inf.Less(big))
	assert.False(t, inf.Less(inf))
	assert.False(t, one.Less(one))
}

func TestCost_Finite(t *testing.T) {
	c := dijkstra.Finite(10).Add(5)
	v, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, int64(15), v)
	assert.Equal(t, "15", c.String())
	assert.Equal(t, 15.0, c.Float64())
	assert.False(t, c.IsInf())
}
