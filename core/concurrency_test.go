// SPDX-License-Identifier: MIT
// Package core_test exercises core.Graph under concurrent readers and writers.
// Run with -race to surface locking mistakes.

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanxh33/visualise-dijkstra/core"
)

const (
	NWriters = 20
	NReaders = 20
	NRounds  = 50
)

func TestGraph_ConcurrentEditsAndClones(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup

	for w := 0; w < NWriters; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				a := fmt.Sprintf("w%d-%d", w, i)
				b := fmt.Sprintf("w%d-%d", w, i+1)
				g.AddEdge(a, b, int64(i+1))
			}
		}(w)
	}
	for r := 0; r < NReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				_ = g.Clone().Edges()
				_ = g.Nodes()
			}
		}()
	}
	wg.Wait()

	// Each writer built a path of NRounds edges over NRounds+1 nodes.
	assert.Equal(t, NWriters*NRounds, g.EdgeCount())
	assert.Equal(t, NWriters*(NRounds+1), g.NodeCount())
}
