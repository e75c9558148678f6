// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"testing"

	"github.com/tanxh33/visualise-dijkstra/core"
)

// BenchmarkGraph_Clone measures deep-copying a chain of N nodes.
func BenchmarkGraph_Clone(b *testing.B) {
	const N = 5000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), int64(i%7+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
