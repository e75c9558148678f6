// SPDX-License-Identifier: MIT
package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanxh33/visualise-dijkstra/frontier"
)

func TestFrontier_EmptyBehaviour(t *testing.T) {
	f := frontier.New()
	assert.True(t, f.IsEmpty())
	assert.Zero(t, f.Len())

	_, ok := f.PeekMin()
	assert.False(t, ok)
	_, ok = f.ExtractMin()
	assert.False(t, ok)
	assert.Empty(t, f.Entries())

	var zero frontier.Frontier
	zero.Insert("A", 1)
	e, ok := zero.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, "A", e.ID)
}

func TestFrontier_ExtractsInPriorityOrder(t *testing.T) {
	f := frontier.New()
	f.Insert("C", 30)
	f.Insert("A", 10)
	f.Insert("B", 20)

	peek, ok := f.PeekMin()
	require.True(t, ok)
	assert.Equal(t, frontier.Entry{ID: "A", Priority: 10}, peek)
	assert.Equal(t, 3, f.Len(), "peek must not remove")

	var got []string
	for !f.IsEmpty() {
		e, _ := f.ExtractMin()
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestFrontier_TiesBrokenByInsertionOrder(t *testing.T) {
	f := frontier.New()
	for _, id := range []string{"Z", "Y", "X", "W"} {
		f.Insert(id, 5)
	}
	f.Insert("first", 1)

	assert.Equal(t, []frontier.Entry{
		{ID: "first", Priority: 1},
		{ID: "Z", Priority: 5},
		{ID: "Y", Priority: 5},
		{ID: "X", Priority: 5},
		{ID: "W", Priority: 5},
	}, f.Entries())

	var got []string
	for !f.IsEmpty() {
		e, _ := f.ExtractMin()
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"first", "Z", "Y", "X", "W"}, got)
}

func TestFrontier_DuplicatesAreKept(t *testing.T) {
	f := frontier.New()
	f.Insert("B", 20)
	f.Insert("B", 15) // improvement; stale 20 stays

	assert.Equal(t, 2, f.Len())
	e, _ := f.ExtractMin()
	assert.Equal(t, int64(15), e.Priority)
	e, _ = f.ExtractMin()
	assert.Equal(t, frontier.Entry{ID: "B", Priority: 20}, e)
}

// TestFrontier_MatchesStableSort checks the heap against a stable sort on
// random inserts interleaved with extractions.
func TestFrontier_MatchesStableSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := frontier.New()
	var ref []frontier.Entry

	for i := 0; i < 500; i++ {
		if rng.Intn(3) == 0 && len(ref) > 0 {
			got, ok := f.ExtractMin()
			require.True(t, ok)
			require.Equal(t, ref[0], got)
			ref = ref[1:]
			continue
		}
		e := frontier.Entry{ID: string(rune('a' + rng.Intn(26))), Priority: int64(rng.Intn(10))}
		f.Insert(e.ID, e.Priority)
		ref = append(ref, e)
		sort.SliceStable(ref, func(i, j int) bool { return ref[i].Priority < ref[j].Priority })
	}
	require.Equal(t, ref, append([]frontier.Entry{}, f.Entries()...))
}

func TestFrontier_CloneAndEntriesAreIndependent(t *testing.T) {
	f := frontier.New()
	f.Insert("A", 1)
	f.Insert("B", 2)

	entries := f.Entries()
	clone := f.Clone()
	entries[0].ID = "mutated"
	_, _ = f.ExtractMin()
	f.Insert("C", 0)

	assert.Equal(t, []frontier.Entry{{ID: "A", Priority: 1}, {ID: "B", Priority: 2}}, clone.Entries())
	clone.Insert("D", 2)
	// D ties with B but was inserted later.
	assert.Equal(t, []frontier.Entry{{ID: "A", Priority: 1}, {ID: "B", Priority: 2}, {ID: "D", Priority: 2}}, clone.Entries())
}
