// SPDX-License-Identifier: MIT

package frontier

import (
	"container/heap"
	"sort"
)

// Frontier is a stable min-priority queue of node IDs.
// The zero value is ready to use.
type Frontier struct {
	items   itemHeap
	nextSeq uint64
}

// New returns an empty Frontier.
func New() *Frontier {
	return &Frontier{}
}

// Insert queues id at the given priority. Existing entries for id are kept.
// Complexity: O(log n).
func (f *Frontier) Insert(id string, priority int64) {
	heap.Push(&f.items, item{Entry: Entry{ID: id, Priority: priority}, seq: f.nextSeq})
	f.nextSeq++
}

// ExtractMin removes and returns the lowest-priority entry.
// The boolean is false if the frontier is empty.
// Complexity: O(log n).
func (f *Frontier) ExtractMin() (Entry, bool) {
	if len(f.items) == 0 {
		return Entry{}, false
	}
	it := heap.Pop(&f.items).(item)

	return it.Entry, true
}

// PeekMin returns the lowest-priority entry without removing it.
// Complexity: O(1).
func (f *Frontier) PeekMin() (Entry, bool) {
	if len(f.items) == 0 {
		return Entry{}, false
	}

	return f.items[0].Entry, true
}

// IsEmpty reports whether no entries are held.
func (f *Frontier) IsEmpty() bool { return len(f.items) == 0 }

// Len returns the number of held entries, stale duplicates included.
func (f *Frontier) Len() int { return len(f.items) }

// Entries returns every held entry in extraction order. The slice is a
// fresh copy and may be kept by the caller.
// Complexity: O(n log n).
func (f *Frontier) Entries() []Entry {
	sorted := make(itemHeap, len(f.items))
	copy(sorted, f.items)
	sort.Sort(sorted)

	out := make([]Entry, len(sorted))
	for i, it := range sorted {
		out[i] = it.Entry
	}

	return out
}

// Clone returns an independent copy that extracts in the same order.
func (f *Frontier) Clone() *Frontier {
	cp := make(itemHeap, len(f.items))
	copy(cp, f.items)

	return &Frontier{items: cp, nextSeq: f.nextSeq}
}
