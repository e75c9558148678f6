// SPDX-License-Identifier: MIT

package frontier

// Entry is one frontier element: a node ID and the cost it was queued with.
type Entry struct {
	ID       string
	Priority int64
}

// item is the heap element. seq records insertion order and breaks ties
// between equal priorities.
type item struct {
	Entry
	seq uint64
}

// itemHeap is a min-heap of item ordered by (Priority, seq) ascending.
type itemHeap []item

// Len returns the number of items in the heap.
func (h itemHeap) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h itemHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type item.
func (h *itemHeap) Push(x any) { *h = append(*h, x.(item)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it has moved the minimum to the end.
func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
