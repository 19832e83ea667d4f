package mdd

import (
	"container/heap"
	"sync"
)

// fringe is a concurrent best-first open list: a binary heap ordered by
// descending Bound (the most promising node pops first) guarded by a
// single mutex, mirroring lvlath/core's split-lock discipline (one lock
// per logically independent structure) scaled down to this engine's
// single shared structure.
type fringe struct {
	mu sync.Mutex
	h  nodeHeap
}

func newFringe() *fringe {
	f := &fringe{}
	heap.Init(&f.h)

	return f
}

// push inserts n. Safe for concurrent use.
func (f *fringe) push(n *Node) {
	f.mu.Lock()
	heap.Push(&f.h, n)
	f.mu.Unlock()
}

// pop removes and returns the highest-bound node, or ok=false if empty.
// Safe for concurrent use.
func (f *fringe) pop() (*Node, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.h.Len() == 0 {
		return nil, false
	}

	return heap.Pop(&f.h).(*Node), true
}

// len reports the current open-node count.
func (f *fringe) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.h.Len()
}

// nodeHeap implements container/heap.Interface over *Node, ordered so
// the node with the largest Bound is the root (a max-heap: best-first
// search always expands the most optimistic node next).
type nodeHeap []*Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].Bound > h[j].Bound }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*Node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
