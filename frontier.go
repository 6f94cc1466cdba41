package asteroidfield

import "container/heap"

// entry is one pending item on a search frontier: a state together with the
// move path that reached it. priority and seq only matter to the heap
// frontier.
type entry struct {
	state    *State
	path     []Move
	priority int
	seq      int
}

// frontier abstracts the pending-state collection that distinguishes the
// three search strategies. The orchestrator loop is identical for all of
// them; only the pop discipline differs.
type frontier interface {
	push(*entry)
	pop() *entry
	len() int
}

// stackFrontier pops last-in-first-out (depth-first).
type stackFrontier struct {
	items []*entry
}

func (f *stackFrontier) push(e *entry) { f.items = append(f.items, e) }
func (f *stackFrontier) len() int      { return len(f.items) }

func (f *stackFrontier) pop() *entry {
	n := len(f.items)
	e := f.items[n-1]
	f.items = f.items[:n-1]
	return e
}

// queueFrontier pops first-in-first-out (breadth-first). A head index avoids
// re-slicing from the front on every pop.
type queueFrontier struct {
	items []*entry
	head  int
}

func (f *queueFrontier) push(e *entry) { f.items = append(f.items, e) }
func (f *queueFrontier) len() int      { return len(f.items) - f.head }

func (f *queueFrontier) pop() *entry {
	e := f.items[f.head]
	f.items[f.head] = nil
	f.head++
	return e
}

// heapFrontier pops the entry with the lowest heuristic value (best-first).
// A monotonic insertion counter breaks ties so that equal-priority entries
// come out in insertion order regardless of heap internals.
type heapFrontier struct {
	items entryHeap
	seq   int
}

func newHeapFrontier() *heapFrontier {
	f := &heapFrontier{items: make(entryHeap, 0)}
	heap.Init(&f.items)
	return f
}

func (f *heapFrontier) push(e *entry) {
	e.seq = f.seq
	f.seq++
	heap.Push(&f.items, e)
}

func (f *heapFrontier) pop() *entry { return heap.Pop(&f.items).(*entry) }
func (f *heapFrontier) len() int    { return len(f.items) }

type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].priority == h[j].priority {
		return h[i].seq < h[j].seq
	}
	return h[i].priority < h[j].priority
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(*entry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
