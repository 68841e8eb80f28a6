package maze

import "container/heap"

// frontier holds discovered-but-unexpanded cells, identified by their
// row-major index. The implementation fixes the expansion order: FIFO
// for breadth-first, LIFO for depth-first, a priority heap for the
// weighted algorithms.
type frontier interface {
	push(cell int32, priority int32)
	pop() (int32, bool)
	len() int
}

// fifoFrontier pops in insertion order.
type fifoFrontier struct {
	items []int32
	head  int
}

func (f *fifoFrontier) push(cell int32, _ int32) {
	f.items = append(f.items, cell)
}

func (f *fifoFrontier) pop() (int32, bool) {
	if f.head >= len(f.items) {
		return 0, false
	}
	c := f.items[f.head]
	f.head++
	return c, true
}

func (f *fifoFrontier) len() int { return len(f.items) - f.head }

// lifoFrontier pops the most recent insertion first.
type lifoFrontier struct {
	items []int32
}

func (f *lifoFrontier) push(cell int32, _ int32) {
	f.items = append(f.items, cell)
}

func (f *lifoFrontier) pop() (int32, bool) {
	if len(f.items) == 0 {
		return 0, false
	}
	c := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return c, true
}

func (f *lifoFrontier) len() int { return len(f.items) }

// heapEntry is one prioritized frontier slot. seq breaks priority ties
// in insertion order so equal-cost pops stay deterministic.
type heapEntry struct {
	cell     int32
	priority int32
	seq      int64
}

type entryHeap []heapEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	e := old[len(old)-1]
	*h = old[:len(old)-1]
	return e
}

// heapFrontier pops the lowest priority value first. Superseded entries
// are not removed; the solver skips them at pop.
type heapFrontier struct {
	entries entryHeap
	seq     int64
}

func (f *heapFrontier) push(cell int32, priority int32) {
	f.seq++
	heap.Push(&f.entries, heapEntry{cell: cell, priority: priority, seq: f.seq})
}

func (f *heapFrontier) pop() (int32, bool) {
	if f.entries.Len() == 0 {
		return 0, false
	}
	e := heap.Pop(&f.entries).(heapEntry)
	return e.cell, true
}

func (f *heapFrontier) len() int { return f.entries.Len() }
