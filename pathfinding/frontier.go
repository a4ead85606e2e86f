package pathfinding

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"pathviz/core"
)

// frontierEntry is a pending cell with its priority key.
type frontierEntry struct {
	estimate int    // bestCost + heuristic when enqueued
	seq      uint64 // insertion order, breaks estimate ties
	cell     *core.Cell
}

// lessEntry orders by estimate, then by insertion order so that equal
// estimates are dequeued first-in first-out.
func lessEntry(a, b frontierEntry) bool {
	if a.estimate != b.estimate {
		return a.estimate < b.estimate
	}
	return a.seq < b.seq
}

// frontier pairs a min-heap with a membership set. The set is what keeps a
// cell from being enqueued twice; entries already in the heap are never
// re-prioritised.
type frontier struct {
	queue   *heap.Heap[frontierEntry]
	members mapset.Set[core.Coord]
	seq     uint64
}

func newFrontier() *frontier {
	return &frontier{
		queue:   heap.New(lessEntry),
		members: mapset.New[core.Coord](),
	}
}

// push enqueues c with the given estimate and records membership.
func (f *frontier) push(c *core.Cell, estimate int) {
	f.queue.Push(frontierEntry{estimate: estimate, seq: f.seq, cell: c})
	f.seq++
	f.members.Put(c.Coord())
}

// pop removes the minimum entry and drops it from membership.
func (f *frontier) pop() (*core.Cell, bool) {
	e, ok := f.queue.Pop()
	if !ok {
		return nil, false
	}
	f.members.Remove(e.cell.Coord())
	return e.cell, true
}

func (f *frontier) contains(c *core.Cell) bool {
	return f.members.Has(c.Coord())
}

func (f *frontier) len() int {
	return f.queue.Size()
}
