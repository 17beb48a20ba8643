package astar

import (
	"container/heap"

	"github.com/katalvlaran/mazewalker/explore"
)

// Priority is a min-heap frontier on α·cost + heuristic with lazy
// decrease-key.
type Priority struct {
	pq   entryPQ
	seq  uint64
	cost CostFunc
	opts Options
}

// New returns an empty priority frontier that checks staleness through cost.
func New(cost CostFunc, opts ...Option) (*Priority, error) {
	if cost == nil {
		return nil, ErrNilCostFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	p := &Priority{cost: cost, opts: o}
	heap.Init(&p.pq)
	return p, nil
}

// Alpha returns the configured cost weight.
func (p *Priority) Alpha() float64 { return p.opts.Alpha }

// Push adds every candidate of the batch with its priority fixed now.
func (p *Priority) Push(batch ...explore.Candidate) {
	for _, c := range batch {
		p.seq++
		heap.Push(&p.pq, &entry{
			cand:     c,
			priority: p.opts.Alpha*float64(c.Cost) + c.Heuristic,
			seq:      p.seq,
		})
	}
}

// Pop returns the lowest-priority live entry, discarding stale ones on the way.
func (p *Priority) Pop() (explore.Candidate, bool) {
	for p.pq.Len() > 0 {
		e := heap.Pop(&p.pq).(*entry)
		if cur, ok := p.cost(e.cand.Coord); !ok || cur != e.cand.Cost {
			p.opts.OnStale(e.cand)
			continue
		}
		return e.cand, true
	}
	return explore.Candidate{}, false
}

// Len returns the number of heap entries, stale ones included.
func (p *Priority) Len() int { return p.pq.Len() }

var _ explore.Frontier = (*Priority)(nil)

// entry is one heap record. priority is a snapshot taken at push time.
type entry struct {
	cand     explore.Candidate
	priority float64
	seq      uint64
}

// entryPQ is a min-heap of *entry ordered by priority, then push order.
// When a cost drops we push a new *entry; the outdated one remains and is
// recognised on pop.
type entryPQ []*entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by priority, breaking ties by sequence number.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element of the slice.
// Called by heap.Pop after it has moved the minimum there.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
