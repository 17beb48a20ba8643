package bfs

import "github.com/katalvlaran/mazewalker/explore"

// compactAt is the consumed prefix length after which Pop reclaims space.
const compactAt = 64

// Queue is a FIFO frontier.
type Queue struct {
	items []explore.Candidate
	head  int
	opts  Options
}

// NewQueue returns an empty queue.
func NewQueue(opts ...Option) *Queue {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue{opts: o}
}

// Push appends the batch in order.
func (q *Queue) Push(batch ...explore.Candidate) {
	for _, c := range batch {
		q.items = append(q.items, c)
		q.opts.OnEnqueue(c)
	}
}

// Pop removes the oldest candidate.
func (q *Queue) Pop() (explore.Candidate, bool) {
	if q.head >= len(q.items) {
		return explore.Candidate{}, false
	}
	c := q.items[q.head]
	q.items[q.head] = explore.Candidate{}
	q.head++

	// Reslice once most of the backing array is dead weight.
	if q.head >= compactAt && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}
	q.opts.OnDequeue(c)

	return c, true
}

// Len returns the number of queued candidates.
func (q *Queue) Len() int { return len(q.items) - q.head }

var _ explore.Frontier = (*Queue)(nil)
