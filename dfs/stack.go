package dfs

import (
	"sort"

	"github.com/katalvlaran/mazewalker/explore"
)

// Stack is a LIFO frontier.
type Stack struct {
	items []explore.Candidate
	opts  Options
}

// NewStack returns an empty stack.
func NewStack(opts ...Option) *Stack {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Stack{opts: o}
}

// Push pushes the batch; the last candidate pushed is popped first.
func (s *Stack) Push(batch ...explore.Candidate) {
	if s.opts.HeuristicOrder && len(batch) > 1 {
		sorted := make([]explore.Candidate, len(batch))
		copy(sorted, batch)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Heuristic > sorted[j].Heuristic
		})
		batch = sorted
	}
	for _, c := range batch {
		s.items = append(s.items, c)
		if s.opts.OnPush != nil {
			s.opts.OnPush(c)
		}
	}
}

// Pop removes the newest candidate.
func (s *Stack) Pop() (explore.Candidate, bool) {
	n := len(s.items)
	if n == 0 {
		return explore.Candidate{}, false
	}
	c := s.items[n-1]
	s.items = s.items[:n-1]
	if s.opts.OnPop != nil {
		s.opts.OnPop(c)
	}
	return c, true
}

// Len returns the number of stacked candidates.
func (s *Stack) Len() int { return len(s.items) }

var _ explore.Frontier = (*Stack)(nil)
