package explore

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/walls"
)

// Scheduler grows the cell graph and hands out exploration candidates.
type Scheduler struct {
	g        *core.Graph
	frontier Frontier
	target   core.Coord
	opts     Options

	current    Candidate
	hasCurrent bool
}

// New creates a scheduler over g, ordering candidates with f and scoring
// them towards target.
func New(g *core.Graph, f Frontier, target core.Coord, opts ...Option) (*Scheduler, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if f == nil {
		return nil, ErrNilFrontier
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Scheduler{g: g, frontier: f, target: target, opts: o}, nil
}

// Graph returns the graph being grown.
func (s *Scheduler) Graph() *core.Graph { return s.g }

// Target returns the coordinate the heuristic scores towards.
func (s *Scheduler) Target() core.Coord { return s.target }

// Pending returns the number of frontier entries, stale ones included.
func (s *Scheduler) Pending() int { return s.frontier.Len() }

// Current returns the held exploration candidate, if any.
func (s *Scheduler) Current() (Candidate, bool) { return s.current, s.hasCurrent }

// Score returns the heuristic value of c.
func (s *Scheduler) Score(c core.Coord) float64 { return s.opts.Heuristic(c, s.target) }

// Observe records the walls of c on its first visit.
//
// Implementation:
//   - Stage 1: Decode m; for each open side create the neighbor if unknown
//     (parent c, cost c+1, heuristic towards the target) and link it to c.
//   - Stage 2: Mark c visited and drop it as the held candidate.
//   - Stage 3: With relaxation, improve parents around c (see relax).
//   - Stage 4: Push the new cells as one batch, then any re-pushed cells.
//
// Returns every neighbor coordinate revealed by the walls of c, in N, E, S, W
// order, whether new or already known.
func (s *Scheduler) Observe(c core.Coord, m walls.Mask) ([]core.Coord, error) {
	cell, err := s.g.Cell(c)
	if err != nil {
		return nil, err
	}
	if cell.Visited() {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyObserved, c)
	}

	openings := walls.Decode(m)
	revealed := make([]core.Coord, 0, len(openings))
	fresh := make([]Candidate, 0, len(openings))
	for _, o := range openings {
		n := c.Add(o.DX, o.DY)
		added, err := s.g.Add(n, c, s.Score(n))
		if err != nil {
			return nil, err
		}
		if err = s.g.Link(c, n); err != nil {
			return nil, err
		}
		revealed = append(revealed, n)
		if added {
			fresh = append(fresh, s.candidate(n))
		}
	}
	if err = s.g.MarkVisited(c); err != nil {
		return nil, err
	}
	if s.hasCurrent && s.current.Coord == c {
		s.hasCurrent = false
	}

	var again []Candidate
	if s.opts.Relax {
		if again, err = s.relax(c); err != nil {
			return nil, err
		}
	}

	if len(fresh) > 0 {
		s.frontier.Push(fresh...)
	}
	if len(again) > 0 {
		s.frontier.Push(again...)
	}
	s.opts.OnObserve(c, revealed)

	return revealed, nil
}

// relax moves c under its cheapest linked neighbor, then moves every linked
// neighbor that is cheaper to reach through c under c. Links that would close
// a cycle or would not lower a cost are skipped. Returns fresh candidates for
// the unvisited cells whose cost dropped.
func (s *Scheduler) relax(c core.Coord) ([]Candidate, error) {
	changed := make(map[core.Coord]struct{})
	try := func(child, parent core.Coord) error {
		moved, err := s.g.Reparent(child, parent)
		switch {
		case errors.Is(err, core.ErrCycle), errors.Is(err, core.ErrNotCheaper), errors.Is(err, core.ErrRoot):
			return nil
		case err != nil:
			return err
		}
		for _, m := range moved {
			changed[m] = struct{}{}
		}
		return nil
	}

	cell, _ := s.g.Cell(c)
	neighbors := sortedNeighbors(cell)

	// Upward: the cheapest neighbor may beat the discovering parent.
	best, bestCost := core.Coord{}, -1
	for _, n := range neighbors {
		nc, _ := s.g.Cell(n)
		if bestCost < 0 || nc.Cost() < bestCost {
			best, bestCost = n, nc.Cost()
		}
	}
	if bestCost >= 0 && bestCost+1 < cell.Cost() {
		if err := try(c, best); err != nil {
			return nil, err
		}
	}

	// Downward: neighbors reachable more cheaply through c.
	for _, n := range neighbors {
		nc, _ := s.g.Cell(n)
		if nc.Cost() > cell.Cost()+1 {
			if err := try(n, c); err != nil {
				return nil, err
			}
		}
	}

	out := make([]Candidate, 0, len(changed))
	for _, k := range s.g.Coords() {
		if _, ok := changed[k]; !ok {
			continue
		}
		if kc, _ := s.g.Cell(k); !kc.Visited() {
			out = append(out, s.candidate(k))
		}
	}
	return out, nil
}

// Next returns the exploration candidate the agent should head for.
//
// The held candidate is returned until Observe visits it. Otherwise entries
// are drawn from the frontier and visited ones are discarded. An empty
// frontier yields ErrFrontierExhausted.
func (s *Scheduler) Next() (Candidate, error) {
	if s.hasCurrent {
		s.current = s.candidate(s.current.Coord)
		return s.current, nil
	}
	for {
		cand, ok := s.frontier.Pop()
		if !ok {
			return Candidate{}, ErrFrontierExhausted
		}
		cell, err := s.g.Cell(cand.Coord)
		if err != nil {
			return Candidate{}, err
		}
		if cell.Visited() {
			continue
		}
		s.current = s.candidate(cand.Coord)
		s.hasCurrent = true
		return s.current, nil
	}
}

func (s *Scheduler) candidate(c core.Coord) Candidate {
	cell, _ := s.g.Cell(c)
	return Candidate{Coord: c, Cost: cell.Cost(), Heuristic: cell.Heuristic()}
}

// sortedNeighbors returns the linked neighbors of cell sorted by (Y, X).
func sortedNeighbors(cell *core.Cell) []core.Coord {
	nb := cell.Neighbors()
	out := make([]core.Coord, 0, len(nb))
	for n := range nb {
		out = append(out, n)
	}
	sortCoords(out)
	return out
}

func sortCoords(cs []core.Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}
