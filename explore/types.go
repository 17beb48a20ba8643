package explore

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazewalker/core"
)

// Sentinel errors for the scheduler.
var (
	// ErrFrontierExhausted is returned by Next when no unvisited candidate is left.
	ErrFrontierExhausted = errors.New("explore: frontier exhausted")

	// ErrAlreadyObserved is returned when a visited cell is observed again.
	ErrAlreadyObserved = errors.New("explore: cell already observed")

	// ErrNilGraph is returned when the scheduler is built without a graph.
	ErrNilGraph = errors.New("explore: graph is nil")

	// ErrNilFrontier is returned when the scheduler is built without a frontier.
	ErrNilFrontier = errors.New("explore: frontier is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
)

// Candidate is a frontier entry: a discovered cell and the cost and heuristic
// it had when it was pushed.
type Candidate struct {
	Coord     core.Coord
	Cost      int
	Heuristic float64
}

// Frontier orders candidates for exploration. Push receives one sibling batch
// per call, in wall decoding order.
type Frontier interface {
	Push(batch ...Candidate)
	Pop() (Candidate, bool)
	Len() int
}

// HeuristicFunc estimates the remaining distance from c to target.
type HeuristicFunc func(c, target core.Coord) float64

// Euclidean returns scale times the straight-line distance.
func Euclidean(scale float64) HeuristicFunc {
	return func(c, target core.Coord) float64 {
		return scale * math.Hypot(float64(target.X-c.X), float64(target.Y-c.Y))
	}
}

// Manhattan returns scale times the orthogonal-move distance.
func Manhattan(scale float64) HeuristicFunc {
	return func(c, target core.Coord) float64 {
		return scale * float64(core.Manhattan(c, target))
	}
}

// Option configures a Scheduler. Invalid values are recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds the scheduler settings.
type Options struct {
	// Heuristic scores newly discovered cells. Defaults to Euclidean(1000).
	Heuristic HeuristicFunc

	// Relax enables cost relaxation on observation.
	Relax bool

	// OnObserve runs after each observation with the observed cell and the
	// neighbors it revealed.
	OnObserve func(c core.Coord, revealed []core.Coord)

	err error
}

// DefaultHeuristicScale matches the weighting the game agent has always used.
const DefaultHeuristicScale = 1000

// DefaultOptions returns Euclidean(DefaultHeuristicScale), no relaxation and a
// no-op hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean(DefaultHeuristicScale),
		OnObserve: func(core.Coord, []core.Coord) {},
	}
}

// WithHeuristic sets the heuristic; nil is an option violation.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithRelaxation turns on cost relaxation.
func WithRelaxation() Option {
	return func(o *Options) { o.Relax = true }
}

// WithOnObserve registers an observation hook.
func WithOnObserve(fn func(c core.Coord, revealed []core.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnObserve = fn
		}
	}
}

// CostLookup returns the current cost of a discovered cell in g. It is the
// cost source for frontiers that need to spot stale entries.
func CostLookup(g *core.Graph) func(core.Coord) (int, bool) {
	return func(c core.Coord) (int, bool) {
		cell, err := g.Cell(c)
		if err != nil {
			return 0, false
		}
		return cell.Cost(), true
	}
}
