package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/explore"
)

// Sentinel errors for Priority construction.
var (
	// ErrNilCostFunc is returned when New is called without a cost source.
	ErrNilCostFunc = errors.New("astar: cost function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// CostFunc returns the current cost of a discovered cell; ok is false for
// cells the graph does not know.
type CostFunc func(c core.Coord) (cost int, ok bool)

// Option configures a Priority. Invalid values are recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds Priority settings.
type Options struct {
	// Alpha weights the path cost against the heuristic.
	Alpha float64

	// OnStale is invoked for each entry discarded as stale.
	OnStale func(c explore.Candidate)

	err error
}

// DefaultOptions returns Alpha=1 and a no-op stale hook.
func DefaultOptions() Options {
	return Options{
		Alpha:   1,
		OnStale: func(explore.Candidate) {},
	}
}

// WithAlpha sets the cost weight.
//
//	a >= 0: used as is
//	a < 0, NaN or Inf: invalid option → ErrOptionViolation
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			o.err = fmt.Errorf("%w: alpha must be a finite non-negative number (%v)", ErrOptionViolation, a)
			return
		}
		o.Alpha = a
	}
}

// WithOnStale registers a hook for discarded entries.
func WithOnStale(fn func(c explore.Candidate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStale = fn
		}
	}
}
