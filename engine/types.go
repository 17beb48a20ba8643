package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/explore"
	"github.com/katalvlaran/mazewalker/replay"
	"github.com/katalvlaran/mazewalker/walls"
)

// Sentinel errors for sessions.
var (
	// ErrSolved is the terminal success signal, shared with replay.
	ErrSolved = replay.ErrSolved

	// ErrTargetChanged indicates a tick naming a different target mid-run.
	ErrTargetChanged = errors.New("engine: target changed during run")

	// ErrUnknownPosition indicates a tick placing the agent on an undiscovered cell.
	ErrUnknownPosition = errors.New("engine: agent on undiscovered cell")

	// ErrUnknownStrategy indicates an unsupported strategy name.
	ErrUnknownStrategy = errors.New("engine: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("engine: invalid option supplied")
)

// Strategy selects the frontier policy.
type Strategy string

// Supported strategies.
const (
	StrategyBFS   Strategy = "bfs"
	StrategyDFS   Strategy = "dfs"
	StrategyAStar Strategy = "astar"
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{StrategyBFS, StrategyDFS, StrategyAStar}

// ParseStrategy accepts a strategy name in any case.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case StrategyBFS, StrategyDFS, StrategyAStar:
		return st, nil
	case "a*":
		return StrategyAStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Tick is one game state delivered to the engine.
type Tick struct {
	Position core.Coord
	Heading  core.Heading
	Target   core.Coord
	Walls    walls.Mask
}

// Decider produces exactly one action per tick.
type Decider interface {
	Decide(ctx context.Context, t Tick) (core.Action, error)
}

// Mode is the phase a session is in.
type Mode int

// Session phases.
const (
	Exploring Mode = iota
	Replaying
	Solved
)

func (m Mode) String() string {
	switch m {
	case Exploring:
		return "exploring"
	case Replaying:
		return "replaying"
	case Solved:
		return "solved"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Stats summarises a session.
type Stats struct {
	ID       string
	Mode     Mode
	Ticks    int
	Cells    int
	Frontier int
	// RawRoute and Route are the route lengths before and after corner cutting.
	RawRoute int
	Route    int
}

// Option configures a Session.
type Option func(*Options)

// Options holds session settings.
type Options struct {
	Strategy       Strategy
	Alpha          float64
	Heuristic      explore.HeuristicFunc
	HeuristicOrder bool
	CornerCheck    bool
	Validate       bool
	Logger         *zap.Logger

	err error
}

// DefaultOptions returns BFS, α=1, Euclidean(1000), corner check on and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyBFS,
		Alpha:       1,
		Heuristic:   explore.Euclidean(explore.DefaultHeuristicScale),
		CornerCheck: true,
		Logger:      zap.NewNop(),
	}
}

// WithStrategy selects the frontier policy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		st, err := ParseStrategy(string(s))
		if err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Strategy = st
	}
}

// WithAlpha sets the cost weight of the astar policy.
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			o.err = fmt.Errorf("%w: alpha must be a finite non-negative number (%v)", ErrOptionViolation, a)
			return
		}
		o.Alpha = a
	}
}

// WithHeuristic sets the heuristic used to score discovered cells.
func WithHeuristic(h explore.HeuristicFunc) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithHeuristicOrder makes the dfs policy pop the sibling closest to the
// target first.
func WithHeuristicOrder(on bool) Option {
	return func(o *Options) { o.HeuristicOrder = on }
}

// WithCornerCheck toggles the wall check on corner cutting.
func WithCornerCheck(on bool) Option {
	return func(o *Options) { o.CornerCheck = on }
}

// WithValidation checks the graph invariants after every tick and fails the
// tick on a violation. Meant for tests and debugging.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
