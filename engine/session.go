package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalker/astar"
	"github.com/katalvlaran/mazewalker/bfs"
	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/dfs"
	"github.com/katalvlaran/mazewalker/explore"
	"github.com/katalvlaran/mazewalker/navigate"
	"github.com/katalvlaran/mazewalker/replay"
	"github.com/katalvlaran/mazewalker/route"
)

// Session is the state of one maze-solving run.
type Session struct {
	id   uuid.UUID
	opts Options
	log  *zap.Logger

	started bool
	start   core.Coord
	target  core.Coord
	mode    Mode
	ticks   int

	g        *core.Graph
	sched    *explore.Scheduler
	resolver *navigate.Resolver
	player   *replay.Player
	rawRoute int
	route    route.Route
}

var _ Decider = (*Session)(nil)

// New returns an empty session; the first tick starts the run.
func New(opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	id := uuid.New()
	return &Session{
		id:   id,
		opts: o,
		log:  o.Logger.Named("engine").With(zap.String("session", id.String())),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id.String() }

// Mode returns the current phase.
func (s *Session) Mode() Mode { return s.mode }

// Graph returns the cell graph, or nil before the first tick.
func (s *Session) Graph() *core.Graph { return s.g }

// Route returns the optimized route once replay has started.
func (s *Session) Route() route.Route { return append(route.Route(nil), s.route...) }

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats {
	st := Stats{ID: s.ID(), Mode: s.mode, Ticks: s.ticks, RawRoute: s.rawRoute, Route: len(s.route)}
	if s.g != nil {
		st.Cells = s.g.Len()
	}
	if s.sched != nil {
		st.Frontier = s.sched.Pending()
	}
	return st
}

// Decide returns the single action for tick t.
func (s *Session) Decide(ctx context.Context, t Tick) (core.Action, error) {
	if err := ctx.Err(); err != nil {
		return core.Action{}, err
	}
	s.ticks++

	if !s.started {
		if err := s.begin(t); err != nil {
			return core.Action{}, err
		}
	} else if t.Target != s.target {
		return core.Action{}, fmt.Errorf("%w: %v, run started with %v", ErrTargetChanged, t.Target, s.target)
	}

	var (
		a   core.Action
		err error
	)
	switch s.mode {
	case Exploring:
		a, err = s.exploreStep(t)
	case Replaying:
		a, err = s.replayStep(t)
	default:
		err = ErrSolved
	}
	if err != nil {
		if !errors.Is(err, ErrSolved) {
			s.log.Error("tick failed", zap.Int("tick", s.ticks), zap.Stringer("position", t.Position), zap.Error(err))
		}
		return core.Action{}, err
	}

	if s.opts.Validate {
		if err = s.g.Validate(); err != nil {
			return core.Action{}, fmt.Errorf("engine: tick %d: %w", s.ticks, err)
		}
	}
	s.log.Debug("decided",
		zap.Int("tick", s.ticks),
		zap.Stringer("mode", s.mode),
		zap.Stringer("position", t.Position),
		zap.Stringer("heading", t.Heading),
		zap.Stringer("action", a),
	)
	return a, nil
}

// begin roots the graph at the first position and builds the frontier.
func (s *Session) begin(t Tick) error {
	s.start, s.target = t.Position, t.Target
	s.g = core.NewGraph(t.Position, core.WithRootHeuristic(s.opts.Heuristic(t.Position, t.Target)))

	var f explore.Frontier
	schedOpts := []explore.Option{explore.WithHeuristic(s.opts.Heuristic)}
	switch s.opts.Strategy {
	case StrategyDFS:
		var dopts []dfs.Option
		if s.opts.HeuristicOrder {
			dopts = append(dopts, dfs.WithHeuristicOrder())
		}
		f = dfs.NewStack(dopts...)
	case StrategyAStar:
		p, err := astar.New(explore.CostLookup(s.g),
			astar.WithAlpha(s.opts.Alpha),
			astar.WithOnStale(func(c explore.Candidate) {
				s.log.Debug("stale candidate", zap.Stringer("cell", c.Coord), zap.Int("cost", c.Cost))
			}),
		)
		if err != nil {
			return err
		}
		f = p
		schedOpts = append(schedOpts, explore.WithRelaxation())
	default:
		f = bfs.NewQueue()
	}

	sched, err := explore.New(s.g, f, t.Target, schedOpts...)
	if err != nil {
		return err
	}
	s.sched = sched
	s.resolver = navigate.NewResolver(s.g)
	s.started = true

	s.log.Info("run started",
		zap.Stringer("start", s.start),
		zap.Stringer("target", s.target),
		zap.String("strategy", string(s.opts.Strategy)),
	)
	return nil
}

func (s *Session) exploreStep(t Tick) (core.Action, error) {
	if t.Position == s.target {
		s.mode = Solved
		s.log.Info("started on target")
		return core.Action{}, ErrSolved
	}

	cell, err := s.g.Cell(t.Position)
	if err != nil {
		return core.Action{}, fmt.Errorf("%w: %v", ErrUnknownPosition, t.Position)
	}
	if !cell.Visited() {
		revealed, err := s.sched.Observe(t.Position, t.Walls)
		if err != nil {
			return core.Action{}, err
		}
		for _, n := range revealed {
			if n == s.target {
				s.mode = Replaying
				s.log.Info("target found",
					zap.Int("tick", s.ticks),
					zap.Int("cells", s.g.Len()),
					zap.Stringer("from", t.Position),
				)
				return core.Reset(), nil
			}
		}
	}

	next, err := s.sched.Next()
	if err != nil {
		return core.Action{}, fmt.Errorf("engine: exploring from %v: %w", t.Position, err)
	}
	return s.resolver.Step(t.Position, t.Heading, next.Coord)
}

func (s *Session) replayStep(t Tick) (core.Action, error) {
	if s.player == nil {
		if err := s.plan(); err != nil {
			return core.Action{}, err
		}
	}

	a, err := s.player.Step(t.Position, t.Heading)
	if errors.Is(err, ErrSolved) {
		s.mode = Solved
		s.log.Info("solved", zap.Int("ticks", s.ticks), zap.Int("moves", s.player.Moves()))
	}
	return a, err
}

// plan builds, optimizes and commits the route to the target.
func (s *Session) plan() error {
	raw, err := route.Build(s.g, s.target)
	if err != nil {
		return err
	}
	var opts []route.Option
	if s.opts.CornerCheck {
		opts = append(opts, route.WithWallCheck(s.g))
	}
	r := route.Optimize(raw, opts...)
	if err = route.Commit(s.g, r); err != nil {
		return fmt.Errorf("engine: committing route: %w", err)
	}

	s.rawRoute, s.route = len(raw), r
	s.player = replay.NewPlayer(s.g, r)
	s.log.Info("route planned",
		zap.Int("raw", len(raw)),
		zap.Int("optimized", len(r)),
		zap.Int("diagonals", r.Diagonals()),
	)
	return nil
}
