package sim

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/engine"
	"github.com/katalvlaran/mazewalker/walls"
)

// Sentinel errors for applying actions.
var (
	// ErrBlocked indicates a move into a wall.
	ErrBlocked = errors.New("sim: move blocked by wall")

	// ErrInvalidAction indicates an action the game does not understand.
	ErrInvalidAction = errors.New("sim: invalid action")
)

// Option configures a Game.
type Option func(*Game)

// WithStrictCorners only accepts diagonal moves with both L-routes open.
func WithStrictCorners() Option {
	return func(g *Game) { g.strict = true }
}

// WithHeading sets the heading the agent starts and resets with.
func WithHeading(h core.Heading) Option {
	return func(g *Game) {
		if h.Valid() {
			g.initial = h
		}
	}
}

// Counters tallies the actions a game has applied.
type Counters struct {
	Moves, Rotations, Resets int
}

// Game is the state of one agent in a maze.
type Game struct {
	maze    *Maze
	pos     core.Coord
	heading core.Heading
	initial core.Heading
	strict  bool
	count   Counters
	trail   []core.Coord
}

// NewGame places an agent on the start of m.
func NewGame(m *Maze, opts ...Option) *Game {
	g := &Game{maze: m}
	for _, opt := range opts {
		opt(g)
	}
	g.pos, g.heading = m.Start, g.initial
	g.trail = []core.Coord{m.Start}
	return g
}

// Maze returns the maze being played.
func (g *Game) Maze() *Maze { return g.maze }

// Position returns the agent position.
func (g *Game) Position() core.Coord { return g.pos }

// Heading returns the agent heading.
func (g *Game) Heading() core.Heading { return g.heading }

// AtTarget reports whether the agent stands on the target.
func (g *Game) AtTarget() bool { return g.pos == g.maze.Target }

// Counters returns the action tallies.
func (g *Game) Counters() Counters { return g.count }

// Trail returns every position the agent occupied since the last reset,
// starting with the start cell.
func (g *Game) Trail() []core.Coord { return append([]core.Coord(nil), g.trail...) }

// Tick returns the game state the agent sees now.
func (g *Game) Tick() engine.Tick {
	return engine.Tick{
		Position: g.pos,
		Heading:  g.heading,
		Target:   g.maze.Target,
		Walls:    g.maze.Walls(g.pos),
	}
}

// Apply executes one action.
func (g *Game) Apply(a core.Action) error {
	switch a.Kind {
	case core.ActionRotate:
		if !a.Heading.Valid() {
			return fmt.Errorf("%w: rotate to %d", ErrInvalidAction, int(a.Heading))
		}
		g.heading = a.Heading
		g.count.Rotations++
	case core.ActionMove:
		dx, dy := g.heading.Offset()
		next := g.pos.Add(dx, dy)
		if !g.passable(g.pos, dx, dy) {
			return fmt.Errorf("%w: %v heading %v", ErrBlocked, g.pos, g.heading)
		}
		g.pos = next
		g.trail = append(g.trail, next)
		g.count.Moves++
	case core.ActionReset:
		g.pos, g.heading = g.maze.Start, g.initial
		g.trail = []core.Coord{g.maze.Start}
		g.count.Resets++
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, a.Kind)
	}
	return nil
}

// passable checks a unit move from c by (dx, dy), orthogonal or diagonal.
func (g *Game) passable(c core.Coord, dx, dy int) bool {
	horizontal, vertical := walls.East, walls.South
	if dx < 0 {
		horizontal = walls.West
	}
	if dy < 0 {
		vertical = walls.North
	}
	switch {
	case dy == 0:
		return g.maze.Open(c, horizontal)
	case dx == 0:
		return g.maze.Open(c, vertical)
	}

	// Across the corner via the horizontal neighbor, or via the vertical one.
	viaX := g.maze.Open(c, horizontal) && g.maze.Open(c.Add(dx, 0), vertical)
	viaY := g.maze.Open(c, vertical) && g.maze.Open(c.Add(0, dy), horizontal)
	if g.strict {
		return viaX && viaY
	}
	return viaX || viaY
}
