// Package replay walks the agent along a finished route, one action per tick.
package replay

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/navigate"
	"github.com/katalvlaran/mazewalker/route"
)

var (
	// ErrSolved is returned once the agent stands on the last cell of the
	// route. Like io.EOF it marks normal termination, not a failure.
	ErrSolved = errors.New("replay: maze solved")

	// ErrPositionMismatch indicates the agent is not where the route expects.
	ErrPositionMismatch = errors.New("replay: position does not match route")
)

// Player replays a route. It owns the route and consumes it as the agent moves.
type Player struct {
	g     *core.Graph
	route route.Route
	moves int
}

// NewPlayer returns a player for r. Headings come from the neighbor data in
// g when the hop is linked there, else from geometry.
func NewPlayer(g *core.Graph, r route.Route) *Player {
	return &Player{g: g, route: append(route.Route(nil), r...)}
}

// Step returns the next action for an agent at position facing heading.
//
// The head of the route must equal position. When the agent faces the second
// cell it moves and the head is dropped; otherwise it rotates. With fewer than
// two cells left Step returns ErrSolved.
func (p *Player) Step(position core.Coord, heading core.Heading) (core.Action, error) {
	if len(p.route) < 2 {
		return core.Action{}, ErrSolved
	}
	if head := p.route[0]; head != position {
		return core.Action{}, fmt.Errorf("%w: at %v, route expects %v", ErrPositionMismatch, position, head)
	}

	want := p.heading(p.route[0], p.route[1])
	a := navigate.Face(heading, want)
	if a.Kind == core.ActionMove {
		p.route = p.route[1:]
		p.moves++
	}
	return a, nil
}

func (p *Player) heading(from, to core.Coord) core.Heading {
	if p.g != nil {
		if cell, err := p.g.Cell(from); err == nil {
			if h, ok := cell.HeadingTo(to); ok {
				return h
			}
		}
	}
	if from.X != to.X && from.Y != to.Y {
		return core.DiagonalHeading(from, to)
	}
	h, err := core.HeadingBetween(from, to)
	if err != nil {
		panic(err)
	}
	return h
}

// Remaining returns a copy of the route still to walk, current cell first.
func (p *Player) Remaining() route.Route {
	return append(route.Route(nil), p.route...)
}

// Moves returns the number of moves emitted so far.
func (p *Player) Moves() int { return p.moves }

// Done reports whether the route is exhausted.
func (p *Player) Done() bool { return len(p.route) < 2 }
