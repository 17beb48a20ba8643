package navigate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazewalker/core"
)

// Sentinel errors for navigation.
var (
	// ErrUnknownCell indicates a coordinate that is not in the graph.
	ErrUnknownCell = errors.New("navigate: unknown cell")

	// ErrNoCommonAncestor indicates two cells in different trees.
	ErrNoCommonAncestor = errors.New("navigate: no common ancestor")

	// ErrAlreadyThere indicates a step towards the cell the agent stands on.
	ErrAlreadyThere = errors.New("navigate: already at destination")

	// ErrBrokenLink indicates a tree edge without a matching neighbor heading.
	ErrBrokenLink = errors.New("navigate: tree edge is not a neighbor link")
)

// Resolver computes single-step actions over a cell graph.
type Resolver struct {
	g *core.Graph
}

// NewResolver returns a resolver over g.
func NewResolver(g *core.Graph) *Resolver {
	return &Resolver{g: g}
}

// Step returns the one action that brings an agent at current, facing
// heading, closer to next.
func (r *Resolver) Step(current core.Coord, heading core.Heading, next core.Coord) (core.Action, error) {
	cur, err := r.cell(current)
	if err != nil {
		return core.Action{}, err
	}
	if _, err = r.cell(next); err != nil {
		return core.Action{}, err
	}
	if current == next {
		return core.Action{}, fmt.Errorf("%w: %v", ErrAlreadyThere, current)
	}

	hop, err := r.hop(cur, next)
	if err != nil {
		return core.Action{}, err
	}
	h, ok := cur.HeadingTo(hop)
	if !ok {
		return core.Action{}, fmt.Errorf("%w: %v → %v", ErrBrokenLink, current, hop)
	}
	return Face(heading, h), nil
}

// hop picks the adjacent cell the agent should enter next.
func (r *Resolver) hop(cur *core.Cell, next core.Coord) (core.Coord, error) {
	if _, ok := cur.HeadingTo(next); ok {
		return next, nil
	}

	lca, err := r.CommonAncestor(cur.Coord(), next)
	if err != nil {
		return core.Coord{}, err
	}
	if lca != cur.Coord() {
		parent, _ := cur.Parent()
		return parent, nil
	}

	// Descend: the hop is the cell on next's chain whose parent is current.
	chain, err := r.g.Ancestors(next)
	if err != nil {
		return core.Coord{}, err
	}
	for i := 1; i < len(chain); i++ {
		if chain[i] == lca {
			return chain[i-1], nil
		}
	}
	return core.Coord{}, fmt.Errorf("%w: %v not on the chain of %v", ErrNoCommonAncestor, lca, next)
}

// CommonAncestor returns the lowest cell that is an ancestor of both a and b
// (each cell counts as its own ancestor).
func (r *Resolver) CommonAncestor(a, b core.Coord) (core.Coord, error) {
	ca, err := r.ancestors(a)
	if err != nil {
		return core.Coord{}, err
	}
	seen := make(map[core.Coord]struct{}, len(ca))
	for _, c := range ca {
		seen[c] = struct{}{}
	}
	cb, err := r.ancestors(b)
	if err != nil {
		return core.Coord{}, err
	}
	for _, c := range cb {
		if _, ok := seen[c]; ok {
			return c, nil
		}
	}
	return core.Coord{}, fmt.Errorf("%w: %v and %v", ErrNoCommonAncestor, a, b)
}

// TreePath returns the cells visited when walking the spanning tree from a to
// b through their common ancestor, both ends included.
func (r *Resolver) TreePath(a, b core.Coord) ([]core.Coord, error) {
	lca, err := r.CommonAncestor(a, b)
	if err != nil {
		return nil, err
	}
	up, _ := r.ancestors(a)
	down, _ := r.ancestors(b)

	path := make([]core.Coord, 0, len(up)+len(down))
	for _, c := range up {
		path = append(path, c)
		if c == lca {
			break
		}
	}
	var tail []core.Coord
	for _, c := range down {
		if c == lca {
			break
		}
		tail = append(tail, c)
	}
	for i := len(tail) - 1; i >= 0; i-- {
		path = append(path, tail[i])
	}
	return path, nil
}

// Face returns a move when heading already equals want, otherwise a rotation
// to want.
func Face(heading, want core.Heading) core.Action {
	if heading == want {
		return core.Move()
	}
	return core.Rotate(want)
}

func (r *Resolver) cell(c core.Coord) (*core.Cell, error) {
	cell, err := r.g.Cell(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCell, c)
	}
	return cell, nil
}

func (r *Resolver) ancestors(c core.Coord) ([]core.Coord, error) {
	chain, err := r.g.Ancestors(c)
	if errors.Is(err, core.ErrCellNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCell, c)
	}
	return chain, err
}
