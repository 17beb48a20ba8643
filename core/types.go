package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for cell graph operations.
var (
	// ErrCellNotFound indicates an operation referenced an undiscovered cell.
	ErrCellNotFound = errors.New("core: cell not found")

	// ErrNotAdjacent indicates two coordinates are farther apart than one step.
	ErrNotAdjacent = errors.New("core: cells are not adjacent")

	// ErrNotDiagonal indicates a diagonal heading was requested for cells that
	// are not diagonally adjacent.
	ErrNotDiagonal = errors.New("core: cells are not diagonally adjacent")

	// ErrNotLinked indicates a parent link between cells that are not neighbors.
	ErrNotLinked = errors.New("core: cells are not linked")

	// ErrNotCheaper indicates a relaxation that would not lower the cost.
	ErrNotCheaper = errors.New("core: new parent is not cheaper")

	// ErrCycle indicates a parent link that would make a cell its own ancestor.
	ErrCycle = errors.New("core: parent link would form a cycle")

	// ErrRoot indicates an attempt to give the root cell a parent.
	ErrRoot = errors.New("core: root cell has no parent")
)

// Coord identifies one grid square. Y grows southwards.
type Coord struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Chebyshev returns the king-move distance between a and b.
func Chebyshev(a, b Coord) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// Manhattan returns the orthogonal-move distance between a and b.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is the discovery record of one grid square.
//
// Cells are owned by their Graph; callers read them through accessors and
// mutate them only through Graph methods so the tree and cost invariants hold.
type Cell struct {
	coord     Coord
	neighbors map[Coord]Heading // linked neighbor → heading to face it
	parent    Coord
	hasParent bool
	visited   bool
	cost      int
	heuristic float64
}

// Coord returns the cell's coordinate.
func (c *Cell) Coord() Coord { return c.coord }

// Parent returns the cell this one was discovered from; ok is false for the root.
func (c *Cell) Parent() (parent Coord, ok bool) { return c.parent, c.hasParent }

// Visited reports whether the cell's own walls have been decoded.
func (c *Cell) Visited() bool { return c.visited }

// Cost is the number of steps from the root along the cheapest known path.
func (c *Cell) Cost() int { return c.cost }

// Heuristic is the remaining-distance estimate fixed when the cell was discovered.
func (c *Cell) Heuristic() float64 { return c.heuristic }

// HeadingTo returns the heading to face neighbor n, if n is linked.
func (c *Cell) HeadingTo(n Coord) (Heading, bool) {
	h, ok := c.neighbors[n]
	return h, ok
}

// Degree returns the number of linked neighbors.
func (c *Cell) Degree() int { return len(c.neighbors) }

// Neighbors returns a copy of the neighbor → heading map.
func (c *Cell) Neighbors() map[Coord]Heading {
	out := make(map[Coord]Heading, len(c.neighbors))
	for n, h := range c.neighbors {
		out[n] = h
	}
	return out
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithRootHeuristic sets the heuristic recorded on the root cell.
func WithRootHeuristic(h float64) GraphOption {
	return func(g *Graph) { g.cells[g.root].heuristic = h }
}

// WithCapacity pre-sizes the cell arena.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		cells := make(map[Coord]*Cell, n)
		for k, v := range g.cells {
			cells[k] = v
		}
		g.cells = cells
	}
}

// Graph is the arena of discovered cells for one maze run.
//
// children mirrors the parent links so a relaxation can push cost decreases
// down a subtree without scanning the whole arena.
type Graph struct {
	root     Coord
	cells    map[Coord]*Cell
	children map[Coord]map[Coord]struct{}
}

// NewGraph creates a graph holding only the root cell (cost 0, no parent).
// Complexity: O(1).
func NewGraph(root Coord, opts ...GraphOption) *Graph {
	g := &Graph{
		root:     root,
		cells:    make(map[Coord]*Cell),
		children: make(map[Coord]map[Coord]struct{}),
	}
	g.cells[root] = newCell(root, 0, 0)
	for _, opt := range opts {
		opt(g)
	}

	return g
}

func newCell(c Coord, cost int, h float64) *Cell {
	return &Cell{
		coord:     c,
		neighbors: make(map[Coord]Heading, 4),
		cost:      cost,
		heuristic: h,
	}
}
