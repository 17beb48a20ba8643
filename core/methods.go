// File: methods.go
// Role: cell lifecycle, neighbor links, parent relaxation and invariant checks.
//
// Determinism:
//   - Coords() and Children() return coordinates sorted by (Y, X).
package core

import (
	"fmt"
	"sort"
)

// Root returns the coordinate of the start cell.
func (g *Graph) Root() Coord { return g.root }

// Len returns the number of discovered cells.
func (g *Graph) Len() int { return len(g.cells) }

// Has reports whether c has been discovered.
func (g *Graph) Has(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Cell returns the record for c or ErrCellNotFound.
func (g *Graph) Cell(c Coord) (*Cell, error) {
	cell, ok := g.cells[c]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	return cell, nil
}

// Add discovers c as a child of parent.
//
// Implementation:
//   - Stage 1: Resolve the parent (ErrCellNotFound if missing).
//   - Stage 2: If c already exists, return (false, nil) without touching it.
//   - Stage 3: Create the cell with cost = parent.cost+1 and the given heuristic,
//     and register it in the parent's children index.
//
// Add does not link the two cells; callers decide which edges exist.
// Complexity: O(1).
func (g *Graph) Add(c, parent Coord, heuristic float64) (bool, error) {
	p, err := g.Cell(parent)
	if err != nil {
		return false, err
	}
	if g.Has(c) {
		return false, nil
	}

	cell := newCell(c, p.cost+1, heuristic)
	cell.parent = parent
	cell.hasParent = true
	g.cells[c] = cell
	g.adopt(parent, c)

	return true, nil
}

// MarkVisited records that the walls of c have been decoded.
func (g *Graph) MarkVisited(c Coord) error {
	cell, err := g.Cell(c)
	if err != nil {
		return err
	}
	cell.visited = true
	return nil
}

// Link records a as a neighbor of b and b as a neighbor of a, with mutually
// opposite headings. Both cells must exist and be one king-move apart.
// Linking an already linked pair is a no-op.
// Complexity: O(1).
func (g *Graph) Link(a, b Coord) error {
	ca, err := g.Cell(a)
	if err != nil {
		return err
	}
	cb, err := g.Cell(b)
	if err != nil {
		return err
	}
	h, err := HeadingBetween(a, b)
	if err != nil {
		return err
	}
	ca.neighbors[b] = h
	cb.neighbors[a] = h.Opposite()

	return nil
}

// Linked reports whether a and b are recorded neighbors.
func (g *Graph) Linked(a, b Coord) bool {
	ca, ok := g.cells[a]
	if !ok {
		return false
	}
	_, ok = ca.neighbors[b]
	return ok
}

// Reparent makes parent the new parent of child and lowers the cost of child
// and its whole subtree accordingly.
//
// Implementation:
//   - Stage 1: Resolve both cells; the root can never be reparented (ErrRoot).
//   - Stage 2: Refuse when parent is child or one of its descendants (ErrCycle).
//     Geometric proximity alone does not rule this out.
//   - Stage 3: Require the cells to be linked (ErrNotLinked) and the new cost to
//     be strictly lower (ErrNotCheaper), so costs never increase.
//   - Stage 4: Swap the parent link and the children index, then walk the
//     subtree breadth-first assigning cost = parent.cost+1.
//
// Returns every coordinate whose cost changed, child first.
// Complexity: O(depth + subtree size).
func (g *Graph) Reparent(child, parent Coord) ([]Coord, error) {
	cc, err := g.Cell(child)
	if err != nil {
		return nil, err
	}
	cp, err := g.Cell(parent)
	if err != nil {
		return nil, err
	}
	if child == g.root {
		return nil, ErrRoot
	}
	if g.IsAncestor(child, parent) {
		return nil, fmt.Errorf("%w: %v is an ancestor of %v", ErrCycle, child, parent)
	}
	if _, ok := cc.neighbors[parent]; !ok {
		return nil, fmt.Errorf("%w: %v and %v", ErrNotLinked, child, parent)
	}
	if cp.cost+1 >= cc.cost {
		return nil, fmt.Errorf("%w: %v via %v costs %d, have %d", ErrNotCheaper, child, parent, cp.cost+1, cc.cost)
	}

	g.disown(cc.parent, child)
	cc.parent = parent
	cc.hasParent = true
	g.adopt(parent, child)

	return g.propagate(child), nil
}

// propagate recomputes costs below start (inclusive) from their parents.
func (g *Graph) propagate(start Coord) []Coord {
	var changed []Coord
	queue := []Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		cell := g.cells[c]
		want := g.cells[cell.parent].cost + 1
		if cell.cost == want && c != start {
			continue
		}
		cell.cost = want
		changed = append(changed, c)
		queue = append(queue, g.Children(c)...)
	}
	return changed
}

func (g *Graph) adopt(parent, child Coord) {
	kids, ok := g.children[parent]
	if !ok {
		kids = make(map[Coord]struct{}, 2)
		g.children[parent] = kids
	}
	kids[child] = struct{}{}
}

func (g *Graph) disown(parent, child Coord) {
	if kids, ok := g.children[parent]; ok {
		delete(kids, child)
	}
}

// Children returns the cells whose parent is c, sorted by (Y, X).
func (g *Graph) Children(c Coord) []Coord {
	kids := g.children[c]
	out := make([]Coord, 0, len(kids))
	for k := range kids {
		out = append(out, k)
	}
	sortCoords(out)
	return out
}

// Ancestors returns the parent chain of c, starting with c itself and ending
// with the root. A chain longer than Len() can only mean a cycle and yields
// ErrCycle.
// Complexity: O(depth).
func (g *Graph) Ancestors(c Coord) ([]Coord, error) {
	cell, err := g.Cell(c)
	if err != nil {
		return nil, err
	}
	chain := []Coord{c}
	for cell.hasParent {
		if len(chain) > len(g.cells) {
			return nil, fmt.Errorf("%w: parent chain of %v exceeds %d cells", ErrCycle, c, len(g.cells))
		}
		next, ok := g.cells[cell.parent]
		if !ok {
			return nil, fmt.Errorf("%w: parent %v of %v", ErrCellNotFound, cell.parent, cell.coord)
		}
		chain = append(chain, next.coord)
		cell = next
	}
	return chain, nil
}

// IsAncestor reports whether anc lies on the parent chain of c (c counts as
// its own ancestor).
func (g *Graph) IsAncestor(anc, c Coord) bool {
	chain, err := g.Ancestors(c)
	if err != nil {
		return false
	}
	for _, a := range chain {
		if a == anc {
			return true
		}
	}
	return false
}

// Coords returns every discovered coordinate sorted by (Y, X).
func (g *Graph) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sortCoords(out)
	return out
}

// Validate checks the graph invariants and returns the first violation found:
// mutual neighbor headings, parent presence, children index consistency,
// cost(child) == cost(parent)+1, and acyclic parent chains.
// Complexity: O(V·depth).
func (g *Graph) Validate() error {
	for _, c := range g.Coords() {
		cell := g.cells[c]
		for n, h := range cell.neighbors {
			back, ok := g.cells[n].neighbors[c]
			if !ok || back != h.Opposite() {
				return fmt.Errorf("core: neighbor heading %v→%v (%v) has no opposite mirror", c, n, h)
			}
		}
		if c == g.root {
			if cell.hasParent || cell.cost != 0 {
				return fmt.Errorf("%w: root %v has parent or non-zero cost", ErrRoot, c)
			}
			continue
		}
		if !cell.hasParent {
			return fmt.Errorf("core: cell %v has no parent", c)
		}
		p, ok := g.cells[cell.parent]
		if !ok {
			return fmt.Errorf("%w: parent %v of %v", ErrCellNotFound, cell.parent, c)
		}
		if _, ok = g.children[cell.parent][c]; !ok {
			return fmt.Errorf("core: %v missing from children of %v", c, cell.parent)
		}
		if cell.cost != p.cost+1 {
			return fmt.Errorf("core: cost of %v is %d, parent %v has %d", c, cell.cost, cell.parent, p.cost)
		}
		chain, err := g.Ancestors(c)
		if err != nil {
			return err
		}
		if chain[len(chain)-1] != g.root {
			return fmt.Errorf("core: parent chain of %v ends at %v, not the root", c, chain[len(chain)-1])
		}
	}
	return nil
}

func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}
