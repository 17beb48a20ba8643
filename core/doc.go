// Package core defines the cell graph the maze agent builds while it explores:
// grid coordinates, compass headings, per-cell discovery records, and the
// single-step actions the agent reports back to the game.
//
// What:
//
//   - Coord identifies one grid square; North is Y-1, East is X+1.
//   - Heading is one of the eight compass values 0,45,...,315 degrees.
//   - Cell records a discovered square: its linked neighbors (with the heading
//     needed to face each), the parent it was discovered from, whether its
//     walls were decoded, its cost from the root and its static heuristic.
//   - Graph is an arena of cells keyed by Coord. Parent links form a spanning
//     tree rooted at the start cell.
//   - Action is the per-tick command: rotate, move or reset.
//
// Invariants:
//
//   - Neighbor headings are mutual: if A→B is h then B→A is h.Opposite().
//   - Every cell except the root has a parent, and parent chains reach the
//     root within Len() steps.
//   - cost(child) == cost(parent)+1 whenever a cost is read; Reparent only ever
//     lowers costs and pushes the decrease through the whole subtree.
//   - Reparent refuses to attach a cell below one of its own descendants.
//
// Concurrency:
//
//	A Graph belongs to exactly one run and is driven by one decision call at a
//	time, so it carries no locks.
//
// Errors:
//
//   - ErrCellNotFound: an operation referenced an undiscovered coordinate.
//   - ErrNotAdjacent:  two coordinates are not within Chebyshev distance 1.
//   - ErrNotLinked:    a parent link was requested between unlinked cells.
//   - ErrNotCheaper:   a relaxation would not lower the cost.
//   - ErrCycle:        a parent link would close a cycle.
//   - ErrNotDiagonal:  DiagonalHeading contract violation (panics).
package core
