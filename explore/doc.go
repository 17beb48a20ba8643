// Package explore decides which undiscovered cell the agent should head for
// next. It grows the cell graph from wall observations and feeds newly found
// cells to a pluggable Frontier policy.
//
// What:
//
//   - Scheduler.Observe decodes the walls of a cell on its first visit, links
//     every open neighbor, creates the ones not seen before and pushes them to
//     the frontier as one sibling batch.
//   - Scheduler.Next returns the current exploration candidate. It stays the
//     same until the agent visits it; then the next unvisited one is drawn.
//   - Frontier is the ordering policy. Implementations live in bfs (FIFO),
//     dfs (LIFO, optional heuristic order) and astar (α·cost + heuristic).
//
// Relaxation:
//
//	With WithRelaxation (used by the astar policy) Observe also improves the
//	spanning tree: the observed cell moves under its cheapest linked neighbor,
//	and known neighbors that are reachable more cheaply through it move under
//	it. Every unvisited cell whose cost dropped is pushed again, so the frontier
//	may hold duplicates; astar drops the stale ones when they surface.
//
// Errors:
//
//   - ErrFrontierExhausted: nothing left to explore, the target is unreachable.
//   - ErrAlreadyObserved:   Observe was called twice for the same cell.
//   - ErrNilGraph, ErrNilFrontier, ErrOptionViolation: construction failures.
package explore
