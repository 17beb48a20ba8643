// Package astar provides the best-first exploration frontier: candidates
// leave in ascending order of α·cost + heuristic.
//
// What
//
//   - Priority implements explore.Frontier on a binary min-heap.
//   - The priority of an entry is fixed when it is pushed. When a cell's cost
//     drops, the scheduler pushes it again and the old entry stays behind.
//   - On Pop an entry whose pushed cost differs from the cell's current cost
//     (read through the CostFunc) is stale; it is discarded and the next entry
//     drawn. Stale entries are never returned.
//   - Equal priorities leave in push order.
//
// Options
//
//   - WithAlpha(α): weight of the path cost, α ≥ 0 (default 1). With the
//     default heuristic scale of 1000 the heuristic dominates and the search
//     is close to greedy best-first; larger α moves it towards uniform cost.
//   - WithOnStale(fn): observe discarded entries.
//
// Complexity
//
//   - Push: O(log n) per candidate.
//   - Pop:  O(s·log n) where s is the number of stale entries skipped.
package astar
