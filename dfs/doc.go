// Package dfs provides the depth-first exploration frontier: the most
// recently discovered candidate leaves first, so the agent keeps following
// the corridor it is in.
//
// What
//
//   - Stack implements explore.Frontier as a LIFO.
//   - Without options a sibling batch is pushed in wall decoding order
//     (N, E, S, W), so the west neighbor is explored first.
//   - WithHeuristicOrder sorts each batch by descending heuristic before
//     pushing, so the sibling closest to the target is popped first. Ties keep
//     decoding order.
//
// Complexity
//
//   - Push: O(k log k) for a batch of k with heuristic order, O(k) without.
//   - Pop:  O(1).
package dfs
