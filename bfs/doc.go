// Package bfs provides the breadth-first exploration frontier: candidates
// leave in exactly the order they were discovered.
//
// What
//
//   - Queue implements explore.Frontier as a FIFO.
//   - Sibling batches keep their wall decoding order (N, E, S, W).
//   - Optional hooks observe every enqueue and dequeue.
//
// Why
//
//	Breadth order never lets the agent commit to a deep corridor before the
//	shallower ones are known, at the price of long backtracking walks between
//	distant frontier cells.
//
// Complexity
//
//   - Push: amortized O(1) per candidate.
//   - Pop:  amortized O(1); the backing slice is compacted once the consumed
//     prefix dominates it.
package bfs
