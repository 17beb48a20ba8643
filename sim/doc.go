// Package sim plays the game server offline. It loads an ASCII maze, hands
// out ticks in the same shape the live game does and applies the actions a
// Decider returns.
//
// Maze format, one cell per 4x2 block, S marks the start and T the target:
//
//	+---+---+---+
//	| S |       |
//	+   +   +---+
//	|         T |
//	+---+---+---+
//
// Cells outside the drawing are never reachable; the outer border counts as
// walled even where the drawing leaves it open.
//
// Diagonal moves are accepted when at least one of the two L-shaped routes
// around the corner is open. WithStrictCorners requires both.
package sim
