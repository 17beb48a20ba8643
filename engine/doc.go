// Package engine runs one maze-solving session: it takes one game tick at a
// time and returns exactly one action.
//
// What:
//
//   - Exploring: the first visit of a cell is observed (walls decoded, new
//     neighbors queued). When the target shows up among the revealed
//     neighbors the session answers reset and switches to replay. Otherwise
//     the scheduler's candidate is resolved into a rotate or a move.
//   - Replaying: on the first replay tick the route is built, corner-cut and
//     committed to the graph. The player then walks it from the start.
//   - Solved: every further tick returns ErrSolved.
//
// The session is created empty. The first tick fixes the root (the agent's
// position) and the target; a later tick naming a different target fails
// with ErrTargetChanged.
//
// Concurrency:
//
//	A Session is driven by one caller at a time and holds no locks. Decide
//	never blocks.
package engine
