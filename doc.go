// Package mazewalker is an online maze-exploration engine.
//
// An agent sees one cell per tick: its position, heading, the target and the
// four walls of the cell it stands on. The engine answers every tick with a
// single action (rotate, move or reset) until it stands on the target.
//
// A run has two phases:
//
//	exploring    cells are discovered into a spanning tree rooted at the
//	             start; a frontier policy picks the next cell to visit and
//	             the agent walks the tree to reach it.
//	replaying    once the target is seen the agent resets to the start and
//	             walks the tree route, with corners cut into diagonals.
//
// Packages, leaf to root:
//
//	core/         coordinates, headings, actions and the cell graph
//	walls/        wall bitmask decoding
//	bfs/ dfs/     FIFO and LIFO frontiers
//	astar/        priority frontier with lazy decrease-key
//	explore/      frontier scheduler and tree relaxation
//	navigate/     per-tick step toward the next frontier cell
//	route/        route building, corner cutting and commit
//	replay/       route playback
//	engine/       the session tying it all together
//	sim/          offline ASCII maze simulator
//	config/       environment and tuning file
//	gameclient/   game backend over HTTP and websocket
//
// Quick ASCII example:
//
//	+---+---+---+
//	| S       T |
//	+---+---+---+
//
// is solved by stepping east until the target is seen, resetting, and
// replaying the straight route.
//
//	go run ./cmd/mazewalker -maze sim/testdata/rooms.txt
package mazewalker
