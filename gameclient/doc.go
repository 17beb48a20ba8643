// Package gameclient plays a maze level on the game backend.
//
// A run has two stages. CreateGame posts to the level endpoint and returns
// the new game id. Play then subscribes to that game over a websocket and
// feeds every "game-instance" frame to an engine.Decider, answering each tick
// with one "run-command" frame after the configured tick delay:
//
//	-> ["sub-game", {"id": "<game>"}]
//	<- ["game-instance", {"gameState": "{\"player\":{...},\"target\":{...},\"square\":9}"}]
//	-> ["run-command", {"gameId": "<game>", "payload": {"action": "move"}}]
//
// The reader, the decision loop and the pinger run under one errgroup; the
// first failure tears the others down. Play returns nil once the decider
// reports engine.ErrSolved.
package gameclient
