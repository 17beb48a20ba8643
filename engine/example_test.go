package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazewalker/engine"
	"github.com/katalvlaran/mazewalker/sim"
)

// ExampleSession drives a session through a straight corridor: three moves
// to discover the target, a reset, then the replayed route.
func ExampleSession() {
	m, _ := sim.ParseString(`
+---+---+---+---+---+
| S               T |
+---+---+---+---+---+`)

	s, _ := engine.New(engine.WithStrategy(engine.StrategyBFS))
	res, err := sim.Run(context.Background(), sim.NewGame(m), s, 100)

	fmt.Println(err, res.Ticks, res.Moves, res.Rotations, res.Resets)
	fmt.Println(s.Route())

	// Output:
	// <nil> 11 7 2 1
	// (0,0)→(1,0)→(2,0)→(3,0)→(4,0)
}
