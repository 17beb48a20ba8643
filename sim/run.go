package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazewalker/engine"
)

// ErrTickBudget indicates the decider did not finish within the tick budget.
var ErrTickBudget = errors.New("sim: tick budget exhausted")

// ErrNotAtTarget indicates the decider reported success away from the target.
var ErrNotAtTarget = errors.New("sim: solved reported away from target")

// Result summarises a finished run.
type Result struct {
	Ticks int
	Counters
}

// Run feeds ticks from g to d until d reports engine.ErrSolved, fails, or
// maxTicks ticks have been played (maxTicks <= 0 means no limit).
func Run(ctx context.Context, g *Game, d engine.Decider, maxTicks int) (Result, error) {
	var res Result
	for maxTicks <= 0 || res.Ticks < maxTicks {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		tick := g.Tick()
		res.Ticks++

		a, err := d.Decide(ctx, tick)
		if errors.Is(err, engine.ErrSolved) {
			res.Counters = g.Counters()
			if !g.AtTarget() {
				return res, fmt.Errorf("%w: at %v, target %v", ErrNotAtTarget, g.Position(), g.Maze().Target)
			}
			return res, nil
		}
		if err != nil {
			return res, err
		}
		if err = g.Apply(a); err != nil {
			return res, fmt.Errorf("tick %d: %w", res.Ticks, err)
		}
	}
	res.Counters = g.Counters()
	return res, fmt.Errorf("%w: %d ticks", ErrTickBudget, maxTicks)
}
