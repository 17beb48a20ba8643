package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazewalker/core"
)

// Sentinel errors for route building.
var (
	// ErrNoPath indicates the target is not in the graph.
	ErrNoPath = errors.New("route: no path to target")

	// ErrNotAdjacent indicates consecutive route cells more than one step apart.
	ErrNotAdjacent = errors.New("route: consecutive cells are not adjacent")
)

// Route is an ordered list of cells from the start to the target.
type Route []core.Coord

// Start returns the first cell; ok is false for an empty route.
func (r Route) Start() (core.Coord, bool) {
	if len(r) == 0 {
		return core.Coord{}, false
	}
	return r[0], true
}

// End returns the last cell; ok is false for an empty route.
func (r Route) End() (core.Coord, bool) {
	if len(r) == 0 {
		return core.Coord{}, false
	}
	return r[len(r)-1], true
}

// Diagonals returns the number of diagonal hops in r.
func (r Route) Diagonals() int {
	n := 0
	for i := 1; i < len(r); i++ {
		if r[i].X != r[i-1].X && r[i].Y != r[i-1].Y {
			n++
		}
	}
	return n
}

func (r Route) String() string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}
	return strings.Join(parts, "→")
}

// Build returns the root-to-target chain of parent links.
func Build(g *core.Graph, target core.Coord) (Route, error) {
	chain, err := g.Ancestors(target)
	if errors.Is(err, core.ErrCellNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, target)
	}
	if err != nil {
		return nil, err
	}
	out := make(Route, len(chain))
	for i, c := range chain {
		out[len(chain)-1-i] = c
	}
	return out, nil
}

// Option configures Optimize.
type Option func(*Options)

// Options holds optimizer settings.
type Options struct {
	// Graph, when set, enables the wall check on every cut.
	Graph *core.Graph
}

// WithWallCheck only cuts corners known to be open in g.
func WithWallCheck(g *core.Graph) Option {
	return func(o *Options) { o.Graph = g }
}

// Optimize returns a new route with corners cut. r is not modified.
func Optimize(r Route, opts ...Option) Route {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	out := make(Route, 0, len(r))
	i := 0
	for i < len(r) {
		cur := r[i]
		if i >= len(r)-2 {
			// The final two cells are never merged.
			out = append(out, r[i:]...)
			break
		}
		out = append(out, cur)
		if skip, after := r[i+1], r[i+2]; core.Chebyshev(cur, after) <= 1 && o.cuttable(cur, skip, after) {
			i += 2
			continue
		}
		i++
	}
	return out
}

// cuttable applies the wall check, if enabled, to dropping cur between prev
// and next.
func (o Options) cuttable(prev, cur, next core.Coord) bool {
	g := o.Graph
	if g == nil {
		return true
	}
	if !g.Linked(prev, cur) || !g.Linked(cur, next) {
		return false
	}
	// Orthogonal neighbors need no corner.
	if prev.X == next.X || prev.Y == next.Y {
		return true
	}
	opposite := core.Coord{X: prev.X + next.X - cur.X, Y: prev.Y + next.Y - cur.Y}
	return g.Linked(prev, opposite) && g.Linked(opposite, next)
}

// Commit links every diagonal hop of r in g and moves the far end under the
// near end when that lowers its cost. Hops that would not lower a cost are
// kept as links only.
func Commit(g *core.Graph, r Route) error {
	for i := 1; i < len(r); i++ {
		a, b := r[i-1], r[i]
		if core.Chebyshev(a, b) != 1 {
			return fmt.Errorf("%w: %v → %v", ErrNotAdjacent, a, b)
		}
		if a.X == b.X || a.Y == b.Y {
			continue
		}
		if err := g.Link(a, b); err != nil {
			return err
		}
		_, err := g.Reparent(b, a)
		if err != nil && !errors.Is(err, core.ErrNotCheaper) && !errors.Is(err, core.ErrCycle) {
			return err
		}
	}
	return g.Validate()
}
