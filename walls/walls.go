package walls

import (
	"strings"

	"github.com/katalvlaran/mazewalker/core"
)

// Mask is the wall bitmask of a single cell.
type Mask uint8

// Direction names one orthogonal side of a cell.
type Direction int

// Sides in decoding order.
const (
	North Direction = iota
	East
	South
	West
)

// Opening is one open side of a cell.
type Opening struct {
	Direction Direction
	DX, DY    int
	Heading   core.Heading
}

// side binds a direction to its mask bit and geometry.
type side struct {
	dir     Direction
	bit     Mask
	dx, dy  int
	heading core.Heading
	letter  byte
}

// sides is ordered N, E, S, W; Decode preserves this order.
var sides = [4]side{
	{North, 0b1000, 0, -1, core.North, 'N'},
	{East, 0b0100, 1, 0, core.East, 'E'},
	{South, 0b0010, 0, 1, core.South, 'S'},
	{West, 0b0001, -1, 0, core.West, 'W'},
}

// All is the mask of a cell walled on every side.
const All Mask = 0b1111

func (d Direction) String() string {
	if d < North || d > West {
		return "?"
	}
	return string(sides[d].letter)
}

// Heading returns the compass heading that faces side d.
func (d Direction) Heading() core.Heading {
	return sides[d].heading
}

// Offset returns the unit step through side d.
func (d Direction) Offset() (dx, dy int) {
	return sides[d].dx, sides[d].dy
}

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Blocked reports whether side d of m carries a wall.
func Blocked(m Mask, d Direction) bool {
	return m&sides[d].bit != 0
}

// Decode returns the open sides of m in N, E, S, W order.
func Decode(m Mask) []Opening {
	out := make([]Opening, 0, 4)
	for _, s := range sides {
		if m&s.bit == 0 {
			out = append(out, Opening{Direction: s.dir, DX: s.dx, DY: s.dy, Heading: s.heading})
		}
	}
	return out
}

// Neighbors returns every coordinate reachable from c through an open side
// of m, with the heading to face it.
func Neighbors(c core.Coord, m Mask) map[core.Coord]core.Heading {
	open := Decode(m)
	out := make(map[core.Coord]core.Heading, len(open))
	for _, o := range open {
		out[c.Add(o.DX, o.DY)] = o.Heading
	}
	return out
}

// MaskOf builds a mask from the sides that carry a wall.
func MaskOf(blocked ...Direction) Mask {
	var m Mask
	for _, d := range blocked {
		m |= sides[d].bit
	}
	return m
}

// DirectionOf returns the side of a cell that faces h, for orthogonal h.
func DirectionOf(h core.Heading) (Direction, bool) {
	for _, s := range sides {
		if s.heading == h {
			return s.dir, true
		}
	}
	return 0, false
}

// String renders the walls of m as letters, e.g. "N-S-" for north and south.
func (m Mask) String() string {
	var b strings.Builder
	for _, s := range sides {
		if m&s.bit != 0 {
			b.WriteByte(s.letter)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
