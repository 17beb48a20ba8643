package core

import "fmt"

// Heading is a compass direction in degrees, clockwise from North.
type Heading int

// The eight headings the agent can face.
const (
	North     Heading = 0
	NorthEast Heading = 45
	East      Heading = 90
	SouthEast Heading = 135
	South     Heading = 180
	SouthWest Heading = 225
	West      Heading = 270
	NorthWest Heading = 315
)

// headingOffsets maps a unit step (dx, dy) to the heading that faces it.
var headingOffsets = map[[2]int]Heading{
	{0, -1}:  North,
	{1, -1}:  NorthEast,
	{1, 0}:   East,
	{1, 1}:   SouthEast,
	{0, 1}:   South,
	{-1, 1}:  SouthWest,
	{-1, 0}:  West,
	{-1, -1}: NorthWest,
}

var headingNames = map[Heading]string{
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
}

// Valid reports whether h is one of the eight compass values.
func (h Heading) Valid() bool {
	return h >= 0 && h < 360 && h%45 == 0
}

// Opposite returns (h+180) mod 360.
func (h Heading) Opposite() Heading {
	return (h + 180) % 360
}

// Diagonal reports whether h is one of NE, SE, SW, NW.
func (h Heading) Diagonal() bool {
	return h.Valid() && h%90 != 0
}

// Offset returns the unit step (dx, dy) taken when moving along h.
func (h Heading) Offset() (dx, dy int) {
	for d, hh := range headingOffsets {
		if hh == h {
			return d[0], d[1]
		}
	}
	return 0, 0
}

func (h Heading) String() string {
	if name, ok := headingNames[h]; ok {
		return fmt.Sprintf("%s(%d)", name, int(h))
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// HeadingBetween returns the heading to face to from from.
// Returns ErrNotAdjacent unless the coordinates are one king-move apart.
func HeadingBetween(from, to Coord) (Heading, error) {
	h, ok := headingOffsets[[2]int{to.X - from.X, to.Y - from.Y}]
	if !ok {
		return 0, fmt.Errorf("%w: %v → %v", ErrNotAdjacent, from, to)
	}
	return h, nil
}

// DiagonalHeading returns the heading for a diagonal hop from → to.
//
// Asking for a diagonal heading between cells that are not diagonally
// adjacent is a caller bug, so it panics with ErrNotDiagonal instead of
// returning a zero heading that reads as North.
func DiagonalHeading(from, to Coord) Heading {
	h, err := HeadingBetween(from, to)
	if err != nil || !h.Diagonal() {
		panic(fmt.Errorf("%w: %v → %v", ErrNotDiagonal, from, to))
	}
	return h
}
