package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/walls"
)

// Sentinel errors for maze parsing.
var (
	// ErrMalformed indicates a drawing that does not follow the grid layout.
	ErrMalformed = errors.New("sim: malformed maze")

	// ErrNoStart indicates a drawing without exactly one S marker.
	ErrNoStart = errors.New("sim: maze needs exactly one start")

	// ErrNoTarget indicates a drawing without exactly one T marker.
	ErrNoTarget = errors.New("sim: maze needs exactly one target")
)

// Maze is an immutable rectangular grid of cells with walls.
type Maze struct {
	Width, Height int
	Start, Target core.Coord
	cells         [][]walls.Mask // [y][x]
}

// Parse reads a maze drawing.
func Parse(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) < 3 || len(lines)%2 == 0 {
		return nil, fmt.Errorf("%w: need an odd number of at least 3 lines, got %d", ErrMalformed, len(lines))
	}
	top := strings.TrimRight(lines[0], " ")
	if len(top) < 5 || (len(top)-1)%4 != 0 {
		return nil, fmt.Errorf("%w: top border %q", ErrMalformed, top)
	}

	m := &Maze{Width: (len(top) - 1) / 4, Height: (len(lines) - 1) / 2}
	at := func(row, col int) byte {
		if col < len(lines[row]) {
			return lines[row][col]
		}
		return ' '
	}

	starts, targets := 0, 0
	m.cells = make([][]walls.Mask, m.Height)
	for y := 0; y < m.Height; y++ {
		m.cells[y] = make([]walls.Mask, m.Width)
		for x := 0; x < m.Width; x++ {
			var blocked []walls.Direction
			if at(2*y, 4*x+2) == '-' {
				blocked = append(blocked, walls.North)
			}
			if at(2*y+1, 4*x+4) == '|' {
				blocked = append(blocked, walls.East)
			}
			if at(2*y+2, 4*x+2) == '-' {
				blocked = append(blocked, walls.South)
			}
			if at(2*y+1, 4*x) == '|' {
				blocked = append(blocked, walls.West)
			}
			m.cells[y][x] = walls.MaskOf(blocked...)

			switch at(2*y+1, 4*x+2) {
			case 'S':
				m.Start = core.Coord{X: x, Y: y}
				starts++
			case 'T':
				m.Target = core.Coord{X: x, Y: y}
				targets++
			}
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoStart, starts)
	}
	if targets != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoTarget, targets)
	}
	return m, nil
}

// ParseString parses a maze drawing held in a string.
func ParseString(s string) (*Maze, error) {
	return Parse(strings.NewReader(s))
}

// Load parses the maze drawing in the named file.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// In reports whether c lies inside the grid.
func (m *Maze) In(c core.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.Width && c.Y < m.Height
}

// Walls returns the wall mask of c, with the outer border always walled.
// Cells outside the grid are fully walled.
func (m *Maze) Walls(c core.Coord) walls.Mask {
	if !m.In(c) {
		return walls.All
	}
	w := m.cells[c.Y][c.X]
	if c.Y == 0 {
		w |= walls.MaskOf(walls.North)
	}
	if c.X == m.Width-1 {
		w |= walls.MaskOf(walls.East)
	}
	if c.Y == m.Height-1 {
		w |= walls.MaskOf(walls.South)
	}
	if c.X == 0 {
		w |= walls.MaskOf(walls.West)
	}
	return w
}

// Open reports whether the agent can step from c through side d. Both cells
// must agree the side is open.
func (m *Maze) Open(c core.Coord, d walls.Direction) bool {
	dx, dy := d.Offset()
	n := c.Add(dx, dy)
	return m.In(c) && m.In(n) && !walls.Blocked(m.Walls(c), d) && !walls.Blocked(m.Walls(n), d.Opposite())
}

// String draws the maze in the format Parse reads.
func (m *Maze) String() string {
	var b strings.Builder

	b.WriteString("+")
	for x := 0; x < m.Width; x++ {
		b.WriteString(m.horizontal(core.Coord{X: x}, walls.North))
	}
	b.WriteString("\n")

	for y := 0; y < m.Height; y++ {
		b.WriteString("|")
		for x := 0; x < m.Width; x++ {
			c := core.Coord{X: x, Y: y}
			mark := " "
			switch c {
			case m.Start:
				mark = "S"
			case m.Target:
				mark = "T"
			}
			b.WriteString(" " + mark + " ")
			if walls.Blocked(m.Walls(c), walls.East) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n+")
		for x := 0; x < m.Width; x++ {
			b.WriteString(m.horizontal(core.Coord{X: x, Y: y}, walls.South))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Maze) horizontal(c core.Coord, d walls.Direction) string {
	if walls.Blocked(m.Walls(c), d) {
		return "---+"
	}
	return "   +"
}
