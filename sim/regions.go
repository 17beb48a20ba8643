package sim

import (
	"github.com/katalvlaran/mazewalker/bfs"
	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/explore"
	"github.com/katalvlaran/mazewalker/walls"
)

// Regions groups the cells into areas connected through open sides.
// Each region lists its cells in discovery order starting from its
// top-left-most cell; regions are ordered by that first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (m *Maze) Regions() [][]core.Coord {
	seen := make(map[core.Coord]bool, m.Width*m.Height)
	var regions [][]core.Coord
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := core.Coord{X: x, Y: y}
			if seen[c] {
				continue
			}
			var region []core.Coord
			m.flood(c, seen, func(cand explore.Candidate) bool {
				region = append(region, cand.Coord)
				return true
			})
			regions = append(regions, region)
		}
	}
	return regions
}

// Distance returns the fewest orthogonal moves from Start to Target, and
// false when the target cannot be reached.
func (m *Maze) Distance() (int, bool) {
	dist, found := 0, false
	m.flood(m.Start, map[core.Coord]bool{}, func(cand explore.Candidate) bool {
		if cand.Coord == m.Target {
			dist, found = cand.Cost, true
			return false
		}
		return true
	})
	return dist, found
}

// flood visits every cell reachable from origin breadth-first, reporting
// each with its depth in Cost, until visit returns false.
func (m *Maze) flood(origin core.Coord, seen map[core.Coord]bool, visit func(explore.Candidate) bool) {
	q := bfs.NewQueue()
	q.Push(explore.Candidate{Coord: origin})
	seen[origin] = true

	for q.Len() > 0 {
		cur, _ := q.Pop()
		if !visit(cur) {
			return
		}
		for _, d := range []walls.Direction{walls.North, walls.East, walls.South, walls.West} {
			if !m.Open(cur.Coord, d) {
				continue
			}
			dx, dy := d.Offset()
			next := cur.Coord.Add(dx, dy)
			if seen[next] {
				continue
			}
			seen[next] = true
			q.Push(explore.Candidate{Coord: next, Cost: cur.Cost + 1})
		}
	}
}
