package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalker/bfs"
	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/explore"
)

// ExampleQueue shows breadth order across two sibling batches.
func ExampleQueue() {
	q := bfs.NewQueue()
	q.Push(
		explore.Candidate{Coord: core.Coord{X: 1}, Cost: 1},
		explore.Candidate{Coord: core.Coord{Y: 1}, Cost: 1},
	)
	q.Push(explore.Candidate{Coord: core.Coord{X: 2}, Cost: 2})

	for q.Len() > 0 {
		c, _ := q.Pop()
		fmt.Println(c.Coord, c.Cost)
	}

	// Output:
	// (1,0) 1
	// (0,1) 1
	// (2,0) 2
}
