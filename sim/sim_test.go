package sim_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/engine"
	"github.com/katalvlaran/mazewalker/explore"
	"github.com/katalvlaran/mazewalker/sim"
	"github.com/katalvlaran/mazewalker/walls"
)

const budget = 5000

func load(name string) *sim.Maze {
	m, err := sim.Load(filepath.Join("testdata", name+".txt"))
	So(err, ShouldBeNil)
	return m
}

func TestParse(t *testing.T) {
	Convey("Given the rooms drawing", t, func() {
		m := load("rooms")

		Convey("Dimensions and markers are read", func() {
			So(m.Width, ShouldEqual, 6)
			So(m.Height, ShouldEqual, 5)
			So(m.Start, ShouldResemble, core.Coord{X: 0, Y: 0})
			So(m.Target, ShouldResemble, core.Coord{X: 3, Y: 3})
		})

		Convey("Walls are read per side", func() {
			So(m.Walls(core.Coord{X: 0, Y: 0}), ShouldEqual, walls.MaskOf(walls.North, walls.South, walls.West))
			So(m.Walls(core.Coord{X: 2, Y: 0}), ShouldEqual, walls.MaskOf(walls.North, walls.East))
			So(m.Open(core.Coord{X: 2, Y: 0}, walls.South), ShouldBeTrue)
			So(m.Open(core.Coord{X: 2, Y: 0}, walls.East), ShouldBeFalse)
		})

		Convey("The border is always walled", func() {
			So(m.Open(core.Coord{X: 0, Y: 0}, walls.North), ShouldBeFalse)
			So(m.Walls(core.Coord{X: -1, Y: 0}), ShouldEqual, walls.All)
		})

		Convey("Rendering round-trips", func() {
			again, err := sim.ParseString(m.String())
			So(err, ShouldBeNil)
			So(again.String(), ShouldEqual, m.String())
		})
	})

	Convey("Broken drawings are rejected", t, func() {
		_, err := sim.ParseString("+---+\n")
		So(errors.Is(err, sim.ErrMalformed), ShouldBeTrue)

		_, err = sim.ParseString("+---+---+\n|   | T |\n+---+---+\n")
		So(errors.Is(err, sim.ErrNoStart), ShouldBeTrue)

		_, err = sim.ParseString("+---+---+\n| S   S |\n+---+---+\n")
		So(errors.Is(err, sim.ErrNoStart), ShouldBeTrue)

		_, err = sim.ParseString("+---+---+\n| S     |\n+---+---+\n")
		So(errors.Is(err, sim.ErrNoTarget), ShouldBeTrue)
	})
}

func TestGame(t *testing.T) {
	Convey("Given an agent at the start of the open room", t, func() {
		g := sim.NewGame(load("open"), sim.WithHeading(core.East))
		So(g.Heading(), ShouldEqual, core.East)

		Convey("Moving into the border fails", func() {
			So(g.Apply(core.Rotate(core.North)), ShouldBeNil)
			So(errors.Is(g.Apply(core.Move()), sim.ErrBlocked), ShouldBeTrue)
			So(g.Position(), ShouldResemble, core.Coord{})
		})

		Convey("Diagonal moves cross open corners", func() {
			So(g.Apply(core.Rotate(core.SouthEast)), ShouldBeNil)
			So(g.Apply(core.Move()), ShouldBeNil)
			So(g.Position(), ShouldResemble, core.Coord{X: 1, Y: 1})
			So(g.Counters(), ShouldResemble, sim.Counters{Moves: 1, Rotations: 1})
		})

		Convey("Reset returns to the start with the initial heading", func() {
			So(g.Apply(core.Move()), ShouldBeNil)
			So(g.Apply(core.Rotate(core.South)), ShouldBeNil)
			So(g.Apply(core.Reset()), ShouldBeNil)
			So(g.Position(), ShouldResemble, core.Coord{})
			So(g.Heading(), ShouldEqual, core.East)
			So(g.Trail(), ShouldHaveLength, 1)
		})

		Convey("Unknown actions are refused", func() {
			So(errors.Is(g.Apply(core.Action{Kind: "jump"}), sim.ErrInvalidAction), ShouldBeTrue)
			So(errors.Is(g.Apply(core.Rotate(10)), sim.ErrInvalidAction), ShouldBeTrue)
		})
	})

	Convey("Given a corner with a single open side", t, func() {
		// From (0,0) to (1,1): only the route through (1,0) is open.
		m, err := sim.ParseString(strings.Join([]string{
			"+---+---+",
			"| S     |",
			"+---+   +",
			"|     T |",
			"+---+---+",
		}, "\n"))
		So(err, ShouldBeNil)

		Convey("The lenient game lets the agent cut it", func() {
			g := sim.NewGame(m, sim.WithHeading(core.SouthEast))
			So(g.Apply(core.Move()), ShouldBeNil)
			So(g.AtTarget(), ShouldBeTrue)
		})

		Convey("The strict game does not", func() {
			g := sim.NewGame(m, sim.WithHeading(core.SouthEast), sim.WithStrictCorners())
			So(errors.Is(g.Apply(core.Move()), sim.ErrBlocked), ShouldBeTrue)
		})
	})
}

func TestSolve(t *testing.T) {
	strategies := []struct {
		name string
		opts []engine.Option
	}{
		{"bfs", []engine.Option{engine.WithStrategy(engine.StrategyBFS)}},
		{"dfs", []engine.Option{engine.WithStrategy(engine.StrategyDFS)}},
		{"dfs with heuristic order", []engine.Option{engine.WithStrategy(engine.StrategyDFS), engine.WithHeuristicOrder(true)}},
		{"astar", []engine.Option{engine.WithStrategy(engine.StrategyAStar)}},
		{"astar uniform cost", []engine.Option{
			engine.WithStrategy(engine.StrategyAStar), engine.WithAlpha(1000), engine.WithHeuristic(explore.Manhattan(1)),
		}},
	}

	for _, name := range []string{"corridor", "open", "rooms", "tree"} {
		for _, st := range strategies {
			Convey("Solving "+name+" with "+st.name, t, func() {
				m := load(name)
				s, err := engine.New(append([]engine.Option{engine.WithValidation()}, st.opts...)...)
				So(err, ShouldBeNil)

				g := sim.NewGame(m, sim.WithStrictCorners())
				res, err := sim.Run(context.Background(), g, s, budget)

				So(err, ShouldBeNil)
				So(g.AtTarget(), ShouldBeTrue)
				So(res.Resets, ShouldEqual, 1)
				So(s.Mode(), ShouldEqual, engine.Solved)

				if st.name == "bfs" {
					Convey("Breadth-first exploration finds a shortest raw route", func() {
						dist, ok := m.Distance()
						So(ok, ShouldBeTrue)
						So(s.Stats().RawRoute, ShouldEqual, dist+1)
					})
				}

				Convey("The replayed walk follows the optimized route", func() {
					So(g.Trail(), ShouldResemble, []core.Coord(s.Route()))
					So(len(s.Route()), ShouldBeLessThanOrEqualTo, s.Stats().RawRoute)
				})
			})
		}
	}

	Convey("Geometry-only corner cutting still solves the lenient game", t, func() {
		s, err := engine.New(engine.WithStrategy(engine.StrategyBFS), engine.WithCornerCheck(false), engine.WithValidation())
		So(err, ShouldBeNil)
		g := sim.NewGame(load("rooms"))
		_, err = sim.Run(context.Background(), g, s, budget)
		So(err, ShouldBeNil)
		So(g.AtTarget(), ShouldBeTrue)
	})

	Convey("An unreachable target exhausts the frontier", t, func() {
		for _, st := range engine.Strategies {
			s, err := engine.New(engine.WithStrategy(st))
			So(err, ShouldBeNil)
			_, err = sim.Run(context.Background(), sim.NewGame(load("walled")), s, budget)
			So(errors.Is(err, explore.ErrFrontierExhausted), ShouldBeTrue)
		}
	})

	Convey("A tiny budget runs out", t, func() {
		s, _ := engine.New()
		_, err := sim.Run(context.Background(), sim.NewGame(load("tree")), s, 3)
		So(errors.Is(err, sim.ErrTickBudget), ShouldBeTrue)
	})

	Convey("A cancelled context stops the run", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s, _ := engine.New()
		_, err := sim.Run(ctx, sim.NewGame(load("tree")), s, budget)
		So(err, ShouldEqual, context.Canceled)
	})
}

func TestRegions(t *testing.T) {
	Convey("Given the walled drawing", t, func() {
		m := load("walled")

		Convey("The start region and the three sealed cells are separate", func() {
			regions := m.Regions()
			So(len(regions), ShouldEqual, 4)
			So(regions[0], ShouldResemble, []core.Coord{
				{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2},
			})
			So(regions[3], ShouldResemble, []core.Coord{{X: 2, Y: 2}})
		})

		Convey("The target is out of reach", func() {
			_, ok := m.Distance()
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Open and corridor drawings are single regions", t, func() {
		for name, want := range map[string]int{"corridor": 4, "open": 6} {
			m := load(name)
			So(len(m.Regions()), ShouldEqual, 1)
			dist, ok := m.Distance()
			So(ok, ShouldBeTrue)
			So(dist, ShouldEqual, want)
		}
	})
}
