package core_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalker/core"
)

func TestHeading_Opposite(t *testing.T) {
	cases := map[core.Heading]core.Heading{
		core.North:     core.South,
		core.NorthEast: core.SouthWest,
		core.East:      core.West,
		core.SouthEast: core.NorthWest,
		core.South:     core.North,
		core.West:      core.East,
	}
	for h, want := range cases {
		assert.Equal(t, want, h.Opposite(), "opposite of %v", h)
		assert.Equal(t, h, h.Opposite().Opposite())
	}
}

func TestHeading_Valid(t *testing.T) {
	for h := core.Heading(0); h < 360; h += 45 {
		assert.True(t, h.Valid(), "%v", h)
	}
	assert.False(t, core.Heading(-45).Valid())
	assert.False(t, core.Heading(360).Valid())
	assert.False(t, core.Heading(30).Valid())
}

func TestHeadingBetween(t *testing.T) {
	o := core.Coord{X: 5, Y: 5}
	for h := core.Heading(0); h < 360; h += 45 {
		dx, dy := h.Offset()
		got, err := core.HeadingBetween(o, o.Add(dx, dy))
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}

	_, err := core.HeadingBetween(o, o)
	assert.ErrorIs(t, err, core.ErrNotAdjacent)
	_, err = core.HeadingBetween(o, o.Add(2, 0))
	assert.ErrorIs(t, err, core.ErrNotAdjacent)
}

func TestDiagonalHeading(t *testing.T) {
	o := core.Coord{}
	assert.Equal(t, core.SouthEast, core.DiagonalHeading(o, core.Coord{X: 1, Y: 1}))
	assert.Equal(t, core.NorthWest, core.DiagonalHeading(o, core.Coord{X: -1, Y: -1}))

	assert.PanicsWithError(t, "core: cells are not diagonally adjacent: (0,0) → (1,0)", func() {
		core.DiagonalHeading(o, core.Coord{X: 1})
	})
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, core.ErrNotDiagonal))
	}()
	core.DiagonalHeading(o, core.Coord{X: 3, Y: 3})
}

func TestDistances(t *testing.T) {
	a, b := core.Coord{X: 0, Y: 0}, core.Coord{X: 3, Y: -4}
	assert.Equal(t, 4, core.Chebyshev(a, b))
	assert.Equal(t, 7, core.Manhattan(a, b))
	assert.Equal(t, "(3,-4)", b.String())
}

func TestAction_JSON(t *testing.T) {
	cases := []struct {
		action core.Action
		wire   string
	}{
		{core.Rotate(core.North), `{"action":"rotate","rotation":0}`},
		{core.Rotate(core.West), `{"action":"rotate","rotation":270}`},
		{core.Move(), `{"action":"move"}`},
		{core.Reset(), `{"action":"reset"}`},
	}
	for _, tc := range cases {
		b, err := json.Marshal(tc.action)
		require.NoError(t, err)
		assert.JSONEq(t, tc.wire, string(b))

		var back core.Action
		require.NoError(t, json.Unmarshal([]byte(tc.wire), &back))
		assert.Equal(t, tc.action, back)
	}
}

func TestAction_UnmarshalRejects(t *testing.T) {
	var a core.Action
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"action":"jump"}`), &a), core.ErrUnknownAction)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"action":"rotate"}`), &a), core.ErrUnknownAction)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"action":"rotate","rotation":10}`), &a), core.ErrUnknownAction)
}
