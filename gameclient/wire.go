package gameclient

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/engine"
	"github.com/katalvlaran/mazewalker/walls"
)

// Frame actions.
const (
	actionSubscribe    = "sub-game"
	actionGameInstance = "game-instance"
	actionRunCommand   = "run-command"
)

// frame is one inbound [action, payload] pair.
type frame struct {
	Action  string
	Payload json.RawMessage
}

type subscribe struct {
	ID string `json:"id"`
}

type command struct {
	GameID  string      `json:"gameId"`
	Payload core.Action `json:"payload"`
}

type instance struct {
	GameState string `json:"gameState"`
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// gameState is the decoded form of the gameState string.
type gameState struct {
	Player struct {
		Position point `json:"position"`
		Rotation int   `json:"rotation"`
	} `json:"player"`
	Target point `json:"target"`
	Square int   `json:"square"`
}

func encodeFrame(action string, payload interface{}) ([]byte, error) {
	return json.Marshal([]interface{}{action, payload})
}

func decodeFrame(b []byte) (frame, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return frame{}, fmt.Errorf("%w: %v", ErrBadFrame, err)
	}
	if len(raw) != 2 {
		return frame{}, fmt.Errorf("%w: %d elements, want 2", ErrBadFrame, len(raw))
	}
	var f frame
	if err := json.Unmarshal(raw[0], &f.Action); err != nil {
		return frame{}, fmt.Errorf("%w: action: %v", ErrBadFrame, err)
	}
	f.Payload = raw[1]
	return f, nil
}

// decodeTick unwraps a game-instance payload. The game state arrives as a
// JSON document embedded in a string field.
func decodeTick(payload json.RawMessage) (engine.Tick, error) {
	var inst instance
	if err := json.Unmarshal(payload, &inst); err != nil {
		return engine.Tick{}, fmt.Errorf("%w: payload: %v", ErrBadFrame, err)
	}
	var st gameState
	if err := json.Unmarshal([]byte(inst.GameState), &st); err != nil {
		return engine.Tick{}, fmt.Errorf("%w: gameState: %v", ErrBadFrame, err)
	}

	h := core.Heading(st.Player.Rotation)
	if !h.Valid() {
		return engine.Tick{}, fmt.Errorf("%w: rotation %d", ErrBadFrame, st.Player.Rotation)
	}
	if st.Square < 0 || st.Square > 0xff {
		return engine.Tick{}, fmt.Errorf("%w: square %d", ErrBadFrame, st.Square)
	}
	return engine.Tick{
		Position: core.Coord{X: st.Player.Position.X, Y: st.Player.Position.Y},
		Heading:  h,
		Target:   core.Coord{X: st.Target.X, Y: st.Target.Y},
		Walls:    walls.Mask(st.Square),
	}, nil
}
