package core

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownAction is returned when decoding an action record with an unknown kind.
var ErrUnknownAction = errors.New("core: unknown action")

// ActionKind names one of the three commands the agent can send.
type ActionKind string

// Action kinds as they appear on the wire.
const (
	ActionRotate ActionKind = "rotate"
	ActionMove   ActionKind = "move"
	ActionReset  ActionKind = "reset"
)

// Action is the single command produced per tick.
// Heading is meaningful only for ActionRotate.
type Action struct {
	Kind    ActionKind
	Heading Heading
}

// Rotate returns an action turning the agent to face h.
func Rotate(h Heading) Action { return Action{Kind: ActionRotate, Heading: h} }

// Move returns an action advancing the agent one cell along its heading.
func Move() Action { return Action{Kind: ActionMove} }

// Reset returns the action asking the game to restart the agent at the start.
func Reset() Action { return Action{Kind: ActionReset} }

func (a Action) String() string {
	if a.Kind == ActionRotate {
		return fmt.Sprintf("rotate %d", int(a.Heading))
	}
	return string(a.Kind)
}

// wireAction is the JSON record. Rotation is a pointer because North (0)
// must still be sent for rotate commands.
type wireAction struct {
	Action   ActionKind `json:"action"`
	Rotation *Heading   `json:"rotation,omitempty"`
}

// MarshalJSON encodes {"action":"rotate","rotation":h}, {"action":"move"}
// or {"action":"reset"}.
func (a Action) MarshalJSON() ([]byte, error) {
	w := wireAction{Action: a.Kind}
	if a.Kind == ActionRotate {
		h := a.Heading
		w.Rotation = &h
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes an action record and validates its kind and heading.
func (a *Action) UnmarshalJSON(b []byte) error {
	var w wireAction
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	switch w.Action {
	case ActionMove, ActionReset:
		*a = Action{Kind: w.Action}
	case ActionRotate:
		if w.Rotation == nil || !w.Rotation.Valid() {
			return fmt.Errorf("%w: rotate without a valid rotation", ErrUnknownAction)
		}
		*a = Rotate(*w.Rotation)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, w.Action)
	}
	return nil
}
