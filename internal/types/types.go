package types

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the five canonical action classes. The strings are a
// wire contract with subscribers and must not change.
type Kind string

const (
	MouseMove       Kind = "MouseMove"
	MousePress      Kind = "MousePress"
	MouseRelease    Kind = "MouseRelease"
	KeyboardPress   Kind = "KeyboardPress"
	KeyboardRelease Kind = "KeyboardRelease"
)

// Value is the payload union of an Action: a Token for key/button actions,
// Coords for MouseMove. The active member is fully determined by Kind.
type Value interface {
	isValue()
}

// Token is a symbolic key or button name, e.g. "Shift" or "Mouse1".
type Token string

func (Token) isValue() {}

// Coords is an absolute screen position.
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (Coords) isValue() {}

// Action is one normalized input event. Actions are immutable once built and
// cheap to copy, so the same Action is shared across all subscribers.
type Action struct {
	Kind  Kind  `json:"kind"`
	Value Value `json:"value"`
}

// Key builds a keyboard action.
func Key(kind Kind, token string) Action {
	return Action{Kind: kind, Value: Token(token)}
}

// Button builds a mouse button action.
func Button(kind Kind, token string) Action {
	return Action{Kind: kind, Value: Token(token)}
}

// Move builds a MouseMove action.
func Move(x, y float64) Action {
	return Action{Kind: MouseMove, Value: Coords{X: x, Y: y}}
}

// UnmarshalJSON decodes the wire record, picking the value member by kind.
func (a *Action) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind  Kind            `json:"kind"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Kind = raw.Kind
	switch raw.Kind {
	case MouseMove:
		var c Coords
		if err := json.Unmarshal(raw.Value, &c); err != nil {
			return fmt.Errorf("decode coords: %w", err)
		}
		a.Value = c
	case MousePress, MouseRelease, KeyboardPress, KeyboardRelease:
		var t Token
		if err := json.Unmarshal(raw.Value, &t); err != nil {
			return fmt.Errorf("decode token: %w", err)
		}
		a.Value = t
	default:
		return fmt.Errorf("unknown action kind %q", raw.Kind)
	}
	return nil
}

// EventClass discriminates raw OS events before translation.
type EventClass uint8

const (
	ClassOther EventClass = iota
	ClassKeyPress
	ClassKeyRelease
	ClassButtonPress
	ClassButtonRelease
	ClassMouseMove
)

// RawEvent is one event as delivered by the OS hook, before translation.
// Key and Button carry the platform's raw identifiers.
type RawEvent struct {
	Class  EventClass
	Key    uint16
	Button uint16
	X      float64
	Y      float64
}
