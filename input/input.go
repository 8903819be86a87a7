// Package input folds decoded device events into logical axis and button
// state. It knows nothing about keyboards; the front end maps physical keys
// to the events below.
package input

import (
	"fmt"

	"ebiten-gridsim/geom"
)

// Axis is a logical, signed input axis
type Axis int

const (
	Horizontal Axis = iota
	Vertical

	axisCount
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Button is a logical action button
type Button int

const (
	Select Button = iota
	Back
	Menu
	Quit

	buttonCount
)

func (b Button) String() string {
	switch b {
	case Select:
		return "select"
	case Back:
		return "back"
	case Menu:
		return "menu"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// EventKind tells which fields of an Event are meaningful
type EventKind uint8

const (
	ButtonDown EventKind = iota
	ButtonUp
	AxisDown
	AxisUp
	MouseMove
	MouseDown
	MouseUp
)

// Event is one decoded device event
type Event struct {
	Kind   EventKind
	Button Button
	Axis   Axis
	// Dir is -1 or +1 for axis events: which of the two opposing bindings
	Dir   int
	Mouse geom.Vec2
}

// Press is a button-down event for b
func Press(b Button) Event { return Event{Kind: ButtonDown, Button: b} }

// Release is a button-up event for b
func Release(b Button) Event { return Event{Kind: ButtonUp, Button: b} }

// AxisPress holds the dir side of axis a
func AxisPress(a Axis, dir int) Event { return Event{Kind: AxisDown, Axis: a, Dir: dir} }

// AxisRelease lets go of the dir side of axis a
func AxisRelease(a Axis, dir int) Event { return Event{Kind: AxisUp, Axis: a, Dir: dir} }

// MoveMouse reports a new cursor position in window coordinates
func MoveMouse(p geom.Vec2) Event { return Event{Kind: MouseMove, Mouse: p} }

// MousePress reports the primary mouse button going down at p
func MousePress(p geom.Vec2) Event { return Event{Kind: MouseDown, Mouse: p} }

// MouseRelease reports the primary mouse button going up at p
func MouseRelease(p geom.Vec2) Event { return Event{Kind: MouseUp, Mouse: p} }
