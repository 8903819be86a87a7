package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-gridsim/geom"
	"ebiten-gridsim/input"
)

// keyBinding is the logical control a physical key drives
type keyBinding struct {
	isAxis bool
	axis   input.Axis
	dir    int
	button input.Button
}

// KeyMap translates ebiten key and mouse state into input events
type KeyMap struct {
	// Map of keys to logical controls
	bindings map[ebiten.Key]keyBinding

	lastMouse geom.Vec2
}

// NewKeyMap creates the default bindings
func NewKeyMap() *KeyMap {
	km := &KeyMap{
		bindings: make(map[ebiten.Key]keyBinding),
	}

	// Arrow keys
	km.bindAxis(ebiten.KeyArrowUp, input.Vertical, -1)
	km.bindAxis(ebiten.KeyArrowDown, input.Vertical, 1)
	km.bindAxis(ebiten.KeyArrowLeft, input.Horizontal, -1)
	km.bindAxis(ebiten.KeyArrowRight, input.Horizontal, 1)

	// Buttons
	km.bindButton(ebiten.KeyC, input.Select)
	km.bindButton(ebiten.KeyEnter, input.Select)
	km.bindButton(ebiten.KeyX, input.Back)
	km.bindButton(ebiten.KeyZ, input.Menu)
	km.bindButton(ebiten.KeyEscape, input.Quit)

	return km
}

func (km *KeyMap) bindAxis(key ebiten.Key, axis input.Axis, dir int) {
	km.bindings[key] = keyBinding{isAxis: true, axis: axis, dir: dir}
}

func (km *KeyMap) bindButton(key ebiten.Key, button input.Button) {
	km.bindings[key] = keyBinding{button: button}
}

// Poll returns the events of this tick: key edges first, then the mouse
func (km *KeyMap) Poll() []input.Event {
	var events []input.Event

	for key, b := range km.bindings {
		switch {
		case inpututil.IsKeyJustPressed(key):
			events = append(events, b.event(true))
		case inpututil.IsKeyJustReleased(key):
			events = append(events, b.event(false))
		}
	}

	x, y := ebiten.CursorPosition()
	mouse := geom.V(float64(x), float64(y))
	if mouse != km.lastMouse {
		events = append(events, input.MoveMouse(mouse))
		km.lastMouse = mouse
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, input.MousePress(mouse))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, input.MouseRelease(mouse))
	}

	return events
}

func (b keyBinding) event(down bool) input.Event {
	switch {
	case b.isAxis && down:
		return input.AxisPress(b.axis, b.dir)
	case b.isAxis:
		return input.AxisRelease(b.axis, b.dir)
	case down:
		return input.Press(b.button)
	default:
		return input.Release(b.button)
	}
}
