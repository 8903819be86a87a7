package input

import "ebiten-gridsim/geom"

// State is the folded input of the current frame. Held state persists
// across frames; press edges last until EndFrame.
type State struct {
	// held[axis][0] is the negative side, held[axis][1] the positive one
	held    [axisCount][2]bool
	down    [buttonCount]bool
	pressed [buttonCount]bool

	mouse        geom.Vec2
	mouseDown    bool
	mousePressed bool
}

// NewState creates a state with nothing held
func NewState() *State {
	return &State{}
}

// Fold applies one event. Events with out-of-range axes or buttons are
// ignored.
func (s *State) Fold(ev Event) {
	switch ev.Kind {
	case ButtonDown:
		if !validButton(ev.Button) {
			return
		}
		if !s.down[ev.Button] {
			s.pressed[ev.Button] = true
		}
		s.down[ev.Button] = true
	case ButtonUp:
		if validButton(ev.Button) {
			s.down[ev.Button] = false
		}
	case AxisDown, AxisUp:
		side, ok := axisSide(ev.Dir)
		if ev.Axis < 0 || ev.Axis >= axisCount || !ok {
			return
		}
		s.held[ev.Axis][side] = ev.Kind == AxisDown
	case MouseMove:
		s.mouse = ev.Mouse
	case MouseDown:
		s.mouse = ev.Mouse
		if !s.mouseDown {
			s.mousePressed = true
		}
		s.mouseDown = true
	case MouseUp:
		s.mouse = ev.Mouse
		s.mouseDown = false
	}
}

// Axis returns -1, 0 or +1. Holding both sides cancels out.
func (s *State) Axis(a Axis) float64 {
	if a < 0 || a >= axisCount {
		return 0
	}
	var v float64
	if s.held[a][0] {
		v--
	}
	if s.held[a][1] {
		v++
	}
	return v
}

// ButtonDown reports whether b is held
func (s *State) ButtonDown(b Button) bool {
	return validButton(b) && s.down[b]
}

// ButtonPressed reports whether b went down during this frame
func (s *State) ButtonPressed(b Button) bool {
	return validButton(b) && s.pressed[b]
}

// Mouse returns the last known cursor position
func (s *State) Mouse() geom.Vec2 { return s.mouse }

// MouseDown reports whether the primary button is held
func (s *State) MouseDown() bool { return s.mouseDown }

// MousePressed reports whether the primary button went down this frame
func (s *State) MousePressed() bool { return s.mousePressed }

// EndFrame clears the press edges
func (s *State) EndFrame() {
	s.pressed = [buttonCount]bool{}
	s.mousePressed = false
}

func validButton(b Button) bool {
	return b >= 0 && b < buttonCount
}

func axisSide(dir int) (int, bool) {
	switch dir {
	case -1:
		return 0, true
	case 1:
		return 1, true
	default:
		return 0, false
	}
}
