package scenes

import (
	"ebiten-gridsim/input"
)

// Menu options
const (
	optionStart = iota
	optionQuit
)

// MenuScene is the title menu. Select starts a level on top of it; leaving
// the level comes back here.
type MenuScene struct {
	selectedOption int
	options        []string
	status         string

	activate bool
	quit     bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene() *MenuScene {
	return &MenuScene{
		options: []string{
			"Start",
			"Quit",
		},
	}
}

// Name implements Scene
func (s *MenuScene) Name() string { return "MenuScene" }

// Update acts on the option chosen since the last update
func (s *MenuScene) Update(w *World) Transition {
	if s.quit {
		return PopAllScenes()
	}
	if !s.activate {
		return Stay()
	}
	s.activate = false

	switch s.selectedOption {
	case optionStart:
		level, err := NewLevelScene(w)
		if err != nil {
			w.Log.WithError(err).Error("Level failed to start")
			s.status = err.Error()
			return Stay()
		}
		s.status = ""
		return PushScene(level)
	case optionQuit:
		return PopAllScenes()
	}
	return Stay()
}

// Input handles menu navigation
func (s *MenuScene) Input(w *World, ev input.Event) {
	w.Input.Fold(ev)

	if ev.Kind == input.AxisDown && ev.Axis == input.Vertical {
		n := len(s.options)
		s.selectedOption = ((s.selectedOption+ev.Dir)%n + n) % n
	}
	if w.Input.ButtonPressed(input.Select) {
		s.activate = true
	}
	if w.Input.ButtonPressed(input.Quit) {
		s.quit = true
	}
}

// SelectedOption returns the highlighted option
func (s *MenuScene) SelectedOption() string {
	return s.options[s.selectedOption]
}

// Frame implements Scene
func (s *MenuScene) Frame() Frame {
	lines := make([]string, 0, len(s.options)+2)
	for i, option := range s.options {
		marker := "  "
		if i == s.selectedOption {
			marker = "> "
		}
		lines = append(lines, marker+option)
	}
	if s.status != "" {
		lines = append(lines, "", s.status)
	}
	return Frame{Title: "Grid Sim", Lines: lines}
}
