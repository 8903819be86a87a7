// Package resources holds the scene-scoped singletons shared by systems.
package resources

import (
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/gamemap"
	"ebiten-gridsim/geom"
)

// Resource kinds, as declared in system access sets
const (
	KindInput     ecs.Kind = "InputSnapshot"
	KindSelection ecs.Kind = "Selection"
	KindMap       ecs.Kind = "MapState"
)

// InputSnapshot is the decoded input for one step. The owning scene
// rewrites it before every dispatch.
type InputSnapshot struct {
	// Axis values in [-1, 1]
	Horizontal float64
	Vertical   float64
	// Mouse position in window coordinates
	Mouse geom.Vec2
	// True only on the step the button went down
	MousePressed bool
}

// Selection is the currently selected entity. A zero Entity means nothing
// is selected.
type Selection struct {
	Entity ecs.EntityID
	Locked bool
}

// Selected returns the selected entity, if any
func (s *Selection) Selected() (ecs.EntityID, bool) {
	return s.Entity, !s.Entity.IsZero()
}

// Select makes id the selection with the given lock state
func (s *Selection) Select(id ecs.EntityID, locked bool) {
	s.Entity = id
	s.Locked = locked
}

// Clear drops the selection and the lock
func (s *Selection) Clear() {
	s.Entity = 0
	s.Locked = false
}

// Bundle is the resource set of one scene
type Bundle struct {
	Input     *InputSnapshot
	Selection *Selection
	Map       *gamemap.Map
}

// NewBundle creates a bundle around m with empty input and selection
func NewBundle(m *gamemap.Map) *Bundle {
	return &Bundle{
		Input:     &InputSnapshot{},
		Selection: &Selection{},
		Map:       m,
	}
}

// Has reports whether the resource of the given kind is present
func (b *Bundle) Has(kind ecs.Kind) bool {
	switch kind {
	case KindInput:
		return b.Input != nil
	case KindSelection:
		return b.Selection != nil
	case KindMap:
		return b.Map != nil
	default:
		return false
	}
}
