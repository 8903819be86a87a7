package systems

import (
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/geom"
)

// Event type constants
const (
	EventMovement  ecs.EventType = "movement"
	EventSelection ecs.EventType = "selection"
)

// MoveEvent is emitted when an entity's cell changes
type MoveEvent struct {
	Entity ecs.EntityID
	From   geom.Cell
	To     geom.Cell
}

// Type returns the event type
func (e MoveEvent) Type() ecs.EventType {
	return EventMovement
}

// SelectionEvent is emitted whenever the selected entity or its lock changes.
// A zero Entity means the selection was cleared.
type SelectionEvent struct {
	Entity   ecs.EntityID
	Previous ecs.EntityID
	Locked   bool
}

// Type returns the event type
func (e SelectionEvent) Type() ecs.EventType {
	return EventSelection
}
