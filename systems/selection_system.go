package systems

import (
	"ebiten-gridsim/components"
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/gamemap"
	"ebiten-gridsim/geom"
	"ebiten-gridsim/resources"
	"ebiten-gridsim/scheduler"
)

// SelectionSystem implements hover-to-select and click-to-lock.
//
// Unlocked, the selection follows whatever entity sits in the cell under the
// mouse. A press on an entity selects and locks it; a press on the locked
// entity unlocks and deselects it. While locked, hovering elsewhere keeps the
// selection and only a press on another entity moves it.
type SelectionSystem struct{}

// NewSelectionSystem creates a new selection system
func NewSelectionSystem() *SelectionSystem {
	return &SelectionSystem{}
}

// Access implements scheduler.System
func (s *SelectionSystem) Access() scheduler.Access {
	return scheduler.Access{
		ReadComponents: []ecs.Kind{components.KindTransform},
		ReadResources:  []ecs.Kind{resources.KindInput, resources.KindMap},
		WriteResources: []ecs.Kind{resources.KindSelection},
	}
}

// Run implements scheduler.System
func (s *SelectionSystem) Run(ctx *scheduler.Context) {
	sel := ctx.Res.Selection
	before := *sel
	defer func() {
		if *sel != before {
			ctx.World.Events().Emit(SelectionEvent{
				Entity:   sel.Entity,
				Previous: before.Entity,
				Locked:   sel.Locked,
			})
		}
	}()

	// the selected entity may have been destroyed since the last frame
	if current, ok := sel.Selected(); ok && !ctx.World.Transforms.Has(current) {
		sel.Clear()
	}

	in := ctx.Res.Input
	hit, found := entityUnder(ctx.World, ctx.Res.Map, in.Mouse)
	if !found {
		if !sel.Locked {
			sel.Clear()
		}
		return
	}

	if current, ok := sel.Selected(); ok && current == hit {
		if in.MousePressed {
			if sel.Locked {
				sel.Clear()
			} else {
				sel.Locked = true
			}
		}
		return
	}

	if sel.Locked && !in.MousePressed {
		return
	}
	sel.Select(hit, in.MousePressed)
}

// entityUnder returns the first entity whose cell is the cell under p
func entityUnder(world *components.Registry, grid *gamemap.Map, p geom.Vec2) (ecs.EntityID, bool) {
	cell, ok := grid.GridOf(p)
	if !ok {
		return 0, false
	}
	for id, t := range world.Transforms.All() {
		if t.Cell == cell {
			return id, true
		}
	}
	return 0, false
}
