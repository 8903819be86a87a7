package systems

import (
	"ebiten-gridsim/components"
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/resources"
	"ebiten-gridsim/scheduler"
)

// HighlightSystem updates the map's presentation state: the cell under the
// mouse and the view of the selected entity
type HighlightSystem struct{}

// NewHighlightSystem creates a new highlight system
func NewHighlightSystem() *HighlightSystem {
	return &HighlightSystem{}
}

// Access implements scheduler.System
func (s *HighlightSystem) Access() scheduler.Access {
	return scheduler.Access{
		ReadComponents: []ecs.Kind{components.KindTransform, components.KindViewShape},
		ReadResources:  []ecs.Kind{resources.KindInput, resources.KindSelection},
		WriteResources: []ecs.Kind{resources.KindMap},
	}
}

// Run implements scheduler.System
func (s *HighlightSystem) Run(ctx *scheduler.Context) {
	grid := ctx.Res.Map

	if cell, ok := grid.GridOf(ctx.Res.Input.Mouse); ok {
		grid.SetSelectedTile(cell)
	} else {
		grid.ClearSelectedTile()
	}

	id, ok := ctx.Res.Selection.Selected()
	if !ok {
		grid.SetSelectedView(nil)
		return
	}
	// presence is re-checked every frame; the entity may be gone
	transform, hasTransform := ctx.World.Transforms.Get(id)
	shape, hasShape := ctx.World.ViewShapes.Get(id)
	if !hasTransform || !hasShape {
		grid.SetSelectedView(nil)
		return
	}
	grid.SetSelectedView(grid.ViewCells(shape.Offsets, transform.Cell))
}
