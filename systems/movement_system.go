package systems

import (
	"ebiten-gridsim/components"
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/resources"
	"ebiten-gridsim/scheduler"
)

// MovementSystem moves entities cell by cell along their velocity. The
// outer ring of the grid is impassable.
type MovementSystem struct {
	bias float64
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(bias float64) *MovementSystem {
	return &MovementSystem{bias: bias}
}

// Access implements scheduler.System
func (s *MovementSystem) Access() scheduler.Access {
	return scheduler.Access{
		ReadComponents:  []ecs.Kind{components.KindMotion},
		WriteComponents: []ecs.Kind{components.KindTransform},
		ReadResources:   []ecs.Kind{resources.KindMap},
	}
}

// Run implements scheduler.System
func (s *MovementSystem) Run(ctx *scheduler.Context) {
	grid := ctx.Res.Map
	cellCount := grid.CellCount()

	for row := range ecs.Join2(ctx.World.Motions, ctx.World.Transforms) {
		transform := row.B
		dx, dy := row.A.Velocity.Round()

		from := transform.Cell
		transform.Cell.X = stepAxis(from.X, dx, cellCount)
		transform.Cell.Y = stepAxis(from.Y, dy, cellCount)
		transform.Snap(grid, s.bias)

		if transform.Cell != from {
			ctx.World.Events().Emit(MoveEvent{
				Entity: row.Entity,
				From:   from,
				To:     transform.Cell,
			})
		}
	}
}

// stepAxis returns cur+delta if that stays strictly inside the border ring,
// otherwise cur. The axis is rejected, not clamped.
func stepAxis(cur uint32, delta, cellCount int) uint32 {
	candidate := int64(cur) + int64(delta)
	if candidate > 0 && candidate < int64(cellCount)-1 {
		return uint32(candidate)
	}
	return cur
}
