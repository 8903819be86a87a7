package systems

import (
	"ebiten-gridsim/components"
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/geom"
	"ebiten-gridsim/resources"
	"ebiten-gridsim/scheduler"
)

// InputSystem copies the input axes into the velocity of every
// input-controlled entity
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Access implements scheduler.System
func (s *InputSystem) Access() scheduler.Access {
	return scheduler.Access{
		ReadComponents:  []ecs.Kind{components.KindInputController},
		WriteComponents: []ecs.Kind{components.KindMotion},
		ReadResources:   []ecs.Kind{resources.KindInput},
	}
}

// Run implements scheduler.System
func (s *InputSystem) Run(ctx *scheduler.Context) {
	in := ctx.Res.Input
	velocity := geom.V(in.Horizontal, in.Vertical)
	for row := range ecs.Join2(ctx.World.Controllers, ctx.World.Motions) {
		row.B.Velocity = velocity
	}
}
