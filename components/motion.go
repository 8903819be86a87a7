package components

import "ebiten-gridsim/geom"

// Motion carries an entity's velocity in cells per step. Acceleration is
// stored but not integrated by any system yet.
type Motion struct {
	Velocity     geom.Vec2
	Acceleration geom.Vec2
}
