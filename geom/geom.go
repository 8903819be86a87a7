// Package geom holds the small value types shared by the map, the component
// store and the systems: world-space vectors and grid cells.
package geom

import "math"

// Vec2 is a point or vector in world (pixel) space
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Round rounds both components half away from zero
func (v Vec2) Round() (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

// Cell is a grid coordinate. Cells are always non-negative; bounds against the
// map size are enforced by the map, not by this type.
type Cell struct {
	X, Y uint32
}

// C is shorthand for Cell{x, y}
func C(x, y uint32) Cell {
	return Cell{X: x, Y: y}
}

// Offset is a signed relative cell displacement
type Offset struct {
	DX, DY int
}

// Translate applies o to c. The second result is false when the result would
// have a negative coordinate.
func (c Cell) Translate(o Offset) (Cell, bool) {
	x := int64(c.X) + int64(o.DX)
	y := int64(c.Y) + int64(o.DY)
	if x < 0 || y < 0 || x > math.MaxUint32 || y > math.MaxUint32 {
		return Cell{}, false
	}
	return Cell{X: uint32(x), Y: uint32(y)}, true
}
