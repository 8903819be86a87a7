package components

import (
	"ebiten-gridsim/geom"
)

// Centerer maps a grid cell to its world-space center
type Centerer interface {
	CenterOf(c geom.Cell) geom.Vec2
}

// Transform places an entity on the grid. Cell is authoritative; Position is
// always derived from it by Snap.
type Transform struct {
	Position geom.Vec2
	Cell     geom.Cell
	Rotation float64
	Size     float64
}

// NewTransform creates a transform at cell with its position already derived
func NewTransform(grid Centerer, cell geom.Cell, size, bias float64) Transform {
	t := Transform{Cell: cell, Size: size}
	t.Snap(grid, bias)
	return t
}

// Snap recomputes Position from Cell:
// center of the cell, minus half the entity size, minus the pixel bias.
func (t *Transform) Snap(grid Centerer, bias float64) {
	t.Position = CenteredPosition(grid, t.Cell, t.Size, bias)
}

// CenteredPosition is the world position of an entity of the given size
// sitting on cell
func CenteredPosition(grid Centerer, cell geom.Cell, size, bias float64) geom.Vec2 {
	shift := size/2 + bias
	return grid.CenterOf(cell).Sub(geom.V(shift, shift))
}
