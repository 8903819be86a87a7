package components

import (
	"fmt"
	"slices"

	"ebiten-gridsim/geom"
)

// ShapeKind selects one of the view shapes
type ShapeKind int

const (
	// ShapeSquare covers every cell within Chebyshev distance 1
	ShapeSquare ShapeKind = iota
	// ShapeDiamond covers every cell within Manhattan distance 1
	ShapeDiamond
	// ShapeTriangle covers the origin and the three cells ahead (towards -Y)
	ShapeTriangle

	shapeCount
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSquare:
		return "square"
	case ShapeDiamond:
		return "diamond"
	case ShapeTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("shape(%d)", int(k))
	}
}

// ParseShape parses the String form of a shape kind
func ParseShape(s string) (ShapeKind, error) {
	for k := ShapeSquare; k < shapeCount; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return ShapeSquare, fmt.Errorf("unknown view shape %q", s)
}

// Next cycles square -> diamond -> triangle -> square
func (k ShapeKind) Next() ShapeKind {
	return (k + 1) % shapeCount
}

// ShapeOffsets returns a fresh offset list for k. Every list contains the
// origin. Unknown kinds fall back to the square.
func ShapeOffsets(k ShapeKind) []geom.Offset {
	switch k {
	case ShapeDiamond:
		return []geom.Offset{
			{DX: 0, DY: -1},
			{DX: -1, DY: 0}, {DX: 0, DY: 0}, {DX: 1, DY: 0},
			{DX: 0, DY: 1},
		}
	case ShapeTriangle:
		return []geom.Offset{
			{DX: -1, DY: -1}, {DX: 0, DY: -1}, {DX: 1, DY: -1},
			{DX: 0, DY: 0},
		}
	default:
		offsets := make([]geom.Offset, 0, 9)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				offsets = append(offsets, geom.Offset{DX: dx, DY: dy})
			}
		}
		return offsets
	}
}

// ViewShape is the set of cells an entity sees, relative to its own cell
type ViewShape struct {
	Kind    ShapeKind
	Offsets []geom.Offset
}

// NewViewShape creates a view shape of kind k
func NewViewShape(k ShapeKind) ViewShape {
	if k < 0 || k >= shapeCount {
		k = ShapeSquare
	}
	return ViewShape{Kind: k, Offsets: ShapeOffsets(k)}
}

// SetShape replaces the offset list wholesale
func (v *ViewShape) SetShape(k ShapeKind) {
	*v = NewViewShape(k)
}

// Contains reports whether o is part of the shape
func (v ViewShape) Contains(o geom.Offset) bool {
	return slices.Contains(v.Offsets, o)
}
