// Package gamemap holds the static tile grid, the transforms between world
// space and grid cells, and the highlight state read by the renderer.
package gamemap

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"ebiten-gridsim/geom"
)

// Map is a square grid of tiles placed at Origin in world space.
// The highlight state is presentation only and never feeds back into the
// simulation.
type Map struct {
	tiles     []Tile
	cellCount int
	size      float64
	origin    geom.Vec2

	selectedTile    geom.Cell
	hasSelectedTile bool
	selectedView    []geom.Cell
}

// New creates a map from a row-major tile table of cellCount*cellCount
// entries spanning size pixels per side.
func New(tiles []Tile, cellCount int, size float64, origin geom.Vec2) (*Map, error) {
	if cellCount <= 0 {
		return nil, fmt.Errorf("cell count must be positive, got %d", cellCount)
	}
	if size <= 0 {
		return nil, fmt.Errorf("map size must be positive, got %v", size)
	}
	if len(tiles) != cellCount*cellCount {
		return nil, fmt.Errorf("tile table has %d entries, want %d", len(tiles), cellCount*cellCount)
	}
	return &Map{
		tiles:     slices.Clone(tiles),
		cellCount: cellCount,
		size:      size,
		origin:    origin,
	}, nil
}

// CellCount returns the number of cells per side
func (m *Map) CellCount() int { return m.cellCount }

// Size returns the side length in pixels
func (m *Map) Size() float64 { return m.size }

// Origin returns the world position of the map's top-left corner
func (m *Map) Origin() geom.Vec2 { return m.origin }

// CellSize returns the side length of one cell in pixels
func (m *Map) CellSize() float64 {
	return m.size / float64(m.cellCount)
}

// OnMap reports whether p lies within the map rectangle, edges included
func (m *Map) OnMap(p geom.Vec2) bool {
	return p.X >= m.origin.X && p.Y >= m.origin.Y &&
		p.X <= m.origin.X+m.size && p.Y <= m.origin.Y+m.size
}

// InBounds reports whether c is a cell of this map
func (m *Map) InBounds(c geom.Cell) bool {
	return int64(c.X) < int64(m.cellCount) && int64(c.Y) < int64(m.cellCount)
}

// GridOf returns the cell under world point p. Points off the map, including
// the far edges which would land one past the last cell, report false.
func (m *Map) GridOf(p geom.Vec2) (geom.Cell, bool) {
	if !m.OnMap(p) {
		return geom.Cell{}, false
	}
	cs := m.CellSize()
	c := geom.Cell{
		X: uint32(math.Floor((p.X - m.origin.X) / cs)),
		Y: uint32(math.Floor((p.Y - m.origin.Y) / cs)),
	}
	if !m.InBounds(c) {
		return geom.Cell{}, false
	}
	return c, true
}

// WorldOf returns the world position of c's top-left corner
func (m *Map) WorldOf(c geom.Cell) geom.Vec2 {
	cs := m.CellSize()
	return geom.Vec2{
		X: m.origin.X + float64(c.X)*cs,
		Y: m.origin.Y + float64(c.Y)*cs,
	}
}

// CenterOf returns the world position of c's center
func (m *Map) CenterOf(c geom.Cell) geom.Vec2 {
	half := m.CellSize() / 2
	return m.WorldOf(c).Add(geom.V(half, half))
}

// TileAt returns the tile at c, or TileUndefined off the map
func (m *Map) TileAt(c geom.Cell) Tile {
	if !m.InBounds(c) {
		return TileUndefined
	}
	return m.tiles[int(c.Y)*m.cellCount+int(c.X)]
}

// Tiles yields every cell with its tile, row by row
func (m *Map) Tiles() iter.Seq2[geom.Cell, Tile] {
	return func(yield func(geom.Cell, Tile) bool) {
		for i, t := range m.tiles {
			c := geom.Cell{X: uint32(i % m.cellCount), Y: uint32(i / m.cellCount)}
			if !yield(c, t) {
				return
			}
		}
	}
}

// ViewCells translates offsets around center and keeps the in-bounds cells,
// preserving offset order
func (m *Map) ViewCells(offsets []geom.Offset, center geom.Cell) []geom.Cell {
	cells := make([]geom.Cell, 0, len(offsets))
	for _, o := range offsets {
		c, ok := center.Translate(o)
		if !ok || !m.InBounds(c) {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}

// SetSelectedTile highlights c
func (m *Map) SetSelectedTile(c geom.Cell) {
	m.selectedTile = c
	m.hasSelectedTile = true
}

// ClearSelectedTile removes the cell highlight
func (m *Map) ClearSelectedTile() {
	m.hasSelectedTile = false
}

// SelectedTile returns the highlighted cell, if any
func (m *Map) SelectedTile() (geom.Cell, bool) {
	return m.selectedTile, m.hasSelectedTile
}

// SetSelectedView highlights a set of cells; nil clears it
func (m *Map) SetSelectedView(cells []geom.Cell) {
	if cells == nil {
		m.selectedView = nil
		return
	}
	m.selectedView = slices.Clone(cells)
}

// SelectedView returns the highlighted cell set, nil when none
func (m *Map) SelectedView() []geom.Cell {
	return m.selectedView
}
