package gamemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-gridsim/geom"
)

func newBuiltin(t *testing.T) *Map {
	t.Helper()
	m, err := New(BuiltinTiles(), BuiltinSide, 750, geom.V(10, 25))
	require.NoError(t, err)
	return m
}

func TestNew_RejectsBadTables(t *testing.T) {
	_, err := New(BuiltinTiles(), 14, 750, geom.Vec2{})
	assert.Error(t, err)
	_, err = New(nil, 0, 750, geom.Vec2{})
	assert.Error(t, err)
	_, err = New(BuiltinTiles(), BuiltinSide, 0, geom.Vec2{})
	assert.Error(t, err)
}

func TestCellSize(t *testing.T) {
	assert.Equal(t, 50.0, newBuiltin(t).CellSize())
}

func TestGridRoundTrip(t *testing.T) {
	m := newBuiltin(t)
	half := m.CellSize() / 2
	for c := range m.Tiles() {
		got, ok := m.GridOf(m.WorldOf(c).Add(geom.V(half, half)))
		require.True(t, ok, "cell %v", c)
		assert.Equal(t, c, got)
		assert.Equal(t, m.WorldOf(c).Add(geom.V(half, half)), m.CenterOf(c))
	}
}

func TestOnMap_RejectsOutsidePoints(t *testing.T) {
	m := newBuiltin(t)
	assert.True(t, m.OnMap(geom.V(10, 25)))
	assert.True(t, m.OnMap(geom.V(760, 775)))
	assert.False(t, m.OnMap(geom.V(9.9, 100)))
	assert.False(t, m.OnMap(geom.V(100, 24)))
	assert.False(t, m.OnMap(geom.V(760.1, 100)))

	_, ok := m.GridOf(geom.V(0, 0))
	assert.False(t, ok, "no clamping to the nearest cell")
}

func TestGridOf_FarEdgeIsNotACell(t *testing.T) {
	m := newBuiltin(t)
	_, ok := m.GridOf(geom.V(760, 100))
	assert.False(t, ok)

	c, ok := m.GridOf(geom.V(759.9, 774.9))
	require.True(t, ok)
	assert.Equal(t, geom.C(14, 14), c)
}

func TestWorldOf_TopLeftCorner(t *testing.T) {
	m := newBuiltin(t)
	assert.Equal(t, geom.V(10, 25), m.WorldOf(geom.C(0, 0)))
	assert.Equal(t, geom.V(560, 525), m.WorldOf(geom.C(11, 10)))
}

func TestTileAt_BuiltinLayout(t *testing.T) {
	m := newBuiltin(t)
	assert.Equal(t, TileWall, m.TileAt(geom.C(0, 0)))
	assert.Equal(t, TileFloor, m.TileAt(geom.C(1, 1)))
	assert.Equal(t, TileWater, m.TileAt(geom.C(10, 9)))
	assert.Equal(t, TileUndefined, m.TileAt(geom.C(15, 0)))
}

func TestViewCells_FiltersOutOfBounds(t *testing.T) {
	m := newBuiltin(t)
	square := []geom.Offset{
		{DX: -1, DY: -1}, {DX: 0, DY: -1}, {DX: 1, DY: -1},
		{DX: -1, DY: 0}, {DX: 0, DY: 0}, {DX: 1, DY: 0},
		{DX: -1, DY: 1}, {DX: 0, DY: 1}, {DX: 1, DY: 1},
	}
	assert.Len(t, m.ViewCells(square, geom.C(5, 5)), 9)

	corner := m.ViewCells(square, geom.C(0, 0))
	assert.ElementsMatch(t, []geom.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, corner)

	far := m.ViewCells(square, geom.C(14, 14))
	assert.Len(t, far, 4)
}

func TestHighlightState(t *testing.T) {
	m := newBuiltin(t)
	_, ok := m.SelectedTile()
	assert.False(t, ok)

	m.SetSelectedTile(geom.C(3, 4))
	c, ok := m.SelectedTile()
	require.True(t, ok)
	assert.Equal(t, geom.C(3, 4), c)
	m.ClearSelectedTile()
	_, ok = m.SelectedTile()
	assert.False(t, ok)

	view := []geom.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}}
	m.SetSelectedView(view)
	view[0] = geom.C(9, 9)
	assert.Equal(t, []geom.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}}, m.SelectedView(), "the map keeps its own copy")
	m.SetSelectedView(nil)
	assert.Nil(t, m.SelectedView())
}

func TestParseTiles(t *testing.T) {
	tiles, side, err := ParseTiles([]byte("rows:\n  - [0, 0, 0]\n  - [0, 2, 0]\n  - [0, 0, 7]\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, side)
	assert.Equal(t, TileWater, tiles[4])
	assert.Equal(t, TileUndefined, tiles[8], "unknown values are undefined tiles")

	_, _, err = ParseTiles([]byte("rows:\n  - [0, 0]\n  - [0]\n"))
	assert.Error(t, err)
	_, _, err = ParseTiles([]byte("rows: []\n"))
	assert.Error(t, err)
}
