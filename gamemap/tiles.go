package gamemap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tile is the kind of one map cell
type Tile int

// Tile kinds. The numeric values are part of the on-disk table format.
const (
	TileUndefined Tile = -1
	TileWall      Tile = 0
	TileFloor     Tile = 1
	TileWater     Tile = 2
)

func (t Tile) String() string {
	switch t {
	case TileUndefined:
		return "undefined"
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileWater:
		return "water"
	default:
		return fmt.Sprintf("tile(%d)", int(t))
	}
}

// ParseTile converts a table value into a Tile. Unknown values map to
// TileUndefined and report false.
func ParseTile(v int) (Tile, bool) {
	switch t := Tile(v); t {
	case TileUndefined, TileWall, TileFloor, TileWater:
		return t, true
	default:
		return TileUndefined, false
	}
}

// BuiltinSide is the side length of the builtin table
const BuiltinSide = 15

// Builtin is the default 15x15 table, row-major: a wall ring around floor
// with a 3x3 pond.
var Builtin = [BuiltinSide * BuiltinSide]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// BuiltinTiles returns a copy of the builtin table as tiles
func BuiltinTiles() []Tile {
	tiles := make([]Tile, len(Builtin))
	for i, v := range Builtin {
		tiles[i], _ = ParseTile(v)
	}
	return tiles
}

// FromInts converts a row-major table of side*side values. Unknown values
// become TileUndefined.
func FromInts(side int, values []int) ([]Tile, error) {
	if len(values) != side*side {
		return nil, fmt.Errorf("tile table has %d values, want %d", len(values), side*side)
	}
	tiles := make([]Tile, len(values))
	for i, v := range values {
		tiles[i], _ = ParseTile(v)
	}
	return tiles, nil
}

// tableFile is the YAML layout of a tile table file
type tableFile struct {
	Rows [][]int `yaml:"rows"`
}

// LoadTiles reads a square tile table from a YAML file of the form
//
//	rows:
//	  - [0, 0, 0]
//	  - [0, 1, 0]
//	  - [0, 0, 0]
//
// and returns it row-major with its side length.
func LoadTiles(path string) ([]Tile, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read tile table: %w", err)
	}
	return ParseTiles(data)
}

// ParseTiles decodes the YAML form accepted by LoadTiles
func ParseTiles(data []byte) ([]Tile, int, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, 0, fmt.Errorf("parse tile table: %w", err)
	}
	side := len(f.Rows)
	if side == 0 {
		return nil, 0, fmt.Errorf("tile table is empty")
	}
	values := make([]int, 0, side*side)
	for y, row := range f.Rows {
		if len(row) != side {
			return nil, 0, fmt.Errorf("tile table row %d has %d cells, want %d", y, len(row), side)
		}
		values = append(values, row...)
	}
	tiles, err := FromInts(side, values)
	if err != nil {
		return nil, 0, err
	}
	return tiles, side, nil
}
