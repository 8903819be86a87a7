// Package generation builds the tile table a level is played on.
package generation

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"ebiten-gridsim/config"
	"ebiten-gridsim/gamemap"
	"ebiten-gridsim/geom"
)

// Perlin parameters, matching the smooth low-frequency terrain used for
// water patches
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3

	// Noise frequency in cells
	perlinScale = 0.18

	// Normalised noise above which a floor cell becomes water
	waterThreshold = 0.62
)

// NewMap builds the map described by cfg
func NewMap(cfg config.MapConfig) (*gamemap.Map, error) {
	tiles, err := Tiles(cfg)
	if err != nil {
		return nil, err
	}
	return gamemap.New(tiles, cfg.CellCount, cfg.Size, geom.V(cfg.OffsetX, cfg.OffsetY))
}

// Tiles returns the row-major tile table for cfg
func Tiles(cfg config.MapConfig) ([]gamemap.Tile, error) {
	switch cfg.Source {
	case config.MapSourceBuiltin, "":
		if cfg.CellCount == gamemap.BuiltinSide {
			return gamemap.BuiltinTiles(), nil
		}
		return WalledFloor(cfg.CellCount), nil
	case config.MapSourcePerlin:
		return PerlinTiles(cfg.CellCount, cfg.Seed), nil
	case config.MapSourceFile:
		tiles, side, err := gamemap.LoadTiles(cfg.File)
		if err != nil {
			return nil, err
		}
		if side != cfg.CellCount {
			return nil, fmt.Errorf("tile table %s is %dx%d but map.cell_count is %d", cfg.File, side, side, cfg.CellCount)
		}
		return tiles, nil
	default:
		return nil, fmt.Errorf("unknown map source %q", cfg.Source)
	}
}

// WalledFloor returns a floor table with a one-cell wall ring
func WalledFloor(side int) []gamemap.Tile {
	tiles := make([]gamemap.Tile, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			tiles[y*side+x] = gamemap.TileFloor
			if isBorder(x, y, side) {
				tiles[y*side+x] = gamemap.TileWall
			}
		}
	}
	return tiles
}

// PerlinTiles returns a walled floor table with water wherever the noise
// field rises above the threshold. The same seed always yields the same
// table.
func PerlinTiles(side int, seed int64) []gamemap.Tile {
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	tiles := WalledFloor(side)
	for y := 1; y < side-1; y++ {
		for x := 1; x < side-1; x++ {
			// Noise2D is roughly in [-1, 1]
			v := (noise.Noise2D(float64(x)*perlinScale, float64(y)*perlinScale) + 1) / 2
			if v > waterThreshold {
				tiles[y*side+x] = gamemap.TileWater
			}
		}
	}
	return tiles
}

func isBorder(x, y, side int) bool {
	return x == 0 || y == 0 || x == side-1 || y == side-1
}
