package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no config path
// is given on the command line
const EnvConfigPath = "GRIDSIM_CONFIG"

// Map tile sources
const (
	MapSourceBuiltin = "builtin"
	MapSourcePerlin  = "perlin"
	MapSourceFile    = "file"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the root configuration of the simulation
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Map       MapConfig       `yaml:"map"`
	Entity    EntityConfig    `yaml:"entity"`
	Network   NetworkConfig   `yaml:"network"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Log       LogConfig       `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type MapConfig struct {
	Size      float64 `yaml:"size"`
	CellCount int     `yaml:"cell_count"`
	OffsetX   float64 `yaml:"offset_x"`
	OffsetY   float64 `yaml:"offset_y"`
	Source    string  `yaml:"source"`
	Seed      int64   `yaml:"seed"`
	File      string  `yaml:"file"`
}

// CellSize returns the side length of one cell in pixels
func (m MapConfig) CellSize() float64 {
	return m.Size / float64(m.CellCount)
}

type EntityConfig struct {
	Size      float64 `yaml:"size"`
	PixelBias float64 `yaml:"pixel_bias"`
	SpawnX    uint32  `yaml:"spawn_x"`
	SpawnY    uint32  `yaml:"spawn_y"`
	// Templates is an optional directory of JSON agent templates, loaded
	// over the built-in ones
	Templates string `yaml:"templates"`
	// Seed drives the debug spawner; 0 picks one from the clock
	Seed int64 `yaml:"seed"`
}

// NetworkConfig configures the optional position broadcast. An empty URL
// disables it.
type NetworkConfig struct {
	URL         string        `yaml:"url"`
	QueueSize   int           `yaml:"queue_size"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

type SchedulerConfig struct {
	Parallel bool `yaml:"parallel"`
}

type MetricsConfig struct {
	// Addr is the listen address of the /metrics endpoint; empty disables it
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Grid Sim",
		},
		Map: MapConfig{
			Size:      MapSize,
			CellCount: CellCount,
			OffsetX:   MapOffsetX,
			OffsetY:   MapOffsetY,
			Source:    MapSourceBuiltin,
		},
		Entity: EntityConfig{
			Size:      EntitySize,
			PixelBias: EntityPixelBias,
			SpawnX:    SpawnCellX,
			SpawnY:    SpawnCellY,
		},
		Network: NetworkConfig{
			QueueSize:   SendQueueSize,
			DialTimeout: DialTimeout,
		},
		Scheduler: SchedulerConfig{Parallel: true},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults. With an empty path it tries the
// GRIDSIM_CONFIG environment variable and falls back to Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the geometry and the enumerated fields
func (c *Config) Validate() error {
	if c.Map.CellCount < 3 {
		return fmt.Errorf("%w: map.cell_count must be at least 3, got %d", ErrInvalid, c.Map.CellCount)
	}
	if c.Map.Size <= 0 {
		return fmt.Errorf("%w: map.size must be positive", ErrInvalid)
	}
	switch c.Map.Source {
	case MapSourceBuiltin, MapSourcePerlin:
	case MapSourceFile:
		if c.Map.File == "" {
			return fmt.Errorf("%w: map.file is required when map.source is %q", ErrInvalid, MapSourceFile)
		}
	default:
		return fmt.Errorf("%w: unknown map.source %q", ErrInvalid, c.Map.Source)
	}
	if c.Entity.Size < 0 {
		return fmt.Errorf("%w: entity.size must not be negative", ErrInvalid)
	}
	if int(c.Entity.SpawnX) >= c.Map.CellCount || int(c.Entity.SpawnY) >= c.Map.CellCount {
		return fmt.Errorf("%w: entity spawn cell (%d,%d) is off the map", ErrInvalid, c.Entity.SpawnX, c.Entity.SpawnY)
	}
	if c.Network.URL != "" {
		u, err := url.Parse(c.Network.URL)
		if err != nil {
			return fmt.Errorf("%w: network.url: %v", ErrInvalid, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: network.url %q needs a scheme and host", ErrInvalid, c.Network.URL)
		}
	}
	if c.Network.QueueSize <= 0 {
		c.Network.QueueSize = SendQueueSize
	}
	if c.Network.DialTimeout <= 0 {
		c.Network.DialTimeout = DialTimeout
	}
	return nil
}
