package config

import "time"

// Screen layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 1200
	WindowHeight = 800

	// Simulation steps per second
	TPS = 60
)

// Map geometry defaults
const (
	// Side length of the map in pixels
	MapSize = 750.0

	// Number of cells per side
	CellCount = 15

	// Top-left corner of the map inside the window
	MapOffsetX = 10.0
	MapOffsetY = 25.0
)

// Entity defaults
const (
	// Visual diameter of an agent in pixels
	EntitySize = 24.0

	// Constant nudge subtracted from the centered position of every entity
	EntityPixelBias = 1.0

	// Cell where the first agent of a level appears
	SpawnCellX = 7
	SpawnCellY = 7
)

// Network defaults
const (
	SendQueueSize = 64
	DialTimeout   = 3 * time.Second
)

// StepDuration is the length of one fixed simulation step
const StepDuration = time.Second / TPS

// GetWindowSize returns the recommended window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
