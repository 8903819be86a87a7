// Package systems holds the per-frame simulation logic run by the scheduler.
package systems

import (
	"ebiten-gridsim/metrics"
	"ebiten-gridsim/scheduler"
)

// System names, as used for dependencies and metrics
const (
	NameInput     = "sys_input"
	NameNetwork   = "sys_network"
	NameMovement  = "sys_movement"
	NameSelection = "sys_selection"
	NameHighlight = "sys_highlight"
)

// Options configures the level systems
type Options struct {
	// PixelBias is subtracted from every snapped world position
	PixelBias float64
	Metrics   *metrics.Collector
}

// Register adds the level's systems with their dependencies to b
func Register(b *scheduler.Builder, opts Options) *scheduler.Builder {
	return b.
		With(NewInputSystem(), NameInput).
		With(NewNetworkSystem(opts.Metrics), NameNetwork).
		With(NewMovementSystem(opts.PixelBias), NameMovement, NameInput).
		With(NewSelectionSystem(), NameSelection).
		With(NewHighlightSystem(), NameHighlight, NameSelection, NameMovement)
}
