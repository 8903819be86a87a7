// Package scenes holds the scene stack and the scenes of the simulation.
// Scenes never draw; they export a Frame that the front end renders.
package scenes

import (
	"context"

	"github.com/sirupsen/logrus"

	"ebiten-gridsim/config"
	"ebiten-gridsim/data"
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/gamemap"
	"ebiten-gridsim/geom"
	"ebiten-gridsim/input"
	"ebiten-gridsim/logger"
	"ebiten-gridsim/metrics"
	"ebiten-gridsim/network"
	"ebiten-gridsim/resources"
)

// Scene represents one entry of the scene stack
type Scene interface {
	// Name identifies the scene in logs
	Name() string
	// Update advances the scene by one step and tells the stack what to do
	// next. The stack applies the transition after Update returns.
	Update(w *World) Transition
	// Input handles one decoded input event. Only the top scene gets events.
	Input(w *World, ev input.Event)
	// Frame exports what the front end should draw
	Frame() Frame
}

// Closer is implemented by scenes that hold resources to release when they
// leave the stack
type Closer interface {
	Close() error
}

// DialFunc opens the position broadcast transport
type DialFunc func(ctx context.Context, cfg config.NetworkConfig) (network.Transport, error)

// World holds the collaborators shared by every scene
type World struct {
	Input     *input.State
	Config    *config.Config
	Templates *data.TemplateManager
	Dial      DialFunc
	Metrics   *metrics.Collector
	Log       *logrus.Entry
}

// NewWorld creates a world with fresh input state. A nil dial disables the
// broadcast; m may be nil.
func NewWorld(cfg *config.Config, templates *data.TemplateManager, dial DialFunc, m *metrics.Collector) *World {
	if templates == nil {
		templates = data.NewTemplateManager()
	}
	return &World{
		Input:     input.NewState(),
		Config:    cfg,
		Templates: templates,
		Dial:      dial,
		Metrics:   m,
		Log:       logger.WithComponent("scenes"),
	}
}

// Frame is the render data of one scene
type Frame struct {
	Title string
	// Lines is free text, used by menus
	Lines []string

	// Map is nil for scenes without a level
	Map       *gamemap.Map
	Agents    []AgentView
	Selection resources.Selection
}

// AgentView is one entity as the renderer sees it
type AgentView struct {
	Entity     ecs.EntityID
	Name       string
	Cell       geom.Cell
	Position   geom.Vec2
	Size       float64
	Controlled bool
	Selected   bool
}
