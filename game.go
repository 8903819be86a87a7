package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-gridsim/logger"
	"ebiten-gridsim/scenes"
)

// Game implements ebiten.Game on top of a scene stack
type Game struct {
	world   *scenes.World
	stack   *scenes.Stack
	keys    *KeyMap
	overlay *DebugOverlay
}

// NewGame creates a game driving stack
func NewGame(world *scenes.World, stack *scenes.Stack, messages *logger.MessageLog) *Game {
	return &Game{
		world:   world,
		stack:   stack,
		keys:    NewKeyMap(),
		overlay: NewDebugOverlay(messages),
	}
}

// Update runs one fixed step: input events, overlay keys, then the top scene
func (g *Game) Update() error {
	for _, ev := range g.keys.Poll() {
		g.stack.Input(g.world, ev)
	}
	g.overlay.Update(g.stack.Top())

	g.stack.Update(g.world)

	if g.stack.Empty() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the top scene and the overlay
func (g *Game) Draw(screen *ebiten.Image) {
	drawFrame(screen, g.stack.Frame())
	g.overlay.Draw(screen, g.world, g.stack.Top())
}

// Layout keeps the logical screen at the configured window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Config.Window.Width, g.world.Config.Window.Height
}

// Close releases every scene still on the stack
func (g *Game) Close() {
	g.stack.Clear()
}
