package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-gridsim/components"
	"ebiten-gridsim/logger"
	"ebiten-gridsim/scenes"
)

// Keys that change a selected agent's view shape
var shapeKeys = map[ebiten.Key]components.ShapeKind{
	ebiten.Key1: components.ShapeSquare,
	ebiten.Key2: components.ShapeDiamond,
	ebiten.Key3: components.ShapeTriangle,
}

// DebugOverlay shows the simulation state and recent log lines on top of
// the running scene
type DebugOverlay struct {
	visible    bool
	width      int
	height     int
	background color.Color
	frameColor color.Color
	messages   *logger.MessageLog
}

// NewDebugOverlay creates a hidden overlay reading from messages
func NewDebugOverlay(messages *logger.MessageLog) *DebugOverlay {
	return &DebugOverlay{
		width:      420,
		height:     360,
		background: color.RGBA{0, 0, 0, 200},
		frameColor: color.White,
		messages:   messages,
	}
}

// Visible reports whether the overlay is shown
func (o *DebugOverlay) Visible() bool { return o.visible }

// Update handles the overlay keys. F1 toggles the overlay; while it is shown
// N spawns a random agent and 1-3 reshape the selected agent's view.
func (o *DebugOverlay) Update(top scenes.Scene) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
	if !o.visible {
		return
	}

	level, ok := top.(*scenes.LevelScene)
	if !ok {
		return
	}
	log := logger.WithComponent("debug")

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if id, err := level.SpawnRandom(); err != nil {
			log.WithError(err).Warn("Debug spawn failed")
		} else {
			log.WithField("entity", id).Info("Debug spawn")
		}
	}
	for key, kind := range shapeKeys {
		if inpututil.IsKeyJustPressed(key) && !level.SetSelectedShape(kind) {
			log.Debug("No shaped entity selected")
		}
	}
}

// Draw renders the overlay in the top-right corner
func (o *DebugOverlay) Draw(screen *ebiten.Image, w *scenes.World, top scenes.Scene) {
	if !o.visible {
		return
	}

	x := float32(screen.Bounds().Dx() - o.width - 10)
	y := float32(10)
	vector.DrawFilledRect(screen, x, y, float32(o.width), float32(o.height), o.background, false)
	vector.StrokeRect(screen, x, y, float32(o.width), float32(o.height), 2, o.frameColor, false)

	lines := o.stateLines(w, top)
	lines = append(lines, "", "N: spawn  1/2/3: view shape  F1: close", "")
	lines = append(lines, o.messages.Recent(8)...)

	lineHeight := 16
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(x)+10, int(y)+10+i*lineHeight)
	}
}

func (o *DebugOverlay) stateLines(w *scenes.World, top scenes.Scene) []string {
	mouse := w.Input.Mouse()
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Mouse: %.0f,%.0f", mouse.X, mouse.Y),
	}

	level, ok := top.(*scenes.LevelScene)
	if !ok {
		return lines
	}

	lines = append(lines, fmt.Sprintf("Entities: %d", level.Registry().Count()))

	sel := level.Selection()
	if id, ok := sel.Selected(); ok {
		line := fmt.Sprintf("Selected: %s locked=%t", id, sel.Locked)
		if t, ok := level.Registry().Transforms.Get(id); ok {
			line += fmt.Sprintf(" cell=%d,%d pos=%.0f,%.0f", t.Cell.X, t.Cell.Y, t.Position.X, t.Position.Y)
		}
		lines = append(lines, line)
	} else {
		lines = append(lines, "Selected: none")
	}

	for i, stage := range level.Dispatcher().Stages() {
		lines = append(lines, fmt.Sprintf("Stage %d: %v", i, stage))
	}
	return lines
}
