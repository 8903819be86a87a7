package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-gridsim/gamemap"
	"ebiten-gridsim/scenes"
)

// Palette
var (
	colorBackground = color.RGBA{20, 20, 28, 255}
	colorWall       = color.RGBA{70, 64, 60, 255}
	colorFloor      = color.RGBA{150, 140, 110, 255}
	colorWater      = color.RGBA{60, 110, 170, 255}
	colorUndefined  = color.RGBA{0, 0, 0, 255}
	colorGridLine   = color.RGBA{0, 0, 0, 60}
	colorView       = color.RGBA{255, 230, 150, 70}
	colorHover      = color.RGBA{255, 255, 255, 200}
	colorAgent      = color.RGBA{255, 0, 126, 204}
	colorObserver   = color.RGBA{90, 200, 120, 204}
	colorOutline    = color.RGBA{0, 0, 0, 204}
	colorSelected   = color.RGBA{255, 255, 255, 255}
	colorTitle      = color.RGBA{255, 230, 150, 255}
)

func tileColor(t gamemap.Tile) color.Color {
	switch t {
	case gamemap.TileWall:
		return colorWall
	case gamemap.TileFloor:
		return colorFloor
	case gamemap.TileWater:
		return colorWater
	default:
		return colorUndefined
	}
}

// drawFrame renders the top scene's frame
func drawFrame(screen *ebiten.Image, frame scenes.Frame) {
	screen.Fill(colorBackground)

	if frame.Map == nil {
		drawMenu(screen, frame)
		return
	}
	drawMap(screen, frame.Map)
	drawAgents(screen, frame)
}

func drawMenu(screen *ebiten.Image, frame scenes.Frame) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	titleX := (w - len(frame.Title)*6) / 2
	ebitenutil.DebugPrintAt(screen, frame.Title, titleX, h/3)
	vector.StrokeLine(screen, float32(titleX), float32(h/3+18), float32(titleX+len(frame.Title)*6), float32(h/3+18), 1, colorTitle, false)

	// Draw options
	optionSpacing := 20
	startY := h/2 - (len(frame.Lines)*optionSpacing)/2
	for i, line := range frame.Lines {
		ebitenutil.DebugPrintAt(screen, line, (w-len(line)*6)/2, startY+i*optionSpacing)
	}
	ebitenutil.DebugPrintAt(screen, "arrows: choose  C/Enter: select  Esc: quit", 10, h-20)
}

func drawMap(screen *ebiten.Image, m *gamemap.Map) {
	cs := float32(m.CellSize())

	for cell, tile := range m.Tiles() {
		p := m.WorldOf(cell)
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), cs, cs, tileColor(tile), false)
		vector.StrokeRect(screen, float32(p.X), float32(p.Y), cs, cs, 1, colorGridLine, false)
	}

	for _, cell := range m.SelectedView() {
		p := m.WorldOf(cell)
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), cs, cs, colorView, false)
	}

	if cell, ok := m.SelectedTile(); ok {
		p := m.WorldOf(cell)
		vector.StrokeRect(screen, float32(p.X)+1, float32(p.Y)+1, cs-2, cs-2, 2, colorHover, false)
	}
}

func drawAgents(screen *ebiten.Image, frame scenes.Frame) {
	for _, a := range frame.Agents {
		// Position is the top-left of the agent's box
		r := float32(a.Size / 2)
		cx := float32(a.Position.X) + r
		cy := float32(a.Position.Y) + r

		fill := colorObserver
		if a.Controlled {
			fill = colorAgent
		}
		vector.DrawFilledCircle(screen, cx, cy, r, fill, true)

		outline := colorOutline
		if a.Selected {
			outline = colorSelected
		}
		vector.StrokeCircle(screen, cx, cy, r, 3, outline, true)
	}
}
