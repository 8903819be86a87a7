package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-gridsim/config"
	"ebiten-gridsim/input"
)

func TestMenuScene_SelectStartsALevel(t *testing.T) {
	w := newTestWorld()
	stack := NewStack(nil)
	menu := NewMenuScene()
	stack.Push(menu)

	stack.Input(w, input.Press(input.Select))
	stack.Update(w)

	require.Equal(t, 2, stack.Len())
	level, ok := stack.Top().(*LevelScene)
	require.True(t, ok)
	assert.Equal(t, "Level", stack.Frame().Title)

	stack.Input(w, input.Press(input.Menu))
	stack.Update(w)
	assert.Same(t, menu, stack.Top())
	assert.Nil(t, level.transport)
}

func TestMenuScene_Navigation(t *testing.T) {
	w := newTestWorld()
	menu := NewMenuScene()
	assert.Equal(t, "Start", menu.SelectedOption())

	menu.Input(w, input.AxisPress(input.Vertical, 1))
	assert.Equal(t, "Quit", menu.SelectedOption())
	menu.Input(w, input.AxisRelease(input.Vertical, 1))
	menu.Input(w, input.AxisPress(input.Vertical, 1))
	assert.Equal(t, "Start", menu.SelectedOption(), "wraps around")
	menu.Input(w, input.AxisPress(input.Vertical, -1))
	assert.Equal(t, "Quit", menu.SelectedOption())

	assert.Equal(t, []string{"  Start", "> Quit"}, menu.Frame().Lines)

	menu.Input(w, input.Press(input.Select))
	assert.Equal(t, PopAllScenes(), menu.Update(w))
}

func TestMenuScene_QuitButton(t *testing.T) {
	w := newTestWorld()
	stack := NewStack(nil)
	stack.Push(NewMenuScene())

	stack.Input(w, input.Press(input.Quit))
	stack.Update(w)
	assert.True(t, stack.Empty())
}

func TestMenuScene_FailedLevelStaysOnMenu(t *testing.T) {
	cfg := config.Default()
	cfg.Map.Source = config.MapSourceFile
	cfg.Map.File = "missing-tiles.yaml"
	w := NewWorld(cfg, nil, nil, nil)

	stack := NewStack(nil)
	menu := NewMenuScene()
	stack.Push(menu)

	stack.Input(w, input.Press(input.Select))
	stack.Update(w)

	assert.Same(t, menu, stack.Top())
	lines := menu.Frame().Lines
	assert.Contains(t, lines[len(lines)-1], "missing-tiles.yaml")
}
