package scenes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-gridsim/components"
	"ebiten-gridsim/config"
	"ebiten-gridsim/geom"
	"ebiten-gridsim/input"
	"ebiten-gridsim/network"
)

func recorderDial(rec *network.Recorder) DialFunc {
	return func(context.Context, config.NetworkConfig) (network.Transport, error) {
		return rec, nil
	}
}

func newLevel(t *testing.T, mutate func(*config.Config), dial DialFunc) (*LevelScene, *World) {
	t.Helper()
	cfg := config.Default()
	cfg.Entity.Seed = 42
	if mutate != nil {
		mutate(cfg)
	}
	w := NewWorld(cfg, nil, dial, nil)
	level, err := NewLevelScene(w)
	require.NoError(t, err)
	t.Cleanup(func() { level.Close() })
	return level, w
}

func TestLevelScene_FirstAgent(t *testing.T) {
	level, _ := newLevel(t, nil, nil)

	world := level.Registry()
	require.Equal(t, 1, world.Count())

	transform, ok := world.Transforms.Get(level.Player())
	require.True(t, ok)
	assert.Equal(t, geom.C(config.SpawnCellX, config.SpawnCellY), transform.Cell)
	assert.True(t, world.Controllers.Has(level.Player()))
	assert.False(t, world.NetworkLinks.Has(level.Player()), "no url, no link")

	assert.Equal(t, []string{"sys_input", "sys_network", "sys_movement", "sys_selection", "sys_highlight"},
		level.Dispatcher().Order())
}

func TestLevelScene_AxisMovesThePlayer(t *testing.T) {
	level, w := newLevel(t, nil, nil)
	stack := NewStack(nil)
	stack.Push(level)

	stack.Input(w, input.AxisPress(input.Horizontal, 1))
	stack.Update(w)

	transform, _ := level.Registry().Transforms.Get(level.Player())
	assert.Equal(t, geom.C(8, 7), transform.Cell)

	stack.Input(w, input.AxisRelease(input.Horizontal, 1))
	stack.Input(w, input.AxisPress(input.Vertical, -1))
	stack.Update(w)
	stack.Update(w)

	transform, _ = level.Registry().Transforms.Get(level.Player())
	assert.Equal(t, geom.C(8, 5), transform.Cell)
}

func TestLevelScene_MenuPopsOnTheNextUpdate(t *testing.T) {
	level, w := newLevel(t, nil, nil)
	stack := NewStack(nil)
	menu := NewMenuScene()
	stack.Push(menu)
	stack.Push(level)

	stack.Input(w, input.Press(input.Menu))
	stack.Update(w)

	assert.Same(t, menu, stack.Top())
}

func TestLevelScene_QuitPopsEverything(t *testing.T) {
	level, w := newLevel(t, nil, nil)
	stack := NewStack(nil)
	stack.Push(NewMenuScene())
	stack.Push(level)

	stack.Input(w, input.Press(input.Quit))
	stack.Update(w)

	assert.True(t, stack.Empty())
}

func TestLevelScene_BroadcastsPositions(t *testing.T) {
	rec := network.NewRecorder()
	level, w := newLevel(t, func(cfg *config.Config) {
		cfg.Network.URL = "tcp://127.0.0.1:7777"
	}, recorderDial(rec))

	require.True(t, level.Registry().NetworkLinks.Has(level.Player()))

	w.Input.Fold(input.AxisPress(input.Horizontal, 1))
	level.Update(w)
	level.Update(w)

	// the send runs alongside input, before movement of the same frame
	assert.Equal(t, []string{"7:7", "8:7"}, rec.Payloads())

	require.NoError(t, level.Close())
	assert.True(t, rec.Closed())
}

func TestLevelScene_DialFailureKeepsTheLevel(t *testing.T) {
	failing := func(context.Context, config.NetworkConfig) (network.Transport, error) {
		return nil, errors.New("connection refused")
	}
	level, _ := newLevel(t, func(cfg *config.Config) {
		cfg.Network.URL = "tcp://127.0.0.1:1"
	}, failing)

	assert.False(t, level.Registry().NetworkLinks.Has(level.Player()))
}

func TestLevelScene_BrokenTransportDoesNotStopTheFrame(t *testing.T) {
	rec := network.NewRecorder()
	rec.Fail(errors.New("broken pipe"))
	level, w := newLevel(t, func(cfg *config.Config) {
		cfg.Network.URL = "tcp://127.0.0.1:7777"
	}, recorderDial(rec))

	w.Input.Fold(input.AxisPress(input.Horizontal, 1))
	assert.Equal(t, Stay(), level.Update(w))

	transform, _ := level.Registry().Transforms.Get(level.Player())
	assert.Equal(t, geom.C(8, 7), transform.Cell)
}

func TestLevelScene_ConfigurationErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Map.Source = config.MapSourceFile
	cfg.Map.File = "does-not-exist.yaml"

	_, err := NewLevelScene(NewWorld(cfg, nil, nil, nil))
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Entity.SpawnX = 99
	_, err = NewLevelScene(NewWorld(cfg, nil, nil, nil))
	assert.Error(t, err)
}

func TestLevelScene_SelectionAndShapeSwap(t *testing.T) {
	level, w := newLevel(t, nil, nil)
	player := level.Player()

	assert.False(t, level.SetSelectedShape(components.ShapeDiamond), "nothing selected")

	over := level.Map().CenterOf(geom.C(7, 7))
	w.Input.Fold(input.MousePress(over))
	level.Update(w)
	w.Input.EndFrame()

	assert.Equal(t, player, level.Selection().Entity)
	assert.True(t, level.Selection().Locked)
	assert.Len(t, level.Map().SelectedView(), 9)

	original, _ := level.Registry().ViewShapes.Get(player)
	require.True(t, level.SetSelectedShape(components.ShapeDiamond))
	require.True(t, level.SetSelectedShape(components.ShapeTriangle))
	require.True(t, level.SetSelectedShape(components.ShapeSquare))
	swapped, _ := level.Registry().ViewShapes.Get(player)
	assert.Equal(t, original, swapped, "square -> diamond -> triangle -> square is lossless")

	require.True(t, level.SetSelectedShape(components.ShapeTriangle))
	level.Update(w)
	assert.Len(t, level.Map().SelectedView(), 4)
}

func TestLevelScene_SpawnAndFrame(t *testing.T) {
	level, _ := newLevel(t, nil, nil)

	id, err := level.SpawnAgent("sentry", geom.C(3, 3))
	require.NoError(t, err)
	_, err = level.SpawnRandom()
	require.NoError(t, err)

	level.Select(id, true)
	frame := level.Frame()
	assert.Equal(t, "Level", frame.Title)
	assert.Same(t, level.Map(), frame.Map)
	require.Len(t, frame.Agents, 3)

	selected := 0
	for _, a := range frame.Agents {
		if a.Selected {
			selected++
			assert.Equal(t, id, a.Entity)
			assert.False(t, a.Controlled)
			assert.Equal(t, geom.C(3, 3), a.Cell)
		}
	}
	assert.Equal(t, 1, selected)
}
