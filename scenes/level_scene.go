package scenes

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"ebiten-gridsim/components"
	"ebiten-gridsim/data"
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/gamemap"
	"ebiten-gridsim/generation"
	"ebiten-gridsim/geom"
	"ebiten-gridsim/input"
	"ebiten-gridsim/logger"
	"ebiten-gridsim/metrics"
	"ebiten-gridsim/network"
	"ebiten-gridsim/resources"
	"ebiten-gridsim/scheduler"
	"ebiten-gridsim/spawners"
	"ebiten-gridsim/systems"
)

// LevelScene is the playable grid: it owns the component store, the scene
// resources and the dispatcher that runs the systems over them
type LevelScene struct {
	world      *components.Registry
	res        *resources.Bundle
	dispatcher *scheduler.Dispatcher
	ctx        *scheduler.Context

	spawner    *spawners.AgentSpawner
	spawnTable *spawners.SpawnTable
	rng        *rand.Rand

	transport network.Transport
	subs      []ecs.Subscription
	player    ecs.EntityID
	metrics   *metrics.Collector
	log       *logrus.Entry

	done bool
	quit bool
}

// NewLevelScene builds the map, the systems and the first agent. Every
// error is a configuration error and the scene is not usable.
func NewLevelScene(w *World) (*LevelScene, error) {
	cfg := w.Config

	grid, err := generation.NewMap(cfg.Map)
	if err != nil {
		return nil, fmt.Errorf("build map: %w", err)
	}

	world := components.NewRegistry()
	res := resources.NewBundle(grid)

	builder := scheduler.NewBuilder().
		Parallel(cfg.Scheduler.Parallel).
		Metrics(w.Metrics)
	dispatcher, err := systems.Register(builder, systems.Options{
		PixelBias: cfg.Entity.PixelBias,
		Metrics:   w.Metrics,
	}).Build(res)
	if err != nil {
		return nil, fmt.Errorf("build systems: %w", err)
	}

	seed := cfg.Entity.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &LevelScene{
		world:      world,
		res:        res,
		dispatcher: dispatcher,
		ctx:        &scheduler.Context{World: world, Res: res},
		spawnTable: spawners.SpawnTableFromTemplates(w.Templates),
		rng:        rand.New(rand.NewSource(seed)),
		metrics:    w.Metrics,
		log:        logger.WithComponent("level"),
	}

	var link components.Sender
	if cfg.Network.URL != "" && w.Dial != nil {
		t, err := w.Dial(context.Background(), cfg.Network)
		if err != nil {
			// the level still runs, only the broadcast is lost
			s.log.WithError(err).WithField("url", cfg.Network.URL).Warn("Position broadcast disabled")
		} else {
			s.transport = t
			link = t
		}
	}

	s.spawner = spawners.NewAgentSpawner(world, grid, w.Templates, cfg.Entity, link)
	s.subscribe()

	s.player, err = s.spawner.Spawn(data.DefaultAgent, geom.C(cfg.Entity.SpawnX, cfg.Entity.SpawnY))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("spawn first agent: %w", err)
	}

	s.log.WithField("order", dispatcher.Order()).
		WithField("parallel", dispatcher.Parallel()).
		Info("Level ready")
	return s, nil
}

func (s *LevelScene) subscribe() {
	events := s.world.Events()
	s.subs = append(s.subs,
		events.Subscribe(systems.EventMovement, func(e ecs.Event) {
			move := e.(systems.MoveEvent)
			s.log.WithField("entity", move.Entity).
				Debugf("moved %d,%d -> %d,%d", move.From.X, move.From.Y, move.To.X, move.To.Y)
		}),
		events.Subscribe(systems.EventSelection, func(e ecs.Event) {
			sel := e.(systems.SelectionEvent)
			switch {
			case sel.Entity.IsZero():
				s.log.Debug("Selection cleared")
			case sel.Locked:
				s.log.Infof("Locked on %s", s.nameOf(sel.Entity))
			default:
				s.log.Debugf("Hovering %s", s.nameOf(sel.Entity))
			}
		}),
	)
}

func (s *LevelScene) nameOf(id ecs.EntityID) string {
	if tag, ok := s.world.Players.Get(id); ok {
		return tag.Name
	}
	return id.String()
}

// Name implements Scene
func (s *LevelScene) Name() string { return "LevelScene" }

// Update copies the input into the scene resources and runs the systems
func (s *LevelScene) Update(w *World) Transition {
	if s.quit {
		return PopAllScenes()
	}
	if s.done {
		return PopScene()
	}

	in := s.res.Input
	in.Horizontal = w.Input.Axis(input.Horizontal)
	in.Vertical = w.Input.Axis(input.Vertical)
	in.Mouse = w.Input.Mouse()
	in.MousePressed = w.Input.MousePressed()

	s.dispatcher.Dispatch(s.ctx)
	s.metrics.SetEntities(s.world.Count())
	return Stay()
}

// Input folds ev into the shared input state and watches for the menu and
// quit buttons
func (s *LevelScene) Input(w *World, ev input.Event) {
	w.Input.Fold(ev)
	if w.Input.ButtonPressed(input.Menu) {
		s.done = true
	}
	if w.Input.ButtonPressed(input.Quit) {
		s.quit = true
	}
}

// Frame implements Scene
func (s *LevelScene) Frame() Frame {
	sel := *s.res.Selection
	agents := make([]AgentView, 0, s.world.Transforms.Len())
	for id, t := range s.world.Transforms.All() {
		agents = append(agents, AgentView{
			Entity:     id,
			Name:       s.nameOf(id),
			Cell:       t.Cell,
			Position:   t.Position,
			Size:       t.Size,
			Controlled: s.world.Controllers.Has(id),
			Selected:   sel.Entity == id,
		})
	}
	return Frame{
		Title:     "Level",
		Map:       s.res.Map,
		Agents:    agents,
		Selection: sel,
	}
}

// Close releases the transport and the event subscriptions
func (s *LevelScene) Close() error {
	for _, sub := range s.subs {
		s.world.Events().Unsubscribe(sub)
	}
	s.subs = nil

	if s.transport == nil {
		return nil
	}
	err := s.transport.Close()
	s.transport = nil
	return err
}

// Debug overlay surface

// Registry returns the component store
func (s *LevelScene) Registry() *components.Registry { return s.world }

// Map returns the level's map
func (s *LevelScene) Map() *gamemap.Map { return s.res.Map }

// Dispatcher returns the level's dispatcher
func (s *LevelScene) Dispatcher() *scheduler.Dispatcher { return s.dispatcher }

// Player returns the first agent of the level
func (s *LevelScene) Player() ecs.EntityID { return s.player }

// Selection returns the current selection
func (s *LevelScene) Selection() resources.Selection { return *s.res.Selection }

// Select overwrites the selection
func (s *LevelScene) Select(id ecs.EntityID, locked bool) {
	s.res.Selection.Select(id, locked)
}

// SpawnAgent spawns a template at cell
func (s *LevelScene) SpawnAgent(templateID string, cell geom.Cell) (ecs.EntityID, error) {
	return s.spawner.Spawn(templateID, cell)
}

// SpawnRandom spawns a weighted random template on a free floor cell
func (s *LevelScene) SpawnRandom() (ecs.EntityID, error) {
	return s.spawner.SpawnRandom(s.rng, s.spawnTable)
}

// SetSelectedShape swaps the view shape of the selected entity. It reports
// false when nothing with a view shape is selected.
func (s *LevelScene) SetSelectedShape(kind components.ShapeKind) bool {
	id, ok := s.res.Selection.Selected()
	if !ok {
		return false
	}
	shape, ok := s.world.ViewShapes.GetMut(id)
	if !ok {
		return false
	}
	shape.SetShape(kind)
	return true
}
