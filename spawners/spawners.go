package spawners

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"ebiten-gridsim/components"
	"ebiten-gridsim/config"
	"ebiten-gridsim/data"
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/gamemap"
	"ebiten-gridsim/geom"
	"ebiten-gridsim/logger"
)

var (
	// ErrUnknownTemplate is returned for a template id the manager lacks
	ErrUnknownTemplate = errors.New("unknown agent template")
	// ErrOffMap is returned for a spawn cell outside the map
	ErrOffMap = errors.New("spawn cell is off the map")
	// ErrNoFreeCell is returned when no walkable cell is left
	ErrNoFreeCell = errors.New("no free cell to spawn on")
)

// AgentSpawner manages the creation of agents
type AgentSpawner struct {
	world           *components.Registry
	grid            *gamemap.Map
	templateManager *data.TemplateManager
	entity          config.EntityConfig
	// link is shared by every networked agent; nil disables broadcasting
	link components.Sender
}

// NewAgentSpawner creates a new agent spawner
func NewAgentSpawner(world *components.Registry, grid *gamemap.Map, templateManager *data.TemplateManager, entity config.EntityConfig, link components.Sender) *AgentSpawner {
	return &AgentSpawner{
		world:           world,
		grid:            grid,
		templateManager: templateManager,
		entity:          entity,
		link:            link,
	}
}

// Spawn creates an agent from a template at cell
func (s *AgentSpawner) Spawn(templateID string, cell geom.Cell) (ecs.EntityID, error) {
	template, exists := s.templateManager.GetTemplate(templateID)
	if !exists {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTemplate, templateID)
	}
	if !s.grid.InBounds(cell) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOffMap, cell.X, cell.Y)
	}
	shape, err := components.ParseShape(template.Shape)
	if err != nil {
		return 0, err
	}

	id := s.world.Spawn()
	s.world.Transforms.Insert(id, components.NewTransform(s.grid, cell, s.entity.Size, s.entity.PixelBias))
	s.world.Motions.Insert(id, components.Motion{})
	s.world.ViewShapes.Insert(id, components.NewViewShape(shape))

	name := template.Name
	if name == "" {
		name = fmt.Sprintf("%s-%s", template.ID, uuid.NewString()[:8])
	}
	tag := components.PlayerTag{Name: name, Health: template.Health, Food: template.Food, Water: template.Water}
	tag.Clamp()
	s.world.Players.Insert(id, tag)

	if template.Controlled {
		s.world.Controllers.Insert(id, components.InputController{})
	}
	if template.Networked && s.link != nil {
		s.world.NetworkLinks.Insert(id, components.NewNetworkLink(s.link))
	}

	logger.WithComponent("spawner").
		WithField("entity", id).
		WithField("template", template.ID).
		WithField("cell", fmt.Sprintf("%d,%d", cell.X, cell.Y)).
		Infof("%s spawned at %d,%d", name, cell.X, cell.Y)
	return id, nil
}

// SpawnRandom picks a template from table and a free floor cell inside the
// border ring
func (s *AgentSpawner) SpawnRandom(rng *rand.Rand, table *SpawnTable) (ecs.EntityID, error) {
	templateID, ok := table.Pick(rng)
	if !ok {
		return 0, fmt.Errorf("%w: empty spawn table", ErrUnknownTemplate)
	}
	cells := s.FreeCells()
	if len(cells) == 0 {
		return 0, ErrNoFreeCell
	}
	return s.Spawn(templateID, cells[rng.Intn(len(cells))])
}

// FreeCells returns the floor cells inside the border ring that no entity
// occupies, row by row
func (s *AgentSpawner) FreeCells() []geom.Cell {
	occupied := make(map[geom.Cell]bool, s.world.Transforms.Len())
	for _, t := range s.world.Transforms.All() {
		occupied[t.Cell] = true
	}

	last := uint32(s.grid.CellCount() - 1)
	var cells []geom.Cell
	for c, tile := range s.grid.Tiles() {
		if tile != gamemap.TileFloor || occupied[c] {
			continue
		}
		if c.X == 0 || c.Y == 0 || c.X == last || c.Y == last {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}
