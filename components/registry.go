package components

import (
	"ebiten-gridsim/ecs"
)

// Registry events
const (
	EventEntitySpawned   ecs.EventType = "entity_spawned"
	EventEntityDespawned ecs.EventType = "entity_despawned"
)

// EntitySpawned is emitted by Spawn
type EntitySpawned struct {
	Entity ecs.EntityID
}

// Type implements ecs.Event
func (EntitySpawned) Type() ecs.EventType { return EventEntitySpawned }

// EntityDespawned is emitted by Despawn
type EntityDespawned struct {
	Entity ecs.EntityID
}

// Type implements ecs.Event
func (EntityDespawned) Type() ecs.EventType { return EventEntityDespawned }

// Registry is the component store of one scene: an entity pool plus one
// typed store per component kind
type Registry struct {
	pool *ecs.EntityPool

	Transforms   *ecs.Store[Transform]
	Motions      *ecs.Store[Motion]
	Players      *ecs.Store[PlayerTag]
	Controllers  *ecs.Store[InputController]
	ViewShapes   *ecs.Store[ViewShape]
	NetworkLinks *ecs.Store[NetworkLink]
	Shots        *ecs.Store[Shot]

	events *ecs.EventManager
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		pool:         ecs.NewEntityPool(),
		Transforms:   ecs.NewStore[Transform](KindTransform),
		Motions:      ecs.NewStore[Motion](KindMotion),
		Players:      ecs.NewStore[PlayerTag](KindPlayer),
		Controllers:  ecs.NewStore[InputController](KindInputController),
		ViewShapes:   ecs.NewStore[ViewShape](KindViewShape),
		NetworkLinks: ecs.NewStore[NetworkLink](KindNetworkLink),
		Shots:        ecs.NewStore[Shot](KindShot),
		events:       ecs.NewEventManager(),
	}
}

func (r *Registry) stores() []ecs.Remover {
	return []ecs.Remover{
		r.Transforms, r.Motions, r.Players, r.Controllers,
		r.ViewShapes, r.NetworkLinks, r.Shots,
	}
}

// Store returns the type-independent view of the store for kind
func (r *Registry) Store(kind ecs.Kind) (ecs.Queryable, bool) {
	switch kind {
	case KindTransform:
		return r.Transforms, true
	case KindMotion:
		return r.Motions, true
	case KindPlayer:
		return r.Players, true
	case KindInputController:
		return r.Controllers, true
	case KindViewShape:
		return r.ViewShapes, true
	case KindNetworkLink:
		return r.NetworkLinks, true
	case KindShot:
		return r.Shots, true
	default:
		return nil, false
	}
}

// Spawn creates an entity with no components
func (r *Registry) Spawn() ecs.EntityID {
	id := r.pool.Create()
	r.events.Emit(EntitySpawned{Entity: id})
	return id
}

// Despawn removes every component of id and invalidates it. Stale ids are
// ignored.
func (r *Registry) Despawn(id ecs.EntityID) bool {
	if !r.pool.Alive(id) {
		return false
	}
	for _, s := range r.stores() {
		s.Remove(id)
	}
	r.pool.Destroy(id)
	r.events.Emit(EntityDespawned{Entity: id})
	return true
}

// Alive reports whether id is a live entity of this registry
func (r *Registry) Alive(id ecs.EntityID) bool {
	return r.pool.Alive(id)
}

// Count returns the number of live entities
func (r *Registry) Count() int {
	return r.pool.Len()
}

// Events returns the registry's event manager
func (r *Registry) Events() *ecs.EventManager {
	return r.events
}
