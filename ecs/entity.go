package ecs

import "fmt"

// EntityID is a unique identifier for an entity. The lower 32 bits hold the
// slot index and the upper 32 bits the slot generation, so an id that
// outlives its entity never matches a later occupant of the same slot.
// The zero value never identifies a live entity.
type EntityID uint64

func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the slot generation
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// IsZero reports whether id is the zero (never valid) id
func (id EntityID) IsZero() bool { return id == 0 }

func (id EntityID) String() string {
	if id.IsZero() {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%d/%d)", id.Index(), id.Generation())
}

// EntityPool allocates entity ids with generational indices and a free list.
// Generations start at 1 so that no live id is ever zero.
type EntityPool struct {
	generations []uint32
	freeList    []uint32
	alive       int
}

// NewEntityPool creates an empty pool
func NewEntityPool() *EntityPool {
	return &EntityPool{
		generations: make([]uint32, 0, 64),
		freeList:    make([]uint32, 0, 16),
	}
}

// Create returns a fresh entity id
func (p *EntityPool) Create() EntityID {
	p.alive++
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		return newEntityID(idx, p.generations[idx])
	}
	idx := uint32(len(p.generations))
	p.generations = append(p.generations, 1)
	return newEntityID(idx, 1)
}

// Alive reports whether id refers to a live entity
func (p *EntityPool) Alive(id EntityID) bool {
	idx := id.Index()
	if id.IsZero() || int(idx) >= len(p.generations) {
		return false
	}
	return p.generations[idx] == id.Generation()
}

// Destroy retires id. Stale or unknown ids are ignored.
func (p *EntityPool) Destroy(id EntityID) bool {
	if !p.Alive(id) {
		return false
	}
	idx := id.Index()
	p.generations[idx]++
	if p.generations[idx] == 0 {
		// wrapped; skip the zero generation
		p.generations[idx] = 1
	}
	p.freeList = append(p.freeList, idx)
	p.alive--
	return true
}

// Len returns the number of live entities
func (p *EntityPool) Len() int {
	return p.alive
}
