package ecs

import (
	"iter"
	"sort"
)

// Query yields the ids present in every given store. The smallest store
// drives the scan; the order is the driving store's dense order. An empty
// store list yields nothing.
func Query(stores ...Queryable) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		if len(stores) == 0 {
			return
		}
		sorted := make([]Queryable, len(stores))
		copy(sorted, stores)
		// Stable so equally sized stores keep the caller's order
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Len() < sorted[j].Len()
		})

	candidates:
		for _, id := range sorted[0].Entities() {
			for _, other := range sorted[1:] {
				if !other.Has(id) {
					continue candidates
				}
			}
			if !yield(id) {
				return
			}
		}
	}
}

// Row2 is one result of Join2
type Row2[A, B any] struct {
	Entity EntityID
	A      *A
	B      *B
}

// Join2 yields the entities holding both components, with pointers to each.
// The first store drives the scan.
func Join2[A, B any](a *Store[A], b *Store[B]) iter.Seq[Row2[A, B]] {
	return func(yield func(Row2[A, B]) bool) {
		for id, va := range a.All() {
			vb, ok := b.GetMut(id)
			if !ok {
				continue
			}
			if !yield(Row2[A, B]{Entity: id, A: va, B: vb}) {
				return
			}
		}
	}
}

// Row3 is one result of Join3
type Row3[A, B, C any] struct {
	Entity EntityID
	A      *A
	B      *B
	C      *C
}

// Join3 yields the entities holding all three components. The first store
// drives the scan.
func Join3[A, B, C any](a *Store[A], b *Store[B], c *Store[C]) iter.Seq[Row3[A, B, C]] {
	return func(yield func(Row3[A, B, C]) bool) {
		for id, va := range a.All() {
			vb, ok := b.GetMut(id)
			if !ok {
				continue
			}
			vc, ok := c.GetMut(id)
			if !ok {
				continue
			}
			if !yield(Row3[A, B, C]{Entity: id, A: va, B: vb, C: vc}) {
				return
			}
		}
	}
}
