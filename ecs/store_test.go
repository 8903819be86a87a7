package ecs

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pos struct{ X, Y int }
type vel struct{ DX, DY int }
type tag struct{}

func TestStore_InsertGetRemove(t *testing.T) {
	s := NewStore[pos]("pos")
	p := NewEntityPool()
	a, b := p.Create(), p.Create()

	s.Insert(a, pos{1, 2})
	s.Insert(b, pos{3, 4})

	got, ok := s.Get(a)
	require.True(t, ok)
	assert.Equal(t, pos{1, 2}, got)

	m, ok := s.GetMut(b)
	require.True(t, ok)
	m.X = 30
	got, _ = s.Get(b)
	assert.Equal(t, 30, got.X)

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	_, ok = s.Get(a)
	assert.False(t, ok, "absence is a plain miss, not an error")
	assert.Equal(t, 1, s.Len())

	// b was swapped into a's slot and must still resolve
	got, ok = s.Get(b)
	require.True(t, ok)
	assert.Equal(t, pos{30, 4}, got)
}

func TestStore_InsertReplaces(t *testing.T) {
	s := NewStore[pos]("pos")
	id := NewEntityPool().Create()
	s.Insert(id, pos{1, 1})
	s.Insert(id, pos{2, 2})
	assert.Equal(t, 1, s.Len())
	got, _ := s.Get(id)
	assert.Equal(t, pos{2, 2}, got)
}

func TestStore_ZeroSizedComponentsRoundTrip(t *testing.T) {
	s := NewStore[tag]("tag")
	id := NewEntityPool().Create()
	s.Insert(id, tag{})
	assert.True(t, s.Has(id))
	s.Remove(id)
	assert.False(t, s.Has(id))
}

func TestStore_AllIsStableAndStoppable(t *testing.T) {
	s := NewStore[pos]("pos")
	p := NewEntityPool()
	var ids []EntityID
	for i := 0; i < 5; i++ {
		id := p.Create()
		ids = append(ids, id)
		s.Insert(id, pos{i, i})
	}

	var first, second []EntityID
	for id := range s.All() {
		first = append(first, id)
	}
	for id := range s.All() {
		second = append(second, id)
	}
	assert.Equal(t, first, second)
	assert.ElementsMatch(t, ids, first)

	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestQuery_Intersection(t *testing.T) {
	p := NewEntityPool()
	positions := NewStore[pos]("pos")
	velocities := NewStore[vel]("vel")

	both := p.Create()
	onlyPos := p.Create()
	onlyVel := p.Create()
	positions.Insert(both, pos{})
	positions.Insert(onlyPos, pos{})
	velocities.Insert(both, vel{})
	velocities.Insert(onlyVel, vel{})

	got := slices.Collect(Query(positions, velocities))
	assert.Equal(t, []EntityID{both}, got)

	assert.Len(t, slices.Collect(Query(positions)), 2)
	assert.Empty(t, slices.Collect(Query()))
}

func TestJoin2AndJoin3(t *testing.T) {
	p := NewEntityPool()
	positions := NewStore[pos]("pos")
	velocities := NewStore[vel]("vel")
	tags := NewStore[tag]("tag")

	a := p.Create()
	b := p.Create()
	positions.Insert(a, pos{1, 1})
	positions.Insert(b, pos{2, 2})
	velocities.Insert(a, vel{1, 0})
	velocities.Insert(b, vel{0, 1})
	tags.Insert(b, tag{})

	for row := range Join2(positions, velocities) {
		row.A.X += row.B.DX
		row.A.Y += row.B.DY
	}
	pa, _ := positions.Get(a)
	pb, _ := positions.Get(b)
	assert.Equal(t, pos{2, 1}, pa)
	assert.Equal(t, pos{2, 3}, pb)

	var tagged []EntityID
	for row := range Join3(positions, velocities, tags) {
		tagged = append(tagged, row.Entity)
	}
	assert.Equal(t, []EntityID{b}, tagged)
}
