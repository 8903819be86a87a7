package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityPool_CreateIsNeverZero(t *testing.T) {
	p := NewEntityPool()
	for i := 0; i < 10; i++ {
		id := p.Create()
		assert.False(t, id.IsZero())
		assert.True(t, p.Alive(id))
	}
	assert.Equal(t, 10, p.Len())
}

func TestEntityPool_DestroyInvalidatesStaleIDs(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	require.True(t, p.Destroy(a))
	assert.False(t, p.Alive(a))
	assert.False(t, p.Destroy(a), "second destroy of a stale id is a no-op")

	b := p.Create()
	assert.Equal(t, a.Index(), b.Index(), "slot is recycled")
	assert.NotEqual(t, a, b, "generation differs")
	assert.True(t, p.Alive(b))
	assert.False(t, p.Alive(a))
}

func TestEntityPool_ZeroIsNeverAlive(t *testing.T) {
	p := NewEntityPool()
	p.Create()
	assert.False(t, p.Alive(0))
}

func TestEventManager_SubscribeEmitUnsubscribe(t *testing.T) {
	em := NewEventManager()
	var got []string
	first := em.Subscribe("ping", func(Event) { got = append(got, "first") })
	em.Subscribe("ping", func(Event) { got = append(got, "second") })

	em.Emit(testEvent{})
	assert.Equal(t, []string{"first", "second"}, got)

	got = nil
	em.Unsubscribe(first)
	em.Emit(testEvent{})
	assert.Equal(t, []string{"second"}, got)
}

type testEvent struct{}

func (testEvent) Type() EventType { return "ping" }
