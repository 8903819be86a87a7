package ecs

import "sync"

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies a registered handler for Unsubscribe
type Subscription struct {
	eventType EventType
	id        uint64
}

type subscriber struct {
	id      uint64
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches synchronously on
// the emitting goroutine. Handlers run without the lock held, so they may
// subscribe or unsubscribe.
type EventManager struct {
	mu          sync.Mutex
	subscribers map[EventType][]subscriber
	nextID      uint64
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.mu.Lock()
	defer em.mu.Unlock()

	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{id: em.nextID, handler: handler})
	return Subscription{eventType: eventType, id: em.nextID}
}

// Unsubscribe removes a handler registered by Subscribe
func (em *EventManager) Unsubscribe(sub Subscription) {
	em.mu.Lock()
	defer em.mu.Unlock()

	subs, exists := em.subscribers[sub.eventType]
	if !exists {
		return
	}

	kept := make([]subscriber, 0, len(subs))
	for _, s := range subs {
		if s.id != sub.id {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		delete(em.subscribers, sub.eventType)
	} else {
		em.subscribers[sub.eventType] = kept
	}
}

// Emit dispatches an event to all subscribed handlers
func (em *EventManager) Emit(event Event) {
	em.mu.Lock()
	subs := em.subscribers[event.Type()]
	em.mu.Unlock()

	for _, s := range subs {
		s.handler(event)
	}
}
