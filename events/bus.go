package events

import (
	"sync"
	"time"
)

// HandlerFunc receives a published event
type HandlerFunc func(Event)

type subscription struct {
	id uint64
	fn HandlerFunc
}

// Bus delivers every published event to all subscribers of its type
//
// Architecture:
//   - Broadcast: a subscriber never consumes an event from another
//   - Handlers run synchronously on the publishing goroutine, in subscription order
//   - Subscribe and unsubscribe are safe from any goroutine, including from inside a handler
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	now      func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]subscription),
		now:      time.Now,
	}
}

// Subscribe registers fn for events of type t and returns its unsubscribe function
// The returned function is idempotent
func (b *Bus) Subscribe(t EventType, fn HandlerFunc) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(t, id) })
	}
}

func (b *Bus) remove(t EventType, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[t]
	for i, s := range subs {
		if s.id == id {
			// Copy on remove so in-flight Publish snapshots stay intact
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			if len(next) == 0 {
				delete(b.handlers, t)
			} else {
				b.handlers[t] = next
			}
			return
		}
	}
}

// Publish stamps and delivers an event, returning the number of handlers reached
func (b *Bus) Publish(t EventType, payload any) int {
	b.mu.RLock()
	subs := b.handlers[t]
	b.mu.RUnlock()

	if len(subs) == 0 {
		return 0
	}
	ev := Event{Type: t, Payload: payload, Timestamp: b.now()}
	for _, s := range subs {
		s.fn(ev)
	}
	return len(subs)
}

// HasHandlers returns true if any handlers are registered for the given type
func (b *Bus) HasHandlers(t EventType) bool {
	return b.HandlerCount(t) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (b *Bus) HandlerCount(t EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[t])
}
