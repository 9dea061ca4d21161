package events

import "sync"

// Handler consumes a published event. Handlers run synchronously on the
// publisher's goroutine; the device model is a single logical actor, so
// handlers stay short and never block on network calls.
type Handler func(Event)

// Bus is the in-process publish-subscribe channel. It is created at app
// start, handed to components by reference, and torn down at app exit; a
// closed bus drops publishes silently.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]Handler
	nextID int
	closed bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[int]Handler),
	}
}

// Subscribe registers a handler and returns a function that removes it.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers the event to every current subscriber. Delivery order
// between subscribers is unspecified. No-op after Close.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

// Close drops all subscribers and makes further publishes no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = make(map[int]Handler)
}
