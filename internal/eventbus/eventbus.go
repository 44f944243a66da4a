// ABOUTME: Typed event bus with subscriber management for decoupled components
// ABOUTME: Handlers run synchronously in subscription order; goroutine-safe subscribe/unsubscribe

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

type subscription[T any] struct {
	id int
	fn Handler[T]
}

// Bus is a typed event bus that delivers events to registered handlers.
// A nil *Bus is valid and drops every event.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers []subscription[T]
	nextID   int
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler and returns an unsubscribe function.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers = append(b.handlers, subscription[T]{id: id, fn: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.handlers {
			if s.id == id {
				b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Publish sends an event to all registered handlers in the order they subscribed.
func (b *Bus[T]) Publish(event T) {
	if b == nil {
		return
	}
	b.mu.RLock()
	// Snapshot handlers to avoid holding lock during callbacks
	snapshot := make([]Handler[T], len(b.handlers))
	for i, s := range b.handlers {
		snapshot[i] = s.fn
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
