// Package events provides a typed publish/subscribe primitive.
//
// An Event exposes only Subscribe to the outside world. The function that
// raises it is handed to whoever creates the event, so only the owner can
// publish, mirroring how a field-like event restricts invocation to its
// declaring type.
package events

import "sync"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Event is a list of subscribers notified in subscription order. It is
// safe for concurrent use.
type Event[T any] struct {
	mu     sync.RWMutex
	subs   []subscriber[T]
	nextID int
}

// New returns an event and the function that raises it. Keep raise
// unexported in the owning type.
func New[T any]() (*Event[T], func(T)) {
	e := &Event[T]{}
	return e, e.emit
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.subs = append(e.subs, subscriber[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(id) })
	}
}

func (e *Event[T]) remove(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of current subscribers.
func (e *Event[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}

// emit calls every subscriber with v. Subscribers are snapshotted first, so
// a handler may subscribe or unsubscribe without deadlocking; the change
// takes effect from the next emit.
func (e *Event[T]) emit(v T) {
	e.mu.RLock()
	subs := e.subs
	e.mu.RUnlock()

	for _, s := range subs {
		s.fn(v)
	}
}
