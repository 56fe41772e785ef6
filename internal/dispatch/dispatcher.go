// Package dispatch routes domain events to reconciliation handlers through
// an explicit compile-time registry: a map from event kind to an ordered
// handler list, built once at startup. No reflection or container lookup
// happens at publish time.
package dispatch

import (
	"fmt"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

// Handler processes one event against the unit-of-work scope. It may
// return outbound events to cascade further reconciliation.
type Handler interface {
	Handle(scope store.Store, e event.Event) ([]event.Event, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(scope store.Store, e event.Event) ([]event.Event, error)

// Handle calls fn.
func (fn HandlerFunc) Handle(scope store.Store, e event.Event) ([]event.Event, error) {
	return fn(scope, e)
}

// Dispatcher holds the registry and publishes events synchronously.
type Dispatcher struct {
	handlers map[event.Kind][]Handler
}

// New creates an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{handlers: make(map[event.Kind][]Handler)}
}

// Register appends a handler to the list for kind. Handlers run in
// registration order.
func (d *Dispatcher) Register(kind event.Kind, h Handler) {
	d.handlers[kind] = append(d.handlers[kind], h)
}

// On registers a typed handler for events of concrete type E, sparing
// call sites the type assertion. A mismatched event reaching the wrapper
// indicates a registry bug and fails the dispatch.
func On[E event.Event](d *Dispatcher, fn func(scope store.Store, e E) ([]event.Event, error)) {
	var zero E
	d.Register(zero.Kind(), HandlerFunc(func(scope store.Store, e event.Event) ([]event.Event, error) {
		typed, ok := e.(E)
		if !ok {
			return nil, fmt.Errorf("handler for %s received %T", zero.Kind(), e)
		}
		return fn(scope, typed)
	}))
}

// Publish invokes every handler registered for e's kind, sequentially and
// in registration order, threading scope through each. Events returned by
// a handler are published depth-first before the next handler runs. The
// first handler error aborts the remaining chain; mutations already
// applied are not rolled back — commit or rollback of the scope is the
// caller's transaction boundary.
func (d *Dispatcher) Publish(scope store.Store, e event.Event) error {
	for _, h := range d.handlers[e.Kind()] {
		out, err := h.Handle(scope, e)
		if err != nil {
			return err
		}
		for _, next := range out {
			if err := d.Publish(scope, next); err != nil {
				return err
			}
		}
	}
	return nil
}
