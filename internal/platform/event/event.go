// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package event provides synchronous observer lists for observable state.

Handlers run on the caller's goroutine, in registration order, right after
the mutation that raised the event. A handler must not mutate the field it
is reacting to; nothing guards against the resulting notification loop.
*/
package event

// Handler receives the new value of an observed field.
type Handler[T any] func(value T)

// Subscription is the handle returned by [Event.Register]; it is the only
// way to unregister a handler.
type Subscription struct {
	active bool
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

type entry[T any] struct {
	subscription *Subscription
	handler      Handler[T]
}

// Event is a FIFO list of handlers. The zero value is ready to use.
type Event[T any] struct {
	entries []entry[T]
}

// Register appends handler and returns its subscription.
// A nil handler is ignored and yields a nil subscription.
func (e *Event[T]) Register(handler Handler[T]) *Subscription {
	if handler == nil {
		return nil
	}
	subscription := &Subscription{active: true}
	e.entries = append(e.entries, entry[T]{subscription: subscription, handler: handler})
	return subscription
}

// Unregister removes the handler registered under subscription.
// It reports whether a handler was removed.
func (e *Event[T]) Unregister(subscription *Subscription) bool {
	for i, en := range e.entries {
		if en.subscription == subscription {
			e.entries = append(e.entries[:i:i], e.entries[i+1:]...)
			subscription.active = false
			return true
		}
	}
	return false
}

// Raise calls every handler with value, in registration order.
// Handlers registered or removed during dispatch take effect on the next Raise.
func (e *Event[T]) Raise(value T) {
	snapshot := e.entries
	for _, en := range snapshot {
		en.handler(value)
	}
}
