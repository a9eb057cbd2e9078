// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

import "github.com/gocancel/cancel/concurrency"

// Event is a lifecycle notification emitted by a [Source] created with
// [WithEvents]. It is the package's substitute for a logging dependency:
// the teacher repository this package is built on carries no logging
// library, and instead exposes its own internal transitions through a
// typed broadcaster. Subscribers receive exactly the transitions listed
// below, in the order they occur on the source.
type Event int

const (
	// EventCancelling is emitted once Cancel has been invoked and the
	// cancelled flag has been set, before any registered handler has
	// been invoked.
	EventCancelling Event = iota

	// EventCancelled is emitted once Cancel has fully finished: any
	// handler that was registered at the moment of cancellation has
	// been invoked and has returned.
	EventCancelled

	// EventHandlerRegistered is emitted each time TryRegister installs a
	// handler.
	EventHandlerRegistered

	// EventHandlerUnregistered is emitted each time Unregister removes a
	// handler, whether or not cancellation fired while it was
	// registered.
	EventHandlerUnregistered
)

// String returns a short, human-readable name for e.
func (e Event) String() string {
	switch e {
	case EventCancelling:
		return "cancelling"
	case EventCancelled:
		return "cancelled"
	case EventHandlerRegistered:
		return "handler-registered"
	case EventHandlerUnregistered:
		return "handler-unregistered"
	default:
		return "unknown"
	}
}

// eventHub fans Event values out to any number of subscribers using the
// teacher's channel-based pub-sub primitive.
type eventHub struct {
	b concurrency.Broadcaster[Event]
}

func newEventHub(bufSize int) *eventHub {
	return &eventHub{b: concurrency.NewBroadcaster[Event](bufSize)}
}

// Subscribe returns a channel that receives every Event published after
// the call, until the Source is closed (closing the channel) or the
// caller unsubscribes. Cancelling the Source does not close the channel.
func (h *eventHub) Subscribe(bufSize int) <-chan Event {
	return h.b.Subscribe(bufSize)
}

// Unsubscribe stops delivery to c and discards any buffered events.
func (h *eventHub) Unsubscribe(c <-chan Event) {
	h.b.Unsubscribe(c)
}

func (h *eventHub) publish(e Event) {
	if !h.b.Closed() {
		h.b.Broadcast(e)
	}
}

func (h *eventHub) close() {
	if !h.b.Closed() {
		h.b.Close()
	}
}
