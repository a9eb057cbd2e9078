// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

import (
	"sync"
	"sync/atomic"

	"github.com/gocancel/cancel/concurrency"
)

// handlerBox wraps a Handler so the registration slot always stores a
// consistent pointer type, regardless of the concrete Handler stored in
// it. Two package-level sentinel instances mark the CANCELLING and
// CANCELLED_SENTINEL states from the slot diagram in the handler
// registration protocol; their identity (not their contents) is what
// distinguishes them from a live registration.
type handlerBox struct {
	h Handler
}

var (
	cancellingSentinel = &handlerBox{}
	cancelledSentinel  = &handlerBox{}
)

// cancelCore is the shared state behind a [Source] and a [StandaloneToken]:
// the monotonic cancelled flag, the lock-free handler-registration slot,
// and the handshake used to serialize the canceller against a concurrent
// unregisterer (see the slot transitions made by tryRegister, unregister
// and cancel below).
//
// The zero value is not usable; construct with newCancelCore.
type cancelCore struct {
	cancelled atomic.Bool
	slot      atomic.Pointer[handlerBox]

	// mu/cond serialize the handoff between a canceller mid-Cancel and a
	// waiter that reaches unregister concurrently. mu is the teacher's
	// own channel-based Mutex rather than a bare sync.Mutex: it is only
	// ever touched on the slow path (a cancel in progress, or a waiter
	// observing that), exactly as the design calls for.
	mu   concurrency.Mutex
	cond *sync.Cond

	// gate makes Cancel idempotent and lets every concurrent caller
	// block until the one real cancellation has fully finished,
	// including having invoked and awaited any registered handler.
	gate concurrency.OnceIndicator

	onEvent func(Event) // nil unless the owning Source was built with WithEvents.
}

func newCancelCore() *cancelCore {
	c := &cancelCore{gate: concurrency.NewOnceIndicator()}
	c.mu = concurrency.NewMutex()
	c.cond = sync.NewCond(c.mu)
	return c
}

// isCancelled reports whether cancel has been called. It is wait-free.
func (c *cancelCore) isCancelled() bool {
	return c.cancelled.Load()
}

// tryRegister installs h in the slot if it is currently empty and the
// core has not been cancelled. It performs at most one atomic
// compare-and-swap on the fast path.
func (c *cancelCore) tryRegister(h Handler) bool {
	if c.cancelled.Load() {
		return false
	}
	box := &handlerBox{h: h}
	ok := c.slot.CompareAndSwap(nil, box)
	if ok {
		c.emit(EventHandlerRegistered)
	}
	return ok
}

// unregister removes h from the slot. If a cancellation raced ahead and
// is invoking (or has invoked) h.Cancel, unregister blocks until that
// invocation has completed, then calls h.Reset to undo its side effect.
func (c *cancelCore) unregister(h Handler) {
	cur := c.slot.Load()
	if cur != nil && cur != cancellingSentinel && cur != cancelledSentinel {
		if c.slot.CompareAndSwap(cur, nil) {
			c.emit(EventHandlerUnregistered)
			return
		}
	}

	c.mu.Lock()
	for c.slot.Load() != cancelledSentinel {
		c.cond.Wait()
	}
	c.mu.Unlock()

	h.Reset()
	c.emit(EventHandlerUnregistered)
}

// cancel broadcasts the cancellation signal. It is idempotent: concurrent
// and repeated calls all block until the one real cancellation -
// including any handler invocation it triggers - has fully finished.
func (c *cancelCore) cancel() {
	c.gate.Do(func() {
		c.cancelled.Store(true)
		c.emit(EventCancelling)
		for {
			cur := c.slot.Load()
			switch {
			case cur == nil:
				if c.slot.CompareAndSwap(nil, cancelledSentinel) {
					c.emit(EventCancelled)
					return
				}
			case cur == cancellingSentinel || cur == cancelledSentinel:
				// Another party already observed no handler to run;
				// nothing left for us to do (should not happen under
				// the OnceIndicator gate, kept defensively).
				return
			default:
				if c.slot.CompareAndSwap(cur, cancellingSentinel) {
					cur.h.Cancel()
					c.mu.Lock()
					c.slot.Store(cancelledSentinel)
					c.cond.Broadcast()
					c.mu.Unlock()
					c.emit(EventCancelled)
					return
				}
			}
		}
	})
}

// reset clears cancellation and rearms the core for reuse. Only valid on
// a core backing a StandaloneToken, and only when no waiter is currently
// registered or blocked; see StandaloneToken.Reset.
func (c *cancelCore) reset() {
	c.cancelled.Store(false)
	c.slot.Store(nil)
	c.gate = concurrency.NewOnceIndicator()
}

func (c *cancelCore) emit(e Event) {
	if c.onEvent != nil {
		c.onEvent(e)
	}
}
