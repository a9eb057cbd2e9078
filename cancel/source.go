// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

import "github.com/gocancel/cancel/errors"

// Source is the authoritative owner of cancellation state shared by any
// number of tokens drawn from it via [Source.CreateToken]. The source
// must outlive every token it created; destroying a source while a token
// derived from it is still in scope is undefined, exactly as for the
// handler-registration protocol it implements.
type Source struct {
	core  *cancelCore
	hub   *eventHub // nil unless created with WithEvents
	bufSz int
}

// SourceOption configures a [Source] at construction time.
type SourceOption func(*Source)

// WithEvents enables the source's lifecycle event stream (see [Event]).
// bufSize is the default subscriber buffer size passed through to
// [Source.Subscribe]; non-positive values mean unbuffered.
func WithEvents(bufSize int) SourceOption {
	return func(s *Source) {
		s.hub = newEventHub(bufSize)
		s.bufSz = bufSize
	}
}

// NewSource creates a new, not-cancelled Source.
func NewSource(opts ...SourceOption) *Source {
	s := &Source{core: newCancelCore()}
	for _, opt := range opts {
		opt(s)
	}
	if s.hub != nil {
		s.core.onEvent = s.hub.publish
	}
	return s
}

// CreateToken returns a lightweight [Token] bound to this source. The
// call itself never blocks and never installs a handler; many tokens may
// be created from the same source and will all observe the same
// cancellation state.
func (s *Source) CreateToken() Token {
	return sourcedToken{core: s.core}
}

// IsCancelled reports whether Cancel has been called on this source.
func (s *Source) IsCancelled() bool {
	return s.core.isCancelled()
}

// Cancel broadcasts the cancellation signal to every token created from
// this source. It takes effect only once: if a handler is registered on
// any token drawn from this source at the moment of the call, Cancel
// invokes it and does not return until that invocation has finished.
// Concurrent and repeated calls all observe the same completion.
func (s *Source) Cancel() {
	s.core.cancel()
}

// Close cancels the source, if it has not been cancelled already, and
// releases the resources backing its event stream (if any). It is the
// idiomatic substitute for the reference implementation's destructor,
// which cancels and then waits for any in-progress handler invocation to
// finish - Cancel already provides that guarantee, so Close adds only
// event-stream teardown.
func (s *Source) Close() {
	s.core.cancel()
	if s.hub != nil {
		s.hub.close()
	}
}

// Subscribe returns a channel receiving this source's lifecycle events.
// It panics if the source was not created with [WithEvents]. The channel
// is closed when the source is closed via [Source.Close].
func (s *Source) Subscribe(bufSize int) <-chan Event {
	if s.hub == nil {
		panic(errors.AutoMsg("source was not created with WithEvents"))
	}
	if bufSize < 0 {
		bufSize = s.bufSz
	}
	return s.hub.Subscribe(bufSize)
}

// Unsubscribe stops delivery to a channel obtained from
// [Source.Subscribe].
func (s *Source) Unsubscribe(c <-chan Event) {
	if s.hub == nil {
		panic(errors.AutoMsg("source was not created with WithEvents"))
	}
	s.hub.Unsubscribe(c)
}

// sourcedToken is the Token implementation returned by
// Source.CreateToken. It is a thin, comparable reference into the
// source's shared core: creating one never allocates beyond the core
// pointer copy, and many coexist safely.
type sourcedToken struct {
	core *cancelCore
}

func (t sourcedToken) IsCancelled() bool { return t.core.isCancelled() }

func (t sourcedToken) TryRegister(h Handler) bool { return t.core.tryRegister(h) }

func (t sourcedToken) Unregister(h Handler) { t.core.unregister(h) }
