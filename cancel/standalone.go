// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

// StandaloneToken is a [Token] that owns its cancellation state directly.
// It has exactly one holder; its lifetime is the holder's lifetime. Unlike
// a token drawn from a [Source], it exposes Cancel and Reset on itself.
type StandaloneToken struct {
	core *cancelCore
}

// NewStandaloneToken creates a new StandaloneToken in the not-cancelled
// state.
func NewStandaloneToken() *StandaloneToken {
	return &StandaloneToken{core: newCancelCore()}
}

// IsCancelled reports whether Cancel has been called.
func (t *StandaloneToken) IsCancelled() bool {
	return t.core.isCancelled()
}

// TryRegister attempts to install h as the token's handler. See
// [Token.TryRegister].
func (t *StandaloneToken) TryRegister(h Handler) bool {
	return t.core.tryRegister(h)
}

// Unregister removes h, previously installed by a successful TryRegister.
// See [Token.Unregister].
func (t *StandaloneToken) Unregister(h Handler) {
	t.core.unregister(h)
}

// Cancel broadcasts the cancellation signal. It takes effect only once;
// subsequent calls return immediately once the first has completed,
// including the completion of any handler it invoked.
func (t *StandaloneToken) Cancel() {
	t.core.cancel()
}

// Reset clears cancellation, allowing the token to be reused.
//
// Reset is intended for tests and for reusing a token across independent
// rounds of work. It is undefined behavior to call Reset while any
// goroutine is registered with, or blocked inside a wait adapter using,
// this token; the caller alone is responsible for that ordering; see
// [DESIGN.md] for the rationale (no debug/release build mode exists in
// Go to assert it, unlike the reference implementation this package is
// modeled on).
func (t *StandaloneToken) Reset() {
	t.core.reset()
}
