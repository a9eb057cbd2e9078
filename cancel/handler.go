// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

// Handler is installed on a [Token] for the duration of a single blocking
// call. The token invokes Cancel on it to unblock whatever primitive the
// waiter is sitting on.
//
// Implementations are short-lived objects, typically allocated on the
// waiter's stack frame for the duration of the blocking call, never
// copied after registration. A Handler must not re-enter the
// TryRegister/Unregister methods of the token it is registered with.
type Handler interface {
	// Cancel unblocks whatever primitive the waiter is sitting on, by a
	// mechanism Cancel knows about (e.g. broadcasting a condition
	// variable, writing to a self-pipe).
	//
	// Cancel is called at most once per registration, is idempotent,
	// non-blocking, and may be invoked from an arbitrary goroutine.
	Cancel()

	// Reset undoes any side effect Cancel made observable (e.g. draining
	// a self-pipe).
	//
	// Reset is called at most once per registration, by the waiter on
	// the unregistration path, and only when cancellation actually fired
	// while the handler was registered.
	Reset()
}
