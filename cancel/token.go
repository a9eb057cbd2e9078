// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

// Token is an observable handle to cancellation state. It is the contract
// shared by [DummyToken], [StandaloneToken], and the tokens drawn from a
// [Source].
//
// IsCancelled is wait-free. TryRegister and Unregister are used by wait
// adapters such as [Wait] and [Poller.Poll] to couple a [Handler] to the token
// for the duration of a single blocking call; most callers never call
// them directly.
type Token interface {
	// IsCancelled reports whether the token has observed a cancellation
	// signal.
	IsCancelled() bool

	// TryRegister attempts to install h as the token's handler for the
	// duration of a blocking call. It returns false, without installing
	// anything, if the token is already cancelled - in which case the
	// caller must not block.
	//
	// At most one handler may be registered on a token at any instant.
	TryRegister(h Handler) bool

	// Unregister removes h, previously installed by a successful
	// TryRegister. On return it is guaranteed that h.Cancel will not be
	// invoked subsequently, and that if it was already invoked, it has
	// fully returned.
	Unregister(h Handler)
}
