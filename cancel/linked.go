// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

import "github.com/gocancel/cancel/errors"

// linkHandler cancels child when invoked; it has no side effect to undo.
type linkHandler struct {
	child *Source
}

func (h *linkHandler) Cancel() { h.child.Cancel() }
func (h *linkHandler) Reset()  {}

// Link arranges for child to be cancelled whenever parent is. It is built
// entirely out of the public handler-registration API: there is no
// parent/child tree in the core (spec.md is explicit that cancellation
// scopes are flat), so Link is a thin layer a caller opts into, not a
// hidden mechanism the core relies on.
//
// Link returns an unlink function. Calling it removes the linkage; if
// parent was never cancelled, unlink is cheap (a single Unregister). If
// parent has already been cancelled, calling unlink is still safe but
// child has already been cancelled and cannot be un-cancelled by it.
//
// Link panics if parent is already cancelled, since there is then nothing
// to register a handler against; callers should check
// parent.IsCancelled() first if that is a real possibility, and cancel
// child directly in that case.
func Link(parent, child *Source) (unlink func()) {
	h := &linkHandler{child: child}
	token := parent.CreateToken()
	if !token.TryRegister(h) {
		panic(errors.AutoMsg("parent source is already cancelled"))
	}
	return func() {
		token.Unregister(h)
	}
}
