// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

// DummyToken is a [Token] that never cancels. Registration and
// unregistration are no-ops that always succeed, so generic code can be
// handed "never cancels" without special-casing the caller.
//
// The zero value is ready to use; there is only ever one useful instance,
// exported as [Dummy].
type DummyToken struct{}

// Dummy is the single shared DummyToken instance.
var Dummy Token = DummyToken{}

// IsCancelled always returns false.
func (DummyToken) IsCancelled() bool { return false }

// TryRegister always returns true without installing h anywhere.
func (DummyToken) TryRegister(Handler) bool { return true }

// Unregister does nothing.
func (DummyToken) Unregister(Handler) {}
