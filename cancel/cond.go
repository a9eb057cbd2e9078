// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

// CondVar is the subset of *sync.Cond's contract that Wait needs: block
// the calling goroutine, releasing the condition's associated lock for
// the duration, and be woken by a broadcast. A *sync.Cond built over any
// sync.Locker (including the teacher's channel-based
// [github.com/gocancel/cancel/concurrency.Mutex]) satisfies this
// interface without modification.
type CondVar interface {
	Wait()
	Broadcast()
}

// condHandler cancels a Wait by broadcasting its condition variable. It
// keeps no other state: cv.Wait is always re-entered in a loop by the
// caller (see Wait's doc comment), so there is nothing to drain or
// restore on the unregister path.
type condHandler struct {
	cv CondVar
}

func (h *condHandler) Cancel() { h.cv.Broadcast() }
func (h *condHandler) Reset()  {}

// Wait waits on cv, as the caller's own condition demands, until either
// cv is signaled or token is cancelled.
//
// The caller must hold cv's associated lock before calling Wait. Wait
// releases it for the duration of the blocking call and re-acquires it
// before returning, exactly like cv.Wait itself - because cancellation
// unblocks the wait by calling cv.Broadcast() with the lock released
// (the condition variable's native behavior), the registered handler
// takes no locks of its own.
//
// If token is already cancelled, Wait returns immediately. Spurious
// wakeups are the caller's concern exactly as for cv.Wait: callers should
// re-check their own condition (and token.IsCancelled) in their own loop,
// for example:
//
//	for !ready && !token.IsCancelled() {
//		cancel.Wait(cv, token)
//	}
func Wait(cv CondVar, token Token) {
	if token.IsCancelled() {
		return
	}
	h := &condHandler{cv: cv}
	if !token.TryRegister(h) {
		return
	}
	defer token.Unregister(h)
	cv.Wait()
}
