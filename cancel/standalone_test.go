// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel_test

import (
	"sync"
	"testing"
	"time"

	"github.com/gocancel/cancel/cancel"
)

func TestStandaloneTokenNotCancelled(t *testing.T) {
	tok := cancel.NewStandaloneToken()
	if tok.IsCancelled() {
		t.Fatal("new StandaloneToken reports cancelled")
	}
	h := &countingHandler{}
	if !tok.TryRegister(h) {
		t.Fatal("TryRegister on fresh token = false, want true")
	}
	tok.Unregister(h)
	if h.cancels != 0 || h.resets != 0 {
		t.Errorf("got cancels=%d resets=%d, want 0, 0 (Unregister with no cancellation)", h.cancels, h.resets)
	}
}

func TestStandaloneTokenCancelWithNoHandler(t *testing.T) {
	tok := cancel.NewStandaloneToken()
	tok.Cancel()
	if !tok.IsCancelled() {
		t.Fatal("IsCancelled() = false after Cancel()")
	}
	h := &countingHandler{}
	if tok.TryRegister(h) {
		t.Error("TryRegister after Cancel() = true, want false")
	}
}

func TestStandaloneTokenCancelWithRegisteredHandler(t *testing.T) {
	tok := cancel.NewStandaloneToken()
	h := &countingHandler{}
	if !tok.TryRegister(h) {
		t.Fatal("TryRegister = false")
	}
	tok.Cancel()
	if h.cancels != 1 {
		t.Errorf("got %d calls to Cancel, want 1", h.cancels)
	}
	tok.Unregister(h)
	if h.resets != 1 {
		t.Errorf("got %d calls to Reset, want 1", h.resets)
	}
}

// TestStandaloneTokenUnregisterBlocksForInFlightCancel exercises the
// canceller/unregisterer handshake directly: a handler whose Cancel blocks
// until released, and a concurrent Unregister that must wait for it to
// finish (and then observe the Reset call) rather than racing ahead.
type blockingHandler struct {
	release  chan struct{}
	canceled chan struct{}
	resetCh  chan struct{}
}

func newBlockingHandler() *blockingHandler {
	return &blockingHandler{
		release:  make(chan struct{}),
		canceled: make(chan struct{}),
		resetCh:  make(chan struct{}),
	}
}

func (h *blockingHandler) Cancel() {
	close(h.canceled)
	<-h.release
}

func (h *blockingHandler) Reset() {
	close(h.resetCh)
}

func TestStandaloneTokenUnregisterBlocksForInFlightCancel(t *testing.T) {
	tok := cancel.NewStandaloneToken()
	h := newBlockingHandler()
	if !tok.TryRegister(h) {
		t.Fatal("TryRegister = false")
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tok.Cancel()
	}()

	<-h.canceled // Cancel is now blocked inside the handler.

	unregisterDone := make(chan struct{})
	go func() {
		tok.Unregister(h)
		close(unregisterDone)
	}()

	select {
	case <-unregisterDone:
		t.Fatal("Unregister returned before the in-flight Cancel finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(h.release) // let Cancel complete.

	select {
	case <-unregisterDone:
	case <-time.After(time.Second):
		t.Fatal("Unregister did not return after Cancel finished")
	}
	select {
	case <-h.resetCh:
	default:
		t.Error("Unregister returned without calling Reset")
	}
	wg.Wait()
}

func TestStandaloneTokenReset(t *testing.T) {
	tok := cancel.NewStandaloneToken()
	tok.Cancel()
	if !tok.IsCancelled() {
		t.Fatal("IsCancelled() = false after Cancel()")
	}
	tok.Reset()
	if tok.IsCancelled() {
		t.Fatal("IsCancelled() = true after Reset()")
	}
	h := &countingHandler{}
	if !tok.TryRegister(h) {
		t.Fatal("TryRegister after Reset() = false, want true")
	}
	tok.Cancel()
	if h.cancels != 1 {
		t.Errorf("got %d calls to Cancel after reuse, want 1", h.cancels)
	}
}
