// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel_test

import (
	"sync"
	"testing"
	"time"

	"github.com/gocancel/cancel/cancel"
)

func TestWaitReturnsImmediatelyIfAlreadyCancelled(t *testing.T) {
	src := cancel.NewSource()
	src.Cancel()
	tok := src.CreateToken()

	var mu sync.Mutex
	cv := sync.NewCond(&mu)

	mu.Lock()
	done := make(chan struct{})
	go func() {
		mu.Lock()
		cancel.Wait(cv, tok)
		mu.Unlock()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("Wait returned while mu was still held by the test goroutine")
	case <-time.After(20 * time.Millisecond):
	}
	mu.Unlock()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait on an already-cancelled token never returned")
	}
}

func TestWaitWokenByCancel(t *testing.T) {
	src := cancel.NewSource()
	tok := src.CreateToken()

	var mu sync.Mutex
	cv := sync.NewCond(&mu)

	ready := make(chan struct{})
	done := make(chan struct{})
	go func() {
		mu.Lock()
		close(ready)
		for !tok.IsCancelled() {
			cancel.Wait(cv, tok)
		}
		mu.Unlock()
		close(done)
	}()

	<-ready
	select {
	case <-done:
		t.Fatal("waiter returned before Cancel was ever called")
	case <-time.After(20 * time.Millisecond):
	}

	src.Cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Cancel did not wake the waiter")
	}
}

func TestWaitWokenByGenuineBroadcast(t *testing.T) {
	src := cancel.NewSource()
	tok := src.CreateToken()

	var mu sync.Mutex
	cv := sync.NewCond(&mu)
	ready := false

	done := make(chan struct{})
	go func() {
		mu.Lock()
		for !ready && !tok.IsCancelled() {
			cancel.Wait(cv, tok)
		}
		mu.Unlock()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	ready = true
	mu.Unlock()
	cv.Broadcast()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("a genuine condition broadcast did not wake the waiter")
	}
	if tok.IsCancelled() {
		t.Error("token reports cancelled though Cancel was never called")
	}
}
