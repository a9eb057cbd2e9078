// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package cancel

import (
	"sync"

	"github.com/gocancel/cancel/concurrency"
)

// Worker is a managed goroutine that owns a private [Source] bound to its
// body. The body should periodically check the token it is given (via
// Token.IsCancelled, or implicitly through a cancellable wait such as
// [Wait] or [Poller.Poll]) and return once cancellation is observed.
type Worker struct {
	src *Source
	wg  sync.WaitGroup

	resetGate concurrency.OnceIndicator
}

// WorkerOption configures a [Worker] at construction time.
type WorkerOption func(*Worker, *[]SourceOption)

// WithWorkerEvents enables the worker's private source's lifecycle event
// stream; see [WithEvents]. Subscribe through [Worker.Source].
func WithWorkerEvents(bufSize int) WorkerOption {
	return func(_ *Worker, srcOpts *[]SourceOption) {
		*srcOpts = append(*srcOpts, WithEvents(bufSize))
	}
}

// NewWorker launches body on a new goroutine with a token drawn from a
// fresh private source, and returns immediately without waiting for body
// to run or return.
//
// If body panics, the goroutine - and with it the process, per Go's
// default handling of an unrecovered goroutine panic - terminates. This
// matches the conventional behavior for unhandled thread exceptions the
// reference design calls for, without any extra recover/re-panic
// machinery: an uncaught panic in body already crashes the program.
func NewWorker(body func(Token), opts ...WorkerOption) *Worker {
	w := &Worker{resetGate: concurrency.NewOnceIndicator()}
	var srcOpts []SourceOption
	for _, opt := range opts {
		opt(w, &srcOpts)
	}
	w.src = NewSource(srcOpts...)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		body(w.src.CreateToken())
	}()
	return w
}

// Source returns the worker's private source, primarily so callers can
// subscribe to its lifecycle events (if enabled with
// [WithWorkerEvents]) or call [Link] against it.
func (w *Worker) Source() *Source {
	return w.src
}

// Joinable reports whether Reset has not yet completed (and therefore
// the worker's goroutine may still be running). It still reports true
// while the first Reset is in progress.
func (w *Worker) Joinable() bool {
	return !w.resetGate.Test()
}

// Reset cancels the worker's source and then waits for its goroutine to
// return, in that fixed order: cancel first, join second. Reset is
// idempotent; concurrent and repeated calls all block until the one real
// reset has finished.
func (w *Worker) Reset() {
	w.resetGate.Do(func() {
		w.src.Cancel()
		w.wg.Wait()
		w.src.Close()
	})
}

// Close is an alias for Reset, for callers that prefer an io.Closer-like
// shutdown spelling.
func (w *Worker) Close() error {
	w.Reset()
	return nil
}
