// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

// Package cancel provides a cooperative cancellation primitive for
// multithreaded Go programs.
//
// The package lets one goroutine ask another to abandon whatever blocking
// operation it is currently performing and return as promptly as possible.
// The hard part is not the cancellation request itself, but making a
// blocking primitive (a condition-variable wait, a file-descriptor poll)
// cancellable without races, without lost wakeups, and without unbounded
// allocation per wait.
//
// # Tokens
//
// A [Token] is an observable handle to cancellation state. There are three
// variants sharing one contract:
//
//   - [DummyToken], which never cancels;
//   - [StandaloneToken], which owns its cancellation state directly;
//   - a token drawn from a [Source] (via [Source.CreateToken]), many of
//     which may observe the same source.
//
// # Wait adapters
//
// [Wait] adapts a condition variable; [Poller.Poll] (on unix build targets) adapts
// a pollable file descriptor. Both register a short-lived [Handler] with
// the token for the duration of the blocking call and guarantee its
// removal on every exit path.
//
// # Workers
//
// A [Worker] is a managed goroutine whose body receives a token bound to a
// private source; [Worker.Reset] cancels the source and then waits for the
// goroutine to return, in that order.
package cancel
