// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

//go:build unix

package cancel

import (
	"golang.org/x/sys/unix"

	"github.com/gocancel/cancel/errors"
)

// Poller monitors file descriptors via [Poller.Poll], cancellable through
// a [Token]. It owns a self-pipe used only to wake its own blocking
// multiplex call; the pipe is created lazily, on the first call to Poll,
// and reused by every later call on the same Poller.
//
// The reference design this package is modeled on keys a self-pipe by
// OS thread, since allocating one per call would dominate cost. Go
// goroutines have no stable OS-thread identity to key off of, so a
// Poller plays that role explicitly instead: create one per goroutine
// that repeatedly calls Poll (e.g. one per worker loop) and reuse it,
// rather than constructing a new Poller per call.
//
// The zero value is ready to use.
type Poller struct {
	rfd, wfd int
	ready    bool
	initErr  error
}

// pipeHandler cancels a Poll by writing one byte to the self-pipe's write
// end, waking the blocked unix.Poll call. Reset drains the byte it wrote,
// iff cancellation actually fired while registered.
type pipeHandler struct {
	wfd, rfd int
}

func (h *pipeHandler) Cancel() {
	var b [1]byte
	for {
		_, err := unix.Write(h.wfd, b[:])
		if err != unix.EINTR {
			return
		}
	}
}

func (h *pipeHandler) Reset() {
	var b [1]byte
	for {
		_, err := unix.Read(h.rfd, b[:])
		if err != unix.EINTR {
			return
		}
	}
}

// ensurePipe lazily creates the self-pipe on first use. A Poller is not
// safe for concurrent Poll calls from multiple goroutines - precisely
// because it stands in for per-thread-local storage, it is meant to be
// owned by one caller at a time.
func (p *Poller) ensurePipe() error {
	if p.ready {
		return p.initErr
	}
	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		p.initErr = errors.AutoWrap(err)
	} else {
		p.rfd, p.wfd = fds[0], fds[1]
	}
	p.ready = true
	return p.initErr
}

// Close releases the self-pipe. It is a no-op if Poll was never called.
// A Poller is not usable afterward.
//
// Tearing down a self-pipe takes two separate close(2) calls, either of
// which can independently fail; both are attempted regardless, and any
// resulting errors are combined with [errors.Combine] rather than
// discarding one in favor of the other.
func (p *Poller) Close() error {
	if !p.ready || p.initErr != nil {
		return nil
	}
	var errs []error
	if err := unix.Close(p.rfd); err != nil {
		errs = append(errs, errors.AutoWrap(err))
	}
	if err := unix.Close(p.wfd); err != nil {
		errs = append(errs, errors.AutoWrap(err))
	}
	return errors.Combine(errs...)
}

// Poll monitors fd for events until it is ready or token is cancelled.
// On cancellation it returns (0, nil): the zero value for revents
// signals cancellation to the caller exactly as a genuine zero-revents
// readiness result would, consistent with the reference design (the
// caller is expected to be looping on token.IsCancelled() / Token
// anyway, and a bare zero never occurs on a real readiness event for a
// request with a nonzero events mask).
//
// EINTR from the underlying poll(2) call is retried transparently.
func (p *Poller) Poll(fd int, events int16, token Token) (revents int16, err error) {
	if initErr := p.ensurePipe(); initErr != nil {
		return 0, initErr
	}
	if token.IsCancelled() {
		return 0, nil
	}
	h := &pipeHandler{wfd: p.wfd, rfd: p.rfd}
	if !token.TryRegister(h) {
		return 0, nil
	}
	defer token.Unregister(h)

	pfds := []unix.PollFd{
		{Fd: int32(fd), Events: events},
		{Fd: int32(p.rfd), Events: unix.POLLIN},
	}
	for {
		_, perr := unix.Poll(pfds, -1)
		if perr != nil {
			if perr == unix.EINTR {
				continue
			}
			return 0, errors.AutoWrap(perr)
		}
		break
	}
	return pfds[0].Revents, nil
}
