// Copyright (c) 2019-2026 The Gocancel Authors.
// Use of this source code is governed by an MIT-style license.

package concurrency_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gocancel/cancel/concurrency"
)

type one struct {
	v atomic.Int32
}

func (o *one) Increase() {
	o.v.Add(1)
}

func (o *one) Load() int32 {
	return o.v.Load()
}

func TestOnceIndicator_Do_Once(t *testing.T) {
	o := new(one)
	oi := concurrency.NewOnceIndicator()
	const N int = 10
	rs := make([]bool, N)
	var wg sync.WaitGroup
	wg.Add(N)
	for i := 0; i < N; i++ {
		go func(rank int) {
			defer wg.Done()
			rs[rank] = oi.Do(func() {
				o.Increase()
			})
			if v := o.Load(); v != 1 {
				t.Errorf("goroutine %d, once failed: %d is not 1", rank, v)
			}
		}(i)
	}
	wg.Wait()
	if v := o.Load(); v != 1 {
		t.Errorf("main goroutine, once failed: %d is not 1", v)
	}
	var ctr int
	for _, r := range rs {
		if r {
			ctr++
		}
	}
	if ctr != 1 {
		t.Errorf("not only one call of Do return true, #true: %d", ctr)
	}
}

func TestOnceIndicator_Do_Panic(t *testing.T) {
	oi := concurrency.NewOnceIndicator()
	func() {
		defer func() {
			if e := recover(); e == nil {
				t.Fatal("OnceIndicator.Do did NOT panic")
			}
		}()
		oi.Do(func() {
			panic("panic")
		})
	}()

	oi.Do(func() {
		t.Fatal("OnceIndicator.Do called twice")
	})

	select {
	case <-oi.C():
	default:
		t.Error("OnceIndicator.Do did NOT trigger the channel after being called")
	}
}

func TestOnceIndicator_Do_NilF(t *testing.T) {
	oi := concurrency.NewOnceIndicator()
	if !oi.Do(nil) {
		t.Error("OnceIndicator.Do returned false on the first call")
	}

	select {
	case <-oi.C():
	default:
		t.Error("OnceIndicator.Do did NOT trigger the channel after being called with a nil f")
	}
}
