// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion

import (
	"context"
	"sync/atomic"
)

// Deferred is the future-producing completion token. The initiating
// function returns a [*Future] that reports the handler's argument once the
// operation fires the handler.
type Deferred[A any] struct{}

// Resolve implements [Token]. Each resolution creates an independent
// future; the handler is the future's one-shot satisfier.
func (Deferred[A]) Resolve() Resolution[A, *Future[A]] {
	f := &Future[A]{done: make(chan struct{})}
	return Resolution[A, *Future[A]]{
		Handler: f.complete,
		Carrier: Immediate(f),
	}
}

// Future is the deferred-result handle produced by [Deferred]. It is
// pending until its handler fires, then reports the completion value
// forever after.
type Future[A any] struct {
	used atomic.Uintptr
	done chan struct{}
	v    A
}

// complete is the handler linked to this future.
// Panics if the operation fires the handler twice.
func (f *Future[A]) complete(v A) {
	if f.used.Add(1) != 1 {
		panic("completion: future completed twice")
	}
	f.v = v
	close(f.done)
}

// Wait blocks until the handler fires and returns the completion value.
func (f *Future[A]) Wait() A {
	<-f.done
	return f.v
}

// WaitContext blocks until the handler fires or ctx is done.
// Returns ctx.Err() when the context wins; the future stays usable and a
// later Wait still observes the value.
func (f *Future[A]) WaitContext(ctx context.Context) (A, error) {
	select {
	case <-f.done:
		return f.v, nil
	case <-ctx.Done():
		var zero A
		return zero, ctx.Err()
	}
}

// TryGet returns the completion value and true if the handler has fired,
// or zero and false while still pending.
func (f *Future[A]) TryGet() (A, bool) {
	select {
	case <-f.done:
		return f.v, true
	default:
		var zero A
		return zero, false
	}
}

// Done returns a channel closed when the handler fires, for use in select.
func (f *Future[A]) Done() <-chan struct{} {
	return f.done
}
