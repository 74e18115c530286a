// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion

import "sync/atomic"

// Poll is the completion token for external runtimes that poll for
// completion instead of blocking, such as event loops that visit pending
// operations once per tick. The initiating function returns a [*Pending]
// handle with non-blocking accessors only.
type Poll[A any] struct{}

// Resolve implements [Token]. Each resolution creates an independent
// handle; the handler publishes the value into it.
func (Poll[A]) Resolve() Resolution[A, *Pending[A]] {
	p := &Pending[A]{}
	return Resolution[A, *Pending[A]]{
		Handler: p.publish,
		Carrier: Immediate(p),
	}
}

// Pending is the non-blocking completion handle produced by [Poll].
type Pending[A any] struct {
	v atomic.Pointer[A]
}

// publish is the handler linked to this handle.
// Panics if the operation fires the handler twice.
func (p *Pending[A]) publish(v A) {
	if !p.v.CompareAndSwap(nil, &v) {
		panic("completion: pending handle completed twice")
	}
}

// TryGet returns the completion value and true if the handler has fired,
// or zero and false while still pending. It never blocks.
func (p *Pending[A]) TryGet() (A, bool) {
	if ptr := p.v.Load(); ptr != nil {
		return *ptr, true
	}
	var zero A
	return zero, false
}

// MustGet returns the completion value.
// Panics if the handler has not fired yet.
func (p *Pending[A]) MustGet() A {
	ptr := p.v.Load()
	if ptr == nil {
		panic("completion: pending handle not completed")
	}
	return *ptr
}
