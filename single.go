// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion

import (
	"sync/atomic"
)

// Single wraps a handler with one-shot enforcement.
// The handler can be invoked at most once; subsequent attempts panic
// (Invoke) or return false (TryInvoke).
//
// The protocol itself does not guard against double invocation — that is
// the operation's obligation. Single is the opt-in guard for operations
// whose completion paths can race (for example a result path and an error
// path fed from different goroutines).
type Single[A any] struct {
	used atomic.Uintptr
	h    Handler[A]
}

// Once creates a one-shot handler from a regular handler.
func Once[A any](h Handler[A]) *Single[A] {
	return &Single[A]{h: h}
}

// Invoke fires the handler with the given value.
// Panics if the handler has already been used.
func (s *Single[A]) Invoke(v A) {
	if s.used.Add(1) != 1 {
		panic("completion: handler invoked twice")
	}
	s.h(v)
}

// TryInvoke attempts to fire the handler.
// Returns true on success, or false if already used.
func (s *Single[A]) TryInvoke(v A) bool {
	if s.used.Add(1) != 1 {
		return false
	}
	s.h(v)
	return true
}

// Discard marks the handler as used without invoking it.
// This is useful for explicitly dropping a handler that will not fire.
func (s *Single[A]) Discard() {
	s.used.Store(1)
}

// Handler returns Invoke as a [Handler], for passing the guarded form to
// an operation in place of the raw handler.
func (s *Single[A]) Handler() Handler[A] {
	return s.Invoke
}
