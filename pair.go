// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion

// Pair bridges two-argument completion signatures onto the single-argument
// [Handler]. An operation completing with (A, B) invokes a
// Handler[Pair[A, B]], usually through [Join].
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Join adapts a pair handler to a two-argument call shape, for operations
// that complete with two values:
//
//	done := completion.Join(c.Handler)
//	done(n, err)
func Join[A, B any](h Handler[Pair[A, B]]) func(A, B) {
	return func(a A, b B) {
		h(Pair[A, B]{Fst: a, Snd: b})
	}
}

// Split adapts a two-argument function to a pair handler. Inverse of [Join].
func Split[A, B any](f func(A, B)) Handler[Pair[A, B]] {
	return func(p Pair[A, B]) {
		f(p.Fst, p.Snd)
	}
}
