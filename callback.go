// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion

// Callback is the direct-invocation completion token: the token already is
// the handler. This is the primary case of the protocol — resolution yields
// the token value itself, unwrapped, and the initiating function returns
// [Unit].
//
// The resolved handler aliases the callback's function value; no
// continuation state is duplicated.
type Callback[A any] func(A)

// Resolve implements [Token]. The handler is the callback itself; the
// carrier is a no-op.
func (f Callback[A]) Resolve() Resolution[A, Unit] {
	return Resolution[A, Unit]{
		Handler: Handler[A](f),
		Carrier: unitCarrier{},
	}
}

// Callback2 is the direct-invocation token for two-argument completion
// signatures. The handler argument is a [Pair]; the callback receives the
// pair split back into its elements.
type Callback2[A, B any] func(A, B)

// Resolve implements [Token] over Pair[A, B].
func (f Callback2[A, B]) Resolve() Resolution[Pair[A, B], Unit] {
	return Resolution[Pair[A, B], Unit]{
		Handler: Split(f),
		Carrier: unitCarrier{},
	}
}
