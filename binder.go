// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion

// Completion binds one resolved token for the duration of an initiating
// function call. It owns the final handler and the carrier linked to it.
//
// The initiating function moves Handler into whatever mechanism will
// eventually invoke it and returns Result() to its caller. The Completion
// itself does not need to outlive the call; only the handler/carrier link
// does, and the handler keeps that link alive.
type Completion[A, R any] struct {
	// Handler is the final completion handler, callable with the
	// signature's argument. The operation takes ownership and invokes it
	// exactly once.
	Handler Handler[A]

	carrier Carrier[R]
}

// New resolves token into a linked handler/result pair.
//
// An initiating function declares the token as its last parameter and R as
// its return type:
//
//	func asyncOp[R any](token completion.Token[int, R]) R {
//		c := completion.New(token)
//		// ... move c.Handler into the operation ...
//		return c.Result()
//	}
//
// The token value passed at the call site determines A and R; both are
// inferred from the token type's Resolve method.
func New[A, R any](token Token[A, R]) Completion[A, R] {
	r := token.Resolve()
	return Completion[A, R]{Handler: r.Handler, carrier: r.Carrier}
}

// Result returns the value the initiating function reports to its caller.
// It may be called before the handler fires; see [Carrier].
func (c Completion[A, R]) Result() R {
	return c.carrier.Extract()
}

// Initiate resolves token, hands the handler to start, and returns the
// carrier's value. start must arrange for the handler to be invoked exactly
// once; it may move the handler to another goroutine and return before the
// handler fires.
//
//	f := completion.Initiate(completion.Deferred[int]{}, func(h completion.Handler[int]) {
//		go func() { h(compute()) }()
//	})
//	n := f.Wait()
func Initiate[A, R any](token Token[A, R], start func(Handler[A])) R {
	c := New(token)
	start(c.Handler)
	return c.Result()
}
