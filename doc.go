// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package completion provides compile-time resolution of completion tokens
// for asynchronous initiating functions in Go.
//
// An initiating function is written once against a completion [Handler],
// yet supports multiple caller-chosen continuation styles: a plain
// callback, a future-like deferred result, a channel, or a non-blocking
// polling handle. The caller selects the style by passing a completion
// token; the token's declared type determines, at instantiation time, the
// concrete handler the operation invokes and the value the initiating
// function returns.
//
// # Design Philosophy
//
// completion provides:
//   - A minimal but open token protocol: any package can define new
//     continuation strategies without modifying this one
//   - Type-parameter dispatch for strategy selection; no runtime type
//     inspection, no registration tables
//   - No I/O, no scheduling, no threads of its own: the package only wires
//     a token to a handler and a result
//
// # Token Protocol
//
// A completion token implements [Token] for a handler argument type A and
// an initiating-function return type R:
//
//   - [Token]: type Token[A, R] — Resolve() Resolution[A, R]
//   - [Resolution]: the linked (handler, carrier) pair one resolution yields
//   - [Carrier]: produces the initiating function's return value
//   - [Satisfies]: compile-time assertion that a token type resolves for a
//     given (argument, return) pair
//
// Strategy selection is purely by the token's declared type: instantiating
// [New] with a token type binds that type's Resolve method at compile time.
// A type that is neither a handler nor a token does not satisfy the [Token]
// constraint and the program does not build; there is no runtime error path
// in this package.
//
// # Binding
//
//   - [Completion]: per-call binder owning the handler and its carrier
//   - [New]: resolve a token into a Completion
//   - [Initiate]: resolve, hand the handler to an operation, return the result
//
// The operation takes the Handler and invokes it exactly once, possibly
// from another goroutine; the Completion itself need not outlive the
// initiating function. Exactly-once invocation is the operation's
// obligation, not enforced here — wrap the handler with [Once] when an
// operation wants the guard.
//
// # Tokens
//
// Direct invocation (the primary case — the token is the handler):
//
//   - [Callback]: func(A) used as its own handler, returns [Unit]
//   - [Callback2]: two-argument variant over [Pair]
//
// Deferred result:
//
//   - [Deferred]: returns a [*Future] satisfied when the handler fires
//   - [Future.Wait], [Future.WaitContext], [Future.TryGet], [Future.Done]
//
// Channel delivery:
//
//   - [Chan]: returns a receive channel that delivers the completion value
//     and is then closed
//
// Polling, for external event-loop runtimes that must not block:
//
//   - [Poll]: returns a [*Pending] handle
//   - [Pending.TryGet], [Pending.MustGet]
//
// # One-Shot Handlers
//
// [Single] wraps a handler with at-most-once enforcement:
//
//   - [Once]: create a one-shot handler
//   - [Single.Invoke]: invoke (panics on reuse)
//   - [Single.TryInvoke]: non-panicking variant
//   - [Single.Discard]: drop without invoking
//
// # Payload Shapes
//
// Completion signatures carry a single argument. Multi-value completions go
// through [Pair] ([Join], [Split]), and fallible completions through
// [Either] ([Left], [Right], [Ok], [Fail]).
//
// # Example
//
// An initiating function written once:
//
//	func readAsync[R any](src <-chan int, token completion.Token[int, R]) R {
//		c := completion.New(token)
//		go func() {
//			c.Handler(<-src)
//		}()
//		return c.Result()
//	}
//
// used with different tokens:
//
//	readAsync(src, completion.Callback[int](func(n int) { fmt.Println(n) }))
//	f := readAsync(src, completion.Deferred[int]{})
//	n := f.Wait()
package completion
