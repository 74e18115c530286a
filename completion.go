// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion

// Handler is the concrete invocable continuation for a completion signature
// with argument type A. An asynchronous operation takes ownership of a
// Handler and invokes it exactly once when the operation completes, possibly
// from a different goroutine than the one that created it.
type Handler[A any] func(A)

// Unit is the return type of initiating functions whose token carries no
// result mechanism of its own, such as [Callback].
type Unit = struct{}

// Token is the interface for completion tokens. A token resolves, for a
// handler argument type A, into the concrete handler the operation invokes
// and the value of type R the initiating function returns.
//
// Resolution is selected purely by the token's declared type: instantiating
// a generic initiating function with a token type binds that type's Resolve
// method at compile time. Passing a value that implements Token for the
// wrong argument type, or not at all, fails the build — there is no runtime
// fallback and no runtime inspection.
//
// Resolve consumes the token. For tokens that are themselves invocable with
// the signature ([Callback]), the resolved handler aliases the token value
// directly; adapter tokens construct fresh handler state instead.
type Token[A, R any] interface {
	Resolve() Resolution[A, R]
}

// Resolution is what resolving one token yields: the handler to hand to the
// operation, and the carrier linked to that handler for the lifetime of the
// call. Each Resolve call produces an independent pair; resolutions of
// distinct tokens share no state.
type Resolution[A, R any] struct {
	// Handler is the final completion handler, callable with the
	// signature's argument.
	Handler Handler[A]

	// Carrier produces the initiating function's return value.
	Carrier Carrier[R]
}

// Satisfies is a compile-time assertion that token type T resolves for
// handler argument A with return type R. It has no runtime behavior; a
// mismatched instantiation fails the build.
//
//	completion.Satisfies[completion.Deferred[int], int, *completion.Future[int]]()
func Satisfies[T Token[A, R], A, R any]() {}
