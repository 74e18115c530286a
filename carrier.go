// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion

// Carrier produces the initiating function's return value for one call.
// A carrier is linked to exactly one handler and must not be shared across
// resolutions.
//
// Extract is called by the initiating function after operation setup, not
// necessarily after the handler has fired. Strategies whose value is not
// available yet return a handle ([*Future], [*Pending]) rather than the
// value itself.
//
// Precondition: a carrier observes at most one invocation of its linked
// handler. Operations that may fire more than once must be fixed, not
// worked around here.
type Carrier[R any] interface {
	Extract() R
}

// CarrierFunc wraps a plain function as a Carrier.
type CarrierFunc[R any] func() R

// Extract implements Carrier by calling the function.
func (f CarrierFunc[R]) Extract() R { return f() }

// immediate is the carrier for values materialized at resolution time,
// such as a future handle whose satisfaction happens later.
type immediate[R any] struct{ v R }

func (c immediate[R]) Extract() R { return c.v }

// Immediate returns a carrier that yields v as-is. Adapter tokens use it to
// return their handle from Resolve.
func Immediate[R any](v R) Carrier[R] {
	return immediate[R]{v: v}
}

// unitCarrier is the no-op carrier for direct-invocation tokens.
type unitCarrier struct{}

func (unitCarrier) Extract() Unit { return Unit{} }
