// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/completion"
)

// latest is a continuation strategy defined outside the package: the
// initiating function returns a getter reporting whether the operation has
// completed and with what value. It exists to verify that new strategies
// plug in without any change to the token protocol.
type latest[A any] struct{}

func (latest[A]) Resolve() completion.Resolution[A, func() (A, bool)] {
	var (
		mu  sync.Mutex
		v   A
		set bool
	)
	get := func() (A, bool) {
		mu.Lock()
		defer mu.Unlock()
		return v, set
	}
	return completion.Resolution[A, func() (A, bool)]{
		Handler: func(a A) {
			mu.Lock()
			v, set = a, true
			mu.Unlock()
		},
		Carrier: completion.CarrierFunc[func() (A, bool)](func() func() (A, bool) {
			return get
		}),
	}
}

func init() {
	completion.Satisfies[latest[int], int, func() (int, bool)]()
}

func TestExternalStrategy(t *testing.T) {
	get := addAsync(20, 22, latest[int]{})

	for {
		if got, ok := get(); ok {
			if got != 42 {
				t.Fatalf("got %d, want 42", got)
			}
			return
		}
	}
}

func TestExternalStrategyPendingBeforeFire(t *testing.T) {
	c := completion.New(latest[string]{})
	get := c.Result()

	if _, ok := get(); ok {
		t.Fatal("external strategy reported completion before handler fired")
	}
	c.Handler("done")
	got, ok := get()
	if !ok || got != "done" {
		t.Fatalf("got (%q, %v), want (%q, true)", got, ok, "done")
	}
}
