// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/completion"
)

func TestEitherRight(t *testing.T) {
	e := completion.Right[error](42)
	if !e.IsRight() || e.IsLeft() {
		t.Fatal("expected Right")
	}
	got, ok := e.GetRight()
	if !ok || got != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", got, ok)
	}
	if _, ok := e.GetLeft(); ok {
		t.Fatal("GetLeft succeeded on Right")
	}
}

func TestEitherLeft(t *testing.T) {
	err := errors.New("boom")
	e := completion.Left[error, int](err)
	if !e.IsLeft() || e.IsRight() {
		t.Fatal("expected Left")
	}
	got, ok := e.GetLeft()
	if !ok || got != err {
		t.Fatalf("got (%v, %v), want (boom, true)", got, ok)
	}
}

func TestMatchEither(t *testing.T) {
	got := completion.MatchEither(completion.Right[error](21),
		func(error) int { return -1 },
		func(n int) int { return n * 2 },
	)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestMapEither(t *testing.T) {
	e := completion.MapEither(completion.Right[error](21), func(n int) int { return n * 2 })
	got, _ := e.GetRight()
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}

	err := errors.New("boom")
	e = completion.MapEither(completion.Left[error, int](err), func(n int) int { return n * 2 })
	if !e.IsLeft() {
		t.Fatal("expected Left to pass through Map")
	}
}

func TestFallible(t *testing.T) {
	ok := completion.Ok(42)
	if v, present := ok.GetRight(); !present || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, present)
	}

	err := errors.New("boom")
	fail := completion.Fail[int](err)
	if e, present := fail.GetLeft(); !present || e != err {
		t.Fatalf("got (%v, %v), want (boom, true)", e, present)
	}
}

func TestFallibleThroughChan(t *testing.T) {
	ch := completion.Initiate(completion.Chan[completion.Fallible[string]]{},
		func(h completion.Handler[completion.Fallible[string]]) {
			go h(completion.Fail[string](errors.New("refused")))
		})

	out := <-ch
	if !out.IsLeft() {
		t.Fatal("expected Left outcome")
	}
}
