// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"sync/atomic"
)

// Affine adapts a function over an argument tuple to the [FnOnce] tier
// with one-shot enforcement. The callable can be invoked at most once;
// subsequent attempts panic (CallOnce) or return false (TryCallOnce).
//
// Tier membership is static: an *Affine has no Call or CallMut method,
// so it never reaches a position requiring a repeatable tier. The atomic
// counter only guards the single consumption itself.
type Affine[X, R any] struct {
	used atomic.Uintptr
	f    func(X) R
}

// Once creates an affine callable from a function over an argument tuple.
// The result can be invoked at most once.
func Once[X, R any](f func(X) R) *Affine[X, R] {
	return &Affine[X, R]{f: f}
}

// CallOnce invokes the callable with the given argument tuple.
// Panics if the callable has already been used.
func (a *Affine[X, R]) CallOnce(x X) R {
	if a.used.Add(1) != 1 {
		panic("curry: affine callable invoked twice")
	}
	return a.f(x)
}

// TryCallOnce attempts to invoke the callable.
// Returns (result, true) on success, or (zero, false) if already used.
func (a *Affine[X, R]) TryCallOnce(x X) (R, bool) {
	if a.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	return a.f(x), true
}

// Discard marks the callable as used without invoking it.
// This is useful for explicitly dropping a callable that will not be used.
func (a *Affine[X, R]) Discard() {
	a.used.Store(1)
}

// Once1 lifts a one-argument function to the [FnOnce] tier.
func Once1[A, R any](f func(A) R) FnOnce[T1[A], R] {
	return Once(func(x T1[A]) R { return f(x.V0) })
}

// Once2 lifts a two-argument function to the [FnOnce] tier.
func Once2[A, B, R any](f func(A, B) R) FnOnce[T2[A, B], R] {
	return Once(func(x T2[A, B]) R { return f(x.V0, x.V1) })
}

// Once3 lifts a three-argument function to the [FnOnce] tier.
func Once3[A, B, C, R any](f func(A, B, C) R) FnOnce[T3[A, B, C], R] {
	return Once(func(x T3[A, B, C]) R { return f(x.V0, x.V1, x.V2) })
}

// Once4 lifts a four-argument function to the [FnOnce] tier.
func Once4[A, B, C, D, R any](f func(A, B, C, D) R) FnOnce[T4[A, B, C, D], R] {
	return Once(func(x T4[A, B, C, D]) R { return f(x.V0, x.V1, x.V2, x.V3) })
}
