// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !curry_no_rcurry

package curry

// Tier-preserving back-binding entry points, mirroring curry.go.
//
// RCurryFnN, RCurryMutN and RCurryOnceN bind the last argument of an
// N-ary callable. Building with the curry_no_rcurry tag removes the
// whole back-binding surface at compile time.

// RCurryFn1 binds the only argument of a shared-tier callable.
// For arity one, front and back binding coincide.
func RCurryFn1[A, R any](f Fn[T1[A], R], a A) Fn[T0, R] {
	return curried[A, T0, T1[A], R]{bound: a, splice: Append0[A], inner: f}
}

// RCurryFn2 binds the last argument of a two-argument shared-tier callable.
func RCurryFn2[A, B, R any](f Fn[T2[A, B], R], b B) Fn[T1[A], R] {
	return curried[B, T1[A], T2[A, B], R]{bound: b, splice: Append1[B, A], inner: f}
}

// RCurryFn3 binds the last argument of a three-argument shared-tier callable.
func RCurryFn3[A, B, C, R any](f Fn[T3[A, B, C], R], c C) Fn[T2[A, B], R] {
	return curried[C, T2[A, B], T3[A, B, C], R]{bound: c, splice: Append2[C, A, B], inner: f}
}

// RCurryFn4 binds the last argument of a four-argument shared-tier callable.
func RCurryFn4[A, B, C, D, R any](f Fn[T4[A, B, C, D], R], d D) Fn[T3[A, B, C], R] {
	return curried[D, T3[A, B, C], T4[A, B, C, D], R]{bound: d, splice: Append3[D, A, B, C], inner: f}
}

// RCurryMut1 binds the only argument of an exclusive-tier callable.
func RCurryMut1[A, R any](f FnMut[T1[A], R], a A) FnMut[T0, R] {
	return curriedMut[A, T0, T1[A], R]{bound: a, splice: Append0[A], inner: f}
}

// RCurryMut2 binds the last argument of a two-argument exclusive-tier callable.
func RCurryMut2[A, B, R any](f FnMut[T2[A, B], R], b B) FnMut[T1[A], R] {
	return curriedMut[B, T1[A], T2[A, B], R]{bound: b, splice: Append1[B, A], inner: f}
}

// RCurryMut3 binds the last argument of a three-argument exclusive-tier callable.
func RCurryMut3[A, B, C, R any](f FnMut[T3[A, B, C], R], c C) FnMut[T2[A, B], R] {
	return curriedMut[C, T2[A, B], T3[A, B, C], R]{bound: c, splice: Append2[C, A, B], inner: f}
}

// RCurryMut4 binds the last argument of a four-argument exclusive-tier callable.
func RCurryMut4[A, B, C, D, R any](f FnMut[T4[A, B, C, D], R], d D) FnMut[T3[A, B, C], R] {
	return curriedMut[D, T3[A, B, C], T4[A, B, C, D], R]{bound: d, splice: Append3[D, A, B, C], inner: f}
}

// RCurryOnce1 binds the only argument of a single-use callable.
func RCurryOnce1[A, R any](f FnOnce[T1[A], R], a A) FnOnce[T0, R] {
	return curriedOnce[A, T0, T1[A], R]{bound: a, splice: Append0[A], inner: f}
}

// RCurryOnce2 binds the last argument of a two-argument single-use callable.
func RCurryOnce2[A, B, R any](f FnOnce[T2[A, B], R], b B) FnOnce[T1[A], R] {
	return curriedOnce[B, T1[A], T2[A, B], R]{bound: b, splice: Append1[B, A], inner: f}
}

// RCurryOnce3 binds the last argument of a three-argument single-use callable.
func RCurryOnce3[A, B, C, R any](f FnOnce[T3[A, B, C], R], c C) FnOnce[T2[A, B], R] {
	return curriedOnce[C, T2[A, B], T3[A, B, C], R]{bound: c, splice: Append2[C, A, B], inner: f}
}

// RCurryOnce4 binds the last argument of a four-argument single-use callable.
func RCurryOnce4[A, B, C, D, R any](f FnOnce[T4[A, B, C, D], R], d D) FnOnce[T3[A, B, C], R] {
	return curriedOnce[D, T3[A, B, C], T4[A, B, C, D], R]{bound: d, splice: Append3[D, A, B, C], inner: f}
}
