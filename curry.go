// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Tier-preserving front-binding entry points.
//
// CurryFnN, CurryMutN and CurryOnceN bind the first argument of an N-ary
// callable at the named tier and return a callable of the same tier over
// the remaining N-1 arguments. Construction never invokes the inner
// callable. There is no zero-arity variant: binding into an empty
// argument tuple is rejected by the absence of an entry point.

// CurryFn1 binds the only argument of a shared-tier callable.
func CurryFn1[A, R any](f Fn[T1[A], R], a A) Fn[T0, R] {
	return curried[A, T0, T1[A], R]{bound: a, splice: Prepend0[A], inner: f}
}

// CurryFn2 binds the first argument of a two-argument shared-tier callable.
func CurryFn2[A, B, R any](f Fn[T2[A, B], R], a A) Fn[T1[B], R] {
	return curried[A, T1[B], T2[A, B], R]{bound: a, splice: Prepend1[A, B], inner: f}
}

// CurryFn3 binds the first argument of a three-argument shared-tier callable.
func CurryFn3[A, B, C, R any](f Fn[T3[A, B, C], R], a A) Fn[T2[B, C], R] {
	return curried[A, T2[B, C], T3[A, B, C], R]{bound: a, splice: Prepend2[A, B, C], inner: f}
}

// CurryFn4 binds the first argument of a four-argument shared-tier callable.
func CurryFn4[A, B, C, D, R any](f Fn[T4[A, B, C, D], R], a A) Fn[T3[B, C, D], R] {
	return curried[A, T3[B, C, D], T4[A, B, C, D], R]{bound: a, splice: Prepend3[A, B, C, D], inner: f}
}

// CurryMut1 binds the only argument of an exclusive-tier callable.
func CurryMut1[A, R any](f FnMut[T1[A], R], a A) FnMut[T0, R] {
	return curriedMut[A, T0, T1[A], R]{bound: a, splice: Prepend0[A], inner: f}
}

// CurryMut2 binds the first argument of a two-argument exclusive-tier callable.
func CurryMut2[A, B, R any](f FnMut[T2[A, B], R], a A) FnMut[T1[B], R] {
	return curriedMut[A, T1[B], T2[A, B], R]{bound: a, splice: Prepend1[A, B], inner: f}
}

// CurryMut3 binds the first argument of a three-argument exclusive-tier callable.
func CurryMut3[A, B, C, R any](f FnMut[T3[A, B, C], R], a A) FnMut[T2[B, C], R] {
	return curriedMut[A, T2[B, C], T3[A, B, C], R]{bound: a, splice: Prepend2[A, B, C], inner: f}
}

// CurryMut4 binds the first argument of a four-argument exclusive-tier callable.
func CurryMut4[A, B, C, D, R any](f FnMut[T4[A, B, C, D], R], a A) FnMut[T3[B, C, D], R] {
	return curriedMut[A, T3[B, C, D], T4[A, B, C, D], R]{bound: a, splice: Prepend3[A, B, C, D], inner: f}
}

// CurryOnce1 binds the only argument of a single-use callable.
func CurryOnce1[A, R any](f FnOnce[T1[A], R], a A) FnOnce[T0, R] {
	return curriedOnce[A, T0, T1[A], R]{bound: a, splice: Prepend0[A], inner: f}
}

// CurryOnce2 binds the first argument of a two-argument single-use callable.
func CurryOnce2[A, B, R any](f FnOnce[T2[A, B], R], a A) FnOnce[T1[B], R] {
	return curriedOnce[A, T1[B], T2[A, B], R]{bound: a, splice: Prepend1[A, B], inner: f}
}

// CurryOnce3 binds the first argument of a three-argument single-use callable.
func CurryOnce3[A, B, C, R any](f FnOnce[T3[A, B, C], R], a A) FnOnce[T2[B, C], R] {
	return curriedOnce[A, T2[B, C], T3[A, B, C], R]{bound: a, splice: Prepend2[A, B, C], inner: f}
}

// CurryOnce4 binds the first argument of a four-argument single-use callable.
func CurryOnce4[A, B, C, D, R any](f FnOnce[T4[A, B, C, D], R], a A) FnOnce[T3[B, C, D], R] {
	return curriedOnce[A, T3[B, C, D], T4[A, B, C, D], R]{bound: a, splice: Prepend3[A, B, C, D], inner: f}
}
