// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !curry_pedantic

package curry

// Default convenience entry points.
//
// CurryN accepts an ordinary Go function, lifts it to the shared tier
// and binds its first argument. Plain function arguments give full type
// inference at the call site. Building with the curry_pedantic tag swaps
// these names for variants that accept only the declared callable
// interfaces; see curry_pedantic.go.

// Curry1 binds the only argument of a one-argument function.
func Curry1[A, R any](f func(A) R, a A) Fn[T0, R] {
	return CurryFn1(Pure1(f), a)
}

// Curry2 binds the first argument of a two-argument function.
func Curry2[A, B, R any](f func(A, B) R, a A) Fn[T1[B], R] {
	return CurryFn2(Pure2(f), a)
}

// Curry3 binds the first argument of a three-argument function.
func Curry3[A, B, C, R any](f func(A, B, C) R, a A) Fn[T2[B, C], R] {
	return CurryFn3(Pure3(f), a)
}

// Curry4 binds the first argument of a four-argument function.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R, a A) Fn[T3[B, C, D], R] {
	return CurryFn4(Pure4(f), a)
}
