// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build curry_pedantic

package curry

// Pedantic convenience entry points.
//
// Under the curry_pedantic tag, CurryN accepts only values already
// satisfying the declared callable interfaces, so currying a value that
// is not a recognized callable shape is a compile error at the entry
// point. The cost is type inference: interface arguments of a different
// concrete type must be instantiated explicitly.

// Curry1 binds the only argument of a shared-tier callable.
func Curry1[A, R any](f Fn[T1[A], R], a A) Fn[T0, R] {
	return CurryFn1(f, a)
}

// Curry2 binds the first argument of a two-argument shared-tier callable.
func Curry2[A, B, R any](f Fn[T2[A, B], R], a A) Fn[T1[B], R] {
	return CurryFn2(f, a)
}

// Curry3 binds the first argument of a three-argument shared-tier callable.
func Curry3[A, B, C, R any](f Fn[T3[A, B, C], R], a A) Fn[T2[B, C], R] {
	return CurryFn3(f, a)
}

// Curry4 binds the first argument of a four-argument shared-tier callable.
func Curry4[A, B, C, D, R any](f Fn[T4[A, B, C, D], R], a A) Fn[T3[B, C, D], R] {
	return CurryFn4(f, a)
}
