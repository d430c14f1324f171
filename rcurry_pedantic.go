// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !curry_no_rcurry && curry_pedantic

package curry

// Pedantic back-binding convenience entry points; see curry_pedantic.go.

// RCurry1 binds the only argument of a shared-tier callable.
func RCurry1[A, R any](f Fn[T1[A], R], a A) Fn[T0, R] {
	return RCurryFn1(f, a)
}

// RCurry2 binds the last argument of a two-argument shared-tier callable.
func RCurry2[A, B, R any](f Fn[T2[A, B], R], b B) Fn[T1[A], R] {
	return RCurryFn2(f, b)
}

// RCurry3 binds the last argument of a three-argument shared-tier callable.
func RCurry3[A, B, C, R any](f Fn[T3[A, B, C], R], c C) Fn[T2[A, B], R] {
	return RCurryFn3(f, c)
}

// RCurry4 binds the last argument of a four-argument shared-tier callable.
func RCurry4[A, B, C, D, R any](f Fn[T4[A, B, C, D], R], d D) Fn[T3[A, B, C], R] {
	return RCurryFn4(f, d)
}
