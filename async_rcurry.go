// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build curry_async && !curry_no_rcurry

package curry

// Back-binding entry points for the asynchronous tier mirror.

// RCurryAsync1 binds the only argument of a shared-tier asynchronous callable.
func RCurryAsync1[A, R any](f AsyncFn[T1[A], R], a A) AsyncFn[T0, R] {
	return asyncCurried[A, T0, T1[A], R]{bound: a, splice: Append0[A], inner: f}
}

// RCurryAsync2 binds the last argument of a two-argument shared-tier
// asynchronous callable.
func RCurryAsync2[A, B, R any](f AsyncFn[T2[A, B], R], b B) AsyncFn[T1[A], R] {
	return asyncCurried[B, T1[A], T2[A, B], R]{bound: b, splice: Append1[B, A], inner: f}
}

// RCurryAsync3 binds the last argument of a three-argument shared-tier
// asynchronous callable.
func RCurryAsync3[A, B, C, R any](f AsyncFn[T3[A, B, C], R], c C) AsyncFn[T2[A, B], R] {
	return asyncCurried[C, T2[A, B], T3[A, B, C], R]{bound: c, splice: Append2[C, A, B], inner: f}
}

// RCurryAsyncMut1 binds the only argument of an exclusive-tier asynchronous callable.
func RCurryAsyncMut1[A, R any](f AsyncFnMut[T1[A], R], a A) AsyncFnMut[T0, R] {
	return asyncCurriedMut[A, T0, T1[A], R]{bound: a, splice: Append0[A], inner: f}
}

// RCurryAsyncMut2 binds the last argument of a two-argument exclusive-tier
// asynchronous callable.
func RCurryAsyncMut2[A, B, R any](f AsyncFnMut[T2[A, B], R], b B) AsyncFnMut[T1[A], R] {
	return asyncCurriedMut[B, T1[A], T2[A, B], R]{bound: b, splice: Append1[B, A], inner: f}
}

// RCurryAsyncMut3 binds the last argument of a three-argument exclusive-tier
// asynchronous callable.
func RCurryAsyncMut3[A, B, C, R any](f AsyncFnMut[T3[A, B, C], R], c C) AsyncFnMut[T2[A, B], R] {
	return asyncCurriedMut[C, T2[A, B], T3[A, B, C], R]{bound: c, splice: Append2[C, A, B], inner: f}
}

// RCurryAsyncOnce1 binds the only argument of a single-use asynchronous callable.
func RCurryAsyncOnce1[A, R any](f AsyncFnOnce[T1[A], R], a A) AsyncFnOnce[T0, R] {
	return asyncCurriedOnce[A, T0, T1[A], R]{bound: a, splice: Append0[A], inner: f}
}

// RCurryAsyncOnce2 binds the last argument of a two-argument single-use
// asynchronous callable.
func RCurryAsyncOnce2[A, B, R any](f AsyncFnOnce[T2[A, B], R], b B) AsyncFnOnce[T1[A], R] {
	return asyncCurriedOnce[B, T1[A], T2[A, B], R]{bound: b, splice: Append1[B, A], inner: f}
}

// RCurryAsyncOnce3 binds the last argument of a three-argument single-use
// asynchronous callable.
func RCurryAsyncOnce3[A, B, C, R any](f AsyncFnOnce[T3[A, B, C], R], c C) AsyncFnOnce[T2[A, B], R] {
	return asyncCurriedOnce[C, T2[A, B], T3[A, B, C], R]{bound: c, splice: Append2[C, A, B], inner: f}
}
