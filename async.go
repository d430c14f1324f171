// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build curry_async

package curry

import (
	"context"
)

// Experimental asynchronous tier mirror, behind the curry_async tag.
//
// An asynchronous callable returns a [Task] instead of a result. The
// curried wrappers below splice the bound value and return the inner
// callable's Task unchanged: they introduce no suspension points and no
// scheduling of their own. Cancellation is whatever the inner callable
// does with the context it is eventually run with.

// Task is a deferred result. Nothing runs until the Task is invoked with
// a context; running it may block.
type Task[R any] func(ctx context.Context) R

// AsyncFnOnce is the asynchronous analogue of [FnOnce].
type AsyncFnOnce[X, R any] interface {
	CallOnceAsync(x X) Task[R]
}

// AsyncFnMut is the asynchronous analogue of [FnMut].
type AsyncFnMut[X, R any] interface {
	AsyncFnOnce[X, R]
	CallMutAsync(x X) Task[R]
}

// AsyncFn is the asynchronous analogue of [Fn].
type AsyncFn[X, R any] interface {
	AsyncFnMut[X, R]
	CallAsync(x X) Task[R]
}

// AsyncPure adapts a Task-returning function to the [AsyncFn] tier.
type AsyncPure[X, R any] func(X) Task[R]

// CallAsync implements [AsyncFn].
func (f AsyncPure[X, R]) CallAsync(x X) Task[R] { return f(x) }

// CallMutAsync implements [AsyncFnMut].
func (f AsyncPure[X, R]) CallMutAsync(x X) Task[R] { return f(x) }

// CallOnceAsync implements [AsyncFnOnce].
func (f AsyncPure[X, R]) CallOnceAsync(x X) Task[R] { return f(x) }

// AsyncStateful adapts a Task-returning closure to the [AsyncFnMut] tier.
type AsyncStateful[X, R any] func(X) Task[R]

// CallMutAsync implements [AsyncFnMut].
func (f AsyncStateful[X, R]) CallMutAsync(x X) Task[R] { return f(x) }

// CallOnceAsync implements [AsyncFnOnce].
func (f AsyncStateful[X, R]) CallOnceAsync(x X) Task[R] { return f(x) }

// AsyncAffine adapts a Task-returning function to the [AsyncFnOnce] tier
// with one-shot enforcement, mirroring [Affine]. The single use is
// consumed when the Task is obtained, not when it is run.
type AsyncAffine[X, R any] struct {
	inner Affine[X, Task[R]]
}

// OnceAsync creates an affine asynchronous callable.
func OnceAsync[X, R any](f func(X) Task[R]) *AsyncAffine[X, R] {
	return &AsyncAffine[X, R]{inner: Affine[X, Task[R]]{f: f}}
}

// CallOnceAsync obtains the deferred result.
// Panics if the callable has already been used.
func (a *AsyncAffine[X, R]) CallOnceAsync(x X) Task[R] {
	return a.inner.CallOnce(x)
}

// TryCallOnceAsync attempts to obtain the deferred result.
// Returns (nil, false) if already used.
func (a *AsyncAffine[X, R]) TryCallOnceAsync(x X) (Task[R], bool) {
	return a.inner.TryCallOnce(x)
}

// Discard marks the callable as used without invoking it.
func (a *AsyncAffine[X, R]) Discard() {
	a.inner.Discard()
}

// AsyncPure1 lifts a one-argument Task-returning function to the [AsyncFn] tier.
func AsyncPure1[A, R any](f func(A) Task[R]) AsyncFn[T1[A], R] {
	return AsyncPure[T1[A], R](func(x T1[A]) Task[R] { return f(x.V0) })
}

// AsyncPure2 lifts a two-argument Task-returning function to the [AsyncFn] tier.
func AsyncPure2[A, B, R any](f func(A, B) Task[R]) AsyncFn[T2[A, B], R] {
	return AsyncPure[T2[A, B], R](func(x T2[A, B]) Task[R] { return f(x.V0, x.V1) })
}

// AsyncPure3 lifts a three-argument Task-returning function to the [AsyncFn] tier.
func AsyncPure3[A, B, C, R any](f func(A, B, C) Task[R]) AsyncFn[T3[A, B, C], R] {
	return AsyncPure[T3[A, B, C], R](func(x T3[A, B, C]) Task[R] { return f(x.V0, x.V1, x.V2) })
}

// AsyncStateful1 lifts a one-argument Task-returning closure to the [AsyncFnMut] tier.
func AsyncStateful1[A, R any](f func(A) Task[R]) AsyncFnMut[T1[A], R] {
	return AsyncStateful[T1[A], R](func(x T1[A]) Task[R] { return f(x.V0) })
}

// AsyncStateful2 lifts a two-argument Task-returning closure to the [AsyncFnMut] tier.
func AsyncStateful2[A, B, R any](f func(A, B) Task[R]) AsyncFnMut[T2[A, B], R] {
	return AsyncStateful[T2[A, B], R](func(x T2[A, B]) Task[R] { return f(x.V0, x.V1) })
}

// AsyncStateful3 lifts a three-argument Task-returning closure to the [AsyncFnMut] tier.
func AsyncStateful3[A, B, C, R any](f func(A, B, C) Task[R]) AsyncFnMut[T3[A, B, C], R] {
	return AsyncStateful[T3[A, B, C], R](func(x T3[A, B, C]) Task[R] { return f(x.V0, x.V1, x.V2) })
}

// OnceAsync1 lifts a one-argument Task-returning function to the [AsyncFnOnce] tier.
func OnceAsync1[A, R any](f func(A) Task[R]) AsyncFnOnce[T1[A], R] {
	return OnceAsync(func(x T1[A]) Task[R] { return f(x.V0) })
}

// OnceAsync2 lifts a two-argument Task-returning function to the [AsyncFnOnce] tier.
func OnceAsync2[A, B, R any](f func(A, B) Task[R]) AsyncFnOnce[T2[A, B], R] {
	return OnceAsync(func(x T2[A, B]) Task[R] { return f(x.V0, x.V1) })
}

// OnceAsync3 lifts a three-argument Task-returning function to the [AsyncFnOnce] tier.
func OnceAsync3[A, B, C, R any](f func(A, B, C) Task[R]) AsyncFnOnce[T3[A, B, C], R] {
	return OnceAsync(func(x T3[A, B, C]) Task[R] { return f(x.V0, x.V1, x.V2) })
}

type asyncCurried[B, X, Y, R any] struct {
	bound  B
	splice func(B, X) Y
	inner  AsyncFn[Y, R]
}

func (c asyncCurried[B, X, Y, R]) CallAsync(x X) Task[R] {
	return c.inner.CallAsync(c.splice(c.bound, x))
}

func (c asyncCurried[B, X, Y, R]) CallMutAsync(x X) Task[R] {
	return c.inner.CallMutAsync(c.splice(c.bound, x))
}

func (c asyncCurried[B, X, Y, R]) CallOnceAsync(x X) Task[R] {
	return c.inner.CallOnceAsync(c.splice(c.bound, x))
}

type asyncCurriedMut[B, X, Y, R any] struct {
	bound  B
	splice func(B, X) Y
	inner  AsyncFnMut[Y, R]
}

func (c asyncCurriedMut[B, X, Y, R]) CallMutAsync(x X) Task[R] {
	return c.inner.CallMutAsync(c.splice(c.bound, x))
}

func (c asyncCurriedMut[B, X, Y, R]) CallOnceAsync(x X) Task[R] {
	return c.inner.CallOnceAsync(c.splice(c.bound, x))
}

type asyncCurriedOnce[B, X, Y, R any] struct {
	bound  B
	splice func(B, X) Y
	inner  AsyncFnOnce[Y, R]
}

func (c asyncCurriedOnce[B, X, Y, R]) CallOnceAsync(x X) Task[R] {
	return c.inner.CallOnceAsync(c.splice(c.bound, x))
}

// CurryAsync1 binds the only argument of a shared-tier asynchronous callable.
func CurryAsync1[A, R any](f AsyncFn[T1[A], R], a A) AsyncFn[T0, R] {
	return asyncCurried[A, T0, T1[A], R]{bound: a, splice: Prepend0[A], inner: f}
}

// CurryAsync2 binds the first argument of a two-argument shared-tier
// asynchronous callable.
func CurryAsync2[A, B, R any](f AsyncFn[T2[A, B], R], a A) AsyncFn[T1[B], R] {
	return asyncCurried[A, T1[B], T2[A, B], R]{bound: a, splice: Prepend1[A, B], inner: f}
}

// CurryAsync3 binds the first argument of a three-argument shared-tier
// asynchronous callable.
func CurryAsync3[A, B, C, R any](f AsyncFn[T3[A, B, C], R], a A) AsyncFn[T2[B, C], R] {
	return asyncCurried[A, T2[B, C], T3[A, B, C], R]{bound: a, splice: Prepend2[A, B, C], inner: f}
}

// CurryAsyncMut1 binds the only argument of an exclusive-tier asynchronous callable.
func CurryAsyncMut1[A, R any](f AsyncFnMut[T1[A], R], a A) AsyncFnMut[T0, R] {
	return asyncCurriedMut[A, T0, T1[A], R]{bound: a, splice: Prepend0[A], inner: f}
}

// CurryAsyncMut2 binds the first argument of a two-argument exclusive-tier
// asynchronous callable.
func CurryAsyncMut2[A, B, R any](f AsyncFnMut[T2[A, B], R], a A) AsyncFnMut[T1[B], R] {
	return asyncCurriedMut[A, T1[B], T2[A, B], R]{bound: a, splice: Prepend1[A, B], inner: f}
}

// CurryAsyncMut3 binds the first argument of a three-argument exclusive-tier
// asynchronous callable.
func CurryAsyncMut3[A, B, C, R any](f AsyncFnMut[T3[A, B, C], R], a A) AsyncFnMut[T2[B, C], R] {
	return asyncCurriedMut[A, T2[B, C], T3[A, B, C], R]{bound: a, splice: Prepend2[A, B, C], inner: f}
}

// CurryAsyncOnce1 binds the only argument of a single-use asynchronous callable.
func CurryAsyncOnce1[A, R any](f AsyncFnOnce[T1[A], R], a A) AsyncFnOnce[T0, R] {
	return asyncCurriedOnce[A, T0, T1[A], R]{bound: a, splice: Prepend0[A], inner: f}
}

// CurryAsyncOnce2 binds the first argument of a two-argument single-use
// asynchronous callable.
func CurryAsyncOnce2[A, B, R any](f AsyncFnOnce[T2[A, B], R], a A) AsyncFnOnce[T1[B], R] {
	return asyncCurriedOnce[A, T1[B], T2[A, B], R]{bound: a, splice: Prepend1[A, B], inner: f}
}

// CurryAsyncOnce3 binds the first argument of a three-argument single-use
// asynchronous callable.
func CurryAsyncOnce3[A, B, C, R any](f AsyncFnOnce[T3[A, B, C], R], a A) AsyncFnOnce[T2[B, C], R] {
	return asyncCurriedOnce[A, T2[B, C], T3[A, B, C], R]{bound: a, splice: Prepend2[A, B, C], inner: f}
}
