// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// The three call-capability tiers, ordered by strength.
//
// Interface embedding encodes the implication order: any Fn is an FnMut,
// and any FnMut is an FnOnce. A value therefore always satisfies every
// tier weaker than its own, and tier availability is checked entirely at
// compile time.

// FnOnce is the weakest tier: a callable over the argument tuple X that
// may be invoked at most once. CallOnce conceptually consumes the
// callable; the [Affine] adapter enforces the single use at runtime.
type FnOnce[X, R any] interface {
	CallOnce(x X) R
}

// FnMut is the repeatable tier with exclusive access: each invocation may
// mutate state captured by the callable.
type FnMut[X, R any] interface {
	FnOnce[X, R]
	CallMut(x X) R
}

// Fn is the strongest tier: repeatable with shared access. Invocation
// mutates nothing, so concurrent calls from multiple goroutines are
// race-free by construction.
type Fn[X, R any] interface {
	FnMut[X, R]
	Call(x X) R
}

// Pure adapts a function over an argument tuple to the [Fn] tier.
// Use it for functions that do not depend on captured mutable state;
// the adapter itself adds none.
type Pure[X, R any] func(X) R

// Call implements [Fn].
func (f Pure[X, R]) Call(x X) R { return f(x) }

// CallMut implements [FnMut].
func (f Pure[X, R]) CallMut(x X) R { return f(x) }

// CallOnce implements [FnOnce].
func (f Pure[X, R]) CallOnce(x X) R { return f(x) }

// Stateful adapts a function over an argument tuple to the [FnMut] tier.
// Use it for closures that mutate captured state: the adapter withholds
// the shared-access Call method, so the type system keeps such closures
// out of shared-tier positions.
type Stateful[X, R any] func(X) R

// CallMut implements [FnMut].
func (f Stateful[X, R]) CallMut(x X) R { return f(x) }

// CallOnce implements [FnOnce].
func (f Stateful[X, R]) CallOnce(x X) R { return f(x) }

// AsMut weakens an Fn to an FnMut.
//
// Weakening is implicit at assignment, but Go's type inference only
// unifies identical interface types, so cross-tier arguments to the
// generic entry points need an explicit step down the hierarchy.
func AsMut[X, R any](f Fn[X, R]) FnMut[X, R] { return f }

// AsOnce weakens an FnMut to an FnOnce.
func AsOnce[X, R any](f FnMut[X, R]) FnOnce[X, R] { return f }

// Pure1 lifts a one-argument function to the [Fn] tier over its tuple form.
func Pure1[A, R any](f func(A) R) Fn[T1[A], R] {
	return Pure[T1[A], R](func(x T1[A]) R { return f(x.V0) })
}

// Pure2 lifts a two-argument function to the [Fn] tier over its tuple form.
func Pure2[A, B, R any](f func(A, B) R) Fn[T2[A, B], R] {
	return Pure[T2[A, B], R](func(x T2[A, B]) R { return f(x.V0, x.V1) })
}

// Pure3 lifts a three-argument function to the [Fn] tier over its tuple form.
func Pure3[A, B, C, R any](f func(A, B, C) R) Fn[T3[A, B, C], R] {
	return Pure[T3[A, B, C], R](func(x T3[A, B, C]) R { return f(x.V0, x.V1, x.V2) })
}

// Pure4 lifts a four-argument function to the [Fn] tier over its tuple form.
func Pure4[A, B, C, D, R any](f func(A, B, C, D) R) Fn[T4[A, B, C, D], R] {
	return Pure[T4[A, B, C, D], R](func(x T4[A, B, C, D]) R { return f(x.V0, x.V1, x.V2, x.V3) })
}

// Stateful1 lifts a one-argument closure to the [FnMut] tier.
func Stateful1[A, R any](f func(A) R) FnMut[T1[A], R] {
	return Stateful[T1[A], R](func(x T1[A]) R { return f(x.V0) })
}

// Stateful2 lifts a two-argument closure to the [FnMut] tier.
func Stateful2[A, B, R any](f func(A, B) R) FnMut[T2[A, B], R] {
	return Stateful[T2[A, B], R](func(x T2[A, B]) R { return f(x.V0, x.V1) })
}

// Stateful3 lifts a three-argument closure to the [FnMut] tier.
func Stateful3[A, B, C, R any](f func(A, B, C) R) FnMut[T3[A, B, C], R] {
	return Stateful[T3[A, B, C], R](func(x T3[A, B, C]) R { return f(x.V0, x.V1, x.V2) })
}

// Stateful4 lifts a four-argument closure to the [FnMut] tier.
func Stateful4[A, B, C, D, R any](f func(A, B, C, D) R) FnMut[T4[A, B, C, D], R] {
	return Stateful[T4[A, B, C, D], R](func(x T4[A, B, C, D]) R { return f(x.V0, x.V1, x.V2, x.V3) })
}

// Func0 lowers a shared-tier callable over the empty tuple back to an
// ordinary Go function. The lowerings are the inverse of the Pure lifts
// and are the convenient way to invoke fully curried values.
func Func0[R any](f Fn[T0, R]) func() R {
	return func() R { return f.Call(T0{}) }
}

// Func1 lowers a shared-tier callable to a one-argument Go function.
func Func1[A, R any](f Fn[T1[A], R]) func(A) R {
	return func(a A) R { return f.Call(T1[A]{a}) }
}

// Func2 lowers a shared-tier callable to a two-argument Go function.
func Func2[A, B, R any](f Fn[T2[A, B], R]) func(A, B) R {
	return func(a A, b B) R { return f.Call(T2[A, B]{a, b}) }
}

// Func3 lowers a shared-tier callable to a three-argument Go function.
func Func3[A, B, C, R any](f Fn[T3[A, B, C], R]) func(A, B, C) R {
	return func(a A, b B, c C) R { return f.Call(T3[A, B, C]{a, b, c}) }
}
