// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Small function combinators that pair naturally with argument binding.

// Identity returns its argument unchanged.
// It is the left and right identity of [Compose].
func Identity[A any](a A) A {
	return a
}

// Constant returns a one-argument function that ignores its argument and
// always returns a.
func Constant[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Compose is left to right function composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Uncurry2 flattens a chain of shared-tier bindings back into a
// two-argument function. It is the inverse of binding one argument at a
// time with [Curry2] and then lowering with [Func1].
func Uncurry2[A, B, R any](f func(A) Fn[T1[B], R]) func(A, B) R {
	return func(a A, b B) R {
		return f(a).Call(T1[B]{b})
	}
}

// Uncurry3 flattens a two-level binding chain into a three-argument function.
func Uncurry3[A, B, C, R any](f func(A) func(B) Fn[T1[C], R]) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(a)(b).Call(T1[C]{c})
	}
}

// Uncurry4 flattens a three-level binding chain into a four-argument function.
func Uncurry4[A, B, C, D, R any](f func(A) func(B) func(C) Fn[T1[D], R]) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return f(a)(b)(c).Call(T1[D]{d})
	}
}
