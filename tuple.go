// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Fixed-arity argument tuples and the splice operations over them.
//
// A splice either inserts one value at the front or back of a tuple,
// producing the tuple one element longer, or removes the front or back
// element, producing the removed value and the tuple one element shorter.
// Arity is static, so no indices exist and nothing ever resizes. Every
// operation here is pure and allocation-free.
//
// Insertion takes the spliced value as its first operand so that an
// instantiated Prepend or Append function fits the splice slot of a
// curried wrapper directly, without an adapter closure.

type (
	// T0 is the empty argument tuple.
	T0 struct{}

	// T1 is an argument tuple of one value.
	T1[A any] struct {
		V0 A
	}

	// T2 is an argument tuple of two values.
	T2[A, B any] struct {
		V0 A
		V1 B
	}

	// T3 is an argument tuple of three values.
	T3[A, B, C any] struct {
		V0 A
		V1 B
		V2 C
	}

	// T4 is an argument tuple of four values.
	T4[A, B, C, D any] struct {
		V0 A
		V1 B
		V2 C
		V3 D
	}
)

// Prepend0 inserts v in front of the empty tuple.
func Prepend0[V any](v V, _ T0) T1[V] {
	return T1[V]{v}
}

// Prepend1 inserts v in front of a one-element tuple.
func Prepend1[V, A any](v V, t T1[A]) T2[V, A] {
	return T2[V, A]{v, t.V0}
}

// Prepend2 inserts v in front of a two-element tuple.
func Prepend2[V, A, B any](v V, t T2[A, B]) T3[V, A, B] {
	return T3[V, A, B]{v, t.V0, t.V1}
}

// Prepend3 inserts v in front of a three-element tuple.
func Prepend3[V, A, B, C any](v V, t T3[A, B, C]) T4[V, A, B, C] {
	return T4[V, A, B, C]{v, t.V0, t.V1, t.V2}
}

// Append0 inserts v behind the empty tuple.
func Append0[V any](v V, _ T0) T1[V] {
	return T1[V]{v}
}

// Append1 inserts v behind a one-element tuple.
func Append1[V, A any](v V, t T1[A]) T2[A, V] {
	return T2[A, V]{t.V0, v}
}

// Append2 inserts v behind a two-element tuple.
func Append2[V, A, B any](v V, t T2[A, B]) T3[A, B, V] {
	return T3[A, B, V]{t.V0, t.V1, v}
}

// Append3 inserts v behind a three-element tuple.
func Append3[V, A, B, C any](v V, t T3[A, B, C]) T4[A, B, C, V] {
	return T4[A, B, C, V]{t.V0, t.V1, t.V2, v}
}

// SplitFront1 removes the front element of a one-element tuple.
func SplitFront1[A any](t T1[A]) (A, T0) {
	return t.V0, T0{}
}

// SplitFront2 removes the front element of a two-element tuple.
func SplitFront2[A, B any](t T2[A, B]) (A, T1[B]) {
	return t.V0, T1[B]{t.V1}
}

// SplitFront3 removes the front element of a three-element tuple.
func SplitFront3[A, B, C any](t T3[A, B, C]) (A, T2[B, C]) {
	return t.V0, T2[B, C]{t.V1, t.V2}
}

// SplitFront4 removes the front element of a four-element tuple.
func SplitFront4[A, B, C, D any](t T4[A, B, C, D]) (A, T3[B, C, D]) {
	return t.V0, T3[B, C, D]{t.V1, t.V2, t.V3}
}

// SplitBack1 removes the back element of a one-element tuple.
func SplitBack1[A any](t T1[A]) (A, T0) {
	return t.V0, T0{}
}

// SplitBack2 removes the back element of a two-element tuple.
func SplitBack2[A, B any](t T2[A, B]) (B, T1[A]) {
	return t.V1, T1[A]{t.V0}
}

// SplitBack3 removes the back element of a three-element tuple.
func SplitBack3[A, B, C any](t T3[A, B, C]) (C, T2[A, B]) {
	return t.V2, T2[A, B]{t.V0, t.V1}
}

// SplitBack4 removes the back element of a four-element tuple.
func SplitBack4[A, B, C, D any](t T4[A, B, C, D]) (D, T3[A, B, C]) {
	return t.V3, T3[A, B, C]{t.V0, t.V1, t.V2}
}
