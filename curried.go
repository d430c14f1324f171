// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Curried wrapper carriers, one per capability tier.
//
// A wrapper owns the bound value, the splice fixed at construction
// (which encodes the front or back binding position), and the inner
// callable. Invocation splices the bound value into the caller-supplied
// tuple and forwards the full tuple to the inner callable at the same
// tier. The wrapper never mutates its own state, so the shared tier is
// race-free without synchronization.
//
// Bound-value policy: on the repeatable tiers the bound value is
// shallow-copied into the spliced tuple on every call; CallOnce hands it
// over the same way. The wrapper is immutable after construction.
//
// B is the bound value's type, X the reduced argument tuple, Y the inner
// callable's full argument tuple, R the result.

type curried[B, X, Y, R any] struct {
	bound  B
	splice func(B, X) Y
	inner  Fn[Y, R]
}

func (c curried[B, X, Y, R]) Call(x X) R { return c.inner.Call(c.splice(c.bound, x)) }

func (c curried[B, X, Y, R]) CallMut(x X) R { return c.inner.CallMut(c.splice(c.bound, x)) }

func (c curried[B, X, Y, R]) CallOnce(x X) R { return c.inner.CallOnce(c.splice(c.bound, x)) }

type curriedMut[B, X, Y, R any] struct {
	bound  B
	splice func(B, X) Y
	inner  FnMut[Y, R]
}

func (c curriedMut[B, X, Y, R]) CallMut(x X) R { return c.inner.CallMut(c.splice(c.bound, x)) }

func (c curriedMut[B, X, Y, R]) CallOnce(x X) R { return c.inner.CallOnce(c.splice(c.bound, x)) }

type curriedOnce[B, X, Y, R any] struct {
	bound  B
	splice func(B, X) Y
	inner  FnOnce[Y, R]
}

func (c curriedOnce[B, X, Y, R]) CallOnce(x X) R { return c.inner.CallOnce(c.splice(c.bound, x)) }
