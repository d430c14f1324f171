// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"

	"code.hybscloud.com/curry"
)

func TestIdentity(t *testing.T) {
	qt.Assert(t, qt.Equals(curry.Identity(42), 42))
	qt.Assert(t, qt.Equals(curry.Identity("x"), "x"))
}

func TestConstant(t *testing.T) {
	k := curry.Constant[string](7)
	qt.Assert(t, qt.Equals(k("ignored"), 7))
	qt.Assert(t, qt.Equals(k(""), 7))
}

func TestCompose(t *testing.T) {
	double := func(x int) int { return x * 2 }
	show := curry.Compose(double, strconv.Itoa)
	qt.Assert(t, qt.Equals(show(21), "42"))

	// Identity is neutral on both sides.
	qt.Assert(t, qt.Equals(curry.Compose(curry.Identity[int], double)(3), 6))
	qt.Assert(t, qt.Equals(curry.Compose(double, curry.Identity[int])(3), 6))
}

func TestUncurry2(t *testing.T) {
	concat := func(a, b string) string { return a + b }
	step := func(a string) curry.Fn[curry.T1[string], string] {
		return curry.CurryFn2(curry.Pure2(concat), a)
	}
	flat := curry.Uncurry2(step)
	qt.Assert(t, qt.Equals(flat("go", "pher"), "gopher"))
}

func TestUncurry3RoundTrip(t *testing.T) {
	sum := func(x, y, z int) int { return x + y + z }
	step := func(x int) func(int) curry.Fn[curry.T1[int], int] {
		return func(y int) curry.Fn[curry.T1[int], int] {
			return curry.CurryFn2(curry.CurryFn3(curry.Pure3(sum), x), y)
		}
	}
	flat := curry.Uncurry3(step)
	qt.Assert(t, qt.Equals(flat(1, 2, 3), sum(1, 2, 3)))
}

func TestComposeWithCurried(t *testing.T) {
	pad := curry.Func1(curry.CurryFn2(curry.Pure2(func(prefix, s string) string {
		return prefix + s
	}), ">> "))
	shout := curry.Compose(pad, func(s string) string { return s + "!" })
	qt.Assert(t, qt.Equals(shout("go"), ">> go!"))
}
