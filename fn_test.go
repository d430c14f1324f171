// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"code.hybscloud.com/curry"
)

func TestPureSatisfiesAllTiers(t *testing.T) {
	f := curry.Pure2(func(a, b int) int { return a*10 + b })
	x := curry.T2[int, int]{1, 2}

	qt.Assert(t, qt.Equals(f.Call(x), 12))
	qt.Assert(t, qt.Equals(f.CallMut(x), 12))
	qt.Assert(t, qt.Equals(f.CallOnce(x), 12))
}

func TestPureRepeatable(t *testing.T) {
	f := curry.Pure1(func(a int) int { return a + 1 })

	first := f.Call(curry.T1[int]{1})
	second := f.Call(curry.T1[int]{1})
	qt.Assert(t, qt.Equals(first, second))
}

func TestStatefulTracksCapturedState(t *testing.T) {
	calls := 0
	f := curry.Stateful1(func(a int) int {
		calls++
		return a + calls
	})

	qt.Assert(t, qt.Equals(f.CallMut(curry.T1[int]{10}), 11))
	qt.Assert(t, qt.Equals(f.CallMut(curry.T1[int]{10}), 12))
	qt.Assert(t, qt.Equals(calls, 2))
}

func TestTierWeakening(t *testing.T) {
	f := curry.Pure2(func(a, b string) string { return a + b })

	m := curry.AsMut(f)
	qt.Assert(t, qt.Equals(m.CallMut(curry.T2[string, string]{"x", "y"}), "xy"))

	o := curry.AsOnce(m)
	qt.Assert(t, qt.Equals(o.CallOnce(curry.T2[string, string]{"x", "y"}), "xy"))
}

func TestFuncLowerings(t *testing.T) {
	sum3 := curry.Pure3(func(a, b, c int) int { return a + b + c })

	qt.Assert(t, qt.Equals(curry.Func3(sum3)(1, 2, 3), 6))

	fa := curry.CurryFn3(sum3, 1)
	qt.Assert(t, qt.Equals(curry.Func2(fa)(2, 3), 6))

	fab := curry.CurryFn2(fa, 2)
	qt.Assert(t, qt.Equals(curry.Func1(fab)(3), 6))

	fabc := curry.CurryFn1(fab, 3)
	qt.Assert(t, qt.Equals(curry.Func0(fabc)(), 6))
}

func TestPure4(t *testing.T) {
	f := curry.Pure4(func(a, b, c, d string) string { return a + b + c + d })
	got := f.Call(curry.T4[string, string, string, string]{"w", "x", "y", "z"})
	qt.Assert(t, qt.Equals(got, "wxyz"))
}
