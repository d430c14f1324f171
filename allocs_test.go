// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"testing"

	"code.hybscloud.com/curry"
)

func TestCurriedCallAllocs(t *testing.T) {
	fx := curry.CurryFn3(curry.Pure3(func(x, y, z int) int { return x + y + z }), 1)
	rest := curry.T2[int, int]{2, 3}
	allocs := testing.AllocsPerRun(100, func() {
		_ = fx.Call(rest)
	})
	if allocs > 0 {
		t.Errorf("curried Call allocs = %v; want 0", allocs)
	}
}

func TestFullyCurriedCallAllocs(t *testing.T) {
	f := curry.Pure3(func(x, y, z int) int { return x + y + z })
	fxyz := curry.CurryFn1(curry.CurryFn2(curry.CurryFn3(f, 1), 2), 3)
	allocs := testing.AllocsPerRun(100, func() {
		_ = fxyz.Call(curry.T0{})
	})
	if allocs > 0 {
		t.Errorf("fully curried Call allocs = %v; want 0", allocs)
	}
}

func TestSpliceAllocs(t *testing.T) {
	rest := curry.T2[int, int]{2, 3}
	allocs := testing.AllocsPerRun(100, func() {
		_ = curry.Prepend2(1, rest)
	})
	if allocs > 0 {
		t.Errorf("Prepend2 allocs = %v; want 0", allocs)
	}
}

func TestAffineTryCallAllocs(t *testing.T) {
	aff := curry.Once(func(x curry.T1[int]) int { return x.V0 })
	aff.Discard()
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = aff.TryCallOnce(curry.T1[int]{1})
	})
	if allocs > 0 {
		t.Errorf("spent TryCallOnce allocs = %v; want 0", allocs)
	}
}
