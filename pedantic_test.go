// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build curry_pedantic

package curry_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"code.hybscloud.com/curry"
)

// Under the curry_pedantic tag the convenience names accept only the
// declared callable interfaces; plain functions must be lifted first.

func TestPedanticCurryAcceptsRecognizedShapes(t *testing.T) {
	f := curry.Pure3(func(x, y, z int) int { return x + y + z })

	fx := curry.Curry3(f, 1)
	qt.Assert(t, qt.Equals(fx.Call(curry.T2[int, int]{2, 3}), 6))

	fxy := curry.Curry2(fx, 2)
	qt.Assert(t, qt.Equals(fxy.Call(curry.T1[int]{3}), 6))

	fxyz := curry.Curry1(fxy, 3)
	qt.Assert(t, qt.Equals(fxyz.Call(curry.T0{}), 6))
}
