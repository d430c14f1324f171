// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"sync"
	"testing"

	"github.com/go-quicktest/qt"

	"code.hybscloud.com/curry"
)

func TestAffineCallOnce(t *testing.T) {
	f := func(x curry.T1[int]) string {
		return "received"
	}
	aff := curry.Once(f)

	got := aff.CallOnce(curry.T1[int]{42})
	qt.Assert(t, qt.Equals(got, "received"))

	// After CallOnce, TryCallOnce must fail
	_, ok := aff.TryCallOnce(curry.T1[int]{0})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestAffinePanicOnReuse(t *testing.T) {
	aff := curry.Once(func(x curry.T1[int]) int { return x.V0 * 2 })

	_ = aff.CallOnce(curry.T1[int]{10})

	qt.Assert(t, qt.PanicMatches(func() {
		_ = aff.CallOnce(curry.T1[int]{20})
	}, "curry: affine callable invoked twice"))
}

func TestAffineTryCallOnce(t *testing.T) {
	aff := curry.Once(func(x curry.T1[int]) int { return x.V0 * 2 })

	got, ok := aff.TryCallOnce(curry.T1[int]{10})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, 20))

	// Second try fails without panic and yields the zero value
	got, ok = aff.TryCallOnce(curry.T1[int]{20})
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(got, 0))
}

func TestAffineDiscard(t *testing.T) {
	aff := curry.Once(func(x curry.T1[int]) int { return x.V0 })

	aff.Discard()

	_, ok := aff.TryCallOnce(curry.T1[int]{42})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestAffineDiscardThenPanic(t *testing.T) {
	aff := curry.Once(func(x curry.T1[int]) int { return x.V0 })
	aff.Discard()

	qt.Assert(t, qt.PanicMatches(func() {
		_ = aff.CallOnce(curry.T1[int]{42})
	}, "curry: affine callable invoked twice"))
}

func TestAffineConcurrentTryCallOnce(t *testing.T) {
	aff := curry.Once(func(x curry.T1[int]) int { return x.V0 })

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)

	successCount := make(chan int, goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			if _, ok := aff.TryCallOnce(curry.T1[int]{1}); ok {
				successCount <- 1
			}
		}()
	}

	wg.Wait()
	close(successCount)

	successes := 0
	for range successCount {
		successes++
	}

	qt.Assert(t, qt.Equals(successes, 1))
}

func TestOnceLiftTier(t *testing.T) {
	// Once2 yields a single-use callable; a curried wrapper built on it
	// is consumed together with its inner callable.
	f := curry.Once2(func(a, b int) int { return a - b })
	fa := curry.CurryOnce2(f, 10)

	got := fa.CallOnce(curry.T1[int]{4})
	qt.Assert(t, qt.Equals(got, 6))

	qt.Assert(t, qt.PanicMatches(func() {
		_ = fa.CallOnce(curry.T1[int]{4})
	}, "curry: affine callable invoked twice"))
}
