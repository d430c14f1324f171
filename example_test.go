// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !curry_pedantic

package curry_test

import (
	"fmt"
	"strings"

	"code.hybscloud.com/curry"
)

func ExampleCurry2() {
	indent := curry.Curry2(strings.Repeat, "  ")
	fmt.Println(indent.Call(curry.T1[int]{3}) + "deep")
	// Output:
	//       deep
}

func ExampleCurry3() {
	clamp := func(lo, hi, x int) int {
		return min(max(x, lo), hi)
	}
	percent := curry.Curry3(clamp, 0)
	unit := curry.CurryFn2(percent, 100)

	fmt.Println(unit.Call(curry.T1[int]{150}))
	fmt.Println(unit.Call(curry.T1[int]{-3}))
	fmt.Println(unit.Call(curry.T1[int]{42}))
	// Output:
	// 100
	// 0
	// 42
}

func ExampleFunc1() {
	header := curry.Func1(curry.Curry2(func(level, title string) string {
		return level + " " + title
	}, "##"))

	fmt.Println(header("Install"))
	fmt.Println(header("Usage"))
	// Output:
	// ## Install
	// ## Usage
}
