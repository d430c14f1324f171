// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package curry provides compile-time argument binding (currying) for Go
// callables, with capability-tier propagation.
//
// Binding one argument of an N-argument callable yields a callable of the
// remaining N-1 arguments. The bound value can be fixed at the front
// ([Curry2], [CurryFn2], ...) or at the back ([RCurry2], [RCurryFn2], ...)
// of the argument list. Binding composes: each call adds exactly one
// wrapper level, and a fully bound callable takes the empty tuple [T0].
//
// # Capability Tiers
//
// A callable satisfies one of three ascending tiers:
//
//   - [FnOnce]: may be invoked at most once, consuming the callable
//   - [FnMut]: repeatable, each invocation may mutate captured state
//   - [Fn]: repeatable with shared access; invocation mutates nothing
//
// The tiers nest by interface embedding, so Fn implies FnMut implies
// FnOnce, and tier availability is a compile-time property: a value of
// static type [FnOnce] has no Call or CallMut method to misuse.
//
// Binding preserves the inner callable's tier. [CurryFn2] maps Fn to Fn,
// [CurryMut2] maps FnMut to FnMut, and [CurryOnce2] maps FnOnce to
// FnOnce. A curried wrapper holds no mutable state of its own, so at the
// shared tier concurrent invocations from multiple goroutines are
// race-free by construction, not by locking.
//
// # Argument Tuples
//
// Callables operate on fixed-arity argument tuples [T0] through [T4].
// The splice primitives ([Prepend1], [Append1], [SplitFront2],
// [SplitBack2], ...) insert or remove one element at either end; they
// are pure, allocation-free and deterministic. Ordinary Go functions
// move in and out of tuple form through the lifts ([Pure2], [Stateful2],
// [Once2]) and lowerings ([Func1], [Func2], ...).
//
// # Lifting Go Functions
//
// Which lift to use states a contract the type system then holds you to:
//
//   - [Pure2] and friends: the function does not rely on captured mutable
//     state; the result satisfies [Fn]
//   - [Stateful2] and friends: the closure mutates captured state; the
//     result satisfies [FnMut] and is kept out of shared-tier positions
//   - [Once2], [Once]: the function must run at most once; the [Affine]
//     adapter enforces the single use at runtime, panicking on reuse
//     (TryCallOnce and Discard are the non-panicking escape hatches)
//
// The lifts return interface values so that type inference flows through
// chained entry points. Stepping down the hierarchy explicitly is done
// with [AsMut] and [AsOnce].
//
// # Entry Points
//
// [Curry1] through [Curry4] accept ordinary Go functions and bind the
// first argument at the shared tier. The tier-explicit forms [CurryFn1]
// through [CurryFn4], [CurryMut1] through [CurryMut4] and [CurryOnce1]
// through [CurryOnce4] accept the corresponding interface and are the
// forms used to curry an already-curried value. [RCurry1] and the
// matching R-prefixed forms bind the last argument instead.
//
// There is no zero-arity entry point: currying a callable with no
// remaining arguments does not type-check. Construction never invokes
// the inner callable, and invocation of a wrapper only splices the bound
// value into the caller-supplied tuple and forwards.
//
// # Build Tags
//
// Compile-time configuration is exclusively build tags:
//
//   - curry_no_rcurry: removes the whole back-binding surface; with the
//     tag set, no RCurry form exists and uses fail to compile
//   - curry_pedantic: the convenience names Curry1..Curry4 (and RCurry
//     twins) accept only the declared callable interfaces instead of
//     plain functions, rejecting non-callable shapes at the entry point
//   - curry_async: enables the experimental asynchronous tier mirror
//
// # Asynchronous Tier (experimental)
//
// Under curry_async, [AsyncFnOnce], [AsyncFnMut] and [AsyncFn] mirror
// the synchronous hierarchy with invocations returning a [Task], a
// deferred result run with a context. The curried wrappers forward the
// inner callable's Task unchanged: they add no suspension points and no
// scheduling, and cancellation is entirely the inner callable's
// treatment of the context.
//
// # Example
//
//	f := func(x, y, z int) int { return x + y + z }
//
//	fx := curry.Curry3(f, 1)        // binds x
//	fxz := curry.RCurryFn2(fx, 3)   // binds z
//	fxyz := curry.CurryFn1(fxz, 2)  // binds y
//
//	fxz.Call(curry.T1[int]{2})      // 6
//	curry.Func0(fxyz)()             // 6
package curry
