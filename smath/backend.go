// Copyright 2025 go-smath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package smath

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Storage is the set of arrays an aligned vector can be backed by.
// Two-lane vectors use [2]T; three- and four-lane vectors use [4]T.
type Storage[T Element] interface {
	[2]T | [4]T
}

// Kernels is the hook table for one aligned vector length.
//
// A is the aligned storage and M the storage of the matching mask. Every
// hook receives and returns storage values; only the first Lanes lanes are
// meaningful. Hooks may overwrite the padding lane of a three-lane vector;
// the caller clears it afterwards.
//
// A nil hook means the operation is not defined for the element type
// (Shl on floats, Add on bool). The generic API never reaches those.
type Kernels[T Element, A Storage[T], M Storage[bool]] struct {
	// Lanes is the logical lane count served by this table.
	Lanes int

	Splat func(x T) A

	// ShuffleN reads lanes i0..iN-1 into a new N-lane storage.
	Shuffle2 func(a A, i0, i1 int) [2]T
	Shuffle3 func(a A, i0, i1, i2 int) [4]T
	Shuffle4 func(a A, i0, i1, i2, i3 int) [4]T

	// WithShuffleN writes the lanes of b into lanes i0..iN-1 of a.
	// The indices are distinct.
	WithShuffle2 func(a A, b [2]T, i0, i1 int) A
	WithShuffle3 func(a A, b [4]T, i0, i1, i2 int) A
	WithShuffle4 func(a A, b [4]T, i0, i1, i2, i3 int) A

	Eq func(a, b A) bool
	Ne func(a, b A) bool

	Neg func(a A) A
	Not func(a A) A

	Add func(a, b A) A
	Sub func(a, b A) A
	Mul func(a, b A) A
	Div func(a, b A) A
	Rem func(a, b A) A
	And func(a, b A) A
	Or  func(a, b A) A
	Xor func(a, b A) A
	Shl func(a, b A) A
	Shr func(a, b A) A

	EqMask func(a, b A) M
	NeMask func(a, b A) M
	LtMask func(a, b A) M
	GtMask func(a, b A) M
	LeMask func(a, b A) M
	GeMask func(a, b A) M

	Sum     func(a A) T
	Product func(a A) T
}

func (k *Kernels[T, A, M]) binary(op binOp) func(a, b A) A {
	var f func(a, b A) A
	switch op {
	case opAdd:
		f = k.Add
	case opSub:
		f = k.Sub
	case opMul:
		f = k.Mul
	case opDiv:
		f = k.Div
	case opRem:
		f = k.Rem
	case opAnd:
		f = k.And
	case opOr:
		f = k.Or
	case opXor:
		f = k.Xor
	case opShl:
		f = k.Shl
	case opShr:
		f = k.Shr
	}
	if f == nil {
		panic(fmt.Sprintf("smath: %s is not defined for %T", op, *new(T)))
	}
	return f
}

func (k *Kernels[T, A, M]) unary(op unOp) func(a A) A {
	f := k.Neg
	if op == opNot {
		f = k.Not
	}
	if f == nil {
		panic(fmt.Sprintf("smath: %s is not defined for %T", op, *new(T)))
	}
	return f
}

func (k *Kernels[T, A, M]) compare(op cmpOp) func(a, b A) M {
	switch op {
	case cmpEq:
		return k.EqMask
	case cmpNe:
		return k.NeMask
	case cmpLt:
		return k.LtMask
	case cmpGt:
		return k.GtMask
	case cmpLe:
		return k.LeMask
	default:
		return k.GeMask
	}
}

func (k *Kernels[T, A, M]) reduce(op redOp) func(a A) T {
	f := k.Sum
	if op == redProduct {
		f = k.Product
	}
	if f == nil {
		panic(fmt.Sprintf("smath: %s is not defined for %T", op, *new(T)))
	}
	return f
}

// Backend is the per-element hook table.
//
// V2, V3 and V4 serve the aligned vectors and may be replaced through
// Override. Packed vectors always use the scalar lane operations held in
// the unexported lanes field, so disabling SIMD can never change a result.
type Backend[T Element] struct {
	// Name identifies the implementation, "scalar" for the defaults.
	Name string

	V2 Kernels[T, [2]T, [2]bool]
	V3 Kernels[T, [4]T, [4]bool]
	V4 Kernels[T, [4]T, [4]bool]

	lanes *laneOps[T]
}

// laneOps are the scalar element operations. They follow Go semantics:
// integer arithmetic wraps, integer division by zero panics, shifting by a
// negative count panics and float remainder is math.Mod.
type laneOps[T Element] struct {
	add, sub, mul, div, rem func(a, b T) T
	and, or, xor            func(a, b T) T
	shl, shr                func(a, b T) T
	neg, not                func(a T) T

	// less and lessEq order the lanes; for bool false < true.
	less, lessEq func(a, b T) bool
}

func (o *laneOps[T]) binary(op binOp) func(a, b T) T {
	var f func(a, b T) T
	switch op {
	case opAdd:
		f = o.add
	case opSub:
		f = o.sub
	case opMul:
		f = o.mul
	case opDiv:
		f = o.div
	case opRem:
		f = o.rem
	case opAnd:
		f = o.and
	case opOr:
		f = o.or
	case opXor:
		f = o.xor
	case opShl:
		f = o.shl
	case opShr:
		f = o.shr
	}
	if f == nil {
		panic(fmt.Sprintf("smath: %s is not defined for %T", op, *new(T)))
	}
	return f
}

func (o *laneOps[T]) compare(op cmpOp) func(a, b T) bool {
	switch op {
	case cmpEq:
		return func(a, b T) bool { return a == b }
	case cmpNe:
		return func(a, b T) bool { return a != b }
	case cmpLt:
		return o.less
	case cmpGt:
		return func(a, b T) bool { return o.less(b, a) }
	case cmpLe:
		return o.lessEq
	default:
		return func(a, b T) bool { return o.lessEq(b, a) }
	}
}

func floatLaneOps[T Floats]() *laneOps[T] {
	return &laneOps[T]{
		add:    func(a, b T) T { return a + b },
		sub:    func(a, b T) T { return a - b },
		mul:    func(a, b T) T { return a * b },
		div:    func(a, b T) T { return a / b },
		rem:    floatRem[T],
		neg:    func(a T) T { return -a },
		less:   func(a, b T) bool { return a < b },
		lessEq: func(a, b T) bool { return a <= b },
	}
}

func floatRem[T Floats](a, b T) T {
	if x, ok := any(a).(float32); ok {
		return T(math32.Mod(x, float32(b)))
	}
	return T(math.Mod(float64(a), float64(b)))
}

func integerLaneOps[T Integers]() *laneOps[T] {
	return &laneOps[T]{
		add:    func(a, b T) T { return a + b },
		sub:    func(a, b T) T { return a - b },
		mul:    func(a, b T) T { return a * b },
		div:    func(a, b T) T { return a / b },
		rem:    func(a, b T) T { return a % b },
		and:    func(a, b T) T { return a & b },
		or:     func(a, b T) T { return a | b },
		xor:    func(a, b T) T { return a ^ b },
		shl:    func(a, b T) T { return a << b },
		shr:    func(a, b T) T { return a >> b },
		neg:    func(a T) T { return -a },
		not:    func(a T) T { return ^a },
		less:   func(a, b T) bool { return a < b },
		lessEq: func(a, b T) bool { return a <= b },
	}
}

func boolLaneOps() *laneOps[bool] {
	return &laneOps[bool]{
		and:    func(a, b bool) bool { return a && b },
		or:     func(a, b bool) bool { return a || b },
		xor:    func(a, b bool) bool { return a != b },
		not:    func(a bool) bool { return !a },
		less:   func(a, b bool) bool { return !a && b },
		lessEq: func(a, b bool) bool { return !a || b },
	}
}

// scalarKernels builds the default hooks for n logical lanes: plain loops
// over the lane operations.
func scalarKernels[T Element, A Storage[T], M Storage[bool]](n int, o *laneOps[T]) Kernels[T, A, M] {
	k := Kernels[T, A, M]{
		Lanes: n,
		Splat: func(x T) A {
			var r A
			for i := 0; i < n; i++ {
				r[i] = x
			}
			return r
		},
		Shuffle2: func(a A, i0, i1 int) [2]T {
			return [2]T{a[i0], a[i1]}
		},
		Shuffle3: func(a A, i0, i1, i2 int) [4]T {
			return [4]T{a[i0], a[i1], a[i2]}
		},
		Shuffle4: func(a A, i0, i1, i2, i3 int) [4]T {
			return [4]T{a[i0], a[i1], a[i2], a[i3]}
		},
		Eq: func(a, b A) bool {
			for i := 0; i < n; i++ {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		Ne: func(a, b A) bool {
			for i := 0; i < n; i++ {
				if a[i] != b[i] {
					return true
				}
			}
			return false
		},
		Neg: lift1[T, A](n, o.neg),
		Not: lift1[T, A](n, o.not),
		Add: lift2[T, A](n, o.add),
		Sub: lift2[T, A](n, o.sub),
		Mul: lift2[T, A](n, o.mul),
		Div: lift2[T, A](n, o.div),
		Rem: lift2[T, A](n, o.rem),
		And: lift2[T, A](n, o.and),
		Or:  lift2[T, A](n, o.or),
		Xor: lift2[T, A](n, o.xor),
		Shl: lift2[T, A](n, o.shl),
		Shr: lift2[T, A](n, o.shr),

		EqMask: liftCmp[T, A, M](n, o.compare(cmpEq)),
		NeMask: liftCmp[T, A, M](n, o.compare(cmpNe)),
		LtMask: liftCmp[T, A, M](n, o.compare(cmpLt)),
		GtMask: liftCmp[T, A, M](n, o.compare(cmpGt)),
		LeMask: liftCmp[T, A, M](n, o.compare(cmpLe)),
		GeMask: liftCmp[T, A, M](n, o.compare(cmpGe)),

		Sum:     fold[T, A](n, o.add),
		Product: fold[T, A](n, o.mul),
	}
	if n >= 2 {
		k.WithShuffle2 = func(a A, b [2]T, i0, i1 int) A {
			a[i0], a[i1] = b[0], b[1]
			return a
		}
	}
	if n >= 3 {
		k.WithShuffle3 = func(a A, b [4]T, i0, i1, i2 int) A {
			a[i0], a[i1], a[i2] = b[0], b[1], b[2]
			return a
		}
	}
	if n >= 4 {
		k.WithShuffle4 = func(a A, b [4]T, i0, i1, i2, i3 int) A {
			a[i0], a[i1], a[i2], a[i3] = b[0], b[1], b[2], b[3]
			return a
		}
	}
	return k
}

func lift1[T Element, A Storage[T]](n int, f func(a T) T) func(a A) A {
	if f == nil {
		return nil
	}
	return func(a A) A {
		var r A
		for i := 0; i < n; i++ {
			r[i] = f(a[i])
		}
		return r
	}
}

func lift2[T Element, A Storage[T]](n int, f func(a, b T) T) func(a, b A) A {
	if f == nil {
		return nil
	}
	return func(a, b A) A {
		var r A
		for i := 0; i < n; i++ {
			r[i] = f(a[i], b[i])
		}
		return r
	}
}

func liftCmp[T Element, A Storage[T], M Storage[bool]](n int, f func(a, b T) bool) func(a, b A) M {
	return func(a, b A) M {
		var r M
		for i := 0; i < n; i++ {
			r[i] = f(a[i], b[i])
		}
		return r
	}
}

// fold reduces left to right: ((a0 op a1) op a2) op a3.
func fold[T Element, A Storage[T]](n int, f func(a, b T) T) func(a A) T {
	if f == nil {
		return nil
	}
	return func(a A) T {
		r := a[0]
		for i := 1; i < n; i++ {
			r = f(r, a[i])
		}
		return r
	}
}

func newBackend[T Element](o *laneOps[T]) Backend[T] {
	return Backend[T]{
		Name:  "scalar",
		V2:    scalarKernels[T, [2]T, [2]bool](2, o),
		V3:    scalarKernels[T, [4]T, [4]bool](3, o),
		V4:    scalarKernels[T, [4]T, [4]bool](4, o),
		lanes: o,
	}
}

var (
	intBackend     = newBackend(integerLaneOps[int]())
	int8Backend    = newBackend(integerLaneOps[int8]())
	int16Backend   = newBackend(integerLaneOps[int16]())
	int32Backend   = newBackend(integerLaneOps[int32]())
	int64Backend   = newBackend(integerLaneOps[int64]())
	uintBackend    = newBackend(integerLaneOps[uint]())
	uint8Backend   = newBackend(integerLaneOps[uint8]())
	uint16Backend  = newBackend(integerLaneOps[uint16]())
	uint32Backend  = newBackend(integerLaneOps[uint32]())
	uint64Backend  = newBackend(integerLaneOps[uint64]())
	float32Backend = newBackend(floatLaneOps[float32]())
	float64Backend = newBackend(floatLaneOps[float64]())
	boolBackend    = newBackend(boolLaneOps())
)

// backendOf returns the hook table of T. The switch is resolved per
// instantiation; every Element has exactly one backend.
func backendOf[T Element]() *Backend[T] {
	var zero T
	var b any
	switch any(zero).(type) {
	case int:
		b = &intBackend
	case int8:
		b = &int8Backend
	case int16:
		b = &int16Backend
	case int32:
		b = &int32Backend
	case int64:
		b = &int64Backend
	case uint:
		b = &uintBackend
	case uint8:
		b = &uint8Backend
	case uint16:
		b = &uint16Backend
	case uint32:
		b = &uint32Backend
	case uint64:
		b = &uint64Backend
	case float32:
		b = &float32Backend
	case float64:
		b = &float64Backend
	case bool:
		b = &boolBackend
	}
	return b.(*Backend[T])
}

// Override replaces hooks of the aligned vectors of T. fn receives the live
// table and may assign any subset of the V2, V3 and V4 hooks; name becomes
// the reported backend name.
//
// Replacement hooks must return the same results as the scalar defaults for
// every input the defaults accept. Override is not synchronized with
// vector operations and is meant to be called from init functions.
func Override[T Element](name string, fn func(b *Backend[T])) {
	b := backendOf[T]()
	prev := b.Name
	fn(b)
	b.Name = name
	Logger().Debug("smath: backend overridden",
		"elem", fmt.Sprintf("%T", *new(T)),
		"from", prev,
		"to", name)
}

// BackendName returns the name of the hooks serving aligned vectors of T.
func BackendName[T Element]() string {
	return backendOf[T]().Name
}

// BackendInfo names the backend of one element type.
type BackendInfo struct {
	Elem string
	Name string
}

// Backends lists the backend of every element type.
func Backends() []BackendInfo {
	return []BackendInfo{
		{"int", intBackend.Name},
		{"int8", int8Backend.Name},
		{"int16", int16Backend.Name},
		{"int32", int32Backend.Name},
		{"int64", int64Backend.Name},
		{"uint", uintBackend.Name},
		{"uint8", uint8Backend.Name},
		{"uint16", uint16Backend.Name},
		{"uint32", uint32Backend.Name},
		{"uint64", uint64Backend.Name},
		{"float32", float32Backend.Name},
		{"float64", float64Backend.Name},
		{"bool", boolBackend.Name},
	}
}

// Accelerated reports whether any element type runs on hooks other than
// the scalar defaults. A detected dispatch level alone installs nothing.
func Accelerated() bool {
	for _, b := range Backends() {
		if b.Name != "scalar" {
			return true
		}
	}
	return false
}

// pad3 clears the padding lane of a three-lane aligned storage.
func pad3[T Element](a [4]T) [4]T {
	var zero T
	a[3] = zero
	return a
}
