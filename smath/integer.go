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

import "unsafe"

// Integer overflow helpers, generic over every integer width. Go integer
// arithmetic wraps, so each checked operation computes the wrapped result
// and then tests whether wrapping happened.

func isSigned[T Integers]() bool {
	var zero T
	return ^zero < 0
}

// limits returns the smallest and largest values of T.
func limits[T Integers]() (lo, hi T) {
	var zero T
	if !isSigned[T]() {
		return zero, ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	lo = T(1) << (bits - 1)
	return lo, ^lo
}

func checkedAdd[T Integers](a, b T) (T, bool) {
	r := a + b
	if isSigned[T]() {
		return r, (b >= 0) == (r >= a)
	}
	return r, r >= a
}

func checkedSub[T Integers](a, b T) (T, bool) {
	r := a - b
	if isSigned[T]() {
		return r, (b >= 0) == (r <= a)
	}
	return r, b <= a
}

func checkedMul[T Integers](a, b T) (T, bool) {
	var zero T
	if a == zero || b == zero {
		return zero, true
	}
	r := a * b
	if isSigned[T]() {
		lo, _ := limits[T]()
		minusOne := ^zero
		if (a == minusOne && b == lo) || (b == minusOne && a == lo) {
			return r, false
		}
	}
	return r, r/b == a
}

func checkedDiv[T Integers](a, b T) (T, bool) {
	var zero T
	if b == zero {
		return zero, false
	}
	if isSigned[T]() {
		lo, _ := limits[T]()
		if a == lo && b == ^zero {
			return a, false
		}
	}
	return a / b, true
}

func checkedRem[T Integers](a, b T) (T, bool) {
	var zero T
	if b == zero {
		return zero, false
	}
	if isSigned[T]() {
		lo, _ := limits[T]()
		if a == lo && b == ^zero {
			return zero, false
		}
	}
	return a % b, true
}

func saturatingAdd[T Integers](a, b T) T {
	r, ok := checkedAdd(a, b)
	if ok {
		return r
	}
	lo, hi := limits[T]()
	if isSigned[T]() && b < 0 {
		return lo
	}
	return hi
}

func saturatingSub[T Integers](a, b T) T {
	r, ok := checkedSub(a, b)
	if ok {
		return r
	}
	lo, hi := limits[T]()
	if isSigned[T]() && b < 0 {
		return hi
	}
	return lo
}

func saturatingMul[T Integers](a, b T) T {
	r, ok := checkedMul(a, b)
	if ok {
		return r
	}
	lo, hi := limits[T]()
	if isSigned[T]() && (a < 0) != (b < 0) {
		return lo
	}
	return hi
}

// saturatingDiv only saturates MIN / -1; division by zero panics.
func saturatingDiv[T Integers](a, b T) T {
	if isSigned[T]() {
		var zero T
		lo, hi := limits[T]()
		if a == lo && b == ^zero {
			return hi
		}
	}
	return a / b
}

func checkedLanes[V Vector[T], T Integers](a, b V, f func(x, y T) (T, bool)) (V, bool) {
	la, n := lanesOf[V, T](a)
	lb, _ := lanesOf[V, T](b)
	for i := 0; i < n; i++ {
		r, ok := f(la[i], lb[i])
		if !ok {
			var zero V
			return zero, false
		}
		la[i] = r
	}
	return fromLanes[V](la), true
}

// CheckedAdd returns a + b and true, or the zero vector and false if any
// lane overflows.
func CheckedAdd[V Vector[T], T Integers](a, b V) (V, bool) {
	return checkedLanes(a, b, checkedAdd[T])
}

// CheckedSub returns a - b and true, or false if any lane overflows.
func CheckedSub[V Vector[T], T Integers](a, b V) (V, bool) {
	return checkedLanes(a, b, checkedSub[T])
}

// CheckedMul returns a * b and true, or false if any lane overflows.
func CheckedMul[V Vector[T], T Integers](a, b V) (V, bool) {
	return checkedLanes(a, b, checkedMul[T])
}

// CheckedDiv returns a / b and true, or false if any lane of b is zero or a
// lane computes MIN / -1.
func CheckedDiv[V Vector[T], T Integers](a, b V) (V, bool) {
	return checkedLanes(a, b, checkedDiv[T])
}

// CheckedRem returns a % b and true, or false if any lane of b is zero or a
// lane computes MIN % -1.
func CheckedRem[V Vector[T], T Integers](a, b V) (V, bool) {
	return checkedLanes(a, b, checkedRem[T])
}

// WrappingAdd returns a + b modulo 2^bits. This is Add; the name documents
// intent at the call site.
func WrappingAdd[V Vector[T], T Integers](a, b V) V { return binary[V, T](opAdd, a, b) }

// WrappingSub returns a - b modulo 2^bits.
func WrappingSub[V Vector[T], T Integers](a, b V) V { return binary[V, T](opSub, a, b) }

// WrappingMul returns a * b modulo 2^bits.
func WrappingMul[V Vector[T], T Integers](a, b V) V { return binary[V, T](opMul, a, b) }

// WrappingDiv returns a / b where MIN / -1 wraps to MIN. Division by zero
// panics.
func WrappingDiv[V Vector[T], T Integers](a, b V) V { return binary[V, T](opDiv, a, b) }

// WrappingRem returns a % b where MIN % -1 is 0. Division by zero panics.
func WrappingRem[V Vector[T], T Integers](a, b V) V { return binary[V, T](opRem, a, b) }

// SaturatingAdd returns a + b clamped to the range of T.
func SaturatingAdd[V Vector[T], T Integers](a, b V) V { return zipLanes(a, b, saturatingAdd[T]) }

// SaturatingSub returns a - b clamped to the range of T.
func SaturatingSub[V Vector[T], T Integers](a, b V) V { return zipLanes(a, b, saturatingSub[T]) }

// SaturatingMul returns a * b clamped to the range of T.
func SaturatingMul[V Vector[T], T Integers](a, b V) V { return zipLanes(a, b, saturatingMul[T]) }

// SaturatingDiv returns a / b where MIN / -1 saturates to MAX. Division by
// zero panics.
func SaturatingDiv[V Vector[T], T Integers](a, b V) V { return zipLanes(a, b, saturatingDiv[T]) }
