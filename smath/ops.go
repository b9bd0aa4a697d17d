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
	"math"

	"github.com/chewxy/math32"
)

// Add performs element-wise addition: result[i] = a[i] + b[i].
func Add[V Vector[T], T Number](a, b V) V {
	return binary[V, T](opAdd, a, b)
}

// Sub performs element-wise subtraction: result[i] = a[i] - b[i].
func Sub[V Vector[T], T Number](a, b V) V {
	return binary[V, T](opSub, a, b)
}

// Mul performs element-wise multiplication: result[i] = a[i] * b[i].
func Mul[V Vector[T], T Number](a, b V) V {
	return binary[V, T](opMul, a, b)
}

// Div performs element-wise division: result[i] = a[i] / b[i].
// Integer division by zero panics, as in Go.
func Div[V Vector[T], T Number](a, b V) V {
	return binary[V, T](opDiv, a, b)
}

// Rem performs element-wise remainder: result[i] = a[i] % b[i].
// For floats the remainder is math.Mod.
func Rem[V Vector[T], T Number](a, b V) V {
	return binary[V, T](opRem, a, b)
}

// Neg negates each lane: result[i] = -v[i].
func Neg[V Vector[T], T Number](v V) V {
	return unary[V, T](opNeg, v)
}

// And performs element-wise bitwise AND, or logical AND for masks.
func And[V Vector[T], T Bits](a, b V) V {
	return binary[V, T](opAnd, a, b)
}

// Or performs element-wise bitwise OR, or logical OR for masks.
func Or[V Vector[T], T Bits](a, b V) V {
	return binary[V, T](opOr, a, b)
}

// Xor performs element-wise bitwise XOR, or logical XOR for masks.
func Xor[V Vector[T], T Bits](a, b V) V {
	return binary[V, T](opXor, a, b)
}

// Not complements each lane: ^v[i] for integers, !v[i] for masks.
func Not[V Vector[T], T Bits](v V) V {
	return unary[V, T](opNot, v)
}

// Shl shifts each lane left: result[i] = a[i] << b[i]. A negative shift
// count panics, as in Go.
func Shl[V Vector[T], T Integers](a, b V) V {
	return binary[V, T](opShl, a, b)
}

// Shr shifts each lane right: result[i] = a[i] >> b[i]. Signed lanes shift
// arithmetically.
func Shr[V Vector[T], T Integers](a, b V) V {
	return binary[V, T](opShr, a, b)
}

// Scale multiplies every lane by s.
func Scale[V Vector[T], T Number](v V, s T) V {
	return binary[V, T](opMul, v, splat[V](s))
}

// AddAssign sets *dst = Add(*dst, v).
func AddAssign[V Vector[T], T Number](dst *V, v V) { *dst = binary[V, T](opAdd, *dst, v) }

// SubAssign sets *dst = Sub(*dst, v).
func SubAssign[V Vector[T], T Number](dst *V, v V) { *dst = binary[V, T](opSub, *dst, v) }

// MulAssign sets *dst = Mul(*dst, v).
func MulAssign[V Vector[T], T Number](dst *V, v V) { *dst = binary[V, T](opMul, *dst, v) }

// DivAssign sets *dst = Div(*dst, v).
func DivAssign[V Vector[T], T Number](dst *V, v V) { *dst = binary[V, T](opDiv, *dst, v) }

// RemAssign sets *dst = Rem(*dst, v).
func RemAssign[V Vector[T], T Number](dst *V, v V) { *dst = binary[V, T](opRem, *dst, v) }

// AndAssign sets *dst = And(*dst, v).
func AndAssign[V Vector[T], T Bits](dst *V, v V) { *dst = binary[V, T](opAnd, *dst, v) }

// OrAssign sets *dst = Or(*dst, v).
func OrAssign[V Vector[T], T Bits](dst *V, v V) { *dst = binary[V, T](opOr, *dst, v) }

// XorAssign sets *dst = Xor(*dst, v).
func XorAssign[V Vector[T], T Bits](dst *V, v V) { *dst = binary[V, T](opXor, *dst, v) }

// ShlAssign sets *dst = Shl(*dst, v).
func ShlAssign[V Vector[T], T Integers](dst *V, v V) { *dst = binary[V, T](opShl, *dst, v) }

// ShrAssign sets *dst = Shr(*dst, v).
func ShrAssign[V Vector[T], T Integers](dst *V, v V) { *dst = binary[V, T](opShr, *dst, v) }

// Sum adds the lanes left to right.
func Sum[V Vector[T], T Number](v V) T {
	return reduce[V, T](redSum, v)
}

// Product multiplies the lanes left to right.
func Product[V Vector[T], T Number](v V) T {
	return reduce[V, T](redProduct, v)
}

// Dot returns Sum(Mul(a, b)).
func Dot[V Vector[T], T Number](a, b V) T {
	return reduce[V, T](redSum, binary[V, T](opMul, a, b))
}

// MagSq returns the squared magnitude Dot(v, v).
func MagSq[V Vector[T], T Number](v V) T {
	return Dot[V, T](v, v)
}

// DistanceSq returns MagSq(Sub(a, b)).
func DistanceSq[V Vector[T], T Number](a, b V) T {
	return MagSq[V, T](binary[V, T](opSub, a, b))
}

// AbsDiff returns the lane-wise |a[i] - b[i]|. Signed and float lanes give
// exactly Abs(Sub(a, b)), wrapping included; unsigned lanes subtract the
// smaller lane from the larger.
func AbsDiff[V Vector[T], T Number](a, b V) V {
	return zipLanes(a, b, absDiffLane[T])
}

func absDiffLane[T Number](x, y T) T {
	var zero T
	if zero-1 < zero {
		return absLane(x - y)
	}
	if x > y {
		return x - y
	}
	return y - x
}

// Abs returns the lane-wise absolute value. Unsigned lanes are unchanged;
// the most negative signed integer stays negative, as in Go.
func Abs[V Vector[T], T Number](v V) V {
	return mapLanes(v, absLane[T])
}

func absLane[T Number](x T) T {
	switch f := any(x).(type) {
	case float32:
		return T(math32.Abs(f))
	case float64:
		return T(math.Abs(f))
	}
	if x < 0 {
		return -x
	}
	return x
}

// Signum returns the lane-wise sign: -1, 0 or 1 for integers; for floats
// 1 or -1 following the sign bit, and NaN for NaN lanes.
func Signum[V Vector[T], T Number](v V) V {
	return mapLanes(v, signumLane[T])
}

func signumLane[T Number](x T) T {
	switch f := any(x).(type) {
	case float32:
		if math32.IsNaN(f) {
			return x
		}
		return T(math32.Copysign(1, f))
	case float64:
		if math.IsNaN(f) {
			return x
		}
		return T(math.Copysign(1, f))
	}
	var one T = 1
	switch {
	case x > 0:
		return one
	case x < 0:
		var zero T
		return zero - one
	default:
		return x
	}
}

// Min returns the lane-wise minimum. Float lanes follow the builtin min,
// so a NaN lane yields NaN; debug builds panic on NaN lanes instead.
func Min[V Vector[T], T Number](a, b V) V {
	if debugChecks {
		assertNotNaN[V, T]("Min", a, b)
	}
	return zipLanes(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the lane-wise maximum. NaN handling matches Min.
func Max[V Vector[T], T Number](a, b V) V {
	if debugChecks {
		assertNotNaN[V, T]("Max", a, b)
	}
	return zipLanes(a, b, func(x, y T) T { return max(x, y) })
}

// Clamp restricts each lane of v to [lo[i], hi[i]]. Debug builds panic if
// any lane is NaN or lo[i] > hi[i].
func Clamp[V Vector[T], T Number](v, lo, hi V) V {
	if debugChecks {
		assertNotNaN[V, T]("Clamp", v, lo, hi)
		l, n := lanesOf[V, T](lo)
		h, _ := lanesOf[V, T](hi)
		for i := 0; i < n; i++ {
			if l[i] > h[i] {
				panic(&RangeError{Op: "Clamp", Lane: i, Lo: any(l[i]), Hi: any(h[i])})
			}
		}
	}
	return zip3Lanes(v, lo, hi, func(x, l, h T) T {
		if x < l {
			return l
		}
		if x > h {
			return h
		}
		return x
	})
}

func assertNotNaN[V Vector[T], T Number](op string, vs ...V) {
	for _, v := range vs {
		l, n := lanesOf[V, T](v)
		for i := 0; i < n; i++ {
			if l[i] != l[i] {
				panic(&RangeError{Op: op, Lane: i, NaN: true})
			}
		}
	}
}

// Lerp interpolates linearly: a + (b-a)·t.
func Lerp[V Vector[T], T Floats](a, b V, t T) V {
	return binary[V, T](opAdd, a, Scale[V, T](binary[V, T](opSub, b, a), t))
}

// Cross returns the right-handed cross product of two three-lane vectors.
func Cross[V Vector3[T], T Number](a, b V) V {
	x, y := a.ToArray(), b.ToArray()
	return fromLanes[V]([4]T{
		x[1]*y[2] - x[2]*y[1],
		x[2]*y[0] - x[0]*y[2],
		x[0]*y[1] - x[1]*y[0],
	})
}
