package smath

import (
	"math"

	"github.com/chewxy/math32"
)

// unaryFloat applies the float32 or float64 form of a math function.
func unaryFloat[T Floats](x T, f32 func(float32) float32, f64 func(float64) float64) T {
	if f, ok := any(x).(float32); ok {
		return T(f32(f))
	}
	return T(f64(float64(x)))
}

func floatMap[V Vector[T], T Floats](v V, f32 func(float32) float32, f64 func(float64) float64) V {
	return mapLanes(v, func(x T) T { return unaryFloat(x, f32, f64) })
}

// Floor returns the lane-wise greatest integer value <= v[i].
func Floor[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Floor, math.Floor) }

// Ceil returns the lane-wise least integer value >= v[i].
func Ceil[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Ceil, math.Ceil) }

// Round returns the lane-wise nearest integer, rounding half away from zero.
func Round[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Round, math.Round) }

// Trunc returns the lane-wise integer part.
func Trunc[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Trunc, math.Trunc) }

// Fract returns the lane-wise fractional part v[i] - Trunc(v[i]).
func Fract[V Vector[T], T Floats](v V) V {
	return mapLanes(v, func(x T) T { return x - unaryFloat(x, math32.Trunc, math.Trunc) })
}

// Recip returns the lane-wise 1 / v[i].
func Recip[V Vector[T], T Floats](v V) V {
	return mapLanes(v, func(x T) T { return 1 / x })
}

// Sqrt returns the lane-wise square root.
func Sqrt[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Sqrt, math.Sqrt) }

// Sin returns the lane-wise sine of radian lanes.
func Sin[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Sin, math.Sin) }

// Cos returns the lane-wise cosine of radian lanes.
func Cos[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Cos, math.Cos) }

// Tan returns the lane-wise tangent of radian lanes.
func Tan[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Tan, math.Tan) }

// Asin returns the lane-wise arcsine in radians.
func Asin[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Asin, math.Asin) }

// Acos returns the lane-wise arccosine in radians.
func Acos[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Acos, math.Acos) }

// Atan returns the lane-wise arctangent in radians.
func Atan[V Vector[T], T Floats](v V) V { return floatMap[V, T](v, math32.Atan, math.Atan) }

// MulAdd returns the lane-wise a[i]*b[i] + c[i] with a single rounding.
func MulAdd[V Vector[T], T Floats](a, b, c V) V {
	return zip3Lanes(a, b, c, func(x, y, z T) T {
		if _, ok := any(x).(float32); ok {
			return T(fma32(float32(x), float32(y), float32(z)))
		}
		return T(math.FMA(float64(x), float64(y), float64(z)))
	})
}

// fma32 is a float32 fused multiply-add. The float64 product of two float32
// values is exact; the sum is rounded to odd in float64 so that the final
// conversion to float32 rounds only once.
func fma32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	s := p + float64(z)
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	// Exact error of the addition (TwoSum).
	bv := s - p
	e := (p - (s - bv)) + (float64(z) - bv)
	if e != 0 && math.Float64bits(s)&1 == 0 {
		s = math.Nextafter(s, math.Copysign(math.Inf(1), e))
	}
	return float32(s)
}

// DivEuclid returns the lane-wise Euclidean quotient: the q for which
// a = q·b + r with 0 <= r < |b|, rounded to an integer.
func DivEuclid[V Vector[T], T Floats](a, b V) V {
	return zipLanes(a, b, func(x, y T) T {
		q := unaryFloat(x/y, math32.Trunc, math.Trunc)
		if floatRem(x, y) < 0 {
			if y > 0 {
				return q - 1
			}
			return q + 1
		}
		return q
	})
}

// RemEuclid returns the lane-wise least non-negative remainder of a[i] / b[i].
func RemEuclid[V Vector[T], T Floats](a, b V) V {
	return zipLanes(a, b, func(x, y T) T {
		r := floatRem(x, y)
		if r < 0 {
			return r + unaryFloat(y, math32.Abs, math.Abs)
		}
		return r
	})
}

// Copysign returns the lane-wise magnitude of a with the sign of b.
func Copysign[V Vector[T], T Floats](a, b V) V {
	return zipLanes(a, b, func(x, y T) T {
		if f, ok := any(x).(float32); ok {
			return T(math32.Copysign(f, float32(y)))
		}
		return T(math.Copysign(float64(x), float64(y)))
	})
}

// Midpoint returns the lane-wise (a[i] + b[i]) / 2 without intermediate
// overflow.
func Midpoint[V Vector[T], T Floats](a, b V) V {
	return zipLanes(a, b, midpointLane[T])
}

func midpointLane[T Floats](a, b T) T {
	if _, ok := any(a).(float32); ok {
		// Exact in float64, rounded once.
		return T((float64(a) + float64(b)) / 2)
	}
	const (
		lo = 2 * 0x1p-1022
		hi = math.MaxFloat64 / 2
	)
	x, y := float64(a), float64(b)
	ax, ay := math.Abs(x), math.Abs(y)
	switch {
	case ax <= hi && ay <= hi:
		return T((x + y) / 2)
	case ax < lo:
		return T(x + y/2)
	case ay < lo:
		return T(x/2 + y)
	default:
		return T(x/2 + y/2)
	}
}

// Mag returns the magnitude Sqrt(MagSq(v)).
func Mag[V Vector[T], T Floats](v V) T {
	return unaryFloat(MagSq[V, T](v), math32.Sqrt, math.Sqrt)
}

// Distance returns Mag(Sub(a, b)).
func Distance[V Vector[T], T Floats](a, b V) T {
	return Mag[V, T](binary[V, T](opSub, a, b))
}

// Normalize returns v scaled to unit magnitude. A zero vector yields NaN
// lanes.
func Normalize[V Vector[T], T Floats](v V) V {
	return binary[V, T](opDiv, v, splat[V](Mag[V, T](v)))
}

// IsNaN reports whether any lane of v is NaN.
func IsNaN[V Vector[T], T Floats](v V) bool {
	l, n := lanesOf[V, T](v)
	for i := 0; i < n; i++ {
		if isNaN(l[i]) {
			return true
		}
	}
	return false
}

// IsFinite reports whether every lane of v is neither infinite nor NaN.
func IsFinite[V Vector[T], T Floats](v V) bool {
	l, n := lanesOf[V, T](v)
	for i := 0; i < n; i++ {
		if !isFinite(l[i]) {
			return false
		}
	}
	return true
}

func isNaN[T Element](x T) bool {
	return x != x
}

func isFinite[T Element](x T) bool {
	switch f := any(x).(type) {
	case float32:
		return !math32.IsNaN(f) && !math32.IsInf(f, 0)
	case float64:
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}
