package smath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertPanicsWith checks that fn panics with a value equal to want. The
// error types panic by pointer, so the values are compared by content.
func assertPanicsWith(t *testing.T, want error, fn func()) bool {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	if !assert.NotNil(t, got, "expected a panic with %v", want) {
		return false
	}
	return assert.Equal(t, want, got)
}

// checkLaneWise verifies that op on vectors matches scalar on each lane,
// for both representations of a four-lane vector.
func checkLaneWise[T Number](t *testing.T, name string, a, b [4]T, op func(x, y Vec4[T]) Vec4[T], opP func(x, y Vec4P[T]) Vec4P[T], scalar func(x, y T) T) {
	t.Helper()
	got := op(Vec4FromArray(a), Vec4FromArray(b)).ToArray()
	gotP := opP(Vec4PFromArray(a), Vec4PFromArray(b)).ToArray()
	for i := range 4 {
		want := scalar(a[i], b[i])
		assert.Equal(t, want, got[i], "%s aligned lane %d", name, i)
		assert.Equal(t, want, gotP[i], "%s packed lane %d", name, i)
	}
}

func TestArithmeticInt32(t *testing.T) {
	a := [4]int32{7, -8, math.MaxInt32, 100}
	b := [4]int32{2, 3, 1, -7}
	checkLaneWise(t, "Add", a, b, Add[Vec4[int32], int32], Add[Vec4P[int32], int32], func(x, y int32) int32 { return x + y })
	checkLaneWise(t, "Sub", a, b, Sub[Vec4[int32], int32], Sub[Vec4P[int32], int32], func(x, y int32) int32 { return x - y })
	checkLaneWise(t, "Mul", a, b, Mul[Vec4[int32], int32], Mul[Vec4P[int32], int32], func(x, y int32) int32 { return x * y })
	checkLaneWise(t, "Div", a, b, Div[Vec4[int32], int32], Div[Vec4P[int32], int32], func(x, y int32) int32 { return x / y })
	checkLaneWise(t, "Rem", a, b, Rem[Vec4[int32], int32], Rem[Vec4P[int32], int32], func(x, y int32) int32 { return x % y })
	checkLaneWise(t, "And", a, b, And[Vec4[int32], int32], And[Vec4P[int32], int32], func(x, y int32) int32 { return x & y })
	checkLaneWise(t, "Or", a, b, Or[Vec4[int32], int32], Or[Vec4P[int32], int32], func(x, y int32) int32 { return x | y })
	checkLaneWise(t, "Xor", a, b, Xor[Vec4[int32], int32], Xor[Vec4P[int32], int32], func(x, y int32) int32 { return x ^ y })

	shifts := [4]int32{1, 2, 0, 3}
	checkLaneWise(t, "Shl", a, shifts, Shl[Vec4[int32], int32], Shl[Vec4P[int32], int32], func(x, y int32) int32 { return x << y })
	checkLaneWise(t, "Shr", a, shifts, Shr[Vec4[int32], int32], Shr[Vec4P[int32], int32], func(x, y int32) int32 { return x >> y })
}

func TestArithmeticFloat32(t *testing.T) {
	a := [4]float32{1.5, -2, 3.25, 1e30}
	b := [4]float32{0.5, 4, -1.5, 1e-10}
	checkLaneWise(t, "Add", a, b, Add[Vec4[float32], float32], Add[Vec4P[float32], float32], func(x, y float32) float32 { return x + y })
	checkLaneWise(t, "Sub", a, b, Sub[Vec4[float32], float32], Sub[Vec4P[float32], float32], func(x, y float32) float32 { return x - y })
	checkLaneWise(t, "Mul", a, b, Mul[Vec4[float32], float32], Mul[Vec4P[float32], float32], func(x, y float32) float32 { return x * y })
	checkLaneWise(t, "Div", a, b, Div[Vec4[float32], float32], Div[Vec4P[float32], float32], func(x, y float32) float32 { return x / y })
}

func TestRemFloat(t *testing.T) {
	got := Rem(NewVec3(7.5, -7.5, 1.0), NewVec3(2.0, 2.0, 0.0))
	assert.Equal(t, 1.5, got.X())
	assert.Equal(t, -1.5, got.Y())
	assert.True(t, math.IsNaN(got.Z()))

	got32 := Rem(NewVec2P[float32](5, -5), Vec2PSplat[float32](3))
	assert.Equal(t, Vec2P[float32]{2, -2}, got32)
}

func TestIntegerWraps(t *testing.T) {
	got := Add(NewVec2[uint8](250, 1), NewVec2[uint8](10, 1))
	assert.Equal(t, NewVec2[uint8](4, 2), got)

	lo := NewVec3P[int8](math.MinInt8, 0, 5)
	assert.Equal(t, NewVec3P[int8](math.MinInt8, 0, -5), Neg(lo))
}

func TestIntegerDivideByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Div(NewVec2[int](1, 2), NewVec2[int](1, 0)) })
	assert.Panics(t, func() { Rem(NewVec3P[uint](1, 2, 3), NewVec3P[uint](0, 1, 1)) })
}

func TestBoolLogic(t *testing.T) {
	a := NewVec4(true, true, false, false)
	b := NewVec4(true, false, true, false)
	assert.Equal(t, NewVec4(true, false, false, false), And(a, b))
	assert.Equal(t, NewVec4(true, true, true, false), Or(a, b))
	assert.Equal(t, NewVec4(false, true, true, false), Xor(a, b))
	assert.Equal(t, NewVec4(false, false, true, true), Not(a))
	assert.Equal(t, NewVec4P(false, false, true, true), Not(a.ToPacked()))
}

func TestAssignOps(t *testing.T) {
	v := NewVec3[int](1, 2, 3)
	AddAssign(&v, Vec3Splat(1))
	assert.Equal(t, NewVec3[int](2, 3, 4), v)
	MulAssign(&v, NewVec3[int](2, 2, 2))
	SubAssign(&v, NewVec3[int](1, 1, 1))
	assert.Equal(t, NewVec3[int](3, 5, 7), v)
	DivAssign(&v, Vec3Splat(2))
	assert.Equal(t, NewVec3[int](1, 2, 3), v)
	RemAssign(&v, Vec3Splat(2))
	assert.Equal(t, NewVec3[int](1, 0, 1), v)
	ShlAssign(&v, Vec3Splat(3))
	assert.Equal(t, NewVec3[int](8, 0, 8), v)
	ShrAssign(&v, Vec3Splat(2))
	OrAssign(&v, NewVec3[int](0, 1, 0))
	XorAssign(&v, NewVec3[int](3, 0, 0))
	AndAssign(&v, NewVec3[int](7, 7, 6))
	assert.Equal(t, NewVec3[int](1, 1, 2), v)
}

func TestReductions(t *testing.T) {
	assert.Equal(t, int32(12), Sum(NewVec3[int32](3, 4, 5)))
	assert.Equal(t, int32(60), Product(NewVec3P[int32](3, 4, 5)))
	assert.Equal(t, 10.0, Dot(NewVec2(1.0, 3.0), NewVec2(4.0, 2.0)))
	assert.Equal(t, uint16(30), MagSq(NewVec4[uint16](1, 2, 3, 4)))
	assert.Equal(t, 25.0, DistanceSq(NewVec2P(1.0, 1.0), NewVec2P(4.0, 5.0)))

	// Left-to-right order is observable for floats.
	v := NewVec3[float32](1e8, 1, -1e8)
	assert.Equal(t, float32(0), Sum(v))
	assert.Equal(t, Sum(v), Sum(v.ToPacked()))
}

func TestReduceBoolPanics(t *testing.T) {
	assert.Panics(t, func() { reduce[Vec2[bool]](redSum, NewVec2(true, true)) })
	assert.Panics(t, func() { reduce[Vec2P[bool]](redProduct, NewVec2P(true, true)) })
}

func TestAbsSignumAbsDiff(t *testing.T) {
	assert.Equal(t, NewVec3[int8](5, 0, math.MinInt8), Abs(NewVec3[int8](-5, 0, math.MinInt8)))
	assert.Equal(t, NewVec2P[uint8](9, 0), Abs(NewVec2P[uint8](9, 0)))
	assert.Equal(t, NewVec4(2.0, 0.0, 0.0, math.Inf(1)), Abs(NewVec4(-2.0, math.Copysign(0, -1), 0.0, math.Inf(-1))))

	assert.Equal(t, NewVec3[int](-1, 0, 1), Signum(NewVec3[int](-40, 0, 7)))
	s := Signum(NewVec4(-3.0, 0.0, math.Copysign(0, -1), math.NaN()))
	assert.Equal(t, -1.0, s.X())
	assert.Equal(t, 1.0, s.Y())
	assert.Equal(t, -1.0, s.Z())
	assert.True(t, math.IsNaN(s.W()))

	assert.Equal(t, NewVec2[uint8](5, 5), AbsDiff(NewVec2[uint8](10, 0), NewVec2[uint8](5, 5)))
	assert.Equal(t, NewVec2P(1.5, 4.0), AbsDiff(NewVec2P(-1.0, 2.0), NewVec2P(0.5, -2.0)))

	// Signed lanes wrap exactly like Abs(Sub(a, b)).
	a := NewVec2[int32](math.MaxInt32, 5)
	b := NewVec2[int32](math.MinInt32, 2)
	assert.Equal(t, NewVec2[int32](1, 3), AbsDiff(a, b))
	assert.Equal(t, Abs(Sub(a, b)), AbsDiff(a, b))
	ap := NewVec4P[int8](math.MinInt8, -3, 100, 0)
	bp := NewVec4P[int8](1, 4, -100, math.MinInt8)
	assert.Equal(t, Abs(Sub(ap, bp)), AbsDiff(ap, bp))
}

func TestMinMaxClamp(t *testing.T) {
	a := NewVec4[int](1, 5, -3, 8)
	b := NewVec4[int](2, 4, -3, 0)
	assert.Equal(t, NewVec4[int](1, 4, -3, 0), Min(a, b))
	assert.Equal(t, NewVec4[int](2, 5, -3, 8), Max(a, b))

	lo, hi := Vec4Splat(0), Vec4Splat(4)
	assert.Equal(t, NewVec4[int](1, 4, 0, 4), Clamp(a, lo, hi))
	assert.Equal(t, NewVec4P[int](1, 4, 0, 4), Clamp(a.ToPacked(), lo.ToPacked(), hi.ToPacked()))
}

func TestMinMaxClampDebugChecks(t *testing.T) {
	if !debugChecks {
		t.Skip("built with smath_nodebug")
	}
	nan := NewVec2(1.0, math.NaN())
	one := Vec2Splat(1.0)
	assertPanicsWith(t, &RangeError{Op: "Min", Lane: 1, NaN: true}, func() { Min(nan, one) })
	assertPanicsWith(t, &RangeError{Op: "Max", Lane: 1, NaN: true}, func() { Max(one, nan) })
	assertPanicsWith(t, &RangeError{Op: "Clamp", Lane: 1, NaN: true}, func() { Clamp(nan, one, one) })

	assertPanicsWith(t, &RangeError{Op: "Clamp", Lane: 2, Lo: any(int16(5)), Hi: any(int16(1))}, func() {
		Clamp(NewVec3P[int16](0, 0, 0), NewVec3P[int16](0, 0, 5), NewVec3P[int16](1, 1, 1))
	})
}

func TestScaleLerpCross(t *testing.T) {
	assert.Equal(t, NewVec3[int](3, 6, -9), Scale(NewVec3[int](1, 2, -3), 3))
	assert.Equal(t, NewVec2(2.5, 7.5), Lerp(NewVec2(0.0, 10.0), NewVec2(10.0, 0.0), 0.25))

	l := Lerp(NewVec4P[float32](0, 0, 0, 0), NewVec4P[float32](4, 8, -4, 1), 0.5)
	assert.Equal(t, NewVec4P[float32](2, 4, -2, 0.5), l)

	x, y := UnitX[Vec3[float64]](), UnitY[Vec3[float64]]()
	assert.Equal(t, UnitZ[Vec3[float64]](), Cross(x, y))
	assert.Equal(t, NegUnitZ[Vec3P[int]](), Cross(UnitY[Vec3P[int]](), UnitX[Vec3P[int]]()))
	assert.Equal(t, NewVec3[int](-3, 6, -3), Cross(NewVec3[int](1, 2, 3), NewVec3[int](4, 5, 6)))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, NewVec3[uint8](0, 0, 0), Zero[Vec3[uint8]]())
	assert.Equal(t, NewVec4P[float32](1, 1, 1, 1), One[Vec4P[float32]]())
	assert.Equal(t, NewVec2[int64](-1, -1), NegOne[Vec2[int64]]())
	assert.Equal(t, NewVec2P(true, true), Splat[Vec2P[bool]](true))
	assert.Equal(t, NewVec4[int](0, 0, 0, 1), UnitW[Vec4[int]]())
	assert.Equal(t, NewVec4[int](0, -1, 0, 0), NegUnitY[Vec4[int]]())
	assert.Equal(t, NewVec2P(-1.0, 0.0), NegUnitX[Vec2P[float64]]())

	assertPanicsWith(t, &IndexError{Index: 2, Len: 2}, func() { UnitZ[Vec2[int]]() })
	assertPanicsWith(t, &IndexError{Index: 3, Len: 3}, func() { NegUnitW[Vec3P[int]]() })
}

func TestMaskHelpers(t *testing.T) {
	m := NewVec3(true, false, true)
	assert.False(t, All(m))
	assert.True(t, Any(m))
	assert.Equal(t, 2, CountTrue(m))
	assert.True(t, All(Vec4PSplat(true)))
	assert.False(t, Any(Vec2Splat(false)))

	got := Select(m, NewVec3[int](1, 2, 3), NewVec3[int](-1, -2, -3))
	assert.Equal(t, NewVec3[int](1, -2, 3), got)

	// The mask representation does not need to match the data.
	gotP := Select(m.ToPacked(), NewVec3[float32](1, 2, 3), Vec3Splat[float32](0))
	assert.Equal(t, NewVec3[float32](1, 0, 3), gotP)

	assertPanicsWith(t, &LengthError{Op: "Select", Lens: []int{2, 3}}, func() {
		Select(NewVec2(true, true), NewVec3[int](1, 2, 3), NewVec3[int](1, 2, 3))
	})
}
