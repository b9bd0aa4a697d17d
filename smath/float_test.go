package smath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRounding(t *testing.T) {
	v := NewVec4(-1.5, -0.5, 0.5, 2.7)
	assert.Equal(t, NewVec4(-2.0, -1.0, 0.0, 2.0), Floor(v))
	assert.Equal(t, NewVec4(-1.0, math.Copysign(0, -1), 1.0, 3.0), Ceil(v))
	assert.Equal(t, NewVec4(-2.0, -1.0, 1.0, 3.0), Round(v))
	assert.Equal(t, NewVec4(-1.0, math.Copysign(0, -1), 0.0, 2.0), Trunc(v))

	f := NewVec3P[float32](-1.25, 0.75, 3)
	assert.Equal(t, NewVec3P[float32](-2, 0, 3), Floor(f))
	assert.Equal(t, NewVec3P[float32](-0.25, 0.75, 0), Fract(f))
}

func TestElementaryFunctions(t *testing.T) {
	v := NewVec3(0.25, 4.0, 9.0)
	assert.Equal(t, NewVec3(0.5, 2.0, 3.0), Sqrt(v))
	assert.Equal(t, NewVec3(4.0, 0.25, 1.0/9.0), Recip(v))

	a := NewVec2P[float32](0, math.Pi/2)
	assert.InDelta(t, 0, Sin(a)[0], 1e-6)
	assert.InDelta(t, 1, Sin(a)[1], 1e-6)
	assert.InDelta(t, 1, Cos(a)[0], 1e-6)
	assert.InDelta(t, 1, Tan(NewVec2(math.Pi/4, 0)).X(), 1e-12)
	assert.InDelta(t, math.Pi/2, Asin(Vec2Splat(1.0)).X(), 1e-12)
	assert.InDelta(t, 0, Acos(Vec2Splat(1.0)).Y(), 1e-12)
	assert.InDelta(t, math.Pi/4, Atan(Vec4Splat(1.0)).W(), 1e-12)
	assert.True(t, IsNaN(Sqrt(NewVec2(-1.0, 1.0))))
}

func TestMulAdd(t *testing.T) {
	got := MulAdd(NewVec3(2.0, 3.0, -1.0), NewVec3(4.0, 0.5, 1.0), Vec3Splat(1.0))
	assert.Equal(t, NewVec3(9.0, 2.5, 0.0), got)

	// The fused form keeps the low bits of the product.
	x := 1 + 0x1p-30
	fused := MulAdd(Vec2Splat(x), Vec2Splat(x), Vec2Splat(-1.0)).X()
	assert.Equal(t, 0x1p-29+0x1p-60, fused)

	x32 := float32(1 + 0x1p-12)
	assert.Equal(t, float32(0x1p-11+0x1p-24), MulAdd(Vec2PSplat(x32), Vec2PSplat(x32), Vec2PSplat[float32](-1)).X())

	// The exact result sits just below a float32 tie: rounding to float64
	// first would land on the tie and round up to 1+2^-22.
	a := Vec4Splat[float32](0x1p-24 + 0x1p-47)
	b := Vec4Splat[float32](1 - 0x1p-23)
	c := Vec4Splat[float32](1 + 0x1p-23)
	assert.Equal(t, Vec4Splat[float32](1+0x1p-23), MulAdd(a, b, c))

	assert.True(t, math.IsInf(float64(MulAdd(Vec2Splat[float32](math.MaxFloat32), Vec2Splat[float32](2), Vec2Splat[float32](0)).X()), 1))
}

func TestEuclid(t *testing.T) {
	a := NewVec4(7.0, -7.0, 7.0, -7.0)
	b := NewVec4(4.0, 4.0, -4.0, -4.0)
	assert.Equal(t, NewVec4(1.0, -2.0, -1.0, 2.0), DivEuclid(a, b))
	assert.Equal(t, NewVec4(3.0, 1.0, 3.0, 1.0), RemEuclid(a, b))

	af := NewVec2P[float32](-7, 7)
	bf := Vec2PSplat[float32](4)
	assert.Equal(t, NewVec2P[float32](-2, 1), DivEuclid(af, bf))
	assert.Equal(t, NewVec2P[float32](1, 3), RemEuclid(af, bf))
}

func TestCopysignMidpoint(t *testing.T) {
	assert.Equal(t, NewVec3(-1.0, 2.0, -3.0), Copysign(NewVec3(1.0, -2.0, 3.0), NewVec3(-0.5, 1.0, math.Copysign(0, -1))))

	big := NewVec2(math.MaxFloat64, 1.0)
	mid := Midpoint(big, NewVec2(math.MaxFloat64, 3.0))
	assert.Equal(t, NewVec2(math.MaxFloat64, 2.0), mid)
	assert.False(t, IsNaN(mid))

	tiny := math.SmallestNonzeroFloat64
	assert.Equal(t, tiny, Midpoint(NewVec2(tiny, 0), NewVec2(tiny, 0)).X())

	f := Midpoint(NewVec2P[float32](math.MaxFloat32, -4), NewVec2P[float32](math.MaxFloat32, 8))
	assert.Equal(t, NewVec2P[float32](math.MaxFloat32, 2), f)
}

func TestMagnitude(t *testing.T) {
	v := NewVec2(3.0, 4.0)
	assert.Equal(t, 5.0, Mag(v))
	assert.Equal(t, 5.0, Distance(NewVec3P(1.0, 1.0, 1.0), NewVec3P(4.0, 5.0, 1.0)))
	assert.Equal(t, NewVec2(0.6, 0.8), Normalize(v))

	n := Normalize(Zero[Vec3[float32]]())
	assert.True(t, IsNaN(n))
	assert.False(t, IsFinite(n))
	assert.True(t, IsFinite(NewVec4P[float32](1, 2, 3, 4)))
	assert.False(t, IsFinite(NewVec2(1.0, math.Inf(1))))
}
