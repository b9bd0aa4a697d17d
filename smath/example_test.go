package smath_test

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/ajroetker/go-smath/smath"
)

func Example() {
	a := smath.Vec3Splat[int32](1)
	b := smath.Add(a, smath.NewVec3[int32](2, 3, 4))
	fmt.Println(b, smath.Sum(b))
	// Output: (3, 4, 5) 12
}

func Example_swizzleDot() {
	v := smath.NewVec4(1.0, 2.0, 3.0, 4.0)
	fmt.Println(smath.Dot(v.XYZ(), smath.NewVec3(1.0, 0.0, -1.0)))
	// Output: -2
}

func ExampleBuild() {
	v := smath.Build[smath.Vec4[int32]](int32(1), smath.NewVec2[int32](2, 3), int32(4))
	fmt.Println(v.ToArray())
	// Output: [1 2 3 4]
}

func ExampleVec3_ToPacked() {
	v := smath.Vec3FromArray([3]int32{1, 2, 3})
	p := v.ToPacked()
	fmt.Println(p.ToArray(), unsafe.Sizeof(p), unsafe.Sizeof(v) >= 12, p.ToAligned().Equal(v))
	// Output: [1 2 3] 12 true true
}

func ExampleSelect() {
	m := smath.NewVec3(1.0, 2.0, 3.0).LtMask(smath.Vec3Splat(2.0))
	fmt.Println(m)
	fmt.Println(smath.Select(m, smath.Vec3Splat(-1), smath.Vec3Splat(1)))
	// Output:
	// (true, false, false)
	// (-1, 1, 1)
}

func ExampleCheckedAdd() {
	a := smath.NewVec2[int32](math.MaxInt32, 1)
	b := smath.Vec2Splat[int32](1)
	fmt.Println(smath.Add(a, b))
	_, ok := smath.CheckedAdd(a, b)
	fmt.Println(ok)
	// Output:
	// (-2147483648, 2)
	// false
}

func ExampleBytesPadded() {
	v := smath.NewVec3[uint16](1, 2, 3)
	fmt.Println(len(smath.Bytes(&v)), len(smath.BytesPadded(&v)))
	// Output: 6 8
}

func ExampleBackendName() {
	// Only float32, float64 and int32 get SIMD hooks.
	fmt.Println(smath.BackendName[uint8]())
	// Output: scalar
}
