package smath

import (
	binenc "encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickLengthAndSimd(t *testing.T) {
	assert.Equal(t, "two", PickLength[L2]("two", "three", "four"))
	assert.Equal(t, "three", PickLength[L3]("two", "three", "four"))
	assert.Equal(t, "four", PickLength[L4]("two", "three", "four"))
	assert.Equal(t, 1, PickSimd[Aligned](1, 2))
	assert.Equal(t, 2, PickSimd[Packed](1, 2))
}

func TestShapeOf(t *testing.T) {
	tests := []struct {
		name string
		got  Shape
		want Shape
	}{
		{"Vec2[float64]", ShapeOf[Vec2[float64]](), Shape{Lanes: 2, Aligned: true, ElemSize: 8, Size: 16, Align: 8}},
		{"Vec3[uint16]", ShapeOf[Vec3[uint16]](), Shape{Lanes: 3, Aligned: true, ElemSize: 2, Size: 8, Align: 2}},
		{"Vec3P[uint16]", ShapeOf[Vec3P[uint16]](), Shape{Lanes: 3, Aligned: false, ElemSize: 2, Size: 6, Align: 2}},
		{"Vec3[float32]", ShapeOf[Vec3[float32]](), Shape{Lanes: 3, Aligned: true, ElemSize: 4, Size: 16, Align: 4}},
		{"Vec4P[int8]", ShapeOf[Vec4P[int8]](), Shape{Lanes: 4, Aligned: false, ElemSize: 1, Size: 4, Align: 1}},
		{"Vec2P[bool]", ShapeOf[Vec2P[bool]](), Shape{Lanes: 2, Aligned: false, ElemSize: 1, Size: 2, Align: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, uintptr(4), ShapeOf[Vec3[float32]]().Padding())
	assert.Zero(t, ShapeOf[Vec3P[float32]]().Padding())
}

func TestPackedMatchesArrayLayout(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof([3]float32{}), unsafe.Sizeof(Vec3P[float32]{}))
	assert.Equal(t, unsafe.Alignof([3]float32{}), unsafe.Alignof(Vec3P[float32]{}))
	assert.GreaterOrEqual(t, unsafe.Sizeof(Vec3[float32]{}), unsafe.Sizeof(Vec3P[float32]{}))
}

func TestBytes(t *testing.T) {
	v := NewVec3[uint16](1, 2, 3)
	b := Bytes(&v)
	require.Len(t, b, 6)
	assert.Len(t, BytesPadded(&v), 8)

	p := v.ToPacked()
	assert.Equal(t, b, Bytes(&p))
	assert.Equal(t, b, BytesPadded(&p))

	assert.Equal(t, uint16(2), binenc.NativeEndian.Uint16(b[2:]))
	assert.Zero(t, binenc.NativeEndian.Uint16(BytesPadded(&v)[6:]))

	// The byte view aliases the vector.
	binenc.NativeEndian.PutUint16(b[4:], 30)
	assert.Equal(t, uint16(30), v.Z())
}

func TestLanePtr(t *testing.T) {
	v := NewVec4P[float64](1, 2, 3, 4)
	p := LanePtr(&v)
	assert.Equal(t, 1.0, *p)
	assert.Equal(t, 3.0, *laneAt(p, 2))
	*laneAt(p, 3) = 40
	assert.Equal(t, 40.0, v.W())
}
