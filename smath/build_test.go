package smath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		parts []any
		want  [4]int32
	}{
		{"Scalars", []any{int32(1), int32(2), int32(3), int32(4)}, [4]int32{1, 2, 3, 4}},
		{"Middle", []any{int32(1), NewVec2[int32](2, 3), int32(4)}, [4]int32{1, 2, 3, 4}},
		{"Halves", []any{NewVec2P[int32](1, 2), NewVec2[int32](3, 4)}, [4]int32{1, 2, 3, 4}},
		{"Head", []any{NewVec3[int32](1, 2, 3), int32(4)}, [4]int32{1, 2, 3, 4}},
		{"Tail", []any{int32(1), NewVec3P[int32](2, 3, 4)}, [4]int32{1, 2, 3, 4}},
		{"Whole", []any{NewVec4P[int32](1, 2, 3, 4)}, [4]int32{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build[Vec4[int32]](tt.parts...).ToArray())
			assert.Equal(t, tt.want, Build[Vec4P[int32]](tt.parts...).ToArray())
		})
	}

	v := Build[Vec3[float64]](NewVec2(1.0, 2.0), 3.0)
	assert.Equal(t, NewVec3(1.0, 2.0, 3.0), v)
	assert.Zero(t, v.lanes[3])
}

func TestBuildErrors(t *testing.T) {
	assertPanicsWith(t, &BuildError{Want: 3, Got: 2, Part: 1, Type: "int"}, func() {
		Build[Vec3[int32]](NewVec2[int32](1, 2), 3)
	})
	assertPanicsWith(t, &BuildError{Want: 2, Got: 3, Part: -1}, func() {
		Build[Vec2[int32]](int32(1), NewVec2[int32](2, 3))
	})
	assertPanicsWith(t, &BuildError{Want: 4, Got: 3, Part: -1}, func() {
		Build[Vec4P[uint8]](NewVec3P[uint8](1, 2, 3))
	})
	assertPanicsWith(t, &BuildError{Want: 2, Got: 0, Part: 0, Type: "smath.Vec2[float32]"}, func() {
		Build[Vec2[float64]](NewVec2[float32](1, 2))
	})

	err := &BuildError{Want: 4, Got: 3, Part: -1}
	require.EqualError(t, err, "smath: build got 3 lanes, want 4")
}

func TestTypedPartitions(t *testing.T) {
	xy := NewVec2[int32](1, 2)
	zw := NewVec2P[int32](3, 4)

	assert.Equal(t, NewVec3[int32](1, 2, 3), Vec3Of21[Vec3[int32]](xy, 3))
	assert.Equal(t, NewVec3P[int32](0, 1, 2), Vec3Of12[Vec3P[int32]](0, xy))
	assert.Equal(t, NewVec4[int32](1, 2, 3, 4), Vec4Of22[Vec4[int32]](xy, zw))
	assert.Equal(t, NewVec4[int32](1, 2, 9, 8), Vec4Of211[Vec4[int32]](xy, 9, 8))
	assert.Equal(t, NewVec4P[int32](0, 3, 4, 5), Vec4Of121[Vec4P[int32]](0, zw, 5))
	assert.Equal(t, NewVec4P[int32](7, 8, 3, 4), Vec4Of112[Vec4P[int32]](7, 8, zw))

	xyz := NewVec3[int32](1, 2, 3)
	assert.Equal(t, NewVec4[int32](1, 2, 3, 4), Vec4Of31[Vec4[int32]](xyz, 4))
	assert.Equal(t, NewVec4[int32](0, 1, 2, 3), Vec4Of13[Vec4[int32]](0, xyz.ToPacked()))
}
