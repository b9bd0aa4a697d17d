//go:build smath_right && smath_up && smath_forwards

package smath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirections(t *testing.T) {
	assert.Equal(t, NewVec3[float32](1, 0, 0), Right[Vec3[float32]]())
	assert.Equal(t, NewVec3[float32](-1, 0, 0), Left[Vec3[float32]]())
	assert.Equal(t, NewVec3P[int](0, 1, 0), Up[Vec3P[int]]())
	assert.Equal(t, NewVec3P[int](0, -1, 0), Down[Vec3P[int]]())
	assert.Equal(t, NewVec4[int8](0, 0, 1, 0), Forwards[Vec4[int8]]())
	assert.Equal(t, NewVec4[int8](0, 0, -1, 0), Backwards[Vec4[int8]]())
	assert.Equal(t, NewVec2(1.0, 0.0), Right[Vec2[float64]]())
	assert.Panics(t, func() { Forwards[Vec2[float64]]() })
}
