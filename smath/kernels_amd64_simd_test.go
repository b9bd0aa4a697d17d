//go:build amd64 && goexperiment.simd

package smath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSIMDKernelsInstalled(t *testing.T) {
	if NoSimdEnv() || CurrentLevel() < DispatchAVX2 {
		t.Skipf("hooks not installed at %s", CurrentLevel())
	}
	assert.True(t, Accelerated())
	assert.Equal(t, "archsimd", BackendName[float32]())
	assert.Equal(t, "archsimd", BackendName[float64]())
	assert.Equal(t, "archsimd", BackendName[int32]())

	// float64 hooks cover two lanes only.
	got := Div(NewVec2(1.0, -3.0), NewVec2(4.0, 0.0))
	assert.Equal(t, [2]float64{0.25, math.Inf(-1)}, got.ToArray())

	v := Div(NewVec3[float32](1, 2, 3), NewVec3[float32](2, 4, 8))
	assert.Equal(t, [3]float32{0.5, 0.5, 0.375}, v.ToArray())
	assert.Zero(t, v.lanes[3], "0/0 in the padding lane must be cleared")
}
