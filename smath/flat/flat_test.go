package flat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-smath/smath"
)

func TestFlattenView(t *testing.T) {
	vs := []smath.Vec3P[float32]{{1, 2, 3}, {4, 5, 6}}
	lanes := Flatten(vs)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, lanes)

	lanes[4] = 50
	assert.Equal(t, float32(50), vs[1].Y(), "Flatten must share memory")

	back, err := View[smath.Vec3P[float32]](lanes)
	require.NoError(t, err)
	assert.Equal(t, vs, back)

	_, err = View[smath.Vec3P[float32]](lanes[:5])
	assert.ErrorIs(t, err, ErrLength)

	assert.Nil(t, Flatten[smath.Vec2P[int]]([]smath.Vec2P[int]{}))
	empty, err := View[smath.Vec4P[uint8]]([]uint8{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBatchArithmetic(t *testing.T) {
	a := []smath.Vec4P[float64]{{1, 2, 3, 4}, {5, 6, 7, 8}}
	b := []smath.Vec4P[float64]{{8, 7, 6, 5}, {4, 3, 2, 1}}
	dst := make([]smath.Vec4P[float64], 2)

	require.NoError(t, AddInto(dst, a, b))
	assert.Equal(t, []smath.Vec4P[float64]{{9, 9, 9, 9}, {9, 9, 9, 9}}, dst)

	require.NoError(t, SubInto(dst, a, b))
	assert.Equal(t, smath.Sub(a[1], b[1]), dst[1])

	require.NoError(t, MulInto(dst, a, b))
	assert.Equal(t, smath.Mul(a[0], b[0]), dst[0])

	require.NoError(t, DivInto(dst, a, b))
	assert.Equal(t, smath.Div(a[1], b[1]), dst[1])

	require.NoError(t, ScaleInto(dst, a, 2))
	assert.Equal(t, smath.Scale(a[1], 2), dst[1])

	assert.ErrorIs(t, AddInto(dst[:1], a, b), ErrLength)
	assert.ErrorIs(t, ScaleInto(dst, a[:1], 2), ErrLength)
}

func TestBatchFloat32(t *testing.T) {
	a := []smath.Vec2P[float32]{{1, 2}, {3, 4}, {5, 6}}
	dst := make([]smath.Vec2P[float32], len(a))
	require.NoError(t, AddInto(dst, a, a))
	assert.Equal(t, []smath.Vec2P[float32]{{2, 4}, {6, 8}, {10, 12}}, dst)
	assert.Equal(t, float32(21), SumAll(a))
}

func TestDots(t *testing.T) {
	a := []smath.Vec3P[float64]{{1, 2, 3}, {0, 1, 0}}
	b := []smath.Vec3P[float64]{{4, 5, 6}, {0, 7, 0}}
	dst := make([]float64, 2)
	require.NoError(t, Dots(dst, a, b))
	assert.Equal(t, []float64{32, 7}, dst)
	assert.Equal(t, smath.Dot(a[0], b[0]), dst[0])

	u := []smath.Vec4P[float32]{{0.1, 0.2, 0.3, 0.4}}
	w := []smath.Vec4P[float32]{{0.5, 0.6, 0.7, 0.8}}
	d32 := make([]float32, 1)
	require.NoError(t, Dots(d32, u, w))
	assert.InEpsilon(t, smath.Dot(u[0], w[0]), d32[0], 1e-6)

	assert.ErrorIs(t, Dots(dst[:1], a, b), ErrLength)
	assert.Zero(t, SumAll[smath.Vec3P[float64]](nil))
}
