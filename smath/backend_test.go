package smath

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withBackend restores the backend of T when the test ends.
func withBackend[T Element](t *testing.T) *Backend[T] {
	t.Helper()
	b := backendOf[T]()
	saved := *b
	t.Cleanup(func() { *b = saved })
	return b
}

func TestBackendsListEveryElement(t *testing.T) {
	infos := Backends()
	require.Len(t, infos, 13)
	seen := map[string]bool{}
	for _, info := range infos {
		assert.NotEmpty(t, info.Name, info.Elem)
		seen[info.Elem] = true
	}
	for _, elem := range []string{"int", "int8", "uint64", "float32", "float64", "bool"} {
		assert.True(t, seen[elem], elem)
	}
	assert.Equal(t, "scalar", BackendName[int16]())
	assert.Equal(t, "scalar", BackendName[bool]())
}

func TestOverrideReplacesAlignedHooks(t *testing.T) {
	withBackend[int16](t)

	var calls int
	Override[int16]("counting", func(b *Backend[int16]) {
		add := b.V4.Add
		b.V4.Add = func(x, y [4]int16) [4]int16 {
			calls++
			return add(x, y)
		}
	})
	assert.Equal(t, "counting", BackendName[int16]())
	assert.True(t, Accelerated())

	got := Add(NewVec4[int16](1, 2, 3, 4), Vec4Splat[int16](1))
	assert.Equal(t, NewVec4[int16](2, 3, 4, 5), got)
	assert.Equal(t, 1, calls)

	// Packed vectors and other lengths keep the scalar loop.
	Add(NewVec4P[int16](1, 2, 3, 4), Vec4PSplat[int16](1))
	Add(NewVec3[int16](1, 2, 3), Vec3Splat[int16](1))
	assert.Equal(t, 1, calls)
}

func TestOverridePaddingIsCleared(t *testing.T) {
	withBackend[uint32](t)

	Override[uint32]("dirty", func(b *Backend[uint32]) {
		add := b.V3.Add
		b.V3.Add = func(x, y [4]uint32) [4]uint32 {
			r := add(x, y)
			r[3] = 0xdeadbeef
			return r
		}
		b.V3.Splat = func(x uint32) [4]uint32 { return [4]uint32{x, x, x, x} }
	})

	v := Add(NewVec3[uint32](1, 2, 3), NewVec3[uint32](1, 2, 3))
	assert.Zero(t, v.lanes[3])
	assert.True(t, v == NewVec3[uint32](2, 4, 6))
	assert.Zero(t, Vec3Splat[uint32](7).lanes[3])
}

func TestOverrideLogs(t *testing.T) {
	withBackend[uint64](t)
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	Override[uint64]("test", func(*Backend[uint64]) {})
	assert.Contains(t, buf.String(), "backend overridden")
	assert.Contains(t, buf.String(), "elem=uint64")
	assert.Contains(t, buf.String(), "to=test")
}

func TestUndefinedHookPanics(t *testing.T) {
	assert.PanicsWithValue(t, "smath: Shl is not defined for float32", func() {
		binary[Vec2[float32]](opShl, Vec2Splat[float32](1), Vec2Splat[float32](1))
	})
	assert.PanicsWithValue(t, "smath: Add is not defined for bool", func() {
		binary[Vec2P[bool]](opAdd, Vec2PSplat(true), Vec2PSplat(true))
	})
}

// Aligned and packed vectors must agree for every element type whatever
// backend is installed.
func TestAlignedMatchesPacked(t *testing.T) {
	checkAgree[float32](t, [4]float32{1.5, -2.25, 1e20, 3}, [4]float32{0.5, 8, -1e20, 7})
	checkAgree[float64](t, [4]float64{1.5, -2.25, 1e300, 3}, [4]float64{0.5, 8, -1e300, 7})
	checkAgree[float64](t, [4]float64{0.1, 1e308, 5, -3}, [4]float64{0.2, 10, math.Copysign(0, -1), 1e-300})
	checkAgree[int32](t, [4]int32{-7, 1 << 30, 5, 9}, [4]int32{3, 1 << 30, -2, 9})
	checkAgree[uint8](t, [4]uint8{200, 1, 5, 9}, [4]uint8{100, 2, 3, 9})
	checkAgree[int64](t, [4]int64{-7, 1 << 62, 5, 9}, [4]int64{3, 1 << 62, -2, 9})
}

// checkAgree compares Add, Sub, Mul and Div on every aligned shape against
// the packed shape of the same length. b must have no zero in integer lanes.
func checkAgree[T Number](t *testing.T, a, b [4]T) {
	t.Helper()
	agree2(t, "Add", a, b, Add[Vec2[T], T], Add[Vec2P[T], T])
	agree2(t, "Sub", a, b, Sub[Vec2[T], T], Sub[Vec2P[T], T])
	agree2(t, "Mul", a, b, Mul[Vec2[T], T], Mul[Vec2P[T], T])
	agree2(t, "Div", a, b, Div[Vec2[T], T], Div[Vec2P[T], T])

	agree3(t, "Add", a, b, Add[Vec3[T], T], Add[Vec3P[T], T])
	agree3(t, "Sub", a, b, Sub[Vec3[T], T], Sub[Vec3P[T], T])
	agree3(t, "Mul", a, b, Mul[Vec3[T], T], Mul[Vec3P[T], T])
	agree3(t, "Div", a, b, Div[Vec3[T], T], Div[Vec3P[T], T])

	agree4(t, "Add", a, b, Add[Vec4[T], T], Add[Vec4P[T], T])
	agree4(t, "Sub", a, b, Sub[Vec4[T], T], Sub[Vec4P[T], T])
	agree4(t, "Mul", a, b, Mul[Vec4[T], T], Mul[Vec4P[T], T])
	agree4(t, "Div", a, b, Div[Vec4[T], T], Div[Vec4P[T], T])

	assert.Equal(t, Sum(Vec4PFromArray(a)), Sum(Vec4FromArray(a)))
	assert.Equal(t, Dot(Vec4PFromArray(a), Vec4PFromArray(b)), Dot(Vec4FromArray(a), Vec4FromArray(b)))
}

func agree2[T Number](t *testing.T, name string, a, b [4]T, al func(x, y Vec2[T]) Vec2[T], pk func(x, y Vec2P[T]) Vec2P[T]) {
	t.Helper()
	x, y := [2]T(a[:2]), [2]T(b[:2])
	assert.Equal(t, pk(Vec2PFromArray(x), Vec2PFromArray(y)).ToArray(), al(Vec2FromArray(x), Vec2FromArray(y)).ToArray(),
		"Vec2 %s %T on %s", name, a[0], BackendName[T]())
}

func agree3[T Number](t *testing.T, name string, a, b [4]T, al func(x, y Vec3[T]) Vec3[T], pk func(x, y Vec3P[T]) Vec3P[T]) {
	t.Helper()
	x, y := [3]T(a[:3]), [3]T(b[:3])
	got := al(Vec3FromArray(x), Vec3FromArray(y))
	assert.Equal(t, pk(Vec3PFromArray(x), Vec3PFromArray(y)).ToArray(), got.ToArray(),
		"Vec3 %s %T on %s", name, a[0], BackendName[T]())
	assert.Zero(t, got.lanes[3], "Vec3 %s padding", name)
}

func agree4[T Number](t *testing.T, name string, a, b [4]T, al func(x, y Vec4[T]) Vec4[T], pk func(x, y Vec4P[T]) Vec4P[T]) {
	t.Helper()
	assert.Equal(t, pk(Vec4PFromArray(a), Vec4PFromArray(b)).ToArray(), al(Vec4FromArray(a), Vec4FromArray(b)).ToArray(),
		"Vec4 %s %T on %s", name, a[0], BackendName[T]())
}
