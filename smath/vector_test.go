package smath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, [3]int32{1, 2, 3}, NewVec3[int32](1, 2, 3).ToArray())
	assert.Equal(t, [3]int32{1, 2, 3}, NewVec3P[int32](1, 2, 3).ToArray())
	assert.Equal(t, [4]float32{5, 5, 5, 5}, Vec4Splat[float32](5).ToArray())
	assert.Equal(t, [2]uint8{7, 7}, Vec2PSplat[uint8](7).ToArray())
	assert.Equal(t, [4]int{0, 10, 20, 30}, Vec4FromFn(func(i int) int { return 10 * i }).ToArray())
	assert.Equal(t, Vec3P[int64]{4, 5, 6}, Vec3PFromArray([3]int64{4, 5, 6}))

	var calls []int
	Vec3FromFn(func(i int) bool {
		calls = append(calls, i)
		return true
	})
	assert.Equal(t, []int{0, 1, 2}, calls, "FromFn must visit lanes in order")
}

func TestConvert(t *testing.T) {
	f := NewVec3(1.9, -2.5, 300.0)
	assert.Equal(t, [3]int32{1, -2, 300}, ConvertVec3[int32](f).ToArray())
	assert.Equal(t, [4]float64{1, 2, 3, 4}, ConvertVec4P[float64](NewVec4P[uint16](1, 2, 3, 4)).ToArray())
}

func TestPaddingLaneStaysZero(t *testing.T) {
	v := NewVec3[int32](1, 2, 3)
	require.Zero(t, v.lanes[3])

	ops := map[string]Vec3[int32]{
		"Splat":       Vec3Splat[int32](9),
		"Add":         Add(v, Vec3Splat[int32](1)),
		"Neg":         Neg(v),
		"Not":         Not(v),
		"Shuffle3":    v.Shuffle3(2, 2, 2),
		"WithShuffle": v.WithShuffle2(NewVec2[int32](8, 9), 0, 2),
		"FromArray":   Vec3FromArray([3]int32{-1, -1, -1}),
		"Scale":       Scale(v, 3),
		"Build":       Build[Vec3[int32]](NewVec2[int32](1, 2), int32(3)),
		"Extend":      NewVec2[int32](1, 2).Extend(3),
		"Truncate":    NewVec4[int32](1, 2, 3, 4).Truncate(),
		"Map":         v.Map(func(x int32) int32 { return x - 100 }),
	}
	for name, got := range ops {
		assert.Zero(t, got.lanes[3], name)
	}

	masks := map[string]Vec3[bool]{
		"EqMask":      v.EqMask(v),
		"GeMask":      v.GeMask(v),
		"IsFinite":    NewVec3(1.0, 2.0, 3.0).IsFiniteMask(),
		"NotMask":     Not(NewVec3(false, false, false)),
		"LtMaskFloat": NewVec3[float32](1, 2, 3).LtMask(Vec3Splat[float32](9)),
	}
	for name, got := range masks {
		assert.False(t, got.lanes[3], name)
	}
}

func TestLayoutConversions(t *testing.T) {
	a := NewVec3[uint16](1, 2, 3)
	p := a.ToPacked()
	assert.Equal(t, Vec3P[uint16]{1, 2, 3}, p)
	assert.Equal(t, a, p.ToAligned())
	assert.True(t, a.IsAligned())
	assert.False(t, p.IsAligned())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 3, p.Len())

	arr := a.AsArray()
	arr[1] = 20
	assert.Equal(t, uint16(20), a.Y())

	q := NewVec4P[float32](1, 2, 3, 4)
	q.AsArray()[3] = 40
	assert.Equal(t, float32(40), q.W())
}

func TestIndexing(t *testing.T) {
	v := NewVec4[int16](10, 20, 30, 40)
	for i := range 4 {
		x, ok := v.Get(i)
		require.True(t, ok)
		assert.Equal(t, int16(10*(i+1)), x)
		assert.Equal(t, x, v.Index(i))
		assert.Equal(t, x, v.IndexUnchecked(i))
	}

	_, ok := v.Get(4)
	assert.False(t, ok)
	_, ok = v.Get(-1)
	assert.False(t, ok)
	assert.Nil(t, v.GetRef(4))

	assertPanicsWith(t, &IndexError{Index: 4, Len: 4}, func() { v.Index(4) })
	assertPanicsWith(t, &IndexError{Index: -1, Len: 4}, func() { v.Set(-1, 0) })

	*v.GetRef(2) = 33
	v.Set(0, 11)
	v.SetUnchecked(3, 44)
	assert.Equal(t, [4]int16{11, 20, 33, 44}, v.ToArray())

	p := NewVec3P[int16](1, 2, 3)
	p.SetUnchecked(1, 5)
	assert.Equal(t, int16(5), p.IndexUnchecked(1))
	assertPanicsWith(t, &IndexError{Index: 3, Len: 3}, func() { p.Index(3) })
}

func TestSubVectorRefs(t *testing.T) {
	v := NewVec4[float64](1, 2, 3, 4)
	mid := v.Vec2Ref(1)
	require.NotNil(t, mid)
	assert.Equal(t, Vec2P[float64]{2, 3}, *mid)
	mid[0] = 20
	assert.Equal(t, 20.0, v.Y())

	assert.Nil(t, v.Vec2Ref(3))
	assert.Nil(t, v.Vec3Ref(2))
	assert.Nil(t, v.Vec2Ref(-1))
	assert.NotNil(t, v.Vec4Ref(0))

	p := NewVec3P[int](1, 2, 3)
	tail := p.YZPtr()
	tail[1] = 30
	assert.Equal(t, 30, p.Z())
	v.ZWPtr()[1] = 40
	assert.Equal(t, 40.0, v.W())
}

func TestEquality(t *testing.T) {
	a := NewVec3(1.0, 2.0, 3.0)
	assert.True(t, a.Equal(NewVec3(1.0, 2.0, 3.0)))
	assert.False(t, a.NotEqual(NewVec3(1.0, 2.0, 3.0)))
	assert.True(t, a.NotEqual(NewVec3(1.0, 2.0, 4.0)))
	assert.True(t, a == NewVec3(1.0, 2.0, 3.0), "padding must not break ==")

	nan := NewVec2(math.NaN(), 1)
	assert.False(t, nan.Equal(nan))
	assert.True(t, nan.NotEqual(nan))
	assert.False(t, nan.ToPacked().Equal(nan.ToPacked()))
}

func TestCompareMasks(t *testing.T) {
	a := NewVec4[int32](1, 2, 3, 4)
	b := Vec4Splat[int32](2)
	ap, bp := a.ToPacked(), b.ToPacked()

	tests := []struct {
		name   string
		got    Vec4[bool]
		packed Vec4P[bool]
		want   [4]bool
	}{
		{"Eq", a.EqMask(b), ap.EqMask(bp), [4]bool{false, true, false, false}},
		{"Ne", a.NeMask(b), ap.NeMask(bp), [4]bool{true, false, true, true}},
		{"Lt", a.LtMask(b), ap.LtMask(bp), [4]bool{true, false, false, false}},
		{"Gt", a.GtMask(b), ap.GtMask(bp), [4]bool{false, false, true, true}},
		{"Le", a.LeMask(b), ap.LeMask(bp), [4]bool{true, true, false, false}},
		{"Ge", a.GeMask(b), ap.GeMask(bp), [4]bool{false, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.ToArray())
			assert.Equal(t, tt.want, tt.packed.ToArray())
		})
	}

	f := NewVec3(1, math.NaN(), math.Inf(-1))
	assert.Equal(t, [3]bool{false, true, false}, f.IsNaNMask().ToArray())
	assert.Equal(t, [3]bool{true, false, false}, f.IsFiniteMask().ToArray())
	assert.Equal(t, [3]bool{false, false, false}, f.LtMask(f).ToArray())

	bools := NewVec2(false, true)
	assert.Equal(t, [2]bool{true, false}, bools.LtMask(Vec2Splat(true)).ToArray())
}

func TestShuffle(t *testing.T) {
	v := NewVec4[uint32](10, 11, 12, 13)
	assert.Equal(t, [2]uint32{13, 10}, v.Shuffle2(3, 0).ToArray())
	assert.Equal(t, [3]uint32{12, 12, 11}, v.Shuffle3(2, 2, 1).ToArray())
	assert.Equal(t, [4]uint32{13, 12, 11, 10}, v.Shuffle4(3, 2, 1, 0).ToArray())

	p := NewVec2P[uint32](1, 2)
	assert.Equal(t, Vec4P[uint32]{2, 2, 1, 1}, p.Shuffle4(1, 1, 0, 0))
	assert.Panics(t, func() { p.Shuffle3(0, 2, 1) })

	w := v.WithShuffle3(NewVec3[uint32](0, 1, 2), 3, 1, 0)
	assert.Equal(t, [4]uint32{2, 1, 12, 0}, w.ToArray())
	assert.Equal(t, [4]uint32{10, 11, 12, 13}, v.ToArray(), "WithShuffle must not modify its receiver")

	assertPanicsWith(t, &ShuffleError{Indices: []int{1, 1}}, func() {
		v.WithShuffle2(NewVec2[uint32](0, 0), 1, 1)
	})
	assertPanicsWith(t, &IndexError{Index: 4, Len: 4}, func() {
		v.WithShuffle2(NewVec2[uint32](0, 0), 0, 4)
	})
}

func TestSwizzles(t *testing.T) {
	v := NewVec4(1.0, 2.0, 3.0, 4.0)
	assert.Equal(t, 1.0, v.X())
	assert.Equal(t, 4.0, v.W())
	assert.Equal(t, NewVec3(3.0, 2.0, 1.0), v.ZYX())
	assert.Equal(t, NewVec2(4.0, 4.0), v.WW())
	assert.Equal(t, NewVec4(1.0, 1.0, 2.0, 2.0), v.XXYY())
	assert.Equal(t, NewVec4(2.0, 3.0, 4.0, 3.0), NewVec3(2.0, 3.0, 4.0).XYZY())

	p := NewVec3P[int8](1, 2, 3)
	assert.Equal(t, NewVec2P[int8](3, 1), p.ZX())
	assert.Equal(t, NewVec4P[int8](3, 3, 3, 3), p.ZZZZ())

	assert.Equal(t, NewVec4(9.0, 2.0, 3.0, 4.0), v.WithX(9))
	assert.Equal(t, NewVec4(8.0, 2.0, 3.0, 7.0), v.WithWX(NewVec2(7.0, 8.0)))
	assert.Equal(t, NewVec4(3.0, 2.0, 1.0, 0.0), v.WithWZYX(NewVec4(0.0, 1.0, 2.0, 3.0)))

	p.SetZY(NewVec2P[int8](30, 20))
	assert.Equal(t, NewVec3P[int8](1, 20, 30), p)
	p.SetX(10)
	assert.Equal(t, int8(10), p.X())

	q := NewVec3[int8](1, 2, 3)
	q.SetYXZ(NewVec3[int8](7, 8, 9))
	assert.Equal(t, NewVec3[int8](8, 7, 9), q)
}

func TestExtendTruncate(t *testing.T) {
	v := NewVec2[int](1, 2).Extend(3).Extend(4)
	assert.Equal(t, NewVec4[int](1, 2, 3, 4), v)
	assert.Equal(t, NewVec2P[int](1, 2), NewVec4P[int](1, 2, 3, 4).Truncate().Truncate())
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2, 3)", NewVec3[int](1, 2, 3).String())
	assert.Equal(t, "(0.5, -1)", NewVec2P(0.5, -1).String())
	assert.Equal(t, "(true, false, true, false)", NewVec4(true, false, true, false).String())
}

func TestFold(t *testing.T) {
	v := NewVec4P[int](1, 2, 3, 4)
	got := Fold(v, "", func(acc string, x int) string { return acc + string(rune('0'+x)) })
	assert.Equal(t, "1234", got)
}

func BenchmarkAddVec4Float32(b *testing.B) {
	x := NewVec4[float32](1, 2, 3, 4)
	y := Vec4Splat[float32](0.5)
	for b.Loop() {
		x = Add(x, y)
	}
	_ = x
}

func BenchmarkAddVec4PFloat32(b *testing.B) {
	x := NewVec4P[float32](1, 2, 3, 4)
	y := Vec4PSplat[float32](0.5)
	for b.Loop() {
		x = Add(x, y)
	}
	_ = x
}
