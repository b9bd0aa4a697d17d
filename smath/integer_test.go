package smath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimits(t *testing.T) {
	lo8, hi8 := limits[int8]()
	assert.Equal(t, int8(math.MinInt8), lo8)
	assert.Equal(t, int8(math.MaxInt8), hi8)

	lo64, hi64 := limits[int64]()
	assert.Equal(t, int64(math.MinInt64), lo64)
	assert.Equal(t, int64(math.MaxInt64), hi64)

	ulo, uhi := limits[uint16]()
	assert.Zero(t, ulo)
	assert.Equal(t, uint16(math.MaxUint16), uhi)

	assert.True(t, isSigned[int]())
	assert.False(t, isSigned[uint]())
}

func TestCheckedAdd(t *testing.T) {
	got, ok := CheckedAdd(NewVec2[int32](1, 2), NewVec2[int32](3, 4))
	require.True(t, ok)
	assert.Equal(t, NewVec2[int32](4, 6), got)

	got, ok = CheckedAdd(NewVec2[int32](math.MaxInt32, 1), Vec2Splat[int32](1))
	assert.False(t, ok)
	assert.Zero(t, got)

	_, ok = CheckedAdd(NewVec3P[int8](0, -100, 0), NewVec3P[int8](0, -29, 0))
	assert.False(t, ok)
	_, ok = CheckedAdd(NewVec4[uint8](0, 0, 0, 255), NewVec4[uint8](0, 0, 0, 1))
	assert.False(t, ok)
	_, ok = CheckedAdd(NewVec4[uint8](0, 0, 0, 254), NewVec4[uint8](0, 0, 0, 1))
	assert.True(t, ok)
}

func TestCheckedSubMul(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b Vec2P[int16]) (Vec2P[int16], bool)
		a, b Vec2P[int16]
		want Vec2P[int16]
		ok   bool
	}{
		{"SubOK", CheckedSub[Vec2P[int16], int16], Vec2P[int16]{5, -5}, Vec2P[int16]{10, 10}, Vec2P[int16]{-5, -15}, true},
		{"SubUnder", CheckedSub[Vec2P[int16], int16], Vec2P[int16]{math.MinInt16, 0}, Vec2P[int16]{1, 0}, Vec2P[int16]{}, false},
		{"SubOver", CheckedSub[Vec2P[int16], int16], Vec2P[int16]{0, math.MaxInt16}, Vec2P[int16]{0, -1}, Vec2P[int16]{}, false},
		{"MulOK", CheckedMul[Vec2P[int16], int16], Vec2P[int16]{-181, 0}, Vec2P[int16]{181, math.MinInt16}, Vec2P[int16]{-32761, 0}, true},
		{"MulOver", CheckedMul[Vec2P[int16], int16], Vec2P[int16]{256, 1}, Vec2P[int16]{128, 1}, Vec2P[int16]{}, false},
		{"MulMinNeg", CheckedMul[Vec2P[int16], int16], Vec2P[int16]{1, -1}, Vec2P[int16]{1, math.MinInt16}, Vec2P[int16]{}, false},
		{"DivOK", CheckedDiv[Vec2P[int16], int16], Vec2P[int16]{9, -9}, Vec2P[int16]{2, 2}, Vec2P[int16]{4, -4}, true},
		{"DivZero", CheckedDiv[Vec2P[int16], int16], Vec2P[int16]{9, 9}, Vec2P[int16]{2, 0}, Vec2P[int16]{}, false},
		{"DivMinNeg", CheckedDiv[Vec2P[int16], int16], Vec2P[int16]{math.MinInt16, 1}, Vec2P[int16]{-1, 1}, Vec2P[int16]{}, false},
		{"RemOK", CheckedRem[Vec2P[int16], int16], Vec2P[int16]{9, -9}, Vec2P[int16]{4, 4}, Vec2P[int16]{1, -1}, true},
		{"RemMinNeg", CheckedRem[Vec2P[int16], int16], Vec2P[int16]{math.MinInt16, 1}, Vec2P[int16]{-1, 1}, Vec2P[int16]{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckedUnsigned(t *testing.T) {
	_, ok := CheckedSub(NewVec2[uint32](1, 0), NewVec2[uint32](0, 1))
	assert.False(t, ok)
	got, ok := CheckedMul(NewVec2[uint64](1<<32, 3), NewVec2[uint64](1<<31, 5))
	assert.True(t, ok)
	assert.Equal(t, NewVec2[uint64](1<<63, 15), got)
	_, ok = CheckedMul(NewVec2[uint64](1<<32, 3), NewVec2[uint64](1<<32, 5))
	assert.False(t, ok)
}

func TestWrapping(t *testing.T) {
	assert.Equal(t, NewVec2[int32](math.MinInt32, 2), WrappingAdd(NewVec2[int32](math.MaxInt32, 1), Vec2Splat[int32](1)))
	assert.Equal(t, NewVec2P[uint8](255, 0), WrappingSub(NewVec2P[uint8](0, 1), NewVec2P[uint8](1, 1)))
	assert.Equal(t, NewVec2[int8](0, -128), WrappingMul(NewVec2[int8](16, 64), NewVec2[int8](16, 2)))
	assert.Equal(t, NewVec2[int8](math.MinInt8, 3), WrappingDiv(NewVec2[int8](math.MinInt8, 7), NewVec2[int8](-1, 2)))
	assert.Equal(t, NewVec2[int8](0, 1), WrappingRem(NewVec2[int8](math.MinInt8, 7), NewVec2[int8](-1, 2)))
}

func TestSaturating(t *testing.T) {
	assert.Equal(t, NewVec4[uint8](255, 150, 100, 255),
		SaturatingAdd(NewVec4[uint8](250, 100, 0, 255), NewVec4[uint8](10, 50, 100, 1)))
	assert.Equal(t, NewVec4[int8](127, -128, 100, -100),
		SaturatingAdd(NewVec4[int8](120, -120, 50, -50), NewVec4[int8](10, -10, 50, -50)))
	assert.Equal(t, NewVec4P[uint8](0, 50, 0, 254),
		SaturatingSub(NewVec4P[uint8](10, 100, 0, 255), NewVec4P[uint8](20, 50, 100, 1)))
	assert.Equal(t, NewVec4P[int8](-128, 127, 0, 0),
		SaturatingSub(NewVec4P[int8](-120, 120, 50, -50), NewVec4P[int8](10, -10, 50, -50)))
	assert.Equal(t, NewVec3[int16](math.MaxInt16, math.MinInt16, 600),
		SaturatingMul(NewVec3[int16](300, -300, 20), NewVec3[int16](300, 300, 30)))
	assert.Equal(t, NewVec3[int16](math.MaxInt16, math.MaxInt16, -3),
		SaturatingMul(NewVec3[int16](-300, math.MinInt16, 3), NewVec3[int16](-300, -1, -1)))
	assert.Equal(t, NewVec2[int32](math.MaxInt32, -3), SaturatingDiv(NewVec2[int32](math.MinInt32, 7), NewVec2[int32](-1, -2)))
	assert.Panics(t, func() { SaturatingDiv(NewVec2[int32](1, 1), NewVec2[int32](1, 0)) })
}
