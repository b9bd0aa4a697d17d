package smath

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("SMATH_NO_SIMD", tt.val)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}

func TestDispatchLevelString(t *testing.T) {
	assert.Equal(t, "scalar", DispatchScalar.String())
	assert.Equal(t, "sse2", DispatchSSE2.String())
	assert.Equal(t, "avx2", DispatchAVX2.String())
	assert.Equal(t, "avx512", DispatchAVX512.String())
	assert.Equal(t, "neon", DispatchNEON.String())
	assert.Equal(t, "unknown", DispatchLevel(99).String())
	assert.Equal(t, CurrentLevel().String(), CurrentName())
}

func TestLevelWithoutHooksIsNotAccelerated(t *testing.T) {
	switch CurrentLevel() {
	case DispatchScalar, DispatchSSE2, DispatchNEON:
		assert.False(t, Accelerated(), "level %s has no hooks", CurrentLevel())
	default:
		t.Skipf("hooks may be installed at %s", CurrentLevel())
	}
}

func TestCPUFeaturesIsACopy(t *testing.T) {
	f := CPUFeatures()
	if len(f) == 0 {
		t.Skip("no CPU features detected on this platform")
	}
	f[0] = "clobbered"
	assert.NotEqual(t, "clobbered", CPUFeatures()[0])
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	assert.Same(t, nopLogger, Logger())
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	SetLogger(l)
	assert.Same(t, l, Logger())
	Logger().Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	SetLogger(nil)
	assert.Same(t, nopLogger, Logger())
}
