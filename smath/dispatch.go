package smath

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set the aligned hooks use.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, every hook is the scalar loop.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit x86 instructions.
	DispatchSSE2

	// DispatchAVX2 indicates 256-bit x86 instructions.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit x86 instructions.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// cpuFeatures lists the CPU features relevant to the hooks.
// Set by init() in dispatch_*.go files.
var cpuFeatures []string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// CPUFeatures returns the detected CPU features that the hooks can use.
// The slice is a copy.
func CPUFeatures() []string {
	return append([]string(nil), cpuFeatures...)
}

// NoSimdEnv checks if the SMATH_NO_SIMD environment variable is set.
// When set, every element keeps its scalar hooks regardless of CPU
// capabilities. Results never change; only speed does.
func NoSimdEnv() bool {
	val := os.Getenv("SMATH_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
}
