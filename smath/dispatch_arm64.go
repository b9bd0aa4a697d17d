//go:build arm64

package smath

import "golang.org/x/sys/cpu"

func init() {
	cpuFeatures = cpuFeatures[:0]
	if cpu.ARM64.HasASIMD {
		cpuFeatures = append(cpuFeatures, "asimd")
	}
	if cpu.ARM64.HasFPHP {
		cpuFeatures = append(cpuFeatures, "fphp")
	}
	if cpu.ARM64.HasSVE {
		cpuFeatures = append(cpuFeatures, "sve")
	}

	// Check for SMATH_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 always has NEON (ASIMD); it's part of the ARMv8-A base.
	// No NEON hooks exist, so every backend stays scalar and Accelerated
	// reports false.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
	} else {
		setScalarMode()
	}
}
