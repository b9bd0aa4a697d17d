//go:build amd64 && !goexperiment.simd

package smath

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd there is no archsimd package, so the aligned
// hooks stay scalar. Features are still reported for diagnostics.

func init() {
	detectCPUFeatures()
	setScalarMode()
}

func detectCPUFeatures() {
	cpuFeatures = cpuFeatures[:0]
	if cpu.X86.HasSSE2 {
		cpuFeatures = append(cpuFeatures, "sse2")
	}
	if cpu.X86.HasSSE41 {
		cpuFeatures = append(cpuFeatures, "sse4.1")
	}
	if cpu.X86.HasAVX {
		cpuFeatures = append(cpuFeatures, "avx")
	}
	if cpu.X86.HasAVX2 {
		cpuFeatures = append(cpuFeatures, "avx2")
	}
	if cpu.X86.HasFMA {
		cpuFeatures = append(cpuFeatures, "fma")
	}
	if cpu.X86.HasAVX512F {
		cpuFeatures = append(cpuFeatures, "avx512f")
	}
}
