// Copyright 2025 go-smath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd

package smath

import "simd/archsimd"

// installSIMDKernels replaces the arithmetic hooks that map onto a single
// 128-bit instruction. Called from the dispatch init once the level is known.
//
// Three-lane float32 vectors share the four-lane kernels: the padding lane
// is computed too (0/0 yields NaN there) and cleared by the caller.
func installSIMDKernels() {
	if currentLevel < DispatchAVX2 {
		return
	}

	Override("archsimd", func(b *Backend[float32]) {
		add := float32x4(archsimd.Float32x4.Add)
		sub := float32x4(archsimd.Float32x4.Sub)
		mul := float32x4(archsimd.Float32x4.Mul)
		div := float32x4(archsimd.Float32x4.Div)
		for _, k := range []*Kernels[float32, [4]float32, [4]bool]{&b.V3, &b.V4} {
			k.Add, k.Sub, k.Mul, k.Div = add, sub, mul, div
		}
	})

	Override("archsimd", func(b *Backend[float64]) {
		b.V2.Add = float64x2(archsimd.Float64x2.Add)
		b.V2.Sub = float64x2(archsimd.Float64x2.Sub)
		b.V2.Mul = float64x2(archsimd.Float64x2.Mul)
		b.V2.Div = float64x2(archsimd.Float64x2.Div)
	})

	Override("archsimd", func(b *Backend[int32]) {
		add := int32x4(archsimd.Int32x4.Add)
		sub := int32x4(archsimd.Int32x4.Sub)
		for _, k := range []*Kernels[int32, [4]int32, [4]bool]{&b.V3, &b.V4} {
			k.Add, k.Sub = add, sub
		}
	})

	Logger().Debug("smath: SIMD hooks installed", "level", currentLevel.String())
}

func float32x4(op func(x, y archsimd.Float32x4) archsimd.Float32x4) func(a, b [4]float32) [4]float32 {
	return func(a, b [4]float32) (r [4]float32) {
		op(archsimd.LoadFloat32x4Slice(a[:]), archsimd.LoadFloat32x4Slice(b[:])).StoreSlice(r[:])
		return r
	}
}

func float64x2(op func(x, y archsimd.Float64x2) archsimd.Float64x2) func(a, b [2]float64) [2]float64 {
	return func(a, b [2]float64) (r [2]float64) {
		op(archsimd.LoadFloat64x2Slice(a[:]), archsimd.LoadFloat64x2Slice(b[:])).StoreSlice(r[:])
		return r
	}
}

func int32x4(op func(x, y archsimd.Int32x4) archsimd.Int32x4) func(a, b [4]int32) [4]int32 {
	return func(a, b [4]int32) (r [4]int32) {
		op(archsimd.LoadInt32x4Slice(a[:]), archsimd.LoadInt32x4Slice(b[:])).StoreSlice(r[:])
		return r
	}
}
