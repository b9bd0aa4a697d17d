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

// Package smath provides small fixed-size vectors (2, 3 or 4 lanes) over
// any Go numeric type or bool, with per-element backends that may replace
// the scalar loops with SIMD instructions.
//
// # Shapes
//
// Every length comes in two representations:
//
//	Vec2[T], Vec3[T], Vec4[T]     aligned: stored in the element's SIMD storage
//	Vec2P[T], Vec3P[T], Vec4P[T]  packed: layout-identical to [N]T
//
// A Vec3 is stored as four lanes; the fourth is padding, always zero, and
// never observable through the API. In both representations lane i begins
// at byte offset i·sizeof(T), so [Bytes] is the same for both.
//
// Boolean masks are the same shapes with T = bool.
//
// # Operations
//
// Lane-wise operators are generic functions over the [Vector] constraint:
//
//	a := smath.NewVec3[int32](2, 3, 4)
//	b := smath.Add(smath.Vec3Splat[int32](1), a) // (3, 4, 5)
//	s := smath.Sum(b)                             // 12
//
// Per-shape methods cover construction, indexing, comparison masks and
// swizzles (v.XZY(), v.WithXY(u), v.YZPtr()).
//
// # Backends
//
// Each element type owns a [Backend] whose aligned hooks default to scalar
// loops. [Override] replaces hooks at init; on amd64 builds with
// GOEXPERIMENT=simd the float32, float64 and int32 arithmetic hooks use
// simd/archsimd unless SMATH_NO_SIMD is set. Packed vectors always use the
// scalar loop, so turning SIMD off never changes a result.
//
// # Semantics
//
// Lane arithmetic follows Go: integers wrap, integer division by zero
// panics, float remainder is math.Mod. The Checked, Wrapping and
// Saturating families make overflow explicit. Min, Max and Clamp panic on
// NaN lanes or reversed bounds unless built with -tags smath_nodebug.
//
// # Directions
//
// Build tags pick which way each axis points. With -tags smath_right,
// Right returns +X and Left returns -X; smath_left swaps them. The pairs
// smath_up/smath_down (Y) and smath_forwards/smath_backwards (Z) work the
// same way. Without a tag the functions for that axis are not declared,
// and setting both tags of a pair does not compile.
//
//	v := smath.Up[smath.Vec3[float32]]() // (0, 1, 0) with -tags smath_up
package smath

//go:generate go run ../cmd/smath gen --output .
