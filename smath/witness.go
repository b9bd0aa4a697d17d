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

package smath

import "unsafe"

// Length is the compile-time witness that a lane count is supported.
//
// Only L2, L3 and L4 satisfy it, so a generic instantiated with any other
// length marker does not compile.
type Length interface {
	L2 | L3 | L4

	// Lanes returns the number of logical lanes.
	Lanes() int
}

// L2 marks two-lane vectors.
type L2 struct{}

// Lanes returns 2.
func (L2) Lanes() int { return 2 }

// L3 marks three-lane vectors.
type L3 struct{}

// Lanes returns 3.
func (L3) Lanes() int { return 3 }

// L4 marks four-lane vectors.
type L4 struct{}

// Lanes returns 4.
func (L4) Lanes() int { return 4 }

// PickLength selects one of three values keyed by the length marker L.
//
// Together with PickSimd it lets generic code express a table indexed by
// (length, simdness) without spelling out all six cases.
func PickLength[L Length, R any](two, three, four R) R {
	var l L
	switch l.Lanes() {
	case 2:
		return two
	case 3:
		return three
	default:
		return four
	}
}

// Simdness is the compile-time witness selecting between the aligned
// (SIMD storage) and packed (array-identical) representations.
type Simdness interface {
	Aligned | Packed

	// IsSimd reports whether the representation is the SIMD one.
	IsSimd() bool
}

// Aligned marks vectors stored in their element's SIMD storage: Vec2, Vec3
// and Vec4. A three-lane aligned vector carries one padding lane.
type Aligned struct{}

// IsSimd returns true.
func (Aligned) IsSimd() bool { return true }

// Packed marks vectors laid out exactly as [N]T: Vec2P, Vec3P and Vec4P.
type Packed struct{}

// IsSimd returns false.
func (Packed) IsSimd() bool { return false }

// PickSimd selects one of two values keyed by the simdness marker S.
func PickSimd[S Simdness, R any](aligned, packed R) R {
	var s S
	if s.IsSimd() {
		return aligned
	}
	return packed
}

// Shape describes the memory layout of a vector type.
type Shape struct {
	// Lanes is the number of logical lanes.
	Lanes int
	// Aligned reports whether the vector uses SIMD storage.
	Aligned bool
	// ElemSize is the size of one lane in bytes.
	ElemSize uintptr
	// Size is the size of the whole value in bytes, padding included.
	Size uintptr
	// Align is the alignment of the value in bytes.
	Align uintptr
}

// Padding returns the number of bytes past the logical lanes.
func (s Shape) Padding() uintptr {
	return s.Size - uintptr(s.Lanes)*s.ElemSize
}

// ShapeOf returns the layout of the vector type V.
//
//	smath.ShapeOf[smath.Vec3[uint16]]() // {Lanes: 3, Aligned: true, ElemSize: 2, Size: 8, Align: 2}
func ShapeOf[V Vector[T], T Element]() Shape {
	var v V
	var t T
	return Shape{
		Lanes:    v.Len(),
		Aligned:  v.IsAligned(),
		ElemSize: unsafe.Sizeof(t),
		Size:     unsafe.Sizeof(v),
		Align:    unsafe.Alignof(v),
	}
}
