package smath

import "unsafe"

// Bytes returns the logical lanes of *v as bytes: Len()·sizeof(T) bytes
// starting at lane 0. This is the canonical serialized form. The slice
// aliases v.
func Bytes[V Vector[T], T Element](v *V) []byte {
	var zero T
	n := (*v).Len() * int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), n)
}

// BytesPadded returns all sizeof(V) bytes of *v, including the padding
// lane of a three-lane aligned vector. For packed vectors it equals Bytes.
// The slice aliases v; writing the padding bytes breaks == on aligned
// vectors.
func BytesPadded[V Vector[T], T Element](v *V) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// LanePtr returns a pointer to lane 0 of *v. Lane i lives i·sizeof(T)
// bytes further.
func LanePtr[V Vector[T], T Element](v *V) *T {
	return (*T)(unsafe.Pointer(v))
}

func laneAt[T Element](p *T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(*p)))
}
