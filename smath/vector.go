package smath

// Vec2 is an aligned two-lane vector. Its layout is [2]T.
type Vec2[T Element] struct {
	lanes [2]T
}

// Vec3 is an aligned three-lane vector. Its layout is [4]T: lanes 0..2 hold
// x, y and z, lane 3 is padding that always holds the zero value, so == and
// the padded byte view never observe stale data.
type Vec3[T Element] struct {
	lanes [4]T
}

// Vec4 is an aligned four-lane vector. Its layout is [4]T.
type Vec4[T Element] struct {
	lanes [4]T
}

// Vec2P is a packed two-lane vector, layout-identical to [2]T.
type Vec2P[T Element] [2]T

// Vec3P is a packed three-lane vector, layout-identical to [3]T.
type Vec3P[T Element] [3]T

// Vec4P is a packed four-lane vector, layout-identical to [4]T.
type Vec4P[T Element] [4]T

// Vector is satisfied by the six vector shapes with element type T.
// Generic functions over Vector reach the element's backend through the
// lane count and simdness of the instantiated shape.
type Vector[T Element] interface {
	Vec2[T] | Vec3[T] | Vec4[T] | Vec2P[T] | Vec3P[T] | Vec4P[T]

	// Len returns the number of logical lanes.
	Len() int
	// IsAligned reports whether the shape uses SIMD storage.
	IsAligned() bool
	// Index returns lane i and panics if i is out of range.
	Index(i int) T
}

// Vector2 is satisfied by the two-lane shapes.
type Vector2[T Element] interface {
	Vec2[T] | Vec2P[T]

	Len() int
	IsAligned() bool
	Index(i int) T
	ToArray() [2]T
}

// Vector3 is satisfied by the three-lane shapes.
type Vector3[T Element] interface {
	Vec3[T] | Vec3P[T]

	Len() int
	IsAligned() bool
	Index(i int) T
	ToArray() [3]T
}

// Vector4 is satisfied by the four-lane shapes.
type Vector4[T Element] interface {
	Vec4[T] | Vec4P[T]

	Len() int
	IsAligned() bool
	Index(i int) T
	ToArray() [4]T
}

// PackedVector is satisfied by the packed shapes, whose slices can be
// reinterpreted as flat lane slices.
type PackedVector[T Element] interface {
	Vec2P[T] | Vec3P[T] | Vec4P[T]

	Len() int
	IsAligned() bool
	Index(i int) T
}

// Fold reduces the lanes of v left to right starting from init.
func Fold[V Vector[T], T Element, R any](v V, init R, f func(acc R, x T) R) R {
	a, n := lanesOf[V, T](v)
	for i := 0; i < n; i++ {
		init = f(init, a[i])
	}
	return init
}
