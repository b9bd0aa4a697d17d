//go:build smath_backwards

package smath

// Backwards returns the unit vector pointing backwards: +1 on the Z axis.
func Backwards[V Vector[T], T Signed]() V { return unit[V, T](2, 1) }

// Forwards returns the unit vector pointing opposite to Backwards.
func Forwards[V Vector[T], T Signed]() V { return unit[V, T](2, -1) }
