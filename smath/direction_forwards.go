//go:build smath_forwards

package smath

// Forwards returns the unit vector pointing forwards: +1 on the Z axis.
func Forwards[V Vector[T], T Signed]() V { return unit[V, T](2, 1) }

// Backwards returns the unit vector pointing opposite to Forwards.
func Backwards[V Vector[T], T Signed]() V { return unit[V, T](2, -1) }
