//go:build smath_left

package smath

// Left returns the unit vector pointing left: +1 on the X axis.
func Left[V Vector[T], T Signed]() V { return unit[V, T](0, 1) }

// Right returns the unit vector pointing opposite to Left.
func Right[V Vector[T], T Signed]() V { return unit[V, T](0, -1) }
