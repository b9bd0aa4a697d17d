//go:build smath_right

package smath

// Right returns the unit vector pointing right: +1 on the X axis.
func Right[V Vector[T], T Signed]() V { return unit[V, T](0, 1) }

// Left returns the unit vector pointing opposite to Right.
func Left[V Vector[T], T Signed]() V { return unit[V, T](0, -1) }
