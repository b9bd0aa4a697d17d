//go:build smath_up

package smath

// Up returns the unit vector pointing up: +1 on the Y axis.
func Up[V Vector[T], T Signed]() V { return unit[V, T](1, 1) }

// Down returns the unit vector pointing opposite to Up.
func Down[V Vector[T], T Signed]() V { return unit[V, T](1, -1) }
