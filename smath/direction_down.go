//go:build smath_down

package smath

// Down returns the unit vector pointing down: +1 on the Y axis.
func Down[V Vector[T], T Signed]() V { return unit[V, T](1, 1) }

// Up returns the unit vector pointing opposite to Down.
func Up[V Vector[T], T Signed]() V { return unit[V, T](1, -1) }
