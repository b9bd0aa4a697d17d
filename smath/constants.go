package smath

// Zero returns the vector with every lane zero.
func Zero[V Vector[T], T Number]() V {
	var v V
	return v
}

// One returns the vector with every lane one.
func One[V Vector[T], T Number]() V {
	return splat[V, T](1)
}

// NegOne returns the vector with every lane minus one.
func NegOne[V Vector[T], T Signed]() V {
	return splat[V, T](-1)
}

// Splat returns the vector with every lane set to x.
func Splat[V Vector[T], T Element](x T) V {
	return splat[V](x)
}

// UnitX returns the vector with lane 0 one and the others zero.
func UnitX[V Vector[T], T Number]() V { return unit[V, T](0, 1) }

// UnitY returns the vector with lane 1 one and the others zero.
func UnitY[V Vector[T], T Number]() V { return unit[V, T](1, 1) }

// UnitZ returns the vector with lane 2 one and the others zero. It panics
// if V has two lanes.
func UnitZ[V Vector[T], T Number]() V { return unit[V, T](2, 1) }

// UnitW returns the vector with lane 3 one and the others zero. It panics
// unless V has four lanes.
func UnitW[V Vector[T], T Number]() V { return unit[V, T](3, 1) }

// NegUnitX returns the vector with lane 0 minus one and the others zero.
func NegUnitX[V Vector[T], T Signed]() V { return unit[V, T](0, -1) }

// NegUnitY returns the vector with lane 1 minus one and the others zero.
func NegUnitY[V Vector[T], T Signed]() V { return unit[V, T](1, -1) }

// NegUnitZ returns the vector with lane 2 minus one and the others zero.
// It panics if V has two lanes.
func NegUnitZ[V Vector[T], T Signed]() V { return unit[V, T](2, -1) }

// NegUnitW returns the vector with lane 3 minus one and the others zero.
// It panics unless V has four lanes.
func NegUnitW[V Vector[T], T Signed]() V { return unit[V, T](3, -1) }

func unit[V Vector[T], T Number](axis int, x T) V {
	checkIndex(axis, lenOf[V, T]())
	var a [4]T
	a[axis] = x
	return fromLanes[V](a)
}
