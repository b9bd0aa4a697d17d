package smath

import "fmt"

// Build assembles a V from a sequence of scalars and shorter vectors whose
// lane counts add up to V.Len(). Parts may be T or any shape with element
// type T, in either representation:
//
//	v := smath.Build[smath.Vec4[int32]](int32(1), smath.NewVec2[int32](2, 3), int32(4)) // (1, 2, 3, 4)
//
// Build panics with a *BuildError if a part has another type or the lane
// count does not match. Untyped constants are passed as their default
// type, so spell out the element type of scalar parts.
//
// The typed constructors Vec3Of21, Vec4Of112 and friends check the lane
// count at compile time instead.
func Build[V Vector[T], T Element](parts ...any) V {
	want := lenOf[V, T]()
	var plan [4]T
	got := 0
	for i, p := range parts {
		var src [4]T
		var n int
		switch x := p.(type) {
		case T:
			src[0], n = x, 1
		case Vec2[T]:
			src, n = lanesOf[Vec2[T], T](x)
		case Vec3[T]:
			src, n = lanesOf[Vec3[T], T](x)
		case Vec4[T]:
			src, n = lanesOf[Vec4[T], T](x)
		case Vec2P[T]:
			src, n = lanesOf[Vec2P[T], T](x)
		case Vec3P[T]:
			src, n = lanesOf[Vec3P[T], T](x)
		case Vec4P[T]:
			src, n = lanesOf[Vec4P[T], T](x)
		default:
			panic(&BuildError{Want: want, Got: got, Part: i, Type: fmt.Sprintf("%T", p)})
		}
		if got+n > want {
			panic(&BuildError{Want: want, Got: got + n, Part: -1})
		}
		copy(plan[got:got+n], src[:n])
		got += n
	}
	if got != want {
		panic(&BuildError{Want: want, Got: got, Part: -1})
	}
	return fromLanes[V](plan)
}

// Vec3Of21 builds a three-lane R from a two-lane vector and a scalar.
func Vec3Of21[R Vector3[T], A Vector2[T], T Element](xy A, z T) R {
	a := xy.ToArray()
	return fromLanes[R]([4]T{a[0], a[1], z})
}

// Vec3Of12 builds a three-lane R from a scalar and a two-lane vector.
func Vec3Of12[R Vector3[T], A Vector2[T], T Element](x T, yz A) R {
	a := yz.ToArray()
	return fromLanes[R]([4]T{x, a[0], a[1]})
}

// Vec4Of211 builds a four-lane R from a two-lane vector and two scalars.
func Vec4Of211[R Vector4[T], A Vector2[T], T Element](xy A, z, w T) R {
	a := xy.ToArray()
	return fromLanes[R]([4]T{a[0], a[1], z, w})
}

// Vec4Of121 builds a four-lane R from a scalar, a two-lane vector and a
// scalar.
func Vec4Of121[R Vector4[T], A Vector2[T], T Element](x T, yz A, w T) R {
	a := yz.ToArray()
	return fromLanes[R]([4]T{x, a[0], a[1], w})
}

// Vec4Of112 builds a four-lane R from two scalars and a two-lane vector.
func Vec4Of112[R Vector4[T], A Vector2[T], T Element](x, y T, zw A) R {
	a := zw.ToArray()
	return fromLanes[R]([4]T{x, y, a[0], a[1]})
}

// Vec4Of22 builds a four-lane R from two two-lane vectors.
func Vec4Of22[R Vector4[T], A, B Vector2[T], T Element](xy A, zw B) R {
	a, b := xy.ToArray(), zw.ToArray()
	return fromLanes[R]([4]T{a[0], a[1], b[0], b[1]})
}

// Vec4Of31 builds a four-lane R from a three-lane vector and a scalar.
func Vec4Of31[R Vector4[T], A Vector3[T], T Element](xyz A, w T) R {
	a := xyz.ToArray()
	return fromLanes[R]([4]T{a[0], a[1], a[2], w})
}

// Vec4Of13 builds a four-lane R from a scalar and a three-lane vector.
func Vec4Of13[R Vector4[T], A Vector3[T], T Element](x T, yzw A) R {
	a := yzw.ToArray()
	return fromLanes[R]([4]T{x, a[0], a[1], a[2]})
}
