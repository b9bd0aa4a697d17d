package smath

// This file is the only place that enumerates all six shapes for generic
// code. Each function switches on the instantiated shape and either calls
// the aligned hooks of the element's Backend or runs the fixed scalar loop
// for packed vectors.

type binOp uint8

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opRem
	opAnd
	opOr
	opXor
	opShl
	opShr
)

var binOpNames = [...]string{"Add", "Sub", "Mul", "Div", "Rem", "And", "Or", "Xor", "Shl", "Shr"}

func (op binOp) String() string { return binOpNames[op] }

type unOp uint8

const (
	opNeg unOp = iota
	opNot
)

func (op unOp) String() string {
	if op == opNot {
		return "Not"
	}
	return "Neg"
}

type cmpOp uint8

const (
	cmpEq cmpOp = iota
	cmpNe
	cmpLt
	cmpGt
	cmpLe
	cmpGe
)

type redOp uint8

const (
	redSum redOp = iota
	redProduct
)

func (op redOp) String() string {
	if op == redProduct {
		return "Product"
	}
	return "Sum"
}

func binary[V Vector[T], T Element](op binOp, a, b V) V {
	bk := backendOf[T]()
	switch x := any(a).(type) {
	case Vec2[T]:
		y := any(b).(Vec2[T])
		return any(Vec2[T]{bk.V2.binary(op)(x.lanes, y.lanes)}).(V)
	case Vec3[T]:
		y := any(b).(Vec3[T])
		return any(Vec3[T]{pad3(bk.V3.binary(op)(x.lanes, y.lanes))}).(V)
	case Vec4[T]:
		y := any(b).(Vec4[T])
		return any(Vec4[T]{bk.V4.binary(op)(x.lanes, y.lanes)}).(V)
	}
	f := bk.lanes.binary(op)
	la, n := lanesOf[V, T](a)
	lb, _ := lanesOf[V, T](b)
	var r [4]T
	for i := 0; i < n; i++ {
		r[i] = f(la[i], lb[i])
	}
	return fromLanes[V](r)
}

func unary[V Vector[T], T Element](op unOp, a V) V {
	bk := backendOf[T]()
	switch x := any(a).(type) {
	case Vec2[T]:
		return any(Vec2[T]{bk.V2.unary(op)(x.lanes)}).(V)
	case Vec3[T]:
		return any(Vec3[T]{pad3(bk.V3.unary(op)(x.lanes))}).(V)
	case Vec4[T]:
		return any(Vec4[T]{bk.V4.unary(op)(x.lanes)}).(V)
	}
	f := bk.lanes.neg
	if op == opNot {
		f = bk.lanes.not
	}
	return mapLanes[V, T](a, f)
}

func reduce[V Vector[T], T Element](op redOp, a V) T {
	bk := backendOf[T]()
	switch x := any(a).(type) {
	case Vec2[T]:
		return bk.V2.reduce(op)(x.lanes)
	case Vec3[T]:
		return bk.V3.reduce(op)(x.lanes)
	case Vec4[T]:
		return bk.V4.reduce(op)(x.lanes)
	}
	f := bk.lanes.add
	if op == redProduct {
		f = bk.lanes.mul
	}
	if f == nil {
		panic("smath: " + op.String() + " is not defined for bool")
	}
	l, n := lanesOf[V, T](a)
	r := l[0]
	for i := 1; i < n; i++ {
		r = f(r, l[i])
	}
	return r
}

func splat[V Vector[T], T Element](x T) V {
	var v V
	bk := backendOf[T]()
	switch p := any(&v).(type) {
	case *Vec2[T]:
		p.lanes = bk.V2.Splat(x)
	case *Vec3[T]:
		p.lanes = pad3(bk.V3.Splat(x))
	case *Vec4[T]:
		p.lanes = bk.V4.Splat(x)
	case *Vec2P[T]:
		*p = Vec2P[T]{x, x}
	case *Vec3P[T]:
		*p = Vec3P[T]{x, x, x}
	case *Vec4P[T]:
		*p = Vec4P[T]{x, x, x, x}
	}
	return v
}

// lanesOf copies the logical lanes of v into a four-lane scratch array.
// Lanes past n are zero.
func lanesOf[V Vector[T], T Element](v V) (r [4]T, n int) {
	switch x := any(v).(type) {
	case Vec2[T]:
		return [4]T{x.lanes[0], x.lanes[1]}, 2
	case Vec3[T]:
		return pad3(x.lanes), 3
	case Vec4[T]:
		return x.lanes, 4
	case Vec2P[T]:
		return [4]T{x[0], x[1]}, 2
	case Vec3P[T]:
		return [4]T{x[0], x[1], x[2]}, 3
	case Vec4P[T]:
		return [4]T(x), 4
	}
	panic("smath: unreachable vector shape")
}

// fromLanes builds a V from the first V.Len() lanes of a.
func fromLanes[V Vector[T], T Element](a [4]T) V {
	var v V
	switch p := any(&v).(type) {
	case *Vec2[T]:
		p.lanes = [2]T{a[0], a[1]}
	case *Vec3[T]:
		p.lanes = pad3(a)
	case *Vec4[T]:
		p.lanes = a
	case *Vec2P[T]:
		*p = Vec2P[T]{a[0], a[1]}
	case *Vec3P[T]:
		*p = Vec3P[T]{a[0], a[1], a[2]}
	case *Vec4P[T]:
		*p = Vec4P[T](a)
	}
	return v
}

// lenOf returns the lane count of V without a value.
func lenOf[V Vector[T], T Element]() int {
	var v V
	return v.Len()
}

func mapLanes[V Vector[T], T Element](v V, f func(T) T) V {
	a, n := lanesOf[V, T](v)
	for i := 0; i < n; i++ {
		a[i] = f(a[i])
	}
	return fromLanes[V](a)
}

func zipLanes[V Vector[T], T Element](a, b V, f func(x, y T) T) V {
	la, n := lanesOf[V, T](a)
	lb, _ := lanesOf[V, T](b)
	for i := 0; i < n; i++ {
		la[i] = f(la[i], lb[i])
	}
	return fromLanes[V](la)
}

func zip3Lanes[V Vector[T], T Element](a, b, c V, f func(x, y, z T) T) V {
	la, n := lanesOf[V, T](a)
	lb, _ := lanesOf[V, T](b)
	lc, _ := lanesOf[V, T](c)
	for i := 0; i < n; i++ {
		la[i] = f(la[i], lb[i], lc[i])
	}
	return fromLanes[V](la)
}

// predicate maps the lanes of v to the mask shape M, which must have the
// same lane count.
func predicate[V Vector[T], M Vector[bool], T Element](v V, f func(T) bool) M {
	a, n := lanesOf[V, T](v)
	var r [4]bool
	for i := 0; i < n; i++ {
		r[i] = f(a[i])
	}
	return fromLanes[M](r)
}

// packedCompare fills r with f applied to the lanes of a and b.
func packedCompare[T Element](f func(a, b T) bool, a, b []T, r []bool) {
	for i := range r {
		r[i] = f(a[i], b[i])
	}
}
