package smath

// All reports whether every lane of m is true.
func All[M Vector[bool]](m M) bool {
	l, n := lanesOf[M, bool](m)
	for i := 0; i < n; i++ {
		if !l[i] {
			return false
		}
	}
	return true
}

// Any reports whether at least one lane of m is true.
func Any[M Vector[bool]](m M) bool {
	l, n := lanesOf[M, bool](m)
	for i := 0; i < n; i++ {
		if l[i] {
			return true
		}
	}
	return false
}

// CountTrue returns the number of true lanes in m.
func CountTrue[M Vector[bool]](m M) int {
	l, n := lanesOf[M, bool](m)
	count := 0
	for i := 0; i < n; i++ {
		if l[i] {
			count++
		}
	}
	return count
}

// Select returns a vector taking lane i from a where m[i] is true and from b
// otherwise. The mask may use either representation but must have the same
// lane count as V; Select panics with a *LengthError otherwise.
func Select[M Vector[bool], V Vector[T], T Element](m M, a, b V) V {
	mask, mn := lanesOf[M, bool](m)
	la, n := lanesOf[V, T](a)
	if mn != n {
		panic(&LengthError{Op: "Select", Lens: []int{mn, n}})
	}
	lb, _ := lanesOf[V, T](b)
	for i := 0; i < n; i++ {
		if !mask[i] {
			la[i] = lb[i]
		}
	}
	return fromLanes[V](la)
}
