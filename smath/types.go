package smath

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int | int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for all arithmetic lane types.
type Number interface {
	Floats | Integers
}

// Signed is a constraint for lane types with a negative one.
type Signed interface {
	SignedInts | Floats
}

// Bits is a constraint for lane types that support the bitwise operators.
// For bool lanes And, Or, Xor and Not are the logical operators.
type Bits interface {
	Integers | bool
}

// Element is a constraint for every type that can be stored in a vector lane.
//
// The set is closed: each element type owns a Backend, located by an exact
// type switch, so named types such as ~float32 are not accepted.
type Element interface {
	Number | bool
}
