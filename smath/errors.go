package smath

import (
	"fmt"
	"strings"
)

// IndexError is the panic value of checked accessors given a lane index
// outside the vector.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("smath: lane index %d out of range [0, %d)", e.Index, e.Len)
}

// ShuffleError is the panic value of WithShuffle when a destination lane is
// named more than once.
type ShuffleError struct {
	Indices []int
}

func (e *ShuffleError) Error() string {
	return fmt.Sprintf("smath: duplicate destination lane in %v", e.Indices)
}

// BuildError is the panic value of Build when the parts do not assemble
// into the requested vector.
type BuildError struct {
	// Want is the lane count of the requested vector.
	Want int
	// Got is the number of lanes supplied, counted up to the first bad part.
	Got int
	// Part is the index of the offending part, or -1 for a count mismatch.
	Part int
	// Type is the dynamic type of the offending part.
	Type string
}

func (e *BuildError) Error() string {
	if e.Part >= 0 {
		return fmt.Sprintf("smath: build part %d has type %s, want the element type or a vector of it", e.Part, e.Type)
	}
	return fmt.Sprintf("smath: build got %d lanes, want %d", e.Got, e.Want)
}

// LengthError is the panic value of operations mixing vectors of different
// lane counts, such as Select with a mask of the wrong length.
type LengthError struct {
	Op   string
	Lens []int
}

func (e *LengthError) Error() string {
	parts := make([]string, len(e.Lens))
	for i, n := range e.Lens {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("smath: %s: lane count mismatch (%s)", e.Op, strings.Join(parts, " vs "))
}

// RangeError is the panic value of the debug assertions on Min, Max and
// Clamp.
type RangeError struct {
	Op   string
	Lane int
	// NaN is set when the lane held NaN; otherwise Lo > Hi.
	NaN    bool
	Lo, Hi any
}

func (e *RangeError) Error() string {
	if e.NaN {
		return fmt.Sprintf("smath: %s: lane %d is NaN", e.Op, e.Lane)
	}
	return fmt.Sprintf("smath: %s: lane %d has lo %v > hi %v", e.Op, e.Lane, e.Lo, e.Hi)
}

func checkIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(&IndexError{Index: i, Len: n})
	}
}

func checkDistinct(idx ...int) {
	for i := 1; i < len(idx); i++ {
		for j := 0; j < i; j++ {
			if idx[i] == idx[j] {
				panic(&ShuffleError{Indices: idx})
			}
		}
	}
}
