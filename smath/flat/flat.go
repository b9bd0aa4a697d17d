// Package flat converts between slices of packed vectors and flat lane
// slices, and runs batch arithmetic over them with github.com/viterin/vek.
//
// A []Vec3P[float32] of length n and a []float32 of length 3n share the same
// memory layout, so Flatten and View only reinterpret the backing array.
package flat

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-smath/smath"
)

// ErrLength is returned when slice lengths do not line up.
var ErrLength = errors.New("flat: length mismatch")

func lanes[P smath.PackedVector[T], T smath.Element]() int {
	var p P
	return p.Len()
}

// Flatten returns the lanes of vs as one slice sharing vs's backing array.
func Flatten[P smath.PackedVector[T], T smath.Element](vs []P) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(vs))), len(vs)*lanes[P, T]())
}

// View returns flat reinterpreted as packed vectors. It shares flat's
// backing array. The length of flat must be a multiple of the lane count.
func View[P smath.PackedVector[T], T smath.Element](flat []T) ([]P, error) {
	n := lanes[P, T]()
	if len(flat)%n != 0 {
		return nil, fmt.Errorf("%w: %d lanes is not a multiple of %d", ErrLength, len(flat), n)
	}
	if len(flat) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*P)(unsafe.Pointer(unsafe.SliceData(flat))), len(flat)/n), nil
}

func sameLen(op string, lens ...int) error {
	for _, l := range lens[1:] {
		if l != lens[0] {
			return fmt.Errorf("%w: %s over %v vectors", ErrLength, op, lens)
		}
	}
	return nil
}

type binaryKernels struct {
	f32 func(dst, x, y []float32) []float32
	f64 func(dst, x, y []float64) []float64
}

var (
	addKernels = binaryKernels{vek32.Add_Into, vek.Add_Into}
	subKernels = binaryKernels{vek32.Sub_Into, vek.Sub_Into}
	mulKernels = binaryKernels{vek32.Mul_Into, vek.Mul_Into}
	divKernels = binaryKernels{vek32.Div_Into, vek.Div_Into}
)

func batch[P smath.PackedVector[T], T smath.Floats](op string, k binaryKernels, dst, a, b []P) error {
	if err := sameLen(op, len(dst), len(a), len(b)); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}
	d, x, y := Flatten[P, T](dst), Flatten[P, T](a), Flatten[P, T](b)
	switch d := any(d).(type) {
	case []float32:
		k.f32(d, any(x).([]float32), any(y).([]float32))
	case []float64:
		k.f64(d, any(x).([]float64), any(y).([]float64))
	}
	return nil
}

// AddInto stores a[i] + b[i] in dst[i] for every vector.
func AddInto[P smath.PackedVector[T], T smath.Floats](dst, a, b []P) error {
	return batch[P, T]("AddInto", addKernels, dst, a, b)
}

// SubInto stores a[i] - b[i] in dst[i] for every vector.
func SubInto[P smath.PackedVector[T], T smath.Floats](dst, a, b []P) error {
	return batch[P, T]("SubInto", subKernels, dst, a, b)
}

// MulInto stores the lane-wise product a[i] * b[i] in dst[i].
func MulInto[P smath.PackedVector[T], T smath.Floats](dst, a, b []P) error {
	return batch[P, T]("MulInto", mulKernels, dst, a, b)
}

// DivInto stores the lane-wise quotient a[i] / b[i] in dst[i].
func DivInto[P smath.PackedVector[T], T smath.Floats](dst, a, b []P) error {
	return batch[P, T]("DivInto", divKernels, dst, a, b)
}

// ScaleInto stores a[i] · s in dst[i] for every vector.
func ScaleInto[P smath.PackedVector[T], T smath.Floats](dst, a []P, s T) error {
	if err := sameLen("ScaleInto", len(dst), len(a)); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}
	d, x := Flatten[P, T](dst), Flatten[P, T](a)
	switch d := any(d).(type) {
	case []float32:
		vek32.MulNumber_Into(d, any(x).([]float32), any(s).(float32))
	case []float64:
		vek.MulNumber_Into(d, any(x).([]float64), any(s).(float64))
	}
	return nil
}

// Dots stores the dot product of a[i] and b[i] in dst[i]. The vek kernels
// may sum in a different order than smath.Dot, so float results can differ
// from it in the last bits.
func Dots[P smath.PackedVector[T], T smath.Floats](dst []T, a, b []P) error {
	if err := sameLen("Dots", len(dst), len(a), len(b)); err != nil {
		return err
	}
	n := lanes[P, T]()
	x, y := Flatten[P, T](a), Flatten[P, T](b)
	switch d := any(dst).(type) {
	case []float32:
		xf, yf := any(x).([]float32), any(y).([]float32)
		for i := range d {
			d[i] = vek32.Dot(xf[i*n:(i+1)*n], yf[i*n:(i+1)*n])
		}
	case []float64:
		xf, yf := any(x).([]float64), any(y).([]float64)
		for i := range d {
			d[i] = vek.Dot(xf[i*n:(i+1)*n], yf[i*n:(i+1)*n])
		}
	}
	return nil
}

// SumAll returns the sum of every lane of every vector.
func SumAll[P smath.PackedVector[T], T smath.Floats](vs []P) T {
	if len(vs) == 0 {
		return 0
	}
	switch x := any(Flatten[P, T](vs)).(type) {
	case []float32:
		return T(vek32.Sum(x))
	case []float64:
		return T(vek.Sum(x))
	}
	return 0
}

// Accelerated reports whether vek found SIMD support on this CPU.
func Accelerated() bool {
	return vek32.Info().Acceleration
}

// CPUFeatures returns the CPU features vek detected.
func CPUFeatures() []string {
	return vek32.Info().CPUFeatures
}
