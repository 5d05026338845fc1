package vector_math

import (
	"fmt"
	"math"
	"strings"
)

// Vector is the read side shared by Vec2, Vec3 and Vec4.
type Vector interface {
	fmt.Stringer

	// Size is the number of components.
	Size() int
	// At returns the component at a 0-based index and panics outside [0, Size).
	At(idx int) float64
	// Comp returns the component with the given letter, e.g. 'x' or 'r'.
	Comp(c rune) float64
	// Values returns the components in declaration order.
	Values() []float64
}

// VecX is the full capability set of a fixed-arity vector type T. Only the
// vector types of this package satisfy it.
type VecX[T any] interface {
	Vector

	Add(w T) T
	Sub(w T) T
	Mul(w T) T
	ScalarMul(f float64) T
	Div(w T) T
	ScalarDiv(f float64) T
	Rem(w T) T
	ScalarRem(f float64) T
	Neg() T

	// Dot is the plain dot product.
	Dot(w T) float64
	// Norm returns the vector scaled to unit length.
	Norm() T

	fromValues(values []float64) T
}

// Magnitude returns the euclidean length of v.
func Magnitude(v Vector) float64 {
	var sum float64
	for _, c := range v.Values() {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// Distance returns the length of b - a.
func Distance[T VecX[T]](a, b T) float64 {
	return Magnitude(b.Sub(a))
}

// NormDot returns the cosine of the angle between a and b, which is -1 for
// opposite, 0 for orthogonal and 1 for codirectional vectors. It panics if
// either vector has zero magnitude.
func NormDot[T VecX[T]](a, b T) float64 {
	ma, mb := Magnitude(a), Magnitude(b)
	if ma == 0 || mb == 0 {
		panic(newError(ErrZeroMagnitude, "no angle between %s and %s", a, b))
	}
	d := a.Dot(b) / (ma * mb)
	return math.Max(-1, math.Min(1, d))
}

// Angle returns the angle between a and b in radians, within [0, π].
func Angle[T VecX[T]](a, b T) float64 {
	return math.Acos(NormDot(a, b))
}

// AsValuesOf returns exactly as many values as T has components. Positions
// past the arity of v read as 0.
func AsValuesOf[T VecX[T]](v Vector) []float64 {
	var target T
	values := make([]float64, target.Size())
	for i := range values {
		if i < v.Size() {
			values[i] = v.At(i)
		}
	}
	return values
}

// Convert builds a T from v, dropping trailing components or padding with 0.
func Convert[T VecX[T]](v Vector) T {
	var target T
	return target.fromValues(AsValuesOf[T](v))
}

// FromValues builds a T from a sequence. Missing positions are 0, excess
// values are ignored.
func FromValues[T VecX[T]](values []float64) T {
	var target T
	return target.fromValues(values)
}

// Splat builds a T with every component set to f.
func Splat[T VecX[T]](f float64) T {
	var target T
	values := make([]float64, target.Size())
	for i := range values {
		values[i] = f
	}
	return target.fromValues(values)
}

func valueAt(values []float64, idx int) float64 {
	if idx < len(values) {
		return values[idx]
	}
	return 0
}

func at(v Vector, idx int) float64 {
	if idx < 0 || idx >= v.Size() {
		panic(newError(ErrIndexOutOfRange, "accessing %s by invalid index %d", v, idx))
	}
	return v.Values()[idx]
}

func format(v Vector) string {
	parts := make([]string, v.Size())
	for i, c := range v.Values() {
		parts[i] = fmt.Sprintf("%v", c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
