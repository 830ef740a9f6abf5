// Package geom provides 2D geometric value types generic over a closed set
// of scalar kinds:
//   - Point and Vector with point/vector algebra
//   - axis-aligned Rect with an enforced corner ordering
//   - Circle with an enforced positive radius
//   - per-kind Factory values for kind-agnostic construction
//
// Value receivers never mutate. Methods on pointer receivers (the *Assign
// family and the Set* mutators) change the value in place.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/go-drift/planar/pkg/errors"
)

// Scalar is the constraint for the coordinate types geom values can hold.
// The set is closed: float64, float32 and int32.
type Scalar interface {
	float64 | float32 | int32
}

// Kind identifies one of the three scalar representations.
type Kind int

const (
	// Float64 is the 64-bit IEEE 754 kind.
	Float64 Kind = iota
	// Float32 is the 32-bit IEEE 754 kind.
	Float32
	// Int32 is the 32-bit two's complement integer kind.
	Int32
)

func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case int32:
		return Int32
	default:
		return Float64
	}
}

// FromFloat64 narrows f to T. Conversion is total: for Int32 the value is
// truncated toward zero and saturated at the int32 bounds, and NaN maps to 0.
func FromFloat64[T Scalar](f float64) T {
	if KindOf[T]() != Int32 {
		return T(f)
	}
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return T(math.MaxInt32)
	case f <= math.MinInt32:
		return T(math.MinInt32)
	}
	return T(f)
}

// Convert returns v expressed in kind To with the rules of FromFloat64.
// Widening to float64 is exact for every kind, so routing through it never
// loses information before the final narrowing.
func Convert[To, From Scalar](v From) To {
	return FromFloat64[To](float64(v))
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// ordered returns a and b sorted ascending.
func ordered[T constraints.Ordered](a, b T) (T, T) {
	if b < a {
		return b, a
	}
	return a, b
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T Scalar](v, lo, hi T) T {
	return clamp(v, lo, hi)
}

// representable reports whether f can be stored in T without saturating or
// overflowing to an infinity.
func representable[T Scalar](f float64) bool {
	switch KindOf[T]() {
	case Int32:
		return f >= math.MinInt32 && f <= math.MaxInt32
	case Float32:
		return math.Abs(f) <= math.MaxFloat32
	default:
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	}
}

// offset returns p moved by (dx, dy). The sum is formed in float64 and
// rejected when T cannot hold it, so int32 never wraps.
func offset[T Scalar](op string, p Point[T], dx, dy float64) (Point[T], error) {
	x, y := float64(p.X)+dx, float64(p.Y)+dy
	if !representable[T](x) || !representable[T](y) {
		return p, errors.Domainf(op, "%v moved by (%v, %v) overflows %s", p, dx, dy, KindOf[T]())
	}
	return Point[T]{FromFloat64[T](x), FromFloat64[T](y)}, nil
}
