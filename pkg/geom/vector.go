package geom

import (
	"fmt"
	"math"

	"github.com/go-drift/planar/pkg/errors"
)

// Vector represents a 2D displacement or direction.
type Vector[T Scalar] struct {
	X T
	Y T
}

// Vec constructs a Vector from its components.
func Vec[T Scalar](x, y T) Vector[T] {
	return Vector[T]{X: x, Y: y}
}

// VectorFrom returns a kind-converting copy of src.
func VectorFrom[T Scalar](src Tuple) Vector[T] {
	x, y := narrow2[T](src)
	return Vector[T]{X: x, Y: y}
}

// ConvertVector returns v expressed in kind To.
func ConvertVector[To, From Scalar](v Vector[From]) Vector[To] {
	return Vector[To]{X: Convert[To](v.X), Y: Convert[To](v.Y)}
}

// XY returns the components of v.
func (v Vector[T]) XY() (T, T) { return v.X, v.Y }

// Widen returns the components of v as float64.
func (v Vector[T]) Widen() (float64, float64) { return float64(v.X), float64(v.Y) }

// Add returns v + o.
func (v Vector[T]) Add(o Vector[T]) Vector[T] { return Vector[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] { return Vector[T]{v.X - o.X, v.Y - o.Y} }

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] { return Vector[T]{-v.X, -v.Y} }

// Scale returns v with each component multiplied by factor. The product is
// formed in float64 and narrowed back to T, so integer vectors truncate:
// (3, 4) scaled by 0.5 is (1, 2).
func (v Vector[T]) Scale(factor float64) Vector[T] {
	return Vector[T]{
		X: FromFloat64[T](float64(v.X) * factor),
		Y: FromFloat64[T](float64(v.Y) * factor),
	}
}

// Mul is an alias for Scale.
func (v Vector[T]) Mul(factor float64) Vector[T] { return v.Scale(factor) }

// Div returns v scaled by 1/divisor.
func (v Vector[T]) Div(divisor float64) Vector[T] { return v.Scale(1 / divisor) }

// Dot returns the dot product of v and o in T's own arithmetic.
func (v Vector[T]) Dot(o Vector[T]) T { return v.X*o.X + v.Y*o.Y }

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vector[T]) Perp() Vector[T] { return Vector[T]{-v.Y, v.X} }

// Length returns the euclidean magnitude of v, computed in float64.
func (v Vector[T]) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// IsZero reports whether both components are zero.
func (v Vector[T]) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Lengthened returns v rescaled to magnitude l. It fails if l is not
// positive, v has no direction, or every component truncates to zero.
func (v Vector[T]) Lengthened(l float64) (Vector[T], error) {
	return v.rescaled("geom.Vector.Lengthened", l)
}

// Normalized returns v rescaled to unit length. Int32 components truncate,
// so only axis-aligned int32 vectors normalize; a diagonal such as (3, 4)
// would collapse to (0, 0) and is rejected.
func (v Vector[T]) Normalized() (Vector[T], error) {
	return v.rescaled("geom.Vector.Normalized", 1)
}

func (v Vector[T]) rescaled(op string, l float64) (Vector[T], error) {
	if !(l > 0) {
		return v, errors.Domainf(op, "length must be positive, was %v", l)
	}
	cur := v.Length()
	if cur == 0 {
		return v, errors.Domain(op, errors.ErrZeroVector)
	}
	out := v.Scale(l / cur)
	if out.IsZero() {
		return v, errors.Domainf(op, "%v at length %v truncates to zero", v, l)
	}
	return out, nil
}

// ToPoint reinterprets v as a position.
func (v Vector[T]) ToPoint() Point[T] { return Point[T](v) }

// ToFloat64 returns v in the Float64 kind.
func (v Vector[T]) ToFloat64() Vector[float64] { return ConvertVector[float64](v) }

// ToFloat32 returns v in the Float32 kind.
func (v Vector[T]) ToFloat32() Vector[float32] { return ConvertVector[float32](v) }

// ToInt32 returns v in the Int32 kind.
func (v Vector[T]) ToInt32() Vector[int32] { return ConvertVector[int32](v) }

func (v Vector[T]) String() string {
	return fmt.Sprintf("Vector(%v, %v)", v.X, v.Y)
}

// Set overwrites both components.
func (v *Vector[T]) Set(x, y T) {
	v.X, v.Y = x, y
}

// SetFrom overwrites v with a kind-converted copy of src.
func (v *Vector[T]) SetFrom(src Tuple) {
	v.X, v.Y = narrow2[T](src)
}

// AddAssign adds o to v in place and returns v.
func (v *Vector[T]) AddAssign(o Vector[T]) *Vector[T] {
	*v = v.Add(o)
	return v
}

// SubAssign subtracts o from v in place and returns v.
func (v *Vector[T]) SubAssign(o Vector[T]) *Vector[T] {
	*v = v.Sub(o)
	return v
}

// ScaleAssign scales v in place and returns v.
func (v *Vector[T]) ScaleAssign(factor float64) *Vector[T] {
	*v = v.Scale(factor)
	return v
}

// DivAssign scales v by 1/divisor in place and returns v.
func (v *Vector[T]) DivAssign(divisor float64) *Vector[T] {
	*v = v.Div(divisor)
	return v
}

// Normalize rescales v to unit length in place. On error v is unchanged.
func (v *Vector[T]) Normalize() error {
	n, err := v.Normalized()
	if err != nil {
		return errors.Domain("geom.Vector.Normalize", stripOp(err))
	}
	*v = n
	return nil
}

// SetLength rescales v to magnitude l in place. On error v is unchanged.
func (v *Vector[T]) SetLength(l float64) error {
	n, err := v.Lengthened(l)
	if err != nil {
		return errors.Domain("geom.Vector.SetLength", stripOp(err))
	}
	*v = n
	return nil
}

// stripOp returns the cause of a GeomError so it can be re-labelled with the
// caller's operation name.
func stripOp(err error) error {
	if ge, ok := err.(*errors.GeomError); ok {
		return ge.Err
	}
	return err
}
