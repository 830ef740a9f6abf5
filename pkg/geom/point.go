package geom

import (
	"fmt"
	"math"
)

// Point represents an absolute 2D position.
type Point[T Scalar] struct {
	X T
	Y T
}

// Pt constructs a Point from its coordinates.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// PointFrom returns a kind-converting copy of src.
func PointFrom[T Scalar](src Tuple) Point[T] {
	x, y := narrow2[T](src)
	return Point[T]{X: x, Y: y}
}

// ConvertPoint returns p expressed in kind To.
func ConvertPoint[To, From Scalar](p Point[From]) Point[To] {
	return Point[To]{X: Convert[To](p.X), Y: Convert[To](p.Y)}
}

// XY returns the coordinates of p.
func (p Point[T]) XY() (T, T) { return p.X, p.Y }

// Widen returns the coordinates of p as float64.
func (p Point[T]) Widen() (float64, float64) { return float64(p.X), float64(p.Y) }

// Add returns p translated by v.
func (p Point[T]) Add(v Vector[T]) Point[T] { return Point[T]{p.X + v.X, p.Y + v.Y} }

// Sub returns p translated by -v.
func (p Point[T]) Sub(v Vector[T]) Point[T] { return Point[T]{p.X - v.X, p.Y - v.Y} }

// VectorTo returns the displacement from p to q.
func (p Point[T]) VectorTo(q Point[T]) Vector[T] { return Vector[T]{q.X - p.X, q.Y - p.Y} }

// Distance returns the euclidean distance between p and q. It is computed
// and reported in float64 for every kind.
func (p Point[T]) Distance(q Point[T]) float64 {
	return math.Hypot(float64(q.X)-float64(p.X), float64(q.Y)-float64(p.Y))
}

// ToVector reinterprets p as a displacement from the origin.
func (p Point[T]) ToVector() Vector[T] { return Vector[T](p) }

// ToFloat64 returns p in the Float64 kind.
func (p Point[T]) ToFloat64() Point[float64] { return ConvertPoint[float64](p) }

// ToFloat32 returns p in the Float32 kind.
func (p Point[T]) ToFloat32() Point[float32] { return ConvertPoint[float32](p) }

// ToInt32 returns p in the Int32 kind.
func (p Point[T]) ToInt32() Point[int32] { return ConvertPoint[int32](p) }

func (p Point[T]) String() string {
	return fmt.Sprintf("Point(%v, %v)", p.X, p.Y)
}

// Set overwrites both coordinates.
func (p *Point[T]) Set(x, y T) {
	p.X, p.Y = x, y
}

// SetFrom overwrites p with a kind-converted copy of src.
func (p *Point[T]) SetFrom(src Tuple) {
	p.X, p.Y = narrow2[T](src)
}

// AddAssign translates p by v in place and returns p.
func (p *Point[T]) AddAssign(v Vector[T]) *Point[T] {
	*p = p.Add(v)
	return p
}

// SubAssign translates p by -v in place and returns p.
func (p *Point[T]) SubAssign(v Vector[T]) *Point[T] {
	*p = p.Sub(v)
	return p
}
