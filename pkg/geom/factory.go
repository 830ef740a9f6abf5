package geom

// Factory constructs geometry values of kind T. Its scalar parameters take
// float64 so call sites can stay agnostic of the kind they build; values are
// narrowed with FromFloat64. Tuple parameters accept Points or Vectors of
// any kind.
type Factory[T Scalar] struct{}

// Per-kind factories.
var (
	Float64s Factory[float64]
	Float32s Factory[float32]
	Int32s   Factory[int32]
)

// Kind returns the kind f builds.
func (Factory[T]) Kind() Kind { return KindOf[T]() }

// Point constructs a Point at (x, y).
func (Factory[T]) Point(x, y float64) Point[T] {
	return Point[T]{FromFloat64[T](x), FromFloat64[T](y)}
}

// PointOf returns a kind-converting Point copy of src.
func (Factory[T]) PointOf(src Tuple) Point[T] { return PointFrom[T](src) }

// Vector constructs a Vector (x, y).
func (Factory[T]) Vector(x, y float64) Vector[T] {
	return Vector[T]{FromFloat64[T](x), FromFloat64[T](y)}
}

// VectorOf returns a kind-converting Vector copy of src.
func (Factory[T]) VectorOf(src Tuple) Vector[T] { return VectorFrom[T](src) }

// Rect constructs a Rect spanning two opposite corners.
func (Factory[T]) Rect(c1, c2 Tuple) (Rect[T], error) {
	return NewRect(PointFrom[T](c1), PointFrom[T](c2))
}

// RectCentered constructs a Rect of the given extents around center.
func (Factory[T]) RectCentered(center Tuple, width, height float64) (Rect[T], error) {
	return RectFromCenter(PointFrom[T](center), FromFloat64[T](width), FromFloat64[T](height))
}

// RectSized constructs a Rect anchored at the origin.
func (Factory[T]) RectSized(width, height float64) (Rect[T], error) {
	return RectFromSize(FromFloat64[T](width), FromFloat64[T](height))
}

// RectEdges constructs a Rect from its edges.
func (Factory[T]) RectEdges(top, left, right, bottom float64) (Rect[T], error) {
	return RectFromEdges(FromFloat64[T](top), FromFloat64[T](left), FromFloat64[T](right), FromFloat64[T](bottom))
}

// Circle constructs a Circle.
func (Factory[T]) Circle(center Tuple, radius float64) (Circle[T], error) {
	return NewCircle(PointFrom[T](center), FromFloat64[T](radius))
}
