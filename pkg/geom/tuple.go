package geom

// Tuple is implemented by every Point and Vector of every kind. Widen
// returns the coordinates as float64, which is exact for all kinds, and is
// what kind-converting constructors read from.
type Tuple interface {
	Widen() (x, y float64)
}

// Tuple2 is the read-only coordinate pair shared by Point and Vector.
type Tuple2[T Scalar] interface {
	Tuple
	XY() (x, y T)
}

// MutableTuple2 is a coordinate pair that can be overwritten in place.
// *Point[T] and *Vector[T] implement it.
type MutableTuple2[T Scalar] interface {
	Tuple2[T]
	Set(x, y T)
	SetFrom(src Tuple)
}

// narrow2 converts a kind-erased tuple to kind T.
func narrow2[T Scalar](src Tuple) (T, T) {
	x, y := src.Widen()
	return FromFloat64[T](x), FromFloat64[T](y)
}
