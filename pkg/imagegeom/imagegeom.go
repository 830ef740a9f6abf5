// Package imagegeom converts planar geometry values to and from the types
// used by the Go image ecosystem: image.Point and image.Rectangle, the
// golang.org/x/image/math/f64 and f32 vectors, and 26.6 fixed-point values
// from golang.org/x/image/math/fixed.
//
// image.Rectangle and fixed.Rectangle26_6 are half-open while geom.Rect is
// closed; conversions map Min to BottomLeft and Max to TopRight without
// adjusting either, so the coordinates round-trip exactly.
package imagegeom

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/planar/pkg/errors"
	"github.com/go-drift/planar/pkg/geom"
)

// ImagePoint returns p as an image.Point.
func ImagePoint(p geom.Point[int32]) image.Point {
	return image.Point{X: int(p.X), Y: int(p.Y)}
}

// PointFromImage returns p as a Point, saturating coordinates that do not
// fit in int32.
func PointFromImage(p image.Point) geom.Point[int32] {
	return geom.Pt(narrowInt(p.X), narrowInt(p.Y))
}

// ImageRect returns r as an image.Rectangle.
func ImageRect(r geom.Rect[int32]) image.Rectangle {
	return image.Rectangle{Min: ImagePoint(r.BottomLeft()), Max: ImagePoint(r.TopRight())}
}

// RectFromImage returns r as a Rect. An empty image.Rectangle has no Rect
// equivalent and yields a KindDomain error.
func RectFromImage(r image.Rectangle) (geom.Rect[int32], error) {
	if r.Empty() {
		return geom.Rect[int32]{}, errors.Domainf("imagegeom.RectFromImage", "empty rectangle %v", r)
	}
	return geom.NewRect(PointFromImage(r.Min), PointFromImage(r.Max))
}

func narrowInt(v int) int32 {
	return geom.FromFloat64[int32](float64(v))
}

// F64 returns v as an f64.Vec2.
func F64(v geom.Vector[float64]) f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

// VectorFromF64 returns v as a Vector.
func VectorFromF64(v f64.Vec2) geom.Vector[float64] {
	return geom.Vec(v[0], v[1])
}

// F32 returns v as an f32.Vec2.
func F32(v geom.Vector[float32]) f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// VectorFromF32 returns v as a Vector.
func VectorFromF32(v f32.Vec2) geom.Vector[float32] {
	return geom.Vec(v[0], v[1])
}

// Transform applies the affine transform m to p. m is row-major:
// (x', y') = (m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]).
func Transform(m f64.Aff3, p geom.Point[float64]) geom.Point[float64] {
	return geom.Pt(
		m[0]*p.X+m[1]*p.Y+m[2],
		m[3]*p.X+m[4]*p.Y+m[5],
	)
}

// TransformVector applies the linear part of m to v, ignoring translation.
func TransformVector(m f64.Aff3, v geom.Vector[float64]) geom.Vector[float64] {
	return geom.Vec(
		m[0]*v.X+m[1]*v.Y,
		m[3]*v.X+m[4]*v.Y,
	)
}

// Fixed returns p in 26.6 fixed point, rounding to the nearest 1/64. It
// fails with a KindConversion error if a coordinate is out of range.
func Fixed[T geom.Scalar](p geom.Point[T]) (fixed.Point26_6, error) {
	const op = "imagegeom.Fixed"
	x, err := toInt26_6(op, float64(p.X))
	if err != nil {
		return fixed.Point26_6{}, err
	}
	y, err := toInt26_6(op, float64(p.Y))
	if err != nil {
		return fixed.Point26_6{}, err
	}
	return fixed.Point26_6{X: x, Y: y}, nil
}

// PointFromFixed returns p as a Point of kind T.
func PointFromFixed[T geom.Scalar](p fixed.Point26_6) geom.Point[T] {
	return geom.Pt(fromInt26_6[T](p.X), fromInt26_6[T](p.Y))
}

// FixedRect returns r in 26.6 fixed point.
func FixedRect[T geom.Scalar](r geom.Rect[T]) (fixed.Rectangle26_6, error) {
	lo, err := Fixed(r.BottomLeft())
	if err != nil {
		return fixed.Rectangle26_6{}, err
	}
	hi, err := Fixed(r.TopRight())
	if err != nil {
		return fixed.Rectangle26_6{}, err
	}
	return fixed.Rectangle26_6{Min: lo, Max: hi}, nil
}

// RectFromFixed returns r as a Rect of kind T. Narrowing to Int32 truncates
// toward zero, which can collapse a sub-unit rectangle and yield a
// KindDomain error.
func RectFromFixed[T geom.Scalar](r fixed.Rectangle26_6) (geom.Rect[T], error) {
	return geom.NewRect(PointFromFixed[T](r.Min), PointFromFixed[T](r.Max))
}

func toInt26_6(op string, f float64) (fixed.Int26_6, error) {
	v := math.Round(f * 64)
	if math.IsNaN(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, errors.Conversion(op, fmt.Errorf("%v does not fit in 26.6 fixed point", f))
	}
	return fixed.Int26_6(v), nil
}

func fromInt26_6[T geom.Scalar](v fixed.Int26_6) T {
	return geom.FromFloat64[T](float64(v) / 64)
}
