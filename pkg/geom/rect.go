package geom

import (
	"fmt"

	"github.com/go-drift/planar/pkg/errors"
)

// Rect represents an axis-aligned rectangle stored as its bottom-left
// (minimum) and top-right (maximum) corners.
//
// Every Rect obtained from this package satisfies Left < Right and
// Bottom < Top, and its Width and Height fit in T. The zero Rect is degenerate; build Rects with NewRect,
// RectFromCenter, RectFromSize or RectFromEdges.
type Rect[T Scalar] struct {
	bottomLeft Point[T]
	topRight   Point[T]
}

// NewRect constructs a Rect spanning two opposite corners given in any
// order.
func NewRect[T Scalar](c1, c2 Point[T]) (Rect[T], error) {
	return normalizedRect("geom.NewRect", c1, c2)
}

// RectFromCenter constructs a Rect of the given extents centered on center.
// The half extents are formed with Vector.Scale, so odd integer extents
// truncate. Corners that T cannot hold are an error.
func RectFromCenter[T Scalar](center Point[T], width, height T) (Rect[T], error) {
	const op = "geom.RectFromCenter"
	if err := checkExtents(op, width, height); err != nil {
		return Rect[T]{}, err
	}
	half := Vec(width, height).Scale(0.5)
	hx, hy := float64(half.X), float64(half.Y)
	bl, err := offset(op, center, -hx, -hy)
	if err != nil {
		return Rect[T]{}, err
	}
	tr, err := offset(op, center, hx, hy)
	if err != nil {
		return Rect[T]{}, err
	}
	var r Rect[T]
	if err := r.commit(op, bl, tr); err != nil {
		return Rect[T]{}, err
	}
	return r, nil
}

// RectFromSize constructs a Rect with its bottom-left corner at the origin.
func RectFromSize[T Scalar](width, height T) (Rect[T], error) {
	const op = "geom.RectFromSize"
	if err := checkExtents(op, width, height); err != nil {
		return Rect[T]{}, err
	}
	return normalizedRect(op, Point[T]{}, Point[T]{width, height})
}

// RectFromEdges constructs a Rect from its four edge coordinates. Swapped
// edges are normalized like swapped corners in NewRect.
func RectFromEdges[T Scalar](top, left, right, bottom T) (Rect[T], error) {
	return normalizedRect("geom.RectFromEdges", Point[T]{left, bottom}, Point[T]{right, top})
}

// ConvertRect returns r expressed in kind To. Narrowing can collapse an
// extent, so the result is validated again.
func ConvertRect[To, From Scalar](r Rect[From]) (Rect[To], error) {
	return normalizedRect("geom.ConvertRect", ConvertPoint[To](r.bottomLeft), ConvertPoint[To](r.topRight))
}

func checkExtents[T Scalar](op string, width, height T) error {
	if !(width > 0) || !(height > 0) {
		return errors.Domainf(op, "width and height must be positive, was %vx%v", width, height)
	}
	return nil
}

func normalizedRect[T Scalar](op string, c1, c2 Point[T]) (Rect[T], error) {
	var r Rect[T]
	left, right := ordered(c1.X, c2.X)
	bottom, top := ordered(c1.Y, c2.Y)
	if err := r.commit(op, Point[T]{left, bottom}, Point[T]{right, top}); err != nil {
		return Rect[T]{}, err
	}
	return r, nil
}

// commit is the only path that writes r's corners. It rejects corners that
// would leave a non-positive extent, or an extent T cannot hold, and leaves
// r untouched in that case.
func (r *Rect[T]) commit(op string, bl, tr Point[T]) error {
	if !(bl.X < tr.X) {
		return errors.Domainf(op, "left %v must be less than right %v", bl.X, tr.X)
	}
	if !(bl.Y < tr.Y) {
		return errors.Domainf(op, "bottom %v must be less than top %v", bl.Y, tr.Y)
	}
	if w := float64(tr.X) - float64(bl.X); !representable[T](w) {
		return errors.Domainf(op, "width %v overflows %s", w, KindOf[T]())
	}
	if h := float64(tr.Y) - float64(bl.Y); !representable[T](h) {
		return errors.Domainf(op, "height %v overflows %s", h, KindOf[T]())
	}
	r.bottomLeft, r.topRight = bl, tr
	return nil
}

// Top returns the maximum y coordinate.
func (r Rect[T]) Top() T { return r.topRight.Y }

// Bottom returns the minimum y coordinate.
func (r Rect[T]) Bottom() T { return r.bottomLeft.Y }

// Left returns the minimum x coordinate.
func (r Rect[T]) Left() T { return r.bottomLeft.X }

// Right returns the maximum x coordinate.
func (r Rect[T]) Right() T { return r.topRight.X }

// BottomLeft returns the (Left, Bottom) corner.
func (r Rect[T]) BottomLeft() Point[T] { return r.bottomLeft }

// TopRight returns the (Right, Top) corner.
func (r Rect[T]) TopRight() Point[T] { return r.topRight }

// BottomRight returns the (Right, Bottom) corner.
func (r Rect[T]) BottomRight() Point[T] { return Point[T]{r.topRight.X, r.bottomLeft.Y} }

// TopLeft returns the (Left, Top) corner.
func (r Rect[T]) TopLeft() Point[T] { return Point[T]{r.bottomLeft.X, r.topRight.Y} }

// Width returns Right - Left.
func (r Rect[T]) Width() T { return r.topRight.X - r.bottomLeft.X }

// Height returns Top - Bottom.
func (r Rect[T]) Height() T { return r.topRight.Y - r.bottomLeft.Y }

// Center returns the bottom-left corner offset by half the extents, halved
// in T's arithmetic.
func (r Rect[T]) Center() Point[T] {
	return r.bottomLeft.Add(r.halfExtents())
}

func (r Rect[T]) halfExtents() Vector[T] {
	return Vector[T]{r.Width() / 2, r.Height() / 2}
}

// Contains reports whether p lies inside r. Both axes are closed, so points
// on the boundary are inside.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.bottomLeft.X <= p.X && p.X <= r.topRight.X &&
		r.bottomLeft.Y <= p.Y && p.Y <= r.topRight.Y
}

// ContainsTuple is Contains for a position of any kind, compared in float64.
func (r Rect[T]) ContainsTuple(p Tuple) bool {
	x, y := p.Widen()
	left, bottom, right, top := r.Extents()
	return left <= x && x <= right && bottom <= y && y <= top
}

// Translate returns r moved by v. It fails if a moved corner leaves T's
// range.
func (r Rect[T]) Translate(v Vector[T]) (Rect[T], error) {
	const op = "geom.Rect.Translate"
	dx, dy := v.Widen()
	bl, err := offset(op, r.bottomLeft, dx, dy)
	if err != nil {
		return r, err
	}
	tr, err := offset(op, r.topRight, dx, dy)
	if err != nil {
		return r, err
	}
	out := r
	if err := out.commit(op, bl, tr); err != nil {
		return r, err
	}
	return out, nil
}

// Extents returns the edges of r as float64.
func (r Rect[T]) Extents() (left, bottom, right, top float64) {
	return float64(r.bottomLeft.X), float64(r.bottomLeft.Y), float64(r.topRight.X), float64(r.topRight.Y)
}

// Equal reports whether r and o have the same corners.
func (r Rect[T]) Equal(o Rect[T]) bool { return r == o }

// ToFloat64 returns r in the Float64 kind.
func (r Rect[T]) ToFloat64() (Rect[float64], error) { return ConvertRect[float64](r) }

// ToFloat32 returns r in the Float32 kind.
func (r Rect[T]) ToFloat32() (Rect[float32], error) { return ConvertRect[float32](r) }

// ToInt32 returns r in the Int32 kind.
func (r Rect[T]) ToInt32() (Rect[int32], error) { return ConvertRect[int32](r) }

func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect(bottomLeft=%v, topRight=%v)", r.bottomLeft, r.topRight)
}

// SetTop moves the top edge. It fails if v is not above Bottom.
func (r *Rect[T]) SetTop(v T) error {
	return r.commit("geom.Rect.SetTop", r.bottomLeft, Point[T]{r.topRight.X, v})
}

// SetBottom moves the bottom edge. It fails if v is not below Top.
func (r *Rect[T]) SetBottom(v T) error {
	return r.commit("geom.Rect.SetBottom", Point[T]{r.bottomLeft.X, v}, r.topRight)
}

// SetLeft moves the left edge. It fails if v is not left of Right.
func (r *Rect[T]) SetLeft(v T) error {
	return r.commit("geom.Rect.SetLeft", Point[T]{v, r.bottomLeft.Y}, r.topRight)
}

// SetRight moves the right edge. It fails if v is not right of Left.
func (r *Rect[T]) SetRight(v T) error {
	return r.commit("geom.Rect.SetRight", r.bottomLeft, Point[T]{v, r.topRight.Y})
}

// SetBottomLeft moves the bottom-left corner, keeping the top-right one.
func (r *Rect[T]) SetBottomLeft(p Point[T]) error {
	return r.commit("geom.Rect.SetBottomLeft", p, r.topRight)
}

// SetTopRight moves the top-right corner, keeping the bottom-left one.
func (r *Rect[T]) SetTopRight(p Point[T]) error {
	return r.commit("geom.Rect.SetTopRight", r.bottomLeft, p)
}

// SetBottomRight moves the bottom-right corner, keeping the top-left one.
func (r *Rect[T]) SetBottomRight(p Point[T]) error {
	return r.commit("geom.Rect.SetBottomRight",
		Point[T]{r.bottomLeft.X, p.Y}, Point[T]{p.X, r.topRight.Y})
}

// SetTopLeft moves the top-left corner, keeping the bottom-right one.
func (r *Rect[T]) SetTopLeft(p Point[T]) error {
	return r.commit("geom.Rect.SetTopLeft",
		Point[T]{p.X, r.bottomLeft.Y}, Point[T]{r.topRight.X, p.Y})
}

// SetCenter moves r rigidly so that Center returns c. Width and Height are
// unchanged.
func (r *Rect[T]) SetCenter(c Point[T]) error {
	const op = "geom.Rect.SetCenter"
	hx, hy := r.halfExtents().Widen()
	bl, err := offset(op, c, -hx, -hy)
	if err != nil {
		return err
	}
	tr, err := offset(op, bl, float64(r.Width()), float64(r.Height()))
	if err != nil {
		return err
	}
	return r.commit(op, bl, tr)
}

// SetWidth moves the right edge so the width becomes w.
func (r *Rect[T]) SetWidth(w T) error {
	const op = "geom.Rect.SetWidth"
	if !(w > 0) {
		return errors.Domainf(op, "width must be positive, was %v", w)
	}
	tr, err := offset(op, Point[T]{r.bottomLeft.X, r.topRight.Y}, float64(w), 0)
	if err != nil {
		return err
	}
	return r.commit(op, r.bottomLeft, tr)
}

// SetHeight moves the top edge so the height becomes h.
func (r *Rect[T]) SetHeight(h T) error {
	const op = "geom.Rect.SetHeight"
	if !(h > 0) {
		return errors.Domainf(op, "height must be positive, was %v", h)
	}
	tr, err := offset(op, Point[T]{r.topRight.X, r.bottomLeft.Y}, 0, float64(h))
	if err != nil {
		return err
	}
	return r.commit(op, r.bottomLeft, tr)
}
