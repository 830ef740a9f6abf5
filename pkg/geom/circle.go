package geom

import (
	"fmt"
	"math"

	"github.com/go-drift/planar/pkg/errors"
)

// Circle represents a closed disk. Every Circle obtained from NewCircle has
// a strictly positive radius.
type Circle[T Scalar] struct {
	center Point[T]
	radius T
}

// NewCircle constructs a Circle. It fails if radius is not positive.
func NewCircle[T Scalar](center Point[T], radius T) (Circle[T], error) {
	var c Circle[T]
	c.center = center
	if err := c.commitRadius("geom.NewCircle", radius); err != nil {
		return Circle[T]{}, err
	}
	return c, nil
}

// ConvertCircle returns c expressed in kind To. Narrowing a fractional
// radius to Int32 can reach zero, so the result is validated again.
func ConvertCircle[To, From Scalar](c Circle[From]) (Circle[To], error) {
	return NewCircle(ConvertPoint[To](c.center), Convert[To](c.radius))
}

func (c *Circle[T]) commitRadius(op string, r T) error {
	if !(r > 0) {
		return errors.Domainf(op, "radius must be positive, was %v", r)
	}
	c.radius = r
	return nil
}

// Center returns the center of c.
func (c Circle[T]) Center() Point[T] { return c.center }

// Radius returns the radius of c.
func (c Circle[T]) Radius() T { return c.radius }

// Diameter returns twice the radius. For Int32 it wraps once the radius
// exceeds half the int32 range.
func (c Circle[T]) Diameter() T { return c.radius * 2 }

// Contains reports whether p lies in the closed disk.
func (c Circle[T]) Contains(p Point[T]) bool {
	return c.center.Distance(p) <= float64(c.radius)
}

// ContainsTuple is Contains for a position of any kind, compared in float64.
func (c Circle[T]) ContainsTuple(p Tuple) bool {
	x, y := p.Widen()
	cx, cy, r := c.Disk()
	return math.Hypot(x-cx, y-cy) <= r
}

// Bounds returns the smallest Rect enclosing c. It fails when the box
// cannot be held in T: an int32 edge past the int32 range, or a float32
// radius lost to rounding at the center's magnitude.
func (c Circle[T]) Bounds() (Rect[T], error) {
	const op = "geom.Circle.Bounds"
	r := float64(c.radius)
	bl, err := offset(op, c.center, -r, -r)
	if err != nil {
		return Rect[T]{}, err
	}
	tr, err := offset(op, c.center, r, r)
	if err != nil {
		return Rect[T]{}, err
	}
	var b Rect[T]
	if err := b.commit(op, bl, tr); err != nil {
		return Rect[T]{}, err
	}
	return b, nil
}

// Disk returns the center and radius of c as float64.
func (c Circle[T]) Disk() (cx, cy, r float64) {
	return float64(c.center.X), float64(c.center.Y), float64(c.radius)
}

// Extents returns the edges of the bounding box of c as float64.
func (c Circle[T]) Extents() (left, bottom, right, top float64) {
	cx, cy, r := c.Disk()
	return cx - r, cy - r, cx + r, cy + r
}

// Equal reports whether c and o have the same center and radius.
func (c Circle[T]) Equal(o Circle[T]) bool { return c == o }

// ToFloat64 returns c in the Float64 kind.
func (c Circle[T]) ToFloat64() (Circle[float64], error) { return ConvertCircle[float64](c) }

// ToFloat32 returns c in the Float32 kind.
func (c Circle[T]) ToFloat32() (Circle[float32], error) { return ConvertCircle[float32](c) }

// ToInt32 returns c in the Int32 kind.
func (c Circle[T]) ToInt32() (Circle[int32], error) { return ConvertCircle[int32](c) }

func (c Circle[T]) String() string {
	return fmt.Sprintf("Circle(center=%v, radius=%v)", c.center, c.radius)
}

// SetCenter moves c to p.
func (c *Circle[T]) SetCenter(p Point[T]) {
	c.center = p
}

// SetCenterXY moves c to (x, y).
func (c *Circle[T]) SetCenterXY(x, y T) {
	c.center = Point[T]{x, y}
}

// SetRadius changes the radius. On error c is unchanged.
func (c *Circle[T]) SetRadius(r T) error {
	return c.commitRadius("geom.Circle.SetRadius", r)
}

// SetDiameter sets the radius to d/2 in T's arithmetic, so an Int32 diameter
// of 1 is rejected because its radius truncates to 0.
func (c *Circle[T]) SetDiameter(d T) error {
	const op = "geom.Circle.SetDiameter"
	if !(d > 0) {
		return errors.Domainf(op, "diameter must be positive, was %v", d)
	}
	return c.commitRadius(op, d/2)
}
