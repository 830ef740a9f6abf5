// Package collision provides intersection predicates between rectangles and
// circles.
//
// All tests use closed intervals: shapes that only touch are colliding.
// Comparisons are carried out in float64, which represents every geom
// scalar kind exactly, so the two arguments may be of different kinds.
package collision

import (
	"math"

	"github.com/go-drift/planar/pkg/geom"
)

// Box is a shape with axis-aligned extents. geom.Rect and geom.Circle of
// every kind implement it.
type Box interface {
	Extents() (left, bottom, right, top float64)
}

// Disk is a shape with a center and radius. geom.Circle of every kind
// implements it.
type Disk interface {
	Box
	Disk() (cx, cy, r float64)
}

// Rects reports whether two rectangles intersect.
func Rects[A, B geom.Scalar](r1 geom.Rect[A], r2 geom.Rect[B]) bool {
	return boxBox(r1, r2)
}

// RectCircle reports whether a rectangle and a circle intersect.
func RectCircle[A, B geom.Scalar](r geom.Rect[A], c geom.Circle[B]) bool {
	return boxDisk(r, c)
}

// CircleRect is RectCircle with its arguments swapped.
func CircleRect[A, B geom.Scalar](c geom.Circle[A], r geom.Rect[B]) bool {
	return boxDisk(r, c)
}

// Circles reports whether two circles intersect.
func Circles[A, B geom.Scalar](c1 geom.Circle[A], c2 geom.Circle[B]) bool {
	return diskDisk(c1, c2)
}

// Collide reports whether a and b intersect. Shapes implementing Disk are
// tested as circles, everything else as a box.
func Collide(a, b Box) bool {
	da, aDisk := a.(Disk)
	db, bDisk := b.(Disk)
	switch {
	case aDisk && bDisk:
		return diskDisk(da, db)
	case aDisk:
		return boxDisk(b, da)
	case bDisk:
		return boxDisk(a, db)
	default:
		return boxBox(a, b)
	}
}

// Any reports whether s collides with at least one of others.
func Any(s Box, others ...Box) bool {
	for _, o := range others {
		if Collide(s, o) {
			return true
		}
	}
	return false
}

func boxBox(a, b Box) bool {
	al, ab, ar, at := a.Extents()
	bl, bb, br, bt := b.Extents()
	return ar >= bl && al <= br && ab <= bt && at >= bb
}

func boxDisk(b Box, d Disk) bool {
	left, bottom, right, top := b.Extents()
	cx, cy, r := d.Disk()
	nx := geom.Clamp(cx, left, right)
	ny := geom.Clamp(cy, bottom, top)
	return math.Hypot(nx-cx, ny-cy) <= r
}

func diskDisk(a, b Disk) bool {
	ax, ay, ar := a.Disk()
	bx, by, br := b.Disk()
	return math.Hypot(bx-ax, by-ay) <= ar+br
}
