package canvas

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle with position and size.
type Rect struct {
	X, Y, W, H float64
}

// RectXYWH creates a rectangle from position and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectLTRB creates a rectangle from edges. Inverted edges yield an empty
// rectangle.
func RectLTRB(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// RectWH creates a rectangle anchored at the origin.
func RectWH(w, h float64) Rect {
	return Rect{W: w, H: h}
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() Point { return Pt(r.X+r.W/2, r.Y+r.H/2) }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlap of two rectangles.
func (r Rect) Intersect(o Rect) Rect {
	return RectLTRB(
		math.Max(r.X, o.X),
		math.Max(r.Y, o.Y),
		math.Min(r.Right(), o.Right()),
		math.Min(r.Bottom(), o.Bottom()),
	)
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

// Union returns the smallest rectangle containing both. Empty inputs are
// ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return RectLTRB(
		math.Min(r.X, o.X),
		math.Min(r.Y, o.Y),
		math.Max(r.Right(), o.Right()),
		math.Max(r.Bottom(), o.Bottom()),
	)
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// ImageRect returns the integer rectangle enclosing r.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

// FromImageRect converts an integer rectangle.
func FromImageRect(r image.Rectangle) Rect {
	return RectLTRB(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y))
}

// RRect is a rectangle with elliptical corner radii. Zero radii describe a
// plain rectangle.
type RRect struct {
	Rect   Rect
	RX, RY float64
}

// RRectXY creates a rounded rectangle with uniform corner radii, clamped to
// half the rectangle size.
func RRectXY(r Rect, rx, ry float64) RRect {
	rx = math.Min(math.Max(rx, 0), r.W/2)
	ry = math.Min(math.Max(ry, 0), r.H/2)
	return RRect{Rect: r, RX: rx, RY: ry}
}

// IsRect reports whether the rounded rectangle has no rounding.
func (rr RRect) IsRect() bool { return rr.RX <= 0 || rr.RY <= 0 }

// Path returns the outline as a path.
func (rr RRect) Path() *Path {
	p := NewPath()
	if rr.IsRect() {
		p.Rectangle(rr.Rect.X, rr.Rect.Y, rr.Rect.W, rr.Rect.H)
	} else {
		p.RoundedRectangle(rr.Rect.X, rr.Rect.Y, rr.Rect.W, rr.Rect.H, rr.RX, rr.RY)
	}
	return p
}
