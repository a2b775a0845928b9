// Package raster provides CPU coverage rasterization for the software
// backend. Shapes arrive as flat segment lists in device space; coverage is
// accumulated with golang.org/x/image/vector and blended into RGBA pixels
// under an optional clip mask.
package raster

import (
	"image"

	"golang.org/x/image/vector"
)

// Point is a device-space coordinate.
type Point struct {
	X, Y float32
}

// Op identifies a path segment verb.
type Op uint8

const (
	// OpMoveTo starts a new contour at Args[0].
	OpMoveTo Op = iota
	// OpLineTo draws a line to Args[0].
	OpLineTo
	// OpQuadTo draws a quadratic curve through Args[0] to Args[1].
	OpQuadTo
	// OpCubeTo draws a cubic curve through Args[0], Args[1] to Args[2].
	OpCubeTo
	// OpClose closes the current contour.
	OpClose
)

// Seg is one path segment. Only the leading Args entries for the verb are
// meaningful.
type Seg struct {
	Op   Op
	Args [3]Point
}

// MoveTo returns a move segment.
func MoveTo(p Point) Seg { return Seg{Op: OpMoveTo, Args: [3]Point{p}} }

// LineTo returns a line segment.
func LineTo(p Point) Seg { return Seg{Op: OpLineTo, Args: [3]Point{p}} }

// QuadTo returns a quadratic segment.
func QuadTo(c, p Point) Seg { return Seg{Op: OpQuadTo, Args: [3]Point{c, p}} }

// CubeTo returns a cubic segment.
func CubeTo(c1, c2, p Point) Seg { return Seg{Op: OpCubeTo, Args: [3]Point{c1, c2, p}} }

// Close returns a close segment.
func Close() Seg { return Seg{Op: OpClose} }

// SegBounds returns the integer bounding box of all segment coordinates,
// conservatively including control points.
func SegBounds(segs []Seg) image.Rectangle {
	first := true
	var minX, minY, maxX, maxY float32
	grow := func(p Point) {
		if first {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			first = false
			return
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	for _, s := range segs {
		switch s.Op {
		case OpMoveTo, OpLineTo:
			grow(s.Args[0])
		case OpQuadTo:
			grow(s.Args[0])
			grow(s.Args[1])
		case OpCubeTo:
			grow(s.Args[0])
			grow(s.Args[1])
			grow(s.Args[2])
		}
	}
	if first {
		return image.Rectangle{}
	}
	return image.Rect(
		int(floor32(minX)), int(floor32(minY)),
		int(ceil32(maxX)), int(ceil32(maxY)),
	)
}

func floor32(v float32) float32 {
	f := float32(int32(v))
	if f > v {
		f--
	}
	return f
}

func ceil32(v float32) float32 {
	c := float32(int32(v))
	if c < v {
		c++
	}
	return c
}

// Rasterize accumulates the segments into a fresh width x height alpha
// mask using the non-zero winding rule with anti-aliased edges.
func Rasterize(segs []Seg, width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 || len(segs) == 0 {
		return mask
	}

	r := vector.NewRasterizer(width, height)
	pen := false
	for _, s := range segs {
		switch s.Op {
		case OpMoveTo:
			r.MoveTo(s.Args[0].X, s.Args[0].Y)
			pen = true
		case OpLineTo:
			if pen {
				r.LineTo(s.Args[0].X, s.Args[0].Y)
			}
		case OpQuadTo:
			if pen {
				r.QuadTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y)
			}
		case OpCubeTo:
			if pen {
				r.CubeTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y,
					s.Args[2].X, s.Args[2].Y)
			}
		case OpClose:
			if pen {
				r.ClosePath()
			}
		}
	}
	if !pen {
		return mask
	}
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// RasterizeRect writes an axis-aligned rectangle into a fresh alpha mask
// with exact fractional edge coverage.
func RasterizeRect(x0, y0, x1, y1 float32, width, height int) *image.Alpha {
	segs := []Seg{
		MoveTo(Point{x0, y0}),
		LineTo(Point{x1, y0}),
		LineTo(Point{x1, y1}),
		LineTo(Point{x0, y1}),
		Close(),
	}
	return Rasterize(segs, width, height)
}
