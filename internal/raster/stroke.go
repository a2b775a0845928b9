package raster

import "math"

// Cap mirrors the paint's line cap for stroke expansion.
type Cap uint8

const (
	// CapButt ends strokes flush with the endpoint.
	CapButt Cap = iota
	// CapRound ends strokes with a semicircle.
	CapRound
	// CapSquare extends strokes by half the width.
	CapSquare
)

// kappa is the cubic control distance for quarter-circle approximation.
const kappa = 0.5522847498307936

// StrokeSegs expands polyline contours into fillable outline segments for a
// stroke of the given width. Each polyline segment becomes a quad; joints
// and round caps add circles. Overlap is harmless under non-zero winding.
func StrokeSegs(contours [][]Point, closed []bool, width float32, cap Cap) []Seg {
	half := width / 2
	if half <= 0 {
		half = 0.5
	}
	var segs []Seg

	for ci, pts := range contours {
		if len(pts) < 2 {
			if len(pts) == 1 && cap == CapRound {
				segs = appendCircle(segs, pts[0], half)
			}
			continue
		}
		isClosed := ci < len(closed) && closed[ci]

		for i := 0; i+1 < len(pts); i++ {
			segs = appendSegmentQuad(segs, pts[i], pts[i+1], half, cap, capStart(i, isClosed), capEnd(i, len(pts), isClosed))
		}

		// Joint circles keep adjacent quads visually connected.
		for i := 1; i+1 < len(pts); i++ {
			segs = appendCircle(segs, pts[i], half)
		}
		if isClosed {
			segs = appendCircle(segs, pts[0], half)
		} else if cap == CapRound {
			segs = appendCircle(segs, pts[0], half)
			segs = appendCircle(segs, pts[len(pts)-1], half)
		}
	}
	return segs
}

func capStart(i int, closed bool) bool { return i == 0 && !closed }

func capEnd(i, n int, closed bool) bool { return i+2 == n && !closed }

// appendSegmentQuad adds the rectangle covering one stroked line segment.
// Square caps extend the rectangle past endpoints that terminate an open
// contour.
func appendSegmentQuad(segs []Seg, a, b Point, half float32, cap Cap, capA, capB bool) []Seg {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return segs
	}
	ux := float32(dx / length)
	uy := float32(dy / length)
	// Perpendicular.
	px := -uy * half
	py := ux * half

	if cap == CapSquare {
		if capA {
			a = Point{a.X - ux*half, a.Y - uy*half}
		}
		if capB {
			b = Point{b.X + ux*half, b.Y + uy*half}
		}
	}

	return append(segs,
		MoveTo(Point{a.X + px, a.Y + py}),
		LineTo(Point{b.X + px, b.Y + py}),
		LineTo(Point{b.X - px, b.Y - py}),
		LineTo(Point{a.X - px, a.Y - py}),
		Close(),
	)
}

// appendCircle adds a full circle outline around c.
func appendCircle(segs []Seg, c Point, r float32) []Seg {
	k := float32(kappa) * r
	return append(segs,
		MoveTo(Point{c.X + r, c.Y}),
		CubeTo(Point{c.X + r, c.Y + k}, Point{c.X + k, c.Y + r}, Point{c.X, c.Y + r}),
		CubeTo(Point{c.X - k, c.Y + r}, Point{c.X - r, c.Y + k}, Point{c.X - r, c.Y}),
		CubeTo(Point{c.X - r, c.Y - k}, Point{c.X - k, c.Y - r}, Point{c.X, c.Y - r}),
		CubeTo(Point{c.X + k, c.Y - r}, Point{c.X + r, c.Y - k}, Point{c.X + r, c.Y}),
		Close(),
	)
}
