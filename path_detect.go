package canvas

import "math"

// detectTolerance is the maximum allowed coordinate error when matching a
// path against a known shape structure.
const detectTolerance = 1e-3

// AsRRect reports whether the path is structurally an axis-aligned
// rectangle or rounded rectangle, returning the equivalent RRect. Plain
// rectangles come back with zero radii. Clip handling uses this to keep
// rect-shaped paths on the cheaper rrect route.
func (p *Path) AsRRect() (RRect, bool) {
	if p == nil {
		return RRect{}, false
	}
	elems := p.elements

	// Rectangle: MoveTo + 3x LineTo + Close.
	if len(elems) == 5 {
		if r, ok := detectRect(elems); ok {
			return RRect{Rect: r}, true
		}
	}

	// Rounded rectangle: MoveTo + (LineTo + CubicTo)*4 + Close, the exact
	// structure RoundedRectangle emits.
	if len(elems) == 10 {
		return detectRRect(elems)
	}

	return RRect{}, false
}

func detectRect(elems []PathElement) (Rect, bool) {
	move, ok := elems[0].(MoveTo)
	if !ok {
		return Rect{}, false
	}

	corners := [4]Point{move.Point}
	for i := 1; i <= 3; i++ {
		l, ok := elems[i].(LineTo)
		if !ok {
			return Rect{}, false
		}
		corners[i] = l.Point
	}

	if _, ok := elems[4].(Close); !ok {
		return Rect{}, false
	}

	// Each consecutive edge must be horizontal or vertical.
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		dx := math.Abs(corners[i].X - corners[j].X)
		dy := math.Abs(corners[i].Y - corners[j].Y)
		if dx > detectTolerance && dy > detectTolerance {
			return Rect{}, false
		}
	}

	minX, maxX := corners[0].X, corners[0].X
	minY, maxY := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		maxX = math.Max(maxX, c.X)
		minY = math.Min(minY, c.Y)
		maxY = math.Max(maxY, c.Y)
	}

	if maxX-minX < detectTolerance || maxY-minY < detectTolerance {
		return Rect{}, false
	}
	return RectLTRB(minX, minY, maxX, maxY), true
}

func detectRRect(elems []PathElement) (RRect, bool) {
	move, ok := elems[0].(MoveTo)
	if !ok {
		return RRect{}, false
	}

	var linePoints [4]Point
	var arcs [4]CubicTo
	for i := 0; i < 4; i++ {
		lt, ok := elems[1+i*2].(LineTo)
		if !ok {
			return RRect{}, false
		}
		linePoints[i] = lt.Point

		ct, ok := elems[2+i*2].(CubicTo)
		if !ok {
			return RRect{}, false
		}
		arcs[i] = ct
	}
	if _, ok := elems[9].(Close); !ok {
		return RRect{}, false
	}

	// Edges must be axis-aligned: top, right, bottom, left in order.
	topY := move.Point.Y
	if math.Abs(linePoints[0].Y-topY) > detectTolerance {
		return RRect{}, false
	}
	rightX := arcs[0].Point.X
	if math.Abs(linePoints[1].X-rightX) > detectTolerance {
		return RRect{}, false
	}
	bottomY := arcs[1].Point.Y
	if math.Abs(linePoints[2].Y-bottomY) > detectTolerance {
		return RRect{}, false
	}
	leftX := arcs[2].Point.X
	if math.Abs(linePoints[3].X-leftX) > detectTolerance {
		return RRect{}, false
	}

	w := rightX - leftX
	h := bottomY - topY
	if w < detectTolerance || h < detectTolerance {
		return RRect{}, false
	}

	// Horizontal radius from the top edge insets, which must agree.
	rx1 := move.Point.X - leftX
	rx2 := rightX - linePoints[0].X
	if rx1 < 0 || rx2 < 0 || math.Abs(rx1-rx2) > detectTolerance {
		return RRect{}, false
	}
	rx := (rx1 + rx2) / 2

	// Vertical radius from the right edge insets.
	ry1 := arcs[0].Point.Y - topY
	ry2 := bottomY - linePoints[1].Y
	if ry1 < 0 || ry2 < 0 || math.Abs(ry1-ry2) > detectTolerance {
		return RRect{}, false
	}
	ry := (ry1 + ry2) / 2

	return RRect{Rect: RectLTRB(leftX, topY, rightX, bottomY), RX: rx, RY: ry}, true
}
