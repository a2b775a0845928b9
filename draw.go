package canvas

// Draw passthroughs. The canvas adds degenerate-input short-circuits and
// forwards everything else to the backend; no draw call touches the save
// or clip bookkeeping.

// DrawColor fills the clip with a color through a blend mode.
func (c *Canvas) DrawColor(col RGBA, mode BlendMode) {
	c.backend.DrawColor(col, mode)
}

// DrawPaint fills the clip with the paint.
func (c *Canvas) DrawPaint(paint *Paint) {
	if paint.NothingToDraw() {
		return
	}
	c.backend.DrawPaint(paint)
}

// DrawPoint draws a single point in the paint's stroke width.
func (c *Canvas) DrawPoint(x, y float64, paint *Paint) {
	c.DrawPoints([]Point{Pt(x, y)}, paint)
}

// DrawPoints draws each point as a separate dot. Empty input is a no-op.
func (c *Canvas) DrawPoints(pts []Point, paint *Paint) {
	if len(pts) < 1 || paint.NothingToDraw() {
		return
	}
	c.backend.DrawPoints(PointsMode, pts, paint)
}

// DrawLine draws a line segment.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, paint *Paint) {
	c.DrawLines([]Point{Pt(x0, y0), Pt(x1, y1)}, paint)
}

// DrawLines draws each consecutive pair of points as a segment. Fewer than
// two points is a no-op; a trailing unpaired point is ignored.
func (c *Canvas) DrawLines(pts []Point, paint *Paint) {
	if len(pts) < 2 || paint.NothingToDraw() {
		return
	}
	c.backend.DrawPoints(LinesMode, pts, paint)
}

// DrawPolyline draws the points as a connected open polygon.
func (c *Canvas) DrawPolyline(pts []Point, paint *Paint) {
	if len(pts) < 2 || paint.NothingToDraw() {
		return
	}
	c.backend.DrawPoints(PolygonMode, pts, paint)
}

// DrawRect draws a rectangle.
func (c *Canvas) DrawRect(r Rect, paint *Paint) {
	if paint.NothingToDraw() {
		return
	}
	c.backend.DrawRect(r, paint)
}

// DrawRoundRect draws a rounded rectangle with uniform corner radii.
func (c *Canvas) DrawRoundRect(r Rect, rx, ry float64, paint *Paint) {
	if paint.NothingToDraw() {
		return
	}
	c.backend.DrawRRect(RRectXY(r, rx, ry), paint)
}

// DrawRRect draws a rounded rectangle.
func (c *Canvas) DrawRRect(rr RRect, paint *Paint) {
	if paint.NothingToDraw() {
		return
	}
	c.backend.DrawRRect(rr, paint)
}

// DrawCircle draws a circle. Non-positive radii are a no-op.
func (c *Canvas) DrawCircle(cx, cy, radius float64, paint *Paint) {
	if radius <= 0 || paint.NothingToDraw() {
		return
	}
	c.backend.DrawOval(RectXYWH(cx-radius, cy-radius, 2*radius, 2*radius), paint)
}

// DrawOval draws the ellipse inscribed in oval.
func (c *Canvas) DrawOval(oval Rect, paint *Paint) {
	if oval.IsEmpty() || paint.NothingToDraw() {
		return
	}
	c.backend.DrawOval(oval, paint)
}

// DrawArc draws an elliptical arc inscribed in oval. Angles are in
// degrees; sweeps of a full turn or more draw the whole oval.
func (c *Canvas) DrawArc(oval Rect, startAngle, sweepAngle float64, useCenter bool, paint *Paint) {
	if oval.IsEmpty() || sweepAngle == 0 || paint.NothingToDraw() {
		return
	}
	c.backend.DrawArc(oval, startAngle, sweepAngle, useCenter, paint)
}

// DrawPath draws a path.
func (c *Canvas) DrawPath(p *Path, paint *Paint) {
	if p == nil || p.IsEmpty() || paint.NothingToDraw() {
		return
	}
	c.backend.DrawPath(p, paint)
}

// DrawVertices draws a triangle mesh composited through mode.
func (c *Canvas) DrawVertices(v *Vertices, mode BlendMode, paint *Paint) {
	if v == nil || len(v.positions) < 3 || paint.NothingToDraw() {
		return
	}
	c.backend.DrawVertices(v, mode, paint)
}
