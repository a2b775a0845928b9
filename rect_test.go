package canvas

import (
	"image"
	"testing"
)

func TestRectIntersect(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(5, 5, 10, 10)

	got := a.Intersect(b)
	if !rectNear(got, RectXYWH(5, 5, 5, 5), 1e-9) {
		t.Errorf("Intersect = %+v", got)
	}

	if !a.Intersects(b) {
		t.Error("overlapping rects report no intersection")
	}
	c := RectXYWH(20, 20, 5, 5)
	if a.Intersects(c) {
		t.Error("disjoint rects report intersection")
	}
	if !a.Intersect(c).IsEmpty() {
		t.Error("disjoint intersection not empty")
	}
}

func TestRectUnionContains(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(20, 5, 10, 10)

	u := a.Union(b)
	if !rectNear(u, RectXYWH(0, 0, 30, 15), 1e-9) {
		t.Errorf("Union = %+v", u)
	}

	if !a.Contains(Pt(5, 5)) {
		t.Error("interior point not contained")
	}
	if a.Contains(Pt(10, 10)) {
		t.Error("exclusive max edge contained")
	}
}

func TestRectImageRoundTrip(t *testing.T) {
	r := RectXYWH(1.2, 2.7, 10.1, 5.5)
	ir := r.ImageRect()
	// ImageRect is an outset to whole pixels.
	if !ir.Min.Eq(image.Pt(1, 2)) || ir.Max.X < 11 || ir.Max.Y < 8 {
		t.Errorf("ImageRect = %v", ir)
	}
	back := FromImageRect(image.Rect(3, 4, 13, 24))
	if !rectNear(back, RectXYWH(3, 4, 10, 20), 1e-9) {
		t.Errorf("FromImageRect = %+v", back)
	}
}

func TestRRectXYClampsRadii(t *testing.T) {
	rr := RRectXY(RectXYWH(0, 0, 10, 6), 20, 20)
	if rr.RX > 5 || rr.RY > 3 {
		t.Errorf("radii not clamped to half extents: rx=%v ry=%v", rr.RX, rr.RY)
	}

	if !RRectXY(RectXYWH(0, 0, 10, 10), 0, 4).IsRect() {
		t.Error("zero x radius should degrade to rect")
	}
	if RRectXY(RectXYWH(0, 0, 10, 10), 2, 2).IsRect() {
		t.Error("rounded rect reported as rect")
	}
}
