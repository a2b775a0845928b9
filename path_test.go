package canvas

import (
	"math"
	"testing"
)

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 20)
	p.LineTo(40, 5)
	p.LineTo(25, 50)
	p.Close()

	b := p.Bounds()
	if !rectNear(b, RectLTRB(10, 5, 40, 50), 1e-9) {
		t.Errorf("Bounds = %+v", b)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	q := p.Transform(Translate(5, 7))
	b := q.Bounds()
	if !rectNear(b, RectXYWH(5, 7, 10, 10), 1e-9) {
		t.Errorf("transformed bounds = %+v", b)
	}
	// The source path is untouched.
	if !rectNear(p.Bounds(), RectXYWH(0, 0, 10, 10), 1e-9) {
		t.Errorf("source path mutated: %+v", p.Bounds())
	}
}

func TestAsRRectDetectsRectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(3, 4, 20, 10)

	rr, ok := p.AsRRect()
	if !ok {
		t.Fatal("rectangle path not detected")
	}
	if !rr.IsRect() {
		t.Error("rectangle detected with radii")
	}
	if !rectNear(rr.Rect, RectXYWH(3, 4, 20, 10), 1e-3) {
		t.Errorf("detected rect = %+v", rr.Rect)
	}
}

func TestAsRRectDetectsRoundedRectangle(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(0, 0, 40, 30, 6, 4)

	rr, ok := p.AsRRect()
	if !ok {
		t.Fatal("rounded rectangle path not detected")
	}
	if !rectNear(rr.Rect, RectXYWH(0, 0, 40, 30), 1e-3) {
		t.Errorf("detected rect = %+v", rr.Rect)
	}
	if math.Abs(rr.RX-6) > 1e-3 || math.Abs(rr.RY-4) > 1e-3 {
		t.Errorf("detected radii = (%v, %v), want (6, 4)", rr.RX, rr.RY)
	}
}

func TestAsRRectRejectsFreeform(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 5)
	p.LineTo(3, 12)
	p.Close()

	if _, ok := p.AsRRect(); ok {
		t.Error("triangle detected as rounded rect")
	}

	circle := NewPath()
	circle.Circle(10, 10, 5)
	if _, ok := circle.AsRRect(); ok {
		t.Error("circle detected as rounded rect")
	}
}

func TestFlattenContours(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.Close()
	p.MoveTo(20, 20)
	p.QuadraticTo(25, 30, 30, 20)

	cs := p.FlattenContours()
	if len(cs) != 2 {
		t.Fatalf("contours = %d, want 2", len(cs))
	}
	if !cs[0].Closed || cs[1].Closed {
		t.Errorf("closed flags = %v %v, want true false", cs[0].Closed, cs[1].Closed)
	}
	if len(cs[1].Points) < 3 {
		t.Errorf("quad flattened to %d points", len(cs[1].Points))
	}
	// Flattened quad stays inside its control hull.
	for _, pt := range cs[1].Points {
		if pt.Y < 20-1e-6 || pt.Y > 30+1e-6 {
			t.Fatalf("flattened point %+v outside hull", pt)
		}
	}
}

func TestEllipseBounds(t *testing.T) {
	p := NewPath()
	p.Ellipse(50, 40, 20, 10)
	b := p.Bounds()
	// Control points of the kappa cubics stay within the ellipse box.
	if b.X < 30-1e-6 || b.Right() > 70+1e-6 || b.Y < 30-1e-6 || b.Bottom() > 50+1e-6 {
		t.Errorf("ellipse bounds = %+v", b)
	}
}
