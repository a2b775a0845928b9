package canvas

import (
	"math"
	"testing"

	"github.com/gogpu/canvas/text"
)

// glyphXformRecorder captures per-glyph transforms instead of rasterizing.
type glyphXformRecorder struct {
	*Raster
	xforms []RSXform
}

func (g *glyphXformRecorder) DrawGlyphsXform(run *text.Run, xforms []RSXform, paint *Paint) {
	g.xforms = append(g.xforms, xforms...)
}

func TestDrawTextOnPathVerticalOffset(t *testing.T) {
	rec := &glyphXformRecorder{Raster: NewRaster(40, 40)}
	c := NewForBackend(rec)

	run := &text.Run{
		Face:    &text.Face{},
		Size:    16,
		Glyphs:  []text.Glyph{{GID: 1, XAdvance: 4}},
		Advance: 4,
	}
	p := NewPath()
	p.MoveTo(0, 10)
	p.LineTo(20, 10)

	c.DrawTextOnPath(run, p, 0, 3, NewPaint())
	if len(rec.xforms) != 1 {
		t.Fatalf("xforms = %d, want 1", len(rec.xforms))
	}

	x := rec.xforms[0]
	if math.Abs(x.SCos-1) > 1e-9 || math.Abs(x.SSin) > 1e-9 {
		t.Errorf("rotation = (%v, %v), want identity", x.SCos, x.SSin)
	}
	if math.Abs(x.TX) > 1e-9 {
		t.Errorf("TX = %v, want 0", x.TX)
	}
	// Positive vOffset pushes the glyph along the left-hand normal of the
	// tangent, which for a rightward path is downward (Y grows down).
	if math.Abs(x.TY-13) > 1e-9 {
		t.Errorf("TY = %v, want 13", x.TY)
	}
}

func TestDrawTextOnPathPastEndKeepsPenPosition(t *testing.T) {
	rec := &glyphXformRecorder{Raster: NewRaster(40, 40)}
	c := NewForBackend(rec)

	run := &text.Run{
		Face: &text.Face{},
		Size: 16,
		Glyphs: []text.Glyph{
			{GID: 1, XAdvance: 4},
			{GID: 2, X: 4, XAdvance: 40},
		},
		Advance: 44,
	}
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(20, 0)

	c.DrawTextOnPath(run, p, 0, 0, NewPaint())
	if len(rec.xforms) != 2 {
		t.Fatalf("xforms = %d, want 2 (off-path glyph dropped)", len(rec.xforms))
	}

	// The second glyph's midpoint (24) is past the path end (20): it keeps
	// its pen position with no rotation.
	x := rec.xforms[1]
	if math.Abs(x.SCos-1) > 1e-9 || math.Abs(x.SSin) > 1e-9 {
		t.Errorf("fallback rotation = (%v, %v), want identity", x.SCos, x.SSin)
	}
	if math.Abs(x.TX-4) > 1e-9 || math.Abs(x.TY) > 1e-9 {
		t.Errorf("fallback position = (%v, %v), want (4, 0)", x.TX, x.TY)
	}
}

func TestRSXformMatrix(t *testing.T) {
	x := RSXformRotate(2, math.Pi/2, 7, 9)
	m := x.Matrix()

	got := m.TransformPoint(Pt(1, 0))
	// Scale 2, quarter turn: (1,0) maps to (0,2) plus the translation.
	want := Pt(7, 11)
	if got.Distance(want) > 1e-9 {
		t.Errorf("TransformPoint = %+v, want %+v", got, want)
	}

	ident := RSXform{SCos: 1}
	if !matNear(ident.Matrix(), Identity()) {
		t.Errorf("identity xform = %+v", ident.Matrix())
	}
}

func TestPathMeasureLine(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 0)
	p.LineTo(30, 0)

	m := newPathMeasure(p)
	if got := m.Length(); math.Abs(got-20) > 1e-9 {
		t.Fatalf("Length = %v, want 20", got)
	}

	pos, tan, ok := m.PosTan(5)
	if !ok {
		t.Fatal("PosTan(5) failed")
	}
	if pos.Distance(Pt(15, 0)) > 1e-9 {
		t.Errorf("pos = %+v, want (15, 0)", pos)
	}
	if tan.Distance(Pt(1, 0)) > 1e-9 {
		t.Errorf("tan = %+v, want (1, 0)", tan)
	}

	if _, _, ok := m.PosTan(-1); ok {
		t.Error("PosTan(-1) succeeded")
	}
	if _, _, ok := m.PosTan(25); ok {
		t.Error("PosTan past end succeeded")
	}
}

func TestPathMeasureMultiContour(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.MoveTo(100, 0)
	p.LineTo(100, 10)

	m := newPathMeasure(p)
	if got := m.Length(); math.Abs(got-20) > 1e-9 {
		t.Fatalf("Length = %v, want 20", got)
	}

	// Distance 15 is 5 into the second contour; the gap itself has no
	// extent.
	pos, tan, ok := m.PosTan(15)
	if !ok {
		t.Fatal("PosTan(15) failed")
	}
	if pos.Distance(Pt(100, 5)) > 1e-9 {
		t.Errorf("pos = %+v, want (100, 5)", pos)
	}
	if tan.Distance(Pt(0, 1)) > 1e-9 {
		t.Errorf("tan = %+v, want (0, 1)", tan)
	}
}

func TestPathMeasureClosedContour(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()

	m := newPathMeasure(p)
	// The closing edge back to the start contributes its length.
	want := 10 + 10 + math.Hypot(10, 10)
	if got := m.Length(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Length = %v, want %v", got, want)
	}
}
