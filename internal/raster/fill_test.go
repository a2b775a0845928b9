package raster

import (
	"image"
	"image/color"
	"testing"
)

func rectSegs(x0, y0, x1, y1 float32) []Seg {
	return []Seg{
		MoveTo(Point{X: x0, Y: y0}),
		LineTo(Point{X: x1, Y: y0}),
		LineTo(Point{X: x1, Y: y1}),
		LineTo(Point{X: x0, Y: y1}),
		Close(),
	}
}

func TestRasterizeRect(t *testing.T) {
	mask := Rasterize(rectSegs(2, 2, 8, 8), 10, 10)

	if got := mask.AlphaAt(5, 5).A; got != 0xFF {
		t.Errorf("inside coverage = %d, want 255", got)
	}
	if got := mask.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("outside coverage = %d, want 0", got)
	}
}

func TestRasterizeFractionalEdge(t *testing.T) {
	mask := Rasterize(rectSegs(2.5, 2, 8, 8), 10, 10)
	got := mask.AlphaAt(2, 5).A
	if got == 0 || got == 0xFF {
		t.Errorf("fractional edge coverage = %d, want partial", got)
	}
}

func TestSegBounds(t *testing.T) {
	segs := []Seg{
		MoveTo(Point{X: 3.2, Y: 1.9}),
		QuadTo(Point{X: 10, Y: -2}, Point{X: 7, Y: 4}),
		Close(),
	}
	b := SegBounds(segs)
	// Control points count toward the bound.
	want := image.Rect(3, -2, 10, 4)
	if b != want {
		t.Errorf("SegBounds = %v, want %v", b, want)
	}
}

func TestFillPathSrcOver(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	FillPath(dst, rectSegs(0, 0, 10, 10), color.NRGBA{R: 0xFF, A: 0xFF}, nil, BlendSrcOver)

	if got := dst.RGBAAt(5, 5); got.R != 0xFF || got.A != 0xFF {
		t.Errorf("filled pixel = %+v", got)
	}
}

func TestFillPathHalfAlphaOverWhite(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	FillPath(dst, rectSegs(0, 0, 4, 4), color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, nil, BlendSrc)
	FillPath(dst, rectSegs(0, 0, 4, 4), color.NRGBA{A: 0x80}, nil, BlendSrcOver)

	got := dst.RGBAAt(2, 2)
	if got.R < 0x78 || got.R > 0x88 {
		t.Errorf("half black over white R = %d, want about 127", got.R)
	}
}

func TestFillPathClear(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	FillPath(dst, rectSegs(0, 0, 4, 4), color.NRGBA{R: 0xFF, A: 0xFF}, nil, BlendSrc)
	FillPath(dst, rectSegs(1, 1, 3, 3), color.NRGBA{}, nil, BlendClear)

	if got := dst.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("cleared pixel = %+v", got)
	}
	if got := dst.RGBAAt(0, 0); got.R != 0xFF {
		t.Errorf("outside clear touched: %+v", got)
	}
}

func TestFillPathClipMask(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	clip := image.NewAlpha(image.Rect(0, 0, 10, 10))
	// Admit only the left half.
	for y := 0; y < 10; y++ {
		for x := 0; x < 5; x++ {
			clip.SetAlpha(x, y, color.Alpha{A: 0xFF})
		}
	}

	FillPath(dst, rectSegs(0, 0, 10, 10), color.NRGBA{B: 0xFF, A: 0xFF}, clip, BlendSrcOver)

	if got := dst.RGBAAt(2, 5); got.B != 0xFF {
		t.Errorf("admitted pixel = %+v", got)
	}
	if got := dst.RGBAAt(7, 5); got.A != 0 {
		t.Errorf("clipped pixel drawn: %+v", got)
	}
}

func TestComposite(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	FillPath(dst, rectSegs(0, 0, 4, 4), color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, nil, BlendSrc)

	layer := image.NewRGBA(image.Rect(0, 0, 4, 4))
	FillPath(layer, rectSegs(0, 0, 4, 4), color.NRGBA{A: 0xFF}, nil, BlendSrc)

	Composite(dst, layer, 0x80, nil)

	got := dst.RGBAAt(2, 2)
	if got.R < 0x78 || got.R > 0x88 {
		t.Errorf("half-alpha composite R = %d, want about 127", got.R)
	}
	if got.A != 0xFF {
		t.Errorf("composite alpha = %d, want 255", got.A)
	}
}

func TestStrokeSegsCoverLine(t *testing.T) {
	segs := StrokeSegs(
		[][]Point{{{X: 2, Y: 5}, {X: 8, Y: 5}}},
		[]bool{false}, 2, CapButt,
	)
	mask := Rasterize(segs, 10, 10)

	if got := mask.AlphaAt(5, 5).A; got == 0 {
		t.Errorf("line body coverage = %d, want > 0", got)
	}
	if got := mask.AlphaAt(5, 1).A; got != 0 {
		t.Errorf("far from line coverage = %d, want 0", got)
	}
}

func TestStrokeSegsClosedContour(t *testing.T) {
	contour := []Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}
	segs := StrokeSegs([][]Point{contour}, []bool{true}, 2, CapButt)
	mask := Rasterize(segs, 10, 10)

	if got := mask.AlphaAt(5, 2).A; got == 0 {
		t.Errorf("edge coverage = %d, want > 0", got)
	}
	if got := mask.AlphaAt(5, 5).A; got != 0 {
		t.Errorf("interior coverage = %d, want 0", got)
	}
}

func TestFillTriangle(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := [4]float32{1, 0, 0, 1}
	v0 := Vertex{Pos: Point{X: 0, Y: 0}, Color: red}
	v1 := Vertex{Pos: Point{X: 10, Y: 0}, Color: red}
	v2 := Vertex{Pos: Point{X: 0, Y: 10}, Color: red}

	FillTriangle(dst, nil, v0, v1, v2, nil, false, true, BlendSrcOver)

	if got := dst.RGBAAt(2, 2); got.R == 0 {
		t.Errorf("inside pixel = %+v", got)
	}
	if got := dst.RGBAAt(9, 9); got.A != 0 {
		t.Errorf("outside pixel drawn: %+v", got)
	}

	// Opposite winding still fills.
	dst2 := image.NewRGBA(image.Rect(0, 0, 10, 10))
	FillTriangle(dst2, nil, v0, v2, v1, nil, false, true, BlendSrcOver)
	if got := dst2.RGBAAt(2, 2); got.R == 0 {
		t.Errorf("reverse winding pixel = %+v", got)
	}
}
