package canvas

import (
	"image"
	"image/color"
	"testing"
)

func newTestImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestDrawRectFill(t *testing.T) {
	img := newTestImage(40, 40)
	c := NewForImage(img)

	paint := NewPaint()
	paint.Color = Red
	c.DrawRect(RectXYWH(10, 10, 20, 20), paint)

	if got := img.RGBAAt(20, 20); got.R != 0xFF || got.A != 0xFF {
		t.Errorf("center pixel = %+v, want opaque red", got)
	}
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("outside pixel drawn: %+v", got)
	}
}

func TestDrawRectTransformed(t *testing.T) {
	img := newTestImage(40, 40)
	c := NewForImage(img)

	c.Translate(10, 10)
	paint := NewPaint()
	paint.Color = Green
	c.DrawRect(RectXYWH(0, 0, 10, 10), paint)

	if got := img.RGBAAt(15, 15); got.G != 0xFF {
		t.Errorf("translated pixel = %+v, want green", got)
	}
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("origin pixel drawn: %+v", got)
	}
}

func TestDrawCircle(t *testing.T) {
	img := newTestImage(40, 40)
	c := NewForImage(img)

	paint := NewPaint()
	paint.Color = Blue
	c.DrawCircle(20, 20, 10, paint)

	if got := img.RGBAAt(20, 20); got.B != 0xFF {
		t.Errorf("center = %+v, want blue", got)
	}
	// Corner of the bounding box is outside the circle.
	if got := img.RGBAAt(11, 11); got.B != 0 {
		t.Errorf("bounding box corner drawn: %+v", got)
	}

	c.DrawCircle(5, 5, 0, paint)
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("zero radius circle drew: %+v", got)
	}
}

func TestDrawLineStroke(t *testing.T) {
	img := newTestImage(40, 40)
	c := NewForImage(img)

	paint := NewPaint()
	paint.Color = Black
	paint.StrokeWidth = 4
	c.DrawLine(5, 20, 35, 20, paint)

	if got := img.RGBAAt(20, 20); got.A == 0 {
		t.Errorf("line center not drawn: %+v", got)
	}
	if got := img.RGBAAt(20, 5); got.A != 0 {
		t.Errorf("far from line drawn: %+v", got)
	}
}

func TestDrawPathStrokeStyle(t *testing.T) {
	img := newTestImage(40, 40)
	c := NewForImage(img)

	p := NewPath()
	p.Rectangle(10, 10, 20, 20)
	paint := NewPaint()
	paint.Color = Black
	paint.Style = StyleStroke
	paint.StrokeWidth = 2
	c.DrawPath(p, paint)

	if got := img.RGBAAt(20, 10); got.A == 0 {
		t.Errorf("edge not stroked: %+v", got)
	}
	if got := img.RGBAAt(20, 20); got.A != 0 {
		t.Errorf("interior filled in stroke style: %+v", got)
	}
}

func TestDrawColorClear(t *testing.T) {
	img := newTestImage(20, 20)
	c := NewForImage(img)

	paint := NewPaint()
	paint.Color = White
	c.DrawPaint(paint)
	c.DrawColor(Transparent, BlendClear)

	if got := img.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("clear left pixel %+v", got)
	}
}

func TestDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 0xFF, A: 0xFF})
		}
	}

	img := newTestImage(20, 20)
	c := NewForImage(img)
	c.DrawImage(src, 8, 8, nil)

	if got := img.RGBAAt(10, 10); got.R == 0 {
		t.Errorf("image pixel not drawn: %+v", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("outside image drawn: %+v", got)
	}
}

func TestDrawImageRectScales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{B: 0xFF, A: 0xFF})
		}
	}

	img := newTestImage(30, 30)
	c := NewForImage(img)
	c.DrawImageRect(src, RectWH(2, 2), RectXYWH(5, 5, 20, 20), nil)

	if got := img.RGBAAt(15, 15); got.B == 0 {
		t.Errorf("scaled image center not drawn: %+v", got)
	}
	if got := img.RGBAAt(27, 27); got.A != 0 {
		t.Errorf("outside destination drawn: %+v", got)
	}
}

func TestDrawVerticesSolid(t *testing.T) {
	img := newTestImage(30, 30)
	c := NewForImage(img)

	v := NewVertices(TrianglesMode,
		[]Point{Pt(0, 0), Pt(30, 0), Pt(0, 30)}, nil, nil, nil)
	paint := NewPaint()
	paint.Color = Green
	c.DrawVertices(v, BlendSrcOver, paint)

	if got := img.RGBAAt(5, 5); got.G == 0 {
		t.Errorf("inside triangle not drawn: %+v", got)
	}
	if got := img.RGBAAt(28, 28); got.A != 0 {
		t.Errorf("outside triangle drawn: %+v", got)
	}
}

func TestDrawVerticesInterpolatesColor(t *testing.T) {
	img := newTestImage(20, 20)
	c := NewForImage(img)

	v := NewVertices(TrianglesMode,
		[]Point{Pt(0, 0), Pt(20, 0), Pt(0, 20)}, nil,
		[]RGBA{Red, Red, Blue}, nil)
	c.DrawVertices(v, BlendSrcOver, NewPaint())

	top := img.RGBAAt(2, 1)
	if top.R < 0xC0 {
		t.Errorf("top corner = %+v, want mostly red", top)
	}
	low := img.RGBAAt(1, 17)
	if low.B < 0xC0 {
		t.Errorf("bottom corner = %+v, want mostly blue", low)
	}
}

func TestDrawImageMeshDegenerate(t *testing.T) {
	img := newTestImage(10, 10)
	c := NewForImage(img)
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))

	// Too few vertices for the grid: silently ignored.
	c.DrawImageMesh(src, 2, 2, []Point{Pt(0, 0)}, nil, nil)
	c.DrawImageMesh(nil, 2, 2, make([]Point, 9), nil, nil)
	c.DrawImageMesh(src, 0, 2, make([]Point, 9), nil, nil)

	for i := range img.Pix {
		if img.Pix[i] != 0 {
			t.Fatal("degenerate mesh drew pixels")
		}
	}
}

func TestDrawDrawable(t *testing.T) {
	img := newTestImage(30, 30)
	c := NewForImage(img)

	paint := NewPaint()
	paint.Color = Red
	circle := NewAnimatedCircle(15, 15, 5, paint)
	c.DrawDrawable(circle)
	if got := img.RGBAAt(15, 15); got.R == 0 {
		t.Errorf("drawable circle not drawn: %+v", got)
	}

	// Property mutation moves the next draw.
	circle.Radius.Set(0)
	clear := newTestImage(30, 30)
	c2 := NewForImage(clear)
	c2.DrawDrawable(circle)
	if got := clear.RGBAAt(15, 15); got.A != 0 {
		t.Errorf("zero radius drawable drew: %+v", got)
	}

	c.DrawDrawable(nil)
}
