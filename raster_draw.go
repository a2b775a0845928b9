package canvas

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/text"
)

// blendOf maps the public blend mode onto the rasterizer's operators.
func blendOf(mode BlendMode) raster.Blend {
	switch mode {
	case BlendSrc:
		return raster.BlendSrc
	case BlendClear:
		return raster.BlendClear
	case BlendModulate:
		return raster.BlendModulate
	default:
		return raster.BlendSrcOver
	}
}

func capOf(c LineCap) raster.Cap {
	switch c {
	case LineCapRound:
		return raster.CapRound
	case LineCapSquare:
		return raster.CapSquare
	default:
		return raster.CapButt
	}
}

// fillDeviceSegs blends a device-space outline into the destination under
// the clip mask.
func (r *Raster) fillDeviceSegs(segs []raster.Seg, col RGBA, mode BlendMode) {
	if r.region.IsEmpty() || len(segs) == 0 {
		return
	}
	raster.FillPath(r.dst, segs, col.NRGBA8(), r.region.Mask(), blendOf(mode))
}

// strokeScale approximates how the transform scales stroke widths.
func (r *Raster) strokeScale() float64 {
	det := r.matrix.A*r.matrix.E - r.matrix.B*r.matrix.D
	return math.Sqrt(math.Abs(det))
}

// drawDevicePath fills and/or strokes an already-transformed path.
func (r *Raster) drawDevicePath(device *Path, paint *Paint) {
	if paint.Style == StyleFill || paint.Style == StyleStrokeAndFill {
		r.fillDeviceSegs(pathSegs(device), paint.Color, paint.BlendMode)
	}
	if paint.Style == StyleStroke || paint.Style == StyleStrokeAndFill {
		r.strokeDevicePath(device, paint)
	}
}

func (r *Raster) strokeDevicePath(device *Path, paint *Paint) {
	contours := device.FlattenContours()
	if len(contours) == 0 {
		return
	}
	pts := make([][]raster.Point, len(contours))
	closed := make([]bool, len(contours))
	for i, c := range contours {
		pl := make([]raster.Point, len(c.Points))
		for j, p := range c.Points {
			pl[j] = rp(p)
		}
		pts[i] = pl
		closed[i] = c.Closed
	}
	width := paint.StrokeWidth * r.strokeScale()
	segs := raster.StrokeSegs(pts, closed, float32(width), capOf(paint.StrokeCap))
	r.fillDeviceSegs(segs, paint.Color, paint.BlendMode)
}

// DrawPaint fills the whole clip with the paint color.
func (r *Raster) DrawPaint(paint *Paint) {
	paint = paint.orDefault()
	if r.region.IsEmpty() {
		return
	}
	raster.FillMask(r.dst, r.region.Bounds(), nil, r.region.Mask(),
		paint.Color.NRGBA8(), blendOf(paint.BlendMode))
}

// DrawColor fills the whole clip with a color through a blend mode.
func (r *Raster) DrawColor(c RGBA, mode BlendMode) {
	if r.region.IsEmpty() {
		return
	}
	raster.FillMask(r.dst, r.region.Bounds(), nil, r.region.Mask(),
		c.NRGBA8(), blendOf(mode))
}

// DrawPoints renders a point list as dots, segment pairs, or an open
// polygon, in the paint's stroke width.
func (r *Raster) DrawPoints(mode PointMode, pts []Point, paint *Paint) {
	paint = paint.orDefault()
	if len(pts) == 0 {
		return
	}
	width := paint.StrokeWidth * r.strokeScale()
	if width < 1 {
		width = 1
	}
	half := float32(width / 2)

	switch mode {
	case PointsMode:
		var segs []raster.Seg
		for _, p := range pts {
			dp := rp(r.matrix.TransformPoint(p))
			if paint.StrokeCap == LineCapRound {
				segs = raster.StrokeSegs([][]raster.Point{{dp}}, []bool{false}, float32(width), raster.CapRound)
				r.fillDeviceSegs(segs, paint.Color, paint.BlendMode)
				continue
			}
			segs = append(segs[:0],
				raster.MoveTo(raster.Point{X: dp.X - half, Y: dp.Y - half}),
				raster.LineTo(raster.Point{X: dp.X + half, Y: dp.Y - half}),
				raster.LineTo(raster.Point{X: dp.X + half, Y: dp.Y + half}),
				raster.LineTo(raster.Point{X: dp.X - half, Y: dp.Y + half}),
				raster.Close(),
			)
			r.fillDeviceSegs(segs, paint.Color, paint.BlendMode)
		}

	case LinesMode:
		n := len(pts) / 2 * 2
		var contours [][]raster.Point
		var closed []bool
		for i := 0; i < n; i += 2 {
			a := rp(r.matrix.TransformPoint(pts[i]))
			b := rp(r.matrix.TransformPoint(pts[i+1]))
			contours = append(contours, []raster.Point{a, b})
			closed = append(closed, false)
		}
		segs := raster.StrokeSegs(contours, closed, float32(width), capOf(paint.StrokeCap))
		r.fillDeviceSegs(segs, paint.Color, paint.BlendMode)

	case PolygonMode:
		contour := make([]raster.Point, len(pts))
		for i, p := range pts {
			contour[i] = rp(r.matrix.TransformPoint(p))
		}
		segs := raster.StrokeSegs([][]raster.Point{contour}, []bool{false}, float32(width), capOf(paint.StrokeCap))
		r.fillDeviceSegs(segs, paint.Color, paint.BlendMode)
	}
}

// DrawRect draws a rectangle.
func (r *Raster) DrawRect(rc Rect, paint *Paint) {
	paint = paint.orDefault()
	p := NewPath()
	p.Rectangle(rc.X, rc.Y, rc.W, rc.H)
	r.drawDevicePath(p.Transform(r.matrix), paint)
}

// DrawRRect draws a rounded rectangle.
func (r *Raster) DrawRRect(rr RRect, paint *Paint) {
	paint = paint.orDefault()
	r.drawDevicePath(rr.Path().Transform(r.matrix), paint)
}

// DrawOval draws the ellipse inscribed in oval.
func (r *Raster) DrawOval(oval Rect, paint *Paint) {
	paint = paint.orDefault()
	c := oval.Center()
	p := NewPath()
	p.Ellipse(c.X, c.Y, oval.W/2, oval.H/2)
	r.drawDevicePath(p.Transform(r.matrix), paint)
}

// DrawArc draws an elliptical arc inscribed in oval. Angles are in degrees,
// sweeping clockwise from three o'clock. With useCenter the arc becomes a
// wedge through the oval center.
func (r *Raster) DrawArc(oval Rect, startAngle, sweepAngle float64, useCenter bool, paint *Paint) {
	paint = paint.orDefault()
	if sweepAngle >= 360 || sweepAngle <= -360 {
		r.DrawOval(oval, paint)
		return
	}
	start := startAngle * math.Pi / 180
	sweep := sweepAngle * math.Pi / 180

	c := oval.Center()
	p := NewPath()
	if useCenter {
		p.MoveTo(c.X, c.Y)
		p.LineTo(c.X+oval.W/2*math.Cos(start), c.Y+oval.H/2*math.Sin(start))
	}
	p.ArcOval(oval, start, start+sweep)
	if useCenter {
		p.Close()
	}
	r.drawDevicePath(p.Transform(r.matrix), paint)
}

// DrawPath draws a path.
func (r *Raster) DrawPath(p *Path, paint *Paint) {
	paint = paint.orDefault()
	r.drawDevicePath(p.Transform(r.matrix), paint)
}

// DrawImageRect draws the src portion of img into the user-space dst
// rectangle, resampled bilinearly through the current transform.
func (r *Raster) DrawImageRect(img image.Image, src, dst Rect, paint *Paint) {
	paint = paint.orDefault()
	if img == nil || src.IsEmpty() || dst.IsEmpty() || r.region.IsEmpty() {
		return
	}

	m := r.matrix.
		Multiply(Translate(dst.X, dst.Y)).
		Multiply(Scale(dst.W/src.W, dst.H/src.H)).
		Multiply(Translate(-src.X, -src.Y))
	aff := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}

	opts := &xdraw.Options{}
	if mask := r.region.Mask(); mask != nil {
		opts.DstMask = mask
	}
	if a := paint.Alpha(); a < 0xFF {
		opts.SrcMask = image.NewUniform(color.Alpha{A: a})
	}

	op := xdraw.Over
	if paint.BlendMode == BlendSrc {
		op = xdraw.Src
	}
	xdraw.BiLinear.Transform(r.dst, aff, img, src.ImageRect(), op, opts)
}

// DrawImageLattice stretches img across dst, keeping the lattice's fixed
// cells at their native size and scaling only the stretchable cells.
func (r *Raster) DrawImageLattice(img image.Image, lat Lattice, dst Rect, paint *Paint) {
	paint = paint.orDefault()
	if img == nil || dst.IsEmpty() || r.region.IsEmpty() {
		return
	}

	bounds := lat.Bounds
	if bounds.Empty() {
		bounds = img.Bounds()
	}

	xSrc, xDst := latticeSpans(lat.XDivs, bounds.Min.X, bounds.Max.X, dst.X, dst.W)
	ySrc, yDst := latticeSpans(lat.YDivs, bounds.Min.Y, bounds.Max.Y, dst.Y, dst.H)

	for iy := 0; iy+1 < len(ySrc); iy++ {
		for ix := 0; ix+1 < len(xSrc); ix++ {
			srcCell := RectLTRB(xSrc[ix], ySrc[iy], xSrc[ix+1], ySrc[iy+1])
			dstCell := RectLTRB(xDst[ix], yDst[iy], xDst[ix+1], yDst[iy+1])
			if srcCell.IsEmpty() || dstCell.IsEmpty() {
				continue
			}

			n := iy*(len(xSrc)-1) + ix
			if n < len(lat.Flags) && lat.Flags[n]&LatticeTransparent != 0 {
				continue
			}
			if n < len(lat.Colors) && lat.Colors[n].A > 0 {
				cell := NewPath()
				cell.Rectangle(dstCell.X, dstCell.Y, dstCell.W, dstCell.H)
				col := lat.Colors[n]
				col.A *= paint.Color.A
				r.fillDeviceSegs(pathSegs(cell.Transform(r.matrix)), col, paint.BlendMode)
				continue
			}
			r.DrawImageRect(img, srcCell, dstCell, paint)
		}
	}
}

// latticeSpans computes cell boundaries along one axis. Intervals between
// divs alternate fixed and stretchable, starting fixed; fixed intervals
// keep their source size in the destination and stretchable intervals
// share the remaining space proportionally.
func latticeSpans(divs []int, srcMin, srcMax int, dstMin, dstSize float64) (src, dst []float64) {
	src = make([]float64, 0, len(divs)+2)
	src = append(src, float64(srcMin))
	for _, d := range divs {
		v := float64(d)
		if v < float64(srcMin) {
			v = float64(srcMin)
		}
		if v > float64(srcMax) {
			v = float64(srcMax)
		}
		src = append(src, v)
	}
	src = append(src, float64(srcMax))

	var fixedTotal, stretchTotal float64
	for i := 0; i+1 < len(src); i++ {
		size := src[i+1] - src[i]
		if i%2 == 0 {
			fixedTotal += size
		} else {
			stretchTotal += size
		}
	}

	scale := 0.0
	if stretchTotal > 0 {
		scale = (dstSize - fixedTotal) / stretchTotal
		if scale < 0 {
			scale = 0
		}
	}

	dst = make([]float64, len(src))
	dst[0] = dstMin
	for i := 0; i+1 < len(src); i++ {
		size := src[i+1] - src[i]
		if i%2 == 1 {
			size *= scale
		}
		dst[i+1] = dst[i] + size
	}
	return src, dst
}

// DrawVertices rasterizes a triangle mesh with barycentric color
// interpolation and optional image-shader texturing.
func (r *Raster) DrawVertices(v *Vertices, mode BlendMode, paint *Paint) {
	paint = paint.orDefault()
	if v == nil || r.region.IsEmpty() {
		return
	}

	var tex *image.RGBA
	if paint.Shader != nil && paint.Shader.Image != nil {
		tex = toRGBA(paint.Shader.Image)
	}
	useUV := tex != nil && len(v.texs) == len(v.positions)
	hasColors := len(v.colors) == len(v.positions)
	blend := blendOf(mode)
	mask := r.region.Mask()

	vert := func(i int) raster.Vertex {
		dp := r.matrix.TransformPoint(v.positions[i])
		out := raster.Vertex{Pos: raster.Point{X: float32(dp.X), Y: float32(dp.Y)}}
		if useUV {
			out.UV = raster.Point{X: float32(v.texs[i].X), Y: float32(v.texs[i].Y)}
		}
		col := paint.Color
		if hasColors {
			col = v.colors[i]
			col.A *= paint.Color.A
		}
		out.Color = [4]float32{float32(col.R), float32(col.G), float32(col.B), float32(col.A)}
		return out
	}

	v.Triangles(func(i0, i1, i2 int) {
		raster.FillTriangle(r.dst, mask, vert(i0), vert(i1), vert(i2), tex, useUV, true, blend)
	})
}

// DrawGlyphs renders a shaped run with its origin at the text baseline.
func (r *Raster) DrawGlyphs(run *text.Run, origin Point, paint *Paint) {
	paint = paint.orDefault()
	if run == nil || run.Face == nil || r.region.IsEmpty() {
		return
	}
	for _, g := range run.Glyphs {
		p, err := glyphPath(run.Face, g.GID, run.Size)
		if err != nil {
			Logger().Warn("canvas: glyph outline failed", "gid", g.GID, "err", err)
			continue
		}
		if p.IsEmpty() {
			continue
		}
		m := r.matrix.Multiply(Translate(origin.X+g.X, origin.Y+g.Y))
		r.fillDeviceSegs(pathSegs(p.Transform(m)), paint.Color, paint.BlendMode)
	}
}

// DrawGlyphsXform renders a shaped run with one rotate+translate transform
// per glyph, ignoring the run's own pen offsets.
func (r *Raster) DrawGlyphsXform(run *text.Run, xforms []RSXform, paint *Paint) {
	paint = paint.orDefault()
	if run == nil || run.Face == nil || r.region.IsEmpty() {
		return
	}
	for i, g := range run.Glyphs {
		if i >= len(xforms) {
			break
		}
		p, err := glyphPath(run.Face, g.GID, run.Size)
		if err != nil {
			Logger().Warn("canvas: glyph outline failed", "gid", g.GID, "err", err)
			continue
		}
		if p.IsEmpty() {
			continue
		}
		m := r.matrix.Multiply(xforms[i].Matrix())
		r.fillDeviceSegs(pathSegs(p.Transform(m)), paint.Color, paint.BlendMode)
	}
}

// glyphPath converts a glyph outline into a path at the baseline origin.
func glyphPath(face *text.Face, gid text.GlyphID, size float64) (*Path, error) {
	segs, err := face.GlyphSegments(gid, size)
	if err != nil {
		return nil, err
	}
	p := NewPath()
	for _, s := range segs {
		switch s.Op {
		case text.SegMoveTo:
			if !p.IsEmpty() {
				p.Close()
			}
			p.MoveTo(s.Args[0].X, s.Args[0].Y)
		case text.SegLineTo:
			p.LineTo(s.Args[0].X, s.Args[0].Y)
		case text.SegQuadTo:
			p.QuadraticTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y)
		case text.SegCubeTo:
			p.CubicTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y,
				s.Args[2].X, s.Args[2].Y)
		}
	}
	if !p.IsEmpty() {
		p.Close()
	}
	return p, nil
}

// toRGBA returns img as *image.RGBA, converting when necessary.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	xdraw.Draw(out, out.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return out
}
