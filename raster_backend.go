package canvas

import (
	"image"

	"github.com/gogpu/canvas/internal/clip"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/render"
)

// Raster is the software Backend. It draws into the CPU pixels of a render
// target, keeps its own monolithic save stack of transform and clip
// snapshots, and rasterizes all geometry with coverage masks.
//
// Raster is not safe for concurrent use.
type Raster struct {
	target render.RenderTarget
	// base is the target's pixel buffer; dst is where draws currently
	// land, which is a layer buffer while layer frames are open.
	base   *image.RGBA
	dst    *image.RGBA
	matrix Matrix
	region *clip.Region
	frames []rasterFrame
}

// rasterFrame is one backend save frame: the state Restore reinstates.
type rasterFrame struct {
	matrix   Matrix
	clipMark int
	layer    *rasterLayer
}

// rasterLayer redirects drawing into an offscreen buffer until its frame is
// restored, then composites through alpha.
type rasterLayer struct {
	buf   *image.RGBA
	prev  *image.RGBA
	alpha uint8
}

// NewRaster creates a software backend over a fresh pixmap target.
func NewRaster(width, height int) *Raster {
	return NewRasterForTarget(render.NewPixmapTarget(width, height))
}

// NewRasterForImage creates a software backend drawing directly into img.
func NewRasterForImage(img *image.RGBA) *Raster {
	return NewRasterForTarget(render.NewPixmapTargetForImage(img))
}

// NewRasterForTarget creates a software backend over an existing render
// target. Targets without CPU-accessible pixels get a detached pixmap so
// drawing still works, with a warning.
func NewRasterForTarget(t render.RenderTarget) *Raster {
	if t == nil {
		t = render.NewPixmapTarget(0, 0)
	}
	var img *image.RGBA
	switch {
	case isPixmap(t):
		img = t.(*render.PixmapTarget).Image()
	case t.Pixels() != nil:
		img = &image.RGBA{
			Pix:    t.Pixels(),
			Stride: t.Stride(),
			Rect:   image.Rect(0, 0, t.Width(), t.Height()),
		}
	default:
		Logger().Warn("canvas: render target has no CPU pixels, drawing to detached pixmap",
			"width", t.Width(), "height", t.Height())
		img = image.NewRGBA(image.Rect(0, 0, t.Width(), t.Height()))
	}
	return &Raster{
		target: t,
		base:   img,
		dst:    img,
		matrix: Identity(),
		region: clip.New(t.Width(), t.Height()),
	}
}

func isPixmap(t render.RenderTarget) bool {
	_, ok := t.(*render.PixmapTarget)
	return ok
}

// MakeSurface creates a fresh software backend for target.
func (r *Raster) MakeSurface(target render.RenderTarget) Backend {
	return NewRasterForTarget(target)
}

// Target returns the render target.
func (r *Raster) Target() render.RenderTarget { return r.target }

// Width returns the surface width in pixels.
func (r *Raster) Width() int { return r.target.Width() }

// Height returns the surface height in pixels.
func (r *Raster) Height() int { return r.target.Height() }

// SaveCount reports the save depth. A fresh backend reports 1.
func (r *Raster) SaveCount() int { return len(r.frames) + 1 }

// Save snapshots the transform and clip. Returns the pre-save count, the
// value that unwinds this frame when passed to restore-to-count logic.
func (r *Raster) Save() int {
	count := r.SaveCount()
	r.frames = append(r.frames, rasterFrame{
		matrix:   r.matrix,
		clipMark: r.region.Mark(),
	})
	return count
}

// SaveLayer snapshots state like Save and redirects drawing into an
// offscreen buffer composited through paint's alpha on Restore.
func (r *Raster) SaveLayer(bounds Rect, paint *Paint, clipToLayer bool) int {
	count := r.SaveCount()

	alpha := uint8(0xFF)
	if paint != nil {
		alpha = paint.Alpha()
	}
	layer := &rasterLayer{
		buf:   image.NewRGBA(r.base.Bounds()),
		prev:  r.dst,
		alpha: alpha,
	}
	r.frames = append(r.frames, rasterFrame{
		matrix:   r.matrix,
		clipMark: r.region.Mark(),
		layer:    layer,
	})
	r.dst = layer.buf

	if clipToLayer && !bounds.IsEmpty() {
		r.ClipRect(bounds, ClipIntersect, true)
	}
	return count
}

// Restore pops the top save frame, rolling back transform and clip. Layer
// frames composite their buffer into the parent destination under the
// restored clip. Popping the base frame is a no-op.
func (r *Raster) Restore() {
	if len(r.frames) == 0 {
		Logger().Warn("canvas: restore with empty save stack")
		return
	}
	f := r.frames[len(r.frames)-1]
	r.frames = r.frames[:len(r.frames)-1]

	r.matrix = f.matrix
	r.region.RestoreTo(f.clipMark)

	if f.layer != nil {
		raster.Composite(f.layer.prev, f.layer.buf, f.layer.alpha, r.region.Mask())
		r.dst = f.layer.prev
	}
}

// TotalMatrix returns the current transform.
func (r *Raster) TotalMatrix() Matrix { return r.matrix }

// SetMatrix replaces the current transform.
func (r *Raster) SetMatrix(m Matrix) { r.matrix = m }

// Concat post-multiplies the current transform by m.
func (r *Raster) Concat(m Matrix) { r.matrix = r.matrix.Multiply(m) }

// ClipRect combines a user-space rectangle into the clip region. Rects stay
// on the exact rectangle route while the transform preserves axis
// alignment; otherwise they degrade to a path clip.
func (r *Raster) ClipRect(rc Rect, op ClipOp, antialias bool) {
	if r.matrix.RectStaysRect() {
		p0 := r.matrix.TransformPoint(Pt(rc.X, rc.Y))
		p1 := r.matrix.TransformPoint(Pt(rc.Right(), rc.Bottom()))
		x0, x1 := minmax(p0.X, p1.X)
		y0, y1 := minmax(p0.Y, p1.Y)
		r.region.PushRect(float32(x0), float32(y0), float32(x1), float32(y1), clipOpOf(op), antialias)
		return
	}
	p := NewPath()
	p.Rectangle(rc.X, rc.Y, rc.W, rc.H)
	r.clipDevicePath(p.Transform(r.matrix), op, antialias)
}

// ClipRRect combines a user-space rounded rectangle into the clip region.
func (r *Raster) ClipRRect(rr RRect, op ClipOp, antialias bool) {
	if rr.IsRect() {
		r.ClipRect(rr.Rect, op, antialias)
		return
	}
	r.clipDevicePath(rr.Path().Transform(r.matrix), op, antialias)
}

// ClipPath combines a user-space path into the clip region.
func (r *Raster) ClipPath(p *Path, op ClipOp, antialias bool) {
	r.clipDevicePath(p.Transform(r.matrix), op, antialias)
}

func (r *Raster) clipDevicePath(device *Path, op ClipOp, antialias bool) {
	r.region.PushPath(pathSegs(device), clipOpOf(op), antialias)
}

// IsClipEmpty reports whether the clip region excludes everything.
func (r *Raster) IsClipEmpty() bool { return r.region.IsEmpty() }

// ClipBounds returns a conservative device-space bound of the clip.
func (r *Raster) ClipBounds() (Rect, bool) {
	if r.region.IsEmpty() {
		return Rect{}, false
	}
	return FromImageRect(r.region.Bounds()), true
}

// ReplayClips walks the applied clip entries in order, in device space.
func (r *Raster) ReplayClips(v ClipVisitor) {
	for _, e := range r.region.Entries() {
		op := opOfClip(e.Op)
		if e.IsRect {
			v.ClipRect(RectLTRB(
				float64(e.RectF[0]), float64(e.RectF[1]),
				float64(e.RectF[2]), float64(e.RectF[3]),
			), op, e.AA)
			continue
		}
		v.ClipPath(segsPath(e.Segs), op, e.AA)
	}
}

func clipOpOf(op ClipOp) clip.Op {
	if op == ClipDifference {
		return clip.Difference
	}
	return clip.Intersect
}

func opOfClip(op clip.Op) ClipOp {
	if op == clip.Difference {
		return ClipDifference
	}
	return ClipIntersect
}

func minmax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// pathSegs converts a path into flat rasterizer segments.
func pathSegs(p *Path) []raster.Seg {
	segs := make([]raster.Seg, 0, len(p.Elements()))
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			segs = append(segs, raster.MoveTo(rp(e.Point)))
		case LineTo:
			segs = append(segs, raster.LineTo(rp(e.Point)))
		case QuadTo:
			segs = append(segs, raster.QuadTo(rp(e.Control), rp(e.Point)))
		case CubicTo:
			segs = append(segs, raster.CubeTo(rp(e.Control1), rp(e.Control2), rp(e.Point)))
		case Close:
			segs = append(segs, raster.Close())
		}
	}
	return segs
}

// segsPath converts rasterizer segments back into a path for clip replay.
func segsPath(segs []raster.Seg) *Path {
	p := NewPath()
	for _, s := range segs {
		switch s.Op {
		case raster.OpMoveTo:
			p.MoveTo(float64(s.Args[0].X), float64(s.Args[0].Y))
		case raster.OpLineTo:
			p.LineTo(float64(s.Args[0].X), float64(s.Args[0].Y))
		case raster.OpQuadTo:
			p.QuadraticTo(float64(s.Args[0].X), float64(s.Args[0].Y),
				float64(s.Args[1].X), float64(s.Args[1].Y))
		case raster.OpCubeTo:
			p.CubicTo(float64(s.Args[0].X), float64(s.Args[0].Y),
				float64(s.Args[1].X), float64(s.Args[1].Y),
				float64(s.Args[2].X), float64(s.Args[2].Y))
		case raster.OpClose:
			p.Close()
		}
	}
	return p
}

func rp(p Point) raster.Point {
	return raster.Point{X: float32(p.X), Y: float32(p.Y)}
}

// Ensure Raster implements Backend.
var _ Backend = (*Raster)(nil)
