package canvas

import (
	"image"

	"github.com/gogpu/canvas/render"
	"github.com/gogpu/canvas/text"
)

// ClipOp combines a clip shape with the current clip region.
type ClipOp uint8

const (
	// ClipIntersect keeps only the area inside the shape.
	ClipIntersect ClipOp = iota
	// ClipDifference removes the area inside the shape.
	ClipDifference
)

// String returns the name of the clip operation.
func (op ClipOp) String() string {
	switch op {
	case ClipIntersect:
		return "intersect"
	case ClipDifference:
		return "difference"
	default:
		return "unknown"
	}
}

// PointMode controls how DrawPoints interprets its point list.
type PointMode uint8

const (
	// PointsMode draws each point as a separate dot.
	PointsMode PointMode = iota
	// LinesMode draws each pair of points as a line segment.
	LinesMode
	// PolygonMode draws the points as a connected open polygon.
	PolygonMode
)

// BlendMode selects the compositing operator for draw calls.
type BlendMode uint8

const (
	// BlendSrcOver composites source over destination (default).
	BlendSrcOver BlendMode = iota
	// BlendSrc replaces the destination with the source.
	BlendSrc
	// BlendClear sets the destination to transparent.
	BlendClear
	// BlendModulate multiplies source and destination.
	BlendModulate
)

// ClipVisitor receives the clip shapes accumulated on a backend, in
// application order and in device space. Backends report axis-aligned
// rectangles through ClipRect and everything else through ClipPath;
// ClipRRect is reserved for backends that keep rounded rects intact.
type ClipVisitor interface {
	ClipRect(r Rect, op ClipOp, antialias bool)
	ClipRRect(rr RRect, op ClipOp, antialias bool)
	ClipPath(p *Path, op ClipOp, antialias bool)
}

// Backend is the rendering surface underneath a Canvas. It owns a save
// stack with monolithic semantics: Restore always rolls back both the
// transform and the clip to their state at the matching Save. The partial
// semantics exposed by Canvas are reconstructed on top of this contract.
//
// Geometry passed to draw and clip calls is in user space; the backend
// applies its current transform.
type Backend interface {
	// Save pushes a snapshot of the transform and clip and returns the
	// save count to pass to RestoreToCount-style unwinding, i.e. the
	// count before the push.
	Save() int

	// SaveLayer pushes a save frame that additionally redirects drawing
	// into an offscreen layer. The layer is composited through paint when
	// the frame is restored. If clipToLayer is set, drawing is clipped to
	// bounds for the duration of the frame. Returns the same count Save
	// would.
	SaveLayer(bounds Rect, paint *Paint, clipToLayer bool) int

	// Restore pops the top save frame. Popping the base frame is a no-op.
	Restore()

	// SaveCount reports the current save depth. A fresh backend reports 1.
	SaveCount() int

	// TotalMatrix returns the current transform.
	TotalMatrix() Matrix

	// SetMatrix replaces the current transform.
	SetMatrix(m Matrix)

	// Concat post-multiplies the current transform by m.
	Concat(m Matrix)

	ClipRect(r Rect, op ClipOp, antialias bool)
	ClipRRect(rr RRect, op ClipOp, antialias bool)
	ClipPath(p *Path, op ClipOp, antialias bool)

	// IsClipEmpty reports whether the clip region excludes everything.
	IsClipEmpty() bool

	// ClipBounds returns a conservative device-space bound of the clip
	// region. ok is false when the clip is empty.
	ClipBounds() (bounds Rect, ok bool)

	// ReplayClips walks every clip operation currently in effect, in
	// application order, in device space.
	ReplayClips(v ClipVisitor)

	// MakeSurface creates a fresh backend of the same kind drawing into
	// target, with an identity transform, an open clip, and save depth 1.
	MakeSurface(target render.RenderTarget) Backend

	// Target returns the render target this backend draws into.
	Target() render.RenderTarget

	Width() int
	Height() int

	DrawPaint(paint *Paint)
	DrawColor(c RGBA, mode BlendMode)
	DrawPoints(mode PointMode, pts []Point, paint *Paint)
	DrawRect(r Rect, paint *Paint)
	DrawRRect(rr RRect, paint *Paint)
	DrawOval(oval Rect, paint *Paint)
	DrawArc(oval Rect, startAngle, sweepAngle float64, useCenter bool, paint *Paint)
	DrawPath(p *Path, paint *Paint)
	DrawImageRect(img image.Image, src, dst Rect, paint *Paint)
	DrawImageLattice(img image.Image, lat Lattice, dst Rect, paint *Paint)
	DrawVertices(v *Vertices, mode BlendMode, paint *Paint)
	DrawGlyphs(run *text.Run, origin Point, paint *Paint)
	DrawGlyphsXform(run *text.Run, xforms []RSXform, paint *Paint)
}
