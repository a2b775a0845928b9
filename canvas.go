package canvas

import (
	"image"

	"github.com/gogpu/canvas/render"
)

// saveRecord tracks one partial save frame. It exists only for saves that
// preserve at least one aspect; plain SaveMatrixClip saves ride entirely on
// the backend's own stack.
type saveRecord struct {
	// saveCount is the backend save count observed right after the
	// backend save for this frame. The record is only authoritative
	// while the backend still reports this exact count.
	saveCount int

	preserveMatrix bool
	preserveClip   bool

	// clipIndex marks where this frame's clip log entries begin.
	clipIndex int
}

// Canvas is a 2D drawing canvas with partial save/restore semantics layered
// over a Backend. Draw calls pass through to the backend after degenerate
// input checks; save, restore, and clip calls are intercepted to maintain
// the partial save bookkeeping.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	backend Backend
	saves   []saveRecord
	clips   []clipRecord
}

// New creates a canvas with a software raster backend of the given size.
// Options may substitute a different backend or render target.
func New(width, height int, opts ...Option) *Canvas {
	cfg := config{width: width, height: height}
	for _, opt := range opts {
		opt(&cfg)
	}
	b := cfg.backend
	if b == nil {
		if cfg.target != nil {
			b = NewRasterForTarget(cfg.target)
		} else {
			b = NewRaster(width, height)
		}
	}
	return &Canvas{backend: b}
}

// NewForImage creates a canvas drawing directly into img.
func NewForImage(img *image.RGBA) *Canvas {
	return &Canvas{backend: NewRasterForImage(img)}
}

// NewForBackend wraps an existing backend.
func NewForBackend(b Backend) *Canvas {
	return &Canvas{backend: b}
}

// Backend returns the underlying rendering backend.
func (c *Canvas) Backend() Backend { return c.backend }

// Target returns the render target of the current backend.
func (c *Canvas) Target() render.RenderTarget { return c.backend.Target() }

// Width returns the target width in pixels.
func (c *Canvas) Width() int { return c.backend.Width() }

// Height returns the target height in pixels.
func (c *Canvas) Height() int { return c.backend.Height() }

// SetTarget swaps the canvas onto a new render target. The current total
// transform and the accumulated clip region carry over to the new surface;
// the save stack and the partial save bookkeeping are discarded, so the
// canvas comes back at base save depth.
func (c *Canvas) SetTarget(target render.RenderTarget) {
	next := c.backend.MakeSurface(target)
	if target != nil && target.Width() > 0 && target.Height() > 0 {
		// The new backend transform is identity here, so replayed
		// device-space shapes land unchanged.
		c.backend.ReplayClips(&clipCopier{dst: next})
		next.SetMatrix(c.backend.TotalMatrix())
	}
	c.backend = next
	c.saves = c.saves[:0]
	c.clips = c.clips[:0]
}

// SetPixmap swaps the canvas onto img, carrying transform and clip over.
func (c *Canvas) SetPixmap(img *image.RGBA) {
	c.SetTarget(render.NewPixmapTargetForImage(img))
}

// clipCopier replays one backend's clip region onto another.
type clipCopier struct {
	dst Backend
}

func (cc *clipCopier) ClipRect(r Rect, op ClipOp, antialias bool) {
	cc.dst.ClipRect(r, op, antialias)
}

func (cc *clipCopier) ClipRRect(rr RRect, op ClipOp, antialias bool) {
	cc.dst.ClipRRect(rr, op, antialias)
}

func (cc *clipCopier) ClipPath(p *Path, op ClipOp, antialias bool) {
	cc.dst.ClipPath(p, op, antialias)
}

// SaveCount reports the backend save depth. A fresh canvas reports 1.
func (c *Canvas) SaveCount() int { return c.backend.SaveCount() }

// Save pushes a save frame. Flags select which aspects the paired Restore
// rolls back: an absent SaveMatrix or SaveClip bit means that aspect's
// mutations inside the frame survive the restore. Returns the value to
// pass to RestoreToCount to unwind this frame.
func (c *Canvas) Save(flags SaveFlags) int {
	count := c.backend.Save()
	c.recordPartialSave(flags)
	return count
}

// recordPartialSave pushes a saveRecord when flags leave an aspect
// preserved. Runs after the backend save so the recorded count matches the
// frame just created.
func (c *Canvas) recordPartialSave(flags SaveFlags) {
	if !flags.partial() {
		return
	}
	pm, pc := flags.preserve()
	c.saves = append(c.saves, saveRecord{
		saveCount:      c.backend.SaveCount(),
		preserveMatrix: pm,
		preserveClip:   pc,
		clipIndex:      len(c.clips),
	})
}

// currentSaveRec returns the top save record if it belongs to the live
// backend frame, nil otherwise.
func (c *Canvas) currentSaveRec() *saveRecord {
	if len(c.saves) == 0 {
		return nil
	}
	rec := &c.saves[len(c.saves)-1]
	count := c.backend.SaveCount()
	if rec.saveCount > count {
		panic("canvas: save record ahead of backend save count")
	}
	if rec.saveCount != count {
		return nil
	}
	return rec
}

// Restore pops the current save frame, honoring the preservation requested
// by the matching Save.
func (c *Canvas) Restore() {
	rec := c.currentSaveRec()
	if rec == nil {
		c.backend.Restore()
		return
	}

	var m Matrix
	if rec.preserveMatrix {
		m = c.backend.TotalMatrix()
	}

	c.backend.Restore()

	preserveClip := rec.preserveClip
	clipIndex := rec.clipIndex
	c.saves = c.saves[:len(c.saves)-1]

	if rec.preserveMatrix {
		c.backend.SetMatrix(m)
	}
	if preserveClip {
		c.applyPersistentClips(clipIndex)
	}
}

// RestoreToCount pops save frames until the save depth is back to count.
// Counts at or above the current depth are a no-op, so the call is
// idempotent.
func (c *Canvas) RestoreToCount(count int) {
	if count < 1 {
		count = 1
	}
	for c.backend.SaveCount() > count {
		c.Restore()
	}
}

// applyPersistentClips replays the logged clip operations from start
// against the freshly restored backend state, then retires them unless the
// frame now on top also preserves clip, in which case the entries telescope
// into it.
func (c *Canvas) applyPersistentClips(start int) {
	if start > len(c.clips) {
		panic("canvas: clip log index out of range")
	}

	m := c.backend.TotalMatrix()
	for i := start; i < len(c.clips); i++ {
		c.clips[i].apply(c.backend)
	}
	c.backend.SetMatrix(m)

	if rec := c.currentSaveRec(); rec == nil || !rec.preserveClip {
		c.clips = c.clips[:start]
	}
}

// SaveLayer pushes a save frame that redirects drawing into an offscreen
// layer composited through paint on Restore. Layer saves are never partial:
// both transform and clip roll back with the frame.
func (c *Canvas) SaveLayer(bounds Rect, paint *Paint, flags SaveFlags) int {
	return c.backend.SaveLayer(bounds, paint, flags&SaveClipToLayer != 0)
}

// SaveLayerAlpha is SaveLayer with a uniform layer opacity.
func (c *Canvas) SaveLayerAlpha(bounds Rect, alpha uint8, flags SaveFlags) int {
	var paint *Paint
	if alpha < 0xFF {
		paint = NewPaint()
		paint.SetAlpha(alpha)
	}
	return c.SaveLayer(bounds, paint, flags)
}

// Translate post-multiplies the transform by a translation.
func (c *Canvas) Translate(dx, dy float64) {
	c.backend.Concat(Translate(dx, dy))
}

// Scale post-multiplies the transform by a scale.
func (c *Canvas) Scale(sx, sy float64) {
	c.backend.Concat(Scale(sx, sy))
}

// Rotate post-multiplies the transform by a rotation in radians.
func (c *Canvas) Rotate(radians float64) {
	c.backend.Concat(Rotate(radians))
}

// Skew post-multiplies the transform by a shear.
func (c *Canvas) Skew(sx, sy float64) {
	c.backend.Concat(Shear(sx, sy))
}

// Concat post-multiplies the transform by m.
func (c *Canvas) Concat(m Matrix) {
	c.backend.Concat(m)
}

// SetMatrix replaces the transform.
func (c *Canvas) SetMatrix(m Matrix) {
	c.backend.SetMatrix(m)
}

// ResetMatrix replaces the transform with identity.
func (c *Canvas) ResetMatrix() {
	c.backend.SetMatrix(Identity())
}

// TotalMatrix returns the current transform.
func (c *Canvas) TotalMatrix() Matrix {
	return c.backend.TotalMatrix()
}

// ClipRect combines a user-space rectangle into the clip region. Returns
// whether the resulting clip is non-empty.
func (c *Canvas) ClipRect(r Rect, op ClipOp) bool {
	if c.recordingClips() {
		c.clips = append(c.clips, rectClipRecord(r, op, c.backend.TotalMatrix()))
	}
	c.backend.ClipRect(r, op, true)
	return !c.backend.IsClipEmpty()
}

// ClipRRect combines a user-space rounded rectangle into the clip region.
func (c *Canvas) ClipRRect(rr RRect, op ClipOp) bool {
	if c.recordingClips() {
		c.clips = append(c.clips, rrectClipRecord(rr, op, c.backend.TotalMatrix()))
	}
	c.backend.ClipRRect(rr, op, true)
	return !c.backend.IsClipEmpty()
}

// ClipPath combines a user-space path into the clip region. Paths that are
// really rounded rects degrade to the rrect form.
func (c *Canvas) ClipPath(p *Path, op ClipOp) bool {
	if rr, ok := p.AsRRect(); ok {
		return c.ClipRRect(rr, op)
	}
	// The record clones the path, so build it only when recording.
	if c.recordingClips() {
		c.clips = append(c.clips, pathClipRecord(p, op, c.backend.TotalMatrix()))
	}
	c.backend.ClipPath(p, op, true)
	return !c.backend.IsClipEmpty()
}

// recordingClips reports whether clip operations must be logged: the live
// save frame wants its clip mutations to outlive the backend restore.
// Replay never comes back through here; applyPersistentClips talks to the
// backend directly.
func (c *Canvas) recordingClips() bool {
	cur := c.currentSaveRec()
	return cur != nil && cur.preserveClip
}

// IsClipEmpty reports whether the clip excludes everything.
func (c *Canvas) IsClipEmpty() bool {
	return c.backend.IsClipEmpty()
}

// ClipBounds returns a conservative user-space bound of the clip region.
// ok is false when the clip is empty.
func (c *Canvas) ClipBounds() (Rect, bool) {
	dev, ok := c.backend.ClipBounds()
	if !ok {
		return Rect{}, false
	}
	inv, ok := c.backend.TotalMatrix().Invert()
	if !ok {
		return Rect{}, false
	}
	return inv.TransformRect(dev), true
}

// QuickReject reports whether a user-space rectangle falls entirely
// outside the clip region after transformation.
func (c *Canvas) QuickReject(r Rect) bool {
	dev, ok := c.backend.ClipBounds()
	if !ok {
		return true
	}
	return !c.backend.TotalMatrix().TransformRect(r).Intersects(dev)
}
