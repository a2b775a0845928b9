// Package clip maintains the device-space clip region for the software
// backend. The region keeps the full history of clip entries so that save
// frames can roll back by entry count and so that the whole region can be
// enumerated for replay onto another surface.
package clip

import (
	"image"

	"github.com/gogpu/canvas/internal/raster"
)

// Op combines a shape with the current region.
type Op uint8

const (
	// Intersect keeps only the area inside the shape.
	Intersect Op = iota
	// Difference removes the area inside the shape.
	Difference
)

// Entry is one applied clip operation, kept in device space.
type Entry struct {
	// Segs is the device-space outline. Present for every entry.
	Segs []raster.Seg
	// IsRect marks entries that are axis-aligned rectangles; Rect then
	// holds the exact device rectangle.
	IsRect bool
	Rect   image.Rectangle
	// RectF holds the fractional rectangle for IsRect entries.
	RectF [4]float32
	Op    Op
	AA    bool
}

// Region is the accumulated clip for one surface. A region with no entries
// admits everything.
type Region struct {
	width, height int
	entries       []Entry
	// mask is nil while no entries exist (full coverage). Otherwise it
	// holds per-pixel coverage over the whole surface.
	mask *image.Alpha
	// bounds conservatively encloses all admitted pixels.
	bounds image.Rectangle
}

// New creates an open region for a surface of the given size.
func New(width, height int) *Region {
	return &Region{
		width:  width,
		height: height,
		bounds: image.Rect(0, 0, width, height),
	}
}

// PushRect intersects or subtracts an axis-aligned device rectangle.
func (r *Region) PushRect(x0, y0, x1, y1 float32, op Op, aa bool) {
	e := Entry{
		IsRect: true,
		Rect: image.Rect(
			int(x0), int(y0),
			int(x1+0.5), int(y1+0.5),
		),
		RectF: [4]float32{x0, y0, x1, y1},
		Op:    op,
		AA:    aa,
		Segs: []raster.Seg{
			raster.MoveTo(raster.Point{X: x0, Y: y0}),
			raster.LineTo(raster.Point{X: x1, Y: y0}),
			raster.LineTo(raster.Point{X: x1, Y: y1}),
			raster.LineTo(raster.Point{X: x0, Y: y1}),
			raster.Close(),
		},
	}
	r.entries = append(r.entries, e)
	r.applyEntry(e)
}

// PushPath intersects or subtracts an arbitrary device-space outline.
func (r *Region) PushPath(segs []raster.Seg, op Op, aa bool) {
	e := Entry{Segs: segs, Op: op, AA: aa}
	r.entries = append(r.entries, e)
	r.applyEntry(e)
}

// Mark returns the current entry count for later rollback.
func (r *Region) Mark() int { return len(r.entries) }

// RestoreTo drops entries past mark and rebuilds coverage.
func (r *Region) RestoreTo(mark int) {
	if mark < 0 || mark > len(r.entries) {
		return
	}
	if mark == len(r.entries) {
		return
	}
	r.entries = r.entries[:mark]
	r.rebuild()
}

// Entries returns the applied clip history in order. The slice is shared;
// callers must not mutate it.
func (r *Region) Entries() []Entry { return r.entries }

// Mask returns the per-pixel coverage, or nil when the region is fully
// open.
func (r *Region) Mask() *image.Alpha { return r.mask }

// Bounds returns a conservative pixel bound of the admitted area.
func (r *Region) Bounds() image.Rectangle { return r.bounds }

// IsEmpty reports whether nothing can pass the clip.
func (r *Region) IsEmpty() bool {
	if r.bounds.Empty() {
		return true
	}
	if r.mask == nil {
		return false
	}
	for y := r.bounds.Min.Y; y < r.bounds.Max.Y; y++ {
		base := r.mask.PixOffset(r.bounds.Min.X, y)
		for x := 0; x < r.bounds.Dx(); x++ {
			if r.mask.Pix[base+x] != 0 {
				return false
			}
		}
	}
	return true
}

// Coverage returns the admitted coverage at one pixel.
func (r *Region) Coverage(x, y int) uint8 {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0
	}
	if r.mask == nil {
		return 0xFF
	}
	return r.mask.AlphaAt(x, y).A
}

func (r *Region) rebuild() {
	r.mask = nil
	r.bounds = image.Rect(0, 0, r.width, r.height)
	for _, e := range r.entries {
		r.applyEntry(e)
	}
}

func (r *Region) applyEntry(e Entry) {
	if r.mask == nil {
		r.mask = fullMask(r.width, r.height)
	}
	shape := raster.Rasterize(e.Segs, r.width, r.height)
	if !e.AA {
		harden(shape)
	}

	switch e.Op {
	case Intersect:
		mulMask(r.mask, shape)
		r.bounds = r.bounds.Intersect(raster.SegBounds(e.Segs).Intersect(image.Rect(0, 0, r.width, r.height)))
	case Difference:
		mulInvMask(r.mask, shape)
	}
}

func fullMask(w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = 0xFF
	}
	return m
}

// harden snaps anti-aliased coverage to hard edges.
func harden(m *image.Alpha) {
	for i, v := range m.Pix {
		if v >= 0x80 {
			m.Pix[i] = 0xFF
		} else {
			m.Pix[i] = 0
		}
	}
}

func mulMask(dst, src *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8(uint32(dst.Pix[i]) * uint32(src.Pix[i]) / 0xFF)
	}
}

func mulInvMask(dst, src *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8(uint32(dst.Pix[i]) * uint32(0xFF-src.Pix[i]) / 0xFF)
	}
}
