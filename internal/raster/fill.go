package raster

import (
	"image"
	"image/color"
)

// Blend selects the compositing operator for FillMask.
type Blend uint8

const (
	// BlendSrcOver composites source over destination.
	BlendSrcOver Blend = iota
	// BlendSrc replaces the destination, weighted by coverage.
	BlendSrc
	// BlendClear erases the destination, weighted by coverage.
	BlendClear
	// BlendModulate multiplies destination by source, weighted by coverage.
	BlendModulate
)

// FillPath rasterizes segments and blends col into dst wherever coverage
// and the optional clip mask agree. The clip mask must cover dst's bounds
// when present.
func FillPath(dst *image.RGBA, segs []Seg, col color.NRGBA, clip *image.Alpha, mode Blend) {
	b := dst.Bounds()
	mask := Rasterize(segs, b.Dx(), b.Dy())
	area := SegBounds(segs).Intersect(b)
	FillMask(dst, area, mask, clip, col, mode)
}

// FillMask blends col into dst over area, scaling by mask coverage and the
// optional clip mask. Either mask may be nil, meaning full coverage.
func FillMask(dst *image.RGBA, area image.Rectangle, mask, clip *image.Alpha, col color.NRGBA, mode Blend) {
	area = area.Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(area.Min.X, y) : dst.PixOffset(area.Max.X, y):dst.PixOffset(area.Max.X, y)]
		for x := area.Min.X; x < area.Max.X; x++ {
			cov := uint32(0xFF)
			if mask != nil {
				cov = uint32(mask.AlphaAt(x, y).A)
			}
			if clip != nil {
				cov = cov * uint32(clip.AlphaAt(x, y).A) / 0xFF
			}
			if cov == 0 {
				continue
			}
			px := row[(x-area.Min.X)*4 : (x-area.Min.X)*4+4 : (x-area.Min.X)*4+4]
			blendPixel(px, col, cov, mode)
		}
	}
}

// blendPixel composites a straight-alpha color into one premultiplied RGBA
// pixel with the given coverage in [0, 255].
func blendPixel(px []uint8, col color.NRGBA, cov uint32, mode Blend) {
	// Source, premultiplied and coverage-scaled.
	sa := uint32(col.A) * cov / 0xFF
	sr := uint32(col.R) * sa / 0xFF
	sg := uint32(col.G) * sa / 0xFF
	sb := uint32(col.B) * sa / 0xFF

	dr := uint32(px[0])
	dg := uint32(px[1])
	db := uint32(px[2])
	da := uint32(px[3])

	switch mode {
	case BlendSrcOver:
		inv := 0xFF - sa
		px[0] = uint8(sr + dr*inv/0xFF)
		px[1] = uint8(sg + dg*inv/0xFF)
		px[2] = uint8(sb + db*inv/0xFF)
		px[3] = uint8(sa + da*inv/0xFF)
	case BlendSrc:
		// Lerp toward the raw source by coverage.
		fr := uint32(col.R) * uint32(col.A) / 0xFF
		fg := uint32(col.G) * uint32(col.A) / 0xFF
		fb := uint32(col.B) * uint32(col.A) / 0xFF
		inv := 0xFF - cov
		px[0] = uint8((fr*cov + dr*inv) / 0xFF)
		px[1] = uint8((fg*cov + dg*inv) / 0xFF)
		px[2] = uint8((fb*cov + db*inv) / 0xFF)
		px[3] = uint8((uint32(col.A)*cov + da*inv) / 0xFF)
	case BlendClear:
		inv := 0xFF - cov
		px[0] = uint8(dr * inv / 0xFF)
		px[1] = uint8(dg * inv / 0xFF)
		px[2] = uint8(db * inv / 0xFF)
		px[3] = uint8(da * inv / 0xFF)
	case BlendModulate:
		mr := dr * sr / 0xFF
		mg := dg * sg / 0xFF
		mb := db * sb / 0xFF
		ma := da * sa / 0xFF
		inv := 0xFF - cov
		px[0] = uint8((mr*cov + dr*inv) / 0xFF)
		px[1] = uint8((mg*cov + dg*inv) / 0xFF)
		px[2] = uint8((mb*cov + db*inv) / 0xFF)
		px[3] = uint8((ma*cov + da*inv) / 0xFF)
	}
}

// Composite draws src over dst with a uniform extra alpha in [0, 255],
// additionally gated by an optional clip mask. Both images must share
// bounds geometry.
func Composite(dst, src *image.RGBA, alpha uint8, clip *image.Alpha) {
	b := dst.Bounds().Intersect(src.Bounds())
	if b.Empty() {
		return
	}
	ga := uint32(alpha)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			so := src.PixOffset(x, y)
			sa := uint32(src.Pix[so+3])
			if sa == 0 {
				continue
			}
			cov := ga
			if clip != nil {
				cov = cov * uint32(clip.AlphaAt(x, y).A) / 0xFF
			}
			if cov == 0 {
				continue
			}
			sr := uint32(src.Pix[so]) * cov / 0xFF
			sg := uint32(src.Pix[so+1]) * cov / 0xFF
			sb := uint32(src.Pix[so+2]) * cov / 0xFF
			sca := sa * cov / 0xFF

			do := dst.PixOffset(x, y)
			inv := 0xFF - sca
			dst.Pix[do] = uint8(sr + uint32(dst.Pix[do])*inv/0xFF)
			dst.Pix[do+1] = uint8(sg + uint32(dst.Pix[do+1])*inv/0xFF)
			dst.Pix[do+2] = uint8(sb + uint32(dst.Pix[do+2])*inv/0xFF)
			dst.Pix[do+3] = uint8(sca + uint32(dst.Pix[do+3])*inv/0xFF)
		}
	}
}
