package raster

import (
	"image"
	"image/color"
)

// Vertex is one corner of a textured, colored triangle.
type Vertex struct {
	Pos Point
	// UV is a texture coordinate in texels when a texture is present.
	UV Point
	// Color is straight-alpha, each channel in [0, 1].
	Color [4]float32
}

// FillTriangle rasterizes one triangle into dst with barycentric
// interpolation of vertex colors and optional nearest-neighbor texture
// sampling. Vertex colors modulate the texture when both are present.
// Coverage is binary per pixel center; the optional clip mask still
// applies.
func FillTriangle(dst *image.RGBA, clip *image.Alpha, v0, v1, v2 Vertex, tex *image.RGBA, useUV, useColor bool, mode Blend) {
	minX := int(floor32(min32(v0.Pos.X, min32(v1.Pos.X, v2.Pos.X))))
	minY := int(floor32(min32(v0.Pos.Y, min32(v1.Pos.Y, v2.Pos.Y))))
	maxX := int(ceil32(max32(v0.Pos.X, max32(v1.Pos.X, v2.Pos.X))))
	maxY := int(ceil32(max32(v0.Pos.Y, max32(v1.Pos.Y, v2.Pos.Y))))

	area := image.Rect(minX, minY, maxX, maxY).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	d := edgeFn(v0.Pos, v1.Pos, v2.Pos)
	if d == 0 {
		return
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			p := Point{float32(x) + 0.5, float32(y) + 0.5}
			w0 := edgeFn(v1.Pos, v2.Pos, p) / d
			w1 := edgeFn(v2.Pos, v0.Pos, p) / d
			w2 := edgeFn(v0.Pos, v1.Pos, p) / d
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			col := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
			if useColor {
				col = color.NRGBA{
					R: channel(w0*v0.Color[0] + w1*v1.Color[0] + w2*v2.Color[0]),
					G: channel(w0*v0.Color[1] + w1*v1.Color[1] + w2*v2.Color[1]),
					B: channel(w0*v0.Color[2] + w1*v1.Color[2] + w2*v2.Color[2]),
					A: channel(w0*v0.Color[3] + w1*v1.Color[3] + w2*v2.Color[3]),
				}
			}
			if useUV && tex != nil {
				tu := w0*v0.UV.X + w1*v1.UV.X + w2*v2.UV.X
				tv := w0*v0.UV.Y + w1*v1.UV.Y + w2*v2.UV.Y
				tc := sampleNRGBA(tex, int(tu), int(tv))
				col = color.NRGBA{
					R: uint8(uint32(col.R) * uint32(tc.R) / 0xFF),
					G: uint8(uint32(col.G) * uint32(tc.G) / 0xFF),
					B: uint8(uint32(col.B) * uint32(tc.B) / 0xFF),
					A: uint8(uint32(col.A) * uint32(tc.A) / 0xFF),
				}
			}

			cov := uint32(0xFF)
			if clip != nil {
				cov = uint32(clip.AlphaAt(x, y).A)
				if cov == 0 {
					continue
				}
			}
			px := dst.Pix[dst.PixOffset(x, y) : dst.PixOffset(x, y)+4 : dst.PixOffset(x, y)+4]
			blendPixel(px, col, cov, mode)
		}
	}
}

// edgeFn is twice the signed area of triangle (a, b, c).
func edgeFn(a, b, c Point) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// sampleNRGBA reads a clamped texel as straight alpha.
func sampleNRGBA(tex *image.RGBA, x, y int) color.NRGBA {
	b := tex.Bounds()
	if x < b.Min.X {
		x = b.Min.X
	}
	if x >= b.Max.X {
		x = b.Max.X - 1
	}
	if y < b.Min.Y {
		y = b.Min.Y
	}
	if y >= b.Max.Y {
		y = b.Max.Y - 1
	}
	if b.Empty() {
		return color.NRGBA{}
	}
	o := tex.PixOffset(x, y)
	a := tex.Pix[o+3]
	if a == 0 {
		return color.NRGBA{}
	}
	// Unpremultiply.
	return color.NRGBA{
		R: uint8(uint32(tex.Pix[o]) * 0xFF / uint32(a)),
		G: uint8(uint32(tex.Pix[o+1]) * 0xFF / uint32(a)),
		B: uint8(uint32(tex.Pix[o+2]) * 0xFF / uint32(a)),
		A: a,
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
