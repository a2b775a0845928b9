package canvas

import "image"

// LatticeFlags annotate one lattice cell.
type LatticeFlags uint8

// LatticeTransparent marks a cell that is skipped entirely when drawing.
const LatticeTransparent LatticeFlags = 1 << 0

// Lattice divides an image into a grid for stretch drawing. XDivs and YDivs
// are pixel positions inside Bounds; intervals between divisions alternate
// fixed, stretchable, fixed, starting fixed at the bounds edge. Flags and
// Colors, when present, hold one entry per grid cell in row-major order: a
// transparent cell draws nothing and a cell with an opaque color draws that
// color instead of image pixels.
type Lattice struct {
	XDivs  []int
	YDivs  []int
	Bounds image.Rectangle
	Flags  []LatticeFlags
	Colors []RGBA
}

// NinePatch is the stretch metadata of a nine-patch image: positions where
// the image may stretch and optional per-region colors. Divs are pixel
// offsets from the image origin; regions between consecutive divs (and the
// image edges) alternate fixed and stretchable starting fixed.
type NinePatch struct {
	XDivs  []int32
	YDivs  []int32
	Colors []uint32
}

// Nine-patch region color codes. Any other value is a solid ARGB color for
// the region.
const (
	// NinePatchTransparent marks a fully transparent region that can be
	// skipped.
	NinePatchTransparent uint32 = 0
	// NinePatchNoColor marks a region with no solid-color shortcut.
	NinePatchNoColor uint32 = 0x00000001
)

// Lattice converts the chunk into a Lattice over bounds, translating the
// region color codes into cell flags and colors.
func (n *NinePatch) Lattice(bounds image.Rectangle) Lattice {
	lat := Lattice{
		XDivs:  make([]int, len(n.XDivs)),
		YDivs:  make([]int, len(n.YDivs)),
		Bounds: bounds,
	}
	for i, d := range n.XDivs {
		lat.XDivs[i] = bounds.Min.X + int(d)
	}
	for i, d := range n.YDivs {
		lat.YDivs[i] = bounds.Min.Y + int(d)
	}

	cells := (len(n.XDivs) + 1) * (len(n.YDivs) + 1)
	if len(n.Colors) < cells {
		return lat
	}
	lat.Flags = make([]LatticeFlags, cells)
	lat.Colors = make([]RGBA, cells)
	for i := 0; i < cells; i++ {
		switch c := n.Colors[i]; c {
		case NinePatchTransparent:
			lat.Flags[i] = LatticeTransparent
		case NinePatchNoColor:
			// Cell draws its image pixels.
		default:
			lat.Colors[i] = argbColor(c)
		}
	}
	return lat
}

// argbColor converts a packed 0xAARRGGBB value.
func argbColor(c uint32) RGBA {
	return RGBA{
		R: float64(c>>16&0xFF) / 255,
		G: float64(c>>8&0xFF) / 255,
		B: float64(c&0xFF) / 255,
		A: float64(c>>24&0xFF) / 255,
	}
}
