package canvas

import "image"

// Style selects whether geometry is filled, stroked, or both.
type Style uint8

const (
	// StyleFill fills the interior of the geometry.
	StyleFill Style = iota
	// StyleStroke strokes the outline of the geometry.
	StyleStroke
	// StyleStrokeAndFill does both.
	StyleStrokeAndFill
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// ImageShader sources paint color from an image sampled through texture
// coordinates. Used by vertex meshes.
type ImageShader struct {
	Image image.Image
}

// Paint represents the styling information for drawing.
type Paint struct {
	// Color is the solid fill or stroke color.
	Color RGBA

	// Shader, when set, sources color from an image instead of Color.
	// Color.A still scales the result.
	Shader *ImageShader

	// Style selects fill, stroke, or both.
	Style Style

	// StrokeWidth is the width of strokes.
	StrokeWidth float64

	// StrokeCap is the shape of line endpoints.
	StrokeCap LineCap

	// StrokeJoin is the shape of line joins.
	StrokeJoin LineJoin

	// MiterLimit is the miter limit for sharp joins.
	MiterLimit float64

	// BlendMode is the compositing operator.
	BlendMode BlendMode

	// Antialias enables anti-aliasing.
	Antialias bool
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Color:       Black,
		Style:       StyleFill,
		StrokeWidth: 1.0,
		StrokeCap:   LineCapButt,
		StrokeJoin:  LineJoinMiter,
		MiterLimit:  10.0,
		BlendMode:   BlendSrcOver,
		Antialias:   true,
	}
}

// Clone creates a copy of the Paint. Nil clones to defaults.
func (p *Paint) Clone() *Paint {
	if p == nil {
		return NewPaint()
	}
	c := *p
	return &c
}

// Alpha returns the color alpha as an 8-bit value.
func (p *Paint) Alpha() uint8 {
	return p.Color.Alpha8()
}

// SetAlpha replaces the color alpha, leaving the color channels alone.
func (p *Paint) SetAlpha(a uint8) {
	p.Color.A = float64(a) / 255
}

// NothingToDraw reports whether drawing with this paint cannot affect any
// pixels, so the draw call may be skipped. Nil paints draw with defaults.
func (p *Paint) NothingToDraw() bool {
	if p == nil {
		return false
	}
	switch p.BlendMode {
	case BlendSrcOver, BlendModulate:
		return p.Color.A <= 0
	default:
		return false
	}
}

// orDefault returns the paint or a default paint when nil, so backends can
// dereference freely.
func (p *Paint) orDefault() *Paint {
	if p == nil {
		return NewPaint()
	}
	return p
}
