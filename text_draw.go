package canvas

import (
	"math"

	"github.com/gogpu/canvas/text"
)

// RSXform is a compressed rotate-scale-translate transform: a uniform scale
// and rotation packed into SCos and SSin plus a translation. It maps
// (x, y) to (SCos*x - SSin*y + TX, SSin*x + SCos*y + TY).
type RSXform struct {
	SCos, SSin float64
	TX, TY     float64
}

// RSXformRotate builds an RSXform from scale, rotation in radians, and
// translation.
func RSXformRotate(scale, radians, tx, ty float64) RSXform {
	return RSXform{
		SCos: scale * math.Cos(radians),
		SSin: scale * math.Sin(radians),
		TX:   tx,
		TY:   ty,
	}
}

// Matrix expands the transform to a full affine matrix.
func (x RSXform) Matrix() Matrix {
	return Matrix{
		A: x.SCos, B: -x.SSin, C: x.TX,
		D: x.SSin, E: x.SCos, F: x.TY,
	}
}

// DrawText shapes and draws a string with its baseline origin at (x, y),
// using the package-wide shaper with left-to-right base direction.
func (c *Canvas) DrawText(face *text.Face, s string, x, y, size float64, paint *Paint) {
	if face == nil || s == "" || paint.NothingToDraw() {
		return
	}
	c.DrawTextRun(text.Shape(face, s, size, text.DirectionLTR), x, y, paint)
}

// DrawTextRun draws a shaped glyph run with its baseline origin at (x, y).
func (c *Canvas) DrawTextRun(run *text.Run, x, y float64, paint *Paint) {
	if run == nil || run.Face == nil || len(run.Glyphs) == 0 || paint.NothingToDraw() {
		return
	}
	c.backend.DrawGlyphs(run, Pt(x, y), paint)
}

// DrawTextOnPath draws a shaped run along p. Each glyph is rotated to the
// path tangent at the point where its advance midpoint lands; hOffset
// shifts glyphs along the path and vOffset offsets them from it along the
// baseline normal. Glyphs whose midpoint falls outside the path keep their
// pen position, unrotated.
func (c *Canvas) DrawTextOnPath(run *text.Run, p *Path, hOffset, vOffset float64, paint *Paint) {
	if run == nil || run.Face == nil || len(run.Glyphs) == 0 || paint.NothingToDraw() {
		return
	}
	if p == nil || p.IsEmpty() {
		return
	}
	meas := newPathMeasure(p)
	if meas.Length() <= 0 {
		return
	}

	xforms := make([]RSXform, 0, len(run.Glyphs))
	for _, g := range run.Glyphs {
		half := g.XAdvance / 2
		d := hOffset + g.X + half
		pos, tan, ok := meas.PosTan(d)
		if !ok {
			pos, tan = Pt(d, 0), Pt(1, 0)
		}
		// Place the glyph so its advance midpoint sits on the path,
		// offset by vOffset along the normal, plus the glyph's own
		// vertical shaping offset.
		dy := vOffset + g.Y
		xforms = append(xforms, RSXform{
			SCos: tan.X,
			SSin: tan.Y,
			TX:   pos.X - tan.X*half - tan.Y*dy,
			TY:   pos.Y - tan.Y*half + tan.X*dy,
		})
	}
	c.backend.DrawGlyphsXform(run, xforms, paint)
}

// pathMeasure samples a flattened path for position and tangent queries by
// arc length. Distances accumulate across contours; contour gaps contribute
// no length.
type pathMeasure struct {
	pts []Point
	// cum[i] is the arc length at pts[i]. gap[i] marks pts[i] as the start
	// of a new contour, so the segment ending at it has no extent.
	cum []float64
	gap []bool
}

func newPathMeasure(p *Path) *pathMeasure {
	m := &pathMeasure{}
	for _, c := range p.FlattenContours() {
		pts := c.Points
		if c.Closed && len(pts) > 1 {
			pts = append(append([]Point(nil), pts...), pts[0])
		}
		for i, pt := range pts {
			total := 0.0
			if n := len(m.cum); n > 0 {
				total = m.cum[n-1]
			}
			if i == 0 {
				m.pts = append(m.pts, pt)
				m.cum = append(m.cum, total)
				m.gap = append(m.gap, true)
				continue
			}
			m.pts = append(m.pts, pt)
			m.cum = append(m.cum, total+pt.Distance(m.pts[len(m.pts)-2]))
			m.gap = append(m.gap, false)
		}
	}
	return m
}

// Length returns the total arc length.
func (m *pathMeasure) Length() float64 {
	if len(m.cum) == 0 {
		return 0
	}
	return m.cum[len(m.cum)-1]
}

// PosTan returns the position and unit tangent at arc length d. Reports
// false when d is outside [0, Length].
func (m *pathMeasure) PosTan(d float64) (pos, tan Point, ok bool) {
	if len(m.pts) < 2 || d < 0 || d > m.Length() {
		return Point{}, Point{}, false
	}
	// First segment end whose cumulative length reaches d.
	i := 1
	for i < len(m.cum) && (m.cum[i] < d || m.gap[i]) {
		i++
	}
	if i >= len(m.cum) {
		return Point{}, Point{}, false
	}
	a, b := m.pts[i-1], m.pts[i]
	seg := m.cum[i] - m.cum[i-1]
	t := 0.0
	if seg > 0 {
		t = (d - m.cum[i-1]) / seg
	}
	dir := b.Sub(a)
	if dir.Length() == 0 {
		dir = Pt(1, 0)
	} else {
		dir = dir.Normalize()
	}
	return a.Lerp(b, t), dir, true
}
