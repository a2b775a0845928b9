package canvas

// Drawable is something that records its own drawing onto a canvas. The
// canvas state around Draw is the caller's responsibility; a Drawable that
// changes transform or clip should save and restore around its work.
type Drawable interface {
	Draw(c *Canvas)
}

// DrawDrawable draws d onto the canvas. Nil is a no-op.
func (c *Canvas) DrawDrawable(d Drawable) {
	if d == nil {
		return
	}
	d.Draw(c)
}

// FloatProperty is a mutable scalar shared between an animator and a
// Drawable, so per-frame values change without rebuilding the drawable.
type FloatProperty struct {
	value float64
}

// NewFloatProperty creates a property with an initial value.
func NewFloatProperty(v float64) *FloatProperty { return &FloatProperty{value: v} }

// Value returns the current value.
func (p *FloatProperty) Value() float64 { return p.value }

// Set replaces the value.
func (p *FloatProperty) Set(v float64) { p.value = v }

// PaintProperty is a mutable paint shared between an animator and a
// Drawable.
type PaintProperty struct {
	paint *Paint
}

// NewPaintProperty creates a property holding a clone of p.
func NewPaintProperty(p *Paint) *PaintProperty {
	return &PaintProperty{paint: p.Clone()}
}

// Paint returns the held paint.
func (p *PaintProperty) Paint() *Paint { return p.paint }

// Set replaces the held paint with a clone of np.
func (p *PaintProperty) Set(np *Paint) { p.paint = np.Clone() }

// AnimatedRoundRect is a rounded rectangle whose geometry and paint are
// driven through properties.
type AnimatedRoundRect struct {
	Left, Top     *FloatProperty
	Right, Bottom *FloatProperty
	RX, RY        *FloatProperty
	Paint         *PaintProperty
}

// NewAnimatedRoundRect creates a round-rect drawable with properties
// initialized from the arguments.
func NewAnimatedRoundRect(left, top, right, bottom, rx, ry float64, paint *Paint) *AnimatedRoundRect {
	return &AnimatedRoundRect{
		Left:   NewFloatProperty(left),
		Top:    NewFloatProperty(top),
		Right:  NewFloatProperty(right),
		Bottom: NewFloatProperty(bottom),
		RX:     NewFloatProperty(rx),
		RY:     NewFloatProperty(ry),
		Paint:  NewPaintProperty(paint),
	}
}

// Draw renders the round rect at its current property values.
func (a *AnimatedRoundRect) Draw(c *Canvas) {
	r := RectLTRB(a.Left.Value(), a.Top.Value(), a.Right.Value(), a.Bottom.Value())
	c.DrawRoundRect(r, a.RX.Value(), a.RY.Value(), a.Paint.Paint())
}

// AnimatedCircle is a circle whose center, radius, and paint are driven
// through properties.
type AnimatedCircle struct {
	X, Y   *FloatProperty
	Radius *FloatProperty
	Paint  *PaintProperty
}

// NewAnimatedCircle creates a circle drawable with properties initialized
// from the arguments.
func NewAnimatedCircle(x, y, radius float64, paint *Paint) *AnimatedCircle {
	return &AnimatedCircle{
		X:      NewFloatProperty(x),
		Y:      NewFloatProperty(y),
		Radius: NewFloatProperty(radius),
		Paint:  NewPaintProperty(paint),
	}
}

// Draw renders the circle at its current property values. Non-positive
// radii draw nothing.
func (a *AnimatedCircle) Draw(c *Canvas) {
	c.DrawCircle(a.X.Value(), a.Y.Value(), a.Radius.Value(), a.Paint.Paint())
}
