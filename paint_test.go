package canvas

import "testing"

func TestNewPaintDefaults(t *testing.T) {
	p := NewPaint()
	if p.Style != StyleFill {
		t.Errorf("Style = %v, want fill", p.Style)
	}
	if p.StrokeWidth != 1 {
		t.Errorf("StrokeWidth = %v, want 1", p.StrokeWidth)
	}
	if p.Color != Black {
		t.Errorf("Color = %+v, want black", p.Color)
	}
	if p.BlendMode != BlendSrcOver {
		t.Errorf("BlendMode = %v, want srcover", p.BlendMode)
	}
}

func TestPaintClone(t *testing.T) {
	p := NewPaint()
	p.Color = Red
	p.StrokeWidth = 4

	q := p.Clone()
	q.Color = Blue
	if p.Color != Red {
		t.Error("clone shares state with source")
	}

	var nilPaint *Paint
	d := nilPaint.Clone()
	if d == nil || d.StrokeWidth != 1 {
		t.Errorf("nil Clone = %+v, want defaults", d)
	}
}

func TestPaintAlpha(t *testing.T) {
	p := NewPaint()
	p.SetAlpha(128)
	if got := p.Alpha(); got != 128 {
		t.Errorf("Alpha = %d, want 128", got)
	}
}

func TestNothingToDraw(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Paint)
		want bool
	}{
		{"opaque srcover", func(p *Paint) {}, false},
		{"transparent srcover", func(p *Paint) { p.SetAlpha(0) }, true},
		{"transparent modulate", func(p *Paint) { p.SetAlpha(0); p.BlendMode = BlendModulate }, true},
		{"transparent src", func(p *Paint) { p.SetAlpha(0); p.BlendMode = BlendSrc }, false},
		{"transparent clear", func(p *Paint) { p.SetAlpha(0); p.BlendMode = BlendClear }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaint()
			tt.mod(p)
			if got := p.NothingToDraw(); got != tt.want {
				t.Errorf("NothingToDraw = %v, want %v", got, tt.want)
			}
		})
	}

	var nilPaint *Paint
	if nilPaint.NothingToDraw() {
		t.Error("nil paint should draw with defaults")
	}
}
