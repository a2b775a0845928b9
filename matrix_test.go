package canvas

import (
	"math"
	"testing"
)

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate then scale: the scale applies in the translated space.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, 2)
	if got.Distance(want) > 1e-9 {
		t.Errorf("TransformPoint = %+v, want %+v", got, want)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		ok   bool
	}{
		{"identity", Identity(), true},
		{"translate", Translate(3, -7), true},
		{"scale", Scale(2, 0.5), true},
		{"rotate", Rotate(math.Pi / 3), true},
		{"singular", Scale(0, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if ok != tt.ok {
				t.Fatalf("Invert ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			p := Pt(5, 9)
			back := inv.TransformPoint(tt.m.TransformPoint(p))
			if back.Distance(p) > 1e-9 {
				t.Errorf("round trip = %+v, want %+v", back, p)
			}
		})
	}
}

func TestMatrixTransformRect(t *testing.T) {
	r := RectXYWH(0, 0, 10, 10)

	got := Translate(5, 5).TransformRect(r)
	if !rectNear(got, RectXYWH(5, 5, 10, 10), 1e-9) {
		t.Errorf("translated rect = %+v", got)
	}

	// A quarter turn keeps the bounding box size.
	got = Rotate(math.Pi / 2).TransformRect(r)
	if !rectNear(got, RectXYWH(-10, 0, 10, 10), 1e-9) {
		t.Errorf("rotated rect = %+v", got)
	}

	// 45 degrees grows the bounding box.
	got = Rotate(math.Pi / 4).TransformRect(r)
	want := 10 * math.Sqrt2
	if math.Abs(got.W-want) > 1e-9 || math.Abs(got.H-want) > 1e-9 {
		t.Errorf("diagonal rect = %+v, want %v square", got, want)
	}
}

func TestMatrixRectStaysRect(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"translate", Translate(3, 4), true},
		{"scale", Scale(2, 3), true},
		{"quarter turn", Rotate(math.Pi / 2), true},
		{"rotate", Rotate(0.3), false},
		{"shear", Shear(0.5, 0), false},
		{"collapse", Scale(0, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.RectStaysRect(); got != tt.want {
				t.Errorf("RectStaysRect = %v, want %v", got, tt.want)
			}
		})
	}
}
