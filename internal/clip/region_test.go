package clip

import (
	"testing"

	"github.com/gogpu/canvas/internal/raster"
)

func TestRegionOpenByDefault(t *testing.T) {
	r := New(50, 50)
	if r.IsEmpty() {
		t.Error("fresh region empty")
	}
	if r.Mask() != nil {
		t.Error("open region materialized a mask")
	}
	if got := r.Coverage(25, 25); got != 0xFF {
		t.Errorf("open coverage = %d, want 255", got)
	}
}

func TestRegionIntersect(t *testing.T) {
	r := New(50, 50)
	r.PushRect(10, 10, 30, 30, Intersect, true)

	if got := r.Coverage(20, 20); got != 0xFF {
		t.Errorf("inside coverage = %d, want 255", got)
	}
	if got := r.Coverage(5, 5); got != 0 {
		t.Errorf("outside coverage = %d, want 0", got)
	}

	b := r.Bounds()
	if b.Min.X != 10 || b.Min.Y != 10 || b.Max.X != 30 || b.Max.Y != 30 {
		t.Errorf("bounds = %v", b)
	}

	r.PushRect(20, 20, 40, 40, Intersect, true)
	if got := r.Coverage(25, 25); got != 0xFF {
		t.Errorf("double-clipped inside = %d, want 255", got)
	}
	if got := r.Coverage(15, 15); got != 0 {
		t.Errorf("first-rect-only point = %d, want 0", got)
	}
}

func TestRegionDifference(t *testing.T) {
	r := New(50, 50)
	r.PushRect(10, 10, 30, 30, Difference, true)

	if got := r.Coverage(20, 20); got != 0 {
		t.Errorf("hole coverage = %d, want 0", got)
	}
	if got := r.Coverage(40, 40); got != 0xFF {
		t.Errorf("outside hole = %d, want 255", got)
	}
	if r.IsEmpty() {
		t.Error("difference clip reported empty")
	}
}

func TestRegionEmpty(t *testing.T) {
	r := New(50, 50)
	r.PushRect(10, 10, 20, 20, Intersect, true)
	r.PushRect(30, 30, 40, 40, Intersect, true)
	if !r.IsEmpty() {
		t.Error("disjoint intersection not empty")
	}
}

func TestRegionMarkRestore(t *testing.T) {
	r := New(50, 50)
	r.PushRect(10, 10, 40, 40, Intersect, true)
	mark := r.Mark()

	r.PushRect(20, 20, 25, 25, Intersect, true)
	if got := r.Coverage(35, 35); got != 0 {
		t.Fatalf("pre-restore coverage = %d, want 0", got)
	}

	r.RestoreTo(mark)
	if got := r.Coverage(35, 35); got != 0xFF {
		t.Errorf("post-restore coverage = %d, want 255", got)
	}
	if len(r.Entries()) != 1 {
		t.Errorf("entries = %d, want 1", len(r.Entries()))
	}

	r.RestoreTo(0)
	if r.Mask() != nil {
		t.Error("fully restored region still masked")
	}
}

func TestRegionPathEntry(t *testing.T) {
	r := New(50, 50)
	segs := []raster.Seg{
		raster.MoveTo(raster.Point{X: 0, Y: 0}),
		raster.LineTo(raster.Point{X: 50, Y: 0}),
		raster.LineTo(raster.Point{X: 0, Y: 50}),
		raster.Close(),
	}
	r.PushPath(segs, Intersect, true)

	if got := r.Coverage(5, 5); got != 0xFF {
		t.Errorf("inside triangle = %d, want 255", got)
	}
	if got := r.Coverage(45, 45); got != 0 {
		t.Errorf("outside triangle = %d, want 0", got)
	}

	es := r.Entries()
	if len(es) != 1 || es[0].IsRect {
		t.Errorf("entries = %+v, want one path entry", es)
	}
}

func TestRegionHardEdge(t *testing.T) {
	r := New(50, 50)
	// Non-antialiased clips harden partial coverage to all or nothing.
	r.PushRect(10.5, 10, 30, 30, Intersect, false)
	if got := r.Coverage(10, 15); got != 0 && got != 0xFF {
		t.Errorf("hard clip edge coverage = %d, want 0 or 255", got)
	}
}
