package canvas

// Contour is one flattened subpath.
type Contour struct {
	Points []Point
	Closed bool
}

// flattenSteps is the fixed subdivision count per curve segment. Plenty for
// stroking and path-measure use at screen scales.
const flattenSteps = 24

// FlattenContours converts the path into polyline contours, subdividing
// curves at a fixed rate.
func (p *Path) FlattenContours() []Contour {
	var contours []Contour
	var cur []Point
	var start Point
	closed := false

	flush := func() {
		if len(cur) > 1 {
			contours = append(contours, Contour{Points: cur, Closed: closed})
		}
		cur = nil
		closed = false
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			start = e.Point
			cur = []Point{e.Point}
		case LineTo:
			cur = append(cur, e.Point)
		case QuadTo:
			if len(cur) == 0 {
				cur = []Point{{}}
			}
			p0 := cur[len(cur)-1]
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / flattenSteps
				cur = append(cur, quadPoint(p0, e.Control, e.Point, t))
			}
		case CubicTo:
			if len(cur) == 0 {
				cur = []Point{{}}
			}
			p0 := cur[len(cur)-1]
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / flattenSteps
				cur = append(cur, cubicPoint(p0, e.Control1, e.Control2, e.Point, t))
			}
		case Close:
			if len(cur) > 0 {
				last := cur[len(cur)-1]
				if last != start {
					cur = append(cur, start)
				}
				closed = true
			}
			flush()
			cur = []Point{start}
		}
	}
	flush()
	return contours
}

func quadPoint(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

func cubicPoint(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
		Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
	}
}
