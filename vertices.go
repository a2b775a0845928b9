package canvas

// VertexMode describes how vertex positions assemble into triangles.
type VertexMode uint8

const (
	// TrianglesMode treats every three positions (or indices) as one
	// independent triangle.
	TrianglesMode VertexMode = iota
	// TriangleStripMode shares the previous two positions with each new
	// triangle.
	TriangleStripMode
	// TriangleFanMode shares the first position with every triangle.
	TriangleFanMode
)

// Vertices is an immutable triangle mesh: positions in user space, optional
// per-vertex texture coordinates in image texels, optional per-vertex
// colors, and optional indices. Build one with NewVertices and draw it with
// Canvas.DrawVertices.
type Vertices struct {
	mode      VertexMode
	positions []Point
	texs      []Point
	colors    []RGBA
	indices   []uint16
}

// NewVertices copies the slices into an immutable mesh. texs and colors may
// be nil; when present they must match positions in length. indices may be
// nil for sequential assembly. Returns nil for inconsistent input.
func NewVertices(mode VertexMode, positions, texs []Point, colors []RGBA, indices []uint16) *Vertices {
	if len(positions) < 3 {
		return nil
	}
	if texs != nil && len(texs) != len(positions) {
		return nil
	}
	if colors != nil && len(colors) != len(positions) {
		return nil
	}
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return nil
		}
	}
	v := &Vertices{
		mode:      mode,
		positions: append([]Point(nil), positions...),
	}
	if texs != nil {
		v.texs = append([]Point(nil), texs...)
	}
	if colors != nil {
		v.colors = append([]RGBA(nil), colors...)
	}
	if indices != nil {
		v.indices = append([]uint16(nil), indices...)
	}
	return v
}

// Mode returns the triangle assembly mode.
func (v *Vertices) Mode() VertexMode { return v.mode }

// Positions returns the vertex positions. The slice must not be modified.
func (v *Vertices) Positions() []Point { return v.positions }

// HasTexCoords reports whether the mesh carries texture coordinates.
func (v *Vertices) HasTexCoords() bool { return v.texs != nil }

// HasColors reports whether the mesh carries per-vertex colors.
func (v *Vertices) HasColors() bool { return v.colors != nil }

// Triangles calls fn once per assembled triangle with vertex indices,
// resolving the index buffer and assembly mode.
func (v *Vertices) Triangles(fn func(i0, i1, i2 int)) {
	at := func(i int) int {
		if v.indices != nil {
			return int(v.indices[i])
		}
		return i
	}
	n := len(v.positions)
	if v.indices != nil {
		n = len(v.indices)
	}

	switch v.mode {
	case TriangleStripMode:
		for i := 2; i < n; i++ {
			if i&1 == 0 {
				fn(at(i-2), at(i-1), at(i))
			} else {
				fn(at(i-1), at(i-2), at(i))
			}
		}
	case TriangleFanMode:
		for i := 2; i < n; i++ {
			fn(at(0), at(i-1), at(i))
		}
	default:
		for i := 0; i+2 < n; i += 3 {
			fn(at(i), at(i+1), at(i+2))
		}
	}
}
