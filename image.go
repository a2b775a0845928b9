package canvas

import "image"

// DrawImage draws img with its top-left corner at (x, y) in user space.
func (c *Canvas) DrawImage(img image.Image, x, y float64, paint *Paint) {
	if img == nil || paint.NothingToDraw() {
		return
	}
	src := FromImageRect(img.Bounds())
	c.backend.DrawImageRect(img, src, src.Offset(x-src.X, y-src.Y), paint)
}

// DrawImageMatrix draws img through an extra transform applied on top of
// the current one. The transform lives only for this call.
func (c *Canvas) DrawImageMatrix(img image.Image, m Matrix, paint *Paint) {
	if img == nil || paint.NothingToDraw() {
		return
	}
	// Pure backend save: no clips happen inside, so the partial save
	// bookkeeping stays out of it.
	c.backend.Save()
	c.backend.Concat(m)
	src := FromImageRect(img.Bounds())
	c.backend.DrawImageRect(img, src, src.Offset(-src.X, -src.Y), paint)
	c.backend.Restore()
}

// DrawImageRect draws the src portion of img scaled into dst.
func (c *Canvas) DrawImageRect(img image.Image, src, dst Rect, paint *Paint) {
	if img == nil || src.IsEmpty() || dst.IsEmpty() || paint.NothingToDraw() {
		return
	}
	c.backend.DrawImageRect(img, src, dst, paint)
}

// DrawImageLattice stretches img across dst along lattice divisions.
func (c *Canvas) DrawImageLattice(img image.Image, lat Lattice, dst Rect, paint *Paint) {
	if img == nil || dst.IsEmpty() || paint.NothingToDraw() {
		return
	}
	c.backend.DrawImageLattice(img, lat, dst, paint)
}

// DrawNinePatch draws img across dst using a nine-patch chunk's stretch
// divisions.
func (c *Canvas) DrawNinePatch(img image.Image, chunk *NinePatch, dst Rect, paint *Paint) {
	if img == nil || chunk == nil || dst.IsEmpty() || paint.NothingToDraw() {
		return
	}
	c.backend.DrawImageLattice(img, chunk.Lattice(img.Bounds()), dst, paint)
}

// DrawImageMesh warps img across a (meshWidth x meshHeight)-cell grid of
// vertex positions, synthesizing texture coordinates and triangle indices
// for the grid. verts must hold (meshWidth+1)*(meshHeight+1) points in
// row-major order; colors, when present, must match and are interpolated
// across the mesh.
func (c *Canvas) DrawImageMesh(img image.Image, meshWidth, meshHeight int, verts []Point, colors []RGBA, paint *Paint) {
	if img == nil || meshWidth <= 0 || meshHeight <= 0 || paint.NothingToDraw() {
		return
	}
	cols := meshWidth + 1
	rows := meshHeight + 1
	if len(verts) < cols*rows {
		return
	}
	if colors != nil && len(colors) < cols*rows {
		colors = nil
	}

	b := img.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	// Texture coordinates spread uniformly across the image.
	texs := make([]Point, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			texs[y*cols+x] = Pt(
				float64(b.Min.X)+w*float64(x)/float64(meshWidth),
				float64(b.Min.Y)+h*float64(y)/float64(meshHeight),
			)
		}
	}

	// Two triangles per cell.
	indices := make([]uint16, 0, meshWidth*meshHeight*6)
	for y := 0; y < meshHeight; y++ {
		for x := 0; x < meshWidth; x++ {
			i0 := uint16(y*cols + x)
			i1 := i0 + 1
			i2 := i0 + uint16(cols)
			i3 := i2 + 1
			indices = append(indices, i0, i1, i2, i1, i3, i2)
		}
	}

	v := NewVertices(TrianglesMode, verts[:cols*rows], texs, colors, indices)
	if v == nil {
		return
	}

	mesh := paint.Clone()
	mesh.Shader = &ImageShader{Image: img}
	c.backend.DrawVertices(v, mesh.BlendMode, mesh)
}
