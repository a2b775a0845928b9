package canvas

// clipKind discriminates the shape variant held by a clipRecord.
type clipKind uint8

const (
	clipKindRect clipKind = iota
	clipKindRRect
	clipKindPath
)

// clipRecord is one logged clip operation: shape, combine op, and the
// transform that was current when the clip was applied. Rectangles are
// stored as zero-radius rounded rects so rect and rrect share a payload;
// paths keep their own field since they are reference types.
type clipRecord struct {
	kind   clipKind
	op     ClipOp
	matrix Matrix
	rrect  RRect
	path   *Path
}

func rectClipRecord(r Rect, op ClipOp, m Matrix) clipRecord {
	return clipRecord{kind: clipKindRect, op: op, matrix: m, rrect: RRect{Rect: r}}
}

func rrectClipRecord(rr RRect, op ClipOp, m Matrix) clipRecord {
	return clipRecord{kind: clipKindRRect, op: op, matrix: m, rrect: rr}
}

func pathClipRecord(p *Path, op ClipOp, m Matrix) clipRecord {
	return clipRecord{kind: clipKindPath, op: op, matrix: m, path: p.Clone()}
}

// apply reissues the clip against the backend under its recorded matrix.
// The caller owns saving and reinstalling the backend transform; apply
// leaves the recorded matrix installed.
func (c *clipRecord) apply(b Backend) {
	b.SetMatrix(c.matrix)
	switch c.kind {
	case clipKindRect:
		b.ClipRect(c.rrect.Rect, c.op, true)
	case clipKindRRect:
		b.ClipRRect(c.rrect, c.op, true)
	case clipKindPath:
		b.ClipPath(c.path, c.op, true)
	}
}
