// Package text turns strings into positioned glyph runs for canvas
// backends. Shaping goes through go-text/typesetting (HarfBuzz port),
// glyph outlines come from x/image/font/sfnt, and bidirectional text is
// segmented with x/text/unicode/bidi.
package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphID identifies a glyph within a face.
type GlyphID uint16

// Face is a parsed font usable for both shaping and outline extraction.
//
// The underlying go-text *font.Font is read-only and safe for concurrent
// use; the sfnt outline buffer is not, so a Face must not be shared across
// goroutines without external locking.
type Face struct {
	// gt is the thread-safe parsed font used for shaping.
	gt *font.Font
	// outline is the sfnt view of the same bytes, used for glyph paths.
	outline *sfnt.Font
	buf     sfnt.Buffer
}

// ParseFace parses TTF/OTF font data.
func ParseFace(data []byte) (*Face, error) {
	// ParseTTF returns a *font.Face which embeds the thread-safe *Font.
	gtFace, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font for shaping: %w", err)
	}
	out, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font outlines: %w", err)
	}
	return &Face{gt: gtFace.Font, outline: out}, nil
}

// SegmentOp identifies an outline segment verb.
type SegmentOp uint8

const (
	// SegMoveTo starts a new contour at Args[0].
	SegMoveTo SegmentOp = iota
	// SegLineTo draws a line to Args[0].
	SegLineTo
	// SegQuadTo draws a quadratic curve through Args[0] to Args[1].
	SegQuadTo
	// SegCubeTo draws a cubic curve through Args[0], Args[1] to Args[2].
	SegCubeTo
)

// SegPoint is an outline coordinate. Y increases down, origin at the glyph
// baseline.
type SegPoint struct {
	X, Y float64
}

// Segment is one outline segment. Only the leading Args entries for the
// verb are meaningful.
type Segment struct {
	Op   SegmentOp
	Args [3]SegPoint
}

// GlyphSegments extracts the outline of a glyph at the given size in
// pixels. Coordinates are relative to the baseline origin with Y down.
func (f *Face) GlyphSegments(gid GlyphID, size float64) ([]Segment, error) {
	ppem := fixed.Int26_6(size * 64)
	raw, err := f.outline.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("text: loading glyph %d: %w", gid, err)
	}

	segs := make([]Segment, 0, len(raw))
	for _, s := range raw {
		var op SegmentOp
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			op = SegMoveTo
		case sfnt.SegmentOpLineTo:
			op = SegLineTo
		case sfnt.SegmentOpQuadTo:
			op = SegQuadTo
		case sfnt.SegmentOpCubeTo:
			op = SegCubeTo
		default:
			continue
		}
		segs = append(segs, Segment{
			Op: op,
			Args: [3]SegPoint{
				fixedPoint(s.Args[0]),
				fixedPoint(s.Args[1]),
				fixedPoint(s.Args[2]),
			},
		})
	}
	return segs, nil
}

// GlyphAdvance returns the horizontal advance of a glyph at the given size
// in pixels.
func (f *Face) GlyphAdvance(gid GlyphID, size float64) (float64, error) {
	ppem := fixed.Int26_6(size * 64)
	adv, err := f.outline.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), ppem, 0)
	if err != nil {
		return 0, fmt.Errorf("text: glyph %d advance: %w", gid, err)
	}
	return fixedToFloat(adv), nil
}

func fixedPoint(p fixed.Point26_6) SegPoint {
	return SegPoint{X: fixedToFloat(p.X), Y: fixedToFloat(p.Y)}
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
