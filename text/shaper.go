package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Glyph is one positioned glyph in a shaped run. X and Y are pen-relative
// offsets from the run origin; XAdvance is the pen advance the glyph
// contributed.
type Glyph struct {
	GID      GlyphID
	Cluster  int
	X, Y     float64
	XAdvance float64
}

// Run is a shaped sequence of glyphs sharing one face and size. Runs are
// what backends consume to draw text.
type Run struct {
	Face    *Face
	Size    float64
	Glyphs  []Glyph
	Advance float64
}

// Shaper converts strings into positioned glyph runs via HarfBuzz shaping,
// with bidirectional segmentation applied first.
//
// Shaper is safe for concurrent use. HarfbuzzShaper instances have internal
// mutable state and are NOT safe for concurrent use, so they are pooled and
// each Shape call checks one out.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a shaper with an empty instance pool.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// defaultShaper backs the package-level Shape.
var defaultShaper = NewShaper()

// Shape shapes text with the package-wide shaper.
func Shape(face *Face, text string, size float64, base Direction) *Run {
	return defaultShaper.Shape(face, text, size, base)
}

// Shape segments text into bidirectional runs, shapes each with HarfBuzz,
// and concatenates the glyphs in visual order under one advancing pen.
func (s *Shaper) Shape(face *Face, text string, size float64, base Direction) *Run {
	run := &Run{Face: face, Size: size}
	if text == "" || face == nil {
		return run
	}

	runes := []rune(text)
	var pen float64

	for _, span := range SplitBidi(text, base) {
		// font.Face is not safe for concurrent use; font.NewFace is
		// cheap, wrapping the thread-safe *Font.
		input := shaping.Input{
			Text:      runes,
			RunStart:  span.Start,
			RunEnd:    span.End,
			Direction: mapDirection(span.Direction),
			Face:      font.NewFace(face.gt),
			Size:      floatToFixed(size),
			Script:    detectScript(runes[span.Start:span.End]),
			Language:  language.NewLanguage("en"),
		}

		shaper := s.pool.Get().(*shaping.HarfbuzzShaper)
		out := shaper.Shape(input)
		s.pool.Put(shaper)

		for _, g := range out.Glyphs {
			xOff := fixedToFloat(g.XOffset)
			yOff := fixedToFloat(g.YOffset)
			adv := fixedToFloat(g.XAdvance)
			run.Glyphs = append(run.Glyphs, Glyph{
				GID:      GlyphID(g.GlyphID),
				Cluster:  g.ClusterIndex,
				X:        pen + xOff,
				Y:        -yOff,
				XAdvance: adv,
			})
			pen += adv
		}
	}

	run.Advance = pen
	return run
}

// mapDirection converts our Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript picks the script of the first concrete rune. Mixed-script
// text has already been split into bidirectional runs, which covers the
// common cases.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r > ' ' {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}
