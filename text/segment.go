package text

import "golang.org/x/text/unicode/bidi"

// Direction is the base or resolved direction of a text run.
type Direction uint8

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// Span is a maximal substring with a single resolved direction, in visual
// order. Start and End are rune indices into the source string.
type Span struct {
	Start, End int
	Direction  Direction
}

// SplitBidi resolves the bidirectional runs of text under the given base
// direction and returns them in visual order (left to right on screen).
// Plain single-direction text comes back as one span.
func SplitBidi(text string, base Direction) []Span {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return []Span{{Start: 0, End: len(runes), Direction: base}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Span{{Start: 0, End: len(runes), Direction: base}}
	}

	spans := make([]Span, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// run.Pos() returns rune indices, end inclusive.
		start, end := run.Pos()
		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		spans = append(spans, Span{Start: start, End: end + 1, Direction: dir})
	}
	return spans
}
