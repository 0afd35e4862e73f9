package seg

import "golang.org/x/text/unicode/bidi"

// BidiSubRun is one visually-ordered sub-range of a paragraph sharing a
// single bidi direction.
type BidiSubRun struct {
	Start, End int // byte offsets into the paragraph text
	RTL        bool
}

// BidiRuns splits text into bidi sub-runs in visual order, the same way
// the teacher's ShapeRange in layout/inline/shaping.go splits a segment
// by bidi level before shaping each piece independently.
//
// On a bidi algorithm failure the whole range is returned as one
// sub-run carrying the caller-supplied base direction, and the failure
// is reported through Logf rather than returned: a paragraph with
// unresolvable bidi classes still has to produce *some* line breaks.
func BidiRuns(text string, baseRTL bool, onInvalid func(level int)) []BidiSubRun {
	if len(text) == 0 {
		return nil
	}
	var para bidi.Paragraph
	opts := []bidi.Option{}
	if baseRTL {
		opts = append(opts, bidi.DefaultDirection(bidi.RightToLeft))
	}
	if err := para.SetString(text, opts...); err != nil {
		onInvalid(-1)
		return []BidiSubRun{{Start: 0, End: len(text), RTL: baseRTL}}
	}
	ordering, err := para.Order()
	if err != nil {
		onInvalid(-1)
		return []BidiSubRun{{Start: 0, End: len(text), RTL: baseRTL}}
	}

	// Run.Pos() reports rune indices (the last rune's index, inclusive),
	// not byte offsets, so every sub-run boundary needs translating back
	// through the text's own rune-to-byte-offset table before it can be
	// used to slice the original string.
	runeByteOffsets := make([]int, 0, len(text)+1)
	for i := range text {
		runeByteOffsets = append(runeByteOffsets, i)
	}
	runeByteOffsets = append(runeByteOffsets, len(text))

	runs := make([]BidiSubRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		if startRune < 0 || endRune+1 >= len(runeByteOffsets) {
			continue
		}
		runs = append(runs, BidiSubRun{
			Start: runeByteOffsets[startRune],
			End:   runeByteOffsets[endRune+1],
			RTL:   run.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}
