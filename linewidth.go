package linebreak

import "math"

// LineWidthProfile supplies the available width for each line of a
// paragraph. It may be called more than once for the same line number
// during a single BreakIntoLines call (both breakers probe ahead) and
// must return the same value each time.
type LineWidthProfile interface {
	// Width returns the available width for the given zero-based line
	// number.
	Width(lineNo int) Advance
}

// FuncLineWidthProfile adapts a plain function to LineWidthProfile, for
// callers that have no need for the table-backed variant below.
type FuncLineWidthProfile func(lineNo int) Advance

func (f FuncLineWidthProfile) Width(lineNo int) Advance { return f(lineNo) }

// UniformLineWidth returns a LineWidthProfile with the same width on
// every line.
func UniformLineWidth(width Advance) LineWidthProfile {
	return FuncLineWidthProfile(func(int) Advance { return width })
}

// TableLineWidthProfile reproduces Android's LineWidth helper: a fixed
// width for the first FirstLineCount lines, a different width for the
// rest, an optional per-line Indents table that further reduces
// individual lines, and an Offset added to (or, if negative, subtracted
// from) every line's width after indents are applied — the same knobs
// AndroidLineBreakerHelper.h exposes for paragraphs with hanging
// indents or padding that varies by line.
type TableLineWidthProfile struct {
	// FirstWidth is the width of the first FirstLineCount lines.
	FirstWidth Advance
	// FirstLineCount is how many lines get FirstWidth before RestWidth
	// takes over. Zero means every line uses RestWidth.
	FirstLineCount int
	// RestWidth is the width of every line after FirstLineCount.
	RestWidth Advance
	// Indents, if non-nil, gives a per-line-number subtraction applied
	// on top of FirstWidth/RestWidth; indices past the end of the slice
	// contribute zero.
	Indents []Advance
	// Offset is added to every line's width after indents (may be
	// negative to shrink instead of grow).
	Offset Advance
}

// Width implements LineWidthProfile.
func (p *TableLineWidthProfile) Width(lineNo int) Advance {
	w := p.RestWidth
	if lineNo < p.FirstLineCount {
		w = p.FirstWidth
	}
	if lineNo >= 0 && lineNo < len(p.Indents) {
		w -= p.Indents[lineNo]
	}
	return w + p.Offset
}

// MinWidth returns the narrowest width any line of the paragraph can
// have, without scanning every line number. Like
// LineWidth::getMinLineWidth in AndroidLineBreakerHelper.h, it only has
// to check: the first line, every line carrying an explicit indent
// entry, and the first line past the first-line-count boundary (since
// indents past the table's end contribute nothing and both base widths
// are otherwise constant across their respective ranges).
func (p *TableLineWidthProfile) MinWidth() Advance {
	min := Advance(math.MaxFloat32)
	consider := func(lineNo int) {
		if w := p.Width(lineNo); w < min {
			min = w
		}
	}
	consider(0)
	if p.FirstLineCount > 0 {
		consider(p.FirstLineCount)
	}
	for i := range p.Indents {
		consider(i)
	}
	return min
}

// TabStops resolves tab-stop positions for a line of text, following the
// same stop-then-multiple fallback as Minikin's TabStops::nextTab.
type TabStops struct {
	Stops    []Advance
	TabWidth Advance
}

// NextTab returns the next tab stop after widthSoFar: the first explicit
// stop greater than widthSoFar, or, once the explicit stops are
// exhausted, the next multiple of TabWidth greater than widthSoFar. With
// no explicit stop left and TabWidth <= 0 it returns widthSoFar itself.
func (t TabStops) NextTab(widthSoFar Advance) Advance {
	for _, s := range t.Stops {
		if s > widthSoFar {
			return s
		}
	}
	if t.TabWidth <= 0 {
		return widthSoFar
	}
	return Advance(math.Floor(float64(widthSoFar/t.TabWidth+1))) * t.TabWidth
}
