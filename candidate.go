package linebreak

// Extent is the vertical extent (above/below the baseline) the tallest
// glyph run between two breaks contributes to a line.
type Extent struct {
	// Ascent is negative or zero: distance from the baseline up.
	Ascent float32
	// Descent is positive or zero: distance from the baseline down.
	Descent float32
}

// union returns the extent that encloses both e and o.
func (e Extent) union(o Extent) Extent {
	if o.Ascent < e.Ascent {
		e.Ascent = o.Ascent
	}
	if o.Descent > e.Descent {
		e.Descent = o.Descent
	}
	return e
}

// Overhang is the amount a glyph protrudes past the edge of the line box
// it is measured against (hanging punctuation), split into the overhang
// contributed at the end of this line and at the start of the next.
type Overhang struct {
	First  float32 // overhang at the end of the line, if broken here
	Second float32 // overhang at the start of the next line, if broken here
}

// Candidate is a single line-break opportunity discovered while scanning
// the paragraph. Candidates are produced in non-decreasing offset order
// (a hyphenation candidate can share a natural candidate's offset) by
// the word/hyphen stream (C3) and consumed by both breakers (C5, C6).
type Candidate struct {
	// Offset is the code-unit offset into the TextBuffer this candidate
	// breaks at.
	Offset int

	// PreBreak is the cumulative paragraph width up to Offset, assuming
	// the line does not break here (used with another candidate's
	// PostBreak to compute the width of a line spanning the two).
	PreBreak ParaWidth
	// PostBreak is the cumulative paragraph width up to Offset, assuming
	// the line does break here (trailing line-end space is excluded).
	PostBreak ParaWidth

	// FirstOverhang is the hanging-punctuation overhang at the end of
	// the line if breaking here.
	FirstOverhang float32
	// SecondOverhang is the hanging-punctuation overhang at the start of
	// the next line if breaking here.
	SecondOverhang float32

	// Penalty is the extra cost of breaking here (e.g. a hyphenation
	// penalty); zero for an unpenalized break.
	Penalty float32

	// PreSpaceCount and PostSpaceCount count the word spaces immediately
	// before this offset, before and after the candidate's own trailing
	// spaces are counted, respectively; used to size justification
	// stretch.
	PreSpaceCount  int
	PostSpaceCount int

	// HyphenClass classifies the kind of break this candidate is.
	HyphenClass HyphenationClass
	// IsRTL is the direction of the bidi run containing, or ending at,
	// this candidate.
	IsRTL bool
}

// sentinelCandidate returns Candidate 0, the zero-width break at the start of the
// paragraph every breaker seeds its search with.
func sentinelCandidate() Candidate {
	return Candidate{HyphenClass: DontBreak}
}
