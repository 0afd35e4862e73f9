package linebreak

// Paint carries the subset of style information the measurement pipeline
// needs to shape a run: text size, locale list, and letter spacing.
// Everything else (color, decoration) belongs to the
// renderer and never reaches this package.
type Paint struct {
	// SizePt is the font size in points.
	SizePt float32
	// Locales is an ordered locale-tag list (e.g. "pl-PL", "en"); only the
	// first valid tag is consulted for word iteration and hyphenation
	// (see SPEC_FULL.md §13.3 — script-aware fallback is not implemented).
	Locales []string
	// LetterSpacingEm is extra tracking between glyphs, in em. Measure
	// does not read it: advances are the shaper's, without added spacing.
	LetterSpacingEm float32
}

// FirstLocale returns the first non-empty locale tag, or "" if none was
// supplied.
func (p Paint) FirstLocale() string {
	for _, l := range p.Locales {
		if l != "" {
			return l
		}
	}
	return ""
}

// FontCollection is a font fallback chain. The measurement pipeline (C1)
// asks it for a Face per style; beyond that it is opaque, exactly as
// MinikinFont handles are threaded through Minikin's LineBreakerImpl
// without further inspection there.
type FontCollection interface {
	// FaceFor returns the face to use for shaping, given a style.
	FaceFor(style FontStyle) (Face, error)
}

// FontStyle selects among the faces of a FontCollection.
type FontStyle struct {
	Bold   bool
	Italic bool
}

// Run is either a StyleRun (shaped text) or a ReplacementRun (an inline
// object of fixed width, such as an image).
type Run interface {
	// Range returns the code-unit span this run covers in the shared
	// TextBuffer.
	Range() Range
	isRun()
}

// StyleRun is a contiguous span of text sharing one Paint, one
// FontCollection, and one bidi direction.
type StyleRun struct {
	Span        Range
	Paint       Paint
	Fonts       FontCollection
	Style       FontStyle
	IsRTL       bool
	Hyphenators []Hyphenator
}

func (r *StyleRun) Range() Range { return r.Span }
func (*StyleRun) isRun()         {}

// ReplacementRun is an inline object with a caller-supplied fixed width
// and no internal break opportunities: it measures as a single opaque
// glyph as far as the breaker is concerned.
type ReplacementRun struct {
	Span  Range
	Width Advance
	// Ascent and Descent give the vertical extent the replacement
	// contributes to any line it appears on.
	Ascent  float32
	Descent float32
}

func (r *ReplacementRun) Range() Range { return r.Span }
func (*ReplacementRun) isRun()         {}

// RunBuilder accumulates style and replacement runs for reuse across many
// BreakIntoLines calls with the same cadence (e.g. a text view reflowing
// on every keystroke), modeled on Android's StaticLayoutNative batch-run
// builder: callers push runs, call Build once, then ClearRuns and push
// the next paragraph's runs into the same builder to avoid reallocating
// the backing slice every call.
type RunBuilder struct {
	runs []Run
}

// NewRunBuilder returns an empty RunBuilder.
func NewRunBuilder() *RunBuilder {
	return &RunBuilder{}
}

// AddStyleRun appends a StyleRun.
func (b *RunBuilder) AddStyleRun(r StyleRun) *RunBuilder {
	b.runs = append(b.runs, &r)
	return b
}

// AddReplacementRun appends a ReplacementRun.
func (b *RunBuilder) AddReplacementRun(r ReplacementRun) *RunBuilder {
	b.runs = append(b.runs, &r)
	return b
}

// ClearRuns empties the builder while keeping its backing array, so the
// next paragraph's AddStyleRun/AddReplacementRun calls reuse the
// allocation instead of growing a fresh slice.
func (b *RunBuilder) ClearRuns() {
	b.runs = b.runs[:0]
}

// Build returns the accumulated runs. The returned slice aliases the
// builder's backing array and is only valid until the next ClearRuns.
func (b *RunBuilder) Build() []Run {
	return b.runs
}
