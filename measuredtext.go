package linebreak

// MeasuredText is the output of the measurement pipeline (C1): one
// per-code-unit width, vertical extent, and hanging-punctuation overhang
// for the whole paragraph, plus the direction each code unit shapes in.
// It is the structure both breakers (C5, C6) read widths and extents
// from while walking candidates.
type MeasuredText struct {
	Text    *TextBuffer
	Runs    []Run
	Widths  []float32
	Extents []Extent
	Overhang []Overhang
	RTL     []bool
}

// WidthOf sums the per-code-unit widths over [start, end).
func (m *MeasuredText) WidthOf(start, end int) ParaWidth {
	var w ParaWidth
	for i := start; i < end; i++ {
		w += ParaWidth(m.Widths[i])
	}
	return w
}

// ExtentOf returns the union of the per-code-unit extents over
// [start, end), or the zero Extent if the range is empty.
func (m *MeasuredText) ExtentOf(start, end int) Extent {
	var e Extent
	for i := start; i < end; i++ {
		e = e.union(m.Extents[i])
	}
	return e
}

// MeasuredTextBuilder accumulates runs for a single BreakIntoLines call.
// Unlike RunBuilder (run.go), which is reusable across paragraphs, a
// MeasuredTextBuilder is consumed once by Build.
type MeasuredTextBuilder struct {
	runs []Run
}

// NewMeasuredTextBuilder returns an empty builder.
func NewMeasuredTextBuilder() *MeasuredTextBuilder {
	return &MeasuredTextBuilder{}
}

// AddRun appends a run (StyleRun or ReplacementRun) in text order.
func (b *MeasuredTextBuilder) AddRun(r Run) *MeasuredTextBuilder {
	b.runs = append(b.runs, r)
	return b
}

// Build returns the accumulated runs, ready to pass to Measure. Unlike
// RunBuilder.Build, the returned slice is not meant to be reused: a
// MeasuredTextBuilder has no ClearRuns and is discarded after one call.
func (b *MeasuredTextBuilder) Build() []Run {
	return b.runs
}
