package linebreak

import "testing"

// uniformMeasuredText builds a MeasuredText over text with every code
// unit measuring unitWidth wide and a zero extent, for breaker tests
// that only care about cumulative width bookkeeping.
func uniformMeasuredText(text string, unitWidth float32) *MeasuredText {
	buf := NewTextBufferFromString(text)
	n := buf.Len()
	widths := make([]float32, n)
	for i := range widths {
		widths[i] = unitWidth
	}
	return &MeasuredText{
		Text:    buf,
		Widths:  widths,
		Extents: make([]Extent, n),
		RTL:     make([]bool, n),
	}
}

func TestBreakGreedyThreeWords(t *testing.T) {
	m := uniformMeasuredText("aa bb cc", 1)
	cands := []Candidate{
		sentinelCandidate(),
		{Offset: 3, PreBreak: 3, PostBreak: 2, HyphenClass: DontBreak},
		{Offset: 6, PreBreak: 6, PostBreak: 5, HyphenClass: DontBreak},
		{Offset: 8, PreBreak: 8, PostBreak: 8, HyphenClass: DontBreak},
	}
	lines, err := breakGreedy(m, cands, UniformLineWidth(3))
	if err != nil {
		t.Fatalf("breakGreedy: %v", err)
	}
	wantOffsets := []int{3, 6, 8}
	if len(lines) != len(wantOffsets) {
		t.Fatalf("got %d lines, want %d (%+v)", len(lines), len(wantOffsets), lines)
	}
	for i, want := range wantOffsets {
		if lines[i].BreakOffset != want {
			t.Errorf("lines[%d].BreakOffset = %d, want %d", i, lines[i].BreakOffset, want)
		}
		if lines[i].Width != 2 {
			t.Errorf("lines[%d].Width = %v, want 2", i, lines[i].Width)
		}
	}
}

func TestBreakGreedyDesperateBreak(t *testing.T) {
	m := uniformMeasuredText("abcdef", 1)
	cands := []Candidate{
		sentinelCandidate(),
		{Offset: 6, PreBreak: 6, PostBreak: 6, HyphenClass: DontBreak},
	}
	lines, err := breakGreedy(m, cands, UniformLineWidth(3))
	if err != nil {
		t.Fatalf("breakGreedy: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (%+v)", len(lines), lines)
	}
	if lines[0].BreakOffset != 3 {
		t.Errorf("lines[0].BreakOffset = %d, want 3 (desperate break)", lines[0].BreakOffset)
	}
	if lines[1].BreakOffset != 6 {
		t.Errorf("lines[1].BreakOffset = %d, want 6", lines[1].BreakOffset)
	}
}

func TestBreakGreedyLastLineAlwaysTaken(t *testing.T) {
	// Even a final candidate wider than the line width must be taken
	// (there is nothing further to advance to, and the loop must
	// terminate): breakGreedy's "nothing fits" desperate path handles
	// the last word too rather than looping forever.
	m := uniformMeasuredText("abcdefghij", 1)
	cands := []Candidate{
		sentinelCandidate(),
		{Offset: 10, PreBreak: 10, PostBreak: 10, HyphenClass: DontBreak},
	}
	lines, err := breakGreedy(m, cands, UniformLineWidth(4))
	if err != nil {
		t.Fatalf("breakGreedy: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	last := lines[len(lines)-1]
	if last.BreakOffset != 10 {
		t.Errorf("last line BreakOffset = %d, want 10 (full text consumed)", last.BreakOffset)
	}
}

func TestBreakGreedyOverhangForcesEarlierBreak(t *testing.T) {
	// "aa" alone has width 2, comfortably under a width-3 line — but a
	// FirstOverhang of 3 on that candidate means the fit test's
	// w + overhang exceeds the line width, so the break must land here
	// (by way of a desperate break landing on the same offset) rather
	// than silently treating the overhang as zero.
	m := uniformMeasuredText("aa bb", 1)
	cands := []Candidate{
		sentinelCandidate(),
		{Offset: 2, PreBreak: 2, PostBreak: 2, FirstOverhang: 3, HyphenClass: DontBreak},
		{Offset: 5, PreBreak: 5, PostBreak: 5, HyphenClass: DontBreak},
	}
	lines, err := breakGreedy(m, cands, UniformLineWidth(3))
	if err != nil {
		t.Fatalf("breakGreedy: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	if lines[0].BreakOffset != 2 {
		t.Errorf("lines[0].BreakOffset = %d, want 2 (overhang alone should force a break here)", lines[0].BreakOffset)
	}
}

func TestBreakGreedyTakesPenalizedBreakWhenNothingElseFits(t *testing.T) {
	// At width 3 only "aa" fits on the first line, so the penalized
	// hyphenation candidate at offset 3 is the pending break that gets
	// emitted there: its penalty does not keep it from being taken.
	m := uniformMeasuredText("aa bb cc", 1)
	cands := []Candidate{
		sentinelCandidate(),
		{Offset: 3, PreBreak: 3, PostBreak: 2, Penalty: 100, HyphenClass: BreakAndInsertHyphen},
		{Offset: 6, PreBreak: 6, PostBreak: 5, Penalty: 0, HyphenClass: DontBreak},
		{Offset: 8, PreBreak: 8, PostBreak: 8, HyphenClass: DontBreak},
	}
	lines, err := breakGreedy(m, cands, UniformLineWidth(3))
	if err != nil {
		t.Fatalf("breakGreedy: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	if lines[0].BreakOffset != 3 {
		t.Errorf("lines[0].BreakOffset = %d, want 3", lines[0].BreakOffset)
	}
}

func TestFindTab(t *testing.T) {
	buf := NewTextBufferFromString("ab\tcd")
	if got := findTab(buf, 0, 5); got != 2 {
		t.Errorf("findTab = %d, want 2", got)
	}
	if got := findTab(buf, 0, 2); got != -1 {
		t.Errorf("findTab over a tab-free range = %d, want -1", got)
	}
}

func TestInsertCandidate(t *testing.T) {
	cands := []Candidate{{Offset: 0}, {Offset: 5}}
	inserted := Candidate{Offset: 2}
	got := insertCandidate(cands, 1, inserted)
	want := []int{0, 2, 5}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, w := range want {
		if got[i].Offset != w {
			t.Errorf("got[%d].Offset = %d, want %d", i, got[i].Offset, w)
		}
	}
}
