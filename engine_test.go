package linebreak

import "testing"

// replacementOnlyParagraph builds a TextBuffer and a run list made
// entirely of ReplacementRuns (fixed-width inline objects), so Engine's
// pipeline can be exercised end to end without a real font/shaper.
func replacementOnlyParagraph(units, width int) (*TextBuffer, []Run) {
	text := make([]uint16, units)
	for i := range text {
		text[i] = ' '
	}
	buf := NewTextBuffer(text)
	b := NewRunBuilder()
	b.AddReplacementRun(ReplacementRun{Span: Range{Start: 0, End: units}, Width: Advance(width * units)})
	return buf, b.Build()
}

func TestEngineBreakIntoLinesCachesResult(t *testing.T) {
	buf, runs := replacementOnlyParagraph(4, 1)
	cache := NewLayoutCache(8)
	e := NewEngine(WithCache(cache))
	cfg := NewConfig()
	profile := UniformLineWidth(100)

	result1, err := e.BreakIntoLines(buf, runs, profile, cfg)
	if err != nil {
		t.Fatalf("BreakIntoLines: %v", err)
	}
	result2, err := e.BreakIntoLines(buf, runs, profile, cfg)
	if err != nil {
		t.Fatalf("BreakIntoLines (second call): %v", err)
	}
	if len(result1.Lines) != len(result2.Lines) {
		t.Fatalf("cached result differs in line count: %d vs %d", len(result1.Lines), len(result2.Lines))
	}
	key := cacheKey(buf, runs, profile, cfg)
	if _, ok := cache.Get(key); !ok {
		t.Error("expected the cache key to be populated after BreakIntoLines")
	}
}

func TestEngineBreakGreedyOnlyBypassesCache(t *testing.T) {
	buf, runs := replacementOnlyParagraph(4, 1)
	cache := NewLayoutCache(8)
	e := NewEngine(WithCache(cache))
	cfg := NewConfig()
	profile := UniformLineWidth(100)

	if _, err := e.BreakGreedyOnly(buf, runs, profile, cfg); err != nil {
		t.Fatalf("BreakGreedyOnly: %v", err)
	}
	key := cacheKey(buf, runs, profile, cfg)
	if _, ok := cache.Get(key); ok {
		t.Error("BreakGreedyOnly must not populate the cache")
	}
}

func TestEngineBreakIntoLinesTabForcesGreedy(t *testing.T) {
	// "a \tb" with a tab width of 10 and a line width of 50: the tab
	// jumps the cursor from 20 to the next stop at 30, landing the
	// whole paragraph on one line with the tab bit (1 << 29) set in the
	// flags — and it must happen even though Balanced was requested.
	buf := NewTextBufferFromString("a \tb")
	b := NewRunBuilder()
	b.AddReplacementRun(ReplacementRun{Span: Range{Start: 0, End: 1}, Width: 10})
	b.AddReplacementRun(ReplacementRun{Span: Range{Start: 1, End: 2}, Width: 10})
	b.AddReplacementRun(ReplacementRun{Span: Range{Start: 2, End: 3}, Width: 0})
	b.AddReplacementRun(ReplacementRun{Span: Range{Start: 3, End: 4}, Width: 10})
	runs := b.Build()

	e := NewEngine(WithCache(NewLayoutCache(8)))
	cfg := NewConfig(WithStrategy(StrategyBalanced), WithTabStops(TabStops{TabWidth: 10}))
	result, err := e.BreakIntoLines(buf, runs, UniformLineWidth(50), cfg)
	if err != nil {
		t.Fatalf("BreakIntoLines: %v", err)
	}
	if len(result.Lines) != 1 {
		t.Fatalf("got %d lines, want 1 (%+v)", len(result.Lines), result.Lines)
	}
	if result.Lines[0].Flags()&TabBit == 0 {
		t.Error("expected the tab bit to be set in the line's flags")
	}
}

func TestEngineBreakIntoLinesUnknownStrategy(t *testing.T) {
	buf, runs := replacementOnlyParagraph(4, 1)
	e := NewEngine(WithCache(NewLayoutCache(8)))
	cfg := NewConfig(WithStrategy(BreakStrategy(99)))
	if _, err := e.BreakIntoLines(buf, runs, UniformLineWidth(100), cfg); err == nil {
		t.Error("expected an error for an unknown break strategy")
	}
}

func TestCacheKeyStableAndDistinguishing(t *testing.T) {
	buf, runs := replacementOnlyParagraph(4, 1)
	cfg := NewConfig()
	profile := UniformLineWidth(100)

	k1 := cacheKey(buf, runs, profile, cfg)
	k2 := cacheKey(buf, runs, profile, cfg)
	if k1 != k2 {
		t.Errorf("cacheKey not stable across calls: %q vs %q", k1, k2)
	}

	otherCfg := NewConfig(WithStrategy(StrategyHighQuality))
	k3 := cacheKey(buf, runs, profile, otherCfg)
	if k3 == k1 {
		t.Error("cacheKey should differ when the strategy changes")
	}

	otherProfile := UniformLineWidth(50)
	k4 := cacheKey(buf, runs, otherProfile, cfg)
	if k4 == k1 {
		t.Error("cacheKey should differ when the width profile changes")
	}
}

func TestApplyHyphenPenaltiesNoneDisablesPenalty(t *testing.T) {
	cands := []Candidate{{HyphenClass: BreakAndInsertHyphen}}
	cfg := NewConfig(WithHyphenationFrequency(HyphenationNone))
	applyHyphenPenalties(cands, UniformLineWidth(100), cfg)
	if cands[0].Penalty != 0 {
		t.Errorf("Penalty = %v, want 0 when hyphenation is disabled", cands[0].Penalty)
	}
}

func TestApplyHyphenPenaltiesSkipsNonHyphenCandidates(t *testing.T) {
	cands := []Candidate{
		{HyphenClass: DontBreak},
		{HyphenClass: BreakAndDontInsertHyphen},
		{HyphenClass: BreakAndInsertHyphen},
	}
	cfg := NewConfig()
	applyHyphenPenalties(cands, UniformLineWidth(100), cfg)
	if cands[0].Penalty != 0 {
		t.Errorf("DontBreak candidate got a penalty: %v", cands[0].Penalty)
	}
	if cands[1].Penalty != 0 {
		t.Errorf("BreakAndDontInsertHyphen candidate got a penalty: %v", cands[1].Penalty)
	}
	if cands[2].Penalty == 0 {
		t.Error("BreakAndInsertHyphen candidate should receive a nonzero penalty")
	}
}

func TestApplyHyphenPenaltiesFullExceedsNormal(t *testing.T) {
	normalCands := []Candidate{{HyphenClass: BreakAndInsertHyphen}}
	applyHyphenPenalties(normalCands, UniformLineWidth(100), NewConfig(WithHyphenationFrequency(HyphenationNormal)))

	fullCands := []Candidate{{HyphenClass: BreakAndInsertHyphen}}
	applyHyphenPenalties(fullCands, UniformLineWidth(100), NewConfig(WithHyphenationFrequency(HyphenationFull)))

	if fullCands[0].Penalty <= normalCands[0].Penalty {
		t.Errorf("full-frequency penalty %v should exceed normal-frequency penalty %v", fullCands[0].Penalty, normalCands[0].Penalty)
	}
}

func TestApplyHyphenPenaltiesJustifiedReducesPenalty(t *testing.T) {
	unjustified := []Candidate{{HyphenClass: BreakAndInsertHyphen}}
	applyHyphenPenalties(unjustified, UniformLineWidth(100), NewConfig())

	justified := []Candidate{{HyphenClass: BreakAndInsertHyphen}}
	applyHyphenPenalties(justified, UniformLineWidth(100), NewConfig(WithJustified(true)))

	if justified[0].Penalty >= unjustified[0].Penalty {
		t.Errorf("justified penalty %v should be less than unjustified penalty %v", justified[0].Penalty, unjustified[0].Penalty)
	}
}
