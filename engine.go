package linebreak

import (
	"fmt"

	"github.com/ambermoth/linebreak/internal/shape"
)

// Engine holds the state BreakIntoLines needs across calls: a shaper
// (expensive to construct, safe to reuse — see internal/shape.Shaper)
// and an optional private layout cache. Reuse one Engine across
// paragraphs the way RunBuilder is reused, rather than constructing a
// fresh one per call.
type Engine struct {
	shaper *shape.Shaper
	cache  *LayoutCache
}

// NewEngine returns a ready-to-use Engine backed by the package-level
// default layout cache (see cache.go); WithCache installs a private one.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{shaper: shape.New(), cache: defaultCache}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCache installs a private LayoutCache instead of the shared
// package-level default, for callers that want isolated eviction (e.g.
// one cache per document rather than one shared across a process).
func WithCache(cache *LayoutCache) EngineOption {
	return func(e *Engine) { e.cache = cache }
}

// BreakIntoLines runs the full pipeline — measurement (C1), the
// word/hyphen stream (C3), and the breaker selected by cfg.strategy (C5
// greedy or C6 optimal) — and returns one BreakResult line per output
// line, in order. Results are memoized in the Engine's LayoutCache keyed
// on the text, the run list's identity, and the configuration, following
// the memoization LineBreakCache provides Android's StaticLayout.
func (e *Engine) BreakIntoLines(text *TextBuffer, runs []Run, widthProfile LineWidthProfile, cfg *Config) (BreakResult, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	key := cacheKey(text, runs, widthProfile, cfg)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached, nil
		}
	}

	m, err := Measure(text, runs, e.shaper)
	if err != nil {
		return BreakResult{}, err
	}
	cands, err := buildCandidates(m, cfg)
	if err != nil {
		return BreakResult{}, err
	}
	applyHyphenPenalties(cands, widthProfile, cfg)

	// §4.3/§6: a tab anywhere in the paragraph forces the greedy breaker
	// for the whole paragraph, regardless of the requested strategy —
	// the optimal breaker's shrink/raggedness model has no notion of a
	// tab stop's jump-to-next-stop semantics.
	strategy := cfg.strategy
	if (strategy == StrategyHighQuality || strategy == StrategyBalanced) && findTab(text, 0, text.Len()) >= 0 {
		strategy = StrategyGreedy
	}

	var lines []Line
	switch strategy {
	case StrategyGreedy:
		lines, err = breakGreedy(m, cands, widthProfile)
	case StrategyHighQuality, StrategyBalanced:
		lines, err = breakOptimal(m, cands, widthProfile, strategy, cfg.justified)
	default:
		return BreakResult{}, fmt.Errorf("linebreak: unknown break strategy %d", cfg.strategy)
	}
	if err != nil {
		return BreakResult{}, err
	}

	result := BreakResult{Lines: lines}
	if e.cache != nil {
		e.cache.Put(key, result)
	}
	return result, nil
}

// BreakGreedyOnly runs only the greedy breaker (C5) regardless of
// cfg.strategy, bypassing the optimal breaker entirely — the fast path
// SPEC_FULL.md §12 calls for on every keystroke of an interactive editor,
// where even the optimal breaker's single-paragraph cost is too much to
// pay per edit.
func (e *Engine) BreakGreedyOnly(text *TextBuffer, runs []Run, widthProfile LineWidthProfile, cfg *Config) (BreakResult, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	m, err := Measure(text, runs, e.shaper)
	if err != nil {
		return BreakResult{}, err
	}
	cands, err := buildCandidates(m, cfg)
	if err != nil {
		return BreakResult{}, err
	}
	applyHyphenPenalties(cands, widthProfile, cfg)
	lines, err := breakGreedy(m, cands, widthProfile)
	if err != nil {
		return BreakResult{}, err
	}
	return BreakResult{Lines: lines}, nil
}

// applyHyphenPenalties fills in each hyphenation candidate's Penalty
// using the formula spec.md §4.6 derives from LineBreakerImpl.cpp's
// HyphenEdit cost: half the first line's width, quadrupled at
// HyphenationFull relative to HyphenationNormal, and quartered when the
// paragraph is justified (justification can absorb raggedness a hyphen
// would otherwise exist to avoid). The text size and the width of the
// hyphen itself do not enter the penalty.
func applyHyphenPenalties(cands []Candidate, widthProfile LineWidthProfile, cfg *Config) {
	if cfg.frequency == HyphenationNone {
		return
	}
	lineWidth0 := ParaWidth(widthProfile.Width(0))
	base := 0.5 * float64(lineWidth0)
	if cfg.frequency == HyphenationFull {
		base *= 4
	}
	if cfg.justified {
		base *= 0.25
	}
	for i := range cands {
		if cands[i].HyphenClass != DontBreak && cands[i].HyphenClass != BreakAndDontInsertHyphen {
			cands[i].Penalty = float32(base)
		}
	}
}

// cacheKey derives a string cache key from the paragraph's content, its
// run list (the run slice's address and length), the width profile's
// first-line width (a cheap proxy for "did the available width change"),
// and the configuration that affects how candidates are built and scored
// (strategy, hyphenation frequency, justification, tab stops). It does
// not hash FontCollection/Hyphenator identity beyond that pointer-derived
// tag: two Engine calls sharing the same run slice and widths are taken
// to resolve to the same fonts.
func cacheKey(text *TextBuffer, runs []Run, widthProfile LineWidthProfile, cfg *Config) string {
	return fmt.Sprintf("%s|runs=%p/%d|w0=%v|strat=%d|hyph=%d|just=%v|tabs=%v",
		utf16Decode(text.units), runs, len(runs), widthProfile.Width(0), cfg.strategy, cfg.frequency, cfg.justified, cfg.tabStops)
}
