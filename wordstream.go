package linebreak

import (
	"sort"

	"github.com/ambermoth/linebreak/internal/seg"
)

// wordIterator yields successive word-boundary offsets (in whatever
// coordinate space the caller built it over) in increasing order. It is
// satisfied structurally by *seg.WordIterator; tests supply their own
// implementation through the unexported withWordIterator option (config.go)
// to script exact break sequences, mirroring LineBreakerImpl's protected
// test-only constructor.
type wordIterator interface {
	Next() (int, bool)
}

// wordLikeReporter is the optional extra *seg.WordIterator implements:
// whether the token that just ended at the last Next() boundary contains
// a letter or digit, as opposed to being pure punctuation/whitespace. A
// test-injected wordIterator need not implement it — buildCandidates
// falls back to treating every token as word-like.
type wordLikeReporter interface {
	IsWordLike() bool
}

// buildCandidates runs the word/hyphen stream (C3): it walks the
// paragraph's word boundaries, pushing a natural Candidate at each one,
// and — when hyphenation is enabled and a Hyphenator is available for
// the covering run's locale — interior hyphenation Candidates for each
// word, using the exact per-position classification the Hyphenator
// returns. Candidates are returned in non-decreasing Offset order,
// starting with the sentinel at offset 0.
//
// Word iteration runs over the whole paragraph under a single locale
// (the first non-empty locale found among its StyleRuns): unlike
// LineBreakerImpl.cpp's addRuns, this does not restart the iterator at
// every run's locale boundary. That fidelity is traded for materially
// simpler bookkeeping; per-run locale restart is a documented
// simplification, the same kind the teacher itself makes in
// classifyBreakpoint/hyphenateSegment.
func buildCandidates(m *MeasuredText, cfg *Config) ([]Candidate, error) {
	text := m.Text
	n := text.Len()
	cands := []Candidate{sentinelCandidate()}
	if n == 0 {
		return cands, nil
	}

	resolveTabWidths(text, m.Widths, cfg.tabStops)

	prefix := make([]ParaWidth, n+1)
	for i := 0; i < n; i++ {
		prefix[i+1] = prefix[i] + ParaWidth(m.Widths[i])
	}

	locale := dominantLocale(m.Runs)
	var iter wordIterator
	var toUTF16 []int
	if cfg.wordIter != nil {
		iter = cfg.wordIter(locale)
	} else {
		utf8Text, utf8ToUTF16, _ := utf16UTF8Maps(text)
		toUTF16 = utf8ToUTF16
		iter = seg.NewWordIterator([]byte(utf8Text), locale)
	}

	runIdx := 0
	for {
		rawOffset, ok := iter.Next()
		if !ok {
			break
		}
		if toUTF16 != nil && rawOffset >= 0 && rawOffset < len(toUTF16) {
			rawOffset = toUTF16[rawOffset]
		}
		offset := clampOffsetForEncoding(rawOffset, n, cfg)
		if offset <= 0 || offset > n {
			continue
		}

		for runIdx < len(m.Runs) && m.Runs[runIdx].Range().End <= offset {
			runIdx++
		}

		trailingSpaces := 0
		spanStart := offset
		for spanStart > 0 && isLineEndSpace(text.At(spanStart-1)) {
			spanStart--
			trailingSpaces++
		}
		leadingSpaces := 0
		for offset+leadingSpaces < n && isLineEndSpace(text.At(offset+leadingSpaces)) {
			leadingSpaces++
		}

		isRTL := false
		if offset > 0 && offset-1 < len(m.RTL) {
			isRTL = m.RTL[offset-1]
		}

		cands = append(cands, Candidate{
			Offset:         offset,
			PreBreak:       prefix[offset],
			PostBreak:      prefix[spanStart],
			FirstOverhang:  float32(overhangAt(m, spanStart-1, true)),
			SecondOverhang: float32(overhangAt(m, offset, false)),
			PreSpaceCount:  trailingSpaces,
			PostSpaceCount: leadingSpaces,
			HyphenClass:    DontBreak,
			IsRTL:          isRTL,
		})
		adjustSecondOverhang(cands, len(cands)-1)

		wordLike := true
		if r, ok := iter.(wordLikeReporter); ok {
			wordLike = r.IsWordLike()
		}

		if cfg.frequency != HyphenationNone && wordLike && runIdx < len(m.Runs) {
			if sr, ok := m.Runs[runIdx].(*StyleRun); ok {
				wordStart := offset
				for wordStart > 0 && !isWordBoundaryBreak(text.At(wordStart-1)) {
					wordStart--
				}
				cands = append(cands, hyphenationCandidates(m, prefix, sr, wordStart, spanStart)...)
			}
		}
	}

	// A word's interior hyphenation candidates are appended after its
	// own natural boundary candidate but carry smaller offsets, so the
	// stream built above is not yet in non-decreasing Offset order.
	// Every breaker (greedy.go, optimal.go) requires that order; restore
	// it with one stable sort rather than threading ordering logic
	// through the loop above.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Offset < cands[j].Offset })
	return cands, nil
}

// adjustSecondOverhang implements §4.5's retroactive adjustment: a word's
// ink can intrude leftward past its own offset into the whitespace of
// earlier candidates. Walking backward from the candidate that was just
// appended, every earlier candidate whose trailing whitespace the ink
// still reaches gets its SecondOverhang raised to cover it.
func adjustSecondOverhang(cands []Candidate, idx int) {
	cur := cands[idx]
	if cur.SecondOverhang <= 0 {
		return
	}
	for i := idx - 1; i >= 0; i-- {
		remaining := cur.SecondOverhang - float32(cur.PreBreak-cands[i].PreBreak)
		if remaining <= 0 {
			break
		}
		if remaining > cands[i].SecondOverhang {
			cands[i].SecondOverhang = remaining
		}
	}
}

// resolveTabWidths sizes every tab character's advance so that, once
// accumulated into the cumulative width array buildCandidates builds
// from widths, the paragraph's running width after the tab lands
// exactly on next_tab(width_so_far) — §4.3's "next_tab(width_so_far) −
// last_pre_break", with last_pre_break approximated as width_so_far
// itself (the running width immediately before the tab) rather than the
// true start of the current line, since candidate building runs before
// any line has actually been broken and the two coincide on a
// paragraph's first line, e.g. scenario 4's tab landing at 30 after "a ".
func resolveTabWidths(text *TextBuffer, widths []float32, tabStops TabStops) {
	var widthSoFar Advance
	for i := 0; i < text.Len(); i++ {
		if text.At(i) == '\t' {
			next := tabStops.NextTab(widthSoFar)
			tabWidth := next - widthSoFar
			if tabWidth < 0 {
				tabWidth = 0
			}
			widths[i] = float32(tabWidth)
			widthSoFar = next
			continue
		}
		widthSoFar += Advance(widths[i])
	}
}

func overhangAt(m *MeasuredText, idx int, first bool) float32 {
	if idx < 0 || idx >= len(m.Overhang) {
		return 0
	}
	if first {
		return m.Overhang[idx].First
	}
	return m.Overhang[idx].Second
}

// isWordBoundaryBreak is a coarse word-internal scan limiter: it treats
// whitespace and line-end space as always ending a word, so the
// backward scan for a word's start in buildCandidates never walks past
// the previous space run.
func isWordBoundaryBreak(c uint16) bool {
	return isLineEndSpace(c) || c == '\t'
}

// hyphenationCandidates asks the run's hyphenator (if any, for its
// locale) for interior break positions in [wordStart, wordEnd) and
// returns a Candidate for each permitted one, carrying the
// HyphenationClass. The Candidates' Penalty is left zero here;
// applyHyphenPenalties (engine.go) sets it afterwards.
func hyphenationCandidates(m *MeasuredText, prefix []ParaWidth, run *StyleRun, wordStart, wordEnd int) []Candidate {
	if wordEnd <= wordStart {
		return nil
	}
	h := selectHyphenator(run)
	if h == nil {
		logHyphenatorUnavailable(run.Paint.FirstLocale())
		return nil
	}
	word := make([]uint16, wordEnd-wordStart)
	for i := wordStart; i < wordEnd; i++ {
		word[i-wordStart] = m.Text.At(i)
	}
	classes := h.Hyphenate(word)

	// Penalty is filled in later by applyHyphenPenalties (engine.go) once
	// a LineWidthProfile is available; this stream only classifies where
	// a break may occur.
	var out []Candidate
	for i := 1; i < len(classes)-1; i++ {
		class := classes[i]
		if class == DontBreak {
			continue
		}
		offset := wordStart + i
		out = append(out, Candidate{
			Offset:      offset,
			PreBreak:    prefix[offset],
			PostBreak:   prefix[offset],
			HyphenClass: class,
			IsRTL:       run.IsRTL,
		})
	}
	return out
}

func selectHyphenator(run *StyleRun) Hyphenator {
	locale := run.Paint.FirstLocale()
	for _, h := range run.Hyphenators {
		if h.Locale() == locale {
			return h
		}
	}
	if dh, ok := NewDefaultHyphenator(locale); ok {
		return dh
	}
	return nil
}

func dominantLocale(runs []Run) string {
	for _, r := range runs {
		if sr, ok := r.(*StyleRun); ok {
			if l := sr.Paint.FirstLocale(); l != "" {
				return l
			}
		}
	}
	return ""
}

// clampOffsetForEncoding clamps a word-boundary offset to the paragraph
// length n. Offsets reaching it are already UTF-16 code-unit offsets:
// buildCandidates maps the production seg.WordIterator's UTF-8 byte
// offsets through utf16UTF8Maps, and a test-injected wordIterator
// supplies UTF-16 offsets directly.
func clampOffsetForEncoding(offset, n int, cfg *Config) int {
	if offset > n {
		return n
	}
	return offset
}
