package linebreak

import (
	"fmt"
	"math"
)

// Cost constants for the optimal breaker's score function, named after
// and scaled the way LineBreakerImpl.cpp's equivalents are: an overfull
// line is always worse than any feasible one, a desperate (mid-word)
// break is worse than any non-desperate one but still better than
// overflowing (desperate candidates carry scoreDesperate as their own
// Penalty, so it flows through the ordinary penalty(i)/penalty(j) terms
// below rather than needing a special case), and a justified line's
// shrink is charged at 4x its squared shortfall while it stays within the
// line's shrink budget (beyond the budget the line is overfull).
const (
	scoreOverfull           = 1e12
	scoreDesperate          = 1e10
	shrinkPenaltyMultiplier = 4.0
	maxShrinkFraction       = 1.0 / 3.0
)

type optimalNode struct {
	score  float64
	prev   int
	lineNo int
	valid  bool
}

// breakOptimal implements the optimal breaker (C6): a bounded dynamic
// program over the candidate stream that picks, for every candidate i,
// the earlier candidate j minimizing cumulative cost(j) + lineCost(j,i),
// following LineBreakerImpl.cpp's computeBreaksOptimal/finishBreaksOptimal.
// Ties are broken in favor of the earliest j, since j is scanned in
// increasing order and a new candidate only replaces the current best on
// strict improvement.
//
// strategy only changes the paragraph's last line: HighQuality lets it
// run short without penalty (ordinary raggedness scoring is skipped in
// favor of a hyphen-penalty-only additional_penalty term), while Balanced
// scores the last line exactly like any other, so the break before it
// tends to land earlier and even out the last two lines' lengths.
//
// Unlike the original, this runs the full O(n*k) scan for every i rather
// than pruning with a bestHope lower bound (LineBreakerImpl.cpp's
// namesake optimization) — a performance simplification that does not
// change which break is chosen, only how many candidate pairs are
// scored to find it.
func breakOptimal(m *MeasuredText, cands []Candidate, widthProfile LineWidthProfile, strategy BreakStrategy, justified bool) ([]Line, error) {
	cands = addDesperateBreaks(m, cands, widthProfile)
	n := len(cands)
	if n == 0 {
		return nil, nil
	}

	var maxShrink ParaWidth
	if justified {
		maxShrink = ParaWidth(maxShrinkFraction) * spaceWidth(m)
	}

	nodes := make([]optimalNode, n)
	nodes[0] = optimalNode{score: 0, prev: -1, lineNo: 0, valid: true}
	for i := 1; i < n; i++ {
		nodes[i].score = math.Inf(1)
	}

	for i := 1; i < n; i++ {
		best := math.Inf(1)
		bestPrev := -1
		bestLine := 0
		atEnd := cands[i].Offset == m.Text.Len()
		for j := 0; j < i; j++ {
			if !nodes[j].valid {
				continue
			}
			lineNo := nodes[j].lineNo
			w := ParaWidth(widthProfile.Width(lineNo))
			leftEdge := cands[i].PostBreak - w
			delta := cands[j].PreBreak - leftEdge
			widthScore, additionalPenalty := lineCost(delta, cands[j].Penalty, cands[j].PreSpaceCount, cands[i].PostSpaceCount, maxShrink, atEnd, justified, strategy)
			cost := nodes[j].score + widthScore + additionalPenalty
			if cost < best {
				best = cost
				bestPrev = j
				bestLine = lineNo + 1
			}
		}
		if bestPrev >= 0 {
			nodes[i] = optimalNode{score: best + float64(cands[i].Penalty), prev: bestPrev, lineNo: bestLine, valid: true}
		}
	}

	last := n - 1
	if !nodes[last].valid {
		return nil, fmt.Errorf("linebreak: optimal breaker found no feasible path through %d candidates", n)
	}

	var path []int
	for i := last; i > 0; i = nodes[i].prev {
		path = append(path, i)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	lines := make([]Line, 0, len(path))
	prev := 0
	for _, idx := range path {
		tab := cands[idx].HyphenClass == DontBreak && containsTab(m.Text, cands[prev].Offset, cands[idx].Offset)
		lines = append(lines, makeLine(m, cands[prev].Offset, cands[idx], tab))
		prev = idx
	}
	return lines, nil
}

// lineCost scores the line spanning a candidate pair (j, i): delta is
// avail − actual (negative means the line overflows). Width scoring is
// skipped — in favor of a flat 4x hyphen-penalty surcharge on j — only
// when i is the paragraph's last candidate and strategy is not Balanced,
// so a ragged last line costs nothing on its own; Balanced scores the
// last line like any other, which is what makes it differ from
// HighQuality on the same input. A justified line that overflows
// absorbs up to maxShrink of shortfall per shrinkable space before it is
// scored as overfull, following §4.6's space_count-based shrink budget.
func lineCost(delta ParaWidth, prevPenalty float32, preSpaceCount, postSpaceCount int, maxShrink ParaWidth, atEnd, justified bool, strategy BreakStrategy) (widthScore, additionalPenalty float64) {
	switch {
	case (atEnd || !justified) && delta < 0:
		widthScore = scoreOverfull
	case atEnd && strategy != StrategyBalanced:
		additionalPenalty = 4 * float64(prevPenalty)
	default:
		d := float64(delta)
		widthScore = d * d
		if delta < 0 {
			shrinkBudget := float64(maxShrink) * float64(postSpaceCount-preSpaceCount)
			if float64(-delta) < shrinkBudget {
				widthScore *= shrinkPenaltyMultiplier
			} else {
				widthScore = scoreOverfull
			}
		}
	}
	return widthScore, additionalPenalty
}

// spaceWidth returns the width of the first ASCII word space in the
// paragraph (space_width in §4.6's shrink-budget formula), or 0 if the
// paragraph has none to shrink.
func spaceWidth(m *MeasuredText) ParaWidth {
	text := m.Text
	for i := 0; i < text.Len(); i++ {
		if isWordSpace(text.At(i)) {
			return ParaWidth(m.Widths[i])
		}
	}
	return 0
}

func containsTab(text *TextBuffer, start, end int) bool {
	return findTab(text, start, end) >= 0
}

// addDesperateBreaks inserts a BreakAndDontInsertHyphen candidate at a
// grapheme-cluster boundary inside every gap between consecutive
// candidates whose postBreak-preBreak width already exceeds the widest
// line the profile can offer, so the DP always has a feasible path even
// through a single word too long to fit any line — the optimal-breaker
// counterpart of LineBreakerImpl.cpp's addAllDesperateBreaksOptimal (see
// SPEC_FULL.md §13.1: this engine follows the newer LineBreakerImpl
// semantics, where desperate breaks are added in optimal mode too).
func addDesperateBreaks(m *MeasuredText, cands []Candidate, widthProfile LineWidthProfile) []Candidate {
	maxWidth := widestLine(widthProfile, len(cands))
	out := make([]Candidate, 0, len(cands))
	for i := 0; i < len(cands)-1; i++ {
		out = append(out, cands[i])
		gap := cands[i+1].PostBreak - cands[i].PreBreak
		if ParaWidth(maxWidth) >= gap {
			continue
		}
		start := cands[i].Offset
		limit := cands[i+1].Offset
		for {
			offset := desperateBreakOffset(m, start, limit, 0, ParaWidth(maxWidth))
			if offset <= start || offset >= limit {
				break
			}
			out = append(out, Candidate{
				Offset:      offset,
				PreBreak:    m.WidthOf(0, offset),
				PostBreak:   m.WidthOf(0, offset),
				Penalty:     scoreDesperate,
				HyphenClass: BreakAndDontInsertHyphen,
			})
			start = offset
			if cands[i+1].PostBreak-m.WidthOf(0, start) <= ParaWidth(maxWidth) {
				break
			}
		}
	}
	out = append(out, cands[len(cands)-1])
	return out
}

// widestLine returns the widest width the profile offers across the
// first upTo line numbers, a conservative (if count-bounded) stand-in
// for a true maximum since LineWidthProfile has no declared upper bound
// beyond "as many lines as the paragraph produces." For a
// TableLineWidthProfile it returns the larger of FirstWidth and
// RestWidth without scanning, so upTo, Indents and Offset are not applied.
func widestLine(profile LineWidthProfile, upTo int) Advance {
	if t, ok := profile.(*TableLineWidthProfile); ok {
		w := t.FirstWidth
		if t.RestWidth > w {
			w = t.RestWidth
		}
		return w
	}
	var max Advance
	for i := 0; i < upTo && i < 4096; i++ {
		if w := profile.Width(i); w > max {
			max = w
		}
	}
	return max
}
