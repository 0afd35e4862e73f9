package linebreak

import (
	"github.com/rivo/uniseg"
)

// breakGreedy implements the greedy breaker (C5): it streams candidates
// forward, maintaining best_greedy, a deque of pending (not yet emitted)
// breaks kept strictly increasing in both offset and penalty — a later,
// cheaper candidate dominates and evicts every costlier one ahead of it
// in the deque, following LineBreakerImpl.cpp's computeBreaksGreedy /
// computeBreaksGreedyPartial and its mBestGreedyBreaks deque. When the
// running line overflows, the front of the deque (the oldest pending
// break) is popped and emitted as a line boundary, and the line is
// re-measured from the new boundary; this repeats until the candidate
// under examination fits, or the deque runs dry and a desperate mid-word
// break is required.
func breakGreedy(m *MeasuredText, cands []Candidate, widthProfile LineWidthProfile) ([]Line, error) {
	var lines []Line
	text := m.Text
	lastGreedy := 0 // index into cands of the last emitted break
	var pending []int

	emit := func(idx int) {
		tab := findTab(text, cands[lastGreedy].Offset, cands[idx].Offset) >= 0
		lines = append(lines, makeLine(m, cands[lastGreedy].Offset, cands[idx], tab))
		lastGreedy = idx
	}

	for j := 1; j < len(cands); j++ {
		for {
			cand := cands[j]
			w := cand.PostBreak - cands[lastGreedy].PreBreak
			lo, ro := overhangSides(cand.IsRTL, cand.FirstOverhang, cands[lastGreedy].SecondOverhang)
			if fits(widthProfile, len(lines), w, lo, ro) {
				break
			}
			if len(pending) > 0 {
				front := pending[0]
				pending = pending[1:]
				emit(front)
				continue
			}

			// Nothing pending fits either: the word itself is too long
			// for one line. Insert one desperate mid-word break and
			// retry the fit test against the new baseline.
			lineWidth := ParaWidth(widthProfile.Width(len(lines)))
			offset := desperateBreakOffset(m, cands[lastGreedy].Offset, cand.Offset, cands[lastGreedy].PreBreak, lineWidth)
			lines = append(lines, makeDesperateLine(m, cands[lastGreedy].Offset, offset))
			synthetic := Candidate{
				Offset:      offset,
				PreBreak:    m.WidthOf(0, offset),
				PostBreak:   m.WidthOf(0, offset),
				HyphenClass: BreakAndDontInsertHyphen,
			}
			idx := lastGreedy + 1
			cands = insertCandidate(cands, idx, synthetic)
			j++
			lastGreedy = idx
		}

		cand := cands[j]
		for len(pending) > 0 && cands[pending[len(pending)-1]].Penalty >= cand.Penalty {
			pending = pending[:len(pending)-1]
		}
		pending = append(pending, j)
	}

	last := len(cands) - 1
	if cands[last].Offset != cands[lastGreedy].Offset {
		emit(last)
	}
	return lines, nil
}

// overhangSides picks the left/right overhang for the fit test: an RTL
// candidate reads right-to-left, so its own leading ink (first_overhang)
// faces left and the previous break's trailing ink (second_overhang)
// faces right; an LTR candidate is the mirror image.
func overhangSides(isRTL bool, firstOverhang, lastSecondOverhang float32) (left, right float32) {
	if isRTL {
		return firstOverhang, lastSecondOverhang
	}
	return lastSecondOverhang, firstOverhang
}

// fits implements §4.5's fit test: w plus each side's overhang past its
// pad must not exceed the line's width. left_pad/right_pad are not
// modeled by LineWidthProfile (see linewidth.go) and are treated as
// zero, a documented simplification — only the overhang terms vary here.
func fits(widthProfile LineWidthProfile, lineNo int, w ParaWidth, leftOverhang, rightOverhang float32) bool {
	width := ParaWidth(widthProfile.Width(lineNo))
	if leftOverhang < 0 {
		leftOverhang = 0
	}
	if rightOverhang < 0 {
		rightOverhang = 0
	}
	return w+ParaWidth(leftOverhang)+ParaWidth(rightOverhang) <= width
}

// makeLine packages the line spanning (start, break-candidate] into a
// Line, computing width and extent from the MeasuredText and the
// hyphen-edit flags from the candidate's class.
func makeLine(m *MeasuredText, start int, brk Candidate, tab bool) Line {
	width := brk.PostBreak - m.WidthOf(0, start)
	extent := m.ExtentOf(start, brk.Offset)
	return Line{
		BreakOffset: brk.Offset,
		Width:       Advance(width),
		Extent:      extent,
		Edit:        PackHyphenEdit(editForNextLine(brk.HyphenClass), editForThisLine(brk.HyphenClass)),
		Tab:         tab,
	}
}

// makeDesperateLine packages a forced mid-word break with no hyphen
// edit (BreakAndDontInsertHyphen never carries one).
func makeDesperateLine(m *MeasuredText, start, offset int) Line {
	return Line{
		BreakOffset: offset,
		Width:       Advance(m.WidthOf(start, offset)),
		Extent:      m.ExtentOf(start, offset),
		Edit:        PackHyphenEdit(StartNoEdit, EndNoEdit),
	}
}

// desperateBreakOffset finds the furthest grapheme-cluster boundary in
// (start, limit] whose width from start does not exceed lineWidth,
// using github.com/rivo/uniseg to guarantee the break never lands inside
// a combining-mark cluster. If even the first grapheme overflows, it is
// kept anyway (a single cluster is never split) to guarantee forward
// progress.
func desperateBreakOffset(m *MeasuredText, start, limit int, base, lineWidth ParaWidth) int {
	text := m.Text
	str := utf16Decode(text.Slice(Range{start, limit}))

	best := start
	width := ParaWidth(0)
	pos := start
	state := -1
	remaining := str
	for len(remaining) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		state = newState
		clusterLen := len(utf16Encode(cluster))

		clusterWidth := m.WidthOf(pos, pos+clusterLen)
		if width+ParaWidth(clusterWidth) > lineWidth && pos > start {
			break
		}
		width += ParaWidth(clusterWidth)
		pos += clusterLen
		best = pos
		remaining = rest
		if pos >= limit {
			break
		}
	}
	if best == start && pos > start {
		best = pos
	}
	return best
}

// findTab returns the offset of the first tab character in [start, end),
// or -1 if there is none.
func findTab(text *TextBuffer, start, end int) int {
	for i := start; i < end; i++ {
		if text.At(i) == '\t' {
			return i
		}
	}
	return -1
}

// insertCandidate inserts c at index idx, shifting later elements right.
func insertCandidate(cands []Candidate, idx int, c Candidate) []Candidate {
	cands = append(cands, Candidate{})
	copy(cands[idx+1:], cands[idx:])
	cands[idx] = c
	return cands
}
