package linebreak

import (
	"fmt"
	"unicode/utf8"

	"github.com/ambermoth/linebreak/internal/seg"
	"github.com/ambermoth/linebreak/internal/shape"
)

// Measure runs the measurement pipeline (C1): for every StyleRun it
// splits the run into bidi sub-runs (internal/seg.BidiRuns, exactly the
// way the teacher's ShapeRange splits a segment by bidi level before
// shaping each piece independently), shapes each sub-run with the run's
// face, and scatters the resulting per-code-unit advances and extent
// into the paragraph-wide arrays. ReplacementRuns contribute their
// caller-supplied width to their first code unit and zero to the rest,
// matching how Minikin treats an inline replacement as a single opaque
// glyph; their extent is recorded on every code unit of the span.
func Measure(text *TextBuffer, runs []Run, shaper *shape.Shaper) (*MeasuredText, error) {
	n := text.Len()
	m := &MeasuredText{
		Text:    text,
		Runs:    runs,
		Widths:  make([]float32, n),
		Extents: make([]Extent, n),
		Overhang: make([]Overhang, n),
		RTL:     make([]bool, n),
	}

	utf8Text, utf8ToUTF16, utf16ToUTF8 := utf16UTF8Maps(text)

	for ri, run := range runs {
		switch r := run.(type) {
		case *ReplacementRun:
			if err := r.Span.validate(n); err != nil {
				return nil, err
			}
			if r.Span.IsEmpty() {
				continue
			}
			m.Widths[r.Span.Start] = float32(r.Width)
			e := Extent{Ascent: -r.Ascent, Descent: r.Descent}
			for i := r.Span.Start; i < r.Span.End; i++ {
				m.Extents[i] = e
			}
		case *StyleRun:
			if err := r.Span.validate(n); err != nil {
				return nil, err
			}
			if r.Span.IsEmpty() {
				continue
			}
			if err := measureStyleRun(m, ri, r, shaper, utf8Text, utf8ToUTF16, utf16ToUTF8); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("linebreak: unknown run type %T", run)
		}
	}
	markOverhangs(m)
	return m, nil
}

func measureStyleRun(m *MeasuredText, runIdx int, r *StyleRun, shaper *shape.Shaper, utf8Text string, utf8ToUTF16, utf16ToUTF8 []int) error {
	face, err := r.Fonts.FaceFor(r.Style)
	if err != nil {
		return fmt.Errorf("linebreak: resolve face for run %d: %w", runIdx, err)
	}
	metrics := face.Metrics()

	startByte, endByte := utf16ToUTF8[r.Span.Start], utf16ToUTF8[r.Span.End]
	subRuns := seg.BidiRuns(utf8Text[startByte:endByte], r.IsRTL, func(level int) { logInvalidBidi(runIdx, level) })
	if len(subRuns) == 0 {
		return nil
	}

	for _, sr := range subRuns {
		u16Start := utf8ToUTF16[startByte+sr.Start]
		u16End := utf8ToUTF16[startByte+sr.End]
		if u16Start >= u16End {
			continue
		}
		result, err := shaper.Measure(face.HarfbuzzFace(), metrics.UnitsPerEm, metrics.Ascender, metrics.Descender, r.Paint.SizePt, text16(m.Text, u16Start, u16End), sr.RTL)
		if err != nil {
			return &ShapingError{Run: runIdx, Range: Range{Start: u16Start, End: u16End}, Err: err}
		}
		extent := Extent{Ascent: result.Ascent, Descent: result.Descent}
		for i := 0; i < len(result.Advances); i++ {
			idx := u16Start + i
			m.Widths[idx] = result.Advances[i]
			m.Extents[idx] = extent
			m.RTL[idx] = sr.RTL
		}
	}
	return nil
}

func text16(t *TextBuffer, start, end int) []uint16 {
	units := make([]uint16, end-start)
	for i := start; i < end; i++ {
		units[i-start] = t.At(i)
	}
	return units
}

// utf16UTF8Maps decodes the buffer to a UTF-8 string for the bidi
// algorithm (golang.org/x/text/unicode/bidi operates on Go strings) and
// returns the offset tables needed to translate between the two
// encodings' code-unit positions.
func utf16UTF8Maps(t *TextBuffer) (s string, utf8ToUTF16 []int, utf16ToUTF8 []int) {
	n := t.Len()
	utf16ToUTF8 = make([]int, n+1)
	var buf []byte
	u16 := 0
	for u16 < n {
		c := t.At(u16)
		var r rune
		width := 1
		if c >= 0xD800 && c <= 0xDBFF && u16+1 < n {
			lo := t.At(u16 + 1)
			if lo >= 0xDC00 && lo <= 0xDFFF {
				r = (rune(c-0xD800)<<10 | rune(lo-0xDC00)) + 0x10000
				width = 2
			}
		}
		if width == 1 {
			r = rune(c)
		}
		utf16ToUTF8[u16] = len(buf)
		if width == 2 {
			utf16ToUTF8[u16+1] = len(buf)
		}
		var tmp [utf8.UTFMax]byte
		n8 := utf8.EncodeRune(tmp[:], r)
		buf = append(buf, tmp[:n8]...)
		u16 += width
	}
	utf16ToUTF8[n] = len(buf)
	s = string(buf)

	utf8ToUTF16 = make([]int, len(s)+1)
	last16 := 0
	for b := 0; b <= len(s); b++ {
		for last16 < n && utf16ToUTF8[last16] < b {
			last16++
		}
		utf8ToUTF16[b] = last16
	}
	return s, utf8ToUTF16, utf16ToUTF8
}

// markOverhangs assigns a conservative hanging-punctuation overhang to
// the small set of punctuation code points that commonly hang past the
// line edge (closing/opening quotation marks, CJK full-width stops).
// This is a deliberate simplification of Minikin's glyph-bearing-based
// LayoutOverhang: the narrow Face interface this package consumes
// (face.go) exposes line-height metrics, not per-glyph side bearings, so
// the overhang estimate here is a fixed fraction of the glyph's own
// advance rather than its true visual ink extent.
func markOverhangs(m *MeasuredText) {
	for i := 0; i < m.Text.Len(); i++ {
		c := m.Text.At(i)
		if !isHangingPunctuation(c) {
			continue
		}
		amt := m.Widths[i] * 0.5
		m.Overhang[i] = Overhang{First: amt, Second: amt}
	}
}

func isHangingPunctuation(c uint16) bool {
	switch c {
	case '.', ',', '。', '，', '、', '”', '’':
		return true
	default:
		return false
	}
}
