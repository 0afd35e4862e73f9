package linebreak

import "fmt"

// Range is a half-open span of code-unit offsets into a TextBuffer: the
// text in [Start, End) belongs to the range.
type Range struct {
	Start int
	End   int
}

// Len returns the number of code units in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range spans no code units.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains reports whether offset lies within the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// validate returns an *InvalidRangeError if r does not describe a sane
// sub-range of a buffer of the given length.
func (r Range) validate(textLen int) error {
	if r.Start < 0 || r.End < r.Start || r.End > textLen {
		return &InvalidRangeError{Range: r, TextLen: textLen}
	}
	return nil
}

// TextBuffer is the UTF-16-addressed paragraph text that every Run,
// Candidate, and BreakResult offset refers to.
//
// Offsets throughout this package are in UTF-16 code units, matching the
// original system this engine's candidate model is modeled on; callers
// working in UTF-8 Go strings must convert at the boundary (see
// utf16UTF8Maps in measure.go for the offset maps used by the shaper and
// the word iterator).
type TextBuffer struct {
	units []uint16
}

// NewTextBuffer wraps a slice of UTF-16 code units. The slice is not
// copied; callers must not mutate it for the lifetime of any Engine or
// BreakResult built from it.
func NewTextBuffer(units []uint16) *TextBuffer {
	return &TextBuffer{units: units}
}

// NewTextBufferFromString encodes a Go string (UTF-8) into UTF-16 code
// units and wraps the result.
func NewTextBufferFromString(s string) *TextBuffer {
	return &TextBuffer{units: utf16Encode(s)}
}

// Len returns the number of UTF-16 code units in the buffer.
func (t *TextBuffer) Len() int {
	return len(t.units)
}

// At returns the code unit at offset i.
func (t *TextBuffer) At(i int) uint16 {
	return t.units[i]
}

// Slice returns the code units in r without copying.
func (t *TextBuffer) Slice(r Range) []uint16 {
	return t.units[r.Start:r.End]
}

// utf16Decode converts UTF-16 code units back to a Go string, for the
// handful of call sites (hyphenation) that need to hand a word to
// string-oriented Unicode algorithms.
func utf16Decode(units []uint16) string {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) {
			lo := units[i+1]
			if lo >= 0xDC00 && lo <= 0xDFFF {
				runes = append(runes, (rune(u-0xD800)<<10|rune(lo-0xDC00))+0x10000)
				i++
				continue
			}
		}
		runes = append(runes, rune(u))
	}
	return string(runes)
}

func utf16Encode(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r <= 0xFFFF {
			units = append(units, uint16(r))
			continue
		}
		r -= 0x10000
		units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
	}
	return units
}

// isLineEndSpace reports whether c is a space character that disappears
// at the end of a line: the Unicode set
// [[:General_Category=Space_Separator:]-[:Line_Break=Glue:]], plus '\n'.
// All such characters are in the BMP so a code-unit comparison suffices.
func isLineEndSpace(c uint16) bool {
	switch {
	case c == '\n' || c == ' ':
		return true
	case c == 0x1680: // OGHAM SPACE MARK
		return true
	case c >= 0x2000 && c <= 0x200A && c != 0x2007:
		return true
	case c == 0x205F, c == 0x3000:
		return true
	default:
		return false
	}
}

// isWordSpace reports whether c is the ordinary ASCII word space; it is
// the character the greedy and optimal breakers treat as "stretchable"
// for the space-count bookkeeping in Candidate.
func isWordSpace(c uint16) bool {
	return c == ' '
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
