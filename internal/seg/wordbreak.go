package seg

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// WordIterator yields successive UAX#29 word-boundary offsets (UTF-8 byte
// offsets into the text it was built from) in increasing order.
type WordIterator struct {
	seg      *words.Segmenter
	pos      int
	done     bool
	wordLike bool
}

// NewWordIterator returns a WordIterator over text. locale is not
// consulted: segmentation follows UAX#29's default rules, which are
// locale-agnostic for the cases this package exercises (see
// SPEC_FULL.md §13.3 — per-script tailoring remains a documented TODO,
// matching LineBreakerImpl.cpp's own "ignore all locales except the
// first" behavior).
func NewWordIterator(text []byte, locale string) *WordIterator {
	return &WordIterator{seg: words.NewSegmenter(text)}
}

// Next returns the next word-boundary offset strictly after the
// iterator's current position, and true, or (0, false) once the text is
// exhausted.
func (w *WordIterator) Next() (int, bool) {
	if w.done {
		return 0, false
	}
	if !w.seg.Next() {
		w.done = true
		return 0, false
	}
	token := w.seg.Value()
	w.pos += len(token)
	w.wordLike = containsLetterOrDigit(token)
	return w.pos, true
}

// IsWordLike reports whether the most recently returned token contains a
// letter or digit, as opposed to being pure punctuation or whitespace —
// the distinction buildCandidates (wordstream.go) uses to decide which
// tokens are worth asking the hyphenator about.
func (w *WordIterator) IsWordLike() bool {
	return w.wordLike
}

func containsLetterOrDigit(token []byte) bool {
	for i := 0; i < len(token); {
		r, size := utf8.DecodeRune(token[i:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
		i += size
	}
	return false
}
