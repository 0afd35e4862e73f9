// Package linebreak breaks a paragraph of shaped, styled Unicode text into
// lines.
//
// It takes a sequence of style/replacement runs over a shared text buffer,
// a caller-supplied per-line width profile, and an optional hyphenator and
// word-boundary iterator, and produces, for each line, a break offset, a
// width, a vertical extent, and hyphen-edit flags describing where
// automatic hyphens must be inserted or replaced.
//
// Two strategies are available: a greedy breaker that always takes the
// longest line that fits, and an optimal breaker that minimizes a global
// cost function over the whole paragraph (a bounded Knuth-Plass style
// dynamic program). Both cooperate with the same word/hyphen candidate
// stream so their output is directly comparable.
package linebreak

// ParaWidth holds cumulative width from the beginning of a paragraph.
// 64-bit precision is used here because very long paragraphs (tens of
// thousands of code units) would otherwise accumulate visible drift if
// summed in single precision.
type ParaWidth = float64

// Advance is a per-code-unit or per-candidate width, measured in the same
// units as ParaWidth but kept at single precision to match the shaping
// backend's native glyph-advance type.
type Advance = float32
