// Package shape wraps github.com/go-text/typesetting's HarfBuzz-backed
// shaper into the narrow measurement the line breaker actually needs:
// a per-UTF-16-code-unit advance array plus a vertical extent, for one
// contiguous, single-direction, single-face run of text.
//
// It is modeled directly on the teacher's ShapingContext/Shape in
// layout/inline/shaping.go, trimmed to the subset the breaker consumes
// (no glyph positions, no adjustability — those belong to the finalized
// frame-building stage, which is out of this engine's scope).
package shape
