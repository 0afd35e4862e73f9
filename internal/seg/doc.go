// Package seg adapts real Unicode-standard segmentation (UAX#29 word
// boundaries, UAX#9 bidi paragraph ordering) to the small iterator
// interfaces the line breaker consumes.
//
// It replaces the hand-rolled "simplified" word/line-break detection the
// teacher's layout/inline/linebreak.go carries (classifyBreakpoint,
// hyphenateSegment) with the real UAX#29 segmenter from
// github.com/clipperhouse/uax29/v2, and reuses golang.org/x/text's bidi
// package the same way the teacher's ShapeRange already does.
package seg
