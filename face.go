package linebreak

import "github.com/go-text/typesetting/font"

// FaceMetrics is the subset of a font's design-space metrics the
// measurement pipeline needs to turn a shaped run into a vertical
// Extent: unitsPerEm and the ascender/descender in those same design
// units, scaled to the run's point size.
type FaceMetrics struct {
	UnitsPerEm float64
	Ascender   float64 // design units, positive pointing up
	Descender  float64 // design units, positive pointing down
}

// Face is a loaded font face: the go-text/typesetting face used for
// shaping, plus the metrics used to compute vertical extent. Callers
// implement this over whatever font-loading/fallback machinery they
// already have (this package, like the teacher's DecoFont in
// layout/inline/deco.go, never reaches into a concrete font type
// itself).
type Face interface {
	HarfbuzzFace() *font.Face
	Metrics() FaceMetrics
}
