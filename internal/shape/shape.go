package shape

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Result is the per-code-unit measurement of one shaped segment.
type Result struct {
	// Advances holds one entry per UTF-16 code unit of the input text;
	// a multi-code-unit glyph cluster's total advance is attributed to
	// the cluster's first code unit, with zero on the rest, matching
	// Minikin's MeasuredText.widths convention so that summing the
	// slice gives the segment's total width regardless of clustering.
	Advances []float32
	Ascent   float32
	Descent  float32
}

// Shaper wraps a single HarfbuzzShaper instance and serializes calls to
// it with its own mutex, so one Shaper may be shared across goroutines
// (mirroring the teacher's ShapingContext, which guards itself the same
// way).
type Shaper struct {
	hb *shaping.HarfbuzzShaper
	mu sync.Mutex
}

// New returns a ready-to-use Shaper.
func New() *Shaper {
	return &Shaper{hb: &shaping.HarfbuzzShaper{}}
}

// ToFixed converts a float64 size in points to 26.6 fixed point, the
// representation go-text/typesetting's shaping.Input expects.
func ToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// Measure shapes text (already sliced to one bidi direction and one
// face) and returns per-UTF-16-code-unit advances plus a vertical extent
// derived from the face's design-space ascender/descender/unitsPerEm,
// scaled to sizePt. These are passed as plain numbers rather than a face
// wrapper type so this package does not dictate the shape of the root
// package's public Face interface (see linebreak/face.go).
func (s *Shaper) Measure(hbFace *font.Face, unitsPerEm, ascender, descender float64, sizePt float32, text []uint16, rtl bool) (Result, error) {
	if len(text) == 0 {
		return Result{}, nil
	}
	runes, unitOffsets := decodeUTF16WithOffsets(text)
	if len(runes) == 0 {
		return Result{Advances: make([]float32, len(text))}, nil
	}

	direction := di.DirectionLTR
	if rtl {
		direction = di.DirectionRTL
	}

	s.mu.Lock()
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Face:      hbFace,
		Size:      ToFixed(float64(sizePt)),
		Direction: direction,
	}
	output := s.hb.Shape(input)
	s.mu.Unlock()

	advances := make([]float32, len(text))
	for i, g := range output.Glyphs {
		cluster := g.ClusterIndex
		if cluster < 0 || cluster >= len(unitOffsets) {
			continue
		}
		unit := unitOffsets[cluster]
		if unit < 0 || unit >= len(advances) {
			continue
		}
		advances[unit] += float32(g.XAdvance) / 64
	}

	if unitsPerEm <= 0 {
		unitsPerEm = 1000
	}
	scale := float64(sizePt) / unitsPerEm
	ascent := float32(-ascender * scale)
	descent := float32(descender * scale)
	return Result{Advances: advances, Ascent: ascent, Descent: descent}, nil
}

// decodeUTF16WithOffsets decodes UTF-16 code units to runes, returning a
// parallel slice mapping each rune index back to the UTF-16 code-unit
// offset its first code unit occupies (2 for surrogate pairs).
func decodeUTF16WithOffsets(units []uint16) ([]rune, []int) {
	runes := make([]rune, 0, len(units))
	offsets := make([]int, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) {
			lo := units[i+1]
			if lo >= 0xDC00 && lo <= 0xDFFF {
				r := (rune(u-0xD800)<<10 | rune(lo-0xDC00)) + 0x10000
				runes = append(runes, r)
				offsets = append(offsets, i)
				i++
				continue
			}
		}
		runes = append(runes, rune(u))
		offsets = append(offsets, i)
	}
	return runes, offsets
}
