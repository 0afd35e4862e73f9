package main

import (
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/ambermoth/linebreak"
	linebreakfont "github.com/ambermoth/linebreak/font"
)

// demoFace adapts this module's own font.Font (a teacher-tree type,
// retained and repurposed rather than discarded — see DESIGN.md) to the
// public linebreak.Face contract.
type demoFace struct {
	f      *linebreakfont.Font
	sizePt float64
}

func (d demoFace) HarfbuzzFace() *font.Face {
	return d.f.Face()
}

// Metrics reports unitsPerEm from the face's own font.Upem() (grounded
// on pdf/font.go's getUnitsPerEm) and an ascender/descender approximated
// as 80%/20% of the em box: go-text/typesetting's true vertical-extents
// accessor was never observed anywhere in the retrieved pack, so this
// demo CLI — unlike the library itself, whose Face contract leaves
// metrics entirely to the caller — approximates rather than guesses at
// an unverified API.
func (d demoFace) Metrics() linebreak.FaceMetrics {
	upem := 1000.0
	if hb := d.f.Face(); hb != nil && hb.Font != nil {
		upem = hb.Font.Upem()
	}
	return linebreak.FaceMetrics{
		UnitsPerEm: upem,
		Ascender:   upem * 0.8,
		Descender:  upem * 0.2,
	}
}

// singleFaceCollection is a FontCollection with exactly one face,
// regardless of the requested FontStyle — the -font path, for a demo
// run with a single face and no fallback chain.
type singleFaceCollection struct {
	face linebreak.Face
}

func (c singleFaceCollection) FaceFor(linebreak.FontStyle) (linebreak.Face, error) {
	return c.face, nil
}

// bookFaceCollection is a FontCollection backed by a font.FontBook (the
// -fontdir path): it maps a FontStyle to a Variant and asks the book to
// select the closest-matching face by weight/style distance, exactly
// the way FontBook.SelectWithFallback ranks candidates for the teacher's
// own font-resolution callers. families is consulted in order the same
// way Paint.Locales is — first match wins.
type bookFaceCollection struct {
	book     *linebreakfont.FontBook
	families []string
	sizePt   float64
}

func (c bookFaceCollection) FaceFor(style linebreak.FontStyle) (linebreak.Face, error) {
	variant := linebreakfont.NormalVariant()
	switch {
	case style.Bold && style.Italic:
		variant = linebreakfont.BoldItalicVariant()
	case style.Bold:
		variant = linebreakfont.BoldVariant()
	case style.Italic:
		variant = linebreakfont.ItalicVariant()
	}
	f := c.book.SelectWithFallback(c.families, variant)
	if f == nil {
		return nil, fmt.Errorf("no font available in the loaded font directory")
	}
	return demoFace{f: f, sizePt: c.sizePt}, nil
}

// utf16Encode/utf16Decode mirror the unexported helpers in text.go: this
// command lives outside the linebreak package and needs its own copies
// to print line text back out after BreakIntoLines returns code-unit
// offsets.
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
