package linebreak

import "github.com/ambermoth/linebreak/internal/hyphen"

// Hyphenator classifies interior hyphenation opportunities inside a
// single word for one locale. A StyleRun may list several, one per
// locale it is prepared to hyphenate in; the word/hyphen stream (C3)
// selects the one whose Locale matches the run's first valid locale tag
// (see SPEC_FULL.md §13.3).
type Hyphenator interface {
	// Locale returns the locale tag this hyphenator serves.
	Locale() string
	// Hyphenate returns len(word)+1 HyphenationClass values, one per
	// gap between consecutive code units of word, including the gap
	// before the first unit and after the last (both always DontBreak:
	// those are word boundaries, not interior hyphenation points).
	Hyphenate(word []uint16) []HyphenationClass
}

// defaultHyphenators caches the package-wide registry of built-in,
// pattern-table-backed hyphenators so NewDefaultHyphenator doesn't
// reparse its YAML fixture on every call (each built-in fixture is parsed
// once, on the first lookup of its locale, which happens while candidates
// are being built).
var defaultHyphenators = hyphen.NewRegistry()

// DefaultHyphenator is a Liang-pattern-table hyphenator backed by
// internal/hyphen, for locales with a registered (built-in or
// caller-supplied) pattern fixture.
type DefaultHyphenator struct {
	locale string
	impl   *hyphen.Hyphenator
}

// NewDefaultHyphenator returns the built-in hyphenator for locale, or
// (nil, false) if no pattern fixture is registered for it.
func NewDefaultHyphenator(locale string) (*DefaultHyphenator, bool) {
	impl, ok := defaultHyphenators.Get(locale)
	if !ok {
		return nil, false
	}
	return &DefaultHyphenator{locale: locale, impl: impl}, true
}

// RegisterHyphenationPatterns installs a caller-supplied pattern fixture
// for locale, for dictionaries beyond the small built-in set.
func RegisterHyphenationPatterns(locale string, yamlData []byte) error {
	set, err := hyphen.LoadPatternSet(yamlData)
	if err != nil {
		return err
	}
	defaultHyphenators.Register(locale, set)
	return nil
}

// Locale implements Hyphenator.
func (d *DefaultHyphenator) Locale() string { return d.locale }

// softHyphen is U+00AD SOFT HYPHEN, a break point that is invisible
// unless the line actually breaks there, in which case it renders as a
// hyphen.
const softHyphen = 0x00AD

// Hyphenate implements Hyphenator using the Liang pattern weights from
// internal/hyphen, with two overrides the pattern tables don't know
// about: a literal hyphen-minus already in the text is always a break
// point that repeats the hyphen on the next line rather than inserting
// one on this line, and a soft hyphen is always a break point that
// becomes a visible hyphen only if chosen.
func (d *DefaultHyphenator) Hyphenate(word []uint16) []HyphenationClass {
	out := make([]HyphenationClass, len(word)+1)
	weights := d.impl.Weights(utf16Decode(word))
	for i := 1; i < len(word); i++ {
		if hyphen.CanBreakAt(weights, i) {
			out[i] = BreakAndInsertHyphen
		}
	}
	for i, c := range word {
		switch c {
		case '-':
			if i+1 < len(out) {
				out[i+1] = BreakAtExistingHyphen
			}
		case softHyphen:
			out[i] = BreakAndReplaceWithHyphen
		}
	}
	return out
}
