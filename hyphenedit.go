package linebreak

// HyphenationClass is the hyphenator's per-position classification of a
// candidate break inside a word.
type HyphenationClass uint8

const (
	// DontBreak marks a position the hyphenator forbids breaking at (or
	// a natural word-end candidate, which always carries this class).
	DontBreak HyphenationClass = iota
	// BreakAndInsertHyphen marks a position where breaking requires
	// inserting a visible hyphen glyph that is not present in the text.
	BreakAndInsertHyphen
	// BreakAndDontInsertHyphen marks a desperate mid-word break that
	// inserts no hyphen (used when no better candidate fits).
	BreakAndDontInsertHyphen
	// BreakAndReplaceWithHyphen marks a position holding a soft hyphen
	// (U+00AD) that must be replaced by a visible hyphen glyph if the
	// line breaks there.
	BreakAndReplaceWithHyphen
	// BreakAtExistingHyphen marks a break immediately after a literal
	// hyphen-minus already present in the text (as in compound words).
	// No hyphen is inserted on this line, but the continuation repeats
	// the hyphen at the start of the next line, per the typographic
	// convention some locales (e.g. Polish) apply to compound words.
	BreakAtExistingHyphen
)

// StartHyphenEdit describes the hyphen edit applied to the beginning of a
// line (the continuation of a word broken on the previous line).
type StartHyphenEdit uint8

const (
	StartNoEdit StartHyphenEdit = iota
	StartInsertHyphen
	StartReplaceWithHyphen
)

// EndHyphenEdit describes the hyphen edit applied to the end of a line
// (the break point itself).
type EndHyphenEdit uint8

const (
	EndNoEdit EndHyphenEdit = iota
	EndInsertHyphen
	EndReplaceWithHyphen
)

// HyphenEdit packs a StartHyphenEdit and an EndHyphenEdit into a single
// byte: the start edit occupies the high nibble, the end edit the low
// nibble, following the packing Minikin uses for the per-line flags word
// (see TabBit, below, for the other bits of that word).
type HyphenEdit uint8

// PackHyphenEdit combines a start and end edit into one value.
func PackHyphenEdit(start StartHyphenEdit, end EndHyphenEdit) HyphenEdit {
	return HyphenEdit(uint8(start)<<4 | uint8(end))
}

// Start returns the start-hyphen-edit component.
func (h HyphenEdit) Start() StartHyphenEdit {
	return StartHyphenEdit(h >> 4)
}

// End returns the end-hyphen-edit component.
func (h HyphenEdit) End() EndHyphenEdit {
	return EndHyphenEdit(h & 0x0F)
}

// editForThisLine returns the end-of-line edit a break at a candidate of
// the given hyphenation class requires.
func editForThisLine(class HyphenationClass) EndHyphenEdit {
	switch class {
	case BreakAndInsertHyphen:
		return EndInsertHyphen
	case BreakAndReplaceWithHyphen:
		return EndReplaceWithHyphen
	default:
		return EndNoEdit
	}
}

// editForNextLine returns the start-of-next-line edit a break at a
// candidate of the given hyphenation class requires.
func editForNextLine(class HyphenationClass) StartHyphenEdit {
	switch class {
	case BreakAtExistingHyphen:
		return StartInsertHyphen
	default:
		return StartNoEdit
	}
}

// TabBit is the flag bit set in a BreakResult line's Flags when the line
// contains a tab character. It is
// kept at the same bit position Minikin's StaticLayout.java TAB_MASK
// uses so callers porting tables from that system need no translation.
const TabBit = 1 << 29
