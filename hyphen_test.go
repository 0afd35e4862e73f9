package linebreak

import "testing"

func TestNewDefaultHyphenatorUnknownLocale(t *testing.T) {
	if _, ok := NewDefaultHyphenator("xx-XX"); ok {
		t.Error("expected no default hyphenator for an unregistered locale")
	}
}

func TestNewDefaultHyphenatorKnownLocale(t *testing.T) {
	h, ok := NewDefaultHyphenator("en-US")
	if !ok {
		t.Fatal("expected a built-in default hyphenator for en-US")
	}
	if h.Locale() != "en-US" {
		t.Errorf("Locale() = %q, want %q", h.Locale(), "en-US")
	}
}

func TestHyphenateExistingHyphenIsBreakAtExistingHyphen(t *testing.T) {
	h, ok := NewDefaultHyphenator("en-US")
	if !ok {
		t.Fatal("expected a built-in default hyphenator for en-US")
	}
	word := utf16Encode("well-known")
	classes := h.Hyphenate(word)
	hyphenIdx := -1
	for i, c := range word {
		if c == '-' {
			hyphenIdx = i
		}
	}
	if hyphenIdx < 0 {
		t.Fatal("test fixture must contain a literal hyphen")
	}
	if got := classes[hyphenIdx+1]; got != BreakAtExistingHyphen {
		t.Errorf("classes[%d] = %v, want BreakAtExistingHyphen", hyphenIdx+1, got)
	}
}

func TestHyphenateSoftHyphenIsBreakAndReplaceWithHyphen(t *testing.T) {
	h, ok := NewDefaultHyphenator("en-US")
	if !ok {
		t.Fatal("expected a built-in default hyphenator for en-US")
	}
	word := append(utf16Encode("soft"), softHyphen)
	word = append(word, utf16Encode("break")...)
	classes := h.Hyphenate(word)
	softIdx := len(utf16Encode("soft"))
	if got := classes[softIdx]; got != BreakAndReplaceWithHyphen {
		t.Errorf("classes[%d] = %v, want BreakAndReplaceWithHyphen", softIdx, got)
	}
}

func TestHyphenateBoundariesAlwaysDontBreak(t *testing.T) {
	h, ok := NewDefaultHyphenator("en-US")
	if !ok {
		t.Fatal("expected a built-in default hyphenator for en-US")
	}
	word := utf16Encode("hyphenation")
	classes := h.Hyphenate(word)
	if len(classes) != len(word)+1 {
		t.Fatalf("len(classes) = %d, want %d", len(classes), len(word)+1)
	}
	if classes[0] != DontBreak {
		t.Errorf("classes[0] = %v, want DontBreak", classes[0])
	}
	if classes[len(classes)-1] != DontBreak {
		t.Errorf("classes[last] = %v, want DontBreak", classes[len(classes)-1])
	}
}

func TestRegisterHyphenationPatternsAddsLocale(t *testing.T) {
	const custom = `
locale: zz-ZZ
min_prefix: 1
min_suffix: 1
patterns:
  - "a1b"
`
	if err := RegisterHyphenationPatterns("zz-ZZ", []byte(custom)); err != nil {
		t.Fatalf("RegisterHyphenationPatterns: %v", err)
	}
	h, ok := NewDefaultHyphenator("zz-ZZ")
	if !ok {
		t.Fatal("expected the just-registered locale to be available")
	}
	classes := h.Hyphenate(utf16Encode("ab"))
	if classes[1] != BreakAndInsertHyphen {
		t.Errorf("classes[1] = %v, want BreakAndInsertHyphen", classes[1])
	}
}
