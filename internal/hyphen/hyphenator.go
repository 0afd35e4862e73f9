package hyphen

import "strings"

// Hyphenator scores hyphenation opportunities in a word using the Liang
// pattern-matching algorithm against one locale's PatternSet.
type Hyphenator struct {
	set *PatternSet
}

// New returns a Hyphenator backed by set.
func New(set *PatternSet) *Hyphenator {
	return &Hyphenator{set: set}
}

// Weights returns one weight per gap between the letters of word
// (len(word)+1 entries, gap i sitting between word[i-1] and word[i]),
// following Liang's convention: an odd weight permits a hyphenation
// point at that gap, an even weight forbids it. Gaps within MinPrefix of
// the start or MinSuffix of the end are zeroed regardless of what the
// patterns say, since breaking a word down to one or two letters rarely
// reads as intentional hyphenation.
func (h *Hyphenator) Weights(word string) []int {
	word = strings.ToLower(word)
	n := len([]rune(word))
	out := make([]int, n+1)
	if n == 0 {
		return out
	}
	extended := "." + word + "."
	runes := []rune(extended)
	for start := 0; start < len(runes); start++ {
		for end := start + 1; end <= len(runes); end++ {
			key := string(runes[start:end])
			raw, ok := h.set.Patterns[key]
			if !ok {
				continue
			}
			ws := weights(raw)
			// Gap k of the pattern corresponds to gap (start+k-1) of
			// word, since `extended` has one leading '.' that word
			// itself doesn't.
			for k, wt := range ws {
				pos := start + k - 1
				if pos < 0 || pos > n {
					continue
				}
				if wt > out[pos] {
					out[pos] = wt
				}
			}
		}
	}
	for i := 0; i < h.set.MinPrefix && i < len(out); i++ {
		out[i] = 0
	}
	for i := n - h.set.MinSuffix + 1; i <= n && i >= 0 && i < len(out); i++ {
		out[i] = 0
	}
	return out
}

// CanBreakAt reports whether Weights permits a break at gap i (odd
// weight).
func CanBreakAt(weights []int, i int) bool {
	return i >= 0 && i < len(weights) && weights[i]%2 == 1
}
