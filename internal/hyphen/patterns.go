package hyphen

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PatternSet is a locale's hyphenation pattern table: each entry maps a
// pattern like "hy3phen" (letters interleaved with digit weights, `.`
// marking a word boundary in the source form) to the substring of letters
// it matches. Patterns are looked up by their letter-only key; letterKey
// drops the `.` anchors, so an anchored pattern matches its letters
// anywhere in a word, not only at the word's edge.
type PatternSet struct {
	Locale   string
	Patterns map[string]string // letters-only key -> original "h1y2phen" form
	MinPrefix int
	MinSuffix int
}

// patternFile is the on-disk YAML shape loaded for each locale.
type patternFile struct {
	Locale    string   `yaml:"locale"`
	MinPrefix int      `yaml:"min_prefix"`
	MinSuffix int      `yaml:"min_suffix"`
	Patterns  []string `yaml:"patterns"`
}

// LoadPatternSet parses a YAML pattern fixture of the form:
//
//	locale: en-us
//	min_prefix: 2
//	min_suffix: 3
//	patterns:
//	  - "h1y2phen"
//	  - ".hy3ph"
func LoadPatternSet(data []byte) (*PatternSet, error) {
	var f patternFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("hyphen: parse pattern fixture: %w", err)
	}
	ps := &PatternSet{
		Locale:    f.Locale,
		Patterns:  make(map[string]string, len(f.Patterns)),
		MinPrefix: f.MinPrefix,
		MinSuffix: f.MinSuffix,
	}
	if ps.MinPrefix <= 0 {
		ps.MinPrefix = 2
	}
	if ps.MinSuffix <= 0 {
		ps.MinSuffix = 2
	}
	for _, p := range f.Patterns {
		ps.Patterns[letterKey(p)] = p
	}
	return ps, nil
}

// letterKey strips the digit weights and leading/trailing '.' anchors
// from a raw pattern, leaving only the letters it matches against.
func letterKey(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), ".")
}

// weights returns the digit-weight sequence of a raw pattern, one entry
// per gap between the letters (and before the first / after the last),
// defaulting to 0 where no digit was written.
func weights(pattern string) []int {
	w := make([]int, 0, len(pattern)+1)
	pending := 0
	havePending := false
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			pending = pending*10 + int(r-'0')
			havePending = true
			continue
		}
		if r == '.' {
			continue
		}
		w = append(w, pending)
		pending = 0
		havePending = false
	}
	if havePending {
		w = append(w, pending)
	} else {
		w = append(w, 0)
	}
	return w
}
