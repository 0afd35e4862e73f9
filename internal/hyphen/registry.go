package hyphen

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed patterns_en_us.yaml patterns_pl.yaml
var builtinPatterns embed.FS

// builtinLocales maps a locale tag to its embedded pattern fixture file.
// Registry.Get parses a fixture once, on the first lookup of its locale;
// nothing is parsed ahead of that lookup.
var builtinLocales = map[string]string{
	"en":    "patterns_en_us.yaml",
	"en-us": "patterns_en_us.yaml",
	"pl":    "patterns_pl.yaml",
	"pl-pl": "patterns_pl.yaml",
}

// Registry caches parsed PatternSets by locale tag, loading each one at
// most once.
type Registry struct {
	mu   sync.RWMutex
	sets map[string]*PatternSet
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]*PatternSet)}
}

// Get returns the Hyphenator for locale, loading and caching its pattern
// set on first use. It returns (nil, false) if no pattern fixture is
// registered for the locale, rather than an error: callers are expected
// to treat this as "hyphenation unavailable for this run" and continue
// without it.
func (r *Registry) Get(locale string) (*Hyphenator, bool) {
	locale = strings.ToLower(locale)
	r.mu.RLock()
	set, ok := r.sets[locale]
	r.mu.RUnlock()
	if ok {
		return New(set), true
	}

	filename, known := builtinLocales[locale]
	if !known {
		return nil, false
	}
	data, err := builtinPatterns.ReadFile(filename)
	if err != nil {
		return nil, false
	}
	loaded, err := LoadPatternSet(data)
	if err != nil {
		return nil, false
	}

	r.mu.Lock()
	r.sets[locale] = loaded
	r.mu.Unlock()
	return New(loaded), true
}

// Register installs an explicit pattern set for a locale, overriding any
// builtin fixture, for callers supplying their own hyphenation
// dictionaries.
func (r *Registry) Register(locale string, set *PatternSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[strings.ToLower(locale)] = set
}

// MustLoad parses data as a pattern fixture and panics on error; intended
// for package-init-time registration of caller-supplied dictionaries.
func MustLoad(data []byte) *PatternSet {
	set, err := LoadPatternSet(data)
	if err != nil {
		panic(fmt.Sprintf("hyphen: %v", err))
	}
	return set
}
