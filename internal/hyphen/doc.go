// Package hyphen implements locale-pattern-table hyphenation: the
// classic Liang pattern-matching algorithm (the technique every TeX-style
// hyphenation dictionary, including Android's, is built on) driven by
// per-locale pattern tables loaded from YAML fixtures with
// gopkg.in/yaml.v3.
//
// It is deliberately independent of the public linebreak.HyphenationClass
// enum: this package returns raw per-gap weights (the Liang convention:
// odd weight means a hyphenation point is permitted at that gap) with the
// MinPrefix/MinSuffix exclusion already applied by Hyphenator.Weights, and
// the root package's hyphen.go converts those weights into
// HyphenationClass values, applying the existing/soft-hyphen rules. Keeping the conversion in the root package avoids this package
// importing it back.
package hyphen
