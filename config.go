package linebreak

// BreakStrategy selects which breaker BreakIntoLines uses.
type BreakStrategy int

const (
	// StrategyGreedy always takes the longest line that fits; it is the
	// fastest strategy and the only one safe to run on every keystroke
	// of an editor.
	StrategyGreedy BreakStrategy = iota
	// StrategyHighQuality runs the full optimal (Knuth-Plass style)
	// breaker: a global dynamic program that can look back past a
	// locally-good break to find a better paragraph-wide one.
	StrategyHighQuality
	// StrategyBalanced also runs the optimal breaker; it differs from
	// StrategyHighQuality only in scoring the paragraph's last line like
	// any other line, which evens out the lengths of the last lines.
	StrategyBalanced
)

// HyphenationFrequency controls how eagerly the hyphenator is consulted.
type HyphenationFrequency int

const (
	// HyphenationNone disables automatic hyphenation entirely.
	HyphenationNone HyphenationFrequency = iota
	// HyphenationNormal hyphenates at a moderate rate (the common case).
	HyphenationNormal
	// HyphenationFull hyphenates as aggressively as the pattern data
	// allows.
	HyphenationFull
)

// Config holds the per-paragraph parameters to BreakIntoLines. It is
// built with functional options, following FileWorldOption in
// kit/world.go, rather than a config-file format: these are programmatic
// per-call knobs, not deployment configuration.
type Config struct {
	strategy   BreakStrategy
	frequency  HyphenationFrequency
	justified  bool
	tabStops   TabStops
	hyphenator Hyphenator
	wordIter   wordIteratorFactory
}

// Option configures a Config.
type Option func(*Config)

// NewConfig builds a Config, applying opts in order over sane defaults
// (greedy strategy, normal hyphenation frequency, unjustified, no tab
// stops).
func NewConfig(opts ...Option) *Config {
	c := &Config{
		strategy:  StrategyGreedy,
		frequency: HyphenationNormal,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithStrategy sets the break strategy.
func WithStrategy(s BreakStrategy) Option {
	return func(c *Config) { c.strategy = s }
}

// WithHyphenationFrequency sets how eagerly the hyphenator is consulted.
func WithHyphenationFrequency(f HyphenationFrequency) Option {
	return func(c *Config) { c.frequency = f }
}

// WithJustified marks the paragraph as justified, which scales the
// hyphenation penalty down (see SPEC_FULL.md/spec.md §4.6) since
// justification can absorb some of the raggedness a hyphen would
// otherwise be needed to avoid.
func WithJustified(justified bool) Option {
	return func(c *Config) { c.justified = justified }
}

// WithTabStops installs the tab-stop table used when the paragraph text
// contains tab characters.
func WithTabStops(stops TabStops) Option {
	return func(c *Config) { c.tabStops = stops }
}

// WithHyphenator stores h in the Config. Candidate building does not
// read it: interior hyphenation candidates come from the hyphenator in a
// StyleRun's Hyphenators whose locale matches the run's first locale,
// falling back to the default locale-pattern-table hyphenator
// (internal/hyphen).
func WithHyphenator(h Hyphenator) Option {
	return func(c *Config) { c.hyphenator = h }
}

// wordIteratorFactory is the injectable test seam mirroring
// LineBreakerImpl's protected constructor that takes a WordBreaker "For
// testing purposes." Production callers never set this; unit tests use
// withWordIterator (unexported, package-internal) to script exact
// word-break sequences without depending on real Unicode data tables.
type wordIteratorFactory func(locale string) wordIterator

func withWordIterator(f wordIteratorFactory) Option {
	return func(c *Config) { c.wordIter = f }
}
