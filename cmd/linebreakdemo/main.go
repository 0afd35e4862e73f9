// Package main provides the CLI entry point for linebreakdemo.
//
// Usage:
//
//	linebreakdemo -font regular.ttf -width 360 input.txt
//	linebreakdemo -font regular.ttf -profile profile.toml -strategy optimal input.txt
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ambermoth/linebreak"
	linebreakfont "github.com/ambermoth/linebreak/font"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`linebreakdemo - break a text file into lines

Usage:
  linebreakdemo -font <face.ttf> [-width pt] [-profile table.toml] [-strategy greedy|optimal|balanced] [-hyphenate none|normal|full] [-justified] [-locale tag] <input.txt>

Options:
  -font       Path to a TTF/OTF font file used to shape and measure the text
  -fontdir    Directory to recursively scan for font files, used instead of
              -font to build a family/weight/style fallback chain
  -family     Font family to request from -fontdir (default: whatever is found)
  -size       Font size in points (default 12)
  -width      Uniform line width in points (default 360); overridden by -profile
  -profile    TOML table-width profile file (see TableLineWidthProfile)
  -strategy   Break strategy: greedy, optimal, or balanced (default greedy)
  -hyphenate  Hyphenation frequency: none, normal, or full (default normal)
  -justified  Mark the paragraph as justified (scales hyphen/raggedness cost)
  -locale     BCP-47 locale tag for word iteration and hyphenation (default en-US)`)
}

// widthProfileFile is the TOML shape -profile reads, mirroring
// TableLineWidthProfile's fields.
type widthProfileFile struct {
	FirstWidth     float64   `toml:"first_width"`
	FirstLineCount int       `toml:"first_line_count"`
	RestWidth      float64   `toml:"rest_width"`
	Indents        []float64 `toml:"indents"`
	Offset         float64   `toml:"offset"`
}

func run(args []string) error {
	fs := flag.NewFlagSet("linebreakdemo", flag.ExitOnError)
	fontPath := fs.String("font", "", "path to a TTF/OTF font file")
	fontDir := fs.String("fontdir", "", "directory to scan for font files (fallback chain)")
	family := fs.String("family", "", "font family to request from -fontdir")
	sizePt := fs.Float64("size", 12, "font size in points")
	width := fs.Float64("width", 360, "uniform line width in points")
	profilePath := fs.String("profile", "", "TOML table-width profile file")
	strategy := fs.String("strategy", "greedy", "break strategy: greedy, optimal, balanced")
	hyphenate := fs.String("hyphenate", "normal", "hyphenation frequency: none, normal, full")
	justified := fs.Bool("justified", false, "mark the paragraph as justified")
	locale := fs.String("locale", "en-US", "BCP-47 locale tag")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}
	if *fontPath == "" && *fontDir == "" {
		return fmt.Errorf("-font or -fontdir is required")
	}

	text, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fonts, err := buildFontCollection(*fontPath, *fontDir, *family, *sizePt)
	if err != nil {
		return err
	}

	widthProfile, err := buildWidthProfile(*width, *profilePath)
	if err != nil {
		return err
	}

	cfg := linebreak.NewConfig(
		linebreak.WithStrategy(parseStrategy(*strategy)),
		linebreak.WithHyphenationFrequency(parseFrequency(*hyphenate)),
		linebreak.WithJustified(*justified),
	)

	buf := linebreak.NewTextBufferFromString(string(text))
	styleRun := linebreak.StyleRun{
		Span:  linebreak.Range{Start: 0, End: buf.Len()},
		Paint: linebreak.Paint{SizePt: float32(*sizePt), Locales: []string{*locale}},
		Fonts: fonts,
	}
	runs := linebreak.NewRunBuilder().AddStyleRun(styleRun).Build()

	engine := linebreak.NewEngine()
	result, err := engine.BreakIntoLines(buf, runs, widthProfile, cfg)
	if err != nil {
		return fmt.Errorf("break into lines: %w", err)
	}

	printResult(string(text), result)
	return nil
}

// buildFontCollection resolves the -font/-fontdir/-family flags into a
// linebreak.FontCollection: a single fixed face for -font (the common
// case for a quick demo run), or a FontBook-backed fallback chain built
// by recursively discovering fonts under -fontdir and selecting among
// them by family and FontStyle, the way the teacher's own FontBook
// resolves a document's declared font stack.
func buildFontCollection(fontPath, fontDir, family string, sizePt float64) (linebreak.FontCollection, error) {
	if fontDir != "" {
		found, err := linebreakfont.DiscoverFonts([]string{fontDir})
		if err != nil {
			return nil, fmt.Errorf("discover fonts under %s: %w", fontDir, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no font files found under %s", fontDir)
		}
		book := linebreakfont.NewFontBook()
		book.Add(found...)
		var families []string
		if family != "" {
			families = []string{family}
		}
		return bookFaceCollection{book: book, families: families, sizePt: sizePt}, nil
	}

	fonts, err := linebreakfont.LoadFromFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	if len(fonts) == 0 {
		return nil, fmt.Errorf("font file %s contains no faces", fontPath)
	}
	return singleFaceCollection{face: demoFace{f: fonts[0], sizePt: sizePt}}, nil
}

func buildWidthProfile(uniform float64, profilePath string) (linebreak.LineWidthProfile, error) {
	if profilePath == "" {
		return linebreak.UniformLineWidth(linebreak.Advance(uniform)), nil
	}
	var pf widthProfileFile
	if _, err := toml.DecodeFile(profilePath, &pf); err != nil {
		return nil, fmt.Errorf("read width profile: %w", err)
	}
	indents := make([]linebreak.Advance, len(pf.Indents))
	for i, v := range pf.Indents {
		indents[i] = linebreak.Advance(v)
	}
	return &linebreak.TableLineWidthProfile{
		FirstWidth:     linebreak.Advance(pf.FirstWidth),
		FirstLineCount: pf.FirstLineCount,
		RestWidth:      linebreak.Advance(pf.RestWidth),
		Indents:        indents,
		Offset:         linebreak.Advance(pf.Offset),
	}, nil
}

func parseStrategy(s string) linebreak.BreakStrategy {
	switch s {
	case "optimal", "high-quality":
		return linebreak.StrategyHighQuality
	case "balanced":
		return linebreak.StrategyBalanced
	default:
		return linebreak.StrategyGreedy
	}
}

func parseFrequency(s string) linebreak.HyphenationFrequency {
	switch s {
	case "full":
		return linebreak.HyphenationFull
	case "none":
		return linebreak.HyphenationNone
	default:
		return linebreak.HyphenationNormal
	}
}

func printResult(text string, result linebreak.BreakResult) {
	utf16 := utf16Encode(text)
	start := 0
	for i, line := range result.Lines {
		end := line.BreakOffset
		fmt.Printf("%3d: %-40q width=%.2f edit=%02x tab=%v\n", i, utf16Decode(utf16[start:end]), line.Width, line.Edit, line.Tab)
		start = end
	}
}
