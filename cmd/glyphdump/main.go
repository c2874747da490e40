// Command glyphdump loads a font, prints its line metrics and renders
// glyphs as terminal art. It is a smoke-test harness for the crossglyph
// rasterization pipeline.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/crossglyph/crossglyph"
	"github.com/crossglyph/crossglyph/engine/ximage"
)

func main() {
	var (
		family   = flag.String("family", "Go", "font family name")
		faceName = flag.String("face", "", "exact face name, overriding -bold and -italic")
		bold     = flag.Bool("bold", false, "request the bold weight")
		italic   = flag.Bool("italic", false, "request an italic slant")
		fontFile = flag.String("font", "", "font file to load in addition to the built-in fonts")
		engine   = flag.String("engine", "", `engine name; default "ximage" (embedded fonts), "gotext" scans system fonts`)
		size     = flag.Float64("size", 24, "pixel size")
		mode     = flag.String("mode", "grayscale", "rendering mode: aliased, grayscale or subpixel")
		gridFit  = flag.Bool("gridfit", false, "snap outlines to the pixel grid")
		text     = flag.String("text", "Ag!", "characters to render")
		verbose  = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		crossglyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	renderMode, err := parseMode(*mode)
	if err != nil {
		log.Fatalf("glyphdump: %v", err)
	}

	opts := []crossglyph.Option{
		crossglyph.WithRenderingMode(renderMode),
		crossglyph.WithGridFitting(*gridFit),
	}
	switch {
	case *fontFile != "":
		eng := ximage.New()
		if err := eng.AddFontFile(*fontFile); err != nil {
			log.Fatalf("glyphdump: %v", err)
		}
		opts = append(opts, crossglyph.WithEngine(eng))
	case *engine != "":
		opts = append(opts, crossglyph.WithEngineName(*engine))
	default:
		opts = append(opts, crossglyph.WithEngineName("ximage"))
	}

	r, err := crossglyph.New(opts...)
	if err != nil {
		log.Fatalf("glyphdump: %v", err)
	}

	style := crossglyph.StyleDescription(weightFlag(*bold), slantFlag(*italic))
	if *faceName != "" {
		style = crossglyph.StyleSpecific(*faceName)
	}
	desc := crossglyph.NewFontDesc(*family, style)
	px := crossglyph.NewSize(*size)

	key, err := r.LoadFont(desc, px)
	if err != nil {
		log.Fatalf("glyphdump: load %v: %v", desc, err)
	}

	m, err := r.Metrics(key, px)
	if err != nil {
		log.Fatalf("glyphdump: metrics: %v", err)
	}
	fmt.Printf("%v at %v\n", desc, px)
	fmt.Printf("  ascent %.2f  descent %.2f  line height %.2f\n", m.Ascent, m.Descent, m.LineHeight)
	fmt.Printf("  average advance %.2f  underline %.2f/%.2f  strikeout %.2f/%.2f\n",
		m.AverageAdvance,
		m.UnderlinePosition, m.UnderlineThickness,
		m.StrikeoutPosition, m.StrikeoutThickness)

	for _, c := range *text {
		dumpGlyph(r, crossglyph.GlyphKey{FontKey: key, Character: c, Size: px})
	}
}

func parseMode(s string) (crossglyph.RenderingMode, error) {
	switch s {
	case "aliased":
		return crossglyph.RenderingAliased, nil
	case "grayscale":
		return crossglyph.RenderingGrayscale, nil
	case "subpixel":
		return crossglyph.RenderingSubpixel, nil
	default:
		return 0, fmt.Errorf("unknown rendering mode %q", s)
	}
}

func weightFlag(bold bool) crossglyph.Weight {
	if bold {
		return crossglyph.WeightBold
	}
	return crossglyph.WeightNormal
}

func slantFlag(italic bool) crossglyph.Slant {
	if italic {
		return crossglyph.SlantItalic
	}
	return crossglyph.SlantNormal
}

// coverageRamp maps coverage to glyph art, darkest last.
const coverageRamp = " .:-=+*#%@"

func dumpGlyph(r *crossglyph.Rasterizer, key crossglyph.GlyphKey) {
	glyph, err := r.GetGlyph(key)
	note := ""
	if err != nil {
		var missing *crossglyph.MissingGlyphError
		if !errors.As(err, &missing) {
			log.Fatalf("glyphdump: glyph %q: %v", key.Character, err)
		}
		glyph = missing.Glyph
		note = "  (missing, notdef shown)"
	}

	fmt.Printf("\n%q  %dx%d  top %d left %d%s\n",
		glyph.Character, glyph.Width, glyph.Height, glyph.Top, glyph.Left, note)
	for y := 0; y < glyph.Height; y++ {
		row := make([]byte, glyph.Width)
		for x := 0; x < glyph.Width; x++ {
			i := (y*glyph.Width + x) * 3
			// Average the channels so subpixel output stays printable.
			sum := int(glyph.Buffer.Pix[i]) + int(glyph.Buffer.Pix[i+1]) + int(glyph.Buffer.Pix[i+2])
			row[x] = coverageRamp[(sum/3)*(len(coverageRamp)-1)/255]
		}
		fmt.Printf("  |%s|\n", row)
	}
}
