// Package crossglyph rasterizes single glyphs for terminal-style text
// renderers.
//
// # Overview
//
// crossglyph is a font cache and glyph rasterization core. It resolves
// font descriptions to concrete faces, computes pixel-space line metrics,
// renders one glyph at a time into tight pixel buffers and consults the
// engine's system fallback for characters the selected face does not
// cover. It does no shaping and no layout: callers place glyphs on a
// character grid using the metrics this package reports.
//
// # Quick Start
//
//	import "github.com/crossglyph/crossglyph"
//
//	r, err := crossglyph.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	desc := crossglyph.NewFontDesc("monospace",
//	    crossglyph.StyleDescription(crossglyph.WeightNormal, crossglyph.SlantNormal))
//	size := crossglyph.NewSize(14)
//
//	key, err := r.LoadFont(desc, size)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m, _ := r.Metrics(key, size)
//	glyph, err := r.GetGlyph(crossglyph.GlyphKey{
//	    FontKey:   key,
//	    Character: 'A',
//	    Size:      size,
//	})
//
// # Architecture
//
// The package is organized into:
//   - Public API: Rasterizer, FontDesc, FontKey, GlyphKey, Metrics,
//     RasterizedGlyph
//   - engine: the capability interface between the core and a font system
//   - engine/gotext: system font discovery via go-text/typesetting
//   - engine/ximage: embedded Go fonts and explicit font files via
//     golang.org/x/image
//
// Engines are selected by registry name (see RegisterEngine) or injected
// directly with WithEngine.
//
// # Fallback and Missing Glyphs
//
// When the loaded face lacks a character, GetGlyph asks the engine's
// system fallback for a substitute face once per call; substitutes are
// never cached. If no face covers the character, the notdef placeholder
// is rasterized and returned inside a MissingGlyphError, which callers
// unwrap with errors.As to keep rendering.
//
// # Rendering Modes
//
// GetGlyph output is controlled per rasterizer: RenderingGrayscale
// (default), RenderingAliased and RenderingSubpixel, plus optional grid
// fitting. Every mode produces the same buffer format, 3 bytes RGB per
// pixel, so glyph atlases need a single upload path.
//
// # Logging
//
// crossglyph is silent by default. SetLogger installs a log/slog logger
// shared by the core and every opened engine.
package crossglyph

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
