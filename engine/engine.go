package engine

import "github.com/go-text/typesetting/font"

// GlyphIndex is a glyph's index within one face's glyph table. It is not a
// Unicode code point.
type GlyphIndex uint32

// MissingGlyphIndex is the reserved glyph index for characters a face has
// no visual representation for (the "notdef" glyph).
// https://docs.microsoft.com/en-us/typography/opentype/spec/recom#glyph-0-the-notdef-glyph
const MissingGlyphIndex GlyphIndex = 0

// Engine is a text engine backend: one concrete implementation per font
// stack. Engines expose the system font collection and, optionally, the
// system fallback mapping. All Engine methods must be safe for concurrent
// use; the per-call state lives in the Rasterizer, not the engine.
type Engine interface {
	// Name returns the engine's registry name, e.g. "gotext".
	Name() string

	// SystemCollection returns the engine's font collection. Engines build
	// the collection lazily and cache it; repeated calls are cheap.
	SystemCollection() (Collection, error)

	// SystemFallback returns the engine's fallback mapping capability.
	// The capability is optional: engines without one return (nil, false)
	// and missing glyphs are reported without substitution.
	SystemFallback() (Fallback, bool)
}

// LocaleProvider is implemented by engines that supply their own user
// locale instead of the host environment's. Discovered by type assertion.
type LocaleProvider interface {
	// CurrentLocale returns the engine's user locale as a BCP-47 tag.
	CurrentLocale() string
}

// Collection enumerates the font families an engine can load faces from.
type Collection interface {
	// FamilyByName looks up a family by name. Matching is case-insensitive
	// on the family name; the second result reports whether the family
	// exists.
	FamilyByName(name string) (Family, bool)
}

// Family is a named group of faces sharing a design, e.g. "Consolas".
type Family interface {
	// Name returns the family name.
	Name() string

	// BestMatch selects the single nearest face for the requested aspect
	// (weight, slant, normal stretch). It fails only when no face of the
	// family can be loaded.
	BestMatch(aspect font.Aspect) (Face, error)

	// Faces loads every face of the family, for exact face-name selection.
	Faces() ([]Face, error)
}

// Face is one loaded, rasterizable font face.
type Face interface {
	// FamilyName returns the face's family name.
	FamilyName() string

	// FaceName returns the face's sub-family name, e.g. "Bold Italic".
	FaceName() string

	// Aspect returns the face's weight, slant and stretch.
	Aspect() font.Aspect

	// GlyphIndex returns the face's glyph index for a character, or
	// MissingGlyphIndex when the character has no glyph in this face.
	GlyphIndex(r rune) GlyphIndex

	// Metrics returns the face's global design-unit metrics. Ascent and
	// Descent are both positive here; sign conventions are applied by the
	// caller.
	Metrics() (FaceMetrics, error)

	// GlyphAdvance returns a glyph's horizontal advance in design units.
	GlyphAdvance(gid GlyphIndex) (float64, error)

	// Rasterize renders one glyph in isolation (zero advance and offset)
	// at the given pixel size, honoring every field of spec. The returned
	// texture's bounds are relative to the rasterization origin on the
	// baseline, Y growing downward.
	Rasterize(gid GlyphIndex, sizePx float64, spec RenderSpec) (Texture, error)
}

// FaceMetrics holds a face's global metrics in design units.
type FaceMetrics struct {
	// UnitsPerEm is the size of the design grid, typically 1000 or 2048.
	UnitsPerEm float64

	// Ascent is the distance from the baseline to the typographic top,
	// positive above the baseline.
	Ascent float64

	// Descent is the distance from the baseline to the typographic bottom,
	// positive below the baseline.
	Descent float64

	// LineGap is the recommended extra spacing between lines.
	LineGap float64

	// UnderlinePosition is the distance from the baseline to the top of
	// the underline, typically negative (below the baseline).
	UnderlinePosition float64

	// UnderlineThickness is the recommended underline thickness.
	UnderlineThickness float64

	// StrikeoutPosition is the distance from the baseline to the top of
	// the strikethrough, typically positive.
	StrikeoutPosition float64

	// StrikeoutThickness is the recommended strikethrough thickness.
	StrikeoutThickness float64
}

// Direction is the reading direction of a text run.
type Direction int

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text.
	DirectionRTL
	// DirectionTTB is top-to-bottom text.
	DirectionTTB
	// DirectionBTT is bottom-to-top text.
	DirectionBTT
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionTTB:
		return "TTB"
	case DirectionBTT:
		return "BTT"
	default:
		return "Unknown"
	}
}

// TextRun is the single-character analysis run handed to the fallback
// mapping capability.
type TextRun struct {
	// Text is the character encoded as UTF-16 code units: one unit for
	// BMP characters, a surrogate pair beyond.
	Text []uint16

	// Locale is the user locale as a BCP-47 tag, e.g. "en-US".
	Locale string

	// Direction is the reading direction. Fallback runs are always LTR.
	Direction Direction
}

// MatchHints carries the primary font's identity into fallback mapping so
// the substitute face stays visually consistent with it.
type MatchHints struct {
	// FamilyName is the primary font's family, preferred for continuation.
	FamilyName string

	// Aspect is the primary font's weight, slant and stretch.
	Aspect font.Aspect
}

// Fallback maps characters missing from a primary face to a substitute
// face from the collection.
type Fallback interface {
	// MapCharacter maps the run's character to a substitute face. The
	// second result is false when the system has no mapping; a returned
	// face may still lack the character, which downstream rasterization
	// reports as missing.
	MapCharacter(run TextRun, collection Collection, hints MatchHints) (Face, bool)
}
