package crossglyph

// RenderingMode selects the antialiasing strategy applied by GetGlyph.
// It is a per-rasterizer setting: changing it affects every subsequent
// rasterization uniformly, never a single glyph.
type RenderingMode int

const (
	// RenderingGrayscale renders antialiased glyphs with one coverage
	// value per pixel, expanded to RGB. The default.
	RenderingGrayscale RenderingMode = iota

	// RenderingAliased renders hard-edged glyphs without antialiasing,
	// using classic (legacy) measuring.
	RenderingAliased

	// RenderingSubpixel renders ClearType-style glyphs with independent
	// R, G and B subpixel coverages.
	RenderingSubpixel
)

// String returns the string representation of the rendering mode.
func (m RenderingMode) String() string {
	switch m {
	case RenderingGrayscale:
		return "Grayscale"
	case RenderingAliased:
		return "Aliased"
	case RenderingSubpixel:
		return "Subpixel"
	default:
		return unknownStr
	}
}
