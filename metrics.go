package crossglyph

// Metrics holds the pixel-space line metrics of one loaded font at one size.
// All values are design-unit metrics scaled by size/unitsPerEm; none of them
// depend on rendering mode or grid fitting.
type Metrics struct {
	// Ascent is the distance from the baseline to the typographic top of
	// the font (positive, above baseline).
	Ascent float64

	// Descent is the distance from the baseline to the typographic bottom
	// of the font. It is negative or zero: below the baseline is negative,
	// matching the sign convention of Ascent.
	Descent float64

	// LineHeight is the recommended vertical distance between consecutive
	// baselines: Ascent - Descent + line gap.
	LineHeight float64

	// AverageAdvance is the horizontal advance of the reference glyph '!'.
	// Faces used with this library are assumed monospace, so one glyph is
	// representative; this is not a true average over all glyphs.
	AverageAdvance float64

	// UnderlinePosition is the distance from the baseline to the top of
	// the underline; typically negative (below the baseline).
	UnderlinePosition float64

	// UnderlineThickness is the recommended underline stroke thickness.
	UnderlineThickness float64

	// StrikeoutPosition is the distance from the baseline to the top of
	// the strikethrough; typically positive (above the baseline).
	StrikeoutPosition float64

	// StrikeoutThickness is the recommended strikethrough stroke thickness.
	StrikeoutThickness float64
}
