package engine

// RenderStrategy selects the outline treatment used during rasterization.
type RenderStrategy int

const (
	// RenderNaturalSymmetric renders outlines at their natural shape with
	// antialiasing in both axes.
	RenderNaturalSymmetric RenderStrategy = iota

	// RenderAliased renders hard-edged monochrome coverage.
	RenderAliased
)

// String returns the string representation of the strategy.
func (s RenderStrategy) String() string {
	switch s {
	case RenderNaturalSymmetric:
		return "NaturalSymmetric"
	case RenderAliased:
		return "Aliased"
	default:
		return "Unknown"
	}
}

// MeasuringMode selects how glyph dimensions are measured.
type MeasuringMode int

const (
	// MeasuringNatural measures glyphs at their resolution-independent
	// ideal widths.
	MeasuringNatural MeasuringMode = iota

	// MeasuringClassic measures glyphs with whole-pixel compatible
	// rounding.
	MeasuringClassic
)

// String returns the string representation of the measuring mode.
func (m MeasuringMode) String() string {
	switch m {
	case MeasuringNatural:
		return "Natural"
	case MeasuringClassic:
		return "Classic"
	default:
		return "Unknown"
	}
}

// AntialiasMode selects the coverage model of an antialiased render.
type AntialiasMode int

const (
	// AntialiasGrayscale produces one coverage sample per pixel.
	AntialiasGrayscale AntialiasMode = iota

	// AntialiasSubpixel produces three horizontal coverage samples per
	// pixel, one per display stripe.
	AntialiasSubpixel
)

// String returns the string representation of the antialias mode.
func (a AntialiasMode) String() string {
	switch a {
	case AntialiasGrayscale:
		return "Grayscale"
	case AntialiasSubpixel:
		return "Subpixel"
	default:
		return "Unknown"
	}
}

// TextureLayout is the sample geometry of a rasterized texture.
type TextureLayout int

const (
	// Layout1x1 stores one sample per pixel.
	Layout1x1 TextureLayout = iota

	// Layout3x1 stores three horizontal samples per pixel.
	Layout3x1
)

// String returns the string representation of the layout.
func (l TextureLayout) String() string {
	switch l {
	case Layout1x1:
		return "1x1"
	case Layout3x1:
		return "3x1"
	default:
		return "Unknown"
	}
}

// Channels returns the number of coverage samples per pixel.
func (l TextureLayout) Channels() int {
	if l == Layout3x1 {
		return 3
	}
	return 1
}

// RenderSpec bundles every parameter a face needs to rasterize one glyph.
// The zero value renders natural symmetric grayscale without grid fitting.
type RenderSpec struct {
	// Strategy is the outline treatment.
	Strategy RenderStrategy

	// Measuring is the measuring mode.
	Measuring MeasuringMode

	// Antialias is the coverage model. It is ignored when Strategy is
	// RenderAliased.
	Antialias AntialiasMode

	// Layout is the texture layout to produce. Layout3x1 requires
	// AntialiasSubpixel.
	Layout TextureLayout

	// GridFit snaps outline control points to the pixel grid before
	// rasterization.
	GridFit bool
}

// String returns a compact description of the render parameters.
func (s RenderSpec) String() string {
	str := s.Strategy.String()
	if s.Strategy != RenderAliased {
		str += "/" + s.Antialias.String()
	}
	str += "/" + s.Measuring.String() + "/" + s.Layout.String()
	if s.GridFit {
		str += "/gridfit"
	}
	return str
}
