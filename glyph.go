package crossglyph

// PixelFormat describes the per-pixel layout of a BitmapBuffer.
type PixelFormat int

const (
	// PixelRGB is 3 bytes per pixel. Produced for every rendering mode:
	// grayscale coverage is expanded to three identical channels, subpixel
	// rendering fills the channels with the R, G and B subpixel coverages.
	PixelRGB PixelFormat = iota

	// PixelRGBA is 4 bytes per pixel. Reserved for engines that emit
	// colored glyphs; this core never produces it.
	PixelRGBA
)

// String returns the string representation of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case PixelRGB:
		return "RGB"
	case PixelRGBA:
		return "RGBA"
	default:
		return unknownStr
	}
}

// BytesPerPixel returns the number of bytes one pixel occupies.
func (f PixelFormat) BytesPerPixel() int {
	if f == PixelRGBA {
		return 4
	}
	return 3
}

// BitmapBuffer holds the pixels of a rasterized glyph.
type BitmapBuffer struct {
	// Format describes the layout of Pix.
	Format PixelFormat

	// Pix holds width*height pixels in row-major order,
	// Format.BytesPerPixel() bytes each.
	Pix []byte
}

// RasterizedGlyph is one glyph rendered into a pixel buffer, positioned
// relative to the rasterization origin on the baseline.
type RasterizedGlyph struct {
	// Character is the Unicode scalar value this glyph was requested for.
	Character rune

	// Width and Height are the buffer dimensions in pixels. Both are >= 0;
	// a glyph with no visible ink (such as a space) has a zero-area buffer.
	Width  int
	Height int

	// Top is the distance from the rasterization origin to the top edge of
	// the buffer, growing upward: a glyph sitting entirely above the
	// baseline has Top >= Height.
	Top int

	// Left is the distance from the rasterization origin to the left edge
	// of the buffer.
	Left int

	// AdvanceX and AdvanceY are always zero at this layer; advance metrics
	// come from Rasterizer.Metrics, not from per-glyph rasterization.
	AdvanceX int
	AdvanceY int

	// Buffer holds the glyph pixels.
	Buffer BitmapBuffer
}
