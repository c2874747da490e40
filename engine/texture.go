package engine

// Bounds is a texture's pixel rectangle relative to the rasterization
// origin on the baseline. Y grows downward, so a glyph above the baseline
// has a negative Top.
type Bounds struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the width of the rectangle in pixels.
func (b Bounds) Width() int {
	return b.Right - b.Left
}

// Height returns the height of the rectangle in pixels.
func (b Bounds) Height() int {
	return b.Bottom - b.Top
}

// Empty reports whether the rectangle covers no pixels.
func (b Bounds) Empty() bool {
	return b.Right <= b.Left || b.Bottom <= b.Top
}

// Texture is one rasterized glyph: coverage samples in row-major order.
type Texture struct {
	// Bounds is the texture's placement relative to the origin.
	Bounds Bounds

	// Layout is the sample geometry. Layout1x1 textures hold one byte per
	// pixel, Layout3x1 three.
	Layout TextureLayout

	// Pix holds Bounds.Width()*Bounds.Height()*Layout.Channels() coverage
	// bytes, 0x00 empty to 0xFF full.
	Pix []byte
}
