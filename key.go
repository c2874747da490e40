package crossglyph

import (
	"fmt"
	"sync/atomic"
)

// fontKeyCounter issues process-unique font keys. Being process-wide rather
// than per-rasterizer guarantees that keys from different Rasterizer
// instances never collide, so passing a foreign key to a cache is always
// detected as ErrUnknownFontKey instead of silently resolving a wrong font.
var fontKeyCounter atomic.Uint32

// FontKey is an opaque identifier for a loaded font face. Keys are issued
// when a description is first resolved, increase monotonically, and are
// never reused for the lifetime of the process.
type FontKey struct {
	token uint32
}

// nextFontKey returns a fresh, never-before-issued font key.
func nextFontKey() FontKey {
	return FontKey{token: fontKeyCounter.Add(1)}
}

// String returns a short diagnostic form of the key.
func (k FontKey) String() string {
	return fmt.Sprintf("FontKey(%d)", k.token)
}

// GlyphKey identifies a single glyph instance: one character of one loaded
// font at one size. External glyph-atlas callers use it as their cache key;
// the Rasterizer itself caches faces only, never rasterized glyphs.
type GlyphKey struct {
	// FontKey names the loaded font.
	FontKey FontKey

	// Character is the Unicode scalar value to rasterize.
	Character rune

	// Size is the pixel size to rasterize at.
	Size Size
}

// sizeFactor is the scale between Size's stored integer and pixels.
// Sizes are quantized to half-pixel steps so Size stays comparable and
// hashable while retaining sub-pixel size selection.
const sizeFactor = 2

// Size is a font pixel size, stored quantized to half-pixel steps.
//
// Size is a comparable value type suitable for map keys; convert with
// NewSize and read back with Px.
type Size struct {
	half uint16
}

// NewSize creates a Size from a pixel value. The value is clamped to the
// representable range and quantized to the nearest half pixel.
func NewSize(px float64) Size {
	if px < 0 {
		px = 0
	}
	q := px*sizeFactor + 0.5
	if q > 65535 {
		q = 65535
	}
	return Size{half: uint16(q)}
}

// Px returns the size in pixels.
func (s Size) Px() float64 {
	return float64(s.half) / sizeFactor
}

// String returns the size formatted in pixels.
func (s Size) String() string {
	return fmt.Sprintf("%gpx", s.Px())
}
