package crossglyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the crossglyph package.
var (
	// ErrUnknownFontKey is returned when a FontKey was not issued by the
	// Rasterizer it is used with. This indicates a caller bug, such as
	// mixing keys across Rasterizer instances; it is not user-recoverable.
	ErrUnknownFontKey = errors.New("crossglyph: unknown font key")

	// ErrMetricsNotFound is returned when the face cannot supply design
	// metrics for the glyph sampled for horizontal metrics.
	ErrMetricsNotFound = errors.New("crossglyph: font metrics not found")
)

// errZeroUnitsPerEm guards the metrics scale division against faces
// reporting a degenerate em square.
var errZeroUnitsPerEm = errors.New("font reports zero units per em")

// FontNotFoundError is returned by LoadFont when the requested family does
// not exist in the engine's collection or no face matches the style.
type FontNotFoundError struct {
	// Desc is the description that failed to resolve.
	Desc FontDesc
}

func (e *FontNotFoundError) Error() string {
	return fmt.Sprintf("crossglyph: font not found: %v", e.Desc)
}

// MissingGlyphError signals that no visual exists for a character even
// after fallback resolution. It is not a hard failure: Glyph carries a
// valid (possibly empty) placeholder rasterization so rendering can proceed
// with a visible substitute.
//
// Callers distinguish it with errors.As:
//
//	glyph, err := r.GetGlyph(key)
//	var missing *crossglyph.MissingGlyphError
//	if errors.As(err, &missing) {
//	    glyph = missing.Glyph // usable placeholder
//	}
type MissingGlyphError struct {
	// Glyph is the rasterized placeholder for the missing character.
	Glyph RasterizedGlyph
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("crossglyph: missing glyph for %q", e.Glyph.Character)
}

// PlatformError wraps a failure reported by the text engine capability.
// It is the single conversion point between engine-native failures and this
// package's error taxonomy; the root cause is environmental, so retrying
// with identical inputs would reproduce the same failure.
type PlatformError struct {
	// Engine is the name of the engine that failed.
	Engine string

	// Op is the operation that failed, e.g. "rasterize".
	Op string

	// Err is the underlying engine error.
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("crossglyph: %s engine: %s: %v", e.Engine, e.Op, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *PlatformError) Unwrap() error {
	return e.Err
}
