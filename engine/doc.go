// Package engine defines the text engine capability consumed by crossglyph.
// It abstracts a platform font stack behind small interfaces:
//
//   - Engine: Entry point exposing the system font collection
//   - Collection: Named font families available for loading
//   - Family: A design group resolving aspect requests to faces
//   - Face: One loaded face that indexes, measures and rasterizes glyphs
//   - Fallback: Maps characters missing from a face to a substitute face
//
// # Implementing an engine
//
// Engines translate these contracts onto a concrete font library. Faces
// report design-unit metrics with both Ascent and Descent positive; the
// caller owns sign conventions and pixel scaling. Rasterize renders a
// single glyph in isolation against the RenderSpec parameters and returns
// coverage bytes with baseline-relative bounds.
//
// The Fallback capability is optional. Engines that cannot map characters
// return (nil, false) from SystemFallback and missing glyphs surface to
// the caller unsubstituted.
//
// # Locale
//
// Fallback mapping is locale-sensitive. HostLocale reads the user locale
// from the environment; engines carrying their own locale implement
// LocaleProvider instead and are discovered by type assertion.
package engine
