package crossglyph

import "fmt"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Weight specifies the blackness of a face within a family.
type Weight int

const (
	// WeightNormal is the regular (book) weight.
	WeightNormal Weight = iota
	// WeightBold is the bold weight.
	WeightBold
)

// String returns the string representation of the weight.
func (w Weight) String() string {
	switch w {
	case WeightNormal:
		return "Normal"
	case WeightBold:
		return "Bold"
	default:
		return unknownStr
	}
}

// Slant specifies the slope style of a face within a family.
type Slant int

const (
	// SlantNormal is upright text.
	SlantNormal Slant = iota
	// SlantItalic is cursive-styled slanted text.
	SlantItalic
	// SlantOblique is mechanically slanted text.
	SlantOblique
)

// String returns the string representation of the slant.
func (s Slant) String() string {
	switch s {
	case SlantNormal:
		return "Normal"
	case SlantItalic:
		return "Italic"
	case SlantOblique:
		return "Oblique"
	default:
		return unknownStr
	}
}

// Style selects a face within a family, either by weight and slant or by
// an exact face (sub-family) name such as "Bold Italic".
//
// Style is a comparable value type. Use StyleDescription or StyleSpecific
// to construct one; the zero value equals StyleDescription(WeightNormal,
// SlantNormal).
type Style struct {
	isSpecific bool
	specific   string
	weight     Weight
	slant      Slant
}

// StyleDescription returns a Style selecting the best-matching face for the
// given weight and slant at normal stretch.
func StyleDescription(weight Weight, slant Slant) Style {
	return Style{weight: weight, slant: slant}
}

// StyleSpecific returns a Style selecting the face whose exact face name
// equals faceName. The name is matched literally, so an empty name only
// matches a face named "".
func StyleSpecific(faceName string) Style {
	return Style{isSpecific: true, specific: faceName}
}

// IsSpecific reports whether the style selects a face by exact name.
func (s Style) IsSpecific() bool {
	return s.isSpecific
}

// Specific returns the exact face name, or "" for description styles.
func (s Style) Specific() string {
	return s.specific
}

// Weight returns the requested weight. Meaningful only when !IsSpecific().
func (s Style) Weight() Weight {
	return s.weight
}

// Slant returns the requested slant. Meaningful only when !IsSpecific().
func (s Style) Slant() Slant {
	return s.slant
}

// String returns a human-readable form of the style.
func (s Style) String() string {
	if s.IsSpecific() {
		return s.specific
	}
	return fmt.Sprintf("%v %v", s.weight, s.slant)
}

// FontDesc identifies a font face by family name and style. It is the
// identity key for Rasterizer's font cache: two descriptions compare equal
// exactly when they request the same face.
//
// FontDesc is immutable once constructed and comparable by value.
type FontDesc struct {
	// Name is the font family name, e.g. "Consolas".
	Name string

	// Style selects the face within the family.
	Style Style
}

// NewFontDesc creates a font description for the given family name and style.
func NewFontDesc(name string, style Style) FontDesc {
	return FontDesc{Name: name, Style: style}
}

// String returns a human-readable form of the description.
func (d FontDesc) String() string {
	return fmt.Sprintf("%s - %v", d.Name, d.Style)
}
