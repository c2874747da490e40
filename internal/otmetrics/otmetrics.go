// Package otmetrics reads line decoration and style fields from raw
// OpenType tables.
//
// Font libraries expose glyph outlines and the core vertical metrics, but
// not every underline, strikeout and style class field of the post and
// OS/2 tables. This package peeks at the raw table bytes instead, which
// every OpenType loader can hand over.
package otmetrics

import (
	"encoding/binary"
	"fmt"
)

// Post holds the underline fields of a post table, in font units.
type Post struct {
	// ItalicAngle is the caret slope in degrees, counter-clockwise from
	// vertical. Zero for upright fonts.
	ItalicAngle float64

	// UnderlinePosition is the distance from the baseline to the top of
	// the underline, typically negative (below the baseline).
	UnderlinePosition int16

	// UnderlineThickness is the suggested underline thickness.
	UnderlineThickness int16

	// IsFixedPitch reports a monospaced design.
	IsFixedPitch bool
}

// ParsePost reads the fixed header of a post table.
func ParsePost(data []byte) (Post, error) {
	if len(data) < 16 {
		return Post{}, fmt.Errorf("otmetrics: post table too short: %d bytes", len(data))
	}
	return Post{
		ItalicAngle:        float64(int32(binary.BigEndian.Uint32(data[4:8]))) / 65536.0,
		UnderlinePosition:  int16(binary.BigEndian.Uint16(data[8:10])),
		UnderlineThickness: int16(binary.BigEndian.Uint16(data[10:12])),
		IsFixedPitch:       binary.BigEndian.Uint32(data[12:16]) != 0,
	}, nil
}

// fsSelection flag bits.
const (
	selectionItalic = 1 << 0
	selectionBold   = 1 << 5
)

// OS2 holds the style and strikeout fields of an OS/2 table, in font
// units.
type OS2 struct {
	// WeightClass is the usWeightClass value, 100 thin to 900 black.
	WeightClass uint16

	// WidthClass is the usWidthClass value, 1 ultra-condensed to 9
	// ultra-expanded.
	WidthClass uint16

	// StrikeoutSize is the suggested strikethrough thickness.
	StrikeoutSize int16

	// StrikeoutPosition is the distance from the baseline to the top of
	// the strikethrough, typically positive.
	StrikeoutPosition int16

	// Selection is the raw fsSelection bit field.
	Selection uint16

	// TypoAscender, TypoDescender and TypoLineGap are the typographic
	// vertical metrics. TypoDescender is typically negative.
	TypoAscender  int16
	TypoDescender int16
	TypoLineGap   int16
}

// Italic reports whether fsSelection marks the font italic or oblique.
func (o OS2) Italic() bool { return o.Selection&selectionItalic != 0 }

// Bold reports whether fsSelection marks the font bold.
func (o OS2) Bold() bool { return o.Selection&selectionBold != 0 }

// ParseOS2 reads the version 0 fields of an OS/2 table.
func ParseOS2(data []byte) (OS2, error) {
	if len(data) < 78 {
		return OS2{}, fmt.Errorf("otmetrics: OS/2 table too short: %d bytes", len(data))
	}
	return OS2{
		WeightClass:       binary.BigEndian.Uint16(data[4:6]),
		WidthClass:        binary.BigEndian.Uint16(data[6:8]),
		StrikeoutSize:     int16(binary.BigEndian.Uint16(data[26:28])),
		StrikeoutPosition: int16(binary.BigEndian.Uint16(data[28:30])),
		Selection:         binary.BigEndian.Uint16(data[62:64]),
		TypoAscender:      int16(binary.BigEndian.Uint16(data[68:70])),
		TypoDescender:     int16(binary.BigEndian.Uint16(data[70:72])),
		TypoLineGap:       int16(binary.BigEndian.Uint16(data[72:74])),
	}, nil
}
