package otmetrics

import (
	"encoding/binary"
	"testing"
)

func putU16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:], v)
}

func TestParsePost(t *testing.T) {
	data := make([]byte, 32)
	binary.BigEndian.PutUint32(data[4:], 0xFFF40000) // italicAngle -12.0
	putU16(data, 8, uint16(0xFF9C))                                // underlinePosition -100
	putU16(data, 10, 50)                                           // underlineThickness
	binary.BigEndian.PutUint32(data[12:], 1)                       // isFixedPitch

	post, err := ParsePost(data)
	if err != nil {
		t.Fatalf("ParsePost() error: %v", err)
	}
	if post.ItalicAngle != -12 {
		t.Errorf("ItalicAngle = %g, want -12", post.ItalicAngle)
	}
	if post.UnderlinePosition != -100 {
		t.Errorf("UnderlinePosition = %d, want -100", post.UnderlinePosition)
	}
	if post.UnderlineThickness != 50 {
		t.Errorf("UnderlineThickness = %d, want 50", post.UnderlineThickness)
	}
	if !post.IsFixedPitch {
		t.Error("IsFixedPitch = false, want true")
	}
}

func TestParsePost_TooShort(t *testing.T) {
	if _, err := ParsePost(make([]byte, 8)); err == nil {
		t.Error("ParsePost() on a truncated table did not fail")
	}
}

func TestParseOS2(t *testing.T) {
	data := make([]byte, 78)
	putU16(data, 4, 700)             // usWeightClass
	putU16(data, 6, 5)               // usWidthClass
	putU16(data, 26, 55)             // yStrikeoutSize
	putU16(data, 28, 265)            // yStrikeoutPosition
	putU16(data, 62, 1<<5|1<<0)      // fsSelection: bold | italic
	putU16(data, 68, 1900)           // sTypoAscender
	putU16(data, 70, uint16(0xFE0C)) // sTypoDescender -500
	putU16(data, 72, 0)              // sTypoLineGap

	os2, err := ParseOS2(data)
	if err != nil {
		t.Fatalf("ParseOS2() error: %v", err)
	}
	if os2.WeightClass != 700 {
		t.Errorf("WeightClass = %d, want 700", os2.WeightClass)
	}
	if os2.StrikeoutSize != 55 || os2.StrikeoutPosition != 265 {
		t.Errorf("strikeout = %d@%d, want 55@265", os2.StrikeoutSize, os2.StrikeoutPosition)
	}
	if !os2.Bold() || !os2.Italic() {
		t.Errorf("Bold() = %t, Italic() = %t, want both true", os2.Bold(), os2.Italic())
	}
	if os2.TypoAscender != 1900 || os2.TypoDescender != -500 {
		t.Errorf("typo metrics = %d/%d, want 1900/-500", os2.TypoAscender, os2.TypoDescender)
	}
}

func TestParseOS2_TooShort(t *testing.T) {
	if _, err := ParseOS2(make([]byte, 60)); err == nil {
		t.Error("ParseOS2() on a truncated table did not fail")
	}
}
