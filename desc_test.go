package crossglyph

import "testing"

func TestWeight_String(t *testing.T) {
	tests := []struct {
		w    Weight
		want string
	}{
		{WeightNormal, "Normal"},
		{WeightBold, "Bold"},
		{Weight(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("Weight(%d).String() = %q, want %q", int(tt.w), got, tt.want)
		}
	}
}

func TestSlant_String(t *testing.T) {
	tests := []struct {
		s    Slant
		want string
	}{
		{SlantNormal, "Normal"},
		{SlantItalic, "Italic"},
		{SlantOblique, "Oblique"},
		{Slant(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Slant(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestStyle_Description(t *testing.T) {
	s := StyleDescription(WeightBold, SlantItalic)
	if s.IsSpecific() {
		t.Error("description style reports IsSpecific()")
	}
	if s.Weight() != WeightBold || s.Slant() != SlantItalic {
		t.Errorf("style = %v/%v, want Bold/Italic", s.Weight(), s.Slant())
	}
	if got, want := s.String(), "Bold Italic"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStyle_Specific(t *testing.T) {
	s := StyleSpecific("Retina")
	if !s.IsSpecific() {
		t.Error("specific style reports !IsSpecific()")
	}
	if got := s.Specific(); got != "Retina" {
		t.Errorf("Specific() = %q, want %q", got, "Retina")
	}
	if got := s.String(); got != "Retina" {
		t.Errorf("String() = %q, want %q", got, "Retina")
	}
}

func TestStyle_SpecificEmptyName(t *testing.T) {
	// An empty face name is still a literal name search, not a
	// description style.
	s := StyleSpecific("")
	if !s.IsSpecific() {
		t.Error("StyleSpecific(\"\") reports !IsSpecific()")
	}
	if got := s.Specific(); got != "" {
		t.Errorf("Specific() = %q, want %q", got, "")
	}
	if s == StyleDescription(WeightNormal, SlantNormal) {
		t.Error("StyleSpecific(\"\") equals the normal description")
	}
}

func TestStyle_ZeroValue(t *testing.T) {
	var zero Style
	if zero != StyleDescription(WeightNormal, SlantNormal) {
		t.Error("zero Style does not equal the normal description")
	}
}

func TestFontDesc_Identity(t *testing.T) {
	a := NewFontDesc("Consolas", StyleDescription(WeightBold, SlantNormal))
	b := NewFontDesc("Consolas", StyleDescription(WeightBold, SlantNormal))
	c := NewFontDesc("Consolas", StyleSpecific("Bold"))

	if a != b {
		t.Error("equal descriptions compare unequal")
	}
	if a == c {
		t.Error("description and specific styles compare equal")
	}

	// Descriptions are usable as map keys.
	m := map[FontDesc]int{a: 1}
	m[b]++
	m[c]++
	if m[a] != 2 || m[c] != 1 {
		t.Errorf("map collapse = %v, want a/b shared and c separate", m)
	}
}

func TestFontDesc_String(t *testing.T) {
	d := NewFontDesc("Consolas", StyleDescription(WeightBold, SlantItalic))
	if got, want := d.String(), "Consolas - Bold Italic"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
