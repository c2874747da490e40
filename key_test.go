package crossglyph

import "testing"

func TestNewSize_Quantization(t *testing.T) {
	tests := []struct {
		px   float64
		want float64
	}{
		{12, 12},
		{12.24, 12},
		{12.25, 12.5},
		{12.3, 12.5},
		{12.75, 13},
		{0, 0},
		{-5, 0},
		{1e6, 32767.5},
	}
	for _, tt := range tests {
		if got := NewSize(tt.px).Px(); got != tt.want {
			t.Errorf("NewSize(%v).Px() = %v, want %v", tt.px, got, tt.want)
		}
	}
}

func TestSize_Identity(t *testing.T) {
	if NewSize(12.3) != NewSize(12.4) {
		t.Error("sizes quantizing to the same half pixel compare unequal")
	}
	if NewSize(12) == NewSize(12.5) {
		t.Error("distinct half-pixel sizes compare equal")
	}
}

func TestSize_String(t *testing.T) {
	if got, want := NewSize(16).String(), "16px"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := NewSize(12.5).String(), "12.5px"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNextFontKey_Unique(t *testing.T) {
	seen := make(map[FontKey]bool)
	for i := 0; i < 100; i++ {
		k := nextFontKey()
		if k == (FontKey{}) {
			t.Fatal("nextFontKey() issued the zero key")
		}
		if seen[k] {
			t.Fatalf("nextFontKey() repeated %v", k)
		}
		seen[k] = true
	}
}

func TestGlyphKey_Identity(t *testing.T) {
	k := nextFontKey()
	a := GlyphKey{FontKey: k, Character: 'A', Size: NewSize(16)}
	b := GlyphKey{FontKey: k, Character: 'A', Size: NewSize(16)}
	if a != b {
		t.Error("equal glyph keys compare unequal")
	}

	m := map[GlyphKey]int{a: 1}
	m[b]++
	m[GlyphKey{FontKey: k, Character: 'A', Size: NewSize(17)}]++
	m[GlyphKey{FontKey: k, Character: 'B', Size: NewSize(16)}]++
	if len(m) != 3 || m[a] != 2 {
		t.Errorf("map collapse = %v, want shared entry for equal keys", m)
	}
}
