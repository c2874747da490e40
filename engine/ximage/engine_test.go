package ximage

import (
	"testing"
	"unicode/utf16"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/crossglyph/crossglyph/engine"
)

func TestEngine_Name(t *testing.T) {
	if got := New().Name(); got != "ximage" {
		t.Fatalf("Name() = %q, want %q", got, "ximage")
	}
}

func TestEngine_BuiltinCollection(t *testing.T) {
	col, err := New().SystemCollection()
	if err != nil {
		t.Fatalf("SystemCollection() error: %v", err)
	}
	for _, name := range []string{"Go", "go", "GO", "Go Mono"} {
		if _, ok := col.FamilyByName(name); !ok {
			t.Errorf("FamilyByName(%q) did not find a builtin family", name)
		}
	}
	if _, ok := col.FamilyByName("No Such Family"); ok {
		t.Error("FamilyByName() found a family that was never registered")
	}
}

func TestEngine_WithoutBuiltins(t *testing.T) {
	eng := New(WithBuiltinFonts(false))
	col, err := eng.SystemCollection()
	if err != nil {
		t.Fatalf("SystemCollection() error: %v", err)
	}
	if _, ok := col.FamilyByName("Go"); ok {
		t.Fatal("engine without builtins still has the Go family")
	}

	if err := eng.AddFont(goregular.TTF); err != nil {
		t.Fatalf("AddFont() error: %v", err)
	}
	if _, ok := col.FamilyByName("Go"); !ok {
		t.Fatal("AddFont() did not extend the live collection")
	}
}

func TestEngine_AddFont_Garbage(t *testing.T) {
	if err := New().AddFont([]byte("not a font")); err == nil {
		t.Fatal("AddFont() accepted garbage data")
	}
}

func TestEngine_AddFontFile_Missing(t *testing.T) {
	if err := New().AddFontFile("/nonexistent/font.ttf"); err == nil {
		t.Fatal("AddFontFile() accepted a missing path")
	}
}

func TestFamily_BestMatch(t *testing.T) {
	col, err := New().SystemCollection()
	if err != nil {
		t.Fatalf("SystemCollection() error: %v", err)
	}
	fam, ok := col.FamilyByName("Go")
	if !ok {
		t.Fatal("Go family not found")
	}

	tests := []struct {
		aspect font.Aspect
		want   string
	}{
		{font.Aspect{}, "Regular"},
		{font.Aspect{Weight: font.WeightBold}, "Bold"},
		{font.Aspect{Style: font.StyleItalic}, "Italic"},
		{font.Aspect{Weight: font.WeightBold, Style: font.StyleItalic}, "Bold Italic"},
	}
	for _, tt := range tests {
		face, err := fam.BestMatch(tt.aspect)
		if err != nil {
			t.Fatalf("BestMatch(%+v) error: %v", tt.aspect, err)
		}
		if got := face.FaceName(); got != tt.want {
			t.Errorf("BestMatch(%+v) = %q, want %q", tt.aspect, got, tt.want)
		}
	}

	faces, err := fam.Faces()
	if err != nil {
		t.Fatalf("Faces() error: %v", err)
	}
	if len(faces) != 4 {
		t.Fatalf("Faces() returned %d faces, want 4", len(faces))
	}
}

func TestFallback_PrefersHintedFamily(t *testing.T) {
	eng := New()
	col, err := eng.SystemCollection()
	if err != nil {
		t.Fatalf("SystemCollection() error: %v", err)
	}
	fb, ok := eng.SystemFallback()
	if !ok {
		t.Fatal("SystemFallback() reported no fallback")
	}

	run := engine.TextRun{
		Text:      utf16.Encode([]rune("A")),
		Locale:    "en-US",
		Direction: engine.DirectionLTR,
	}

	face, ok := fb.MapCharacter(run, col, engine.MatchHints{FamilyName: "Go Mono"})
	if !ok {
		t.Fatal("MapCharacter() found no face for 'A'")
	}
	if got := face.FamilyName(); got != "Go Mono" {
		t.Fatalf("MapCharacter() family = %q, want %q", got, "Go Mono")
	}

	face, ok = fb.MapCharacter(run, col, engine.MatchHints{})
	if !ok {
		t.Fatal("MapCharacter() without hints found no face")
	}
	if got := face.FamilyName(); got != "Go" {
		t.Fatalf("MapCharacter() family = %q, want %q", got, "Go")
	}
	if gid := face.GlyphIndex('A'); gid == engine.MissingGlyphIndex {
		t.Fatal("resolved face does not cover 'A'")
	}
}

func TestFallback_UncoveredRune(t *testing.T) {
	eng := New()
	col, err := eng.SystemCollection()
	if err != nil {
		t.Fatalf("SystemCollection() error: %v", err)
	}
	fb, ok := eng.SystemFallback()
	if !ok {
		t.Fatal("SystemFallback() reported no fallback")
	}

	// Private use code point, not covered by the Go fonts.
	run := engine.TextRun{Text: utf16.Encode([]rune{0xE835}), Direction: engine.DirectionLTR}
	if face, ok := fb.MapCharacter(run, col, engine.MatchHints{}); ok {
		t.Fatalf("MapCharacter() resolved %q for an uncovered rune", face.FamilyName())
	}

	if _, ok := fb.MapCharacter(engine.TextRun{}, col, engine.MatchHints{}); ok {
		t.Fatal("MapCharacter() resolved a face for an empty run")
	}
}
