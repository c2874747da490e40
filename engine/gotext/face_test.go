package gotext

import (
	"testing"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/crossglyph/crossglyph/engine"
)

// testFace loads the regular Go face through the collection.
func testFace(t *testing.T) engine.Face {
	t.Helper()
	e := newTestEngine(t, goregular.TTF)
	col, err := e.SystemCollection()
	if err != nil {
		t.Fatalf("SystemCollection() error: %v", err)
	}
	fam, ok := col.FamilyByName("Go")
	if !ok {
		t.Fatal("Go family not found")
	}
	face, err := fam.BestMatch(font.Aspect{})
	if err != nil {
		t.Fatalf("BestMatch() error: %v", err)
	}
	return face
}

func TestFace_Identity(t *testing.T) {
	face := testFace(t)

	if got := face.FamilyName(); got != "Go" {
		t.Errorf("FamilyName() = %q, want %q", got, "Go")
	}
	if got := face.FaceName(); got != "Regular" {
		t.Errorf("FaceName() = %q, want %q", got, "Regular")
	}
}

func TestFace_GlyphIndex(t *testing.T) {
	face := testFace(t)

	if gid := face.GlyphIndex('A'); gid == engine.MissingGlyphIndex {
		t.Error("GlyphIndex('A') = missing")
	}
	// U+E835 is private use, which the Go fonts do not cover.
	if gid := face.GlyphIndex(0xE835); gid != engine.MissingGlyphIndex {
		t.Errorf("GlyphIndex(PUA) = %d, want missing", gid)
	}
}

func TestFace_Metrics(t *testing.T) {
	face := testFace(t)

	m, err := face.Metrics()
	if err != nil {
		t.Fatalf("Metrics() error: %v", err)
	}
	if m.UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm = %g, want 2048", m.UnitsPerEm)
	}
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Ascent = %g, Descent = %g, want both positive", m.Ascent, m.Descent)
	}
	if m.UnderlinePosition >= 0 {
		t.Errorf("UnderlinePosition = %g, want negative", m.UnderlinePosition)
	}
	if m.UnderlineThickness <= 0 {
		t.Errorf("UnderlineThickness = %g, want positive", m.UnderlineThickness)
	}
	if m.StrikeoutPosition <= 0 {
		t.Errorf("StrikeoutPosition = %g, want positive", m.StrikeoutPosition)
	}
}

func TestFace_GlyphAdvance(t *testing.T) {
	face := testFace(t)

	adv, err := face.GlyphAdvance(face.GlyphIndex('M'))
	if err != nil {
		t.Fatalf("GlyphAdvance() error: %v", err)
	}
	if adv <= 0 || adv > 2048 {
		t.Errorf("GlyphAdvance('M') = %g, want within (0, 2048]", adv)
	}
}

func TestFace_Rasterize(t *testing.T) {
	face := testFace(t)
	gid := face.GlyphIndex('H')

	tex, err := face.Rasterize(gid, 32, engine.RenderSpec{})
	if err != nil {
		t.Fatalf("Rasterize() error: %v", err)
	}
	if tex.Bounds.Empty() {
		t.Fatal("Rasterize() produced an empty texture for 'H'")
	}
	if tex.Bounds.Top >= 0 {
		t.Errorf("Bounds.Top = %d, want negative (above the baseline)", tex.Bounds.Top)
	}
	if want := tex.Bounds.Width() * tex.Bounds.Height(); len(tex.Pix) != want {
		t.Errorf("len(Pix) = %d, want %d", len(tex.Pix), want)
	}

	full := false
	for _, v := range tex.Pix {
		if v == 0xFF {
			full = true
			break
		}
	}
	if !full {
		t.Error("no fully covered pixel in a solid glyph")
	}
}

func TestFace_RasterizeSubpixel(t *testing.T) {
	face := testFace(t)
	gid := face.GlyphIndex('H')

	tex, err := face.Rasterize(gid, 32, engine.RenderSpec{
		Antialias: engine.AntialiasSubpixel,
		Layout:    engine.Layout3x1,
	})
	if err != nil {
		t.Fatalf("Rasterize() error: %v", err)
	}
	if tex.Layout != engine.Layout3x1 {
		t.Errorf("Layout = %v, want %v", tex.Layout, engine.Layout3x1)
	}
	if want := 3 * tex.Bounds.Width() * tex.Bounds.Height(); len(tex.Pix) != want {
		t.Errorf("len(Pix) = %d, want %d", len(tex.Pix), want)
	}
}

func TestFace_RasterizeAliased(t *testing.T) {
	face := testFace(t)
	gid := face.GlyphIndex('o')

	tex, err := face.Rasterize(gid, 24, engine.RenderSpec{
		Strategy:  engine.RenderAliased,
		Measuring: engine.MeasuringClassic,
	})
	if err != nil {
		t.Fatalf("Rasterize() error: %v", err)
	}
	if tex.Layout != engine.Layout1x1 {
		t.Errorf("Layout = %v, want %v", tex.Layout, engine.Layout1x1)
	}
	for i, v := range tex.Pix {
		if v != 0x00 && v != 0xFF {
			t.Fatalf("Pix[%d] = %#02x, want 0x00 or 0xFF", i, v)
		}
	}
}

func TestFace_RasterizeWhitespace(t *testing.T) {
	face := testFace(t)
	gid := face.GlyphIndex(' ')

	tex, err := face.Rasterize(gid, 32, engine.RenderSpec{})
	if err != nil {
		t.Fatalf("Rasterize() error: %v", err)
	}
	if !tex.Bounds.Empty() {
		t.Errorf("space glyph bounds = %+v, want empty", tex.Bounds)
	}
	if len(tex.Pix) != 0 {
		t.Errorf("len(Pix) = %d, want 0", len(tex.Pix))
	}
}

func TestStyleName(t *testing.T) {
	tests := []struct {
		aspect font.Aspect
		want   string
	}{
		{font.Aspect{}, "Regular"},
		{font.Aspect{Weight: font.WeightNormal}, "Regular"},
		{font.Aspect{Weight: font.WeightBold}, "Bold"},
		{font.Aspect{Weight: font.Weight(300)}, "Light"},
		{font.Aspect{Style: font.StyleItalic}, "Italic"},
		{font.Aspect{Weight: font.WeightBold, Style: font.StyleItalic}, "Bold Italic"},
		{font.Aspect{Weight: font.Weight(900)}, "Black"},
	}
	for _, tt := range tests {
		if got := styleName(tt.aspect); got != tt.want {
			t.Errorf("styleName(%+v) = %q, want %q", tt.aspect, got, tt.want)
		}
	}
}
