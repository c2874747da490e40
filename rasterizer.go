package crossglyph

import (
	"unicode/utf16"

	"github.com/go-text/typesetting/font"

	"github.com/crossglyph/crossglyph/engine"
)

// averageAdvanceReference is the glyph sampled for Metrics.AverageAdvance.
// Faces used with this library are assumed monospace, so one representative
// glyph stands in for all of them.
const averageAdvanceReference = '!'

// loadedFont pairs a resolved face with the identity the fallback
// resolver needs as matching hints.
type loadedFont struct {
	face   engine.Face
	family string
	aspect font.Aspect
}

// Rasterizer resolves font descriptions to concrete faces, computes
// pixel-space line metrics, and renders single glyphs into pixel buffers.
//
// A Rasterizer caches resolved faces for its lifetime: one FontKey per
// distinct description, never evicted. Rasterized glyphs are not cached;
// glyph-atlas callers key their own cache with GlyphKey.
//
// A Rasterizer is not safe for concurrent use. Callers needing parallel
// rasterization own one instance per goroutine or serialize externally.
// Rasterizer must not be copied after creation.
type Rasterizer struct {
	// addr is used for copy protection. It must point to the Rasterizer
	// itself.
	addr *Rasterizer

	eng        engine.Engine
	collection engine.Collection

	keys  map[FontDesc]FontKey
	fonts map[FontKey]*loadedFont

	mode        RenderingMode
	gridFitting bool
}

// New creates a Rasterizer backed by the configured engine. Without
// options it uses the default registry engine, grayscale rendering and
// no grid fitting.
func New(opts ...Option) (*Rasterizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	eng := cfg.engine
	if eng == nil {
		var err error
		eng, err = openEngine(cfg.engineName)
		if err != nil {
			return nil, err
		}
	} else {
		trackEngine(eng)
	}

	r := &Rasterizer{
		eng:         eng,
		keys:        make(map[FontDesc]FontKey),
		fonts:       make(map[FontKey]*loadedFont),
		mode:        cfg.mode,
		gridFitting: cfg.gridFitting,
	}
	r.addr = r
	return r, nil
}

func (r *Rasterizer) copyCheck() {
	if r == nil {
		panic("crossglyph: use of nil Rasterizer: check the error from New")
	}
	if r.addr != r {
		panic("crossglyph: Rasterizer must not be copied by value")
	}
}

// SetRenderingMode switches the antialiasing strategy for every
// subsequent GetGlyph call.
func (r *Rasterizer) SetRenderingMode(mode RenderingMode) {
	r.copyCheck()
	r.mode = mode
}

// SetGridFitting toggles outline snapping to the pixel grid for every
// subsequent GetGlyph call.
func (r *Rasterizer) SetGridFitting(enabled bool) {
	r.copyCheck()
	r.gridFitting = enabled
}

// LoadFont resolves a description to a concrete face and returns its key.
// Repeated calls with an equal description return the same key without
// consulting the engine again. The size parameter does not contribute to
// identity; faces are size independent and rasterization is parameterized
// by size separately.
func (r *Rasterizer) LoadFont(desc FontDesc, size Size) (FontKey, error) {
	r.copyCheck()
	if key, ok := r.keys[desc]; ok {
		return key, nil
	}

	lf, err := r.matchFont(desc)
	if err != nil {
		return FontKey{}, err
	}
	key := nextFontKey()
	r.keys[desc] = key
	r.fonts[key] = lf
	Logger().Debug("crossglyph: loaded font",
		"desc", desc.String(), "key", key.String(), "face", lf.face.FaceName())
	return key, nil
}

// matchFont resolves a description against the engine's collection.
func (r *Rasterizer) matchFont(desc FontDesc) (*loadedFont, error) {
	col, err := r.systemCollection()
	if err != nil {
		return nil, err
	}
	fam, ok := col.FamilyByName(desc.Name)
	if !ok {
		return nil, &FontNotFoundError{Desc: desc}
	}

	var face engine.Face
	if desc.Style.IsSpecific() {
		faces, err := fam.Faces()
		if err != nil {
			return nil, &PlatformError{Engine: r.eng.Name(), Op: "enumerate faces", Err: err}
		}
		for _, f := range faces {
			if f.FaceName() == desc.Style.Specific() {
				face = f
				break
			}
		}
		if face == nil {
			return nil, &FontNotFoundError{Desc: desc}
		}
	} else {
		face, err = fam.BestMatch(styleAspect(desc.Style))
		if err != nil {
			return nil, &FontNotFoundError{Desc: desc}
		}
	}
	return &loadedFont{face: face, family: face.FamilyName(), aspect: face.Aspect()}, nil
}

// styleAspect translates a description style into the engine's aspect
// vocabulary. Oblique maps to italic; the engines do not distinguish them.
func styleAspect(s Style) font.Aspect {
	aspect := font.Aspect{
		Style:   font.StyleNormal,
		Weight:  font.WeightNormal,
		Stretch: font.StretchNormal,
	}
	if s.Weight() == WeightBold {
		aspect.Weight = font.WeightBold
	}
	if s.Slant() != SlantNormal {
		aspect.Style = font.StyleItalic
	}
	return aspect
}

// Metrics computes the pixel-space line metrics of a loaded font at a
// size. It is a pure function of (face, size): design-unit metrics scaled
// by size/unitsPerEm, with no caching and no dependence on the rendering
// mode.
func (r *Rasterizer) Metrics(key FontKey, size Size) (Metrics, error) {
	r.copyCheck()
	lf, err := r.getLoadedFont(key)
	if err != nil {
		return Metrics{}, err
	}

	fm, err := lf.face.Metrics()
	if err != nil {
		return Metrics{}, &PlatformError{Engine: r.eng.Name(), Op: "font metrics", Err: err}
	}
	if fm.UnitsPerEm <= 0 {
		return Metrics{}, &PlatformError{Engine: r.eng.Name(), Op: "font metrics", Err: errZeroUnitsPerEm}
	}
	scale := size.Px() / fm.UnitsPerEm

	// A face without the reference glyph resolves to the notdef glyph,
	// whose advance stands in.
	gid := lf.face.GlyphIndex(averageAdvanceReference)
	advance, err := lf.face.GlyphAdvance(gid)
	if err != nil {
		return Metrics{}, ErrMetricsNotFound
	}

	ascent := fm.Ascent * scale
	// The engine reports descent growing downward; flip it so below the
	// baseline is negative, matching ascent's sign convention.
	descent := -(fm.Descent * scale)
	lineGap := fm.LineGap * scale

	m := Metrics{
		Ascent:             ascent,
		Descent:            descent,
		LineHeight:         ascent - descent + lineGap,
		AverageAdvance:     advance * scale,
		UnderlinePosition:  fm.UnderlinePosition * scale,
		UnderlineThickness: fm.UnderlineThickness * scale,
		StrikeoutPosition:  fm.StrikeoutPosition * scale,
		StrikeoutThickness: fm.StrikeoutThickness * scale,
	}
	Logger().Debug("crossglyph: computed metrics",
		"key", key.String(), "size", size.String(),
		"line_height", m.LineHeight, "average_advance", m.AverageAdvance)
	return m, nil
}

// GetGlyph rasterizes one character of one loaded font at one size.
//
// When the primary face lacks the character, the engine's system fallback
// is consulted exactly once for a substitute face; the substitute is used
// for this call only and never cached. If no face has the character the
// notdef glyph is rasterized and returned inside a MissingGlyphError, a
// non-hard outcome callers unwrap with errors.As:
//
//	glyph, err := r.GetGlyph(key)
//	var missing *crossglyph.MissingGlyphError
//	if errors.As(err, &missing) {
//	    glyph = missing.Glyph
//	}
func (r *Rasterizer) GetGlyph(key GlyphKey) (RasterizedGlyph, error) {
	r.copyCheck()
	lf, err := r.getLoadedFont(key.FontKey)
	if err != nil {
		return RasterizedGlyph{}, err
	}

	face := lf.face
	gid := face.GlyphIndex(key.Character)
	if gid == engine.MissingGlyphIndex {
		if fb, ok := r.fallbackFace(lf, key.Character); ok {
			face = fb
			gid = fb.GlyphIndex(key.Character)
		}
	}

	glyph, err := r.rasterize(face, gid, key)
	if err != nil {
		return RasterizedGlyph{}, err
	}
	if gid == engine.MissingGlyphIndex {
		return RasterizedGlyph{}, &MissingGlyphError{Glyph: glyph}
	}
	return glyph, nil
}

// Kerning returns the additional advance between two glyphs. This
// implementation applies no kerning and always returns (0, 0); advances
// come from Metrics.
func (r *Rasterizer) Kerning(left, right GlyphKey) (float64, float64) {
	r.copyCheck()
	return 0, 0
}

// fallbackFace consults the engine's system fallback for a character the
// primary face does not cover.
func (r *Rasterizer) fallbackFace(lf *loadedFont, c rune) (engine.Face, bool) {
	fb, ok := r.eng.SystemFallback()
	if !ok {
		Logger().Debug("crossglyph: engine has no system fallback", "engine", r.eng.Name())
		return nil, false
	}
	col, err := r.systemCollection()
	if err != nil {
		Logger().Debug("crossglyph: system collection unavailable for fallback",
			"engine", r.eng.Name(), "err", err)
		return nil, false
	}

	run := engine.TextRun{
		Text:      utf16.Encode([]rune{c}),
		Locale:    r.locale(),
		Direction: engine.DirectionLTR,
	}
	hints := engine.MatchHints{FamilyName: lf.family, Aspect: lf.aspect}
	face, ok := fb.MapCharacter(run, col, hints)
	if !ok {
		return nil, false
	}
	Logger().Debug("crossglyph: fallback resolved",
		"char", string(c), "family", face.FamilyName())
	return face, true
}

// locale returns the engine's locale when it provides one, otherwise the
// host environment locale.
func (r *Rasterizer) locale() string {
	if lp, ok := r.eng.(engine.LocaleProvider); ok {
		return lp.CurrentLocale()
	}
	return engine.HostLocale()
}

// rasterize renders one glyph index and shapes the texture into the
// uniform RGB buffer format.
func (r *Rasterizer) rasterize(face engine.Face, gid engine.GlyphIndex, key GlyphKey) (RasterizedGlyph, error) {
	tex, err := face.Rasterize(gid, key.Size.Px(), r.renderSpec())
	if err != nil {
		Logger().Info("crossglyph: glyph analysis failed",
			"char", string(key.Character), "err", err)
		return RasterizedGlyph{}, &PlatformError{Engine: r.eng.Name(), Op: "rasterize", Err: err}
	}
	return newRasterizedGlyph(key.Character, tex), nil
}

// renderSpec maps the rendering mode to the engine parameter triple.
func (r *Rasterizer) renderSpec() engine.RenderSpec {
	spec := engine.RenderSpec{GridFit: r.gridFitting}
	switch r.mode {
	case RenderingAliased:
		spec.Strategy = engine.RenderAliased
		spec.Measuring = engine.MeasuringClassic
		spec.Antialias = engine.AntialiasGrayscale
		spec.Layout = engine.Layout1x1
	case RenderingSubpixel:
		spec.Strategy = engine.RenderNaturalSymmetric
		spec.Measuring = engine.MeasuringNatural
		spec.Antialias = engine.AntialiasSubpixel
		spec.Layout = engine.Layout3x1
	default:
		spec.Strategy = engine.RenderNaturalSymmetric
		spec.Measuring = engine.MeasuringNatural
		spec.Antialias = engine.AntialiasGrayscale
		spec.Layout = engine.Layout1x1
	}
	return spec
}

// newRasterizedGlyph converts an engine texture into a RasterizedGlyph,
// expanding single-channel coverage into three identical channels so every
// mode yields the same RGB buffer format.
func newRasterizedGlyph(c rune, tex engine.Texture) RasterizedGlyph {
	var pix []byte
	if tex.Layout == engine.Layout3x1 {
		pix = tex.Pix
	} else {
		pix = make([]byte, 0, len(tex.Pix)*3)
		for _, a := range tex.Pix {
			pix = append(pix, a, a, a)
		}
	}
	return RasterizedGlyph{
		Character: c,
		Width:     tex.Bounds.Width(),
		Height:    tex.Bounds.Height(),
		// Engine bounds grow downward; Top is reported as distance above
		// the origin.
		Top:    -tex.Bounds.Top,
		Left:   tex.Bounds.Left,
		Buffer: BitmapBuffer{Format: PixelRGB, Pix: pix},
	}
}

// systemCollection fetches the engine's collection on first use.
func (r *Rasterizer) systemCollection() (engine.Collection, error) {
	if r.collection != nil {
		return r.collection, nil
	}
	col, err := r.eng.SystemCollection()
	if err != nil {
		return nil, &PlatformError{Engine: r.eng.Name(), Op: "system collection", Err: err}
	}
	r.collection = col
	return col, nil
}

// getLoadedFont resolves a key to its cache entry. A miss means the key
// came from a different Rasterizer instance, which is a caller bug.
func (r *Rasterizer) getLoadedFont(key FontKey) (*loadedFont, error) {
	lf, ok := r.fonts[key]
	if !ok {
		return nil, ErrUnknownFontKey
	}
	return lf, nil
}
