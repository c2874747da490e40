package gotext

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/crossglyph/crossglyph/engine"
	"github.com/crossglyph/crossglyph/internal/otmetrics"
	"github.com/crossglyph/crossglyph/internal/raster"
)

var _ engine.Face = (*Face)(nil)

// Face is one loaded font face.
type Face struct {
	font   *font.Font
	family string
	aspect font.Aspect

	metrics    engine.FaceMetrics
	metricsErr error

	// font.Face carries mutable glyph lookup state and is not safe for
	// concurrent use; per-call instances come from the pool.
	pool sync.Pool
}

// newFace wraps a loaded font. The loader, when available, supplies the
// raw post and OS/2 tables for decoration metrics.
func newFace(ft *font.Font, ld *ot.Loader, family string, aspect font.Aspect) *Face {
	f := &Face{font: ft, family: family, aspect: aspect}
	f.pool.New = func() any { return font.NewFace(ft) }
	f.metrics, f.metricsErr = faceMetrics(ft, ld)
	return f
}

// newResolvedFace wraps a face handed back by fallback resolution. No
// loader is available there, so decoration metrics use approximations.
func newResolvedFace(face *font.Face, family string, aspect font.Aspect) *Face {
	return newFace(face.Font, nil, family, aspect)
}

func (f *Face) acquire() *font.Face { return f.pool.Get().(*font.Face) }
func (f *Face) release(fc *font.Face) { f.pool.Put(fc) }

// FamilyName implements engine.Face.
func (f *Face) FamilyName() string { return f.family }

// FaceName implements engine.Face. go-text does not surface the name
// table's subfamily string, so the name is synthesized from the aspect:
// "Regular", "Bold", "Light Italic".
func (f *Face) FaceName() string { return styleName(f.aspect) }

// Aspect implements engine.Face.
func (f *Face) Aspect() font.Aspect { return f.aspect }

// GlyphIndex implements engine.Face.
func (f *Face) GlyphIndex(r rune) engine.GlyphIndex {
	fc := f.acquire()
	defer f.release(fc)

	gid, ok := fc.NominalGlyph(r)
	if !ok {
		return engine.MissingGlyphIndex
	}
	return engine.GlyphIndex(gid)
}

// Metrics implements engine.Face.
func (f *Face) Metrics() (engine.FaceMetrics, error) {
	return f.metrics, f.metricsErr
}

// GlyphAdvance implements engine.Face.
func (f *Face) GlyphAdvance(gid engine.GlyphIndex) (float64, error) {
	fc := f.acquire()
	defer f.release(fc)

	return float64(fc.HorizontalAdvance(font.GID(gid))), nil
}

// Rasterize implements engine.Face.
func (f *Face) Rasterize(gid engine.GlyphIndex, sizePx float64, spec engine.RenderSpec) (engine.Texture, error) {
	fc := f.acquire()
	defer f.release(fc)

	scale := float32(sizePx) / float32(f.font.Upem())

	var o raster.Outline
	switch data := fc.GlyphData(font.GID(gid)).(type) {
	case font.GlyphOutline:
		// Font units grow upward, pixels downward.
		for _, seg := range data.Segments {
			switch seg.Op {
			case ot.SegmentOpMoveTo:
				o.MoveTo(seg.Args[0].X*scale, -seg.Args[0].Y*scale)
			case ot.SegmentOpLineTo:
				o.LineTo(seg.Args[0].X*scale, -seg.Args[0].Y*scale)
			case ot.SegmentOpQuadTo:
				o.QuadTo(
					seg.Args[0].X*scale, -seg.Args[0].Y*scale,
					seg.Args[1].X*scale, -seg.Args[1].Y*scale,
				)
			case ot.SegmentOpCubeTo:
				o.CubeTo(
					seg.Args[0].X*scale, -seg.Args[0].Y*scale,
					seg.Args[1].X*scale, -seg.Args[1].Y*scale,
					seg.Args[2].X*scale, -seg.Args[2].Y*scale,
				)
			}
		}
	case nil:
		// Glyphs without data render as empty.
	default:
		return engine.Texture{}, fmt.Errorf("gotext: glyph %d: unsupported glyph format %T", gid, data)
	}

	mask := raster.Render(&o, raster.Params{
		Aliased:  spec.Strategy == engine.RenderAliased,
		Subpixel: spec.Layout == engine.Layout3x1,
		// Classic measuring produces whole-pixel compatible shapes, so it
		// snaps like grid fitting.
		GridFit: spec.GridFit || spec.Measuring == engine.MeasuringClassic,
	})

	layout := engine.Layout1x1
	if mask.Channels == 3 {
		layout = engine.Layout3x1
	}
	return engine.Texture{
		Bounds: engine.Bounds{
			Left:   mask.Left,
			Top:    mask.Top,
			Right:  mask.Left + mask.Width,
			Bottom: mask.Top + mask.Height,
		},
		Layout: layout,
		Pix:    mask.Pix,
	}, nil
}

// faceMetrics assembles design-unit metrics. Ascent, descent and line gap
// come from the font's horizontal extents; underline and strikeout come
// from the post and OS/2 tables when a loader is at hand, otherwise from
// the usual proportional approximations.
func faceMetrics(ft *font.Font, ld *ot.Loader) (engine.FaceMetrics, error) {
	extents, ok := font.NewFace(ft).FontHExtents()
	if !ok {
		return engine.FaceMetrics{}, fmt.Errorf("gotext: font has no horizontal extents")
	}

	m := engine.FaceMetrics{
		UnitsPerEm: float64(ft.Upem()),
		Ascent:     float64(extents.Ascender),
		// Descender is negative below the baseline; flip it positive.
		Descent: -float64(extents.Descender),
		LineGap: float64(extents.LineGap),
	}

	havePost, haveOS2 := false, false
	if ld != nil {
		if raw, err := ld.RawTable(ot.MustNewTag("post")); err == nil {
			if post, err := otmetrics.ParsePost(raw); err == nil {
				m.UnderlinePosition = float64(post.UnderlinePosition)
				m.UnderlineThickness = float64(post.UnderlineThickness)
				havePost = true
			}
		}
		if raw, err := ld.RawTable(ot.MustNewTag("OS/2")); err == nil {
			if os2, err := otmetrics.ParseOS2(raw); err == nil {
				m.StrikeoutPosition = float64(os2.StrikeoutPosition)
				m.StrikeoutThickness = float64(os2.StrikeoutSize)
				haveOS2 = true
			}
		}
	}
	if !havePost {
		m.UnderlinePosition = -m.Descent * 0.5
		m.UnderlineThickness = (m.Ascent + m.Descent) * 0.05
	}
	if !haveOS2 {
		m.StrikeoutPosition = m.Ascent * 0.3
		m.StrikeoutThickness = m.UnderlineThickness
	}
	return m, nil
}

// styleName renders an aspect as a subfamily name.
func styleName(a font.Aspect) string {
	weight := a.Weight
	if weight == 0 {
		weight = font.WeightNormal
	}

	var parts []string
	switch {
	case weight <= 150:
		parts = append(parts, "Thin")
	case weight <= 250:
		parts = append(parts, "ExtraLight")
	case weight <= 350:
		parts = append(parts, "Light")
	case weight <= 450:
		// Regular range, no weight word.
	case weight <= 550:
		parts = append(parts, "Medium")
	case weight <= 650:
		parts = append(parts, "SemiBold")
	case weight <= 750:
		parts = append(parts, "Bold")
	case weight <= 850:
		parts = append(parts, "ExtraBold")
	default:
		parts = append(parts, "Black")
	}
	if a.Style == font.StyleItalic {
		parts = append(parts, "Italic")
	}
	if len(parts) == 0 {
		return "Regular"
	}
	return strings.Join(parts, " ")
}
