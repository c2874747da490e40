package ximage

import (
	"fmt"
	"strings"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/crossglyph/crossglyph/engine"
	"github.com/crossglyph/crossglyph/internal/otmetrics"
	"github.com/crossglyph/crossglyph/internal/raster"
)

var _ engine.Face = (*Face)(nil)

// Face is one loaded font face. sfnt.Font is safe for concurrent use as
// long as every call gets its own sfnt.Buffer, so methods allocate one
// on the stack.
type Face struct {
	font      *sfnt.Font
	family    string
	subfamily string
	aspect    font.Aspect
	upem      int

	metrics    engine.FaceMetrics
	metricsErr error
}

// newFace wraps one font of a parsed blob. data and index point back
// into the original bytes for the post and OS/2 table peeks that sfnt
// does not expose.
func newFace(ft *sfnt.Font, data []byte, index int) (*Face, error) {
	var buf sfnt.Buffer

	family, err := ft.Name(&buf, sfnt.NameIDFamily)
	if err != nil || family == "" {
		family, _ = ft.Name(&buf, sfnt.NameIDFull)
	}
	if family == "" {
		return nil, fmt.Errorf("font has no family name")
	}
	subfamily, err := ft.Name(&buf, sfnt.NameIDSubfamily)
	if err != nil || subfamily == "" {
		subfamily = "Regular"
	}

	f := &Face{
		font:      ft,
		family:    family,
		subfamily: subfamily,
		aspect:    faceAspect(data, index, subfamily),
		upem:      int(ft.UnitsPerEm()),
	}
	f.metrics, f.metricsErr = faceMetrics(ft, f.upem, data, index)
	return f, nil
}

// FamilyName implements engine.Face.
func (f *Face) FamilyName() string { return f.family }

// FaceName implements engine.Face. Unlike the gotext engine this is the
// name table's real subfamily string.
func (f *Face) FaceName() string { return f.subfamily }

// Aspect implements engine.Face.
func (f *Face) Aspect() font.Aspect { return f.aspect }

// GlyphIndex implements engine.Face.
func (f *Face) GlyphIndex(r rune) engine.GlyphIndex {
	var buf sfnt.Buffer
	gid, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return engine.MissingGlyphIndex
	}
	return engine.GlyphIndex(gid)
}

// Metrics implements engine.Face.
func (f *Face) Metrics() (engine.FaceMetrics, error) {
	return f.metrics, f.metricsErr
}

// GlyphAdvance implements engine.Face. Querying at ppem == upem with
// hinting off makes the 26.6 values exact design units.
func (f *Face) GlyphAdvance(gid engine.GlyphIndex) (float64, error) {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), fixed.Int26_6(f.upem<<6), xfont.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("ximage: glyph %d advance: %w", gid, err)
	}
	return fixedToFloat64(adv), nil
}

// Rasterize implements engine.Face.
func (f *Face) Rasterize(gid engine.GlyphIndex, sizePx float64, spec engine.RenderSpec) (engine.Texture, error) {
	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), fixed.Int26_6(sizePx*64), nil)
	if err != nil {
		return engine.Texture{}, fmt.Errorf("ximage: load glyph %d: %w", gid, err)
	}

	// Segments are already scaled to the requested size with pixels
	// growing downward.
	var o raster.Outline
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := point(seg.Args[0])
			o.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := point(seg.Args[0])
			o.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := point(seg.Args[0])
			x, y := point(seg.Args[1])
			o.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := point(seg.Args[0])
			c2x, c2y := point(seg.Args[1])
			x, y := point(seg.Args[2])
			o.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
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

func fixedToFloat64(x fixed.Int26_6) float64 { return float64(x) / 64.0 }

func point(p fixed.Point26_6) (float32, float32) {
	return float32(p.X) / 64, float32(p.Y) / 64
}

// faceMetrics assembles design-unit metrics. The vertical metrics come
// from sfnt queried at ppem == upem with hinting off, underline and
// strikeout from the post and OS/2 tables.
func faceMetrics(ft *sfnt.Font, upem int, data []byte, index int) (engine.FaceMetrics, error) {
	var buf sfnt.Buffer
	mm, err := ft.Metrics(&buf, fixed.Int26_6(upem<<6), xfont.HintingNone)
	if err != nil {
		return engine.FaceMetrics{}, fmt.Errorf("ximage: font metrics: %w", err)
	}

	m := engine.FaceMetrics{
		UnitsPerEm: float64(upem),
		Ascent:     fixedToFloat64(mm.Ascent),
		// x/image descent already grows downward.
		Descent: fixedToFloat64(mm.Descent),
		LineGap: fixedToFloat64(mm.Height - mm.Ascent - mm.Descent),
	}

	havePost, haveOS2 := false, false
	if raw, ok := otmetrics.RawTable(data, index, "post"); ok {
		if post, err := otmetrics.ParsePost(raw); err == nil {
			m.UnderlinePosition = float64(post.UnderlinePosition)
			m.UnderlineThickness = float64(post.UnderlineThickness)
			havePost = true
		}
	}
	if raw, ok := otmetrics.RawTable(data, index, "OS/2"); ok {
		if os2, err := otmetrics.ParseOS2(raw); err == nil {
			m.StrikeoutPosition = float64(os2.StrikeoutPosition)
			m.StrikeoutThickness = float64(os2.StrikeoutSize)
			haveOS2 = true
		}
	}
	if !havePost {
		m.UnderlinePosition = -m.Descent * 0.5
		m.UnderlineThickness = (m.Ascent + m.Descent) * 0.05
	}
	if !haveOS2 {
		m.StrikeoutPosition = m.Ascent * 0.3
		m.StrikeoutThickness = (m.Ascent + m.Descent) * 0.05
	}
	return m, nil
}

// widthClassStretch maps the OS/2 usWidthClass values 1..9 to stretch
// ratios.
var widthClassStretch = [9]font.Stretch{
	0.5, 0.625, 0.75, 0.875, 1.0, 1.125, 1.25, 1.5, 2.0,
}

// faceAspect classifies a face by its OS/2 table, falling back to the
// post table and the subfamily name for fonts without one.
func faceAspect(data []byte, index int, subfamily string) font.Aspect {
	aspect := font.Aspect{
		Style:   font.StyleNormal,
		Weight:  font.WeightNormal,
		Stretch: font.StretchNormal,
	}

	if raw, ok := otmetrics.RawTable(data, index, "OS/2"); ok {
		if os2, err := otmetrics.ParseOS2(raw); err == nil {
			switch {
			case os2.WeightClass >= 1 && os2.WeightClass <= 1000:
				aspect.Weight = font.Weight(os2.WeightClass)
			case os2.Bold():
				aspect.Weight = font.WeightBold
			}
			if w := int(os2.WidthClass); w >= 1 && w <= 9 {
				aspect.Stretch = widthClassStretch[w-1]
			}
			if os2.Italic() {
				aspect.Style = font.StyleItalic
			}
			return aspect
		}
	}

	if raw, ok := otmetrics.RawTable(data, index, "post"); ok {
		if post, err := otmetrics.ParsePost(raw); err == nil && post.ItalicAngle != 0 {
			aspect.Style = font.StyleItalic
		}
	}
	name := strings.ToLower(subfamily)
	if strings.Contains(name, "bold") {
		aspect.Weight = font.WeightBold
	}
	if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
		aspect.Style = font.StyleItalic
	}
	return aspect
}
