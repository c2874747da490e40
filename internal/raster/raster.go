// Package raster converts glyph outlines to coverage masks.
//
// Outlines arrive in pixel coordinates with the origin on the baseline and
// Y growing downward. Render fills them with golang.org/x/image/vector and
// returns tightly bounded coverage buffers: one byte per pixel, or three
// for subpixel rendering.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Params controls how an outline is filled.
type Params struct {
	// Aliased thresholds coverage to full on or full off. It takes
	// precedence over Subpixel.
	Aliased bool

	// Subpixel renders three horizontal coverage samples per pixel.
	Subpixel bool

	// GridFit snaps outline points to the pixel grid before filling,
	// approximating classic whole-pixel rendering.
	GridFit bool
}

// channels returns the number of samples per pixel the params produce.
func (p Params) channels() int {
	if p.Subpixel && !p.Aliased {
		return 3
	}
	return 1
}

// Mask is a rasterized coverage buffer.
type Mask struct {
	// Left and Top place the mask in the outline's coordinate space.
	// Coverage above the baseline has a negative Top.
	Left, Top int

	// Width and Height are the mask dimensions in pixels.
	Width, Height int

	// Channels is the number of samples per pixel: 1, or 3 for subpixel.
	Channels int

	// Pix holds Width*Height*Channels coverage bytes in row-major order,
	// 0x00 empty to 0xFF full.
	Pix []byte
}

// Render fills the outline and returns its coverage mask. An empty
// outline yields a zero-area mask, not an error: whitespace glyphs have
// no boundary segments.
func Render(o *Outline, p Params) Mask {
	if o.Empty() {
		return Mask{Channels: p.channels()}
	}
	if p.GridFit {
		o = o.snapped()
	}

	minX, minY, maxX, maxY := o.Bounds()
	left := int(math.Floor(float64(minX)))
	top := int(math.Floor(float64(minY)))
	width := int(math.Ceil(float64(maxX))) - left
	height := int(math.Ceil(float64(maxY))) - top
	if width <= 0 || height <= 0 {
		return Mask{Left: left, Top: top, Channels: p.channels()}
	}

	// Sample the outline shifted into the positive quadrant. Subpixel
	// rendering stretches X threefold so each sample covers one display
	// stripe.
	scaleX := float32(1)
	pixWidth := width
	if p.channels() == 3 {
		scaleX = 3
		pixWidth = 3 * width
	}

	var r vector.Rasterizer
	r.Reset(pixWidth, height)
	r.DrawOp = draw.Src
	replay(&r, o, -float32(left), -float32(top), scaleX)

	alpha := image.NewAlpha(r.Bounds())
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	pix := alpha.Pix
	if p.Aliased {
		for i, v := range pix {
			if v >= 0x80 {
				pix[i] = 0xFF
			} else {
				pix[i] = 0x00
			}
		}
	}

	return Mask{
		Left:     left,
		Top:      top,
		Width:    width,
		Height:   height,
		Channels: p.channels(),
		Pix:      pix,
	}
}

// replay feeds the outline's segments to the rasterizer, translated by
// (dx, dy) and then stretched horizontally by scaleX. Every contour is
// closed explicitly; a closing edge back to an already reached start point
// is a harmless zero-length edge.
func replay(r *vector.Rasterizer, o *Outline, dx, dy, scaleX float32) {
	tx := func(x float32) float32 { return (x + dx) * scaleX }
	ty := func(y float32) float32 { return y + dy }

	open := false
	for _, s := range o.segs {
		switch s.Op {
		case SegmentMoveTo:
			if open {
				r.ClosePath()
				open = false
			}
			r.MoveTo(tx(s.Args[0]), ty(s.Args[1]))
		case SegmentLineTo:
			r.LineTo(tx(s.Args[0]), ty(s.Args[1]))
			open = true
		case SegmentQuadTo:
			r.QuadTo(tx(s.Args[0]), ty(s.Args[1]), tx(s.Args[2]), ty(s.Args[3]))
			open = true
		case SegmentCubeTo:
			r.CubeTo(
				tx(s.Args[0]), ty(s.Args[1]),
				tx(s.Args[2]), ty(s.Args[3]),
				tx(s.Args[4]), ty(s.Args[5]),
			)
			open = true
		}
	}
	if open {
		r.ClosePath()
	}
}
