package raster

import "testing"

// rect appends an axis-aligned rectangle contour to the outline.
func rect(o *Outline, x0, y0, x1, y1 float32) {
	o.MoveTo(x0, y0)
	o.LineTo(x1, y0)
	o.LineTo(x1, y1)
	o.LineTo(x0, y1)
	o.LineTo(x0, y0)
}

func TestRender_RectangleCoverage(t *testing.T) {
	var o Outline
	rect(&o, 1, -3, 5, 1)

	m := Render(&o, Params{})

	if m.Left != 1 || m.Top != -3 {
		t.Errorf("placement = (%d, %d), want (1, -3)", m.Left, m.Top)
	}
	if m.Width != 4 || m.Height != 4 {
		t.Errorf("size = %dx%d, want 4x4", m.Width, m.Height)
	}
	if m.Channels != 1 {
		t.Errorf("Channels = %d, want 1", m.Channels)
	}
	if len(m.Pix) != 16 {
		t.Fatalf("len(Pix) = %d, want 16", len(m.Pix))
	}
	for i, v := range m.Pix {
		if v != 0xFF {
			t.Fatalf("Pix[%d] = %#02x, want 0xFF", i, v)
		}
	}
}

func TestRender_EmptyOutline(t *testing.T) {
	var o Outline

	m := Render(&o, Params{})
	if m.Width != 0 || m.Height != 0 || len(m.Pix) != 0 {
		t.Errorf("empty outline produced %dx%d mask with %d bytes", m.Width, m.Height, len(m.Pix))
	}
	if m.Channels != 1 {
		t.Errorf("Channels = %d, want 1", m.Channels)
	}

	m = Render(&o, Params{Subpixel: true})
	if m.Channels != 3 {
		t.Errorf("subpixel Channels = %d, want 3", m.Channels)
	}

	// A lone MoveTo draws nothing.
	o.MoveTo(2, 2)
	m = Render(&o, Params{})
	if m.Width != 0 || m.Height != 0 {
		t.Errorf("MoveTo-only outline produced %dx%d mask", m.Width, m.Height)
	}
}

func TestRender_SubpixelTriplesSamples(t *testing.T) {
	var o Outline
	rect(&o, 0, 0, 4, 2)

	gray := Render(&o, Params{})
	sub := Render(&o, Params{Subpixel: true})

	if sub.Width != gray.Width || sub.Height != gray.Height {
		t.Errorf("subpixel size = %dx%d, grayscale %dx%d",
			sub.Width, sub.Height, gray.Width, gray.Height)
	}
	if sub.Channels != 3 {
		t.Fatalf("Channels = %d, want 3", sub.Channels)
	}
	if want := 3 * len(gray.Pix); len(sub.Pix) != want {
		t.Fatalf("len(Pix) = %d, want %d", len(sub.Pix), want)
	}

	// On a pixel-aligned shape every stripe sample matches the single
	// grayscale sample of its pixel.
	for i, v := range gray.Pix {
		for s := 0; s < 3; s++ {
			if got := sub.Pix[3*i+s]; got != v {
				t.Fatalf("subpixel sample %d of pixel %d = %#02x, want %#02x", s, i, got, v)
			}
		}
	}
}

func TestRender_AliasedIsBinary(t *testing.T) {
	var o Outline
	rect(&o, 0, 0, 2.5, 2)

	m := Render(&o, Params{Aliased: true})

	if m.Width != 3 || m.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", m.Width, m.Height)
	}
	for i, v := range m.Pix {
		if v != 0x00 && v != 0xFF {
			t.Errorf("Pix[%d] = %#02x, want 0x00 or 0xFF", i, v)
		}
	}
	// Fully covered interior columns stay on.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := m.Pix[y*3+x]; got != 0xFF {
				t.Errorf("Pix(%d, %d) = %#02x, want 0xFF", x, y, got)
			}
		}
	}

	// Aliased wins over subpixel; the mask stays single-channel.
	m = Render(&o, Params{Aliased: true, Subpixel: true})
	if m.Channels != 1 {
		t.Errorf("aliased+subpixel Channels = %d, want 1", m.Channels)
	}
}

func TestRender_GridFitSnapsToPixels(t *testing.T) {
	var o Outline
	rect(&o, 0.4, 0.4, 3.6, 2.6)

	fitted := Render(&o, Params{GridFit: true})
	free := Render(&o, Params{})

	if fitted.Left != 0 || fitted.Top != 0 || fitted.Width != 4 || fitted.Height != 3 {
		t.Fatalf("fitted mask = (%d, %d) %dx%d, want (0, 0) 4x3",
			fitted.Left, fitted.Top, fitted.Width, fitted.Height)
	}
	for i, v := range fitted.Pix {
		if v != 0xFF {
			t.Fatalf("fitted Pix[%d] = %#02x, want 0xFF", i, v)
		}
	}

	// Without fitting the shape straddles pixel boundaries and the corner
	// pixel is only partially covered.
	if free.Pix[0] == 0xFF {
		t.Error("unfitted corner pixel has full coverage")
	}
}

func TestRender_PlacementAboveBaseline(t *testing.T) {
	var o Outline
	o.MoveTo(0, -4)
	o.LineTo(4, -4)
	o.LineTo(0, 0)

	m := Render(&o, Params{})

	if m.Left != 0 || m.Top != -4 {
		t.Errorf("placement = (%d, %d), want (0, -4)", m.Left, m.Top)
	}
	if m.Width != 4 || m.Height != 4 {
		t.Fatalf("size = %dx%d, want 4x4", m.Width, m.Height)
	}
	// Top-left pixel is inside the triangle, bottom-right far outside.
	if m.Pix[0] != 0xFF {
		t.Errorf("Pix[0] = %#02x, want 0xFF", m.Pix[0])
	}
	if last := m.Pix[len(m.Pix)-1]; last != 0x00 {
		t.Errorf("Pix[last] = %#02x, want 0x00", last)
	}
}

func TestOutline_Bounds(t *testing.T) {
	var o Outline
	o.MoveTo(1, 2)
	o.QuadTo(6, -3, 4, 5)

	minX, minY, maxX, maxY := o.Bounds()
	if minX != 1 || minY != -3 || maxX != 6 || maxY != 5 {
		t.Errorf("Bounds() = (%g, %g)-(%g, %g), want (1, -3)-(6, 5)", minX, minY, maxX, maxY)
	}
}

func BenchmarkRender_Grayscale(b *testing.B) {
	var o Outline
	rect(&o, 0.3, -10.7, 8.6, 0.2)
	o.QuadTo(4, -5, 0.3, -10.7)

	b.ReportAllocs()
	for b.Loop() {
		Render(&o, Params{})
	}
}
