package scratch

import (
	"bytes"
	"image"
	"math/rand"
	"testing"
)

func TestNewSurfaceInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-3, 5}} {
		if _, err := NewSurface(dims[0], dims[1], 1, Style{}, nil); err == nil {
			t.Errorf("NewSurface(%d, %d) expected error", dims[0], dims[1])
		}
	}
}

func TestNewSurfaceDPRScaling(t *testing.T) {
	s, err := NewSurface(100, 50, 2, Style{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	pm := s.Pixmap()
	if pm.Width() != 200 || pm.Height() != 100 {
		t.Errorf("buffer = %dx%d, want 200x100", pm.Width(), pm.Height())
	}
	if s.Width() != 100 || s.Height() != 50 {
		t.Errorf("logical = %dx%d", s.Width(), s.Height())
	}

	// dpr below 1 normalizes to 1.
	s2, err := NewSurface(100, 50, 0.5, Style{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s2.DPR() != 1 || s2.Pixmap().Width() != 100 {
		t.Errorf("dpr = %v, buffer width = %d", s2.DPR(), s2.Pixmap().Width())
	}
}

func TestSurfaceDevice(t *testing.T) {
	s, err := NewSurface(40, 40, 3, Style{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	d := s.Device(Pt(10, 5))
	if d != Pt(30, 15) {
		t.Errorf("Device = %+v", d)
	}
}

func TestSurfaceRepaintOpaque(t *testing.T) {
	s, err := NewSurface(60, 40, 1, Style{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Every pixel of a fresh cover must be fully opaque or the sampler
	// would report phantom progress.
	pm := s.Pixmap()
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.AlphaAt(x, y) != 255 {
				t.Fatalf("alpha at (%d,%d) = %d on fresh cover", x, y, pm.AlphaAt(x, y))
			}
		}
	}
	if got := pm.ErasedRatio(1, 128); got != 0 {
		t.Errorf("fresh cover ErasedRatio = %v", got)
	}
}

func TestSurfaceRepaintDeterministic(t *testing.T) {
	paint := func() []uint8 {
		s, err := NewSurface(48, 32, 1, Style{}, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatal(err)
		}
		out := make([]uint8, len(s.Pixmap().Data()))
		copy(out, s.Pixmap().Data())
		return out
	}
	if !bytes.Equal(paint(), paint()) {
		t.Error("identical seeds produced different covers")
	}
}

func TestSurfaceRadialDiffersFromLinear(t *testing.T) {
	style := Style{Colors: []RGBA{Black, White}, Sparkles: -1, Text: " "}
	lin, err := NewSurface(40, 40, 1, style, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	style.Radial = true
	rad, err := NewSurface(40, 40, 1, style, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(lin.Pixmap().Data(), rad.Pixmap().Data()) {
		t.Error("radial cover identical to linear cover")
	}
	// Radial gradient is symmetric across the center.
	a := rad.Pixmap().GetPixel(5, 20)
	b := rad.Pixmap().GetPixel(34, 19)
	if !approxRGBA(a, b, 0.05) {
		t.Errorf("radial asymmetry: %+v vs %+v", a, b)
	}
}

func TestSurfaceLabelDrawn(t *testing.T) {
	blank := Style{Colors: []RGBA{Black, Black}, Sparkles: -1, Text: " "}
	labeled := Style{Colors: []RGBA{Black, Black}, Sparkles: -1}

	s1, err := NewSurface(120, 60, 1, blank, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	s2, err := NewSurface(120, 60, 1, labeled, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(s1.Pixmap().Data(), s2.Pixmap().Data()) {
		t.Error("default label left no pixels on the cover")
	}
}

func TestNormalizeStyleDefaults(t *testing.T) {
	s := normalizeStyle(Style{}, 300, 150)
	if len(s.Colors) != 2 {
		t.Errorf("Colors = %v", s.Colors)
	}
	if s.Text != DefaultLabel {
		t.Errorf("Text = %q", s.Text)
	}
	if s.Sparkles != 300*150/1500 {
		t.Errorf("Sparkles = %d", s.Sparkles)
	}
	if got := normalizeStyle(Style{Sparkles: -1}, 300, 150); got.Sparkles != 0 {
		t.Errorf("negative Sparkles = %d, want 0", got.Sparkles)
	}
	one := normalizeStyle(Style{Colors: []RGBA{Hex("#123456")}}, 10, 10)
	if len(one.Colors) != 2 || one.Colors[0] != Hex("#123456") {
		t.Errorf("single color pad = %v", one.Colors)
	}
}

func TestSurfaceReleaseAndAvailable(t *testing.T) {
	s, err := NewSurface(20, 20, 1, Style{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Available() {
		t.Error("fresh surface not available")
	}
	s.Release()
	if s.Available() {
		t.Error("released surface still available")
	}
	var nilSurface *Surface
	if nilSurface.Available() {
		t.Error("nil surface reported available")
	}
}

func TestSurfaceComposite(t *testing.T) {
	s, err := NewSurface(20, 20, 2, Style{Sparkles: -1, Text: " "}, nil)
	if err != nil {
		t.Fatal(err)
	}

	base := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for i := 0; i < len(base.Pix); i += 4 {
		base.Pix[i] = 255 // red prize
		base.Pix[i+3] = 255
	}

	// Untouched overlay hides the prize completely.
	out := s.Composite(base)
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 40 {
		t.Fatalf("composite bounds = %v", out.Bounds())
	}
	c := out.NRGBAAt(20, 20)
	if c.R == 255 && c.G == 0 {
		t.Error("prize visible through opaque overlay")
	}

	// Erase the middle and the prize shows through there.
	s.Pixmap().EraseDisc(20, 20, 8)
	out = s.Composite(base)
	c = out.NRGBAAt(20, 20)
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("prize pixel = %+v after erase", c)
	}
}
