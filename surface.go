package scratch

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Style describes the look of the obscuring overlay.
type Style struct {
	// Colors are the gradient stops, painted corner to corner.
	// Fewer than two colors are normalized to the default foil palette.
	Colors []RGBA

	// Radial paints the gradient from the center outward instead of
	// diagonally.
	Radial bool

	// Text is the instructional label centered on the overlay.
	// Empty means the default label; use a single space to suppress it.
	Text string

	// TextColor is the label color.
	TextColor RGBA

	// Sparkles is the number of cosmetic glitter flecks scattered over
	// the cover. Zero uses a density derived from the surface area;
	// negative disables the pass.
	Sparkles int
}

// DefaultLabel is the instruction painted when Style.Text is empty.
const DefaultLabel = "Scratch to reveal!"

// normalizeStyle fills in safe defaults. The overlay is a presentation
// widget, so invalid styling degrades gracefully instead of erroring.
func normalizeStyle(s Style, width, height int) Style {
	if len(s.Colors) < 2 {
		base := s.Colors
		s.Colors = append([]RGBA{}, base...)
		for _, c := range []RGBA{Silver, DarkSilver} {
			if len(s.Colors) >= 2 {
				break
			}
			s.Colors = append(s.Colors, c)
		}
	}
	if s.Text == "" {
		s.Text = DefaultLabel
	}
	if s.TextColor == (RGBA{}) {
		s.TextColor = White.WithAlpha(0.92)
	}
	if s.Sparkles < 0 {
		s.Sparkles = 0
	} else if s.Sparkles == 0 {
		s.Sparkles = width * height / 1500
	}
	return s
}

// Surface owns the overlay buffer for one reveal session. It is
// created at mount (and again on every reset or resize), painted by
// Repaint, and erased by the stroke engine. Coordinates on the public
// API are logical pixels; the buffer itself is allocated at
// width*dpr x height*dpr for crisp rendering, and all drawing inside
// the engine scales by the same factor.
type Surface struct {
	pixmap *Pixmap
	width  int // logical
	height int // logical
	dpr    float64
	style  Style
	rng    *rand.Rand
}

// NewSurface allocates and paints an overlay surface.
// width and height are logical pixels and must be positive. dpr values
// below 1 are normalized to 1. The rng seeds the cosmetic sparkle pass
// and may be nil for an unseeded default.
func NewSurface(width, height int, dpr float64, style Style, rng *rand.Rand) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scratch: invalid surface dimensions %dx%d", width, height)
	}
	if dpr < 1 {
		dpr = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) //nolint:gosec // cosmetic jitter only
	}

	s := &Surface{
		pixmap: NewPixmap(int(math.Round(float64(width)*dpr)), int(math.Round(float64(height)*dpr))),
		width:  width,
		height: height,
		dpr:    dpr,
		style:  normalizeStyle(style, width, height),
		rng:    rng,
	}
	s.Repaint()
	return s, nil
}

// Width returns the logical width of the surface.
func (s *Surface) Width() int { return s.width }

// Height returns the logical height of the surface.
func (s *Surface) Height() int { return s.height }

// DPR returns the device pixel ratio the buffer was allocated with.
func (s *Surface) DPR() float64 { return s.dpr }

// Pixmap returns the underlying overlay buffer in device pixels.
// Returns nil after Release.
func (s *Surface) Pixmap() *Pixmap { return s.pixmap }

// Available reports whether the overlay buffer is still attached.
func (s *Surface) Available() bool { return s != nil && s.pixmap != nil }

// Release detaches the overlay buffer, modeling a lost rendering
// context. Subsequent strokes and samples must be refused by the
// caller; Repaint becomes a no-op.
func (s *Surface) Release() {
	s.pixmap = nil
}

// Device converts a logical point to device-pixel coordinates.
func (s *Surface) Device(p Point) Point {
	return Point{X: p.X * s.dpr, Y: p.Y * s.dpr}
}

// Repaint redraws the full overlay: gradient cover, sparkle pass, and
// the centered instruction label. It is idempotent with respect to the
// gradient and label; only the sparkle placement depends on the rng
// stream. Reset repaints through this method.
func (s *Surface) Repaint() {
	if !s.Available() {
		return
	}
	s.pixmap.Fill(s.cover())
	s.drawSparkles()
	s.drawLabel()
}

// cover builds the gradient brush for the current style in device px.
func (s *Surface) cover() Brush {
	pw := float64(s.pixmap.Width())
	ph := float64(s.pixmap.Height())
	stops := s.style.Colors

	if s.style.Radial {
		g := NewRadialGradient(pw/2, ph/2, math.Hypot(pw, ph)/2)
		for i, c := range stops {
			g.AddColorStop(float64(i)/float64(len(stops)-1), c)
		}
		return g
	}

	g := NewLinearGradient(0, 0, pw, ph)
	for i, c := range stops {
		g.AddColorStop(float64(i)/float64(len(stops)-1), c)
	}
	return g
}

// drawSparkles scatters small bright flecks over the cover. Purely
// cosmetic; any RNG stream is acceptable. Flecks blend into the cover
// color rather than replacing it, so the overlay stays fully opaque
// and the progress sampler never mistakes glitter for erasure.
func (s *Surface) drawSparkles() {
	pw := s.pixmap.Width()
	ph := s.pixmap.Height()
	for i := 0; i < s.style.Sparkles; i++ {
		x := s.rng.Intn(pw)
		y := s.rng.Intn(ph)
		s.glint(x, y)
		if s.rng.Intn(3) == 0 {
			// Occasional plus-shaped glint.
			s.glint(x-1, y)
			s.glint(x+1, y)
			s.glint(x, y-1)
			s.glint(x, y+1)
		}
	}
}

// glint brightens one cover pixel toward white, preserving alpha.
func (s *Surface) glint(x, y int) {
	if x < 0 || y < 0 || x >= s.pixmap.Width() || y >= s.pixmap.Height() {
		return
	}
	c := s.pixmap.GetPixel(x, y)
	lit := c.Lerp(White, 0.35)
	lit.A = c.A
	s.pixmap.SetPixel(x, y, lit)
}

// drawLabel renders the instruction text centered on the overlay.
// The bitmap face is rasterized at 1x and scaled up with nearest
// neighbor so the label stays crisp at any device pixel ratio.
func (s *Surface) drawLabel() {
	text := s.style.Text
	if text == "" || text == " " {
		return
	}

	face := basicfont.Face7x13
	metrics := face.Metrics()
	tw := font.MeasureString(face, text).Ceil()
	th := metrics.Height.Ceil()
	if tw == 0 {
		return
	}

	tmp := image.NewNRGBA(image.Rect(0, 0, tw, th))
	d := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(s.style.TextColor.Color()),
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	k := int(math.Round(s.dpr))
	if k < 1 {
		k = 1
	}
	dw := tw * k
	dh := th * k
	pw := s.pixmap.Width()
	ph := s.pixmap.Height()
	dr := image.Rect((pw-dw)/2, (ph-dh)/2, (pw-dw)/2+dw, (ph-dh)/2+dh)

	xdraw.NearestNeighbor.Scale(s.pixmap, dr, tmp, tmp.Bounds(), xdraw.Over, nil)
}

// Composite draws the overlay over a base image (the hidden prize) and
// returns the combined view, scaling the base to the overlay size when
// needed. This is what a share or download collaborator exports.
func (s *Surface) Composite(base image.Image) *image.NRGBA {
	pw, ph := 1, 1
	if s.Available() {
		pw, ph = s.pixmap.Width(), s.pixmap.Height()
	}
	out := image.NewNRGBA(image.Rect(0, 0, pw, ph))
	if base != nil {
		xdraw.ApproxBiLinear.Scale(out, out.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	}
	if s.Available() {
		xdraw.Draw(out, out.Bounds(), s.pixmap, image.Point{}, xdraw.Over)
	}
	return out
}
