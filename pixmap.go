package scratch

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// Pixmap is the overlay raster buffer: a rectangular RGBA pixel grid at
// device-pixel resolution. Alpha is straight (not premultiplied); a
// pixel with low alpha counts as scratched away.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// AlphaAt returns the raw alpha byte at (x, y).
// Out-of-bounds coordinates read as fully transparent.
func (p *Pixmap) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[(y*p.width+x)*4+3]
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Fill paints every pixel from the brush. Used by the surface renderer
// to lay down the gradient cover in one pass.
func (p *Pixmap) Fill(b Brush) {
	i := 0
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := b.ColorAt(float64(x)+0.5, float64(y)+0.5)
			p.data[i+0] = uint8(clamp255(c.R * 255))
			p.data[i+1] = uint8(clamp255(c.G * 255))
			p.data[i+2] = uint8(clamp255(c.B * 255))
			p.data[i+3] = uint8(clamp255(c.A * 255))
			i += 4
		}
	}
}

// EraseDisc removes alpha inside a filled disc, the raster equivalent
// of a destination-out composite with an opaque circular source.
// The disc edge gets one pixel of analytic anti-aliasing so erased
// paths read as smooth rather than stair-stepped. Color channels are
// left untouched; only coverage is subtracted.
func (p *Pixmap) EraseDisc(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	x0 := int(math.Floor(cx - r - 1))
	x1 := int(math.Ceil(cx + r + 1))
	y0 := int(math.Floor(cy - r - 1))
	y1 := int(math.Ceil(cy + r + 1))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > p.width {
		x1 = p.width
	}
	if y1 > p.height {
		y1 = p.height
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			cov := r + 0.5 - d // edge coverage ramp, 1px wide
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			i := (y*p.width+x)*4 + 3
			remaining := float64(p.data[i]) * (1 - cov)
			p.data[i] = uint8(remaining)
		}
	}
}

// ErasedRatio samples the alpha channel on a stride-spaced grid and
// returns the fraction of sampled pixels whose alpha is below
// threshold, in [0, 1]. A stride of 1 inspects every pixel; larger
// strides trade accuracy for speed on big buffers. Returns 0 when no
// pixels are sampled.
func (p *Pixmap) ErasedRatio(stride int, threshold uint8) float64 {
	if stride < 1 {
		stride = 1
	}
	sampled := 0
	erased := 0
	for y := 0; y < p.height; y += stride {
		row := y * p.width * 4
		for x := 0; x < p.width; x += stride {
			sampled++
			if p.data[row+x*4+3] < threshold {
				erased++
			}
		}
	}
	if sampled == 0 {
		return 0
	}
	return float64(erased) / float64(sampled)
}

// ToImage converts the pixmap to an image.RGBA.
// Note the data is straight alpha, so the result is strictly an NRGBA
// reinterpretation; use At for color-model-correct reads.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// EncodePNG writes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface, letting x/image's font
// drawer and the stdlib compositor paint directly onto the overlay.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
