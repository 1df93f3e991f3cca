package scratch

import (
	"math"
	"sort"

	"github.com/scratchfx/scratch/internal/colorspace"
)

// Brush produces a color for each overlay pixel. The surface renderer
// evaluates the brush once per device pixel when painting the cover.
type Brush interface {
	// ColorAt returns the color at the given position in device pixels.
	ColorAt(x, y float64) RGBA
}

// SolidBrush fills with a single color.
type SolidBrush struct {
	Color RGBA
}

// Solid creates a solid-color brush.
func Solid(c RGBA) *SolidBrush {
	return &SolidBrush{Color: c}
}

// ColorAt implements the Brush interface.
func (b *SolidBrush) ColorAt(x, y float64) RGBA {
	return b.Color
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns the stops ordered by offset without modifying the
// original slice.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// interpolateColorLinear blends two colors in linear sRGB space.
// Alpha stays linear and is interpolated directly.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: colorspace.Lerp(c1.R, c2.R, t),
		G: colorspace.Lerp(c1.G, c2.G, t),
		B: colorspace.Lerp(c1.B, c2.B, t),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// colorAtOffset returns the interpolated color at a given offset.
// Offsets outside [0,1] clamp to the edge stops (pad extension).
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}

// LinearGradient is a linear color transition between two points.
//
// Example:
//
//	g := scratch.NewLinearGradient(0, 0, 0, 240).
//	    AddColorStop(0, scratch.Hex("#a78bfa")).
//	    AddColorStop(1, scratch.Hex("#ec4899"))
type LinearGradient struct {
	Start Point       // Start point of the gradient
	End   Point       // End point of the gradient
	Stops []ColorStop // Color stops defining the gradient
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt implements the Brush interface.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project the point onto the gradient line.
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t)
}

// RadialGradient is a radial color transition from a center point.
type RadialGradient struct {
	Center Point       // Center of the gradient
	Radius float64     // Radius at which the last stop is reached
	Stops  []ColorStop // Color stops defining the gradient
}

// NewRadialGradient creates a radial gradient around (cx, cy).
func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	return &RadialGradient{
		Center: Point{X: cx, Y: cy},
		Radius: radius,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt implements the Brush interface.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if g.Radius <= 0 {
		return firstStopColor(g.Stops)
	}
	d := math.Hypot(x-g.Center.X, y-g.Center.Y)
	return colorAtOffset(g.Stops, d/g.Radius)
}

// firstStopColor returns the first stop's color or Transparent if empty.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}
