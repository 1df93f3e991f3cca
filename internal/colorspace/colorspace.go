// Package colorspace provides sRGB to linear conversions for scratch.
//
// Gradient stops are interpolated in linear light so the painted
// overlay has no muddy midpoints; everything else in the engine works
// directly on gamma-encoded bytes.
package colorspace

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Lerp interpolates between two sRGB components in linear space and
// returns the result re-encoded as sRGB. Alpha must not go through
// this function: alpha is always linear.
func Lerp(a, b, t float64) float64 {
	la := SRGBToLinear(a)
	lb := SRGBToLinear(b)
	return LinearToSRGB(la + t*(lb-la))
}
