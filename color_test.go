package scratch

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", RGBA{1, 1, 1, 1}},
		{"fff", RGBA{1, 1, 1, 1}},
		{"#000000", RGBA{0, 0, 0, 1}},
		{"#ff0000", RGBA{1, 0, 0, 1}},
		{"#00ff0080", RGBA{0, 1, 0, float64(0x80) / 255}},
		{"bogus", RGBA{0, 0, 0, 1}}, // invalid falls back to opaque black
	}
	for _, tt := range tests {
		got := Hex(tt.in)
		if got != tt.want {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := color.NRGBA{R: 120, G: 33, B: 240, A: 200}
	got := FromColor(orig).Color()
	if got != orig {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{0, 0, 0, 0}
	b := RGBA{1, 1, 1, 1}
	mid := a.Lerp(b, 0.5)
	if mid.R != 0.5 || mid.A != 0.5 {
		t.Errorf("Lerp midpoint = %+v", mid)
	}
	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Error("Lerp endpoints not exact")
	}
}

func TestWithAlpha(t *testing.T) {
	c := White.WithAlpha(0.25)
	if c.R != 1 || c.A != 0.25 {
		t.Errorf("WithAlpha = %+v", c)
	}
	if White.A != 1 {
		t.Error("WithAlpha mutated the receiver")
	}
}
