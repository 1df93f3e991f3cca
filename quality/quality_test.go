package quality

import (
	"testing"

	"github.com/scratchfx/scratch"
)

func TestProfileString(t *testing.T) {
	tests := []struct {
		p    Profile
		want string
	}{
		{Low, "low"},
		{Medium, "medium"},
		{High, "high"},
		{Profile(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Profile(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}

func TestSettings(t *testing.T) {
	if got := Medium.Settings(); got != scratch.DefaultQuality() {
		t.Errorf("Medium = %+v", got)
	}

	low := Low.Settings()
	high := High.Settings()
	if low.SampleStride <= high.SampleStride {
		t.Errorf("Low stride %d not sparser than High stride %d",
			low.SampleStride, high.SampleStride)
	}
	if low.MaxGapScale <= high.MaxGapScale {
		t.Errorf("Low gap %v not looser than High gap %v",
			low.MaxGapScale, high.MaxGapScale)
	}

	// Unknown profiles resolve to the default.
	if got := Profile(42).Settings(); got != scratch.DefaultQuality() {
		t.Errorf("unknown profile = %+v", got)
	}
}

func TestForTouch(t *testing.T) {
	base := Medium.Settings()
	touch := ForTouch(base)
	if touch.BrushScale != base.BrushScale*1.5 {
		t.Errorf("touch BrushScale = %v", touch.BrushScale)
	}
	if touch.SampleStride != base.SampleStride || touch.MaxGapScale != base.MaxGapScale {
		t.Error("ForTouch changed settings other than the brush")
	}
}
