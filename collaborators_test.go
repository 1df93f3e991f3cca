package scratch

import (
	"testing"
	"time"
)

func TestSoundString(t *testing.T) {
	tests := []struct {
		s    Sound
		want string
	}{
		{SoundScratch, "scratch"},
		{SoundSuccess, "success"},
		{Sound(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Sound(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestQualityNormalize(t *testing.T) {
	d := DefaultQuality()

	got := Quality{}.normalize()
	if got.BrushScale != 1 || got.SampleStride != d.SampleStride || got.MaxGapScale != d.MaxGapScale {
		t.Errorf("zero value normalized to %+v", got)
	}

	got = Quality{BrushScale: 2, SampleStride: 3, MaxGapScale: 0.9}.normalize()
	if got != (Quality{BrushScale: 2, SampleStride: 3, MaxGapScale: 0.9}) {
		t.Errorf("valid values changed: %+v", got)
	}

	got = Quality{BrushScale: -1, SampleStride: -5, MaxGapScale: 3}.normalize()
	if got.BrushScale != 1 || got.SampleStride != d.SampleStride || got.MaxGapScale != d.MaxGapScale {
		t.Errorf("invalid values normalized to %+v", got)
	}
}

// recordingSounder captures Play calls for widget integration tests.
type recordingSounder struct {
	calls []Sound
}

func (r *recordingSounder) Play(s Sound) { r.calls = append(r.calls, s) }

func TestWidgetSoundAndHaptics(t *testing.T) {
	clk := &manualClock{now: time.Unix(100, 0)}
	snd := &recordingSounder{}
	var patterns [][]time.Duration

	w := newTestWidget(t,
		WithMinScratchPercentage(50),
		WithClock(clk.time),
		WithSounder(snd),
		WithHaptics(func(p []time.Duration) { patterns = append(patterns, p) }),
	)

	clearTopRows(w, 0.7)
	w.PointerDown(Pt(20, 35))
	w.Step(clk.now)

	if len(snd.calls) < 2 {
		t.Fatalf("sounds played = %v", snd.calls)
	}
	if snd.calls[0] != SoundScratch {
		t.Errorf("first sound = %v, want scratch", snd.calls[0])
	}
	if snd.calls[len(snd.calls)-1] != SoundSuccess {
		t.Errorf("last sound = %v, want success", snd.calls[len(snd.calls)-1])
	}

	if len(patterns) != 1 {
		t.Fatalf("haptic invocations = %d, want 1", len(patterns))
	}
	if len(patterns[0]) != len(CompletionPattern) {
		t.Errorf("pattern = %v", patterns[0])
	}
}
