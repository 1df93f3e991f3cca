package scratch

import (
	"testing"
	"time"
)

func TestPercentRevealed(t *testing.T) {
	s := plainSurface(t, 20, 20)
	if got := PercentRevealed(s, 1, 128); got != 0 {
		t.Errorf("fresh surface = %v", got)
	}

	s.Pixmap().Clear(Transparent)
	if got := PercentRevealed(s, 1, 128); got != 100 {
		t.Errorf("cleared surface = %v", got)
	}

	s.Release()
	if got := PercentRevealed(s, 1, 128); got != 0 {
		t.Errorf("released surface = %v", got)
	}
	if got := PercentRevealed(nil, 1, 128); got != 0 {
		t.Errorf("nil surface = %v", got)
	}
}

func TestSamplerRateLimit(t *testing.T) {
	s := plainSurface(t, 20, 20)
	sm := sampler{stride: 1, threshold: 128, interval: 150 * time.Millisecond}
	now := time.Unix(0, 0)

	if !sm.due(now) {
		t.Fatal("fresh sampler not due")
	}
	sm.sample(s, now)

	if sm.due(now.Add(50 * time.Millisecond)) {
		t.Error("due again before the interval elapsed")
	}
	if !sm.due(now.Add(150 * time.Millisecond)) {
		t.Error("not due at exactly the interval")
	}
}

func TestSamplerReset(t *testing.T) {
	s := plainSurface(t, 20, 20)
	sm := sampler{stride: 1, threshold: 128, interval: time.Hour}
	now := time.Unix(0, 0)
	sm.sample(s, now)

	if sm.due(now.Add(time.Minute)) {
		t.Fatal("due inside a one-hour interval")
	}
	sm.reset()
	if !sm.due(now.Add(time.Minute)) {
		t.Error("reset sampler not immediately due")
	}
}

func TestSamplerReadsCurrentState(t *testing.T) {
	s := plainSurface(t, 10, 10)
	sm := sampler{stride: 1, threshold: 128}
	now := time.Unix(0, 0)

	if got := sm.sample(s, now); got != 0 {
		t.Errorf("first sample = %v", got)
	}
	s.Pixmap().EraseDisc(5, 5, 20)
	if got := sm.sample(s, now.Add(time.Second)); got != 100 {
		t.Errorf("post-erase sample = %v", got)
	}
}
