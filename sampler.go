package scratch

import "time"

// PercentRevealed reads the overlay's alpha channel on a stride-spaced
// grid and returns the percentage of sampled pixels already scratched
// away, in [0, 100]. A pixel counts as revealed when its alpha is below
// threshold. The stride is in device pixels; larger strides are the
// documented accuracy-for-speed trade-off on large buffers.
//
// The function never mutates the surface and returns 0 for a released
// or zero-sized surface.
func PercentRevealed(s *Surface, stride int, threshold uint8) float64 {
	if !s.Available() {
		return 0
	}
	return s.Pixmap().ErasedRatio(stride, threshold) * 100
}

// sampler rate-limits progress estimation. Reading the whole buffer on
// every input event would dominate frame time on constrained devices,
// so the widget samples at most once per interval and forces a read
// only when a threshold decision depends on it.
type sampler struct {
	stride    int // device px
	threshold uint8
	interval  time.Duration

	last time.Time
	have bool
}

// due reports whether enough time has passed for a new sample.
func (sm *sampler) due(now time.Time) bool {
	return !sm.have || now.Sub(sm.last) >= sm.interval
}

// sample reads the surface and records the sampling time.
func (sm *sampler) sample(s *Surface, now time.Time) float64 {
	sm.last = now
	sm.have = true
	return PercentRevealed(s, sm.stride, sm.threshold)
}

// reset clears the rate-limiter state for a new session.
func (sm *sampler) reset() {
	sm.have = false
	sm.last = time.Time{}
}
