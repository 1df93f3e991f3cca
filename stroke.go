package scratch

import (
	"math"
	"math/rand"
)

// stroker is the stroke engine: it converts a sequence of pointer
// samples into erasure discs on the surface. One stroker instance is
// bound to one surface at a time; the widget recreates the binding on
// reset.
//
// The engine keeps the last applied point per stroke. When consecutive
// samples land farther apart than maxGap (fast swipes), it synthesizes
// smoothstep-spaced intermediate discs along the segment so the erased
// path stays continuous. Gaps here are a correctness bug, not a
// cosmetic one: a fast diagonal swipe would otherwise leave rows of
// untouched cover between disconnected discs.
type stroker struct {
	radius float64 // logical px, already quality-scaled
	maxGap float64 // logical px between discs along a segment
	jitter float64 // fractional radius variation, 0 disables
	rng    *rand.Rand

	last    Point
	hasLast bool
}

func newStroker(radius, maxGap, jitter float64, rng *rand.Rand) stroker {
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) //nolint:gosec // visual jitter only
	}
	return stroker{radius: radius, maxGap: maxGap, jitter: jitter, rng: rng}
}

// begin starts a new stroke, forgetting the previous point. Called on
// pointer down and again on pointer up/leave/cancel so a new touch
// never connects to the old path.
func (st *stroker) begin() {
	st.hasLast = false
}

// apply erases at p, interpolating from the previous point when the
// distance exceeds maxGap. Returns the number of discs drawn so the
// caller knows whether progress needs resampling.
func (st *stroker) apply(s *Surface, p Point) int {
	if !s.Available() {
		return 0
	}

	if !st.hasLast {
		st.erase(s, p)
		st.last = p
		st.hasLast = true
		return 1
	}

	d := st.last.Distance(p)
	if d <= st.maxGap {
		st.erase(s, p)
		st.last = p
		return 1
	}

	// ceil(distance/maxGap) synthetic discs, smoothstep-eased along
	// the segment.
	n := int(math.Ceil(d / st.maxGap))
	for i := 1; i <= n; i++ {
		t := smoothstep(float64(i) / float64(n))
		st.erase(s, st.last.Lerp(p, t))
	}
	st.last = p
	return n
}

// erase draws one destination-out disc in device pixels, with the
// radius varied by the configured jitter for a worn, natural edge.
func (st *stroker) erase(s *Surface, p Point) {
	r := st.radius
	if st.jitter > 0 {
		r *= 1 + st.jitter*(2*st.rng.Float64()-1)
	}
	dp := s.Device(p)
	s.Pixmap().EraseDisc(dp.X, dp.Y, r*s.DPR())
}
