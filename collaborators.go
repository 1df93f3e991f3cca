package scratch

import "time"

// Sound identifies an effect the widget asks its Sounder to play.
type Sound int

const (
	// SoundScratch accompanies active erasure. It can be requested at
	// high frequency; throttling is the Sounder's responsibility.
	SoundScratch Sound = iota
	// SoundSuccess plays once when the reveal completes.
	SoundSuccess
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundScratch:
		return "scratch"
	case SoundSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Sounder is the audio collaborator consumed by the widget. Play is
// fire-and-forget: it must not block and must tolerate being called on
// every drained input batch. The audio subpackage provides a
// beep-backed implementation; tests inject fakes.
type Sounder interface {
	Play(Sound)
}

// Haptics is the best-effort vibration hook invoked on completion with
// a suggested pattern. Implementations must not propagate errors; the
// widget ignores everything about the call except that it returns.
type Haptics func(pattern []time.Duration)

// Quality carries device-class tuning resolved by the host. The engine
// never inspects user agents or hardware itself; it only consumes these
// already-resolved numbers. See the quality subpackage for profiles.
type Quality struct {
	// BrushScale multiplies the configured brush radius, compensating
	// for finger contact area on touch devices.
	BrushScale float64

	// SampleStride is the spacing in logical pixels between alpha
	// samples when estimating reveal progress.
	SampleStride int

	// MaxGapScale is the largest allowed spacing between interpolated
	// erasure discs, as a fraction of the brush radius.
	MaxGapScale float64
}

// DefaultQuality is the tuning used when the host supplies none.
func DefaultQuality() Quality {
	return Quality{
		BrushScale:   1,
		SampleStride: 4,
		MaxGapScale:  0.5,
	}
}

// normalize clamps quality values into usable ranges.
func (q Quality) normalize() Quality {
	if q.BrushScale <= 0 {
		q.BrushScale = 1
	}
	if q.SampleStride < 1 {
		q.SampleStride = DefaultQuality().SampleStride
	}
	if q.MaxGapScale <= 0 || q.MaxGapScale > 1 {
		q.MaxGapScale = DefaultQuality().MaxGapScale
	}
	return q
}
