// Package quality maps device-class profiles onto the tuning numbers
// the scratch engine consumes.
//
// Capability detection itself (user agents, memory, core counts) is a
// host concern and deliberately lives outside this module; the host
// picks a Profile and the engine only ever sees the resolved
// scratch.Quality values.
package quality

import "github.com/scratchfx/scratch"

// Profile is a coarse device class.
type Profile int

const (
	// Low is for constrained devices: sparser sampling and sparser
	// stroke interpolation.
	Low Profile = iota
	// Medium is the balanced default.
	Medium
	// High is for devices where full-density sampling is affordable.
	High
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Settings resolves the profile to engine tuning.
func (p Profile) Settings() scratch.Quality {
	switch p {
	case Low:
		return scratch.Quality{
			BrushScale:   1,
			SampleStride: 8,
			MaxGapScale:  0.75,
		}
	case High:
		return scratch.Quality{
			BrushScale:   1,
			SampleStride: 2,
			MaxGapScale:  0.35,
		}
	default:
		return scratch.DefaultQuality()
	}
}

// ForTouch adapts resolved settings for finger input: the brush grows
// to compensate for contact area (a policy borrowed from the mobile
// variants of this widget, not a hard requirement).
func ForTouch(q scratch.Quality) scratch.Quality {
	q.BrushScale *= 1.5
	return q
}
