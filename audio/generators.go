package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ScratchGenerator produces a short filtered-noise burst resembling a
// coin on foil. Infinite stream; wrap with beep.Take for one burst.
type ScratchGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	prev float64
}

// NewScratchGenerator creates a scratch noise generator.
func NewScratchGenerator(sr beep.SampleRate) *ScratchGenerator {
	return &ScratchGenerator{sr: sr, seed: 0x5eed}
}

func (g *ScratchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fast attack, quick decay.
		envelope := math.Exp(-t * 28)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// One-pole low-pass keeps the hiss papery instead of harsh.
		g.prev += 0.35 * (noise - g.prev)

		sample := 0.18 * envelope * g.prev
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ScratchGenerator) Err() error {
	return nil
}

// ChimeGenerator plays a short ascending major arpeggio and then ends;
// it is a finite streamer, no Take wrapper needed.
type ChimeGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// chimeNotes is a C major arpeggio (C5, E5, G5, C6).
var chimeNotes = []float64{523.25, 659.25, 783.99, 1046.50}

const chimeNoteDur = 140 * time.Millisecond

// NewChimeGenerator creates the success chime generator.
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{
		sr:      sr,
		samples: sr.N(chimeNoteDur) * len(chimeNotes),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	perNote := g.sr.N(chimeNoteDur)
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		note := g.pos / perNote
		notePos := g.pos % perNote
		t := float64(g.pos) / float64(g.sr)

		// Per-note envelope with a gentle release.
		nt := float64(notePos) / float64(perNote)
		envelope := math.Sin(nt * math.Pi)

		freq := chimeNotes[note]
		sample := 0.22 * envelope * math.Sin(2*math.Pi*freq*t)
		// A touch of the octave above for shimmer.
		sample += 0.06 * envelope * math.Sin(4*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
