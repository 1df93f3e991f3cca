// Package audio is the beep-backed sound collaborator for the scratch
// engine. It synthesizes the two effects the widget asks for: a soft
// noise burst while scratching and a short chime on completion.
//
// The speaker is process-wide state in beep, so it is initialized
// lazily exactly once, on the first Play (which in a UI arrives from a
// user gesture, keeping autoplay policies happy), and never torn down.
// Widgets reach the audio system only through an injected *Player, so
// tests can swap in fakes and never touch a real output device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/scratchfx/scratch"
)

const sampleRate = beep.SampleRate(44100)

// scratchThrottle caps how often the scratch noise retriggers. The
// widget may request it on every drained input batch; anything denser
// than this just smears into noise.
const scratchThrottle = 90 * time.Millisecond

// Player synthesizes and plays the widget's sound effects.
// It implements scratch.Sounder. The zero value is not usable; call
// NewPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	failed      bool
	muted       bool
	lastScratch time.Time
}

var _ scratch.Sounder = (*Player)(nil)

// NewPlayer creates a player. No audio device is opened until the
// first Play.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Called implicitly by Play; exposed so
// hosts can warm up the device on an explicit user gesture. Safe to
// call repeatedly.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initLocked()
}

func (p *Player) initLocked() error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		// Blocked or absent audio device. The reveal continues
		// silently.
		p.failed = true
		scratch.Logger().Warn("audio unavailable", "error", err)
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.failed = false
	return nil
}

// SetMuted toggles sound output without touching the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Play implements scratch.Sounder. It never blocks on the audio
// device and silently drops requests when audio is unavailable.
func (p *Player) Play(s scratch.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.failed {
		return
	}
	if err := p.initLocked(); err != nil {
		return
	}

	switch s {
	case scratch.SoundScratch:
		now := time.Now()
		if now.Sub(p.lastScratch) < scratchThrottle {
			return
		}
		p.lastScratch = now
		p.add(beep.Take(sampleRate.N(120*time.Millisecond), NewScratchGenerator(sampleRate)))
	case scratch.SoundSuccess:
		p.add(NewChimeGenerator(sampleRate))
	}
}

// add queues a finite streamer on the shared mixer. The speaker lock
// serializes against the playback goroutine.
func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
