package audio

import (
	"testing"

	"github.com/scratchfx/scratch"
)

// Play paths that would open a real audio device are not exercised
// here; the muted and failed short-circuits are, since they are what
// the widget relies on when sound is unavailable.

func TestPlayerMutedSkipsDevice(t *testing.T) {
	p := NewPlayer()
	p.SetMuted(true)

	// Must return without initializing the speaker.
	p.Play(scratch.SoundScratch)
	p.Play(scratch.SoundSuccess)

	if p.initialized {
		t.Error("muted Play initialized the audio device")
	}
}

func TestPlayerFailedStaysSilent(t *testing.T) {
	p := NewPlayer()
	p.failed = true

	p.Play(scratch.SoundScratch)
	p.Play(scratch.SoundSuccess)

	if p.initialized {
		t.Error("Play re-initialized a failed device")
	}
}

func TestPlayerImplementsSounder(t *testing.T) {
	var s scratch.Sounder = NewPlayer()
	if s == nil {
		t.Fatal("nil Sounder")
	}
}
