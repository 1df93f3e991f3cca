package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func TestScratchGeneratorStream(t *testing.T) {
	g := NewScratchGenerator(testRate)
	buf := make([][2]float64, 512)

	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = (%d, %v)", n, ok)
	}

	var peak float64
	for _, s := range buf {
		if s[0] != s[1] {
			t.Fatal("channels differ")
		}
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		t.Error("silent output")
	}
	if peak > 1 {
		t.Errorf("clipping: peak = %v", peak)
	}
	if g.Err() != nil {
		t.Errorf("Err = %v", g.Err())
	}
}

func TestScratchGeneratorDecays(t *testing.T) {
	g := NewScratchGenerator(testRate)
	early := make([][2]float64, testRate.N(10*time.Millisecond))
	g.Stream(early)

	// Skip ahead half a second and measure again.
	skip := make([][2]float64, 512)
	for streamed := len(early); streamed < int(testRate)/2; streamed += len(skip) {
		g.Stream(skip)
	}
	late := make([][2]float64, len(early))
	g.Stream(late)

	if rms(late) >= rms(early)/10 {
		t.Errorf("envelope not decaying: early %v, late %v", rms(early), rms(late))
	}
}

func TestChimeGeneratorFinite(t *testing.T) {
	g := NewChimeGenerator(testRate)
	total := testRate.N(chimeNoteDur) * len(chimeNotes)

	buf := make([][2]float64, 1024)
	streamed := 0
	for {
		n, ok := g.Stream(buf)
		streamed += n
		if !ok {
			break
		}
		if streamed > total+len(buf) {
			t.Fatal("chime never ended")
		}
	}
	if streamed != total {
		t.Errorf("streamed %d samples, want %d", streamed, total)
	}

	// Drained streamer stays drained.
	if n, ok := g.Stream(buf); n != 0 || ok {
		t.Errorf("post-drain Stream = (%d, %v)", n, ok)
	}
	if g.Err() != nil {
		t.Errorf("Err = %v", g.Err())
	}
}

func TestChimeGeneratorAmplitude(t *testing.T) {
	g := NewChimeGenerator(testRate)
	buf := make([][2]float64, testRate.N(chimeNoteDur))
	g.Stream(buf)

	var peak float64
	for _, s := range buf {
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	if peak == 0 || peak > 1 {
		t.Errorf("first note peak = %v", peak)
	}
	// The sine envelope starts from silence.
	if math.Abs(buf[0][0]) > 0.01 {
		t.Errorf("note does not start quiet: %v", buf[0][0])
	}
}

func rms(buf [][2]float64) float64 {
	var sum float64
	for _, s := range buf {
		sum += s[0] * s[0]
	}
	return math.Sqrt(sum / float64(len(buf)))
}
