// Command scratchdemo runs a scripted scratch session headlessly and
// writes the overlay as PNG frames, ending with the composited reveal.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/scratchfx/scratch"
	"github.com/scratchfx/scratch/quality"
)

func main() {
	var (
		width   = flag.Int("width", 320, "surface width (logical px)")
		height  = flag.Int("height", 240, "surface height (logical px)")
		dpr     = flag.Float64("dpr", 2, "device pixel ratio")
		outDir  = flag.String("out", "frames", "output directory")
		every   = flag.Int("every", 5, "save every Nth frame")
		percent = flag.Float64("percent", 50, "completion percentage")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		scratch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	completed := false
	w, err := scratch.New(*width, *height,
		scratch.WithDevicePixelRatio(*dpr),
		scratch.WithGradientColors(scratch.Hex("#a78bfa"), scratch.Hex("#ec4899"), scratch.Hex("#f59e0b")),
		scratch.WithMinScratchPercentage(*percent),
		scratch.WithQuality(quality.High.Settings()),
		scratch.WithSampleInterval(time.Millisecond),
		scratch.WithProgress(func(p float64) { log.Printf("progress: %.1f%%", p) }),
		scratch.WithComplete(func() { completed = true }),
	)
	if err != nil {
		log.Fatalf("Failed to create widget: %v", err)
	}

	// Sweep a sine-wave path across the surface, one pointer sample
	// and one frame per step.
	now := time.Now()
	w.PointerDown(scratch.Pt(0, float64(*height)/2))
	frame := 0
	for !completed && frame < 600 {
		t := float64(frame) / 60
		x := t / 10 * float64(*width) * 4
		x = math.Mod(x, float64(*width))
		y := float64(*height)/2 + math.Sin(t*4)*float64(*height)/3
		w.PointerMove(scratch.Pt(x, y))

		now = now.Add(33 * time.Millisecond)
		w.Step(now)

		if frame%*every == 0 {
			if err := saveFrame(w, *outDir, frame); err != nil {
				log.Fatalf("Failed to save frame: %v", err)
			}
		}
		frame++
	}
	w.PointerUp()

	// Let any auto-reveal animation run out.
	for !completed && frame < 700 {
		now = now.Add(33 * time.Millisecond)
		w.Step(now)
		if frame%*every == 0 {
			if err := saveFrame(w, *outDir, frame); err != nil {
				log.Fatalf("Failed to save frame: %v", err)
			}
		}
		frame++
	}

	final := filepath.Join(*outDir, "reveal.png")
	f, err := os.Create(final)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", final, err)
	}
	defer f.Close()
	if err := w.ExportPNG(f, prize(*width, *height)); err != nil {
		log.Fatalf("Failed to export: %v", err)
	}

	log.Printf("Done: %d frames, completed=%v, final percent %.1f", frame, completed, w.Percent())
}

func saveFrame(w *scratch.Widget, dir string, frame int) error {
	return w.Surface().Pixmap().SavePNG(filepath.Join(dir, fmt.Sprintf("frame%04d.png", frame)))
}

// prize builds a stand-in hidden image: concentric rings.
func prize(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := math.Hypot(float64(x-width/2), float64(y-height/2))
			c := scratch.Hex("#10b981")
			if int(d/12)%2 == 0 {
				c = scratch.Hex("#fbbf24")
			}
			img.Set(x, y, c.Color())
		}
	}
	return img
}
