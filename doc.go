// Package scratch implements a scratch-to-reveal interactive surface.
//
// # Overview
//
// scratch provides the rendering and progress engine behind a
// "scratch card" widget: an obscuring raster overlay is painted over a
// hidden image, pointer or touch input erases it stroke by stroke, and
// once enough of the overlay has been cleared the remaining cover is
// removed automatically and a one-shot completion callback fires.
//
// # Quick Start
//
//	import "github.com/scratchfx/scratch"
//
//	w, err := scratch.New(320, 240,
//	    scratch.WithGradientColors(scratch.Hex("#a78bfa"), scratch.Hex("#ec4899")),
//	    scratch.WithComplete(func() { fmt.Println("revealed!") }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Feed pointer events from the host environment...
//	w.PointerDown(scratch.Pt(10, 10))
//	w.PointerMove(scratch.Pt(200, 180))
//	w.PointerUp()
//
//	// ...and drive frames from the host's render loop.
//	w.Step(time.Now())
//
// # Architecture
//
// The engine is split into four cooperating parts, all owned by Widget:
//   - surface renderer: paints the overlay (gradient, sparkle, label)
//     at device-pixel resolution
//   - stroke engine: turns pointer samples into interpolated erasure
//     discs so fast swipes leave no gaps
//   - progress sampler: estimates percent revealed from the overlay's
//     alpha channel using a configurable stride
//   - completion controller: a small state machine that triggers the
//     auto-reveal animation and guarantees the completion callback
//     fires exactly once per session
//
// # Concurrency
//
// A Widget is not safe for concurrent use. All methods must be called
// from the same goroutine, typically the host's event/render loop.
// Pointer events are queued and drained by Step, the animation-frame
// analogue, so input arriving faster than the frame budget is coalesced
// rather than drawn synchronously.
//
// # Collaborators
//
// Confetti, share dialogs and similar celebration UI are outside the
// engine; they hang off the completion callback. Sound and haptics are
// injected as narrow interfaces (see Sounder and the audio subpackage)
// and are always best-effort: their failures never block the reveal.
package scratch

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
