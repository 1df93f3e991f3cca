package scratch

import (
	"image"
	"image/png"
	"io"
	"math"
	"math/rand"
	"reflect"
	"time"
)

// maxQueuedPoints bounds the pointer queue. Input arriving faster than
// the frame budget coalesces; beyond the cap the oldest samples are
// dropped, which is invisible once interpolation fills the path.
const maxQueuedPoints = 512

// CompletionPattern is the default haptic pattern suggested to the
// Haptics hook when the reveal completes.
var CompletionPattern = []time.Duration{
	100 * time.Millisecond,
	30 * time.Millisecond,
	100 * time.Millisecond,
}

// queuedPoint tags a pointer sample with the session generation it was
// produced in, so samples queued before a reset can never erase the
// freshly repainted surface. down marks the first sample of a stroke;
// the stroke engine restarts there so two touches queued within one
// frame never connect.
type queuedPoint struct {
	p    Point
	gen  uint64
	down bool
}

// RevealState is a snapshot of session progress.
type RevealState struct {
	PercentRevealed float64 // [0, 100]
	IsScratching    bool    // pointer currently down
	IsCompleted     bool    // one-shot, cleared only by Reset
}

// Widget is the scratch-to-reveal engine: it owns the overlay surface,
// feeds pointer input through the stroke engine, samples progress, and
// runs the completion state machine.
//
// A Widget is single-threaded. Pointer events may be pushed
// from the host's event callbacks and are only applied when the host
// calls Step from its render loop; no two mutations of the overlay
// buffer ever overlap.
type Widget struct {
	width   int
	height  int
	dpr     float64
	style   Style
	quality Quality

	brushSize  float64
	jitter     float64
	minPercent float64
	trigger    float64
	autoFrames int

	surface *Surface
	stroke  stroker
	ctrl    controller
	smp     sampler

	queue      []queuedPoint
	scratching bool
	stepping   bool
	dirty      bool // erased since the last progress sample
	generation uint64

	percent float64

	onProgress func(float64)
	onComplete func()
	sounder    Sounder
	haptics    Haptics

	clock       func() time.Time
	surfaceSeed int64 // repaints are identical across resets
	fallback    image.Image
	resetKey    any
	closed      bool
}

// New creates a scratch widget with the given logical dimensions.
// Invalid option values are normalized to safe defaults rather than
// rejected; the only construction error is a non-positive size.
func New(width, height int, opts ...Option) (*Widget, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.normalize()

	// The sparkle pass must repaint identically on every reset, so the
	// surface gets a fresh generator from the same seed each time.
	var seed int64 = 1
	if cfg.rng != nil {
		seed = cfg.rng.Int63()
	}

	surface, err := NewSurface(width, height, cfg.dpr, cfg.style, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	radius := cfg.brushSize * cfg.quality.BrushScale
	strideDev := int(math.Round(float64(cfg.quality.SampleStride) * cfg.dpr))
	if strideDev < 1 {
		strideDev = 1
	}

	w := &Widget{
		width:      width,
		height:     height,
		dpr:        cfg.dpr,
		style:      cfg.style,
		quality:    cfg.quality,
		brushSize:  cfg.brushSize,
		jitter:     cfg.jitter,
		minPercent: cfg.minPercent,
		trigger:    cfg.trigger,
		autoFrames: cfg.autoFrames,
		surface:    surface,
		stroke:     newStroker(radius, radius*cfg.quality.MaxGapScale, cfg.jitter, cfg.rng),
		ctrl:       newController(cfg.trigger, cfg.minPercent, cfg.autoFrames),
		smp: sampler{
			stride:    strideDev,
			threshold: cfg.alphaThreshold,
			interval:  cfg.sampleInterval,
		},
		onProgress:  cfg.onProgress,
		onComplete:  cfg.onComplete,
		sounder:     cfg.sounder,
		haptics:     cfg.haptics,
		clock:       cfg.clock,
		surfaceSeed: seed,
		fallback:    cfg.fallback,
	}
	return w, nil
}

// Width returns the logical width of the widget.
func (w *Widget) Width() int { return w.width }

// Height returns the logical height of the widget.
func (w *Widget) Height() int { return w.height }

// State returns the completion controller's current state.
func (w *Widget) State() State { return w.ctrl.state }

// Percent returns the most recently sampled reveal percentage.
func (w *Widget) Percent() float64 { return w.percent }

// Completed reports whether this session has finished.
func (w *Widget) Completed() bool { return w.ctrl.completed() }

// RevealState returns a snapshot of the session.
func (w *Widget) RevealState() RevealState {
	return RevealState{
		PercentRevealed: w.percent,
		IsScratching:    w.scratching,
		IsCompleted:     w.ctrl.completed(),
	}
}

// Surface exposes the overlay for rendering by the host.
func (w *Widget) Surface() *Surface { return w.surface }

// usable reports whether stroke and sampling operations may proceed.
func (w *Widget) usable() bool {
	return !w.closed && w.surface.Available()
}

// PointerDown starts a stroke at p (surface-local logical coordinates).
// Ignored once the session is auto-revealing or completed, and after
// Close.
func (w *Widget) PointerDown(p Point) {
	if !w.usable() || w.ctrl.state >= StateAutoRevealing {
		return
	}
	w.scratching = true
	w.ctrl.begin()
	w.enqueue(p, true)
}

// PointerMove extends the active stroke. Events arriving without a
// preceding PointerDown are ignored, as is input after the session has
// left the Scratching state.
func (w *Widget) PointerMove(p Point) {
	if !w.scratching || !w.usable() || w.ctrl.state >= StateAutoRevealing {
		return
	}
	w.enqueue(p, false)
}

// PointerUp ends the active stroke.
func (w *Widget) PointerUp() { w.endStroke() }

// PointerLeave ends the active stroke when the pointer exits the
// surface.
func (w *Widget) PointerLeave() { w.endStroke() }

// PointerCancel ends the active stroke on a canceled touch sequence.
func (w *Widget) PointerCancel() { w.endStroke() }

func (w *Widget) endStroke() {
	w.scratching = false
	w.stroke.begin()
}

func (w *Widget) enqueue(p Point, down bool) {
	if len(w.queue) >= maxQueuedPoints {
		copy(w.queue, w.queue[1:])
		w.queue = w.queue[:len(w.queue)-1]
	}
	w.queue = append(w.queue, queuedPoint{p: p, gen: w.generation, down: down})
}

// Step runs one animation frame: it drains queued pointer samples into
// the stroke engine, advances the auto-reveal animation, re-samples
// progress under the rate limit, and lets the completion controller
// transition. The host calls Step from its frame callback with the
// current time; tests pass a manual clock.
//
// Step is guarded against re-entrant scheduling: a call arriving while
// a previous one is still on the stack is dropped.
func (w *Widget) Step(now time.Time) {
	if w.stepping {
		return
	}
	w.stepping = true
	defer func() { w.stepping = false }()

	if !w.usable() {
		return
	}

	switch w.ctrl.state {
	case StateCompleted:
		w.queue = w.queue[:0]
		return
	case StateAutoRevealing:
		w.queue = w.queue[:0] // manual erasure suppressed
		w.stepAutoReveal(now)
		return
	}

	if drew := w.drainQueue(); drew > 0 {
		w.dirty = true
		if w.sounder != nil {
			w.sounder.Play(SoundScratch)
		}
	}

	// Unsampled erasure survives the rate limit: a stroke drawn inside
	// the throttle window still gets sampled on the next due frame,
	// even after the pointer has lifted.
	if !w.dirty || !w.smp.due(now) {
		return
	}
	w.dirty = false

	w.setPercent(w.smp.sample(w.surface, now))
	switch w.ctrl.observe(w.percent) {
	case actionComplete:
		w.completeNow()
	case actionAutoReveal:
		w.endStroke()
		Logger().Debug("auto-reveal started", "percent", w.percent)
	}
}

// Tick is Step with the widget's injected clock, for hosts that do not
// carry their own frame timestamps.
func (w *Widget) Tick() {
	w.Step(w.clock())
}

// drainQueue applies queued points through the stroke engine, skipping
// anything enqueued before the current generation.
func (w *Widget) drainQueue() int {
	drew := 0
	for _, qp := range w.queue {
		if qp.gen != w.generation {
			continue
		}
		if qp.down {
			w.stroke.begin()
		}
		drew += w.stroke.apply(w.surface, qp.p)
	}
	w.queue = w.queue[:0]
	return drew
}

// stepAutoReveal erases an expanding circle from the surface center.
// The radius fraction comes from the controller and is monotonic, so
// progress only grows. Sampling here bypasses the rate limit: the
// animation is bounded to a fixed number of frames, and each frame's
// completion check needs a fresh value.
func (w *Widget) stepAutoReveal(now time.Time) {
	t, done := w.ctrl.advance()

	pm := w.surface.Pixmap()
	cx := float64(pm.Width()) / 2
	cy := float64(pm.Height()) / 2
	maxR := math.Hypot(cx, cy)
	pm.EraseDisc(cx, cy, t*maxR)

	w.setPercent(w.smp.sample(w.surface, now))
	if done || w.ctrl.observe(w.percent) == actionComplete {
		w.completeNow()
	}
}

// setPercent records a sampled percentage and notifies the progress
// callback. Callback cadence is bounded by the sampling rate limit.
func (w *Widget) setPercent(p float64) {
	w.percent = p
	if w.onProgress != nil {
		w.onProgress(p)
	}
}

// completeNow performs the completion side effects exactly once:
// the cover is fully cleared regardless of sampled rounding, the
// percentage snaps to 100, and the collaborator hooks fire. Repeated
// calls observe the controller's one-shot flag and return.
func (w *Widget) completeNow() {
	if !w.ctrl.complete() {
		return
	}
	w.endStroke()
	w.surface.Pixmap().Clear(Transparent)
	w.setPercent(100)
	if w.sounder != nil {
		w.sounder.Play(SoundSuccess)
	}
	if w.haptics != nil {
		w.haptics(CompletionPattern)
	}
	if w.onComplete != nil {
		w.onComplete()
	}
	Logger().Debug("reveal completed")
}

// Reset starts a new session: the one-shot completion flag re-arms,
// progress returns to zero, queued input is discarded, and the surface
// is repainted exactly as on mount. Pending work from the old session
// is invalidated by bumping the generation counter. Reset after Close
// is a no-op.
func (w *Widget) Reset() {
	if w.closed {
		Logger().Warn("reset ignored on closed widget")
		return
	}
	w.generation++
	w.queue = w.queue[:0]
	w.scratching = false
	w.dirty = false
	w.ctrl.reset()
	w.smp.reset()
	w.percent = 0
	w.stroke.begin()

	surface, err := NewSurface(w.width, w.height, w.dpr, w.style,
		rand.New(rand.NewSource(w.surfaceSeed)))
	if err == nil {
		w.surface = surface
	}
	Logger().Debug("session reset", "generation", w.generation)
}

// SetResetKey forces a Reset whenever the key changes, mirroring the
// host framework's prop-driven reset contract. The first key observed
// is adopted without resetting. Keys are opaque tokens; uncomparable
// values (slices, maps) always count as changed.
func (w *Widget) SetResetKey(key any) {
	if resetKeysEqual(w.resetKey, key) {
		return
	}
	first := w.resetKey == nil
	w.resetKey = key
	if !first {
		w.Reset()
	}
}

func resetKeysEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

// Image returns the current overlay raster, or the configured fallback
// image once the surface has been released. May return nil when no
// fallback was provided.
func (w *Widget) Image() image.Image {
	if w.surface.Available() {
		return w.surface.Pixmap().ToImage()
	}
	return w.fallback
}

// ExportPNG writes the overlay composited over base (the hidden prize
// image, may be nil) as PNG. This is the share/download surface.
func (w *Widget) ExportPNG(out io.Writer, base image.Image) error {
	if !w.surface.Available() {
		return ErrSurfaceUnavailable
	}
	return png.Encode(out, w.surface.Composite(base))
}

// Close releases the overlay buffer and cancels all pending work.
// After Close the widget refuses strokes, sampling, and resets, but
// Image still serves the fallback. Close is idempotent.
func (w *Widget) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.generation++
	w.queue = nil
	w.scratching = false
	w.surface.Release()
	return nil
}
