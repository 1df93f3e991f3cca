package scratch

import (
	"image"
	"math/rand"
	"time"
)

// Option configures a Widget during creation.
//
// Example:
//
//	w, err := scratch.New(320, 240,
//	    scratch.WithMinScratchPercentage(60),
//	    scratch.WithBrushSize(32),
//	)
type Option func(*config)

// config holds the tunable configuration for a Widget. All thresholds
// are deliberately configuration, not constants: surveyed production
// variants of this widget disagree on the auto-reveal trigger (20 vs
// 40) and the alpha cutoff (128 vs 30), so the defaults here are
// representative, not authoritative.
type config struct {
	dpr            float64
	style          Style
	quality        Quality
	brushSize      float64
	jitter         float64
	minPercent     float64
	trigger        float64
	autoFrames     int
	alphaThreshold uint8
	sampleInterval time.Duration

	onProgress func(float64)
	onComplete func()
	sounder    Sounder
	haptics    Haptics

	clock    func() time.Time
	rng      *rand.Rand
	fallback image.Image
}

// defaultConfig returns the default widget configuration.
func defaultConfig() config {
	return config{
		dpr:            1,
		quality:        DefaultQuality(),
		brushSize:      24,
		jitter:         0.1,
		minPercent:     50,
		trigger:        20,
		autoFrames:     24,
		alphaThreshold: 128,
		sampleInterval: 150 * time.Millisecond,
		clock:          time.Now,
	}
}

// normalize clamps every tunable into a safe range. This is a
// presentation widget, not a validating API boundary: bad numbers
// degrade to the defaults instead of producing an error.
func (c config) normalize() config {
	d := defaultConfig()
	if c.dpr < 1 {
		c.dpr = 1
	}
	if c.brushSize <= 0 {
		c.brushSize = d.brushSize
	}
	if c.jitter < 0 || c.jitter > 0.5 {
		c.jitter = d.jitter
	}
	if c.minPercent <= 0 || c.minPercent > 100 {
		c.minPercent = d.minPercent
	}
	if c.trigger <= 0 {
		c.trigger = d.trigger
	}
	if c.trigger > c.minPercent {
		// The auto-reveal shortcut never outranks the manual target.
		c.trigger = c.minPercent
	}
	if c.autoFrames < 1 {
		c.autoFrames = d.autoFrames
	}
	if c.alphaThreshold == 0 {
		c.alphaThreshold = d.alphaThreshold
	}
	if c.sampleInterval <= 0 {
		c.sampleInterval = d.sampleInterval
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	c.quality = c.quality.normalize()
	return c
}

// WithDevicePixelRatio sets the device pixel ratio the overlay buffer
// is allocated at. Values below 1 are normalized to 1.
func WithDevicePixelRatio(dpr float64) Option {
	return func(c *config) { c.dpr = dpr }
}

// WithStyle sets the full overlay style.
func WithStyle(s Style) Option {
	return func(c *config) { c.style = s }
}

// WithGradientColors sets the overlay gradient stops. Fewer than two
// colors fall back to the default foil palette.
func WithGradientColors(colors ...RGBA) Option {
	return func(c *config) { c.style.Colors = colors }
}

// WithInstructionText sets the label painted on the overlay.
func WithInstructionText(text string) Option {
	return func(c *config) { c.style.Text = text }
}

// WithBrushSize sets the erasure brush radius in logical pixels.
func WithBrushSize(r float64) Option {
	return func(c *config) { c.brushSize = r }
}

// WithBrushJitter sets the fractional radius variation applied per
// disc (0 disables, default 0.1 for a worn look).
func WithBrushJitter(j float64) Option {
	return func(c *config) { c.jitter = j }
}

// WithMinScratchPercentage sets the percentage at which the session
// completes. Out-of-range values fall back to the default of 50.
func WithMinScratchPercentage(p float64) Option {
	return func(c *config) { c.minPercent = p }
}

// WithAutoRevealTrigger sets the lower percentage at which the engine
// stops requiring manual scratching and finishes the reveal with the
// expanding-circle animation. Clamped to the completion target.
func WithAutoRevealTrigger(p float64) Option {
	return func(c *config) { c.trigger = p }
}

// WithAutoRevealFrames sets the length of the auto-reveal animation in
// Step calls.
func WithAutoRevealFrames(n int) Option {
	return func(c *config) { c.autoFrames = n }
}

// WithAlphaThreshold sets the alpha byte below which a sampled pixel
// counts as revealed. Zero falls back to the default of 128.
func WithAlphaThreshold(threshold uint8) Option {
	return func(c *config) { c.alphaThreshold = threshold }
}

// WithSampleInterval sets the minimum time between progress samples.
// Sampling reads the whole buffer, so this is the main cost control on
// constrained devices.
func WithSampleInterval(d time.Duration) Option {
	return func(c *config) { c.sampleInterval = d }
}

// WithQuality injects device-class tuning resolved by the host (see
// the quality subpackage).
func WithQuality(q Quality) Option {
	return func(c *config) { c.quality = q }
}

// WithSounder injects the audio collaborator.
func WithSounder(s Sounder) Option {
	return func(c *config) { c.sounder = s }
}

// WithHaptics injects the best-effort vibration hook.
func WithHaptics(h Haptics) Option {
	return func(c *config) { c.haptics = h }
}

// WithProgress registers the throttled progress callback. It fires at
// most once per sample interval, plus a final call with 100 on
// completion.
func WithProgress(fn func(percent float64)) Option {
	return func(c *config) { c.onProgress = fn }
}

// WithComplete registers the completion callback. It fires exactly
// once per session; confetti, share dialogs and other celebration UI
// belong behind it.
func WithComplete(fn func()) Option {
	return func(c *config) { c.onComplete = fn }
}

// WithClock injects the time source used for sample rate limiting.
// Tests pass a manual clock.
func WithClock(clock func() time.Time) Option {
	return func(c *config) { c.clock = clock }
}

// WithRandom injects the RNG used for sparkles and brush jitter,
// making rendering deterministic in tests.
func WithRandom(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithFallbackImage sets the static image served by Image after the
// surface has been released (the fail-safe for a lost rendering
// context).
func WithFallbackImage(img image.Image) Option {
	return func(c *config) { c.fallback = img }
}
