package scratch

// State identifies the completion controller's position in the reveal
// lifecycle.
type State int

const (
	// StateIdle means no stroke has been received this session.
	StateIdle State = iota
	// StateScratching means the user is actively erasing the cover.
	StateScratching
	// StateAutoRevealing means the expanding-circle animation is
	// finishing the reveal; manual erasure is suppressed.
	StateAutoRevealing
	// StateCompleted is terminal until Reset.
	StateCompleted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScratching:
		return "scratching"
	case StateAutoRevealing:
		return "auto-revealing"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// action is what the controller asks the widget to do after observing
// a progress value.
type action int

const (
	actionNone action = iota
	actionAutoReveal
	actionComplete
)

// controller is the completion state machine. It decides when the
// session flips from manual scratching to the auto-reveal animation
// and guarantees, via the one-shot fired flag, that completion is
// signaled at most once no matter how many times the threshold is
// crossed before state propagates.
type controller struct {
	state   State
	trigger float64 // auto-reveal trigger percent, <= target
	target  float64 // minScratchPercentage
	frames  int     // auto-reveal animation length
	frame   int
	fired   bool
}

func newController(trigger, target float64, frames int) controller {
	return controller{trigger: trigger, target: target, frames: frames}
}

// begin transitions Idle to Scratching on the first stroke point.
// A no-op in any other state.
func (c *controller) begin() {
	if c.state == StateIdle {
		c.state = StateScratching
	}
}

// observe consumes a freshly sampled percentage and returns the
// transition the widget must execute. Completion wins over the
// auto-reveal trigger when both thresholds are crossed in one sample.
func (c *controller) observe(percent float64) action {
	switch c.state {
	case StateScratching:
		if percent >= c.target {
			return actionComplete
		}
		if percent >= c.trigger {
			c.state = StateAutoRevealing
			c.frame = 0
			return actionAutoReveal
		}
	case StateAutoRevealing:
		if percent >= c.target {
			return actionComplete
		}
	}
	return actionNone
}

// advance steps the auto-reveal animation one frame and returns the
// eased fraction of the expanding circle, plus whether the animation
// has run its course. The fraction is monotonic, so erasure only ever
// grows.
func (c *controller) advance() (t float64, done bool) {
	if c.state != StateAutoRevealing {
		return 0, false
	}
	c.frame++
	if c.frame >= c.frames {
		return 1, true
	}
	return smoothstep(float64(c.frame) / float64(c.frames)), false
}

// complete performs the one-shot transition into Completed. Returns
// true exactly once per session; repeated threshold-crossing checks
// after that observe the fired flag and do nothing.
func (c *controller) complete() bool {
	if c.fired {
		c.state = StateCompleted
		return false
	}
	c.fired = true
	c.state = StateCompleted
	return true
}

// completed reports whether the session has finished.
func (c *controller) completed() bool {
	return c.state == StateCompleted
}

// reset returns the machine to Idle and re-arms the one-shot flag.
func (c *controller) reset() {
	c.state = StateIdle
	c.frame = 0
	c.fired = false
}
