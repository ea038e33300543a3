package scene

// TargetFrameRate is the fixed simulation rate of the demos.
const TargetFrameRate = 60

// FrameDuration is the simulated time of one frame at TargetFrameRate.
const FrameDuration = 1.0 / TargetFrameRate

// Animation multiplier limits.
const (
	MinMultiplier = 0.1
	MaxMultiplier = 10.0
)

// Clock is the animation clock. Time only moves through Advance, Seek and
// Restart, so a frame driver fully controls it.
type Clock struct {
	Time       float64
	Multiplier float64
	Paused     bool
}

// NewClock returns a running clock at time 0 with multiplier 1.
func NewClock() *Clock {
	return &Clock{Multiplier: 1}
}

// Advance moves the clock forward by dt scaled by Multiplier, unless
// paused.
func (c *Clock) Advance(dt float64) {
	if c.Paused {
		return
	}
	c.Time += dt * c.Multiplier
}

// Seek jumps to t.
func (c *Clock) Seek(t float64) {
	c.Time = t
}

// Restart jumps back to time 0.
func (c *Clock) Restart() {
	c.Time = 0
}
