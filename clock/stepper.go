package clock

import (
	"time"

	"github.com/lixenwraith/ringfield/parameter"
)

// Stepper turns successive clock readings into Element.Advance time scales
// One time unit is one target frame, so 60 FPS advances by 1.0 per frame
type Stepper struct {
	last    time.Time
	started bool
}

// Step returns the time scale for the interval since the previous call
// The first call, a frozen clock, and backwards time all return 0; long stalls are clamped
func (s *Stepper) Step(now time.Time) float64 {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}
	delta := now.Sub(s.last)
	s.last = now
	return TimeScale(delta)
}

// Reset makes the next Step behave like the first
func (s *Stepper) Reset() {
	s.started = false
	s.last = time.Time{}
}

// TimeScale converts a frame delta into target-frame units, clamped to MaxDeltaSeconds
func TimeScale(delta time.Duration) float64 {
	if delta <= 0 {
		return 0
	}
	seconds := min(delta.Seconds(), parameter.MaxDeltaSeconds)
	return seconds / parameter.TargetFrameSeconds
}
