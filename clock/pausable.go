package clock

import (
	"sync"
	"time"
)

// PausableClock provides simulation time that freezes while paused
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	start     time.Time     // real time at creation
	paused    bool
	pausedAt  time.Time     // real time when the current pause began
	pausedFor time.Duration // cumulative completed pause duration
}

// NewPausableClock creates a running clock over source, nil means system time
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewSystemTime()
	}
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Now returns simulation time: real elapsed minus time spent paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.source.Now()
	if pc.paused {
		now = pc.pausedAt
	}
	return pc.start.Add(now.Sub(pc.start) - pc.pausedFor)
}

// Pause stops simulation time; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.source.Now()
}

// Resume continues simulation time; repeated calls are no-ops
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedFor += pc.source.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// Toggle flips the pause state and returns true when now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including any pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedFor
	if pc.paused {
		total += pc.source.Now().Sub(pc.pausedAt)
	}
	return total
}
