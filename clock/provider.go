// Package clock supplies time sources and converts frame deltas into simulation time scales
package clock

import (
	"sync"
	"time"
)

// TimeProvider is a source of current time
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the wall clock, keeping the monotonic reading
type SystemTime struct{}

func NewSystemTime() *SystemTime {
	return &SystemTime{}
}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a hand-driven clock for tests and replays
// It only moves through SetTime and Advance
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetTime jumps to t, which may be earlier than the current reading
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new reading
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}
