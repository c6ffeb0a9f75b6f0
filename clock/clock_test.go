package clock

import (
	"math"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSystemTime(t *testing.T) {
	p := NewSystemTime()
	t1 := p.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := p.Now()
	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	if !mock.Now().Equal(epoch) {
		t.Errorf("Expected initial time %v, got %v", epoch, mock.Now())
	}

	mock.Advance(time.Hour)
	if want := epoch.Add(time.Hour); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, mock.Now())
	}

	next := epoch.Add(24 * time.Hour)
	mock.SetTime(next)
	if !mock.Now().Equal(next) {
		t.Errorf("Expected %v after SetTime, got %v", next, mock.Now())
	}
}

func TestPausableClockFreezes(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	pc := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := pc.Now().Sub(epoch); got != 2*time.Second {
		t.Errorf("Expected 2s elapsed, got %v", got)
	}

	pc.Pause()
	pc.Pause()
	mock.Advance(5 * time.Second)
	if got := pc.Now().Sub(epoch); got != 2*time.Second {
		t.Errorf("Expected clock frozen at 2s, got %v", got)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s pause in progress, got %v", got)
	}

	pc.Resume()
	pc.Resume()
	mock.Advance(time.Second)
	if got := pc.Now().Sub(epoch); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed after resume, got %v", got)
	}
	if pc.IsPaused() {
		t.Errorf("Expected clock running")
	}
}

func TestPausableClockToggle(t *testing.T) {
	pc := NewPausableClock(NewMockTimeProvider(epoch))
	if !pc.Toggle() || !pc.IsPaused() {
		t.Errorf("Expected first toggle to pause")
	}
	if pc.Toggle() || pc.IsPaused() {
		t.Errorf("Expected second toggle to resume")
	}
}

func TestTimeScale(t *testing.T) {
	tests := []struct {
		delta time.Duration
		want  float64
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Second / 60, 1},
		{time.Second / 30, 2},
		{100 * time.Millisecond, 6},
		{5 * time.Second, 6},
	}

	for _, tt := range tests {
		if got := TimeScale(tt.delta); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("delta=%v: expected %v, got %v", tt.delta, tt.want, got)
		}
	}
}

func TestStepper(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	pc := NewPausableClock(mock)
	var s Stepper

	if got := s.Step(pc.Now()); got != 0 {
		t.Errorf("Expected 0 on first step, got %v", got)
	}

	mock.Advance(time.Second / 60)
	if got := s.Step(pc.Now()); math.Abs(got-1) > 1e-6 {
		t.Errorf("Expected 1 for one target frame, got %v", got)
	}

	pc.Pause()
	mock.Advance(time.Second)
	if got := s.Step(pc.Now()); got != 0 {
		t.Errorf("Expected 0 while paused, got %v", got)
	}

	pc.Resume()
	mock.Advance(10 * time.Second)
	if got := s.Step(pc.Now()); math.Abs(got-6) > 1e-6 {
		t.Errorf("Expected stall clamped to 6, got %v", got)
	}

	s.Reset()
	mock.Advance(time.Second)
	if got := s.Step(pc.Now()); got != 0 {
		t.Errorf("Expected 0 after reset, got %v", got)
	}
}
