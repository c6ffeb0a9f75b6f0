package parameter

import "time"

// Simulation Stepping
const (
	// TargetFrameSeconds is the frame duration at which timeScale == 1 (60 FPS)
	TargetFrameSeconds = 1.0 / 60.0

	// MaxDeltaSeconds clamps a single step after a pause or stall
	MaxDeltaSeconds = 0.1

	// ViewerFrameInterval is the viewer redraw interval
	ViewerFrameInterval = 33 * time.Millisecond

	// ParallelAdvanceThreshold is the population size below which parallel advance runs sequentially
	ParallelAdvanceThreshold = 4096
)
