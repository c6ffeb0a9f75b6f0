package parameter

import "time"

// Preset switch audio cue
const (
	CueSampleRate    = 44100
	CueDefaultVolume = 0.5

	// CueBufferDuration is the speaker buffer length
	CueBufferDuration = 100 * time.Millisecond

	CueDuration = 180 * time.Millisecond
	CueAttack   = 8 * time.Millisecond
	CueRelease  = 120 * time.Millisecond
)
