package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/vmath"
)

// Environment variables read by LoadConfig
const (
	EnvEnabled    = "RINGFIELD_AUDIO_ENABLED"
	EnvVolume     = "RINGFIELD_AUDIO_VOLUME"
	EnvSampleRate = "RINGFIELD_SAMPLE_RATE"
)

// Config controls the preset switch cue
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	SampleRate int
}

// DefaultConfig returns a disabled cue at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:    false,
		Volume:     parameter.CueDefaultVolume,
		SampleRate: parameter.CueSampleRate,
	}
}

// LoadConfig loads audio configuration from environment variables
// Unparseable values keep their defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is 0-100 in the environment
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = vmath.Clamp01(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
