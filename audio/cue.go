package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/ring"
)

// voice is one oscillator layer of a cue
type voice struct {
	freq  float64
	wave  WaveType
	level float64
}

// cueVoices gives each archetype its own timbre
var cueVoices = map[ring.Archetype][]voice{
	// Bright bell, fundamental plus octave
	ring.PlanetaryRing: {{880, WaveSine, 0.7}, {1760, WaveSine, 0.3}},
	// Low rocky rumble
	ring.AsteroidBelt: {{110, WaveSaw, 0.6}, {165, WaveSaw, 0.4}},
	ring.DebrisDisk:   {{440, WaveSquare, 0.5}, {660, WaveSine, 0.5}},
	// Breathy noise with a faint pitch
	ring.DustCloud: {{0, WaveNoise, 0.7}, {330, WaveSine, 0.3}},
	// Hot, high, dissonant pair
	ring.AccretionDisk: {{1318.51, WaveSine, 0.6}, {1396.91, WaveSine, 0.4}},
}

// Cue returns the preset switch sound for archetype a, nil when a has no voices
func Cue(a ring.Archetype, cfg *Config) beep.Streamer {
	voices, ok := cueVoices[a]
	if !ok {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	layers := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		layers = append(layers, newVolume(shapedTone(v.freq, v.wave, rate), v.level))
	}
	return beep.Take(CueLength(cfg), newVolume(beep.Mix(layers...), cfg.Volume))
}

func shapedTone(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(
		NewTone(freq, parameter.CueDuration, wave, rate),
		parameter.CueDuration, parameter.CueAttack, parameter.CueRelease, rate,
	)
}

// CueLength is the number of samples a cue plays at cfg's sample rate
func CueLength(cfg *Config) int {
	return beep.SampleRate(cfg.SampleRate).N(parameter.CueDuration)
}
