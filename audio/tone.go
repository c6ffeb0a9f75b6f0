package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects a tone's waveform
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length periodic wave, phase in [0, 1)
type tone struct {
	wave  WaveType
	step  float64
	phase float64
	left  int
	noise *rand.Rand
}

// NewTone returns a stereo wave at freq lasting d
// Noise is seeded from freq and d so a cue sounds the same every time
func NewTone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:  wave,
		step:  freq / float64(rate),
		left:  rate.N(d),
		noise: rand.New(rand.NewPCG(uint64(freq), uint64(d))),
	}
}

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*t.phase - 1
	case WaveNoise:
		return 2*t.noise.Float64() - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) Stream(buf [][2]float64) (int, bool) {
	n := min(len(buf), t.left)
	for i := range n {
		v := t.sample()
		buf[i] = [2]float64{v, v}
		t.phase += t.step
		t.phase -= math.Floor(t.phase)
	}
	t.left -= n
	return n, n > 0
}

func (t *tone) Err() error { return nil }

// envelope gates a stream with a linear attack and release over total samples
type envelope struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope ramps s up over attack and down over the last release of d
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

// gain is the level at sample p, 0 outside [0, total]
func (e *envelope) gain(p int) float64 {
	g := 1.0
	if e.attack > 0 && p < e.attack {
		g = float64(p) / float64(e.attack)
	}
	if tail := e.total - p; e.release > 0 && tail <= e.release {
		g = min(g, float64(tail)/float64(e.release))
	}
	return max(g, 0)
}

func (e *envelope) Stream(buf [][2]float64) (int, bool) {
	buf = buf[:min(len(buf), e.total-e.pos)]
	if len(buf) == 0 {
		return 0, false
	}
	n, ok := e.src.Stream(buf)
	for i := range n {
		g := e.gain(e.pos + i)
		buf[i][0] *= g
		buf[i][1] *= g
	}
	e.pos += n
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume scales s linearly, vol <= 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	if vol <= 0 {
		v.Silent = true
	} else {
		v.Volume = math.Log2(vol)
	}
	return v
}
