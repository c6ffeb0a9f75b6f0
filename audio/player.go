package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/ring"
)

// Player owns the speaker and plays archetype cues
// A disabled Player accepts every call and stays silent
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	initialized bool
}

// NewPlayer initializes the speaker when cfg is enabled
// A speaker failure returns a usable silent player together with the error
func NewPlayer(cfg *Config) (*Player, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Player{cfg: cfg}
	if !cfg.Enabled {
		return p, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.CueBufferDuration)); err != nil {
		return p, fmt.Errorf("speaker init: %w", err)
	}
	p.initialized = true
	log.Printf("[audio] speaker ready at %d Hz", cfg.SampleRate)
	return p, nil
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues the cue for archetype a
func (p *Player) Play(a ring.Archetype) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	if s := Cue(a, p.cfg); s != nil {
		speaker.Play(s)
	}
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}
