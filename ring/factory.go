package ring

import (
	"fmt"
	"log"

	"github.com/lixenwraith/ringfield/parameter"
)

// Factory maps each archetype to its generator
type Factory struct {
	generators map[Archetype]Generator
}

// NewFactory returns a factory with every built-in generator registered
// Panics if an archetype lacks a generator, which only happens when the closed set grows inconsistently
func NewFactory() *Factory {
	f := &Factory{generators: make(map[Archetype]Generator, archetypeCount)}
	f.Register(PlanetaryRingGenerator{})
	f.Register(AsteroidBeltGenerator{})
	f.Register(DebrisDiskGenerator{})
	f.Register(DustCloudGenerator{})
	f.Register(AccretionDiskGenerator{})

	for _, a := range Archetypes() {
		if _, ok := f.generators[a]; !ok {
			panic(fmt.Sprintf("ring: archetype %s has no generator", a))
		}
	}
	return f
}

// Register installs g for its archetype, replacing any previous generator
func (f *Factory) Register(g Generator) {
	f.generators[g.Archetype()] = g
}

// Generator returns the generator registered for a
func (f *Factory) Generator(a Archetype) (Generator, error) {
	g, ok := f.generators[a]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoGenerator, a)
	}
	return g, nil
}

// Generate resolves the generator for cfg.Archetype and samples from rng
// Degenerate configs are logged and clamped, never rejected
func (f *Factory) Generate(cfg Config, rng Rand) ([]Element, error) {
	g, err := f.Generator(cfg.Archetype)
	if err != nil {
		return nil, err
	}
	if reason, bad := cfg.Degenerate(); bad {
		log.Printf("[ring] degenerate config %q: %s", cfg.DisplayName, reason)
	}
	return g.Generate(cfg, rng), nil
}

// GenerateSeeded generates with a fresh source for seed
func (f *Factory) GenerateSeeded(cfg Config, seed uint64) ([]Element, error) {
	return f.Generate(cfg, NewRand(seed))
}

// GenerateDefault generates with the fixed default seed
func (f *Factory) GenerateDefault(cfg Config) ([]Element, error) {
	return f.GenerateSeeded(cfg, parameter.DefaultSeed)
}

var defaultFactory = NewFactory()

// Generate uses the built-in factory
func Generate(cfg Config, rng Rand) ([]Element, error) {
	return defaultFactory.Generate(cfg, rng)
}

// GenerateSeeded uses the built-in factory with a fresh source for seed
func GenerateSeeded(cfg Config, seed uint64) ([]Element, error) {
	return defaultFactory.GenerateSeeded(cfg, seed)
}

// GenerateDefault uses the built-in factory and the default seed
func GenerateDefault(cfg Config) ([]Element, error) {
	return defaultFactory.GenerateDefault(cfg)
}
