// Package scale converts ring configurations between physical units and visual units
package scale

import (
	"github.com/lixenwraith/ringfield/ring"
)

// Adapter maps one physical distance unit onto visual units
type Adapter interface {
	// ToVisual converts a physical distance to visual units
	ToVisual(v float64) float64
	// FromVisual is the inverse of ToVisual
	FromVisual(v float64) float64
	// Adapt converts every length of cfg from physical to visual units
	Adapt(cfg ring.Config) ring.Config
	// FromPreset resizes a named preset to span [inner, outer] physical units and adapts it
	FromPreset(name string, inner, outer float64) (ring.Config, error)
	// Unit is the physical unit name
	Unit() string
	// Factor is visual units per physical unit at the current zoom
	Factor() float64
}

// presetIn resizes a preset to [inner, outer] in physical units
// Sizes, thickness and body radius follow the ratio of the new radial range to the preset's
func presetIn(name string, inner, outer float64) (ring.Config, error) {
	template, err := ring.Preset(name)
	if err != nil {
		return ring.Config{}, err
	}

	k := 1.0
	if r := template.RadialRange(); r > 0 {
		k = (outer - inner) / r
	}

	cfg := template
	cfg.InnerRadius = inner
	cfg.OuterRadius = outer
	cfg.MinSize *= k
	cfg.MaxSize *= k
	cfg.Thickness *= k
	cfg.CentralBodyRadius *= k
	return cfg, nil
}

// sizing is the heuristic for a helper configuration sized from its visual width
type sizing struct {
	minCount, maxCount int
	countPerUnit       float64
	minSizeFloor       float64
	minSizePerUnit     float64
	maxSizeFloor       float64
	maxSizePerUnit     float64
	thicknessPerUnit   float64
}

func (s sizing) apply(cfg ring.Config, width float64) ring.Config {
	cfg.ElementCount = min(max(s.minCount, int(width*s.countPerUnit)), s.maxCount)
	cfg.MinSize = max(s.minSizeFloor, width*s.minSizePerUnit)
	cfg.MaxSize = max(s.maxSizeFloor, width*s.maxSizePerUnit)
	cfg.Thickness = width * s.thicknessPerUnit
	return cfg
}

var (
	_ Adapter = (*SolarSystem)(nil)
	_ Adapter = (*Interstellar)(nil)
)
