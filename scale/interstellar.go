package scale

import (
	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/ring"
	"github.com/lixenwraith/ringfield/vmath"
)

// Interstellar maps light-years onto visual units
type Interstellar struct {
	BaseScale float64
	ZoomLevel float64
}

func NewInterstellar(baseScale float64) *Interstellar {
	return &Interstellar{BaseScale: baseScale, ZoomLevel: 1}
}

// NewInterstellarFit returns an adapter that places maxLy at displayRadius
func NewInterstellarFit(maxLy, displayRadius float64) *Interstellar {
	base := 1.0
	if maxLy > 0 {
		base = displayRadius / maxLy
	}
	return NewInterstellar(base)
}

func (s *Interstellar) Unit() string { return "Light-years" }

func (s *Interstellar) Factor() float64 { return s.BaseScale * s.ZoomLevel }

func (s *Interstellar) ToVisual(ly float64) float64 { return ly * s.Factor() }

func (s *Interstellar) FromVisual(v float64) float64 { return v / s.Factor() }

func (s *Interstellar) particleSize(size float64) float64 {
	scaled := size * s.BaseScale * parameter.InterstellarParticleScale
	return vmath.Clamp(scaled, parameter.InterstellarParticleMin, parameter.InterstellarParticleMax)
}

// Adapt converts lengths to visual units and slows rotation for interstellar scale
func (s *Interstellar) Adapt(cfg ring.Config) ring.Config {
	cfg.InnerRadius = s.ToVisual(cfg.InnerRadius)
	cfg.OuterRadius = s.ToVisual(cfg.OuterRadius)
	cfg.MinSize = s.particleSize(cfg.MinSize)
	cfg.MaxSize = s.particleSize(cfg.MaxSize)
	cfg.Thickness = s.ToVisual(cfg.Thickness)
	cfg.BaseAngularSpeed *= parameter.InterstellarSpeedFactor
	cfg.CentralBodyRadius = s.ToVisual(cfg.CentralBodyRadius)
	return cfg
}

func (s *Interstellar) FromPreset(name string, innerLy, outerLy float64) (ring.Config, error) {
	cfg, err := presetIn(name, innerLy, outerLy)
	if err != nil {
		return ring.Config{}, err
	}
	return s.Adapt(cfg), nil
}

var (
	emissionNebulaSizing = sizing{
		minCount: 5000, maxCount: 15000, countPerUnit: 100,
		minSizeFloor: 0.3, minSizePerUnit: 0.01,
		maxSizeFloor: 1.0, maxSizePerUnit: 0.03,
		thicknessPerUnit: 0.8,
	}
	darkNebulaSizing = sizing{
		minCount: 3000, maxCount: 10000, countPerUnit: 60,
		minSizeFloor: 0.5, minSizePerUnit: 0.015,
		maxSizeFloor: 1.5, maxSizePerUnit: 0.04,
		thicknessPerUnit: 0.6,
	}
	reflectionNebulaSizing = sizing{
		minCount: 4000, maxCount: 12000, countPerUnit: 80,
		minSizeFloor: 0.2, minSizePerUnit: 0.008,
		maxSizeFloor: 0.8, maxSizePerUnit: 0.025,
		thicknessPerUnit: 0.5,
	}
	planetaryNebulaSizing = sizing{
		minCount: 6000, maxCount: 15000, countPerUnit: 500,
		minSizeFloor: 0.15, minSizePerUnit: 0.02,
		maxSizeFloor: 0.5, maxSizePerUnit: 0.06,
		thicknessPerUnit: 1.2,
	}
)

func (s *Interstellar) visualSpan(innerLy, outerLy float64) (inner, outer, width float64) {
	inner, outer = s.ToVisual(innerLy), s.ToVisual(outerLy)
	return inner, outer, outer - inner
}

// nebula builds the shared full-sphere dust cloud shape
func nebula(inner, outer, maxEcc, speed, body float64, primary, secondary ring.Color, name string) ring.Config {
	return ring.NewConfig(
		ring.WithArchetype(ring.DustCloud),
		ring.WithRadii(inner, outer),
		ring.WithMaxInclination(90),
		ring.WithMaxEccentricity(maxEcc),
		ring.WithAngularSpeed(speed),
		ring.WithCentralBodyRadius(body),
		ring.WithColors(primary, secondary),
		ring.WithName(name),
	)
}

// EmissionNebula sizes a glowing hydrogen/oxygen cloud
func (s *Interstellar) EmissionNebula(innerLy, outerLy float64, name string) ring.Config {
	inner, outer, width := s.visualSpan(innerLy, outerLy)
	cfg := nebula(inner, outer, 0.02, 0.0002, width*0.05,
		ring.RGB(255, 100, 150), ring.RGB(100, 200, 255), name)
	return emissionNebulaSizing.apply(cfg, width)
}

// DarkNebula sizes an obscuring dust cloud
func (s *Interstellar) DarkNebula(innerLy, outerLy float64, name string) ring.Config {
	inner, outer, width := s.visualSpan(innerLy, outerLy)
	cfg := nebula(inner, outer, 0.02, 0.0001, width*0.03,
		ring.RGB(40, 35, 30), ring.RGB(20, 18, 15), name)
	return darkNebulaSizing.apply(cfg, width)
}

// ReflectionNebula sizes a dust cloud lit by a star, blue-shifted from starColor
func (s *Interstellar) ReflectionNebula(innerLy, outerLy float64, starColor ring.Color, name string) ring.Config {
	inner, outer, width := s.visualSpan(innerLy, outerLy)
	scattered := ring.Color{
		R: vmath.Clamp01(starColor.R * 0.6),
		G: vmath.Clamp01(starColor.G * 0.7),
		B: vmath.Clamp01(starColor.B*1.2 + 0.3),
		A: 1,
	}
	cfg := nebula(inner, outer, 0.02, 0.00015, width*0.04,
		scattered, scattered.Brighten(0.7), name)
	return reflectionNebulaSizing.apply(cfg, width)
}

// PlanetaryNebula sizes an expanding shell around a stellar remnant
func (s *Interstellar) PlanetaryNebula(innerLy, outerLy float64, name string) ring.Config {
	inner, outer, width := s.visualSpan(innerLy, outerLy)
	cfg := nebula(inner, outer, 0.01, 0.0003, inner*0.3,
		ring.RGB(100, 255, 200), ring.RGB(200, 100, 255), name)
	return planetaryNebulaSizing.apply(cfg, width)
}
