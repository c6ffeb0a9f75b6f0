package scale

import (
	"math"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/ring"
	"github.com/lixenwraith/ringfield/vmath"
)

// SolarSystem maps astronomical units onto visual units
type SolarSystem struct {
	BaseScale float64
	ZoomLevel float64
	// LogScale compresses large distances with log10(1+10·au)
	LogScale bool
}

// NewSolarSystem returns an adapter at the default base scale
func NewSolarSystem() *SolarSystem {
	return &SolarSystem{BaseScale: parameter.SolarBaseScale, ZoomLevel: 1}
}

// NewSolarSystemFit returns an adapter that places maxAU at the fit radius
func NewSolarSystemFit(maxAU float64) *SolarSystem {
	s := NewSolarSystem()
	if maxAU > 0 {
		s.BaseScale = parameter.SolarFitRadius / maxAU
	}
	return s
}

func (s *SolarSystem) Unit() string { return "AU" }

func (s *SolarSystem) Factor() float64 { return s.BaseScale * s.ZoomLevel }

func (s *SolarSystem) ToVisual(au float64) float64 {
	if s.LogScale && au > 0 {
		return math.Log10(1+au*10) * s.Factor() * parameter.SolarLogStretch
	}
	return au * s.Factor()
}

func (s *SolarSystem) FromVisual(v float64) float64 {
	if s.LogScale {
		return (math.Pow(10, v/(s.Factor()*parameter.SolarLogStretch)) - 1) / 10
	}
	return v / s.Factor()
}

// VectorToVisual scales a position radially, preserving its direction
func (s *SolarSystem) VectorToVisual(p vmath.Vec3F) vmath.Vec3F {
	r := vmath.V3FMag(p)
	if r == 0 {
		return vmath.Vec3F{}
	}
	return vmath.V3FScale(p, s.ToVisual(r)/r)
}

// Zoom multiplies the zoom level, clamped to [MinZoom, MaxZoom]
func (s *SolarSystem) Zoom(factor float64) {
	s.ZoomLevel = vmath.Clamp(s.ZoomLevel*factor, parameter.MinZoom, parameter.MaxZoom)
}

func (s *SolarSystem) ResetZoom() {
	s.ZoomLevel = 1
}

// particleSize maps a size in AU-relative units to a visual size within display limits
func (s *SolarSystem) particleSize(size float64) float64 {
	scaled := size * s.ToVisual(1) * parameter.SolarParticleScale
	return vmath.Clamp(scaled, parameter.SolarParticleMin, parameter.SolarParticleMax)
}

func (s *SolarSystem) Adapt(cfg ring.Config) ring.Config {
	cfg.InnerRadius = s.ToVisual(cfg.InnerRadius)
	cfg.OuterRadius = s.ToVisual(cfg.OuterRadius)
	cfg.MinSize = s.particleSize(cfg.MinSize)
	cfg.MaxSize = s.particleSize(cfg.MaxSize)
	cfg.Thickness = s.ToVisual(cfg.Thickness)
	cfg.CentralBodyRadius = s.ToVisual(cfg.CentralBodyRadius)
	return cfg
}

func (s *SolarSystem) FromPreset(name string, innerAU, outerAU float64) (ring.Config, error) {
	cfg, err := presetIn(name, innerAU, outerAU)
	if err != nil {
		return ring.Config{}, err
	}
	return s.Adapt(cfg), nil
}

var (
	planetaryRingSizing = sizing{
		minCount: 2000, maxCount: 15000, countPerUnit: 200,
		minSizeFloor: 0.1, minSizePerUnit: 0.005,
		maxSizeFloor: 0.3, maxSizePerUnit: 0.02,
		thicknessPerUnit: 0.01,
	}
	asteroidBeltSizing = sizing{
		minCount: 1000, maxCount: 8000, countPerUnit: 50,
		minSizeFloor: 0.3, minSizePerUnit: 0.01,
		maxSizeFloor: 1.0, maxSizePerUnit: 0.05,
		thicknessPerUnit: 0.15,
	}
	debrisDiskSizing = sizing{
		minCount: 3000, maxCount: 12000, countPerUnit: 100,
		minSizeFloor: 0.15, minSizePerUnit: 0.003,
		maxSizeFloor: 0.6, maxSizePerUnit: 0.015,
		thicknessPerUnit: 0.08,
	}
)

// visualSpan converts [innerAU, outerAU] and returns the visual radii and width
func (s *SolarSystem) visualSpan(innerAU, outerAU float64) (inner, outer, width float64) {
	inner, outer = s.ToVisual(innerAU), s.ToVisual(outerAU)
	return inner, outer, outer - inner
}

// PlanetaryRing sizes a thin icy ring around a planet
func (s *SolarSystem) PlanetaryRing(innerAU, outerAU float64, name string) ring.Config {
	inner, outer, width := s.visualSpan(innerAU, outerAU)
	cfg := ring.NewConfig(
		ring.WithArchetype(ring.PlanetaryRing),
		ring.WithRadii(inner, outer),
		ring.WithMaxInclination(0.5),
		ring.WithMaxEccentricity(0.01),
		ring.WithAngularSpeed(0.004),
		ring.WithCentralBodyRadius(inner*0.5),
		ring.WithColors(ring.RGB(230, 220, 200), ring.RGB(180, 170, 160)),
		ring.WithName(name),
	)
	return planetaryRingSizing.apply(cfg, width)
}

// AsteroidBelt sizes a sparse rocky belt around a star
func (s *SolarSystem) AsteroidBelt(innerAU, outerAU float64, name string) ring.Config {
	inner, outer, width := s.visualSpan(innerAU, outerAU)
	cfg := ring.NewConfig(
		ring.WithArchetype(ring.AsteroidBelt),
		ring.WithRadii(inner, outer),
		ring.WithMaxInclination(15),
		ring.WithMaxEccentricity(0.08),
		ring.WithAngularSpeed(0.002),
		ring.WithCentralBodyRadius(s.ToVisual(0.005)),
		ring.WithColors(ring.RGB(140, 130, 120), ring.RGB(100, 90, 80)),
		ring.WithName(name),
	)
	return asteroidBeltSizing.apply(cfg, width)
}

// DebrisDisk sizes a dusty circumstellar disk
func (s *SolarSystem) DebrisDisk(innerAU, outerAU float64, name string) ring.Config {
	inner, outer, width := s.visualSpan(innerAU, outerAU)
	cfg := ring.NewConfig(
		ring.WithArchetype(ring.DebrisDisk),
		ring.WithRadii(inner, outer),
		ring.WithMaxInclination(8),
		ring.WithMaxEccentricity(0.05),
		ring.WithAngularSpeed(0.003),
		ring.WithCentralBodyRadius(s.ToVisual(0.01)),
		ring.WithColors(ring.RGB(200, 180, 150), ring.RGB(180, 140, 100)),
		ring.WithName(name),
	)
	return debrisDiskSizing.apply(cfg, width)
}

// AUToMeters converts astronomical units to meters
func AUToMeters(au float64) float64 { return au * parameter.AUInMeters }

// MetersToAU converts meters to astronomical units
func MetersToAU(m float64) float64 { return m / parameter.AUInMeters }
