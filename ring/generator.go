package ring

import (
	"math"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/vmath"
)

// Generator samples a population for one archetype
// Same Config and same Rand state produce identical output
type Generator interface {
	Generate(cfg Config, rng Rand) []Element
	Archetype() Archetype
	Description() string
}

// limits is the clamped view of a Config shared by all generators
// Degenerate inputs collapse to zero-width ranges instead of failing
type limits struct {
	count     int
	inner     float64
	outer     float64
	span      float64
	minSize   float64
	maxSize   float64
	sizeSpan  float64
	maxEcc    float64
	maxIncl   float64 // radians
	thickness float64
	baseSpeed float64
}

func limitsOf(cfg Config) limits {
	l := limits{
		count:     max(cfg.ElementCount, 0),
		inner:     finiteOr(math.Max(cfg.InnerRadius, 0), 0),
		thickness: finiteOr(math.Max(cfg.Thickness, 0), 0),
		baseSpeed: finiteOr(cfg.BaseAngularSpeed, 0),
	}
	l.outer = finiteOr(math.Max(cfg.OuterRadius, l.inner), l.inner)
	l.span = l.outer - l.inner

	l.minSize, l.maxSize = cfg.MinSize, cfg.MaxSize
	if l.minSize > l.maxSize {
		l.minSize, l.maxSize = l.maxSize, l.minSize
	}
	l.sizeSpan = l.maxSize - l.minSize

	l.maxEcc = vmath.Clamp(finiteOr(cfg.MaxEccentricity, 0), 0, parameter.MaxEccentricityCeiling)
	l.maxIncl = vmath.Clamp(finiteOr(cfg.MaxInclinationDeg, 0), 0, parameter.MaxInclinationCeilingDeg) * vmath.DegToRad
	return l
}

func finiteOr(x, fallback float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fallback
	}
	return x
}

// radius clamps a sampled semi-major axis into [inner, outer]
func (l *limits) radius(a float64) float64 {
	return vmath.Clamp(a, l.inner, l.outer)
}

// size clamps a sampled size into [minSize, maxSize]
func (l *limits) size(s float64) float64 {
	return vmath.Clamp(s, l.minSize, l.maxSize)
}

// inclination clamps a signed inclination to ±maxIncl
func (l *limits) inclination(i float64) float64 {
	return vmath.Clamp(i, -l.maxIncl, l.maxIncl)
}

// keplerSpeed scales the base speed by sqrt(inner/a), inner particles orbit faster
func (l *limits) keplerSpeed(a float64) float64 {
	if l.inner <= 0 || a <= 0 {
		return l.baseSpeed
	}
	return l.baseSpeed * math.Sqrt(l.inner/a)
}

// coreFactor is 1 at the inner edge and 0 at the outer edge
func (l *limits) coreFactor(r float64) float64 {
	if l.span <= 0 {
		return 1
	}
	return vmath.Clamp01(1 - (r-l.inner)/l.span)
}

func uniformAngle(rng Rand) float64 {
	return rng.Float64() * vmath.TwoPi
}

// jitter returns 1 ± frac, uniform
func jitter(rng Rand, frac float64) float64 {
	return 1 + (2*rng.Float64()-1)*frac
}

// randomSign returns -1 or 1 with equal probability
func randomSign(rng Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
