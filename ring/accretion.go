package ring

import (
	"math"

	"github.com/lixenwraith/ringfield/parameter"
)

// AccretionDiskGenerator produces thin, fast, center-weighted disks with a temperature gradient
type AccretionDiskGenerator struct{}

func (AccretionDiskGenerator) Archetype() Archetype { return AccretionDisk }

func (AccretionDiskGenerator) Description() string {
	return "thin accretion disk, center-weighted density, pressure-boosted rotation, hot-to-cool color ramp"
}

func (AccretionDiskGenerator) Generate(cfg Config, rng Rand) []Element {
	l := limitsOf(cfg)
	elements := make([]Element, 0, l.count)

	for range l.count {
		// 1 - u^0.5 has linearly falling density, packing particles toward the inner edge
		t := 1 - math.Pow(rng.Float64(), parameter.AccretionRadialExponent)
		a := l.radius(l.inner + t*l.span)
		if l.span > 0 {
			t = (a - l.inner) / l.span
		} else {
			t = 0
		}

		speed := parameter.AccretionSpeedBoost * l.keplerSpeed(a) * jitter(rng, parameter.AccretionSpeedJitter)
		sigma := l.thickness * parameter.AccretionThicknessSigma * (1 + parameter.AccretionFlare*t)

		heat := math.Pow(t, parameter.AccretionGamma)
		color := cfg.PrimaryColor.Lerp(cfg.SecondaryColor, heat)
		color = color.Brighten(1 + parameter.AccretionBrightnessBoost*(1-t))

		el := Element{
			SemiMajorAxis:            a,
			Eccentricity:             rng.Float64() * l.maxEcc * parameter.AccretionEccentricityFactor,
			Inclination:              l.inclination(rng.NormFloat64() * l.maxIncl * parameter.AccretionInclinationFactor),
			ArgumentOfPeriapsis:      uniformAngle(rng),
			LongitudeOfAscendingNode: uniformAngle(rng),
			Angle:                    uniformAngle(rng),
			AngularSpeed:             speed,
			Size:                     l.size(l.minSize + rng.Float64()*l.sizeSpan),
			VerticalOffset:           rng.NormFloat64() * sigma,
			Color:                    color,
		}
		elements = append(elements, NewElement(el))
	}
	return elements
}
