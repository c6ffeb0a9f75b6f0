package ring

import (
	"math"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/vmath"
)

// DebrisDiskGenerator produces dusty disks with density waves and a bimodal population
type DebrisDiskGenerator struct{}

func (DebrisDiskGenerator) Archetype() Archetype { return DebrisDisk }

func (DebrisDiskGenerator) Description() string {
	return "debris disk with radial density waves, bimodal eccentricity and dust/planetesimal sizes"
}

func (DebrisDiskGenerator) Generate(cfg Config, rng Rand) []Element {
	l := limitsOf(cfg)
	elements := make([]Element, 0, l.count)

	for range l.count {
		u := rng.Float64()
		wave := parameter.DebrisWaveAmplitude * l.span * math.Sin(parameter.DebrisWaveCycles*vmath.TwoPi*u)
		a := l.radius(l.inner + u*l.span + wave)

		var ecc float64
		if rng.Float64() < parameter.DebrisCircularShare {
			ecc = rng.Float64() * l.maxEcc * parameter.DebrisCircularEccentricity
		} else {
			ecc = rng.Float64() * l.maxEcc
		}

		var size float64
		if rng.Float64() < parameter.DebrisDustShare {
			size = l.minSize + rng.Float64()*parameter.DebrisDustSizeCeiling*l.sizeSpan
		} else {
			floor := parameter.DebrisPlanetesimalSizeFloor
			size = l.minSize + (floor+(1-floor)*rng.Float64())*l.sizeSpan
		}
		size = l.size(size)

		el := Element{
			SemiMajorAxis:            a,
			Eccentricity:             ecc,
			Inclination:              l.inclination(rng.NormFloat64() * l.maxIncl * parameter.DebrisInclinationSigma),
			ArgumentOfPeriapsis:      uniformAngle(rng),
			LongitudeOfAscendingNode: uniformAngle(rng),
			Angle:                    uniformAngle(rng),
			AngularSpeed:             l.keplerSpeed(a) * jitter(rng, parameter.DebrisSpeedJitter),
			Size:                     size,
			VerticalOffset:           rng.NormFloat64() * l.thickness * parameter.DebrisThicknessSigma,
			Color:                    cfg.PrimaryColor.Lerp(cfg.SecondaryColor, vmath.InverseLerp(l.minSize, l.maxSize, size)),
		}
		elements = append(elements, NewElement(el))
	}
	return elements
}
