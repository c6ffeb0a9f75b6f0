package ring

import (
	"github.com/lixenwraith/ringfield/parameter"
)

// PlanetaryRingGenerator produces thin, flat, near-circular rings
type PlanetaryRingGenerator struct{}

func (PlanetaryRingGenerator) Archetype() Archetype { return PlanetaryRing }

func (PlanetaryRingGenerator) Description() string {
	return "thin flat ring, uniform radial density, near-circular Keplerian orbits"
}

func (PlanetaryRingGenerator) Generate(cfg Config, rng Rand) []Element {
	l := limitsOf(cfg)
	elements := make([]Element, 0, l.count)

	for range l.count {
		a := l.radius(l.inner + rng.Float64()*l.span)
		el := Element{
			SemiMajorAxis:            a,
			Eccentricity:             rng.Float64() * l.maxEcc * parameter.RingEccentricityFactor,
			Inclination:              l.inclination(rng.NormFloat64() * l.maxIncl * parameter.RingInclinationFactor),
			ArgumentOfPeriapsis:      uniformAngle(rng),
			LongitudeOfAscendingNode: uniformAngle(rng),
			Angle:                    uniformAngle(rng),
			AngularSpeed:             l.keplerSpeed(a),
			Size:                     l.size(l.minSize + rng.Float64()*l.sizeSpan),
			VerticalOffset:           rng.NormFloat64() * l.thickness * parameter.RingThicknessFactor,
			Color:                    cfg.PrimaryColor.Lerp(cfg.SecondaryColor, rng.Float64()),
		}
		elements = append(elements, NewElement(el))
	}
	return elements
}
