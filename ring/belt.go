package ring

import (
	"math"

	"github.com/lixenwraith/ringfield/parameter"
)

// AsteroidBeltGenerator produces thick belts of rocky bodies on tilted, eccentric orbits
type AsteroidBeltGenerator struct{}

func (AsteroidBeltGenerator) Archetype() Archetype { return AsteroidBelt }

func (AsteroidBeltGenerator) Description() string {
	return "thick belt, Gaussian inclinations up to the cap, eccentric Keplerian orbits"
}

func (AsteroidBeltGenerator) Generate(cfg Config, rng Rand) []Element {
	l := limitsOf(cfg)
	elements := make([]Element, 0, l.count)

	for range l.count {
		a := l.radius(l.inner + rng.Float64()*l.span)
		incl := math.Abs(rng.NormFloat64()) * l.maxIncl * parameter.BeltInclinationSigma
		incl = l.inclination(incl * randomSign(rng))

		color := cfg.PrimaryColor.Lerp(cfg.SecondaryColor, rng.Float64())
		color = color.Brighten(jitter(rng, parameter.BeltBrightnessJitter))

		el := Element{
			SemiMajorAxis:            a,
			Eccentricity:             rng.Float64() * l.maxEcc,
			Inclination:              incl,
			ArgumentOfPeriapsis:      uniformAngle(rng),
			LongitudeOfAscendingNode: uniformAngle(rng),
			Angle:                    uniformAngle(rng),
			AngularSpeed:             l.keplerSpeed(a),
			Size:                     l.size(l.minSize + rng.Float64()*l.sizeSpan),
			VerticalOffset:           rng.NormFloat64() * l.thickness * parameter.BeltThicknessSigma,
			Color:                    color,
		}
		elements = append(elements, NewElement(el))
	}
	return elements
}
