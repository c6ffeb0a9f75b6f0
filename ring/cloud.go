package ring

import (
	"math"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/vmath"
)

// DustCloudGenerator produces diffuse, roughly spherical clouds with slow turbulent drift
// Configs with nebula shaping get a power-law falloff, filament displacement and gradient coloring
type DustCloudGenerator struct{}

func (DustCloudGenerator) Archetype() Archetype { return DustCloud }

func (DustCloudGenerator) Description() string {
	return "3D dust cloud, half-Gaussian radial falloff, isotropic directions, slow turbulent drift"
}

// nebula holds the per-population shaping state
type nebula struct {
	power    float64
	strength float64
	octaves  int
	gradient GradientMode
	scale    float64 // world to noise space
	displace float64 // world units at filament value 1
	aniso    vmath.Vec3F
	noise    *vmath.Noise
}

// nebulaOf derives shaping from cfg, drawing the noise seed from rng only when a field is needed
func nebulaOf(cfg Config, l limits, rng Rand) nebula {
	n := nebula{
		power:    finiteOr(cfg.RadialPower, 0),
		strength: math.Max(0, finiteOr(cfg.NoiseStrength, 0)),
		octaves:  cfg.NoiseOctaves,
		gradient: cfg.Gradient,
		scale:    parameter.NebulaNoiseScale / math.Max(1, l.span*parameter.NebulaNoiseSpanFactor),
	}
	if n.octaves <= 0 {
		n.octaves = parameter.DefaultNoiseOctaves
	}
	n.octaves = min(n.octaves, parameter.MaxNoiseOctaves)
	n.displace = l.span * parameter.NebulaDisplacement * n.strength

	a := cfg.FilamentAnisotropy
	if a == ([3]float64{}) {
		a = [3]float64{parameter.DefaultFilamentX, parameter.DefaultFilamentY, parameter.DefaultFilamentZ}
	}
	n.aniso = vmath.Vec3F{X: a[0], Y: a[1], Z: a[2]}

	if n.strength > 0 || n.gradient == GradientNoise {
		seed := uint64(rng.Float64() * (1 << 53))
		n.noise = vmath.NewNoise(seed, cfg.NoisePersistence, cfg.NoiseLacunarity)
	}
	return n
}

// radius draws the radial distance before displacement
func (n *nebula) radius(l limits, rng Rand) float64 {
	if n.power > 0 {
		return l.radius(l.inner + l.span*math.Pow(rng.Float64(), n.power))
	}
	return l.radius(l.inner + math.Abs(rng.NormFloat64())*parameter.CloudRadialSigma*l.span)
}

// field samples layered noise at world position p, result in [0, 1]
func (n *nebula) field(p vmath.Vec3F, freq float64) float64 {
	v := n.noise.Layered(vmath.V3FScale(p, n.scale*freq), parameter.NebulaShadingOctaves)
	return (v + 1) / 2
}

// blend picks the position between primary and secondary color
func (n *nebula) blend(p vmath.Vec3F, core float64, rng Rand) float64 {
	switch n.gradient {
	case GradientLinear:
		return rng.Float64() * (1 - core*parameter.NebulaLinearCoreBias)
	case GradientRadial:
		return 1 - core
	case GradientNoise:
		return n.field(p, parameter.NebulaColorNoiseScale)
	default:
		return rng.Float64()
	}
}

func (DustCloudGenerator) Generate(cfg Config, rng Rand) []Element {
	l := limitsOf(cfg)
	elements := make([]Element, 0, l.count)
	eccCap := math.Min(parameter.CloudEccentricityCap, l.maxEcc)
	neb := nebulaOf(cfg, l, rng)
	shaped := cfg.Nebula()

	// Polar offset from the equator maps onto [-cap, cap] proportionally
	inclScale := math.Min(l.maxIncl, vmath.HalfPi) / vmath.HalfPi

	for range l.count {
		r := neb.radius(l, rng)

		// Uniform on the sphere: azimuth uniform, polar angle from acos(2u-1)
		azimuth := uniformAngle(rng)
		polar := math.Acos(2*rng.Float64() - 1)
		p := vmath.V3FSpherical(r, azimuth, polar)

		if neb.strength > 0 {
			d := neb.noise.Filament(vmath.V3FScale(p, neb.scale), neb.octaves, neb.displace, neb.aniso)
			p = vmath.V3FAdd(p, d)
			r = l.radius(vmath.V3FMag(p))
			azimuth = vmath.WrapAngle(math.Atan2(p.Y, p.X))
			polar = math.Atan2(vmath.V3FPlanarMag(p), p.Z)
		}

		speed := l.baseSpeed * parameter.CloudSpeedFactor * (0.5 + rng.Float64())
		speed *= randomSign(rng)

		core := l.coreFactor(r)
		sizeShare := parameter.CloudBaseSizeShare + parameter.CloudCoreSizeBoost*core
		size := l.size(l.minSize + rng.Float64()*l.sizeSpan*sizeShare)

		opacity := parameter.CloudOpacityBase + core*parameter.CloudOpacityCoreBoost +
			rng.Float64()*parameter.CloudOpacityJitter
		color := cfg.PrimaryColor.Lerp(cfg.SecondaryColor, neb.blend(p, core, rng))

		if shaped {
			color = color.
				Brighten(1 + core*parameter.NebulaCoreBrightness).
				Saturate(1 + core*parameter.NebulaCoreSaturation)
		}
		if neb.strength > 0 {
			tint := 2*neb.field(p, parameter.NebulaColorNoiseScale) - 1
			color = color.ShiftHue(tint * parameter.NebulaHueShiftDeg * neb.strength)
			opacity *= parameter.NebulaOpacityNoiseFloor +
				(1-parameter.NebulaOpacityNoiseFloor)*neb.field(p, parameter.NebulaOpacityNoiseScale)
		}
		opacity = vmath.Clamp(opacity, parameter.CloudOpacityFloor, 1)

		el := Element{
			SemiMajorAxis:            r,
			Eccentricity:             rng.Float64() * eccCap,
			Inclination:              l.inclination((polar - vmath.HalfPi) * inclScale),
			ArgumentOfPeriapsis:      uniformAngle(rng),
			LongitudeOfAscendingNode: azimuth,
			Angle:                    uniformAngle(rng),
			AngularSpeed:             speed,
			Size:                     size,
			VerticalOffset:           rng.NormFloat64() * l.thickness * parameter.CloudThicknessSigma,
			Color:                    color.WithAlpha(opacity),
		}
		elements = append(elements, NewElement(el))
	}
	return elements
}
