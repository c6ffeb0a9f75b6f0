package ring

import (
	"math"
	"testing"

	"github.com/lixenwraith/ringfield/parameter"
)

const sampleCount = 20000

// constRand returns v from every Float64 call and 0 from NormFloat64
type constRand struct{ v float64 }

func (r constRand) Float64() float64     { return r.v }
func (r constRand) NormFloat64() float64 { return 0 }

func generate(t *testing.T, g Generator, cfg Config) []Element {
	t.Helper()
	elements := g.Generate(cfg, NewRand(parameter.DefaultSeed))
	if len(elements) != cfg.ElementCount {
		t.Fatalf("Expected %d elements, got %d", cfg.ElementCount, len(elements))
	}
	return elements
}

// share returns the fraction of elements matching keep
func share(elements []Element, keep func(Element) bool) float64 {
	n := 0
	for _, el := range elements {
		if keep(el) {
			n++
		}
	}
	return float64(n) / float64(len(elements))
}

// rms returns the root mean square of f over elements
func rms(elements []Element, f func(Element) float64) float64 {
	if len(elements) == 0 {
		return 0
	}
	var sum float64
	for _, el := range elements {
		v := f(el)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(elements)))
}

func inRange(t *testing.T, what string, got, lo, hi float64) {
	t.Helper()
	if got < lo || got > hi {
		t.Errorf("Expected %s in [%v, %v], got %v", what, lo, hi, got)
	}
}

// redShare is R/(R+B) for colors blended between pure blue and pure red
func redShare(c Color) float64 {
	return c.R / (c.R + c.B)
}

var (
	pureBlue = RGB(0, 0, 255)
	pureRed  = RGB(255, 0, 0)
)

func TestDebrisSampling(t *testing.T) {
	cfg := NewConfig(WithArchetype(DebrisDisk), WithElementCount(sampleCount))
	elements := generate(t, DebrisDiskGenerator{}, cfg)
	sizeSpan := cfg.MaxSize - cfg.MinSize

	tests := []struct {
		name   string
		keep   func(Element) bool
		lo, hi float64
	}{
		// 60% drawn from the low band plus 40% * 0.3 of the full range landing there
		{"low-eccentricity share", func(el Element) bool {
			return el.Eccentricity < cfg.MaxEccentricity*parameter.DebrisCircularEccentricity
		}, 0.70, 0.74},
		{"dust share", func(el Element) bool {
			return el.Size <= cfg.MinSize+parameter.DebrisDustSizeCeiling*sizeSpan
		}, 0.78, 0.82},
		{"sizes between the modes", func(el Element) bool {
			f := (el.Size - cfg.MinSize) / sizeSpan
			return f > parameter.DebrisDustSizeCeiling+1e-9 && f < parameter.DebrisPlanetesimalSizeFloor-1e-9
		}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inRange(t, tt.name, share(elements, tt.keep), tt.lo, tt.hi)
		})
	}
}

func TestDebrisDensityWave(t *testing.T) {
	cfg := NewConfig(WithArchetype(DebrisDisk), WithRadii(20, 60), WithElementCount(1))
	span := cfg.OuterRadius - cfg.InnerRadius

	tests := []struct {
		name string
		u    float64
		wave float64 // sin(cycles * 2π * u)
	}{
		{"crest", 1.0 / 32, 1},
		{"node", 1.0 / 16, 0},
		{"trough", 3.0 / 32, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := DebrisDiskGenerator{}.Generate(cfg, constRand{tt.u})[0]
			want := cfg.InnerRadius + tt.u*span + parameter.DebrisWaveAmplitude*span*tt.wave
			if math.Abs(el.SemiMajorAxis-want) > 1e-9 {
				t.Errorf("Expected a=%v, got %v", want, el.SemiMajorAxis)
			}
		})
	}
}

func TestDustCloudDrift(t *testing.T) {
	cfg := NewConfig(WithArchetype(DustCloud), WithElementCount(sampleCount))
	elements := generate(t, DustCloudGenerator{}, cfg)

	lo := cfg.BaseAngularSpeed * parameter.CloudSpeedFactor * 0.5
	hi := cfg.BaseAngularSpeed * parameter.CloudSpeedFactor * 1.5
	for i, el := range elements {
		if w := math.Abs(el.AngularSpeed); w < lo-1e-15 || w > hi+1e-15 {
			t.Fatalf("[%d]: expected |ω| in [%v, %v], got %v", i, lo, hi, w)
		}
	}

	retrograde := share(elements, func(el Element) bool { return el.AngularSpeed < 0 })
	inRange(t, "retrograde share", retrograde, 0.48, 0.52)
}

func TestDustCloudInclinationSpread(t *testing.T) {
	cfg := NewConfig(WithArchetype(DustCloud), WithElementCount(sampleCount))
	elements := generate(t, DustCloudGenerator{}, cfg)
	iCap := cfg.MaxInclinationDeg * math.Pi / 180

	atCap := share(elements, func(el Element) bool { return math.Abs(el.Inclination) >= 0.99*iCap })
	if atCap > 0.01 {
		t.Errorf("Expected under 1%% of inclinations at the cap, got %.3f", atCap)
	}

	// |i|/cap = asin(|w|)/(π/2) for w uniform, mean 1 - 2/π
	var sum float64
	for _, el := range elements {
		sum += math.Abs(el.Inclination) / iCap
	}
	inRange(t, "mean |i|/cap", sum/float64(len(elements)), 0.34, 0.39)

	above := share(elements, func(el Element) bool { return el.Inclination > 0 })
	inRange(t, "positive inclination share", above, 0.48, 0.52)

	// A cap of 90° or more keeps the raw latitude
	full := NewConfig(WithArchetype(DustCloud), WithElementCount(2000), WithMaxInclination(90))
	var peak float64
	for _, el := range generate(t, DustCloudGenerator{}, full) {
		peak = math.Max(peak, math.Abs(el.Inclination))
	}
	inRange(t, "peak |i| with a 90° cap", peak, 1.4, math.Pi/2)
}

func TestDustCloudRadialProfile(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		lo, hi float64
	}{
		// half-Gaussian: sigma * sqrt(2/π), slightly pulled in by the outer clamp
		{"half-gaussian", nil, 0.29, 0.34},
		// u^0.5 has mean 2/3
		{"power law", []Option{WithRadialPower(0.5)}, 0.64, 0.69},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithArchetype(DustCloud), WithElementCount(sampleCount)}, tt.opts...)
			cfg := NewConfig(opts...)
			var sum float64
			for _, el := range generate(t, DustCloudGenerator{}, cfg) {
				sum += (el.SemiMajorAxis - cfg.InnerRadius) / cfg.RadialRange()
			}
			inRange(t, "mean radial fraction", sum/sampleCount, tt.lo, tt.hi)
		})
	}
}

func TestDustCloudFilaments(t *testing.T) {
	base := NewConfig(WithArchetype(DustCloud), WithElementCount(1), WithRadialPower(0.5))
	span := base.RadialRange()
	const strength = 0.6

	// Largest possible shift of the radius: |displacement| with the default anisotropy
	bound := span * parameter.NebulaDisplacement * strength * math.Sqrt(
		parameter.DefaultFilamentX*parameter.DefaultFilamentX+
			parameter.DefaultFilamentY*parameter.DefaultFilamentY+
			parameter.DefaultFilamentZ*parameter.DefaultFilamentZ)

	moved := 0
	for _, u := range []float64{0.1, 0.3, 0.45, 0.6, 0.85} {
		plain := DustCloudGenerator{}.Generate(base, constRand{u})[0]
		want := base.InnerRadius + span*math.Sqrt(u)
		if math.Abs(plain.SemiMajorAxis-want) > 1e-9 {
			t.Errorf("u=%v: expected undisplaced a=%v, got %v", u, want, plain.SemiMajorAxis)
		}

		cfg := base
		cfg.NoiseStrength = strength
		noisy := DustCloudGenerator{}.Generate(cfg, constRand{u})[0]
		if d := math.Abs(noisy.SemiMajorAxis - want); d > bound+1e-9 {
			t.Errorf("u=%v: expected radius shift within %v, got %v", u, bound, d)
		} else if d > 1e-9 {
			moved++
		}
		if noisy.SemiMajorAxis < cfg.InnerRadius || noisy.SemiMajorAxis > cfg.OuterRadius {
			t.Errorf("u=%v: expected a in [%v, %v], got %v", u, cfg.InnerRadius, cfg.OuterRadius, noisy.SemiMajorAxis)
		}
	}
	if moved == 0 {
		t.Error("Expected filament noise to displace some particles")
	}
}

func TestDustCloudGradients(t *testing.T) {
	base := NewConfig(
		WithArchetype(DustCloud),
		WithElementCount(2000),
		WithColors(pureBlue, pureRed),
	)

	t.Run("radial", func(t *testing.T) {
		cfg := base
		cfg.Gradient = GradientRadial
		for i, el := range generate(t, DustCloudGenerator{}, cfg) {
			want := (el.SemiMajorAxis - cfg.InnerRadius) / cfg.RadialRange()
			if got := redShare(el.Color); math.Abs(got-want) > 1e-6 {
				t.Fatalf("[%d]: expected red share %v at a=%v, got %v", i, want, el.SemiMajorAxis, got)
			}
		}
	})

	t.Run("noise", func(t *testing.T) {
		cfg := base
		cfg.Gradient = GradientNoise
		cfg.NoiseStrength = 0.4
		distinct := map[float64]bool{}
		for i, el := range generate(t, DustCloudGenerator{}, cfg) {
			if el.Color.A < parameter.CloudOpacityFloor || el.Color.A > 1 {
				t.Fatalf("[%d]: expected alpha in [%v, 1], got %v", i, parameter.CloudOpacityFloor, el.Color.A)
			}
			distinct[math.Round(el.Color.R*100)] = true
		}
		if len(distinct) < 10 {
			t.Errorf("Expected a varied noise gradient, got %d distinct levels", len(distinct))
		}
	})

	t.Run("plain blend unchanged", func(t *testing.T) {
		cfg := base
		for i, el := range generate(t, DustCloudGenerator{}, cfg) {
			if el.Color.G != 0 {
				t.Fatalf("[%d]: expected a plain blue-red blend, got %v", i, el.Color)
			}
		}
	})
}

func TestAccretionSampling(t *testing.T) {
	cfg := NewConfig(
		WithArchetype(AccretionDisk),
		WithElementCount(sampleCount),
		WithColors(pureBlue, pureRed),
	)
	elements := generate(t, AccretionDiskGenerator{}, cfg)
	span := cfg.RadialRange()
	fraction := func(el Element) float64 { return (el.SemiMajorAxis - cfg.InnerRadius) / span }

	// Density falls linearly with radius, three quarters sit in the inner half
	inner := share(elements, func(el Element) bool { return fraction(el) < 0.5 })
	inRange(t, "inner-half share", inner, 0.73, 0.77)

	// Hot primary at the inner edge, cool secondary outward
	for i, el := range elements {
		want := math.Pow(fraction(el), parameter.AccretionGamma)
		if got := redShare(el.Color); math.Abs(got-want) > 1e-6 {
			t.Fatalf("[%d]: expected heat %v at t=%v, got %v", i, want, fraction(el), got)
		}
	}

	// Vertical spread flares with radius
	var near, far []Element
	for _, el := range elements {
		switch f := fraction(el); {
		case f < 0.2:
			near = append(near, el)
		case f > 0.8:
			far = append(far, el)
		}
	}
	vertical := func(el Element) float64 { return el.VerticalOffset }
	if rNear, rFar := rms(near, vertical), rms(far, vertical); rFar < 1.8*rNear {
		t.Errorf("Expected outer vertical spread above 1.8x inner, got %v vs %v", rFar, rNear)
	}
}

func TestPlanetarySampling(t *testing.T) {
	cfg := NewConfig(WithArchetype(PlanetaryRing), WithElementCount(sampleCount))
	elements := generate(t, PlanetaryRingGenerator{}, cfg)
	iCap := cfg.MaxInclinationDeg * math.Pi / 180

	tests := []struct {
		name   string
		got    float64
		lo, hi float64
	}{
		{"inclination spread / cap", rms(elements, func(el Element) float64 { return el.Inclination }) / iCap, 0.09, 0.11},
		{"vertical spread / thickness", rms(elements, func(el Element) float64 { return el.VerticalOffset }) / cfg.Thickness, 0.09, 0.11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inRange(t, tt.name, tt.got, tt.lo, tt.hi)
		})
	}

	for i, el := range elements {
		if math.Abs(el.Inclination) > 0.6*iCap {
			t.Fatalf("[%d]: expected |i| well under the cap, got %v of %v", i, el.Inclination, iCap)
		}
	}
}

func TestBeltSampling(t *testing.T) {
	cfg := NewConfig(WithArchetype(AsteroidBelt), WithElementCount(sampleCount))
	elements := generate(t, AsteroidBeltGenerator{}, cfg)
	iCap := cfg.MaxInclinationDeg * math.Pi / 180

	// sigma is half the cap, so P(|N| > 2) lands on the clamp
	atCap := share(elements, func(el Element) bool { return math.Abs(el.Inclination) >= iCap-1e-12 })
	inRange(t, "clamped share", atCap, 0.035, 0.056)

	below := share(elements, func(el Element) bool { return el.Inclination < 0 })
	inRange(t, "negative inclination share", below, 0.48, 0.52)
}
