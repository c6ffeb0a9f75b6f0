package ring

import (
	"math"

	"github.com/lixenwraith/ringfield/parameter"
)

// Config describes one ring or disk instance
// Values are never mutated by the library; derivation helpers return copies
type Config struct {
	Archetype         Archetype `toml:"archetype" yaml:"archetype"`
	InnerRadius       float64   `toml:"inner_radius" yaml:"inner_radius"`
	OuterRadius       float64   `toml:"outer_radius" yaml:"outer_radius"`
	ElementCount      int       `toml:"element_count" yaml:"element_count"`
	MinSize           float64   `toml:"min_size" yaml:"min_size"`
	MaxSize           float64   `toml:"max_size" yaml:"max_size"`
	Thickness         float64   `toml:"thickness" yaml:"thickness"`
	MaxInclinationDeg float64   `toml:"max_inclination_deg" yaml:"max_inclination_deg"`
	MaxEccentricity   float64   `toml:"max_eccentricity" yaml:"max_eccentricity"`
	BaseAngularSpeed  float64   `toml:"base_angular_speed" yaml:"base_angular_speed"`
	CentralBodyRadius float64   `toml:"central_body_radius" yaml:"central_body_radius"`
	PrimaryColor      Color     `toml:"primary_color" yaml:"primary_color"`
	SecondaryColor    Color     `toml:"secondary_color" yaml:"secondary_color"`
	DisplayName       string    `toml:"name" yaml:"name"`

	// Nebula shaping, read by DustCloud only; the zero values keep the plain half-Gaussian cloud
	RadialPower        float64      `toml:"radial_power,omitempty" yaml:"radial_power,omitempty"`
	NoiseStrength      float64      `toml:"noise_strength,omitempty" yaml:"noise_strength,omitempty"`
	NoiseOctaves       int          `toml:"noise_octaves,omitempty" yaml:"noise_octaves,omitempty"`
	NoisePersistence   float64      `toml:"noise_persistence,omitempty" yaml:"noise_persistence,omitempty"`
	NoiseLacunarity    float64      `toml:"noise_lacunarity,omitempty" yaml:"noise_lacunarity,omitempty"`
	FilamentAnisotropy [3]float64   `toml:"filament_anisotropy,omitempty" yaml:"filament_anisotropy,omitempty"`
	Gradient           GradientMode `toml:"gradient,omitempty" yaml:"gradient,omitempty"`
}

// Option sets one Config field in NewConfig
type Option func(*Config)

// DefaultConfig returns the builder defaults
func DefaultConfig() Config {
	return Config{
		Archetype:         AsteroidBelt,
		InnerRadius:       parameter.DefaultInnerRadius,
		OuterRadius:       parameter.DefaultOuterRadius,
		ElementCount:      parameter.DefaultElementCount,
		MinSize:           parameter.DefaultMinSize,
		MaxSize:           parameter.DefaultMaxSize,
		Thickness:         parameter.DefaultThickness,
		MaxInclinationDeg: parameter.DefaultMaxInclinationDeg,
		MaxEccentricity:   parameter.DefaultMaxEccentricity,
		BaseAngularSpeed:  parameter.DefaultBaseAngularSpeed,
		CentralBodyRadius: parameter.DefaultCentralBodyRadius,
		PrimaryColor:      ColorLightGray,
		SecondaryColor:    ColorDarkGray,
		DisplayName:       parameter.DefaultDisplayName,
	}
}

// NewConfig applies opts over DefaultConfig
// No range validation happens here, generators clamp what they receive
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithArchetype(a Archetype) Option {
	return func(c *Config) { c.Archetype = a }
}

func WithRadii(inner, outer float64) Option {
	return func(c *Config) {
		c.InnerRadius = inner
		c.OuterRadius = outer
	}
}

func WithInnerRadius(r float64) Option {
	return func(c *Config) { c.InnerRadius = r }
}

func WithOuterRadius(r float64) Option {
	return func(c *Config) { c.OuterRadius = r }
}

func WithElementCount(n int) Option {
	return func(c *Config) { c.ElementCount = n }
}

func WithSizeRange(minSize, maxSize float64) Option {
	return func(c *Config) {
		c.MinSize = minSize
		c.MaxSize = maxSize
	}
}

func WithThickness(t float64) Option {
	return func(c *Config) { c.Thickness = t }
}

// WithMaxInclination sets the inclination cap in degrees
func WithMaxInclination(deg float64) Option {
	return func(c *Config) { c.MaxInclinationDeg = deg }
}

func WithMaxEccentricity(e float64) Option {
	return func(c *Config) { c.MaxEccentricity = e }
}

// WithAngularSpeed sets radians per simulation time unit at the inner radius
func WithAngularSpeed(speed float64) Option {
	return func(c *Config) { c.BaseAngularSpeed = speed }
}

func WithCentralBodyRadius(r float64) Option {
	return func(c *Config) { c.CentralBodyRadius = r }
}

func WithColors(primary, secondary Color) Option {
	return func(c *Config) {
		c.PrimaryColor = primary
		c.SecondaryColor = secondary
	}
}

func WithName(name string) Option {
	return func(c *Config) { c.DisplayName = name }
}

// WithRadialPower samples cloud radius as inner + range*u^power instead of the half-Gaussian
func WithRadialPower(power float64) Option {
	return func(c *Config) { c.RadialPower = power }
}

// WithNoise enables filament displacement; octaves <= 0 uses the default
func WithNoise(strength float64, octaves int) Option {
	return func(c *Config) {
		c.NoiseStrength = strength
		c.NoiseOctaves = octaves
	}
}

// WithNoiseShape sets octave amplitude falloff and frequency growth, 0 keeps the defaults
func WithNoiseShape(persistence, lacunarity float64) Option {
	return func(c *Config) {
		c.NoisePersistence = persistence
		c.NoiseLacunarity = lacunarity
	}
}

// WithFilamentAnisotropy stretches displacement per axis
func WithFilamentAnisotropy(x, y, z float64) Option {
	return func(c *Config) { c.FilamentAnisotropy = [3]float64{x, y, z} }
}

func WithGradient(g GradientMode) Option {
	return func(c *Config) { c.Gradient = g }
}

// Nebula reports whether any nebula shaping field is set
func (c Config) Nebula() bool {
	return c.RadialPower > 0 || c.NoiseStrength > 0 || c.Gradient != GradientRandom
}

// WithCount returns a copy with a different element count, used for level of detail
func (c Config) WithCount(n int) Config {
	c.ElementCount = n
	return c
}

// Scaled returns a copy with every length multiplied by k
// Angles, counts, speeds and colors are unchanged
func (c Config) Scaled(k float64) Config {
	c.InnerRadius *= k
	c.OuterRadius *= k
	c.MinSize *= k
	c.MaxSize *= k
	c.Thickness *= k
	c.CentralBodyRadius *= k
	return c
}

// RadialRange returns OuterRadius - InnerRadius, never negative
func (c Config) RadialRange() float64 {
	return math.Max(0, c.OuterRadius-c.InnerRadius)
}

// Degenerate reports the first input condition generators must defend against
func (c Config) Degenerate() (reason string, degenerate bool) {
	switch {
	case c.ElementCount <= 0:
		return "element count is not positive", true
	case c.InnerRadius >= c.OuterRadius:
		return "inner radius is not below outer radius", true
	case c.MinSize > c.MaxSize:
		return "size range is inverted", true
	case math.IsNaN(c.InnerRadius) || math.IsNaN(c.OuterRadius):
		return "radius is NaN", true
	}
	return "", false
}
