package parameter

// Builder defaults, applied by ring.NewConfig for any option left unset
const (
	DefaultInnerRadius       = 50.0
	DefaultOuterRadius       = 100.0
	DefaultElementCount      = 5000
	DefaultMinSize           = 0.5
	DefaultMaxSize           = 2.0
	DefaultThickness         = 5.0
	DefaultMaxInclinationDeg = 10.0
	DefaultMaxEccentricity   = 0.05
	DefaultBaseAngularSpeed  = 0.002
	DefaultCentralBodyRadius = 8.0
	DefaultDisplayName       = "Ring Field"
)

// DefaultSeed is the fixed seed used when the caller supplies none
// Reproducible, not random
const DefaultSeed uint64 = 42

// Orbital math guards
const (
	// CircularEccentricity is the cutoff below which r = a is used instead of the conic equation
	CircularEccentricity = 1e-10

	// MaxEccentricityCeiling keeps degenerate configs away from parabolic orbits
	MaxEccentricityCeiling = 0.99

	// MaxInclinationCeilingDeg is the largest meaningful inclination cap
	MaxInclinationCeilingDeg = 180.0
)

// Planetary Ring
const (
	// RingEccentricityFactor narrows the eccentricity cap, rings are near-circular
	RingEccentricityFactor = 0.05
	// RingInclinationFactor scales the Gaussian inclination spread against the cap
	RingInclinationFactor = 0.1
	// RingThicknessFactor scales the Gaussian vertical offset against thickness
	RingThicknessFactor = 0.1
)

// Asteroid Belt
const (
	// BeltInclinationSigma is the Gaussian sigma as a fraction of the inclination cap
	BeltInclinationSigma = 0.5
	// BeltThicknessSigma is the Gaussian sigma as a fraction of thickness
	BeltThicknessSigma = 0.5
	// BeltBrightnessJitter is the ± brightness variation applied to the rocky blend
	BeltBrightnessJitter = 0.15
)

// Debris Disk
const (
	// DebrisWaveAmplitude is the density wave amplitude as a fraction of the radial range
	DebrisWaveAmplitude = 0.05
	// DebrisWaveCycles is the number of density wave periods across the disk
	DebrisWaveCycles = 8.0
	// DebrisCircularShare is the fraction of particles on near-circular orbits
	DebrisCircularShare = 0.6
	// DebrisCircularEccentricity caps near-circular orbits as a fraction of the eccentricity cap
	DebrisCircularEccentricity = 0.3
	// DebrisInclinationSigma is the Gaussian sigma as a fraction of the inclination cap
	DebrisInclinationSigma = 0.4
	// DebrisSpeedJitter is the ± fractional jitter on Keplerian speed
	DebrisSpeedJitter = 0.1
	// DebrisThicknessSigma is the Gaussian sigma as a fraction of thickness
	DebrisThicknessSigma = 0.3
	// DebrisDustShare is the fraction of dust-scale particles, the rest are planetesimals
	DebrisDustShare = 0.8
	// DebrisDustSizeCeiling is the top of the dust size band as a fraction of the size range
	DebrisDustSizeCeiling = 0.3
	// DebrisPlanetesimalSizeFloor is the bottom of the planetesimal size band as a fraction of the size range
	DebrisPlanetesimalSizeFloor = 0.5
)

// Dust Cloud
const (
	// CloudRadialSigma is the half-Gaussian sigma as a fraction of the radial range
	CloudRadialSigma = 0.4
	// CloudEccentricityCap is the absolute eccentricity ceiling for cloud particles
	CloudEccentricityCap = 0.02
	// CloudSpeedFactor slows cloud drift against the base angular speed
	CloudSpeedFactor = 0.1
	// CloudThicknessSigma is the Gaussian sigma as a fraction of thickness
	CloudThicknessSigma = 0.3
	// CloudCoreSizeBoost grows particles near the core, fraction of the size range
	CloudCoreSizeBoost = 0.2
	// CloudBaseSizeShare is the size band used at the cloud edge, fraction of the size range
	CloudBaseSizeShare = 0.3
	// CloudOpacityBase/CoreBoost/Jitter build alpha = base + core*boost + U*jitter
	CloudOpacityBase      = 0.3
	CloudOpacityCoreBoost = 0.4
	CloudOpacityJitter    = 0.3
	// CloudOpacityFloor keeps the dimmest particle visible
	CloudOpacityFloor = 0.1
)

// Accretion Disk
const (
	// AccretionRadialExponent concentrates particles toward the center (density ∝ 1/r)
	AccretionRadialExponent = 0.5
	// AccretionEccentricityFactor narrows the eccentricity cap
	AccretionEccentricityFactor = 0.05
	// AccretionInclinationFactor tightens the inclination spread against the cap
	AccretionInclinationFactor = 0.1
	// AccretionSpeedBoost models pressure-enhanced rotation
	AccretionSpeedBoost = 2.0
	// AccretionSpeedJitter is the ± fractional jitter on rotation speed
	AccretionSpeedJitter = 0.05
	// AccretionThicknessSigma is the Gaussian sigma as a fraction of thickness at the inner edge
	AccretionThicknessSigma = 0.05
	// AccretionFlare widens the vertical sigma toward the outer edge: sigma *= 1 + flare*t
	AccretionFlare = 2.0
	// AccretionGamma shapes the hot-to-cool color ramp
	AccretionGamma = 0.7
	// AccretionBrightnessBoost brightens the hot end: 1 + boost*(1-t)
	AccretionBrightnessBoost = 0.5
)

// Nebula shaping, DustCloud only, active when a config sets a radial power, noise or gradient
const (
	// NebulaNoiseScale maps positions into noise space: scale = 0.8 / max(1, range*NebulaNoiseSpanFactor)
	NebulaNoiseScale      = 0.8
	NebulaNoiseSpanFactor = 0.01
	// NebulaDisplacement is the filament displacement at strength 1, fraction of the radial range
	NebulaDisplacement = 0.15
	// NebulaColorNoiseScale and NebulaOpacityNoiseScale sample the field for tint and alpha
	NebulaColorNoiseScale   = 0.5
	NebulaOpacityNoiseScale = 0.3
	// NebulaShadingOctaves is the octave count of tint and alpha sampling
	NebulaShadingOctaves = 2
	// NebulaCoreBrightness and NebulaCoreSaturation boost particles near the core
	NebulaCoreBrightness = 0.4
	NebulaCoreSaturation = 0.3
	// NebulaHueShiftDeg is the noise hue swing in degrees at strength 1
	NebulaHueShiftDeg = 10.0
	// NebulaLinearCoreBias pulls the linear gradient toward the primary color at the core
	NebulaLinearCoreBias = 0.3
	// NebulaOpacityNoiseFloor is the alpha multiplier at the noise minimum
	NebulaOpacityNoiseFloor = 0.7

	DefaultNoiseOctaves = 3
	MaxNoiseOctaves     = 8

	// DefaultFilamentX/Y/Z stretch displacement per axis when a config leaves anisotropy unset
	DefaultFilamentX = 1.0
	DefaultFilamentY = 0.7
	DefaultFilamentZ = 0.4
)
