package parameter

// Solar system scale (AU to visual units)
const (
	// SolarBaseScale is visual units per AU at zoom 1
	SolarBaseScale = 50.0

	// SolarFitRadius is where the outermost orbit lands when fitting a system
	SolarFitRadius = 400.0

	// SolarLogStretch multiplies log10(1+10·au) in log-scale mode
	SolarLogStretch = 30.0

	// SolarParticleScale maps AU-relative particle size to visual size
	SolarParticleScale = 0.01
	SolarParticleMin   = 0.1
	SolarParticleMax   = 5.0

	MinZoom = 0.1
	MaxZoom = 100.0

	// AUInMeters is the IAU astronomical unit
	AUInMeters = 149_597_870_700.0
)

// Interstellar scale (light-years to visual units)
const (
	InterstellarParticleScale = 0.1
	InterstellarParticleMin   = 0.2
	InterstellarParticleMax   = 8.0

	// InterstellarSpeedFactor slows rotation at interstellar distances
	InterstellarSpeedFactor = 0.1
)
