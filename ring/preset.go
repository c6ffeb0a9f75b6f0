package ring

import (
	"fmt"
)

// Preset names in display order
const (
	PresetSaturnRing           = "Saturn Ring"
	PresetUranusRing           = "Uranus Ring"
	PresetMainAsteroidBelt     = "Main Asteroid Belt"
	PresetKuiperBelt           = "Kuiper Belt"
	PresetProtoplanetaryDisk   = "Protoplanetary Disk"
	PresetCollisionDebris      = "Collision Debris"
	PresetEmissionNebula       = "Emission Nebula"
	PresetDarkNebula           = "Dark Nebula"
	PresetBlackHoleAccretion   = "Black Hole Accretion"
	PresetNeutronStarAccretion = "Neutron Star Accretion"
)

// Extra nebula presets, listed by NebulaPresetNames but not PresetNames
const (
	PresetPlanetaryNebula  = "Planetary Nebula"
	PresetSupernovaRemnant = "Supernova Remnant"
	PresetReflectionNebula = "Reflection Nebula"
)

var presetNames = []string{
	PresetSaturnRing,
	PresetUranusRing,
	PresetMainAsteroidBelt,
	PresetKuiperBelt,
	PresetProtoplanetaryDisk,
	PresetCollisionDebris,
	PresetEmissionNebula,
	PresetDarkNebula,
	PresetBlackHoleAccretion,
	PresetNeutronStarAccretion,
}

var extraNebulaNames = []string{
	PresetPlanetaryNebula,
	PresetSupernovaRemnant,
	PresetReflectionNebula,
}

var presets = map[string]Config{
	// Thin, dense, icy
	PresetSaturnRing: {
		Archetype: PlanetaryRing, InnerRadius: 15, OuterRadius: 45, ElementCount: 10000,
		MinSize: 0.2, MaxSize: 0.8, Thickness: 0.1,
		MaxInclinationDeg: 0.5, MaxEccentricity: 0.01, BaseAngularSpeed: 0.004, CentralBodyRadius: 10,
		PrimaryColor: RGB(230, 220, 200), SecondaryColor: RGB(180, 170, 160),
		DisplayName: "Saturn-like Ring",
	},
	// Thin, dark, narrow
	PresetUranusRing: {
		Archetype: PlanetaryRing, InnerRadius: 20, OuterRadius: 35, ElementCount: 6000,
		MinSize: 0.15, MaxSize: 0.5, Thickness: 0.05,
		MaxInclinationDeg: 0.3, MaxEccentricity: 0.008, BaseAngularSpeed: 0.003, CentralBodyRadius: 8,
		PrimaryColor: RGB(80, 80, 90), SecondaryColor: RGB(50, 50, 60),
		DisplayName: "Uranus-like Ring",
	},
	// Thick, sparse, rocky
	PresetMainAsteroidBelt: {
		Archetype: AsteroidBelt, InnerRadius: 95, OuterRadius: 105, ElementCount: 5000,
		MinSize: 0.9, MaxSize: 2.6, Thickness: 8,
		MaxInclinationDeg: 12, MaxEccentricity: 0.06, BaseAngularSpeed: 0.002, CentralBodyRadius: 8,
		PrimaryColor: RGB(140, 130, 120), SecondaryColor: RGB(100, 90, 80),
		DisplayName: "Asteroid Belt",
	},
	// Wide, sparse, icy, slow
	PresetKuiperBelt: {
		Archetype: AsteroidBelt, InnerRadius: 150, OuterRadius: 250, ElementCount: 3000,
		MinSize: 1.0, MaxSize: 3.5, Thickness: 15,
		MaxInclinationDeg: 20, MaxEccentricity: 0.1, BaseAngularSpeed: 0.0008, CentralBodyRadius: 5,
		PrimaryColor: RGB(180, 190, 200), SecondaryColor: RGB(140, 140, 150),
		DisplayName: "Kuiper Belt",
	},
	PresetProtoplanetaryDisk: {
		Archetype: DebrisDisk, InnerRadius: 10, OuterRadius: 80, ElementCount: 8000,
		MinSize: 0.3, MaxSize: 1.5, Thickness: 3,
		MaxInclinationDeg: 5, MaxEccentricity: 0.04, BaseAngularSpeed: 0.003, CentralBodyRadius: 6,
		PrimaryColor: RGB(200, 180, 150), SecondaryColor: RGB(180, 140, 100),
		DisplayName: "Protoplanetary Disk",
	},
	PresetCollisionDebris: {
		Archetype: DebrisDisk, InnerRadius: 20, OuterRadius: 50, ElementCount: 6000,
		MinSize: 0.2, MaxSize: 2.0, Thickness: 5,
		MaxInclinationDeg: 8, MaxEccentricity: 0.08, BaseAngularSpeed: 0.0025, CentralBodyRadius: 7,
		PrimaryColor: RGB(160, 150, 140), SecondaryColor: RGB(120, 100, 90),
		DisplayName: "Collision Debris",
	},
	// Hydrogen-alpha pink to oxygen cyan, full 3D
	PresetEmissionNebula: {
		Archetype: DustCloud, InnerRadius: 5, OuterRadius: 100, ElementCount: 8000,
		MinSize: 0.5, MaxSize: 2.0, Thickness: 60,
		MaxInclinationDeg: 90, MaxEccentricity: 0.02, BaseAngularSpeed: 0.0003, CentralBodyRadius: 4,
		PrimaryColor: RGB(255, 100, 150), SecondaryColor: RGB(100, 200, 255),
		DisplayName: "Emission Nebula",
		RadialPower: 0.4, NoiseStrength: 0.4, NoiseOctaves: 3, Gradient: GradientLinear,
	},
	PresetDarkNebula: {
		Archetype: DustCloud, InnerRadius: 10, OuterRadius: 80, ElementCount: 5000,
		MinSize: 0.8, MaxSize: 2.5, Thickness: 50,
		MaxInclinationDeg: 90, MaxEccentricity: 0.02, BaseAngularSpeed: 0.0002, CentralBodyRadius: 3,
		PrimaryColor: RGB(40, 35, 30), SecondaryColor: RGB(20, 18, 15),
		DisplayName: "Dark Nebula",
		RadialPower: 0.5, NoiseStrength: 0.3, NoiseOctaves: 3, Gradient: GradientLinear,
	},
	// Thin shell, teal core to violet rim
	PresetPlanetaryNebula: {
		Archetype: DustCloud, InnerRadius: 15, OuterRadius: 50, ElementCount: 8000,
		MinSize: 0.3, MaxSize: 1.2, Thickness: 40,
		MaxInclinationDeg: 90, MaxEccentricity: 0.01, BaseAngularSpeed: 0.0003, CentralBodyRadius: 2,
		PrimaryColor: RGB(100, 255, 200), SecondaryColor: RGB(200, 100, 255),
		DisplayName: "Planetary Nebula",
		RadialPower: 0.7, NoiseStrength: 0.25, NoiseOctaves: 3, Gradient: GradientLinear,
	},
	// Strongly filamented expanding shell
	PresetSupernovaRemnant: {
		Archetype: DustCloud, InnerRadius: 20, OuterRadius: 80, ElementCount: 10000,
		MinSize: 0.4, MaxSize: 1.8, Thickness: 60,
		MaxInclinationDeg: 90, MaxEccentricity: 0.03, BaseAngularSpeed: 0.0004, CentralBodyRadius: 1,
		PrimaryColor: RGB(255, 150, 100), SecondaryColor: RGB(255, 220, 100),
		DisplayName: "Supernova Remnant",
		RadialPower: 0.65, NoiseStrength: 0.6, NoiseOctaves: 4, Gradient: GradientLinear,
	},
	// Soft blue scattered starlight
	PresetReflectionNebula: {
		Archetype: DustCloud, InnerRadius: 5, OuterRadius: 60, ElementCount: 6000,
		MinSize: 0.3, MaxSize: 1.5, Thickness: 40,
		MaxInclinationDeg: 90, MaxEccentricity: 0.02, BaseAngularSpeed: 0.00015, CentralBodyRadius: 3,
		PrimaryColor: RGB(100, 150, 255), SecondaryColor: RGB(150, 180, 255),
		DisplayName: "Reflection Nebula",
		RadialPower: 0.35, NoiseStrength: 0.2, NoiseOctaves: 2, Gradient: GradientLinear,
	},
	// Hot blue-white inner edge, cooler orange outer edge
	PresetBlackHoleAccretion: {
		Archetype: AccretionDisk, InnerRadius: 8, OuterRadius: 50, ElementCount: 10000,
		MinSize: 0.2, MaxSize: 0.6, Thickness: 0.5,
		MaxInclinationDeg: 1, MaxEccentricity: 0.01, BaseAngularSpeed: 0.008, CentralBodyRadius: 5,
		PrimaryColor: RGB(200, 220, 255), SecondaryColor: RGB(255, 150, 50),
		DisplayName: "Black Hole Accretion Disk",
	},
	PresetNeutronStarAccretion: {
		Archetype: AccretionDisk, InnerRadius: 3, OuterRadius: 25, ElementCount: 8000,
		MinSize: 0.15, MaxSize: 0.4, Thickness: 0.3,
		MaxInclinationDeg: 0.5, MaxEccentricity: 0.005, BaseAngularSpeed: 0.012, CentralBodyRadius: 2,
		PrimaryColor: RGB(220, 240, 255), SecondaryColor: RGB(255, 200, 100),
		DisplayName: "Neutron Star Accretion",
	},
}

// Preset returns the named configuration
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return cfg, nil
}

// PresetNames returns the built-in preset names in display order
func PresetNames() []string {
	return append([]string(nil), presetNames...)
}

// NebulaPresetNames returns every dust cloud preset, the built-in nebulae first
func NebulaPresetNames() []string {
	return append(PresetsFor(DustCloud), extraNebulaNames...)
}

// AllPresetNames returns PresetNames followed by the extra nebulae
func AllPresetNames() []string {
	return append(PresetNames(), extraNebulaNames...)
}

// PresetsFor returns the names of presets using archetype a
func PresetsFor(a Archetype) []string {
	var names []string
	for _, name := range presetNames {
		if presets[name].Archetype == a {
			names = append(names, name)
		}
	}
	return names
}
