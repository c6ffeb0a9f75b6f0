package ring

import (
	"fmt"
	"strings"
)

// Archetype is the closed set of ring and disk categories
type Archetype uint8

const (
	PlanetaryRing Archetype = iota
	AsteroidBelt
	DebrisDisk
	DustCloud
	AccretionDisk

	archetypeCount
)

var archetypeLabels = [archetypeCount]string{
	PlanetaryRing: "Planetary Ring",
	AsteroidBelt:  "Asteroid Belt",
	DebrisDisk:    "Debris Disk",
	DustCloud:     "Dust Cloud",
	AccretionDisk: "Accretion Disk",
}

var archetypeKeys = [archetypeCount]string{
	PlanetaryRing: "planetary_ring",
	AsteroidBelt:  "asteroid_belt",
	DebrisDisk:    "debris_disk",
	DustCloud:     "dust_cloud",
	AccretionDisk: "accretion_disk",
}

// Archetypes returns every archetype in declaration order
func Archetypes() []Archetype {
	all := make([]Archetype, 0, archetypeCount)
	for a := Archetype(0); a < archetypeCount; a++ {
		all = append(all, a)
	}
	return all
}

// Valid reports whether a is a member of the closed set
func (a Archetype) Valid() bool {
	return a < archetypeCount
}

// String returns the human-readable label
func (a Archetype) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Archetype(%d)", uint8(a))
	}
	return archetypeLabels[a]
}

// Key returns the stable token used in catalog files
func (a Archetype) Key() string {
	if !a.Valid() {
		return fmt.Sprintf("archetype_%d", uint8(a))
	}
	return archetypeKeys[a]
}

// ParseArchetype accepts a label or key, case-insensitive
func ParseArchetype(s string) (Archetype, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for a := Archetype(0); a < archetypeCount; a++ {
		if archetypeKeys[a] == norm {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, s)
}

func (a Archetype) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownArchetype, uint8(a))
	}
	return []byte(a.Key()), nil
}

func (a *Archetype) UnmarshalText(text []byte) error {
	parsed, err := ParseArchetype(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
