package vmath

import (
	"math"
)

// Noise defaults and clamps for layered sampling
const (
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.2

	minPersistence = 0.1
	maxPersistence = 1.0
	minLacunarity  = 1.0
	maxLacunarity  = 4.0
)

// Filament displacement layers: coarse layered noise plus fine ridged detail
const (
	filamentCoarseScale   = 0.3
	filamentCoarseOctaves = 2
	filamentCoarseWeight  = 0.7
	filamentFineScale     = 1.5
	filamentFineWeight    = 0.3
	// filamentAxisOffset decorrelates the Y and Z channels from X
	filamentAxisOffset = 1000.0
)

// Noise is a seeded 3D value-noise field, Sample returns [-1, 1]
// A zero Noise is usable with seed 0 and the default shape
type Noise struct {
	seed        uint64
	persistence float64
	lacunarity  float64
}

// NewNoise builds a field; persistence and lacunarity of 0 select the defaults, others are clamped
func NewNoise(seed uint64, persistence, lacunarity float64) *Noise {
	if persistence == 0 {
		persistence = DefaultPersistence
	}
	if lacunarity == 0 {
		lacunarity = DefaultLacunarity
	}
	return &Noise{
		seed:        seed,
		persistence: Clamp(persistence, minPersistence, maxPersistence),
		lacunarity:  Clamp(lacunarity, minLacunarity, maxLacunarity),
	}
}

func (n *Noise) shape() (persistence, lacunarity float64) {
	if n.persistence == 0 || n.lacunarity == 0 {
		return DefaultPersistence, DefaultLacunarity
	}
	return n.persistence, n.lacunarity
}

// lattice hashes an integer corner to [-1, 1]
func (n *Noise) lattice(x, y, z int64) float64 {
	h := n.seed ^ uint64(x)*0x9e3779b97f4a7c15 ^ uint64(y)*0xc2b2ae3d27d4eb4f ^ uint64(z)*0x165667b19e3779f9
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return float64(h>>11)/(1<<53)*2 - 1
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Sample interpolates the eight surrounding lattice values, continuous in p
func (n *Noise) Sample(p Vec3F) float64 {
	fx, fy, fz := math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)
	x, y, z := int64(fx), int64(fy), int64(fz)
	tx, ty, tz := smoothstep(p.X-fx), smoothstep(p.Y-fy), smoothstep(p.Z-fz)

	near := Lerp(
		Lerp(n.lattice(x, y, z), n.lattice(x+1, y, z), tx),
		Lerp(n.lattice(x, y+1, z), n.lattice(x+1, y+1, z), tx),
		ty,
	)
	far := Lerp(
		Lerp(n.lattice(x, y, z+1), n.lattice(x+1, y, z+1), tx),
		Lerp(n.lattice(x, y+1, z+1), n.lattice(x+1, y+1, z+1), tx),
		ty,
	)
	return Lerp(near, far, tz)
}

// Layered sums octaves of Sample, normalized back to [-1, 1]
func (n *Noise) Layered(p Vec3F, octaves int) float64 {
	persistence, lacunarity := n.shape()
	octaves = max(octaves, 1)

	var sum, norm float64
	amp, freq := 1.0, 1.0
	for range octaves {
		sum += n.Sample(V3FScale(p, freq)) * amp
		norm += amp
		amp *= persistence
		freq *= lacunarity
	}
	return sum / norm
}

// Ridged folds each octave into sharp crests, result in [0, 1]
// Each octave is weighted by the previous one so ridges stay connected
func (n *Noise) Ridged(p Vec3F, octaves int) float64 {
	persistence, lacunarity := n.shape()
	octaves = max(octaves, 1)

	var sum, norm float64
	amp, freq, weight := 1.0, 1.0, 1.0
	for range octaves {
		signal := 1 - math.Abs(n.Sample(V3FScale(p, freq)))
		signal *= signal * weight
		weight = Clamp01(signal * 2)

		sum += signal * amp
		norm += amp
		amp *= persistence
		freq *= lacunarity
	}
	return sum / norm
}

// filament is one displacement channel in [-1, 1]
func (n *Noise) filament(p Vec3F, octaves int) float64 {
	coarse := n.Layered(V3FScale(p, filamentCoarseScale), filamentCoarseOctaves)
	fine := n.Ridged(V3FScale(p, filamentFineScale), octaves)
	return coarse*filamentCoarseWeight + (2*fine-1)*filamentFineWeight
}

// Filament returns a displacement for p with per-axis magnitude up to strength*aniso
func (n *Noise) Filament(p Vec3F, octaves int, strength float64, aniso Vec3F) Vec3F {
	ox := Vec3F{filamentAxisOffset, filamentAxisOffset, filamentAxisOffset}
	return Vec3F{
		X: n.filament(p, octaves) * strength * aniso.X,
		Y: n.filament(V3FAdd(p, ox), octaves) * strength * aniso.Y,
		Z: n.filament(V3FAdd(p, V3FScale(ox, 2)), octaves) * strength * aniso.Z,
	}
}
