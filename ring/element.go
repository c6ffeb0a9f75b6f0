package ring

import (
	"math"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/vmath"
)

// Element is one particle on a Keplerian orbit
// Orbital fields are fixed at creation; Angle and Position change on Advance
type Element struct {
	SemiMajorAxis            float64
	Eccentricity             float64
	Inclination              float64 // radians
	ArgumentOfPeriapsis      float64 // radians
	LongitudeOfAscendingNode float64 // radians
	AngularSpeed             float64 // radians per time unit
	Size                     float64
	VerticalOffset           float64
	Color                    Color

	// Angle is the true anomaly
	Angle float64
	// Position caches the placement for Angle
	Position vmath.Vec3F
}

// NewElement places el at its current Angle and returns it
func NewElement(el Element) Element {
	el.Position = el.PositionAt(el.Angle)
	return el
}

// OrbitalRadius returns the conic radius a(1-e²)/(1+e·cosθ)
// Orbits with e below the circular cutoff return a exactly
func OrbitalRadius(a, e, theta float64) float64 {
	if e < parameter.CircularEccentricity {
		return a
	}
	return a * (1 - e*e) / (1 + e*math.Cos(theta))
}

// RadiusAt returns the orbital radius at true anomaly theta
func (el *Element) RadiusAt(theta float64) float64 {
	return OrbitalRadius(el.SemiMajorAxis, el.Eccentricity, theta)
}

// PositionAt returns the 3D position at true anomaly theta
// In-plane point, rotate by periapsis, tilt by inclination, rotate by node, lift by vertical offset
func (el *Element) PositionAt(theta float64) vmath.Vec3F {
	r := el.RadiusAt(theta)
	sin, cos := math.Sincos(theta)
	p := vmath.Vec3F{X: r * cos, Y: r * sin}
	p = vmath.V3FRotateZ(p, el.ArgumentOfPeriapsis)
	p = vmath.V3FRotateX(p, el.Inclination)
	p = vmath.V3FRotateZ(p, el.LongitudeOfAscendingNode)
	p.Z += el.VerticalOffset
	return p
}

// Advance moves the element along its orbit by AngularSpeed*timeScale
// A zero timeScale leaves Angle and Position untouched
func (el *Element) Advance(timeScale float64) {
	if timeScale == 0 {
		return
	}
	el.Angle += el.AngularSpeed * timeScale
	el.Position = el.PositionAt(el.Angle)
}

func (el *Element) X() float64 { return el.Position.X }
func (el *Element) Y() float64 { return el.Position.Y }
func (el *Element) Z() float64 { return el.Position.Z }
