package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for orbital placement
// Z is the vertical axis, XY is the reference plane
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FPlanarMag returns distance from the vertical axis
func V3FPlanarMag(v Vec3F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V3FSpherical builds a vector from radius, azimuth theta and polar angle phi
// phi is measured from +Z, theta from +X toward +Y
func V3FSpherical(r, theta, phi float64) Vec3F {
	sinPhi := math.Sin(phi)
	return Vec3F{
		X: r * sinPhi * math.Cos(theta),
		Y: r * sinPhi * math.Sin(theta),
		Z: r * math.Cos(phi),
	}
}
