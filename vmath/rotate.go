package vmath

import (
	"math"
)

// V3FRotateZ rotates v about the vertical axis by angle radians (counter-clockwise seen from +Z)
func V3FRotateZ(v Vec3F, angle float64) Vec3F {
	sin, cos := math.Sincos(angle)
	return Vec3F{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// V3FRotateX rotates v about the X axis by angle radians
// Tilts the XY plane, moving +Y toward +Z
func V3FRotateX(v Vec3F, angle float64) Vec3F {
	sin, cos := math.Sincos(angle)
	return Vec3F{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}
