package vmath

import (
	"math"
)

const (
	TwoPi    = 2 * math.Pi
	HalfPi   = math.Pi / 2
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// Clamp limits x to [lo, hi]
// Bounds are swapped when given inverted
func Clamp(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1]
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Lerp interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns where x sits between a and b, 0 when a == b
func InverseLerp(a, b, x float64) float64 {
	if b == a {
		return 0
	}
	return (x - a) / (b - a)
}

// WrapAngle maps an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}
