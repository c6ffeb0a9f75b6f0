package vmath

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestV3FRotateZQuarterTurn(t *testing.T) {
	v := V3FRotateZ(Vec3F{X: 1}, HalfPi)
	if !near(v.X, 0) || !near(v.Y, 1) || v.Z != 0 {
		t.Errorf("Expected (0,1,0), got %+v", v)
	}
}

func TestV3FRotateXTiltsYIntoZ(t *testing.T) {
	v := V3FRotateX(Vec3F{Y: 2}, HalfPi)
	if !near(v.X, 0) || !near(v.Y, 0) || !near(v.Z, 2) {
		t.Errorf("Expected (0,0,2), got %+v", v)
	}
}

func TestRotationsPreserveMagnitude(t *testing.T) {
	v := Vec3F{3, -4, 12}
	want := V3FMag(v)

	rotations := []struct {
		name string
		fn   func(Vec3F, float64) Vec3F
	}{
		{"X", V3FRotateX},
		{"Z", V3FRotateZ},
	}

	for _, r := range rotations {
		for _, angle := range []float64{0, 0.3, 1.7, -2.2, math.Pi} {
			got := V3FMag(r.fn(v, angle))
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("Rotate%s(%.2f): expected magnitude %f, got %f", r.name, angle, want, got)
			}
		}
	}
}

func TestV3FAddScale(t *testing.T) {
	got := V3FAdd(Vec3F{1, 2, 3}, V3FScale(Vec3F{1, -1, 0.5}, 2))
	if got != (Vec3F{3, 0, 4}) {
		t.Errorf("Expected (3,0,4), got %+v", got)
	}
}

func TestV3FSphericalPoles(t *testing.T) {
	top := V3FSpherical(5, 1.1, 0)
	if !near(top.Z, 5) || !near(V3FPlanarMag(top), 0) {
		t.Errorf("Expected north pole at z=5, got %+v", top)
	}
	eq := V3FSpherical(5, 0, HalfPi)
	if !near(eq.X, 5) || !near(eq.Z, 0) {
		t.Errorf("Expected equator point (5,0,0), got %+v", eq)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 10, 0, 5}, // inverted bounds
		{15, 10, 0, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v,%v,%v): expected %v, got %v", tt.x, tt.lo, tt.hi, tt.want, got)
		}
	}
}

func TestInverseLerpDegenerate(t *testing.T) {
	if got := InverseLerp(3, 3, 7); got != 0 {
		t.Errorf("Expected 0 for empty interval, got %v", got)
	}
	if got := InverseLerp(10, 20, 15); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
}

func TestWrapAngle(t *testing.T) {
	if got := WrapAngle(-HalfPi); !near(got, 3*HalfPi) {
		t.Errorf("Expected 3π/2, got %v", got)
	}
	if got := WrapAngle(5 * math.Pi); !near(got, math.Pi) {
		t.Errorf("Expected π, got %v", got)
	}
}
