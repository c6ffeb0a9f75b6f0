package ring

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		r, g, b uint8
		alpha   float64
	}{
		{"#e6dcc8", 230, 220, 200, 1},
		{"#FF6496", 255, 100, 150, 1},
		{"#00000080", 0, 0, 0, 128.0 / 255},
	}

	for _, tt := range tests {
		c, err := ParseColor(tt.input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.input, err)
			continue
		}
		r, g, b := c.RGB8()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("%q: expected (%d,%d,%d), got (%d,%d,%d)", tt.input, tt.r, tt.g, tt.b, r, g, b)
		}
		if math.Abs(c.A-tt.alpha) > 1e-9 {
			t.Errorf("%q: expected alpha %v, got %v", tt.input, tt.alpha, c.A)
		}
	}

	for _, bad := range []string{"", "e6dcc8", "#e6dcc", "#zzzzzz", "#e6dcc8zz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(230, 220, 200).Hex(); got != "#e6dcc8" {
		t.Errorf("Expected #e6dcc8, got %s", got)
	}
	if got := RGB(0, 0, 0).WithAlpha(0.5).Hex(); got != "#00000080" {
		t.Errorf("Expected #00000080, got %s", got)
	}
}

func TestColorLerp(t *testing.T) {
	a, b := RGB(0, 0, 0), RGB(255, 255, 255)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Expected %v at t=0, got %v", a, got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Expected %v at t=1, got %v", b, got)
	}
	mid := a.Lerp(b, 0.5)
	if math.Abs(mid.R-0.5) > 1e-9 {
		t.Errorf("Expected red 0.5 at midpoint, got %v", mid.R)
	}
	if got := a.Lerp(b, 7); got != b {
		t.Errorf("Expected t clamped to 1, got %v", got)
	}
}

func TestColorBrighten(t *testing.T) {
	c := RGB(100, 50, 25)
	bright := c.Brighten(1.5)
	if bright.R <= c.R {
		t.Errorf("Expected brighter red channel, got %v <= %v", bright.R, c.R)
	}
	if over := RGB(200, 200, 200).Brighten(10); over.R > 1 || over.G > 1 || over.B > 1 {
		t.Errorf("Expected channels clamped to 1, got %v", over)
	}
}

func TestColorSaturate(t *testing.T) {
	c := RGBA(200, 100, 100, 0.5)
	_, s0, v0 := c.colorful().Hsv()

	more := c.Saturate(1.5)
	_, s1, v1 := more.colorful().Hsv()
	if s1 <= s0 {
		t.Errorf("Expected saturation above %v, got %v", s0, s1)
	}
	if math.Abs(v1-v0) > 1e-9 || more.A != 0.5 {
		t.Errorf("Expected value %v and alpha 0.5 kept, got %v and %v", v0, v1, more.A)
	}

	if _, s, _ := c.Saturate(100).colorful().Hsv(); s > 1 {
		t.Errorf("Expected saturation clamped to 1, got %v", s)
	}
}

func TestColorShiftHue(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{120, 120},
		{-60, 300},
		{480, 120},
	}
	red := RGB(255, 0, 0)
	for _, tt := range tests {
		h, _, _ := red.ShiftHue(tt.deg).colorful().Hsv()
		if math.Abs(h-tt.want) > 1e-6 {
			t.Errorf("ShiftHue(%v): expected hue %v, got %v", tt.deg, tt.want, h)
		}
	}
}
