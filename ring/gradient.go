package ring

import (
	"fmt"
	"strings"
)

// GradientMode picks how a dust cloud places each particle between its two colors
type GradientMode uint8

const (
	// GradientRandom blends by a uniform draw
	GradientRandom GradientMode = iota
	// GradientLinear blends by a uniform draw pulled toward the primary color at the core
	GradientLinear
	// GradientRadial is primary at the core, secondary at the edge
	GradientRadial
	// GradientNoise follows the cloud's noise field
	GradientNoise

	gradientCount
)

var gradientKeys = [gradientCount]string{
	GradientRandom: "random",
	GradientLinear: "linear",
	GradientRadial: "radial",
	GradientNoise:  "noise",
}

func (g GradientMode) Valid() bool {
	return g < gradientCount
}

func (g GradientMode) String() string {
	if !g.Valid() {
		return fmt.Sprintf("GradientMode(%d)", uint8(g))
	}
	return gradientKeys[g]
}

// ParseGradientMode accepts a key, case-insensitive
func ParseGradientMode(s string) (GradientMode, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for g := GradientMode(0); g < gradientCount; g++ {
		if gradientKeys[g] == norm {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGradient, s)
}

func (g GradientMode) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGradient, uint8(g))
	}
	return []byte(gradientKeys[g]), nil
}

func (g *GradientMode) UnmarshalText(text []byte) error {
	parsed, err := ParseGradientMode(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
