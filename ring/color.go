package ring

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ringfield/vmath"
)

// Color is a non-premultiplied RGBA color, channels in [0, 1]
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color from 8-bit channels
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// RGBA returns a color from 8-bit channels and a float alpha
func RGBA(r, g, b uint8, a float64) Color {
	c := RGB(r, g, b)
	c.A = vmath.Clamp01(a)
	return c
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(cf colorful.Color, alpha float64) Color {
	cf = cf.Clamped()
	return Color{cf.R, cf.G, cf.B, alpha}
}

// Lerp blends toward other in RGB space, t clamped to [0, 1]
func (c Color) Lerp(other Color, t float64) Color {
	t = vmath.Clamp01(t)
	blended := c.colorful().BlendRgb(other.colorful(), t)
	return fromColorful(blended, vmath.Lerp(c.A, other.A, t))
}

// Brighten scales HSV value by factor, result clamped to the gamut
func (c Color) Brighten(factor float64) Color {
	h, s, v := c.colorful().Hsv()
	v = vmath.Clamp01(v * factor)
	return fromColorful(colorful.Hsv(h, s, v), c.A)
}

// Saturate scales HSV saturation by factor, clamped to [0, 1]
func (c Color) Saturate(factor float64) Color {
	h, s, v := c.colorful().Hsv()
	return fromColorful(colorful.Hsv(h, vmath.Clamp01(s*factor), v), c.A)
}

// ShiftHue rotates the hue by deg degrees
func (c Color) ShiftHue(deg float64) Color {
	h, s, v := c.colorful().Hsv()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsv(h, s, v), c.A)
}

// WithAlpha returns c with alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = vmath.Clamp01(a)
	return c
}

// RGB8 returns 8-bit RGB channels for renderers
func (c Color) RGB8() (r, g, b uint8) {
	return c.colorful().Clamped().RGB255()
}

// Hex returns #rrggbb, or #rrggbbaa when not fully opaque
func (c Color) Hex() string {
	hex := c.colorful().Clamped().Hex()
	if c.A >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(vmath.Clamp01(c.A)*255+0.5))
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor reads #rrggbb or #rrggbbaa
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 7:
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		return fromColorful(cf, 1), nil
	case 9:
		cf, err := colorful.Hex(s[:7])
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q alpha: %w", s, err)
		}
		return fromColorful(cf, float64(a)/255), nil
	default:
		return Color{}, fmt.Errorf("color %q: expected #rrggbb or #rrggbbaa", s)
	}
}

// Named colors used by defaults and presets
var (
	ColorLightGray = RGB(211, 211, 211)
	ColorDarkGray  = RGB(169, 169, 169)
)
