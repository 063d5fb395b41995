package pixify

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorRGB is a straight (non-premultiplied) color with every channel in [0,1].
type ColorRGB struct {
	R, G, B, A float64
}

// ColorHSL is the hue/saturation/lightness form of a color. H is a turn in [0,1)
// and wraps around. L may leave [0,1] after Darken or Lighten.
type ColorHSL struct {
	H, S, L, A float64
}

// ColorKey identifies a color at byte resolution. Colors with equal keys share
// palettes and colorized stencils.
type ColorKey uint32

// Transparent is the fully transparent black color.
var Transparent = ColorRGB{}

// RGB creates an opaque color.
func RGB(r, g, b float64) ColorRGB {
	return ColorRGB{R: r, G: g, B: b, A: 1}
}

// RGBA8 creates a color from byte channels.
func RGBA8(r, g, b, a uint8) ColorRGB {
	return ColorRGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromColor converts any color.Color into a straight normalized color.
func FromColor(c color.Color) ColorRGB {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return ColorRGB{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGBToHSL converts normalized RGB channels to HSL. Achromatic input yields h = s = 0.
// When several channels share the maximum the hue branch is picked in R, G, B order.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	h, s, l = colorful.Color{R: r, G: g, B: b}.Hsl()
	return h / 360, s, l
}

// HSLToRGB converts HSL back to normalized RGB. Channels are not clamped.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	h -= math.Floor(h)
	c := colorful.Hsl(h*360, s, l)
	return c.R, c.G, c.B
}

// Transparent reports whether the color has zero alpha.
func (c ColorRGB) Transparent() bool {
	return c.A == 0
}

// HSL converts the color to HSL, keeping its alpha.
func (c ColorRGB) HSL() ColorHSL {
	h, s, l := RGBToHSL(c.R, c.G, c.B)
	return ColorHSL{H: h, S: s, L: l, A: c.A}
}

// Key packs the byte-quantized channels as 0xRRGGBBAA.
func (c ColorRGB) Key() ColorKey {
	n := c.NRGBA()
	return ColorKey(uint32(n.R)<<24 | uint32(n.G)<<16 | uint32(n.B)<<8 | uint32(n.A))
}

// NRGBA rounds the color to bytes, clamping out-of-range channels.
func (c ColorRGB) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

// RGBA implements color.Color.
func (c ColorRGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// RGB converts the color back to RGB. Derived shades are always opaque.
func (c ColorHSL) RGB() ColorRGB {
	r, g, b := HSLToRGB(c.H, c.S, c.L)
	return ColorRGB{R: r, G: g, B: b, A: 1}
}

// Darken scales lightness down by pct percent.
func (c ColorHSL) Darken(pct float64) ColorHSL {
	return ColorHSL{H: c.H, S: c.S, L: c.L * (1 - pct/100), A: 1}
}

// Lighten scales lightness up by pct percent.
func (c ColorHSL) Lighten(pct float64) ColorHSL {
	return ColorHSL{H: c.H, S: c.S, L: c.L * (1 + pct/100), A: 1}
}

func toByte(v float64) uint8 {
	return uint8(max(0, min(255, math.Round(v*255))))
}
