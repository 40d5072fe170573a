package f32color

import (
	"image/color"
	"math"
)

var (
	White = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Black = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
)

// RGB is a color with components in range 0..1.
type RGB struct{ R, G, B float32 }

// NRGBA converts the color to an opaque 8-bit color.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: sat8(c.R), G: sat8(c.G), B: sat8(c.B), A: 0xFF}
}

// Modulate multiplies each channel by the matching component, truncating the result.
func (c RGB) Modulate(r, g, b uint8) (uint8, uint8, uint8) {
	return mul8(r, c.R), mul8(g, c.G), mul8(b, c.B)
}

// Spectrum maps p in range 0..1 to a color.
type Spectrum func(p float32) RGB

// Rainbow returns the color at p on the rainbow spectrum, p in range 0..1.
//
// It uses the same component functions as the matplotlib "rainbow" colormap.
func Rainbow(p float32) RGB {
	p = clamp01(p)
	return RGB{
		R: clamp01(float32(math.Abs(2*float64(p) - 0.5))),
		G: clamp01(float32(math.Sin(math.Pi * float64(p)))),
		B: clamp01(float32(math.Cos(math.Pi * float64(p) / 2))),
	}
}

// Hue returns a fully saturated color at hue p, p in range 0..1.
// Hue is cyclic, Hue(0) == Hue(1).
func Hue(p float32) RGB { return HSL(p, 1, 0.5) }

// HSL returns color based on HSL in range 0..1
func HSL(h, s, l float32) RGB {
	if s == 0 {
		return RGB{l, l, l}
	}

	h = mod32(h, 1)

	var v2 float32
	if l < 0.5 {
		v2 = l * (1 + s)
	} else {
		v2 = (l + s) - s*l
	}

	v1 := 2*l - v2
	return RGB{
		R: hue(v1, v2, h+1.0/3.0),
		G: hue(v1, v2, h),
		B: hue(v1, v2, h-1.0/3.0),
	}
}

func hue(v1, v2, h float32) float32 {
	if h < 0 {
		h += 1
	}
	if h > 1 {
		h -= 1
	}
	if 6*h < 1 {
		return v1 + (v2-v1)*6*h
	} else if 2*h < 1 {
		return v2
	} else if 3*h < 2 {
		return v1 + (v2-v1)*(2.0/3.0-h)*6
	}

	return v1
}

// sat8 converts 0..1 float to 0..255 uint8
func sat8(v float32) uint8 {
	v *= 255.0
	if v >= 255 {
		return 255
	} else if v <= 0 {
		return 0
	}
	return uint8(v)
}

// mul8 multiplies v by a factor in range 0..1.
func mul8(v uint8, f float32) uint8 {
	r := float32(v) * clamp01(f)
	if r >= 255 {
		return 255
	}
	return uint8(r)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}
	return v
}

func mod32(x, y float32) float32 {
	m := float32(math.Mod(float64(x), float64(y)))
	if m < 0 {
		m += y
	}
	return m
}
