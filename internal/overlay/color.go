package overlay

import (
	"image/color"
	"math"

	"github.com/glintfx/glint/internal/curve"
)

// hsva converts hue (0..1, wrapping), saturation, value and alpha into a
// non-premultiplied RGBA color.
func hsva(h, s, v, a float64) color.NRGBA {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	s = curve.Clamp01(s)
	v = curve.Clamp01(v)
	a = curve.Clamp01(a)

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return color.NRGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: uint8(a * 255),
	}
}

// white with the given alpha, for flashes and highlights.
func whiteAlpha(a float64) color.NRGBA {
	a = curve.Clamp01(a)
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a * 255)}
}
