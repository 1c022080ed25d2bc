package render

import (
	"github.com/lixenwraith/neuralfield/terminal"
)

// RGB is the compositor color, shared with the terminal cell model
type RGB = terminal.RGB

// RGBBlack is the zero color
var RGBBlack = RGB{}

// clamp truncates v into a channel value
func clamp(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v <= 0:
		return 0
	default:
		return uint8(v)
	}
}

// mix applies f to each channel pair
func mix(a, b RGB, f func(x, y uint8) uint8) RGB {
	return RGB{R: f(a.R, b.R), G: f(a.G, b.G), B: f(a.B, b.B)}
}

// Blend is source-over: dst*(1-alpha) + src*alpha, rounded
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha >= 1 {
		return src
	}
	if alpha <= 0 {
		return dst
	}
	inv := 1 - alpha
	return mix(dst, src, func(d, s uint8) uint8 {
		return clamp(float64(s)*alpha + float64(d)*inv + 0.5)
	})
}

// Max keeps the brighter channel, faded in by alpha
func Max(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	return Blend(dst, mix(dst, src, func(d, s uint8) uint8 { return max(d, s) }), alpha)
}

// Add sums dst and src scaled by alpha, saturating at white
func Add(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	src = Scale(src, min(alpha, 1))
	return mix(dst, src, func(d, s uint8) uint8 {
		return uint8(min(int(d)+int(s), 255))
	})
}

// div255 approximates x/255 for x in [0, 255*255]
func div255(x int) int {
	return (x + (x >> 8) + 1) >> 8
}

// Screen is 1-(1-dst)(1-src), faded in by alpha
func Screen(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	screened := mix(dst, src, func(d, s uint8) uint8 {
		return uint8(255 - div255((255-int(d))*(255-int(s))))
	})
	return Blend(dst, screened, alpha)
}

// Scale multiplies every channel by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
