package visual

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neuralfield/terminal"
)

// HSL is a hue/saturation/lightness triple with every component in [0,1]
type HSL struct {
	H, S, L float64
}

// Color converts to a clamped colorful.Color
func (c HSL) Color() colorful.Color {
	return colorful.Hsl(c.H*360, c.S, c.L).Clamped()
}

// Floats returns the linear-buffer representation used by the point cloud color attribute
func (c HSL) Floats() (r, g, b float32) {
	col := c.Color()
	return float32(col.R), float32(col.G), float32(col.B)
}

// Point cloud hues per theme
var (
	// CoreDark and CoreLight tint points near the origin
	CoreDark  = HSL{0.3, 0.9, 0.7}
	CoreLight = HSL{0.3, 0.9, 0.5}

	// AccentDark and AccentLight are the sky blue accent family
	AccentDark  = HSL{0.55, 0.8, 0.8}
	AccentLight = HSL{0.55, 0.8, 0.6}

	// ShadeDark and ShadeLight are the dimmer green family
	ShadeDark  = HSL{0.3, 0.7, 0.5}
	ShadeLight = HSL{0.3, 0.7, 0.4}
)

// Core returns the core hue for a theme
func Core(dark bool) HSL {
	if dark {
		return CoreDark
	}
	return CoreLight
}

// Accent returns the accent hue for a theme
func Accent(dark bool) HSL {
	if dark {
		return AccentDark
	}
	return AccentLight
}

// Shade returns the secondary green hue for a theme
func Shade(dark bool) HSL {
	if dark {
		return ShadeDark
	}
	return ShadeLight
}

// Wireframe accent hues
var (
	Emerald = mustHex("#22c55e")
	Sky     = mustHex("#0ea5e9")
)

// PrimaryAccent is emerald on dark backgrounds and sky on light ones
func PrimaryAccent(dark bool) colorful.Color {
	if dark {
		return Emerald
	}
	return Sky
}

// SecondaryAccent is the opposite of PrimaryAccent
func SecondaryAccent(dark bool) colorful.Color {
	if dark {
		return Sky
	}
	return Emerald
}

// Backdrop backgrounds
var (
	RgbBackgroundDark  = terminal.RGB{R: 26, G: 27, B: 38}    // Tokyo Night background
	RgbBackgroundLight = terminal.RGB{R: 248, G: 250, B: 252} // Slate 50
	RgbHintDark        = terminal.RGB{R: 140, G: 145, B: 155}
	RgbHintLight       = terminal.RGB{R: 80, G: 80, B: 90}
)

// Background returns the backdrop fill for a theme
func Background(dark bool) terminal.RGB {
	if dark {
		return RgbBackgroundDark
	}
	return RgbBackgroundLight
}

// Hint returns the foreground used for page text over the backdrop
func Hint(dark bool) terminal.RGB {
	if dark {
		return RgbHintDark
	}
	return RgbHintLight
}

// ToRGB converts a colorful color to a terminal cell color
func ToRGB(c colorful.Color) terminal.RGB {
	r, g, b := c.Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

// FloatsToRGB converts [0,1] channels to a terminal cell color
func FloatsToRGB(r, g, b float32) terminal.RGB {
	return ToRGB(colorful.Color{R: float64(r), G: float64(g), B: float64(b)})
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
