package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
	opScreen  uint8 = 0x04
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	// BlendReplace overwrites both colors
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)

	// Glyph modes: Fg composited over the cell, Bg kept
	BlendAlphaFg  = BlendMode(opAlpha | flagFg)
	BlendAddFg    = BlendMode(opAdd | flagFg)
	BlendMaxFg    = BlendMode(opMax | flagFg)
	BlendScreenFg = BlendMode(opScreen | flagFg)
)

// Glyph blend names accepted by ParseBlend
const (
	BlendNameAlpha  = "alpha"
	BlendNameAdd    = "add"
	BlendNameMax    = "max"
	BlendNameScreen = "screen"
)

// ParseBlend resolves a glyph blend name; "" selects alpha, ok is false for unknown names
func ParseBlend(name string) (BlendMode, bool) {
	switch name {
	case "", BlendNameAlpha:
		return BlendAlphaFg, true
	case BlendNameAdd:
		return BlendAddFg, true
	case BlendNameMax:
		return BlendMaxFg, true
	case BlendNameScreen:
		return BlendScreenFg, true
	default:
		return BlendAlphaFg, false
	}
}

// apply runs op on dst with src
func apply(op uint8, dst, src RGB, alpha float64) RGB {
	switch op {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Add(dst, src, alpha)
	case opMax:
		return Max(dst, src, alpha)
	case opScreen:
		return Screen(dst, src, alpha)
	default:
		return src
	}
}
