package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/neuralfield/terminal"
)

// RenderBuffer is a compositor backed by terminal.Cell array
// Uses []terminal.Cell directly to allow zero-copy export to the flush path
type RenderBuffer struct {
	cells  []terminal.Cell
	width  int
	height int
	bg     RGB
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(b.bg)
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to blank over bg using exponential copy
func (b *RenderBuffer) Clear(bg RGB) {
	b.bg = bg
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{
		Rune:  0,
		Fg:    bg,
		Bg:    bg,
		Attrs: terminal.AttrNone,
	}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Background returns the color of the last Clear
func (b *RenderBuffer) Background() RGB {
	return b.bg
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, zero cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with specified blend mode
// For foreground operations on an empty cell the destination color is the cell background,
// so alpha blending fades glyphs into the backdrop rather than into the previous glyph color
func (b *RenderBuffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs terminal.Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	// 1. Background Processing
	if flags&flagBg != 0 {
		dst.Bg = apply(op, dst.Bg, bg, alpha)
	}

	// 2. Foreground Processing
	if flags&flagFg != 0 {
		base := dst.Fg
		if dst.Rune == 0 || dst.Rune == ' ' {
			base = dst.Bg
		}
		dst.Fg = apply(op, base, fg, alpha)
	}

	// 3. Update Rune/Attrs if provided
	if mainRune != 0 {
		dst.Rune = mainRune
		dst.Attrs = attrs
	}
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
// Unwrapped for performance: Bypass BlendMode decoding for text rendering
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs terminal.Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetString writes s left to right starting at x,y with SetFgOnly and returns the columns used
// A wide rune takes two cells; the second is cleared and skipped by the flush
func (b *RenderBuffer) SetString(x, y int, s string, fg RGB, attrs terminal.Attr) int {
	n := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetFgOnly(x+n, y, r, fg, attrs)
		if w > 1 {
			b.SetFgOnly(x+n+1, y, 0, fg, attrs)
		}
		n += w
	}
	return n
}

// ===== OUTPUT =====

// FlushToScreen writes render buffer to the screen
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen, mode terminal.ColorMode) {
	terminal.Flush(screen, b.cells, b.width, b.height, mode)
}
