package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ToTcell converts an RGB to the tcell color for the given mode
func ToTcell(c RGB, mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style builds the tcell style for a cell
func Style(cell Cell, mode ColorMode) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(ToTcell(cell.Fg, mode)).
		Background(ToTcell(cell.Bg, mode))
	if cell.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if cell.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	return st
}

// Flush writes a row-major cell buffer to the screen and shows it
// Frames whose dimensions no longer match the screen are dropped to avoid resize tearing
func Flush(screen tcell.Screen, cells []Cell, width, height int, mode ColorMode) {
	if screen == nil {
		return
	}
	sw, sh := screen.Size()
	if sw != width || sh != height || len(cells) < width*height {
		return
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x := 0; x < len(row); x++ {
			r := row[x].Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, Style(row[x], mode))
			// The right half of a wide glyph belongs to it
			if runewidth.RuneWidth(r) > 1 {
				x++
			}
		}
	}
	screen.Show()
}
