package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"pure red", RGB{255, 0, 0}, 196},
		{"pure green", RGB{0, 255, 0}, 46},
		{"pure blue", RGB{0, 0, 255}, 21},
		{"mid gray", RGB{128, 128, 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	if got := ParseColorMode("256"); got != ColorMode256 {
		t.Errorf("ParseColorMode(256) = %v", got)
	}
	for _, s := range []string{"truecolor", "true", "24bit"} {
		if got := ParseColorMode(s); got != ColorModeTrueColor {
			t.Errorf("ParseColorMode(%q) = %v", s, got)
		}
	}
}

func TestFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	cells := make([]Cell, 8)
	cells[5] = Cell{Rune: '•', Fg: RGB{34, 197, 94}, Bg: RGBBlack}

	Flush(screen, cells, 4, 2, ColorModeTrueColor)

	r, _, _, _ := screen.GetContent(1, 1)
	if r != '•' {
		t.Errorf("cell (1,1) = %q, want '•'", r)
	}
	r, _, _, _ = screen.GetContent(0, 0)
	if r != ' ' {
		t.Errorf("empty cell rendered as %q, want space", r)
	}
}

func TestFlushDropsMismatchedFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	cells := make([]Cell, 9)
	cells[0] = Cell{Rune: 'x'}
	Flush(screen, cells, 3, 3, ColorModeTrueColor)

	if r, _, _, _ := screen.GetContent(0, 0); r == 'x' {
		t.Error("frame with stale dimensions was flushed")
	}
}

func TestFlushSkipsWideContinuation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 1)

	cells := []Cell{{Rune: '界'}, {Rune: 'x'}, {Rune: 'b'}, {}}
	Flush(screen, cells, 4, 1, ColorModeTrueColor)

	if r, _, _, _ := screen.GetContent(0, 0); r != '界' {
		t.Errorf("wide cell = %q", r)
	}
	if r, _, _, _ := screen.GetContent(1, 0); r == 'x' {
		t.Error("continuation cell overwrote the wide glyph")
	}
	if r, _, _, _ := screen.GetContent(2, 0); r != 'b' {
		t.Errorf("cell after wide glyph = %q", r)
	}
}
