package terminal

import (
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Raw sequences used when the screen cannot be finalized normally
var (
	csiMouseOff      = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery; screen may be nil or already finalized
func EmergencyReset(screen tcell.Screen, w io.Writer) {
	if screen != nil {
		func() {
			defer func() { _ = recover() }()
			screen.Fini()
		}()
	}

	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}
