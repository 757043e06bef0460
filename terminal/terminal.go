package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback dimensions used when the window size cannot be queried
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Sequences written by EmergencyReset
var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// Dimensions returns (width, height) of the terminal attached to stdout.
// Returns (80, 24) if stdout is not a terminal or the query fails.
func Dimensions() (int, int) {
	return DimensionsOf(os.Stdout)
}

// DimensionsOf returns (width, height) of the terminal behind f, falling back to 80x24
func DimensionsOf(f *os.File) (int, int) {
	if f == nil || !IsTerminal(f) {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := Size(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// IsTerminal reports whether f refers to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery before printing the crash report
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
