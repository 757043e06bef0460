package scr

import "strconv"

// SGR style tokens. Combine by concatenation, e.g. BgBlue + Yellow.
const (
	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	BgBlack   = "\x1b[40m"
	BgRed     = "\x1b[41m"
	BgGreen   = "\x1b[42m"
	BgYellow  = "\x1b[43m"
	BgBlue    = "\x1b[44m"
	BgMagenta = "\x1b[45m"
	BgCyan    = "\x1b[46m"
	BgWhite   = "\x1b[47m"

	Bold          = "\x1b[1m"
	Dim           = "\x1b[2m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Blink         = "\x1b[5m"
	Reverse       = "\x1b[7m"
	StrikeThrough = "\x1b[9m"

	DefaultFg = "\x1b[39m"
	DefaultBg = "\x1b[49m"

	Reset = "\x1b[0m"
)

// Fg256 returns the token for xterm-256 foreground index n
func Fg256(n uint8) string {
	return "\x1b[38;5;" + strconv.Itoa(int(n)) + "m"
}

// Bg256 returns the token for xterm-256 background index n
func Bg256(n uint8) string {
	return "\x1b[48;5;" + strconv.Itoa(int(n)) + "m"
}

// FgRGB returns the 24-bit foreground token
func FgRGB(r, g, b uint8) string {
	return "\x1b[38;2;" + rgbParams(r, g, b) + "m"
}

// BgRGB returns the 24-bit background token
func BgRGB(r, g, b uint8) string {
	return "\x1b[48;2;" + rgbParams(r, g, b) + "m"
}

func rgbParams(r, g, b uint8) string {
	return strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b))
}
