package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag/config spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a flag/config value; "auto" and "" detect from environment
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), true
	case "256":
		return ColorMode256, true
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, true
	}
	return ColorMode256, false
}

// trueColorEnv lists variables whose presence alone marks a 24-bit capable emulator
var trueColorEnv = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"WEZTERM_PANE",
}

// DetectColorMode reports ColorModeTrueColor when COLORTERM, a known emulator
// variable or TERM advertises 24-bit color, and ColorMode256 otherwise.
func DetectColorMode() ColorMode {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	for _, k := range trueColorEnv {
		if os.Getenv(k) != "" {
			return ColorModeTrueColor
		}
	}
	t := os.Getenv("TERM")
	for _, marker := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(t, marker) {
			return ColorModeTrueColor
		}
	}
	return ColorMode256
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// cubeIndex maps a channel value to the nearest cube level 0-5
func cubeIndex(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

// RGBTo256 finds the nearest xterm-256 palette index for an RGB value
func RGBTo256(c RGB) uint8 {
	cr, cg, cb := cubeIndex(c.R), cubeIndex(c.G), cubeIndex(c.B)
	cube := 16 + 36*cr + 6*cg + cb

	// Near-gray colors may sit closer to the grayscale ramp (level = 8 + 10*i)
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(abs(int(c.R)-gray), abs(int(c.G)-gray), abs(int(c.B)-gray))
	if maxDiff >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	step := min((gray-8)/10, 23)
	if step < 0 {
		step = 0
	}
	grayLevel := 8 + step*10
	grayDist := abs(int(c.R)-grayLevel) + abs(int(c.G)-grayLevel) + abs(int(c.B)-grayLevel)
	cubeDist := abs(int(c.R)-int(cubeValues[cr])) +
		abs(int(c.G)-int(cubeValues[cg])) +
		abs(int(c.B)-int(cubeValues[cb]))

	if grayDist < cubeDist {
		return uint8(grayscaleStart + step)
	}
	return cube
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
