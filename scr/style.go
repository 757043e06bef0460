package scr

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/scramble/terminal"
)

// ColorToken returns the foreground (or background when bg is set) token for c.
// Palette colors use the 256-color form; RGB colors use 24-bit form in
// true-color mode and the nearest palette index otherwise.
func ColorToken(c tcell.Color, bg bool, mode terminal.ColorMode) string {
	switch {
	case c == tcell.ColorDefault || c == tcell.ColorReset:
		if bg {
			return DefaultBg
		}
		return DefaultFg
	case !c.Valid():
		return ""
	case c.IsRGB():
		r, g, b := c.RGB()
		rgb := terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
		if mode == terminal.ColorModeTrueColor {
			if bg {
				return BgRGB(rgb.R, rgb.G, rgb.B)
			}
			return FgRGB(rgb.R, rgb.G, rgb.B)
		}
		n := terminal.RGBTo256(rgb)
		if bg {
			return Bg256(n)
		}
		return Fg256(n)
	default:
		n := uint8(c - tcell.ColorValid)
		if bg {
			return Bg256(n)
		}
		return Fg256(n)
	}
}

// NamedColor resolves a color name ("orange", "navy") or hex value ("#ff8800")
// into a token. Returns false for unknown names.
func NamedColor(name string, bg bool, mode terminal.ColorMode) (string, bool) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "default") {
		return ColorToken(tcell.ColorDefault, bg, mode), true
	}
	c := tcell.GetColor(strings.ToLower(name))
	if c == tcell.ColorDefault {
		return "", false
	}
	return ColorToken(c, bg, mode), true
}

// StyleToken flattens a tcell.Style into a prefix: attributes, then foreground, then
// background. Default colors are omitted since every written cell ends with Reset.
func StyleToken(st tcell.Style, mode terminal.ColorMode) string {
	fg, bg, attr := st.Decompose()

	var sb strings.Builder
	if attr&tcell.AttrBold != 0 {
		sb.WriteString(Bold)
	}
	if attr&tcell.AttrDim != 0 {
		sb.WriteString(Dim)
	}
	if attr&tcell.AttrItalic != 0 {
		sb.WriteString(Italic)
	}
	if st.GetUnderlineStyle() != tcell.UnderlineStyleNone {
		sb.WriteString(Underline)
	}
	if attr&tcell.AttrBlink != 0 {
		sb.WriteString(Blink)
	}
	if attr&tcell.AttrReverse != 0 {
		sb.WriteString(Reverse)
	}
	if attr&tcell.AttrStrikeThrough != 0 {
		sb.WriteString(StrikeThrough)
	}
	if fg != tcell.ColorDefault {
		sb.WriteString(ColorToken(fg, false, mode))
	}
	if bg != tcell.ColorDefault {
		sb.WriteString(ColorToken(bg, true, mode))
	}
	return sb.String()
}

// NewStyledText builds ColoredText from a tcell.Style
func NewStyledText(text string, st tcell.Style, mode terminal.ColorMode) ColoredText {
	return NewColoredText(text, StyleToken(st, mode))
}
