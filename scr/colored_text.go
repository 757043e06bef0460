package scr

// ColoredChar is a single character and the style token printed before it.
// Values are replaced wholesale; nothing mutates a cell in place.
type ColoredChar struct {
	char   rune
	prefix string
}

// NewColoredChar returns a cell holding r styled by prefix
func NewColoredChar(r rune, prefix string) ColoredChar {
	return ColoredChar{char: r, prefix: prefix}
}

// Contents returns the cell's character
func (c ColoredChar) Contents() rune {
	return c.char
}

// Prefix returns the cell's style token
func (c ColoredChar) Prefix() string {
	return c.prefix
}

// Equal reports whether both the character and the style token match
func (c ColoredChar) Equal(other ColoredChar) bool {
	return c == other
}

// ColoredText is a run of characters sharing one style token.
// It is expanded into ColoredChar cells by Scr.SetText.
type ColoredText struct {
	text   string
	prefix string
}

// NewColoredText returns text styled by prefix. Empty text and empty prefix are both valid.
func NewColoredText(text, prefix string) ColoredText {
	return ColoredText{text: text, prefix: prefix}
}

// NewPlainText returns text styled with Reset
func NewPlainText(text string) ColoredText {
	return ColoredText{text: text, prefix: Reset}
}

// Contents returns the text
func (t ColoredText) Contents() string {
	return t.text
}

// Prefix returns the style token applied to every character
func (t ColoredText) Prefix() string {
	return t.prefix
}
