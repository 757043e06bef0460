package scr

import "testing"

func TestColoredText_Constructors(t *testing.T) {
	tests := []struct {
		name       string
		text       ColoredText
		wantText   string
		wantPrefix string
	}{
		{"Explicit style", NewColoredText("warn", BgRed+White), "warn", BgRed + White},
		{"Plain uses Reset", NewPlainText("plain"), "plain", Reset},
		{"Empty content and style", NewColoredText("", ""), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Contents(); got != tt.wantText {
				t.Errorf("Contents() = %q, want %q", got, tt.wantText)
			}
			if got := tt.text.Prefix(); got != tt.wantPrefix {
				t.Errorf("Prefix() = %q, want %q", got, tt.wantPrefix)
			}
		})
	}
}

func TestColoredChar_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b ColoredChar
		want bool
	}{
		{"Same char and style", NewColoredChar('x', Red), NewColoredChar('x', Red), true},
		{"Different char", NewColoredChar('x', Red), NewColoredChar('y', Red), false},
		{"Different style", NewColoredChar('x', Red), NewColoredChar('x', Blue), false},
		{"Blank vs sentinel", blank, sentinel, false},
		{"Blank vs unstyled space", blank, NewColoredChar(' ', ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Fg256", Fg256(208), "\x1b[38;5;208m"},
		{"Bg256", Bg256(0), "\x1b[48;5;0m"},
		{"FgRGB", FgRGB(1, 22, 255), "\x1b[38;2;1;22;255m"},
		{"BgRGB", BgRGB(20, 20, 30), "\x1b[48;2;20;20;30m"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
