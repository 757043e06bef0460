package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/scramble/config"
	"github.com/lixenwraith/scramble/scr"
	"github.com/lixenwraith/scramble/terminal"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Iterations = 25
	cfg.Wait = false
	return cfg
}

func TestPaint_StockLayout(t *testing.T) {
	var out bytes.Buffer
	s := scr.New(scr.WithOutput(&out), scr.WithSize(80, 24))

	if err := paint(s, testConfig(), terminal.ColorMode256); err != nil {
		t.Fatalf("paint() error: %v", err)
	}

	rows := strings.Split(s.String(), "\n")
	want := map[int]string{
		0:  "hello",
		1:  "screen api test",
		2:  "and this is the third line",
		3:  "we can chain multiple .SetText() together",
		7:  "look at me! im incrementing -> 25",
		8:  "done!",
		23: "this window has 80 cols and 24 rows",
	}
	for row, text := range want {
		if got := strings.TrimRight(rows[row], " "); got != text {
			t.Errorf("Row %d = %q, want %q", row, got, text)
		}
	}
	if out.Len() == 0 {
		t.Error("paint() wrote nothing to the sink")
	}
}

func TestPaint_BannerClippedOnNarrowScreen(t *testing.T) {
	var out bytes.Buffer
	s := scr.New(scr.WithOutput(&out), scr.WithSize(10, 9))
	cfg := testConfig()
	cfg.Iterations = 1

	if err := paint(s, cfg, terminal.ColorMode256); err != nil {
		t.Fatalf("paint() error: %v", err)
	}

	// Banner lands on the last row first, then the done marker overwrites its start
	rows := strings.Split(s.String(), "\n")
	if rows[8] != "done!windo" {
		t.Errorf("Row 8 = %q, want %q", rows[8], "done!windo")
	}
	if rows[0] != "hello     " || rows[1] != "screen api" {
		t.Errorf("Rows 0-1 = %q, %q, want clipped stock lines", rows[0], rows[1])
	}
}

func TestRun_EndsCleared(t *testing.T) {
	var out bytes.Buffer
	s := scr.New(scr.WithOutput(&out), scr.WithSize(40, 10))
	cfg := testConfig()
	cfg.Wait = true

	if err := run(s, cfg, terminal.ColorMode256, strings.NewReader("\n\n")); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	blank := strings.Repeat(" ", 40)
	for y, row := range strings.Split(s.String(), "\n") {
		if row != blank {
			t.Errorf("Row %d = %q after run, want blank", y, row)
		}
	}
}

func TestRun_EOFOnStdin(t *testing.T) {
	var out bytes.Buffer
	s := scr.New(scr.WithOutput(&out), scr.WithSize(40, 10))
	cfg := testConfig()
	cfg.Wait = true

	if err := run(s, cfg, terminal.ColorMode256, strings.NewReader("")); err != nil {
		t.Fatalf("run() error: %v", err)
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name   string
		fg, bg string
		want   string
	}{
		{"No colors is plain", "", "", scr.Reset},
		{"Background before foreground", "red", "navy", scr.Bg256(4) + scr.Fg256(9)},
		{"Unknown name skipped", "not-a-color", "", scr.Reset},
		{"Hex foreground", "#ff0000", "", scr.Fg256(196)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prefix(tt.fg, tt.bg, terminal.ColorMode256); got != tt.want {
				t.Errorf("prefix(%q, %q) = %q, want %q", tt.fg, tt.bg, got, tt.want)
			}
		})
	}
}
