package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/lixenwraith/scramble/config"
	"github.com/lixenwraith/scramble/scr"
	"github.com/lixenwraith/scramble/terminal"
)

// prefix builds a background+foreground token from config color names.
// Unknown names are logged and skipped; no colors yields the plain Reset style.
func prefix(fg, bg string, mode terminal.ColorMode) string {
	var p string
	if bg != "" {
		if tok, ok := scr.NamedColor(bg, true, mode); ok {
			p += tok
		} else {
			log.Printf("unknown background color %q, ignored", bg)
		}
	}
	if fg != "" {
		if tok, ok := scr.NamedColor(fg, false, mode); ok {
			p += tok
		} else {
			log.Printf("unknown foreground color %q, ignored", fg)
		}
	}
	if p == "" {
		return scr.Reset
	}
	return p
}

// paint draws the static lines, runs the counter loop and writes the done marker
func paint(s *scr.Scr, cfg config.Config, mode terminal.ColorMode) error {
	w, h := s.Dimensions()
	x := cfg.Column

	for _, l := range cfg.Lines {
		s.SetText(x, l.Row, scr.NewColoredText(l.Text, prefix(l.Fg, l.Bg, mode)))
	}
	if cfg.Banner {
		banner := fmt.Sprintf("this window has %d cols and %d rows", w, h)
		s.SetText(x, h-1, scr.NewPlainText(banner))
	}
	if err := s.Update(); err != nil {
		return err
	}

	counterStyle := prefix(cfg.Counter.Fg, cfg.Counter.Bg, mode)
	for i := 0; i < cfg.Iterations; i++ {
		text := scr.NewColoredText(cfg.Counter.Label+strconv.Itoa(i+1), counterStyle)
		if err := s.SetText(x, cfg.Counter.Row, text).Update(); err != nil {
			return err
		}
	}
	log.Printf("counter finished after %d iterations", cfg.Iterations)

	s.SetText(x, cfg.Counter.DoneAt, scr.NewPlainText(cfg.Counter.Done))
	return s.Update()
}

// run paints, waits for Enter, clears the screen and waits again
func run(s *scr.Scr, cfg config.Config, mode terminal.ColorMode, in io.Reader) error {
	if err := paint(s, cfg, mode); err != nil {
		return err
	}

	r := bufio.NewReader(in)
	if cfg.Wait {
		waitForEnter(r)
	}
	if err := s.Clear().Update(); err != nil {
		return err
	}
	if cfg.Wait {
		waitForEnter(r)
	}
	return nil
}

// waitForEnter blocks until a newline or EOF
func waitForEnter(r *bufio.Reader) {
	if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
		log.Printf("stdin read: %v", err)
	}
}
