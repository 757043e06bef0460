// Package config loads the demo harness settings from TOML
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/scramble/terminal"
)

// Line is a static text placed once before the counter loop
type Line struct {
	Row  int    `toml:"row"`
	Text string `toml:"text"`
	Fg   string `toml:"fg"`
	Bg   string `toml:"bg"`
}

// Counter is the line rewritten on every iteration
type Counter struct {
	Row    int    `toml:"row"`
	Label  string `toml:"label"`
	Fg     string `toml:"fg"`
	Bg     string `toml:"bg"`
	Done   string `toml:"done"`
	DoneAt int    `toml:"done_row"`
}

// Config holds demo settings
type Config struct {
	Column     int     `toml:"column"`
	Iterations int     `toml:"iterations"`
	ColorMode  string  `toml:"color_mode"`
	Debug      bool    `toml:"debug"`
	Wait       bool    `toml:"wait"`
	Banner     bool    `toml:"banner"`
	Lines      []Line  `toml:"lines"`
	Counter    Counter `toml:"counter"`
}

// Default returns the settings of the stock demo
func Default() Config {
	return Config{
		Column:     0,
		Iterations: 30000,
		ColorMode:  "auto",
		Wait:       true,
		Banner:     true,
		Lines: []Line{
			{Row: 0, Text: "hello"},
			{Row: 1, Text: "screen api test"},
			{Row: 2, Text: "and this is the third line"},
			{Row: 3, Text: "we can chain multiple .SetText() together"},
		},
		Counter: Counter{
			Row:    7,
			Label:  "look at me! im incrementing -> ",
			Done:   "done!",
			DoneAt: 8,
		},
	}
}

// Load decodes path over Default. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// Decoding into a non-empty slice merges element-wise; start lines empty
	defaultLines := cfg.Lines
	cfg.Lines = nil

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if !md.IsDefined("lines") {
		cfg.Lines = defaultLines
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the demo cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Iterations < 0 {
		errs = append(errs, fmt.Errorf("iterations must be >= 0, got %d", c.Iterations))
	}
	if _, ok := terminal.ParseColorMode(c.ColorMode); !ok {
		errs = append(errs, fmt.Errorf("unknown color_mode %q", c.ColorMode))
	}
	for i, l := range c.Lines {
		if l.Row < 0 {
			errs = append(errs, fmt.Errorf("lines[%d]: row must be >= 0, got %d", i, l.Row))
		}
	}
	if c.Counter.Row < 0 || c.Counter.DoneAt < 0 {
		errs = append(errs, errors.New("counter: rows must be >= 0"))
	}
	return errors.Join(errs...)
}
