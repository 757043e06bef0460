package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/scramble/config"
	"github.com/lixenwraith/scramble/scr"
	"github.com/lixenwraith/scramble/terminal"
)

var (
	configPath = flag.String("config", "", "Path to TOML config (defaults built in)")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	iterations = flag.Int("iterations", -1, "Counter iterations (overrides config)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/scramble.log")
	noWait     = flag.Bool("no-wait", false, "Do not wait for Enter before clearing and exiting")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSCRAMBLE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *colorFlag != "" {
		cfg.ColorMode = *colorFlag
	}
	if *iterations >= 0 {
		cfg.Iterations = *iterations
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *noWait {
		cfg.Wait = false
	}

	mode, ok := terminal.ParseColorMode(cfg.ColorMode)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown color mode %q\n", cfg.ColorMode)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if !terminal.IsTerminal(os.Stdout) {
		log.Printf("stdout is not a terminal, using %dx%d", terminal.DefaultWidth, terminal.DefaultHeight)
	}

	s := scr.New()
	w, h := s.Dimensions()
	log.Printf("screen %dx%d, color mode %s", w, h, mode)

	if err := run(s, cfg, mode, os.Stdin); err != nil {
		// A terminal that cannot be written to leaves nothing to recover
		terminal.EmergencyReset(os.Stderr)
		fmt.Fprintf(os.Stderr, "scramble: %v\n", err)
		os.Exit(1)
	}
}
