// Package scr is a double-buffered terminal screen.
//
// Writes land in a pending grid and stay invisible until Update, which diffs
// the pending grid against the last rendered state and emits one positioned
// write per changed cell:
//
//	<prefix> ESC[row;colH <char> ESC[0m
//
// followed by a park directive ESC[<h-1>;<w>H and a flush.
//
// Only one Scr should drive a terminal at a time; two instances writing to the
// same terminal corrupt each other's view of what is on screen. A Scr is not
// safe for concurrent use.
package scr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/scramble/terminal"
)

// outputBufferSize covers a full repaint of a large window in one flush
const outputBufferSize = 131072

var (
	// blank fills the pending grid on construction and on Clear
	blank = ColoredChar{char: ' ', prefix: Reset}
	// sentinel fills the rendered grid so the next Update paints every cell.
	// Ranging over a string never yields a negative rune, so SetText cannot produce it.
	sentinel = ColoredChar{char: -1, prefix: ""}
)

// Scr owns a pending grid and a rendered grid of equal size, both row-major: cells[y*w + x]
type Scr struct {
	buffer  []ColoredChar // desired state, mutated by SetText/Clear
	current []ColoredChar // what the terminal shows as of the last Update
	w, h    int
	sink    io.Writer
	out     *bufio.Writer
}

// New creates a screen sized from the dimension source, writing to stdout by default.
// It never fails; size lookup problems fall back to 80x24.
func New(opts ...Option) *Scr {
	cfg := options{
		out:  os.Stdout,
		dims: terminal.Dimensions,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := cfg.dims()
	if w <= 0 || h <= 0 {
		w, h = terminal.DefaultWidth, terminal.DefaultHeight
	}

	s := &Scr{
		buffer:  make([]ColoredChar, w*h),
		current: make([]ColoredChar, w*h),
		w:       w,
		h:       h,
		sink:    cfg.out,
		out:     bufio.NewWriterSize(cfg.out, outputBufferSize),
	}
	for i := range s.buffer {
		s.buffer[i] = blank
		s.current[i] = sentinel
	}
	return s
}

// Dimensions returns (width, height)
func (s *Scr) Dimensions() (int, int) {
	return s.w, s.h
}

// SetText writes text into row y starting at column x.
// The column is a plain value: the caller's counter is never advanced, so one
// starting column can be reused across rows. Rows outside the screen are ignored
// and characters that fall outside [0, width) are dropped without wrapping.
func (s *Scr) SetText(x, y int, text ColoredText) *Scr {
	if y < 0 || y >= s.h {
		return s
	}

	row := s.buffer[y*s.w : (y+1)*s.w]
	for _, r := range text.text {
		if x >= s.w {
			break
		}
		if x >= 0 {
			row[x] = ColoredChar{char: r, prefix: text.prefix}
		}
		x++
	}
	return s
}

// Clear resets every pending cell to a blank with the Reset style.
// The rendered grid is untouched; the next Update erases what was on screen.
func (s *Scr) Clear() *Scr {
	for i := range s.buffer {
		s.buffer[i] = blank
	}
	return s
}

// Invalidate marks every cell as unknown so the next Update repaints the whole grid.
// Use after something other than this Scr has written to the terminal.
func (s *Scr) Invalidate() *Scr {
	for i := range s.current {
		s.current[i] = sentinel
	}
	return s
}

// Update writes every pending cell that differs from the rendered grid, parks the
// cursor and flushes. A flush error leaves the terminal in an unknown state and is
// returned for the caller to treat as fatal. On error the unsent output is discarded
// and the rendered grid is invalidated, so a caller that keeps going gets a full
// repaint on the next Update.
func (s *Scr) Update() error {
	w := s.out

	for y := 0; y < s.h; y++ {
		rowStart := y * s.w
		for x := 0; x < s.w; x++ {
			idx := rowStart + x
			c := s.buffer[idx]
			if c == s.current[idx] {
				continue
			}

			w.WriteString(c.prefix)
			writeCursorPos(w, x, y)
			if c.char >= 0 && c.char < 0x80 {
				w.WriteByte(byte(c.char))
			} else {
				w.WriteRune(c.char)
			}
			w.Write(csiReset)

			s.current[idx] = c
		}
	}

	// Park at row h-1, column w as emitted (1-indexed: second-to-last row, last column)
	writeCUP(w, s.h-1, s.w)

	if err := w.Flush(); err != nil {
		w.Reset(s.sink)
		s.Invalidate()
		return fmt.Errorf("scr: flush: %w", err)
	}
	return nil
}

// Cell returns the pending cell at (x, y), or the zero ColoredChar when out of bounds
func (s *Scr) Cell(x, y int) ColoredChar {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return ColoredChar{}
	}
	return s.buffer[y*s.w+x]
}

// String renders the pending characters for debugging, rows separated by newlines
func (s *Scr) String() string {
	var sb strings.Builder
	sb.Grow(s.w*s.h + s.h)
	for y := 0; y < s.h; y++ {
		for _, c := range s.buffer[y*s.w : (y+1)*s.w] {
			sb.WriteRune(c.char)
		}
		if y < s.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
