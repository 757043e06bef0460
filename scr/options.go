package scr

import "io"

type options struct {
	out  io.Writer
	dims func() (int, int)
}

// Option configures a Scr at construction
type Option func(*options)

// WithOutput sets the sink Update writes to (default os.Stdout)
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithSize fixes the grid dimensions instead of querying the terminal
func WithSize(width, height int) Option {
	return func(o *options) {
		o.dims = func() (int, int) { return width, height }
	}
}

// WithDimensions replaces the dimension source (default terminal.Dimensions).
// A source reporting a non-positive size falls back to 80x24.
func WithDimensions(fn func() (int, int)) Option {
	return func(o *options) {
		if fn != nil {
			o.dims = fn
		}
	}
}
