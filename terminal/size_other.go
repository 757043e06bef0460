//go:build !unix

package terminal

import (
	"golang.org/x/term"
)

// Size returns the window size for a given fd
func Size(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
