//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

// Size returns the window size for a given fd
func Size(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
