package scr

import (
	"bufio"
	"strconv"
)

// Pre-allocated sequence fragments written on every changed cell
var (
	csiCursorPos = []byte("\x1b[") // followed by row;colH
	csiReset     = []byte(Reset)
)

// writeInt writes n in decimal; negative values are written as 0
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	var buf [20]byte
	w.Write(strconv.AppendInt(buf[:0], int64(n), 10))
}

// writeCUP writes ESC[row;colH with row and col emitted as given
func writeCUP(w *bufio.Writer, row, col int) {
	w.Write(csiCursorPos)
	writeInt(w, row)
	w.WriteByte(';')
	writeInt(w, col)
	w.WriteByte('H')
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	writeCUP(w, y+1, x+1)
}
