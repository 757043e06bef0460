// Package terminal provides the host-terminal collaborators used by the screen package.
//
// Features:
//   - Window size query with an 80x24 fallback
//   - TTY detection
//   - Color capability detection and RGB to xterm-256 mapping
//   - Best-effort terminal restoration after a crash
//
// Escape sequences are emitted directly; terminfo/termcap is not consulted.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
