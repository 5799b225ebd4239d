package terminal

import (
	"io"
)

// Pre-allocated ANSI sequence fragments
var (
	csiSGR0       = []byte("\x1b[0m")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiAltExit    = []byte("\x1b[?1049l")
	csiAutoWrapOn = []byte("\x1b[?7h")
	crlf          = []byte("\r\n")
)

// EmergencyReset restores the terminal after a crash
// Writes are best-effort; errors ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltExit)
	w.Write(csiAutoWrapOn)
	w.Write(crlf)
	resetTerminalMode()
}
