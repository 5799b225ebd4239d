package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when the output is not a terminal
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// IsTerminal reports whether f refers to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// FitBoard converts a terminal size into board dimensions
// One row is kept for the FPS/status line and one for the cursor
func FitBoard(cols, rows int) (width, height int) {
	width = cols
	height = rows - 2
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
