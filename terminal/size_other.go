//go:build !unix

package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size returns the terminal dimensions of f in columns and rows
// Falls back to 80x24 when f is not a terminal
func Size(f *os.File) (int, int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w == 0 || h == 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}

func resetTerminalMode() {}
