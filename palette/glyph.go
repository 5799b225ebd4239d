package palette

import (
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/rivo/uniseg"
)

// ParseGlyph accepts a single grapheme cluster that occupies exactly one terminal column
// An empty string is returned unchanged and selects background blocks
func ParseGlyph(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if n := uniseg.GraphemeClusterCount(s); n != 1 {
		return "", errors.Errorf("glyph %q must be a single character, got %d", s, n)
	}
	if w := runewidth.StringWidth(s); w != 1 {
		return "", errors.Errorf("glyph %q must be one column wide, got %d", s, w)
	}
	return s, nil
}
