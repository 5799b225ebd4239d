// Package palette builds the color tags trajectories paint into board cells.
//
// A tag is a complete cell string: an SGR color sequence, the glyph, and an
// SGR reset. Printed on its own it shows a single colored cell.
package palette

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Palette names accepted by ByName
const (
	NameXterm = "xterm"
	NameHCL   = "hcl"
)

// DefaultHCLSize is the number of hues generated for the hcl palette
const DefaultHCLSize = 12

const sgrReset = "\x1b[0m"

// Rand is the randomness used to pick a tag
type Rand interface {
	Intn(n int) int
}

// Entry is one palette color and the cell text it renders as
type Entry struct {
	Name  string
	Index int // xterm-256 index, -1 for 24-bit entries
	Color colorful.Color
	Cell  string
}

// Palette is an ordered set of entries with reverse lookup by cell text
type Palette struct {
	name    string
	glyph   string
	entries []Entry
	byCell  map[string]int
}

// xtermColors is the fixed twelve-color set of the animation
var xtermColors = []struct {
	name  string
	index uint8
}{
	{"pink", 197},
	{"magenta", 162},
	{"purple", 54},
	{"red", 196},
	{"green", 34},
	{"sea green", 35},
	{"lime", 40},
	{"navy", 19},
	{"blue", 20},
	{"sky blue", 39},
	{"yellow", 226},
	{"pale yellow", 229},
}

// Xterm returns the twelve xterm-256 tags
// An empty glyph paints a background block; otherwise the glyph is drawn in the foreground color
func Xterm(glyph string) *Palette {
	p := newPalette(NameXterm, glyph, len(xtermColors))
	for _, c := range xtermColors {
		p.add(Entry{
			Name:  c.name,
			Index: int(c.index),
			Color: XtermColor(c.index),
			Cell:  xtermCell(c.index, glyph),
		})
	}
	return p
}

// HCL returns n evenly spaced hues of equal chroma and lightness as 24-bit tags
func HCL(n int, glyph string) *Palette {
	if n <= 0 {
		n = DefaultHCLSize
	}
	p := newPalette(NameHCL, glyph, n)
	for i := 0; i < n; i++ {
		hue := float64(i) * 360 / float64(n)
		c := colorful.Hcl(hue, 0.75, 0.7).Clamped()
		p.add(Entry{
			Name:  c.Hex(),
			Index: -1,
			Color: c,
			Cell:  truecolorCell(c, glyph),
		})
	}
	return p
}

// ByName resolves a palette name
func ByName(name, glyph string) (*Palette, error) {
	switch strings.ToLower(name) {
	case "", NameXterm, "256":
		return Xterm(glyph), nil
	case NameHCL, "truecolor":
		return HCL(DefaultHCLSize, glyph), nil
	default:
		return nil, errors.Errorf("unknown palette %q (expected %s or %s)", name, NameXterm, NameHCL)
	}
}

func newPalette(name, glyph string, size int) *Palette {
	return &Palette{
		name:    name,
		glyph:   glyph,
		entries: make([]Entry, 0, size),
		byCell:  make(map[string]int, size),
	}
}

func (p *Palette) add(e Entry) {
	p.byCell[e.Cell] = len(p.entries)
	p.entries = append(p.entries, e)
}

// Name returns the palette name
func (p *Palette) Name() string {
	return p.name
}

// Glyph returns the painted glyph; empty for background blocks
func (p *Palette) Glyph() string {
	return p.glyph
}

// Len returns the number of entries
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns the entries in palette order
func (p *Palette) Entries() []Entry {
	return p.entries
}

// Random picks a cell tag uniformly
func (p *Palette) Random(rng Rand) string {
	return p.entries[rng.Intn(len(p.entries))].Cell
}

// Lookup finds the entry whose tag is exactly cell
func (p *Palette) Lookup(cell string) (Entry, int, bool) {
	i, ok := p.byCell[cell]
	if !ok {
		return Entry{}, -1, false
	}
	return p.entries[i], i, true
}

func xtermCell(index uint8, glyph string) string {
	if glyph == "" {
		return fmt.Sprintf("\x1b[48;5;%dm %s", index, sgrReset)
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s%s", index, glyph, sgrReset)
}

func truecolorCell(c colorful.Color, glyph string) string {
	r, g, b := c.RGB255()
	if glyph == "" {
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm %s", r, g, b, sgrReset)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s%s", r, g, b, glyph, sgrReset)
}
