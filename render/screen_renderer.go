package render

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lelandbatey/bouncing-block/board"
	"github.com/lelandbatey/bouncing-block/palette"
	"github.com/lelandbatey/bouncing-block/status"
)

// Status bar colors
var (
	rgbStatusFg = tcell.NewRGBColor(200, 200, 200)
	rgbStatusBg = tcell.NewRGBColor(30, 30, 40)
)

type paint struct {
	r     rune
	style tcell.Style
}

// ScreenRenderer draws boards onto a tcell screen
type ScreenRenderer struct {
	screen      tcell.Screen
	palette     *palette.Palette
	status      *status.Registry
	base        tcell.Style
	statusStyle tcell.Style
	paints      []paint // indexed like palette entries
}

// NewScreenRenderer precomputes one style per palette entry
// status may be nil to hide the status line
func NewScreenRenderer(screen tcell.Screen, p *palette.Palette, reg *status.Registry) *ScreenRenderer {
	r := &ScreenRenderer{
		screen:      screen,
		palette:     p,
		status:      reg,
		base:        tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Foreground(rgbStatusFg).Background(rgbStatusBg),
	}
	if p != nil {
		glyph := glyphRune(p.Glyph())
		r.paints = make([]paint, p.Len())
		for i, e := range p.Entries() {
			color := entryColor(e)
			if glyph == 0 {
				r.paints[i] = paint{' ', r.base.Background(color)}
			} else {
				r.paints[i] = paint{glyph, r.base.Foreground(color)}
			}
		}
	}
	return r
}

// Draw paints every board cell and the status line, then shows the screen
func (r *ScreenRenderer) Draw(b *board.Board) {
	sw, sh := r.screen.Size()

	for y := 0; y < b.Height() && y < sh; y++ {
		row := b.Row(y)
		for x := 0; x < len(row) && x < sw; x++ {
			p := r.cellPaint(&row[x])
			r.screen.SetContent(x, y, p.r, nil, p.style)
		}
	}

	if r.status != nil && b.Height() < sh {
		r.drawStatus(b.Height(), sw)
	}

	r.screen.Show()
	b.MarkClean()
}

// cellPaint resolves a board cell to a rune and style
func (r *ScreenRenderer) cellPaint(c *board.Cell) paint {
	if c.Empty() {
		return paint{' ', r.base}
	}
	text := c.String()
	if r.palette != nil {
		if _, i, ok := r.palette.Lookup(text); ok {
			return r.paints[i]
		}
	}
	ch, _ := utf8.DecodeRuneInString(text)
	if ch == utf8.RuneError || runewidth.RuneWidth(ch) != 1 {
		ch = '?'
	}
	return paint{ch, r.base}
}

// drawStatus writes the registry line at row y, padded to the screen width
func (r *ScreenRenderer) drawStatus(y, width int) {
	x := 0
	for _, ch := range " " + r.status.Line() {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, r.statusStyle)
		x += w
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.statusStyle)
	}
}

// entryColor prefers the xterm index so 256-color terminals get exact matches
func entryColor(e palette.Entry) tcell.Color {
	if e.Index >= 0 {
		return tcell.PaletteColor(e.Index)
	}
	return rgbColor(e.Color)
}

func rgbColor(c colorful.Color) tcell.Color {
	cr, cg, cb := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

// glyphRune returns 0 for background-block palettes
func glyphRune(glyph string) rune {
	if glyph == "" {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(glyph)
	return ch
}
