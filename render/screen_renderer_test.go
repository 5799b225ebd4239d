package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lelandbatey/bouncing-block/board"
	"github.com/lelandbatey/bouncing-block/engine"
	"github.com/lelandbatey/bouncing-block/palette"
	"github.com/lelandbatey/bouncing-block/status"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func newBoard(w, h int) *board.Board {
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	return board.New(w, h, board.WithClock(clock))
}

func rowText(screen tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestScreenRenderer_BlockPalette(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	pal := palette.Xterm("")
	b := newBoard(10, 3)
	b.SetCell(2, 1, pal.Entries()[0].Cell)

	r := NewScreenRenderer(screen, pal, nil)
	r.Draw(b)

	ch, _, style, _ := screen.GetContent(2, 1)
	assert.Equal(t, ' ', ch)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(pal.Entries()[0].Index), bg)

	// Untouched cell keeps the default style
	_, _, style, _ = screen.GetContent(3, 1)
	assert.Equal(t, tcell.StyleDefault, style)
}

func TestScreenRenderer_GlyphPalette(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	pal := palette.Xterm("o")
	b := newBoard(10, 3)
	b.SetCell(0, 0, pal.Entries()[5].Cell)

	NewScreenRenderer(screen, pal, nil).Draw(b)

	ch, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'o', ch)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(pal.Entries()[5].Index), fg)
}

func TestScreenRenderer_TruecolorPalette(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	pal := palette.HCL(4, "")
	b := newBoard(10, 3)
	e := pal.Entries()[1]
	b.SetCell(4, 2, e.Cell)

	NewScreenRenderer(screen, pal, nil).Draw(b)

	_, _, style, _ := screen.GetContent(4, 2)
	_, bg, _ := style.Decompose()
	cr, cg, cb := e.Color.Clamped().RGB255()
	assert.Equal(t, tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)), bg)
}

func TestScreenRenderer_PlainText(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	b := newBoard(10, 3)
	b.SetCell(0, 0, "abc")
	b.SetCell(1, 0, "世")
	b.SetCell(2, 0, "")

	NewScreenRenderer(screen, palette.Xterm(""), nil).Draw(b)

	assert.Equal(t, "a?", rowText(screen, 0, 2))
	ch, _, _, _ := screen.GetContent(2, 0)
	assert.Equal(t, ' ', ch, "empty cell draws as blank")
}

func TestScreenRenderer_StatusLine(t *testing.T) {
	screen := newSimScreen(t, 24, 6)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyFPS).Store(60)
	reg.Ints.Get(status.KeyTrajectories).Store(3)

	b := newBoard(10, 3)
	NewScreenRenderer(screen, palette.Xterm(""), reg).Draw(b)

	assert.Equal(t, " balls 3  fps 60", strings.TrimRight(rowText(screen, 3, 24), " "))
	_, _, style, _ := screen.GetContent(23, 3)
	_, bg, _ := style.Decompose()
	assert.Equal(t, rgbStatusBg, bg, "status row is padded to the screen width")
}

func TestScreenRenderer_StatusHiddenWhenBoardFillsScreen(t *testing.T) {
	screen := newSimScreen(t, 10, 3)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyFPS).Store(60)

	b := newBoard(10, 3)
	assert.NotPanics(t, func() {
		NewScreenRenderer(screen, palette.Xterm(""), reg).Draw(b)
	})
}

func TestScreenRenderer_ClipsToScreen(t *testing.T) {
	screen := newSimScreen(t, 5, 2)
	pal := palette.Xterm("")
	b := newBoard(10, 4)
	b.SetCell(9, 3, pal.Entries()[0].Cell)

	assert.NotPanics(t, func() {
		NewScreenRenderer(screen, pal, nil).Draw(b)
	})
}

func TestScreenRenderer_MarksBoardClean(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	b := newBoard(4, 2)
	b.GetFrame()
	require.True(t, b.Dirty())

	NewScreenRenderer(screen, nil, nil).Draw(b)
	assert.False(t, b.Dirty())
}
