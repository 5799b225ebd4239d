package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lelandbatey/bouncing-block/vmath"
)

func TestXterm_TwelveBackgroundBlocks(t *testing.T) {
	p := Xterm("")
	require.Equal(t, 12, p.Len())
	assert.Equal(t, NameXterm, p.Name())
	assert.Equal(t, "\x1b[48;5;197m \x1b[0m", p.Entries()[0].Cell)
	assert.Equal(t, "\x1b[48;5;229m \x1b[0m", p.Entries()[11].Cell)
	for _, e := range p.Entries() {
		assert.Less(t, len(e.Cell), 64, "tag must fit a board cell")
	}
}

func TestXterm_Glyph(t *testing.T) {
	p := Xterm("o")
	assert.Equal(t, "\x1b[38;5;196mo\x1b[0m", p.Entries()[3].Cell)
	assert.Equal(t, "o", p.Glyph())
}

func TestHCL_Truecolor(t *testing.T) {
	p := HCL(6, "")
	require.Equal(t, 6, p.Len())
	seen := map[string]bool{}
	for _, e := range p.Entries() {
		assert.Equal(t, -1, e.Index)
		assert.True(t, strings.HasPrefix(e.Cell, "\x1b[48;2;"))
		assert.True(t, e.Color.IsValid())
		seen[e.Cell] = true
	}
	assert.Len(t, seen, 6, "hues must be distinct")

	assert.Equal(t, DefaultHCLSize, HCL(0, "").Len())
}

func TestByName(t *testing.T) {
	p, err := ByName("", "")
	require.NoError(t, err)
	assert.Equal(t, NameXterm, p.Name())

	p, err = ByName("HCL", "*")
	require.NoError(t, err)
	assert.Equal(t, NameHCL, p.Name())

	_, err = ByName("sepia", "")
	assert.Error(t, err)
}

func TestRandomAndLookup(t *testing.T) {
	p := Xterm("")
	rng := vmath.NewFastRand(5)
	counts := make([]int, p.Len())
	for i := 0; i < 12000; i++ {
		cell := p.Random(rng)
		_, idx, ok := p.Lookup(cell)
		require.True(t, ok)
		counts[idx]++
	}
	for i, c := range counts {
		assert.Greater(t, c, 500, "entry %d underrepresented", i)
	}

	_, idx, ok := p.Lookup("X")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestXtermRGB(t *testing.T) {
	r, g, b := XtermRGB(196)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	r, g, b = XtermRGB(232)
	assert.Equal(t, [3]uint8{8, 8, 8}, [3]uint8{r, g, b})

	r, g, b = XtermRGB(9)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	assert.Equal(t, uint8(196), Cube256(5, 0, 0))
	assert.Equal(t, uint8(231), Cube256(9, 9, 9))
}

func TestParseGlyph(t *testing.T) {
	for _, ok := range []string{"", "o", "*", "\u00e9"} {
		g, err := ParseGlyph(ok)
		assert.NoError(t, err, ok)
		assert.Equal(t, ok, g)
	}
	for _, bad := range []string{"ab", "漢", "\x1b"} {
		_, err := ParseGlyph(bad)
		assert.Error(t, err, bad)
	}
}
