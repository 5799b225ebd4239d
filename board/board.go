package board

import (
	"strconv"

	"github.com/lelandbatey/bouncing-block/engine"
)

// cursorReset moves the cursor to column 0 of the previous line
var cursorReset = []byte("\r\x1b[1F")

var rowEnd = []byte("\r\n")

// fpsReserve covers the longest decimal int64 plus the C terminator slot the frame bound was sized for
const fpsReserve = 22

// Board is a grid of cells plus the frame buffer and FPS bookkeeping
type Board struct {
	width  int
	height int

	// Row-major: cells[y*width + x]
	cells []Cell
	out   []byte

	bottomOrigin bool
	clock        engine.TimeProvider

	dirty        bool
	frames       int
	rowsRendered int

	fpsAccum      int
	fps           int
	lastFPSSample float64
}

// Option configures a Board at construction
type Option func(*Board)

// WithClock sets the time source for FPS sampling
func WithClock(clock engine.TimeProvider) Option {
	return func(b *Board) {
		b.clock = clock
	}
}

// WithBottomOrigin makes row 0 the bottom row of the rendered frame
func WithBottomOrigin() Option {
	return func(b *Board) {
		b.bottomOrigin = true
	}
}

// New allocates a width x height board with every cell holding a single space
// Non-positive dimensions produce a board that renders only the FPS line
func New(width, height int, opts ...Option) *Board {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	b := &Board{
		width:  width,
		height: height,
		clock:  engine.NewMonotonicTimeProvider(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.cells = make([]Cell, width*height)
	b.Clear()
	b.out = make([]byte, 0, FrameCapacity(width, height))
	b.lastFPSSample = engine.NowSeconds(b.clock)
	return b
}

// FrameCapacity is the worst-case size of one rendered frame
func FrameCapacity(width, height int) int {
	return (width*CellCapacity+len(cursorReset)+len(rowEnd))*height + fpsReserve
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Clear resets every cell to a single space
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i].Blank()
	}
}

// SetCell copies value into the cell at (x, y), wrapping both coordinates into the grid
// An empty value leaves the cell truly empty, unlike Clear which writes a space
func (b *Board) SetCell(x, y int, value string) {
	if b.width <= 0 || b.height <= 0 {
		return
	}
	if b.bottomOrigin {
		y = (b.height - 1) - y
	}
	x = wrap(x, b.width)
	y = wrap(y, b.height)
	b.cells[y*b.width+x].Set(value)
}

// Cell returns a copy of the contents at (x, y) using the same wrapping as SetCell
func (b *Board) Cell(x, y int) string {
	if b.width <= 0 || b.height <= 0 {
		return ""
	}
	if b.bottomOrigin {
		y = (b.height - 1) - y
	}
	return b.cells[wrap(y, b.height)*b.width+wrap(x, b.width)].String()
}

// Row returns the cells of screen row y (top to bottom, ignoring origin)
// The slice aliases the board and is only valid until the next mutation
func (b *Board) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}

// GetFrame renders the grid and FPS counter into the reused output buffer
// The returned slice is overwritten by the next call; copy it to keep it
func (b *Board) GetFrame() []byte {
	out := b.out[:0]

	for i := 0; i < b.height; i++ {
		out = append(out, cursorReset...)
	}

	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			if !row[x].Empty() {
				out = append(out, row[x].Bytes()...)
			}
		}
		out = append(out, rowEnd...)
		b.rowsRendered++
	}

	now := engine.NowSeconds(b.clock)
	if now-b.lastFPSSample >= 1.0 {
		b.fps = b.fpsAccum
		b.fpsAccum = 0
		b.lastFPSSample = now
	}
	b.fpsAccum++

	out = strconv.AppendInt(out, int64(b.fps), 10)

	b.out = out
	b.frames++
	b.dirty = true
	return out
}

// Dirty reports whether a frame was rendered since the last MarkClean
func (b *Board) Dirty() bool {
	return b.dirty
}

// MarkClean records that the latest frame has been consumed
func (b *Board) MarkClean() {
	b.dirty = false
}

// Frames returns the number of GetFrame calls
func (b *Board) Frames() int {
	return b.frames
}

// RowsRendered returns the number of grid rows emitted across all frames
func (b *Board) RowsRendered() int {
	return b.rowsRendered
}

// FPS returns the frame count of the last completed one-second window
func (b *Board) FPS() int {
	return b.fps
}

// wrap maps v into [0, n) for n > 0
func wrap(v, n int) int {
	return ((v % n) + n) % n
}
