package board

// CellCapacity is the storage size of one cell, terminator slot included
const CellCapacity = 64

// Cell is a fixed-capacity text buffer
// Zero value is an empty cell, which renders as zero bytes
type Cell struct {
	buf [CellCapacity - 1]byte
	n   uint8
}

// Set copies value into the cell, stopping at the first NUL byte and
// truncating to CellCapacity-1 bytes
func (c *Cell) Set(value string) {
	n := 0
	for n < len(value) && n < len(c.buf) {
		b := value[n]
		if b == 0 {
			break
		}
		c.buf[n] = b
		n++
	}
	c.n = uint8(n)
}

// Blank resets the cell to a single space
func (c *Cell) Blank() {
	c.buf[0] = ' '
	c.n = 1
}

// Empty reports whether the cell contributes no bytes to a frame
func (c *Cell) Empty() bool {
	return c.n == 0
}

// Bytes returns the cell contents; the slice aliases the cell
func (c *Cell) Bytes() []byte {
	return c.buf[:c.n]
}

// String returns a copy of the cell contents
func (c *Cell) String() string {
	return string(c.buf[:c.n])
}
