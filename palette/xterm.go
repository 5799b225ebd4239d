package palette

import colorful "github.com/lucasb-eyer/go-colorful"

// Xterm 256-color palette layout
//
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

// cubeValues are the channel levels of the 6x6x6 cube
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// systemColors are the xterm defaults for indices 0-15
var systemColors = [16][3]uint8{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return 16 + 36*r + 6*g + b
}

// XtermRGB returns the 24-bit value xterm displays for a palette index
func XtermRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		c := systemColors[index]
		return c[0], c[1], c[2]
	case index < 232:
		n := index - 16
		return cubeValues[n/36], cubeValues[(n%36)/6], cubeValues[n%6]
	default:
		level := 8 + 10*(index-232)
		return level, level, level
	}
}

// XtermColor returns the palette index as a colorful.Color
func XtermColor(index uint8) colorful.Color {
	r, g, b := XtermRGB(index)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
