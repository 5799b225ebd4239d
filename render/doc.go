// Package render draws a board onto a tcell screen for the full-screen mode.
//
// Palette tags written by trajectories are complete SGR strings. The renderer
// maps them back to palette entries so tcell owns the escape sequences and
// the damage tracking. Cells that do not match the palette are drawn as their
// first character in the default style.
package render
