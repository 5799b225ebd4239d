// Package terminal handles the plain ANSI output path: the escape sequences
// written around the animation, the frame Stream that reserves screen space
// for cursor-reset frames, terminal detection and size queries, and the
// best-effort EmergencyReset used by the crash handler.
//
// Full-screen rendering lives in package render on top of tcell; this package
// only deals with a raw io.Writer.
package terminal
