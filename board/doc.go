// Package board rasterizes short cell strings into one printable terminal frame.
//
// A Board is a fixed width x height grid. Each cell holds at most CellCapacity-1
// bytes, typically one glyph wrapped in ANSI color escapes. GetFrame renders the
// whole grid into a single preallocated buffer:
//
//   - height copies of "\r\x1b[1F" (cursor up one line, column 0) so that
//     consecutive frames redraw in place
//   - every row's non-empty cells left to right, followed by "\r\n"
//   - the frames-per-second counter in decimal
//
// The buffer is reused; a returned frame is valid until the next GetFrame call.
package board
