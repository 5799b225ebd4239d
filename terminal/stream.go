package terminal

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Stream writes cursor-reset frames to a plain writer
// Begin reserves the rows the first frame moves back over so it does not
// overwrite earlier shell output; End restores the cursor below the last frame
type Stream struct {
	w       *bufio.Writer
	started bool
	frames  int
	bytes   int64
}

// NewStream wraps w; the buffer is sized for one frame of the given capacity
func NewStream(w io.Writer, frameCapacity int) *Stream {
	if frameCapacity < 4096 {
		frameCapacity = 4096
	}
	return &Stream{w: bufio.NewWriterSize(w, frameCapacity)}
}

// Begin hides the cursor and reserves height lines plus the FPS line
func (s *Stream) Begin(height int) error {
	if s.started {
		return nil
	}
	s.w.Write(csiCursorHide)
	for i := 0; i < height; i++ {
		s.w.Write(crlf)
	}
	s.started = true
	return errors.Wrap(s.w.Flush(), "reserve frame rows")
}

// WriteFrame writes one complete frame and flushes it
func (s *Stream) WriteFrame(frame []byte) error {
	if !s.started {
		return errors.New("stream not started")
	}
	n, err := s.w.Write(frame)
	s.bytes += int64(n)
	if err != nil {
		return errors.Wrap(err, "write frame")
	}
	if err := s.w.Flush(); err != nil {
		return errors.Wrap(err, "flush frame")
	}
	s.frames++
	return nil
}

// End resets attributes, moves past the FPS line and shows the cursor
// Safe to call more than once
func (s *Stream) End() error {
	if !s.started {
		return nil
	}
	s.started = false
	s.w.Write(csiSGR0)
	s.w.Write(crlf)
	s.w.Write(csiCursorShow)
	return errors.Wrap(s.w.Flush(), "restore cursor")
}

// Frames returns the number of frames written
func (s *Stream) Frames() int { return s.frames }

// BytesWritten returns the total frame bytes written
func (s *Stream) BytesWritten() int64 { return s.bytes }
