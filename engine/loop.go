package engine

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrStop ends a Loop without reporting an error
var ErrStop = errors.New("loop stopped")

// Loop drives one callback per tick, the way the animation host redraws a frame
// Interval <= 0 runs frames back to back; Frames <= 0 means unlimited
type Loop struct {
	Interval time.Duration
	Frames   int
}

// Run calls fn with a zero-based frame number until ctx is done, the frame limit is
// reached, or fn returns an error. ErrStop and context cancellation return nil.
func (l Loop) Run(ctx context.Context, fn func(frame int) error) error {
	var tick <-chan time.Time
	if l.Interval > 0 {
		ticker := time.NewTicker(l.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for frame := 0; l.Frames <= 0 || frame < l.Frames; frame++ {
		if ctx.Err() != nil {
			return nil
		}
		if frame > 0 && tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		}

		if err := fn(frame); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return errors.Wrapf(err, "frame %d", frame)
		}
	}
	return nil
}
