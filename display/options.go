package display

import (
	"github.com/lelandbatey/bouncing-block/engine"
	"github.com/lelandbatey/bouncing-block/palette"
	"github.com/lelandbatey/bouncing-block/trajectory"
)

type options struct {
	clock        engine.TimeProvider
	fpsClock     engine.TimeProvider
	seed         uint64
	seeded       bool
	palette      *palette.Palette
	bottomOrigin bool
	mutators     []func(*trajectory.Settings)
	onBounce     func(color string)
}

// Option configures a Display at construction
type Option func(*options)

// WithClock sets the time source shared by the board and every trajectory
func WithClock(clock engine.TimeProvider) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithFPSClock times the board's FPS window with a separate clock
// Hosts that pause the animation clock pass the wall clock here so the
// one-second window keeps closing while paused
func WithFPSClock(clock engine.TimeProvider) Option {
	return func(o *options) {
		o.fpsClock = clock
	}
}

// WithSeed makes the spawn sequence reproducible
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithPalette replaces the default xterm palette
func WithPalette(p *palette.Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithBottomOrigin draws trajectories bouncing off the bottom row
func WithBottomOrigin() Option {
	return func(o *options) {
		o.bottomOrigin = true
	}
}

// WithSettings adjusts settings after the height-derived max velocity is applied
func WithSettings(fn func(*trajectory.Settings)) Option {
	return func(o *options) {
		o.mutators = append(o.mutators, fn)
	}
}

// WithBounceHandler is called with a trajectory's color each time its arc restarts during a frame
func WithBounceHandler(fn func(color string)) Option {
	return func(o *options) {
		o.onBounce = fn
	}
}
