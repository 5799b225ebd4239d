package main

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lelandbatey/bouncing-block/audio"
	"github.com/lelandbatey/bouncing-block/config"
	"github.com/lelandbatey/bouncing-block/display"
	"github.com/lelandbatey/bouncing-block/engine"
	"github.com/lelandbatey/bouncing-block/palette"
	"github.com/lelandbatey/bouncing-block/status"
	"github.com/lelandbatey/bouncing-block/trajectory"
)

// frameTimeAlpha weights the newest sample of the frame time average
const frameTimeAlpha = 0.1

// session is the display plus everything a frame loop feeds from it
type session struct {
	display *display.Display
	palette *palette.Palette
	status  *status.Registry
	bouncer *audio.Bouncer

	// Cached metric pointers, written every frame
	fps, balls, capacity, frames, bounces, frameBytes *atomic.Int64
	frameMillis                                       *status.AtomicFloat
	paused                                            *atomic.Bool
}

func newSession(cfg config.Config, width, height int, clock engine.TimeProvider, extra ...display.Option) (*session, error) {
	pal, err := palette.ByName(cfg.Palette, cfg.Glyph)
	if err != nil {
		return nil, err
	}

	s := &session{
		palette: pal,
		status:  status.NewRegistry(),
	}
	s.fps = s.status.Ints.Get(status.KeyFPS)
	s.balls = s.status.Ints.Get(status.KeyTrajectories)
	s.capacity = s.status.Ints.Get(status.KeyCapacity)
	s.frames = s.status.Ints.Get(status.KeyFrames)
	s.bounces = s.status.Ints.Get(status.KeyBounces)
	s.frameBytes = s.status.Ints.Get(status.KeyFrameBytes)
	s.frameMillis = s.status.Floats.Get(status.KeyFrameMillis)
	s.paused = s.status.Bools.Get(status.KeyPaused)

	opts := []display.Option{
		display.WithClock(clock),
		display.WithPalette(pal),
		display.WithSettings(func(ts *trajectory.Settings) {
			ts.SpawnCount = cfg.SpawnCount
			ts.MinVelocity = cfg.MinVelocity
			if cfg.MaxVelocity > 0 {
				ts.MaxVelocity = cfg.MaxVelocity
			}
			if ts.MaxVelocity < ts.MinVelocity {
				ts.MaxVelocity = ts.MinVelocity
			}
			ts.VerticalScale = cfg.VerticalScale
			ts.SpawnInterval = cfg.SpawnInterval.Duration
		}),
	}
	if cfg.Seed != 0 {
		opts = append(opts, display.WithSeed(cfg.Seed))
	}
	if cfg.Floor {
		opts = append(opts, display.WithBottomOrigin())
	}

	if cfg.Sound {
		b := audio.NewBouncer(pal)
		if err := b.Initialize(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			s.bouncer = b
			opts = append(opts, display.WithBounceHandler(func(color string) { b.Bounce(color) }))
		}
	}

	s.display = display.New(width, height, append(opts, extra...)...)
	if err := s.display.Settings().Validate(); err != nil {
		s.close()
		return nil, err
	}
	s.display.CreateTrajectories()

	log.Printf("session: board %dx%d, %s palette, settings %+v", width, height, pal.Name(), s.display.Settings())
	return s, nil
}

// frame advances the animation one tick and publishes its counters
func (s *session) frame() []byte {
	start := time.Now()
	if s.bouncer != nil {
		s.bouncer.NextFrame()
	}

	out := s.display.GetFrame()

	st := s.display.Stats()
	s.fps.Store(int64(st.FPS))
	s.balls.Store(int64(st.Trajectories))
	s.capacity.Store(int64(st.Capacity))
	s.frames.Store(int64(st.Frames))
	s.bounces.Store(int64(st.Bounces))
	s.frameBytes.Store(int64(len(out)))
	s.frameMillis.Smooth(float64(time.Since(start).Microseconds())/1000, frameTimeAlpha)
	return out
}

func (s *session) setPaused(paused bool) {
	s.paused.Store(paused)
	log.Printf("paused=%v", paused)
}

func (s *session) close() {
	if s.bouncer != nil {
		s.bouncer.Cleanup()
	}
	log.Printf("session closed: %s", s.status.Line())
}
