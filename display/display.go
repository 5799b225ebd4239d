// Package display drives the animation: it owns the board, the trajectory
// list and the spawn settings, and produces one rendered frame per tick.
package display

import (
	"time"

	"github.com/lelandbatey/bouncing-block/board"
	"github.com/lelandbatey/bouncing-block/engine"
	"github.com/lelandbatey/bouncing-block/palette"
	"github.com/lelandbatey/bouncing-block/trajectory"
	"github.com/lelandbatey/bouncing-block/vmath"
)

// Display is the per-process animation state
// Not safe for concurrent use; one host loop calls GetFrame per tick
type Display struct {
	settings trajectory.Settings
	board    *board.Board
	list     *trajectory.List
	palette  *palette.Palette

	clock engine.TimeProvider
	rng   *vmath.FastRand

	lastSpawnCheck float64
	bounces        int
	onBounce       func(color string)
}

// Stats is a snapshot of the animation counters
type Stats struct {
	Trajectories int
	Capacity     int
	Frames       int
	FPS          int
	Bounces      int
}

// New builds a display for a width x height board
// The trajectory list starts empty; call CreateTrajectories to seed it
func New(width, height int, opts ...Option) *Display {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = engine.NewMonotonicTimeProvider()
	}
	if !o.seeded {
		o.seed = uint64(time.Now().UnixNano())
	}
	if o.palette == nil {
		o.palette = palette.Xterm("")
	}

	settings := trajectory.NewSettings()
	settings.Width = width
	settings.Height = height
	settings.MaxVelocity = vmath.DefaultVelocity(height)
	for _, fn := range o.mutators {
		fn(&settings)
	}

	if o.fpsClock == nil {
		o.fpsClock = o.clock
	}

	boardOpts := []board.Option{board.WithClock(o.fpsClock)}
	if o.bottomOrigin {
		boardOpts = append(boardOpts, board.WithBottomOrigin())
	}

	return &Display{
		settings:       settings,
		board:          board.New(width, height, boardOpts...),
		list:           trajectory.NewList(settings.SpawnCount),
		palette:        o.palette,
		clock:          o.clock,
		rng:            vmath.NewFastRand(o.seed),
		lastSpawnCheck: engine.NowSeconds(o.clock),
		onBounce:       o.onBounce,
	}
}

// CreateTrajectories seeds the list up to SpawnCount random trajectories
func (d *Display) CreateTrajectories() *Display {
	now := engine.NowSeconds(d.clock)
	d.topUp(now)
	return d
}

// Spawn pushes a trajectory with explicit velocities and color
// It returns false without creating anything once SpawnCount trajectories exist
func (d *Display) Spawn(xVel, yVel float64, color string) (*trajectory.Trajectory, bool) {
	if d.list.Len() >= d.settings.SpawnCount {
		return nil, false
	}
	t := d.newTrajectory(engine.NowSeconds(d.clock), xVel, yVel, color)
	if !d.list.Push(t) {
		return nil, false
	}
	return t, true
}

// RandomColor picks a tag from the display palette
func (d *Display) RandomColor() string {
	return d.palette.Random(d.rng)
}

// GetFrame advances the animation and returns the rendered frame
// The slice aliases the board's buffer and is overwritten by the next call
func (d *Display) GetFrame() []byte {
	now := engine.NowSeconds(d.clock)

	if now-d.lastSpawnCheck > d.settings.SpawnInterval.Seconds() {
		d.lastSpawnCheck = now
		d.topUp(now)
	}

	d.board.Clear()
	d.list.Each(func(t *trajectory.Trajectory) {
		launched := t.LastReset
		t.Draw(d.board, now)
		if t.LastReset != launched {
			d.bounces++
			if d.onBounce != nil {
				d.onBounce(t.Color())
			}
		}
	})

	return d.board.GetFrame()
}

// Stats returns the current counters
func (d *Display) Stats() Stats {
	return Stats{
		Trajectories: d.list.Len(),
		Capacity:     d.settings.SpawnCount,
		Frames:       d.board.Frames(),
		FPS:          d.board.FPS(),
		Bounces:      d.bounces,
	}
}

// Settings returns a copy of the active settings
func (d *Display) Settings() trajectory.Settings {
	return d.settings
}

// Board returns the owned board
func (d *Display) Board() *board.Board {
	return d.board
}

// Trajectories returns the owned list
func (d *Display) Trajectories() *trajectory.List {
	return d.list
}

// Palette returns the palette colors are drawn from
func (d *Display) Palette() *palette.Palette {
	return d.palette
}

// topUp adds random trajectories until SpawnCount is reached
func (d *Display) topUp(now float64) {
	for d.list.Len() < d.settings.SpawnCount {
		if !d.list.Push(d.randomTrajectory(now)) {
			return
		}
	}
}

func (d *Display) randomTrajectory(now float64) *trajectory.Trajectory {
	lo := float64(d.settings.MinVelocity)
	hi := float64(d.settings.MaxVelocity)

	xVel := d.rng.Range(lo, hi)
	yVel := vmath.SkewParabola(d.rng.Range(lo, hi), lo, hi)
	return d.newTrajectory(now, xVel, yVel, d.RandomColor())
}

func (d *Display) newTrajectory(now, xVel, yVel float64, color string) *trajectory.Trajectory {
	t := trajectory.New(now, d.rng, xVel, yVel, color)
	t.VerticalScale = d.settings.VerticalScale
	return t
}
