// Package trajectory models the bouncing objects: a time-driven parabolic
// motion law per object, the ordered list that owns them, and spawn settings.
package trajectory

import (
	"math"
	"strings"

	"github.com/lelandbatey/bouncing-block/board"
)

// BaseGravity is the downward acceleration every trajectory is perturbed from
const BaseGravity = -9.8

// Rand is the randomness a trajectory draws from at creation
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Trajectory is one colored glyph moving across a board
//
// Horizontal position grows linearly with age and wraps at the board width.
// Vertical position follows y = vy*t + g*s*t^2 with t measured from the last
// reset and doubled to speed up the bounce; when y drops to zero or below the
// arc restarts.
type Trajectory struct {
	StartTime float64 // epoch seconds, jittered backward at creation
	LastReset float64 // epoch seconds of the current arc's launch

	XVelocity float64
	YVelocity float64

	Gravity       float32
	VerticalScale float64

	color string
}

// New creates a trajectory launched at now
// color is copied; the trajectory never aliases caller memory
func New(now float64, rng Rand, xVel, yVel float64, color string) *Trajectory {
	return &Trajectory{
		StartTime:     now - rng.Float64()*rng.Float64(),
		LastReset:     now,
		XVelocity:     xVel,
		YVelocity:     yVel,
		Gravity:       float32(rng.Float64()*float64(rng.Intn(3)-1) + BaseGravity),
		VerticalScale: DefaultVerticalScale,
		color:         strings.Clone(color),
	}
}

// Color returns the cell text drawn for this trajectory
func (t *Trajectory) Color() string {
	return t.color
}

// X returns the unwrapped horizontal position at now
func (t *Trajectory) X(now float64) float64 {
	return t.XVelocity * (now - t.StartTime)
}

// Y returns the height at now, restarting the arc when it would be at or below zero
// reset reports whether the arc restarted on this call
func (t *Trajectory) Y(now float64) (y float64, reset bool) {
	dt := (now - t.LastReset) * 2
	y = t.YVelocity*dt + dt*dt*(float64(t.Gravity)*t.VerticalScale)
	if y <= 0 {
		if now > t.LastReset {
			t.LastReset = now
		}
		return 0, true
	}
	return y, false
}

// Cell returns the grid position at now for a width x height board
// Columns wrap; rows above the board are clamped to its last row
func (t *Trajectory) Cell(now float64, width, height int) (col, row int) {
	y, _ := t.Y(now)
	row = int(math.Floor(y))
	if height > 0 && row >= height {
		row = height - 1
	}

	if width > 0 {
		col = int(math.Floor(t.X(now))) % width
		if col < 0 {
			col += width
		}
	}
	return col, row
}

// Draw writes the trajectory's color into its current cell on b
func (t *Trajectory) Draw(b *board.Board, now float64) {
	col, row := t.Cell(now, b.Width(), b.Height())
	b.SetCell(col, row, t.color)
}
