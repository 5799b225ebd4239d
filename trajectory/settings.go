package trajectory

import (
	"time"

	"github.com/pkg/errors"
)

// Defaults for a freshly built Settings
const (
	DefaultWidth         = 500
	DefaultHeight        = 300
	DefaultSpawnCount    = 10
	DefaultVerticalScale = 0.5
	DefaultMinVelocity   = 8
	DefaultMaxVelocity   = 24 // replaced by vmath.DefaultVelocity(height) when a display is built
	DefaultSpawnInterval = 500 * time.Millisecond
)

// Settings controls spawning and motion of trajectories
type Settings struct {
	Width  int
	Height int

	// SpawnCount is both the number of trajectories seeded up front and the
	// ceiling the periodic top-up never exceeds
	SpawnCount int

	// VerticalScale multiplies the gravity term of the vertical parabola
	VerticalScale float64

	// MinVelocity and MaxVelocity bound the random launch velocities
	MinVelocity int
	MaxVelocity int

	// SpawnInterval rate-limits the top-up check
	SpawnInterval time.Duration
}

// NewSettings returns the defaults
func NewSettings() Settings {
	return Settings{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		SpawnCount:    DefaultSpawnCount,
		VerticalScale: DefaultVerticalScale,
		MinVelocity:   DefaultMinVelocity,
		MaxVelocity:   DefaultMaxVelocity,
		SpawnInterval: DefaultSpawnInterval,
	}
}

// Validate reports the first inconsistent field
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return errors.Errorf("board size %dx%d must be positive", s.Width, s.Height)
	case s.SpawnCount < 0:
		return errors.Errorf("spawn count %d must not be negative", s.SpawnCount)
	case s.MinVelocity < 0:
		return errors.Errorf("min velocity %d must not be negative", s.MinVelocity)
	case s.MaxVelocity < s.MinVelocity:
		return errors.Errorf("max velocity %d is below min velocity %d", s.MaxVelocity, s.MinVelocity)
	case s.VerticalScale <= 0:
		return errors.Errorf("vertical scale %v must be positive", s.VerticalScale)
	case s.SpawnInterval < 0:
		return errors.Errorf("spawn interval %v must not be negative", s.SpawnInterval)
	}
	return nil
}
