// Package config loads the animation settings from an optional TOML file.
// Precedence is defaults, then file, then command-line flags; the command
// applies the flags after Load.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lelandbatey/bouncing-block/palette"
	"github.com/lelandbatey/bouncing-block/trajectory"
)

// Output modes
const (
	ModeANSI   = "ansi"
	ModeScreen = "screen"
)

// Built-in board size and frame interval
const (
	DefaultWidth  = 159
	DefaultHeight = 37
	DefaultTick   = 10 * time.Millisecond
)

// Duration decodes TOML strings like "500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "parse duration %q", text)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full set of user-tunable settings
type Config struct {
	Width         int      `toml:"width"`
	Height        int      `toml:"height"`
	Fit           bool     `toml:"fit"`
	SpawnCount    int      `toml:"spawn_count"`
	MinVelocity   int      `toml:"min_velocity"`
	MaxVelocity   int      `toml:"max_velocity"` // 0 derives from height
	VerticalScale float64  `toml:"vertical_scale"`
	SpawnInterval Duration `toml:"spawn_interval"`
	Tick          Duration `toml:"tick"`
	Frames        int      `toml:"frames"` // 0 runs until interrupted
	Mode          string   `toml:"mode"`
	Palette       string   `toml:"palette"`
	Glyph         string   `toml:"glyph"`
	Floor         bool     `toml:"floor"`
	Sound         bool     `toml:"sound"`
	Seed          uint64   `toml:"seed"` // 0 seeds from the clock
	Debug         bool     `toml:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		SpawnCount:    trajectory.DefaultSpawnCount,
		MinVelocity:   trajectory.DefaultMinVelocity,
		VerticalScale: trajectory.DefaultVerticalScale,
		SpawnInterval: Duration{trajectory.DefaultSpawnInterval},
		Tick:          Duration{DefaultTick},
		Mode:          ModeANSI,
		Palette:       palette.NameXterm,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/bounce/config.toml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bounce", "config.toml")
}

// Load reads path over the defaults
// An empty path or a missing default file yields the defaults
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "stat config")
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if !c.Fit && (c.Width <= 0 || c.Height <= 0) {
		return errors.Errorf("board size %dx%d must be positive", c.Width, c.Height)
	}
	if c.SpawnCount < 0 {
		return errors.Errorf("spawn_count %d is negative", c.SpawnCount)
	}
	if c.MinVelocity < 0 {
		return errors.Errorf("min_velocity %d is negative", c.MinVelocity)
	}
	if c.MaxVelocity != 0 && c.MaxVelocity < c.MinVelocity {
		return errors.Errorf("max_velocity %d below min_velocity %d", c.MaxVelocity, c.MinVelocity)
	}
	if c.VerticalScale <= 0 {
		return errors.Errorf("vertical_scale %g must be positive", c.VerticalScale)
	}
	if c.SpawnInterval.Duration < 0 {
		return errors.Errorf("spawn_interval %s is negative", c.SpawnInterval)
	}
	if c.Tick.Duration <= 0 {
		return errors.Errorf("tick %s must be positive", c.Tick)
	}
	if c.Frames < 0 {
		return errors.Errorf("frames %d is negative", c.Frames)
	}
	switch c.Mode {
	case ModeANSI, ModeScreen:
	default:
		return errors.Errorf("unknown mode %q (want %s or %s)", c.Mode, ModeANSI, ModeScreen)
	}
	switch c.Palette {
	case palette.NameXterm, palette.NameHCL:
	default:
		return errors.Errorf("unknown palette %q (want %s or %s)", c.Palette, palette.NameXterm, palette.NameHCL)
	}
	if c.Glyph != "" {
		if _, err := palette.ParseGlyph(c.Glyph); err != nil {
			return errors.Wrap(err, "glyph")
		}
	}
	return nil
}

// Encode writes c as TOML
func (c Config) Encode(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "encode config")
}
