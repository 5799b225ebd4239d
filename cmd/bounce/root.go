package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lelandbatey/bouncing-block/config"
)

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bouncing balls in the terminal",
	Long: `bounce - colored balls thrown across the terminal under gravity.

Two output modes are available:
  ansi    writes raw frames that move the cursor back over the previous one
  screen  takes over the terminal (q or Esc to quit, p or space to pause)

Settings come from built-in defaults, then the config file, then flags.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBounce,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/bounce/config.toml)")
	addAnimationFlags(rootCmd)
}

func addAnimationFlags(cmd *cobra.Command) {
	d := config.Default()
	f := cmd.Flags()

	f.IntP("width", "W", d.Width, "Board width in columns")
	f.IntP("height", "H", d.Height, "Board height in rows")
	f.Bool("fit", d.Fit, "Size the board to the terminal")
	f.IntP("count", "n", d.SpawnCount, "Number of balls kept in flight")
	f.Int("min-vel", d.MinVelocity, "Minimum launch velocity")
	f.Int("max-vel", d.MaxVelocity, "Maximum launch velocity (0 derives it from the height)")
	f.Float64("vertical-scale", d.VerticalScale, "Gravity multiplier for the vertical arc")
	f.Duration("spawn-interval", d.SpawnInterval.Duration, "How often missing balls are replaced")
	f.Duration("tick", d.Tick.Duration, "Frame interval")
	f.Int("frames", d.Frames, "Stop after this many frames (0 runs until interrupted)")
	f.StringP("mode", "m", d.Mode, "Output mode: ansi, screen")
	f.String("palette", d.Palette, "Palette: xterm, hcl")
	f.String("glyph", d.Glyph, "Draw this character instead of a colored block")
	f.Bool("floor", d.Floor, "Put row 0 at the bottom of the board")
	f.Bool("sound", d.Sound, "Play a blip on every bounce")
	f.Uint64("seed", d.Seed, "Random seed (0 seeds from the clock)")
	f.Bool("debug", d.Debug, "Write a debug log to "+logDir+"/"+logFileName)
}

// loadConfig applies defaults, then the config file, then flags the user set
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, err
	}
	applyFlags(cmd, &cfg)
	return cfg, cfg.Validate()
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()

	if f.Changed("width") {
		cfg.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		cfg.Height, _ = f.GetInt("height")
	}
	if f.Changed("fit") {
		cfg.Fit, _ = f.GetBool("fit")
	}
	if f.Changed("count") {
		cfg.SpawnCount, _ = f.GetInt("count")
	}
	if f.Changed("min-vel") {
		cfg.MinVelocity, _ = f.GetInt("min-vel")
	}
	if f.Changed("max-vel") {
		cfg.MaxVelocity, _ = f.GetInt("max-vel")
	}
	if f.Changed("vertical-scale") {
		cfg.VerticalScale, _ = f.GetFloat64("vertical-scale")
	}
	if f.Changed("spawn-interval") {
		cfg.SpawnInterval.Duration, _ = f.GetDuration("spawn-interval")
	}
	if f.Changed("tick") {
		cfg.Tick.Duration, _ = f.GetDuration("tick")
	}
	if f.Changed("frames") {
		cfg.Frames, _ = f.GetInt("frames")
	}
	if f.Changed("mode") {
		cfg.Mode, _ = f.GetString("mode")
	}
	if f.Changed("palette") {
		cfg.Palette, _ = f.GetString("palette")
	}
	if f.Changed("glyph") {
		cfg.Glyph, _ = f.GetString("glyph")
	}
	if f.Changed("floor") {
		cfg.Floor, _ = f.GetBool("floor")
	}
	if f.Changed("sound") {
		cfg.Sound, _ = f.GetBool("sound")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("debug") {
		cfg.Debug, _ = f.GetBool("debug")
	}
}
