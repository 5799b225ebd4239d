package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lelandbatey/bouncing-block/board"
	"github.com/lelandbatey/bouncing-block/config"
	"github.com/lelandbatey/bouncing-block/core"
	"github.com/lelandbatey/bouncing-block/display"
	"github.com/lelandbatey/bouncing-block/engine"
	"github.com/lelandbatey/bouncing-block/render"
	"github.com/lelandbatey/bouncing-block/terminal"
)

func runBounce(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeScreen:
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "open screen")
		}
		if err := screen.Init(); err != nil {
			return errors.Wrap(err, "init screen")
		}
		return runScreen(ctx, cfg, screen)
	default:
		return runANSI(ctx, cfg, cmd.OutOrStdout())
	}
}

// runANSI writes cursor-reset frames to out until the frame limit or ctx ends
func runANSI(ctx context.Context, cfg config.Config, out io.Writer) error {
	width, height := cfg.Width, cfg.Height
	if f, ok := out.(*os.File); ok && cfg.Fit {
		switch {
		case terminal.IsTerminal(f):
			width, height = terminal.FitBoard(terminal.Size(f))
		case width <= 0 || height <= 0:
			width, height = terminal.FitBoard(terminal.FallbackWidth, terminal.FallbackHeight)
		default:
			log.Printf("ansi: output is not a terminal, keeping %dx%d", width, height)
		}
	}

	s, err := newSession(cfg, width, height, engine.NewMonotonicTimeProvider())
	if err != nil {
		return err
	}
	defer s.close()

	stream := terminal.NewStream(out, board.FrameCapacity(width, height))
	core.SetCleanup(func() { stream.End() })
	defer core.SetCleanup(nil)

	if err := stream.Begin(height); err != nil {
		return err
	}
	// End is idempotent; the deferred call restores the cursor on panic
	defer stream.End()

	loop := engine.Loop{Interval: cfg.Tick.Duration, Frames: cfg.Frames}
	runErr := loop.Run(ctx, func(frame int) error {
		return stream.WriteFrame(s.frame())
	})

	if err := stream.End(); err != nil && runErr == nil {
		runErr = err
	}
	log.Printf("ansi: %d frames, %d bytes", stream.Frames(), stream.BytesWritten())
	return runErr
}

// runScreen drives an initialized tcell screen and finalizes it on return
func runScreen(ctx context.Context, cfg config.Config, screen tcell.Screen) error {
	core.SetCleanup(screen.Fini)
	defer core.SetCleanup(nil)
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	width, height := cfg.Width, cfg.Height
	if cfg.Fit {
		sw, sh := screen.Size()
		width, height = terminal.FitBoard(sw, sh+1)
	}

	// Physics follows the pausable clock; the FPS window keeps wall time
	wall := engine.NewMonotonicTimeProvider()
	clock := engine.NewPausableClock(wall)
	s, err := newSession(cfg, width, height, clock, display.WithFPSClock(wall))
	if err != nil {
		return err
	}
	defer s.close()

	renderer := render.NewScreenRenderer(screen, s.palette, s.status)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { render.PollEvents(screen, events, done) })

	// drain handles queued events and reports whether to stop
	drain := func() bool {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return true
				}
				switch render.HandleEvent(ev) {
				case render.ActionQuit:
					return true
				case render.ActionPause:
					s.setPaused(clock.Toggle())
				case render.ActionResize:
					screen.Sync()
				}
			default:
				return false
			}
		}
	}

	loop := engine.Loop{Interval: cfg.Tick.Duration, Frames: cfg.Frames}
	return loop.Run(ctx, func(frame int) error {
		if drain() {
			return engine.ErrStop
		}
		s.frame()
		renderer.Draw(s.display.Board())
		return nil
	})
}
