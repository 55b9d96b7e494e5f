package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/goforj/godump"

	"github.com/lixenwraith/drift-arena/arena"
	"github.com/lixenwraith/drift-arena/audio"
	"github.com/lixenwraith/drift-arena/config"
	"github.com/lixenwraith/drift-arena/core"
	"github.com/lixenwraith/drift-arena/log"
	"github.com/lixenwraith/drift-arena/sim"
	"github.com/lixenwraith/drift-arena/vmath"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the run crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, opts, err := config.Parse(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "drift-arena: %v\n", err)
		return 2
	}

	if opts.Dump {
		if err := dump(stdout, cfg); err != nil {
			fmt.Fprintf(stderr, "drift-arena: %v\n", err)
			return 1
		}
		return 0
	}

	logger, err := log.New(cfg.Run.Debug, cfg.Run.LogLevel, cfg.Run.LogDir)
	if err != nil {
		fmt.Fprintf(stderr, "drift-arena: %v\n", err)
		return 1
	}
	defer logger.Close()
	logger.Info("config resolved",
		slog.Float64("radius", cfg.Arena.Radius),
		slog.Int("faces", cfg.Arena.Faces),
		slog.Int("tick_rate", cfg.Run.TickRate),
		slog.Bool("headless", cfg.Run.Headless))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Run.Headless {
		summary, err := runHeadless(ctx, cfg, logger)
		if err != nil {
			logger.Error("headless run failed", slog.Any("error", err))
			fmt.Fprintf(stderr, "drift-arena: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, summary)
		return 0
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)

	var sounds *audio.SoundManager
	if cfg.Run.Sound {
		sounds = audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			// Audio is optional
			logger.Warn("audio unavailable, continuing without sound", slog.Any("error", err))
			sounds = nil
		} else {
			defer sounds.Cleanup()
		}
	}

	stats, err := runInteractive(ctx, cfg, screen, sounds, logger)
	if err != nil {
		logger.Error("interactive run failed", slog.Any("error", err))
		fmt.Fprintf(stderr, "drift-arena: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, formatSummary(stats))
	return 0
}

// dump prints the resolved configuration and the arena it builds
func dump(w io.Writer, cfg config.Config) error {
	sc := cfg.Sim()
	a, err := arena.New(sc.Arena, nil)
	if err != nil {
		return err
	}
	godump.Fdump(w, cfg)
	godump.Fdump(w, a.Snapshot())
	return nil
}

// formatSummary renders the run totals as one line
func formatSummary(s sim.Stats) string {
	return fmt.Sprintf("ticks=%d elapsed=%.3fs center=%s velocity=%s reflections_x=%d reflections_y=%d contacts=%d ball=%s",
		s.Ticks, s.Elapsed, formatVec(s.LastCenter), formatVec(s.LastVelocity),
		s.ReflectionsX, s.ReflectionsY, s.Contacts, formatVec(s.LastBall))
}

func formatVec(v vmath.Vec2F) string {
	return fmt.Sprintf("(%.3f,%.3f)", v.X, v.Y)
}

// logEvents returns a step listener that records reflections and contacts at debug level
func logEvents(logger *log.Logger) sim.Listener {
	return func(r sim.StepResult) {
		if r.Drift.Reflected() {
			logger.Debug("arena reflected",
				slog.Uint64("tick", r.Tick),
				slog.Bool("x", r.Drift.ReflectedX),
				slog.Bool("y", r.Drift.ReflectedY),
				slog.Float64("vx", r.Drift.State.Velocity.X),
				slog.Float64("vy", r.Drift.State.Velocity.Y))
		}
		if r.Contacts > 0 {
			logger.Debug("ball contact", slog.Uint64("tick", r.Tick), slog.Int("count", r.Contacts))
		}
	}
}
