package config

import (
	"flag"
	"fmt"
	"io"
)

// Options are command-line switches that are not part of the persisted configuration
type Options struct {
	ConfigPath string
	Dump       bool
}

// Parse reads command-line flags, loads the file named by -config and applies explicitly set
// flags on top. The result is validated
func Parse(args []string, output io.Writer) (Config, Options, error) {
	var opts Options
	fs := flag.NewFlagSet("drift-arena", flag.ContinueOnError)
	fs.SetOutput(output)

	def := Default()
	fs.StringVar(&opts.ConfigPath, "config", "", "TOML configuration file")
	fs.BoolVar(&opts.Dump, "dump", false, "Print the resolved configuration and initial arena, then exit")
	headless := fs.Bool("headless", def.Run.Headless, "Run without a terminal for -ticks steps")
	ticks := fs.Int("ticks", def.Run.Ticks, "Number of steps in headless mode")
	trace := fs.String("trace", def.Run.TracePath, "Record a tick trace to this file")
	debug := fs.Bool("debug", def.Run.Debug, "Enable file logging")
	logDir := fs.String("log-dir", def.Run.LogDir, "Directory for log files")
	logLevel := fs.String("log-level", def.Run.LogLevel, "Log level: debug, info, warn, error")
	sound := fs.Bool("sound", def.Run.Sound, "Play reflection and contact cues")
	color := fs.String("color", def.Run.ColorMode, "Color mode: auto, truecolor, 256, mono")
	radius := fs.Float64("radius", def.Arena.Radius, "Arena radius in world units")
	faces := fs.Int("faces", def.Arena.Faces, "Number of arena faces")
	tickRate := fs.Int("tick-rate", def.Run.TickRate, "Simulation ticks per second")

	if err := fs.Parse(args); err != nil {
		return Config{}, opts, err
	}
	if fs.NArg() > 0 {
		return Config{}, opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := Load(opts.ConfigPath)
	if err != nil {
		return Config{}, opts, err
	}

	// Only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Run.Headless = *headless
		case "ticks":
			cfg.Run.Ticks = *ticks
		case "trace":
			cfg.Run.TracePath = *trace
		case "debug":
			cfg.Run.Debug = *debug
		case "log-dir":
			cfg.Run.LogDir = *logDir
		case "log-level":
			cfg.Run.LogLevel = *logLevel
		case "sound":
			cfg.Run.Sound = *sound
		case "color":
			cfg.Run.ColorMode = *color
		case "radius":
			cfg.Arena.Radius = *radius
		case "faces":
			cfg.Arena.Faces = *faces
		case "tick-rate":
			cfg.Run.TickRate = *tickRate
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, opts, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, opts, nil
}
