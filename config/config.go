package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/drift-arena/arena"
	"github.com/lixenwraith/drift-arena/constants"
	"github.com/lixenwraith/drift-arena/physics"
	"github.com/lixenwraith/drift-arena/sim"
	"github.com/lixenwraith/drift-arena/vmath"
)

// Vec is a TOML-friendly 2D value: `velocity = { x = 100, y = 125 }`
type Vec struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

func (v Vec) V2F() vmath.Vec2F { return vmath.Vec2F{X: v.X, Y: v.Y} }

type ArenaConfig struct {
	Radius    float64 `toml:"radius"`
	Faces     int     `toml:"faces"`
	Thickness float64 `toml:"thickness"`
	Velocity  Vec     `toml:"velocity"`
}

type BallConfig struct {
	Radius      float64 `toml:"radius"`
	Mass        float64 `toml:"mass"`
	Restitution float64 `toml:"restitution"`
	Start       Vec     `toml:"start"`
	Contain     bool    `toml:"contain"`
}

type PhysicsConfig struct {
	PixelsPerMeter float64 `toml:"pixels_per_meter"`
	// Gravity is in m/s² and scaled by PixelsPerMeter
	Gravity    Vec `toml:"gravity"`
	Iterations int `toml:"iterations"`
}

type ViewportConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

type RunConfig struct {
	TickRate  int    `toml:"tick_rate"`
	Headless  bool   `toml:"headless"`
	Ticks     int    `toml:"ticks"`
	TracePath string `toml:"trace"`
	Debug     bool   `toml:"debug"`
	LogDir    string `toml:"log_dir"`
	LogLevel  string `toml:"log_level"`
	Sound     bool   `toml:"sound"`
	ColorMode string `toml:"color"`
}

// Config is the full application configuration
type Config struct {
	Arena    ArenaConfig    `toml:"arena"`
	Ball     BallConfig     `toml:"ball"`
	Physics  PhysicsConfig  `toml:"physics"`
	Viewport ViewportConfig `toml:"viewport"`
	Run      RunConfig      `toml:"run"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Radius:    constants.ArenaRadius,
			Faces:     constants.ArenaFaces,
			Thickness: constants.ArenaThickness,
			Velocity:  Vec{constants.ArenaVelocityX, constants.ArenaVelocityY},
		},
		Ball: BallConfig{
			Radius:      constants.BallRadius,
			Mass:        constants.BallMass,
			Restitution: constants.BallRestitution,
			Start:       Vec{constants.BallStartX, constants.BallStartY},
		},
		Physics: PhysicsConfig{
			PixelsPerMeter: constants.PixelsPerMeter,
			Gravity:        Vec{0, -constants.StandardGravity},
			Iterations:     constants.SolverIterations,
		},
		Viewport: ViewportConfig{
			Width:      constants.ViewportWidth,
			Height:     constants.ViewportHeight,
			CellWidth:  constants.CellWidth,
			CellHeight: constants.CellHeight,
		},
		Run: RunConfig{
			TickRate:  constants.DefaultTickRate,
			Ticks:     constants.DefaultHeadlessTicks,
			LogDir:    constants.LogDir,
			LogLevel:  "info",
			Sound:     true,
			ColorMode: "auto",
		},
	}
}

// Load overlays a TOML file on the defaults. Keys absent from the file keep their default;
// unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.decode(string(data)); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

var ErrUnknownKey = errors.New("unknown configuration key")

// Validate reports every violation at once
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	finite := func(name string, v Vec) {
		if !vmath.V2FIsFinite(v.V2F()) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", name, v))
		}
	}

	positive("arena.radius", c.Arena.Radius)
	if c.Arena.Faces < arena.MinFaces {
		errs = append(errs, fmt.Errorf("arena.faces must be at least %d, got %d", arena.MinFaces, c.Arena.Faces))
	}
	positive("arena.thickness", c.Arena.Thickness)
	finite("arena.velocity", c.Arena.Velocity)

	positive("ball.radius", c.Ball.Radius)
	positive("ball.mass", c.Ball.Mass)
	if c.Ball.Restitution < 0 || math.IsNaN(c.Ball.Restitution) {
		errs = append(errs, fmt.Errorf("ball.restitution must be non-negative, got %v", c.Ball.Restitution))
	}
	finite("ball.start", c.Ball.Start)

	positive("physics.pixels_per_meter", c.Physics.PixelsPerMeter)
	finite("physics.gravity", c.Physics.Gravity)
	if c.Physics.Iterations < 1 {
		errs = append(errs, fmt.Errorf("physics.iterations must be at least 1, got %d", c.Physics.Iterations))
	}

	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positive("viewport.cell_width", c.Viewport.CellWidth)
	positive("viewport.cell_height", c.Viewport.CellHeight)

	if c.Run.TickRate < 1 {
		errs = append(errs, fmt.Errorf("run.tick_rate must be at least 1, got %d", c.Run.TickRate))
	}
	if c.Run.Ticks < 0 {
		errs = append(errs, fmt.Errorf("run.ticks must be non-negative, got %d", c.Run.Ticks))
	}
	switch c.Run.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("run.log_level must be debug, info, warn or error, got %q", c.Run.LogLevel))
	}
	switch c.Run.ColorMode {
	case "auto", "truecolor", "256", "mono":
	default:
		errs = append(errs, fmt.Errorf("run.color must be auto, truecolor, 256 or mono, got %q", c.Run.ColorMode))
	}

	return errors.Join(errs...)
}

// TickDelta returns the fixed step length in seconds
func (c Config) TickDelta() float64 {
	return 1 / float64(c.Run.TickRate)
}

// Sim maps the configuration onto the simulation layer
func (c Config) Sim() sim.Config {
	return sim.Config{
		Arena: arena.Config{
			Radius:    c.Arena.Radius,
			Faces:     c.Arena.Faces,
			Thickness: c.Arena.Thickness,
			Velocity:  c.Arena.Velocity.V2F(),
		},
		Physics: physics.Config{
			Gravity:    vmath.V2FScale(c.Physics.Gravity.V2F(), c.Physics.PixelsPerMeter),
			Iterations: c.Physics.Iterations,
		},
		Ball: physics.BallConfig{
			Radius:      c.Ball.Radius,
			Mass:        c.Ball.Mass,
			Restitution: c.Ball.Restitution,
			Start:       c.Ball.Start.V2F(),
		},
		ContainBall: c.Ball.Contain,
	}
}
