package config

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/drift-arena/vmath"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Arena.Radius != 250 || cfg.Arena.Faces != 64 {
		t.Errorf("arena defaults = %v/%d", cfg.Arena.Radius, cfg.Arena.Faces)
	}
	if cfg.Arena.Velocity != (Vec{100, 125}) {
		t.Errorf("velocity default = %v", cfg.Arena.Velocity)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[arena]
faces = 32
velocity = { x = -40, y = 10 }

[viewport]
width = 800
height = 600

[run]
headless = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Arena.Faces != 32 {
		t.Errorf("faces = %d, want 32", cfg.Arena.Faces)
	}
	if cfg.Arena.Radius != 250 {
		t.Errorf("radius = %v, want default 250", cfg.Arena.Radius)
	}
	if cfg.Arena.Velocity != (Vec{-40, 10}) {
		t.Errorf("velocity = %v", cfg.Arena.Velocity)
	}
	if cfg.Viewport.Width != 800 || cfg.Viewport.Height != 600 {
		t.Errorf("viewport = %vx%v", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if cfg.Viewport.CellWidth != 16 {
		t.Errorf("cell width = %v, want default 16", cfg.Viewport.CellWidth)
	}
	if !cfg.Run.Headless {
		t.Error("headless not loaded")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "[arena]\nfaces = 12\nspin = 3\n")
		_, err := Load(path)
		if !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("err = %v, want ErrUnknownKey", err)
		}
		if !strings.Contains(err.Error(), "arena.spin") {
			t.Errorf("error does not name the key: %v", err)
		}
	})
	t.Run("syntax", func(t *testing.T) {
		path := writeConfig(t, "[arena\n")
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want ErrNotExist", err)
		}
	})
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil || cfg != Default() {
			t.Errorf("Load(\"\") = %v, %v", cfg, err)
		}
	})
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Arena.Radius = -1
	cfg.Arena.Faces = 2
	cfg.Ball.Restitution = -0.5
	cfg.Viewport.Width = 0
	cfg.Run.LogLevel = "loud"
	cfg.Arena.Velocity.X = math.NaN()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"arena.radius", "arena.faces", "ball.restitution", "viewport.width", "run.log_level", "arena.velocity"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error missing %s: %v", want, err)
		}
	}
}

func TestParse_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "[arena]\nfaces = 16\nradius = 100\n[run]\nticks = 5\n")

	cfg, opts, err := Parse([]string{"-config", path, "-faces", "48", "-headless", "-trace", "out.drft"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.ConfigPath != path {
		t.Errorf("config path = %q", opts.ConfigPath)
	}
	if cfg.Arena.Faces != 48 {
		t.Errorf("faces = %d, want flag value 48", cfg.Arena.Faces)
	}
	if cfg.Arena.Radius != 100 {
		t.Errorf("radius = %v, want file value 100", cfg.Arena.Radius)
	}
	if cfg.Run.Ticks != 5 {
		t.Errorf("ticks = %d, want file value 5 (flag not given)", cfg.Run.Ticks)
	}
	if !cfg.Run.Headless || cfg.Run.TracePath != "out.drft" {
		t.Errorf("run = %+v", cfg.Run)
	}
}

func TestParse_RejectsInvalid(t *testing.T) {
	if _, _, err := Parse([]string{"-faces", "2"}, io.Discard); err == nil {
		t.Error("expected error for -faces 2")
	}
	if _, _, err := Parse([]string{"-bogus"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
	if _, _, err := Parse([]string{"extra"}, io.Discard); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestSim_ScalesGravity(t *testing.T) {
	sc := Default().Sim()
	if !vmath.V2FNear(sc.Physics.Gravity, vmath.Vec2F{Y: -981}, 1e-9) {
		t.Errorf("gravity = %v, want {0 -981}", sc.Physics.Gravity)
	}
	if sc.Arena.Velocity != (vmath.Vec2F{X: 100, Y: 125}) {
		t.Errorf("arena velocity = %v", sc.Arena.Velocity)
	}
	if sc.Ball.Start != (vmath.Vec2F{Y: 200}) {
		t.Errorf("ball start = %v", sc.Ball.Start)
	}
	if d := Default().TickDelta(); math.Abs(d-1.0/60) > 1e-15 {
		t.Errorf("tick delta = %v", d)
	}
}
