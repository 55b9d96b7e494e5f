package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift-arena/arena"
	"github.com/lixenwraith/drift-arena/physics"
	"github.com/lixenwraith/drift-arena/sim"
	"github.com/lixenwraith/drift-arena/vmath"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y)
	return mainc
}

func TestMapperRoundTrip(t *testing.T) {
	m := Mapper{Cols: 80, Rows: 24, CellWidth: 16, CellHeight: 32}

	tests := []struct {
		name   string
		world  vmath.Vec2F
		cx, cy int
	}{
		{"origin", vmath.Vec2F{}, 40, 12},
		{"right", vmath.Vec2F{X: 16}, 41, 12},
		{"up is lower row", vmath.Vec2F{Y: 32}, 40, 11},
		{"down", vmath.Vec2F{Y: -1}, 40, 12},
		{"left edge", vmath.Vec2F{X: -640}, 0, 12},
		{"top edge", vmath.Vec2F{Y: 384}, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := m.WorldToCell(tt.world)
			if cx != tt.cx || cy != tt.cy {
				t.Errorf("WorldToCell(%v) = (%d,%d), want (%d,%d)", tt.world, cx, cy, tt.cx, tt.cy)
			}
			back := m.CellToWorld(cx, cy)
			bx, by := m.WorldToCell(back)
			if bx != cx || by != cy {
				t.Errorf("CellToWorld(%d,%d) = %v maps to (%d,%d)", cx, cy, back, bx, by)
			}
		})
	}
}

func TestScreenViewport(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	vp := ScreenViewport{Screen: screen, CellWidth: 16, CellHeight: 32}

	w, h := vp.Size()
	if w != 1280 || h != 768 {
		t.Fatalf("Size() = (%v,%v), want (1280,768)", w, h)
	}

	screen.SetSize(40, 12)
	w, h = vp.Size()
	if w != 640 || h != 384 {
		t.Errorf("after resize Size() = (%v,%v), want (640,384)", w, h)
	}
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	c := NewCanvas(screen, 1, 1)

	c.SetCell(-1, 0, 'x', tcell.StyleDefault)
	c.SetCell(10, 0, 'x', tcell.StyleDefault)
	c.SetCell(0, 5, 'x', tcell.StyleDefault)
	c.Text(8, 1, "abcd", tcell.StyleDefault)
	screen.Show()

	if got := runeAt(screen, 8, 1); got != 'a' {
		t.Errorf("cell (8,1) = %q, want 'a'", got)
	}
	if got := runeAt(screen, 9, 1); got != 'b' {
		t.Errorf("cell (9,1) = %q, want 'b'", got)
	}
}

func TestDrawLineIsConnected(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := NewCanvas(screen, 1, 1)

	a := vmath.Vec2F{X: -15.5, Y: -7.5}
	b := vmath.Vec2F{X: 12.3, Y: 6.2}
	c.DrawLine(a, b, '#', tcell.StyleDefault)
	screen.Show()

	sx, sy := c.WorldToCell(a)
	ex, ey := c.WorldToCell(b)
	for _, p := range [][2]int{{sx, sy}, {ex, ey}} {
		if got := runeAt(screen, p[0], p[1]); got != '#' {
			t.Errorf("endpoint cell %v = %q, want '#'", p, got)
		}
	}

	// Every drawn cell except the last has a 4-connected drawn neighbor
	drawn := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if runeAt(screen, x, y) != '#' {
				continue
			}
			drawn++
			neighbors := 0
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				if runeAt(screen, x+d[0], y+d[1]) == '#' {
					neighbors++
				}
			}
			if neighbors == 0 {
				t.Errorf("cell (%d,%d) is isolated", x, y)
			}
		}
	}
	if want := (ex - sx) + (sy - ey) + 1; drawn != want {
		t.Errorf("drawn %d cells, want %d", drawn, want)
	}
}

func TestFillDiscCoversCenter(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	c := NewCanvas(screen, 16, 32)

	// Radius smaller than a cell still marks the containing cell
	c.FillDisc(vmath.Vec2F{X: 3, Y: 3}, 1, 'o', tcell.StyleDefault)
	screen.Show()
	if got := runeAt(screen, 40, 11); got != 'o' {
		t.Errorf("center cell = %q, want 'o'", got)
	}

	screen.Clear()
	c.FillDisc(vmath.Vec2F{}, 50, 'o', tcell.StyleDefault)
	screen.Show()
	count := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if runeAt(screen, x, y) == 'o' {
				count++
				p := c.CellToWorld(x, y)
				if vmath.V2FMag(p) > 50 {
					t.Errorf("cell (%d,%d) at %v lies outside the disc", x, y, p)
				}
			}
		}
	}
	if count < 4 {
		t.Errorf("disc covered %d cells, want at least 4", count)
	}
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	o := NewRenderOrchestrator(screen)

	var order []string
	o.Register(rendererFunc(func(RenderContext, *Canvas) { order = append(order, "ui") }), PriorityUI)
	o.Register(rendererFunc(func(RenderContext, *Canvas) { order = append(order, "ring") }), PriorityRing)
	o.Register(rendererFunc(func(RenderContext, *Canvas) { order = append(order, "ball") }), PriorityBall)
	o.Register(rendererFunc(func(RenderContext, *Canvas) { order = append(order, "ring2") }), PriorityRing)

	o.RenderFrame(RenderContext{CellWidth: 1, CellHeight: 1})

	want := "ring,ring2,ball,ui"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("render order = %s, want %s", got, want)
	}
}

func TestStatusToggle(t *testing.T) {
	screen := newTestScreen(t, 120, 10)
	o := NewRenderOrchestrator(screen)
	status := RegisterDefaults(o, NewStyles(ColorModeMono, screen))

	ctx := RenderContext{Tick: 7, CellWidth: 16, CellHeight: 32}
	o.RenderFrame(ctx)
	if got := runeAt(screen, 0, 9); got != 't' {
		t.Fatalf("status line first rune = %q, want 't'", got)
	}

	status.Toggle()
	o.RenderFrame(ctx)
	if got := runeAt(screen, 0, 9); got != ' ' {
		t.Errorf("hidden status line first rune = %q, want blank", got)
	}
}

func TestFrameDrawsArena(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	cfg := sim.Config{
		Arena: arena.Config{Radius: 250, Faces: 64, Thickness: 1, Velocity: vmath.Vec2F{X: 100, Y: 125}},
		Ball:  physics.BallConfig{Radius: 50, Mass: 1, Restitution: 1, Start: vmath.Vec2F{Y: 200}},
		Physics: physics.Config{
			Iterations: 10,
		},
	}
	s, err := sim.New(cfg, ScreenViewport{Screen: screen, CellWidth: 16, CellHeight: 32})
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}

	o := NewRenderOrchestrator(screen)
	RegisterDefaults(o, NewStyles(ColorModeAuto, screen))
	o.RenderFrame(NewRenderContext(s, sim.Stats{}, false, 16, 32))

	if got := runeAt(screen, 40, 12); got != '+' {
		t.Errorf("core cell = %q, want '+'", got)
	}
	// Rightmost ring point (250, 0) lands in column 40 + 250/16
	rx := 40 + int(math.Floor(250.0/16))
	found := false
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 0; dy++ {
			if runeAt(screen, rx+dx, 12+dy) == '#' {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("no ring cell near column %d", rx)
	}
	// Ball at (0, 200) sits six rows above center
	if got := runeAt(screen, 40, 12-int(math.Ceil(200.0/32))); got != 'o' {
		t.Errorf("ball cell = %q, want 'o'", got)
	}
}

type rendererFunc func(RenderContext, *Canvas)

func (f rendererFunc) Render(ctx RenderContext, c *Canvas) { f(ctx, c) }
