package render

import (
	"fmt"

	"github.com/lixenwraith/drift-arena/constants"
)

// RingRenderer draws every boundary chord
type RingRenderer struct {
	Style Styles
}

func (r *RingRenderer) Render(ctx RenderContext, c *Canvas) {
	for _, seg := range ctx.Arena.Segments {
		a, b := seg.Endpoints()
		c.DrawLine(a, b, constants.RuneRing, r.Style.Ring)
	}
}

// CoreRenderer marks the drifting arena center
type CoreRenderer struct {
	Style Styles
}

func (r *CoreRenderer) Render(ctx RenderContext, c *Canvas) {
	x, y := c.WorldToCell(ctx.Arena.Center.Position)
	c.SetCell(x, y, constants.RuneCore, r.Style.Core)
}

// BallRenderer draws the physics-owned ball as a filled disc
type BallRenderer struct {
	Style Styles
}

func (r *BallRenderer) Render(ctx RenderContext, c *Canvas) {
	c.FillDisc(ctx.Ball.Position, ctx.Ball.Radius, constants.RuneBall, r.Style.Ball)
}

// StatusRenderer writes the status line on the last row
type StatusRenderer struct {
	Style   Styles
	visible bool
}

func NewStatusRenderer(s Styles) *StatusRenderer {
	return &StatusRenderer{Style: s, visible: true}
}

// Toggle flips status line visibility
func (r *StatusRenderer) Toggle() {
	r.visible = !r.visible
}

func (r *StatusRenderer) IsVisible() bool {
	return r.visible
}

func (r *StatusRenderer) Render(ctx RenderContext, c *Canvas) {
	line := StatusLine(ctx)
	c.Text(0, c.Rows-1, line, r.Style.Status)
	if ctx.IsPaused {
		const label = " PAUSED "
		c.Text(c.Cols-len(label), c.Rows-1, label, r.Style.Paused)
	}
}

// StatusLine formats the run summary shown at the bottom of the screen
func StatusLine(ctx RenderContext) string {
	p := ctx.Arena.Center.Position
	v := ctx.Arena.Center.Velocity
	return fmt.Sprintf("t=%d  center=(%.0f,%.0f)  vel=(%.0f,%.0f)  reflections=%d/%d  contacts=%d  [space]pause [r]eset [s]tatus [q]uit",
		ctx.Tick, p.X, p.Y, v.X, v.Y, ctx.Stats.ReflectionsX, ctx.Stats.ReflectionsY, ctx.Stats.Contacts)
}

// RegisterDefaults installs the standard layers and returns the status renderer for toggling
func RegisterDefaults(o *RenderOrchestrator, s Styles) *StatusRenderer {
	status := NewStatusRenderer(s)
	o.Register(&RingRenderer{Style: s}, PriorityRing)
	o.Register(&CoreRenderer{Style: s}, PriorityCore)
	o.Register(&BallRenderer{Style: s}, PriorityBall)
	o.Register(status, PriorityUI)
	return status
}
