package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift-arena/vmath"
)

// Canvas is the per-frame drawing surface handed to renderers
type Canvas struct {
	Mapper
	screen tcell.Screen
}

// NewCanvas wraps a screen with a world mapping
func NewCanvas(screen tcell.Screen, cellW, cellH float64) *Canvas {
	cols, rows := screen.Size()
	return &Canvas{screen: screen, Mapper: Mapper{Cols: cols, Rows: rows, CellWidth: cellW, CellHeight: cellH}}
}

// SetCell draws r at (x, y); out-of-bounds cells are ignored
func (c *Canvas) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.Cols || y >= c.Rows {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// DrawLine rasterizes a world-space segment
func (c *Canvas) DrawLine(a, b vmath.Vec2F, r rune, style tcell.Style) {
	ax, ay := c.WorldToGrid(a)
	bx, by := c.WorldToGrid(b)
	vmath.Traverse(ax, ay, bx, by, func(x, y int) bool {
		c.SetCell(x, y, r, style)
		return true
	})
}

// FillDisc fills every cell whose center lies within radius of center
// The cell containing center is always drawn
func (c *Canvas) FillDisc(center vmath.Vec2F, radius float64, r rune, style tcell.Style) {
	cx, cy := c.WorldToCell(center)
	c.SetCell(cx, cy, r, style)

	spanX := int(math.Ceil(radius/c.CellWidth)) + 1
	spanY := int(math.Ceil(radius/c.CellHeight)) + 1
	r2 := radius * radius
	for y := cy - spanY; y <= cy+spanY; y++ {
		for x := cx - spanX; x <= cx+spanX; x++ {
			if vmath.V2FMagSq(vmath.V2FSub(c.CellToWorld(x, y), center)) <= r2 {
				c.SetCell(x, y, r, style)
			}
		}
	}
}

// Text writes s starting at (x, y), clipped to the row
func (c *Canvas) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.SetCell(x, y, r, style)
		x++
	}
}
