package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift-arena/vmath"
)

// Mapper converts between world space (y-up, origin at screen center) and terminal cells
type Mapper struct {
	Cols, Rows            int
	CellWidth, CellHeight float64
}

// WorldToGrid returns fractional cell coordinates; the integer part is the cell index
func (m Mapper) WorldToGrid(p vmath.Vec2F) (gx, gy float64) {
	gx = p.X/m.CellWidth + float64(m.Cols)/2
	gy = float64(m.Rows)/2 - p.Y/m.CellHeight
	return gx, gy
}

// WorldToCell returns the cell containing p
func (m Mapper) WorldToCell(p vmath.Vec2F) (cx, cy int) {
	gx, gy := m.WorldToGrid(p)
	return int(math.Floor(gx)), int(math.Floor(gy))
}

// CellToWorld returns the world position of the cell center
func (m Mapper) CellToWorld(cx, cy int) vmath.Vec2F {
	return vmath.Vec2F{
		X: (float64(cx) - float64(m.Cols)/2 + 0.5) * m.CellWidth,
		Y: (float64(m.Rows)/2 - float64(cy) - 0.5) * m.CellHeight,
	}
}

// Extent returns the world size covered by the grid
func (m Mapper) Extent() (width, height float64) {
	return float64(m.Cols) * m.CellWidth, float64(m.Rows) * m.CellHeight
}

// ScreenViewport reports the world extent of the current terminal size
// Resizing the terminal changes the drift bounds on the next tick
type ScreenViewport struct {
	Screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
}

func (v ScreenViewport) Size() (float64, float64) {
	cols, rows := v.Screen.Size()
	return Mapper{Cols: cols, Rows: rows, CellWidth: v.CellWidth, CellHeight: v.CellHeight}.Extent()
}
