package render

import (
	"github.com/lixenwraith/drift-arena/arena"
	"github.com/lixenwraith/drift-arena/physics"
	"github.com/lixenwraith/drift-arena/sim"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Tick     uint64
	IsPaused bool

	Arena arena.Snapshot
	Ball  physics.BallState
	Stats sim.Stats

	// World units per cell
	CellWidth  float64
	CellHeight float64
}

// NewRenderContext captures the simulation state after a completed step
func NewRenderContext(s *sim.Simulation, stats sim.Stats, paused bool, cellW, cellH float64) RenderContext {
	return RenderContext{
		Tick:       s.Tick(),
		IsPaused:   paused,
		Arena:      s.Arena(),
		Ball:       s.Ball(),
		Stats:      stats,
		CellWidth:  cellW,
		CellHeight: cellH,
	}
}
