package vmath

import (
	"math"
)

// --- 2D Traversal (Supercover DDA) ---

// Traverse visits every grid cell intersected by the segment from (x1, y1) to (x2, y2)
// Coordinates are in cell units: cell (i, j) covers [i, i+1) × [j, j+1)
// Uses Supercover DDA so no cell on the line is skipped; terminates on the target cell
// Returning false from callback stops the walk
func Traverse(x1, y1, x2, y2 float64, callback func(x, y int) bool) {
	ix, iy := int(math.Floor(x1)), int(math.Floor(y1))
	targetX, targetY := int(math.Floor(x2)), int(math.Floor(y2))

	if !callback(ix, iy) {
		return
	}
	if ix == targetX && iy == targetY {
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// tMax: parametric distance to the first vertical/horizontal cell boundary
	// tDelta: parametric width of one cell
	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	var tDeltaX, tDeltaY float64
	if dx > 0 {
		tDeltaX = 1 / dx
		fx := x1 - math.Floor(x1)
		if stepX > 0 {
			tMaxX = (1 - fx) * tDeltaX
		} else {
			tMaxX = fx * tDeltaX
		}
	}
	if dy > 0 {
		tDeltaY = 1 / dy
		fy := y1 - math.Floor(y1)
		if stepY > 0 {
			tMaxY = (1 - fy) * tDeltaY
		} else {
			tMaxY = fy * tDeltaY
		}
	}

	for ix != targetX || iy != targetY {
		switch {
		case tMaxX < tMaxY:
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		case tMaxX > tMaxY:
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				// Y is done, forced to step X
				ix += stepX
				tMaxX += tDeltaX
			}
		default:
			// Diagonal step through a corner
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			return
		}
	}
}
