package constants

// Arena Defaults
const (
	// ArenaRadius is the circumradius of the boundary ring in world units
	ArenaRadius = 250.0

	// ArenaFaces is the number of chords approximating the circle
	ArenaFaces = 64

	// ArenaThickness is the collider thickness of each chord
	ArenaThickness = 1.0

	// ArenaVelocityX and ArenaVelocityY are the initial drift velocity (units/sec)
	ArenaVelocityX = 100.0
	ArenaVelocityY = 125.0
)

// Ball Defaults
const (
	BallRadius      = 50.0
	BallMass        = 1.0
	BallRestitution = 1.0
	BallStartX      = 0.0
	BallStartY      = 200.0
)

// Physics Defaults
const (
	// PixelsPerMeter converts SI gravity into world units
	PixelsPerMeter = 100.0

	// StandardGravity in m/s²
	StandardGravity = 9.81

	SolverIterations = 10
)

// Viewport Defaults
const (
	// ViewportWidth and ViewportHeight match a default desktop window
	ViewportWidth  = 1280.0
	ViewportHeight = 720.0

	// CellWidth and CellHeight are world units covered by one terminal cell
	// Terminal cells are roughly twice as tall as wide
	CellWidth  = 16.0
	CellHeight = 32.0
)
