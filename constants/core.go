package constants

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultTickRate is the simulation rate in ticks per second
	DefaultTickRate = 60

	// MaxFrameDelta caps the elapsed time fed to a single tick after a stall
	MaxFrameDelta = 250 * time.Millisecond

	// EventQueueSize is the buffered capacity between the input poller and the main loop
	EventQueueSize = 256
)

// Headless Defaults
const (
	DefaultHeadlessTicks = 600
)
