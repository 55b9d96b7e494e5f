package constants

// Render Runes
const (
	RuneRing = '#'
	RuneCore = '+'
	RuneBall = 'o'
)

// Log Defaults
const (
	LogDir      = "logs"
	LogFileName = "drift-arena.slog"
	// LogMaxSizeMB is the lumberjack rotation threshold
	LogMaxSizeMB  = 10
	LogMaxBackups = 1
)
