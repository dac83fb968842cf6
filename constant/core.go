package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffered capacity between the input poller and the main loop
	EventChannelSize = 256

	// GameOverExitDelay is how long the final board stays on screen before exit when restart is not requested
	GameOverExitDelay = 3 * time.Second
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "term-tetris.log"

	// MaxLogSize triggers rotation of the debug log on startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)

// Config
const (
	// DefaultConfigPath is looked up relative to the working directory
	DefaultConfigPath = "term-tetris.toml"

	// ConfigReloadDebounce collapses the burst of write events editors emit on save
	ConfigReloadDebounce = 100 * time.Millisecond
)
