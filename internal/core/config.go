package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	GridW        int           // Playfield width in cells
	GridH        int           // Playfield height in cells
	FallInterval time.Duration // Period of automatic descent
	CellWidth    int           // Characters per grid cell (1 or 2)
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		GridW:        10,
		GridH:        20,
		FallInterval: time.Second,
		CellWidth:    2,
		Seed:         0, // 0 means use current time in platform layer
	}
}
