package config

import (
	_ "embed"
)

//go:embed defaults/blockpuzzle.yaml
var defaultPuzzleYAML []byte

// DefaultPuzzleConfig returns the built-in configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			FallIntervalMS: 1000,
		},
		Render: RenderConfig{
			CellWidth: 2,
			ShowHelp:  true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPuzzleYAML
}
