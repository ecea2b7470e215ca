// Package config provides YAML-based configuration for the puzzle: grid size,
// fall timing and presentation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockpuzzle/internal/core"
)

// PuzzleConfig contains all configuration for the block puzzle.
type PuzzleConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Render RenderConfig `yaml:"render"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the automatic descent period.
type TimingConfig struct {
	FallIntervalMS int `yaml:"fall_interval_ms"`
}

// RenderConfig defines presentation options.
type RenderConfig struct {
	CellWidth int  `yaml:"cell_width"` // 1 or 2 characters per cell
	ShowHelp  bool `yaml:"show_help"`  // Key help line under the board
}

// Minimum playable grid size.
const (
	MinGridWidth  = 4
	MinGridHeight = 4
)

// FallInterval returns the descent period as a duration.
func (c PuzzleConfig) FallInterval() time.Duration {
	return time.Duration(c.Timing.FallIntervalMS) * time.Millisecond
}

// Validate reports every problem with the configuration at once.
func (c PuzzleConfig) Validate() error {
	var errs []error
	if c.Grid.Width < MinGridWidth {
		errs = append(errs, fmt.Errorf("grid.width %d is below minimum %d", c.Grid.Width, MinGridWidth))
	}
	if c.Grid.Height < MinGridHeight {
		errs = append(errs, fmt.Errorf("grid.height %d is below minimum %d", c.Grid.Height, MinGridHeight))
	}
	if c.Timing.FallIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fall_interval_ms must be positive, got %d", c.Timing.FallIntervalMS))
	}
	if c.Render.CellWidth != 1 && c.Render.CellWidth != 2 {
		errs = append(errs, fmt.Errorf("render.cell_width must be 1 or 2, got %d", c.Render.CellWidth))
	}
	return errors.Join(errs...)
}

// Apply copies the game-relevant settings into a runtime config.
func (c PuzzleConfig) Apply(rc core.RuntimeConfig) core.RuntimeConfig {
	rc.GridW = c.Grid.Width
	rc.GridH = c.Grid.Height
	rc.FallInterval = c.FallInterval()
	rc.CellWidth = c.Render.CellWidth
	return rc
}
