package blockpuzzle

import "github.com/vovakirdan/blockpuzzle/internal/core"

// Snapshot is an immutable copy of the engine state, safe to hand to another
// goroutine. Cells is the visible grid (committed cells plus falling piece).
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Score    int
	Lines    int
	Width    int
	Height   int
	Cells    [][]core.Color
	GameOver bool
}

// Snapshot returns the current state for rendering and determinism checks.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:     e.ticks,
		Phase:    e.phase,
		Score:    e.score,
		Lines:    e.lines,
		Width:    e.width,
		Height:   e.height,
		Cells:    e.VisibleGrid(),
		GameOver: e.IsGameOver(),
	}
}
