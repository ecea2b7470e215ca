package blockpuzzle

import (
	"fmt"

	"github.com/vovakirdan/blockpuzzle/internal/core"
)

const (
	blockRune = '█'
	emptyRune = '·'
	hudWidth  = 16 // Side panel including gap
)

// RenderOptions controls presentation details that are not game state.
type RenderOptions struct {
	CellWidth int  // Characters per cell, 1 or 2
	Paused    bool // Draw the pause overlay
}

// Render draws a snapshot centered on dst: the framed playfield, a side
// panel with score and lines, and pause/game-over overlays.
func Render(dst *core.Screen, snap Snapshot, opts RenderOptions) {
	dst.Clear()

	cw := opts.CellWidth
	if cw < 1 {
		cw = 1
	}

	boardW := snap.Width*cw + 2
	boardH := snap.Height + 2
	totalW := boardW + hudWidth

	if dst.Width() < totalW || dst.Height() < boardH {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - totalW) / 2
	boardY := (dst.Height() - boardH) / 2

	board := core.NewRect(boardX, boardY, boardW, boardH)
	dst.DrawBox(board, core.ColorGray)

	for y, row := range snap.Cells {
		for x, c := range row {
			r := emptyRune
			if c != Empty {
				r = blockRune
			}
			for i := 0; i < cw; i++ {
				// A dot per cell reads better than two in double-width mode.
				if r == emptyRune && i > 0 {
					dst.Set(boardX+1+x*cw+i, boardY+1+y, ' ')
					continue
				}
				dst.SetColored(boardX+1+x*cw+i, boardY+1+y, r, c)
			}
		}
	}

	renderHUD(dst, snap, board.Right()+2, boardY+1)

	switch {
	case snap.GameOver:
		renderOverlay(dst, board, "GAME OVER", "r restart  q quit")
	case opts.Paused:
		renderOverlay(dst, board, "PAUSED", "p resume")
	}
}

func renderHUD(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawTextColored(x, y, "BLOCK PUZZLE", core.ColorWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines: %d", snap.Lines))
}

// renderOverlay prints a title and hint in the middle of the board.
func renderOverlay(dst *core.Screen, board core.Rect, title, hint string) {
	midY := board.Y + board.H/2
	titleX := board.X + (board.W-len(title))/2
	dst.DrawTextColored(titleX, midY-1, title, core.ColorYellow)

	hintX := board.X + (board.W-len(hint))/2
	if hintX <= board.X {
		hintX = board.X + 1
	}
	dst.DrawText(hintX, midY+1, hint)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}
