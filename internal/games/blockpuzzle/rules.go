package blockpuzzle

// PointsPerLine is awarded for every cleared row. Multi-line clears score
// linearly, with no bonus.
const PointsPerLine = 100

// IsValid reports whether p can occupy its position on g.
// A placement is invalid when any occupied cell lies left or right of the
// grid, at or below the floor, or on a filled cell. Cells above the top edge
// are allowed so pieces can spawn and rotate partially off-screen.
func IsValid(p Piece, g Grid) bool {
	for _, b := range p.Blocks() {
		if b.X < 0 || b.X >= g.Width() || b.Y >= g.Height() {
			return false
		}
		if b.Y >= 0 && g.Get(b.X, b.Y) != Empty {
			return false
		}
	}
	return true
}

// Lock merges p into g, clears full rows, and returns the resulting grid with
// the number of lines cleared and the score earned. Cells of p above the top
// edge are dropped.
func Lock(p Piece, g Grid) (Grid, int, int) {
	blocks := p.Blocks()
	visible := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Y >= 0 {
			visible = append(visible, b)
		}
	}

	merged := g.WithCellsSet(visible)
	cleared, lines := merged.RemoveFullRowsAndCompact()
	return cleared, lines, lines * PointsPerLine
}
