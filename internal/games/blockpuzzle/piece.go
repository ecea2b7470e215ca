package blockpuzzle

import "github.com/vovakirdan/blockpuzzle/internal/core"

// Piece is the falling shape instance: a shape anchored at (X, Y), the
// top-left of its bounding box, in grid coordinates.
// Pieces are values; transforms return a candidate and never modify the receiver.
type Piece struct {
	Shape Shape
	X, Y  int
	Color core.Color
}

// SpawnPiece places a shape horizontally centered on the top row.
func SpawnPiece(shape Shape, color core.Color, gridWidth int) Piece {
	return Piece{
		Shape: shape,
		X:     (gridWidth - shape.Width()) / 2,
		Y:     0,
		Color: color,
	}
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece with its shape turned clockwise about the same anchor.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Blocks returns the absolute positions of the piece's occupied cells.
// Positions above the grid (Y < 0) are included.
func (p Piece) Blocks() []Block {
	anchor := core.Point{X: p.X, Y: p.Y}
	offsets := p.Shape.Offsets()
	blocks := make([]Block, len(offsets))
	for i, o := range offsets {
		at := anchor.Add(o)
		blocks[i] = Block{X: at.X, Y: at.Y, Color: p.Color}
	}
	return blocks
}
