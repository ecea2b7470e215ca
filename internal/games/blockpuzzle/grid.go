package blockpuzzle

import (
	"fmt"

	"github.com/vovakirdan/blockpuzzle/internal/core"
)

// Empty is the value of an unoccupied grid cell.
const Empty = core.ColorDefault

// Block is a single colored cell at an absolute grid position.
type Block struct {
	X, Y  int
	Color core.Color
}

// Grid is the fixed-size playfield. Row 0 is the top.
// A Grid is a value: mutating operations return a new Grid and leave the
// receiver untouched.
type Grid struct {
	width  int
	height int
	cells  []core.Color // row-major, width*height
}

// NewGrid creates an all-empty grid. Panics on non-positive dimensions.
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("blockpuzzle: invalid grid size %dx%d", width, height))
	}
	return Grid{
		width:  width,
		height: height,
		cells:  make([]core.Color, width*height),
	}
}

// GridFromRows builds a grid from explicit rows. All rows must have the same
// non-zero length.
func GridFromRows(rows [][]core.Color) Grid {
	if len(rows) == 0 {
		panic("blockpuzzle: grid needs at least one row")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			panic(fmt.Sprintf("blockpuzzle: row %d has width %d, want %d", y, len(row), g.width))
		}
		copy(g.cells[y*g.width:], row)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell.
func (g Grid) InBounds(x, y int) bool {
	return core.NewRect(0, 0, g.width, g.height).Contains(x, y)
}

// Get returns the cell at (x, y). Out-of-bounds access is a caller bug and panics.
func (g Grid) Get(x, y int) core.Color {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("blockpuzzle: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return g.cells[y*g.width+x]
}

// WithCellsSet returns a copy of the grid with the given blocks written.
// Every block must be in bounds.
func (g Grid) WithCellsSet(blocks []Block) Grid {
	out := g.clone()
	for _, b := range blocks {
		if !g.InBounds(b.X, b.Y) {
			panic(fmt.Sprintf("blockpuzzle: block (%d,%d) outside %dx%d grid", b.X, b.Y, g.width, g.height))
		}
		out.cells[b.Y*g.width+b.X] = b.Color
	}
	return out
}

// RemoveFullRowsAndCompact drops every full row in one pass and pads the top
// with as many empty rows. Returns the new grid and the number of rows removed.
func (g Grid) RemoveFullRowsAndCompact() (Grid, int) {
	out := NewGrid(g.width, g.height)

	// Copy surviving rows bottom-up so they settle against the floor.
	dst := g.height - 1
	for y := g.height - 1; y >= 0; y-- {
		if g.rowFull(y) {
			continue
		}
		copy(out.cells[dst*g.width:(dst+1)*g.width], g.cells[y*g.width:(y+1)*g.width])
		dst--
	}
	return out, dst + 1
}

func (g Grid) rowFull(y int) bool {
	for _, c := range g.cells[y*g.width : (y+1)*g.width] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the grid as rows of colors.
func (g Grid) Rows() [][]core.Color {
	rows := make([][]core.Color, g.height)
	for y := range rows {
		rows[y] = make([]core.Color, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// FilledCount returns the number of non-empty cells.
func (g Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

func (g Grid) clone() Grid {
	out := Grid{width: g.width, height: g.height, cells: make([]core.Color, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}
