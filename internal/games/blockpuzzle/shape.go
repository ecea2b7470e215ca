// Package blockpuzzle implements the falling-block puzzle engine: the shape
// catalog, the playfield grid, collision checks, piece transforms, locking with
// line clears, and the spawn/fall/lock state machine that ties them together.
//
// The package is pure: no timers, no goroutines, no I/O. Randomness is injected
// so games are reproducible from a seed.
package blockpuzzle

import (
	"strings"

	"github.com/vovakirdan/blockpuzzle/internal/core"
)

// Shape is a rectangular occupancy matrix, indexed [row][col].
// Shapes are treated as immutable: transforms return new matrices.
type Shape [][]bool

// Rand is the random source used for piece generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// catalog holds the fixed set of shapes, drawn uniformly.
var catalog = []Shape{
	parseShape("####"),     // bar
	parseShape("##", "##"), // square
	parseShape("###", ".#."),
	parseShape("##.", ".##"),
	parseShape(".##", "##."),
}

// shapeNames matches catalog order.
var shapeNames = []string{"bar", "square", "T", "Z", "S"}

// Palette is the fixed set of piece colors, drawn uniformly and
// independently of the shape.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
}

// parseShape builds a shape from rows of '#' (occupied) and '.' (empty).
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, r := range row {
			s[y][x] = r == '#'
		}
	}
	return s
}

// RandomShape draws a shape and then a color from r.
// The returned shape is a copy; callers may not reach catalog storage through it.
func RandomShape(r Rand) (Shape, core.Color) {
	shape := catalog[r.Intn(len(catalog))]
	color := Palette[r.Intn(len(Palette))]
	return shape.Clone(), color
}

// Catalog returns copies of all catalog shapes with their names.
func Catalog() ([]Shape, []string) {
	shapes := make([]Shape, len(catalog))
	for i, s := range catalog {
		shapes[i] = s.Clone()
	}
	names := make([]string, len(shapeNames))
	copy(names, shapeNames)
	return shapes, names
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = make([]bool, len(s[y]))
		copy(out[y], s[y])
	}
	return out
}

// Rotate returns the shape turned 90° clockwise. Rows and columns swap:
// new[i][j] = old[rows-1-j][i].
func (s Shape) Rotate() Shape {
	rows, cols := s.Height(), s.Width()
	out := make(Shape, cols)
	for i := 0; i < cols; i++ {
		out[i] = make([]bool, rows)
		for j := 0; j < rows; j++ {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Offsets returns the (col, row) offsets of occupied cells, row-major.
func (s Shape) Offsets() []core.Point {
	var pts []core.Point
	for y, row := range s {
		for x, filled := range row {
			if filled {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the shape with '#' and '.' rows separated by newlines.
func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
