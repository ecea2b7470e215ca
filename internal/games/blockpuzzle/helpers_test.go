package blockpuzzle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockpuzzle/internal/core"
)

// Catalog indices, in draw order.
const (
	shapeBar = iota
	shapeSquare
	shapeT
	shapeZ
	shapeS
)

// scriptedRand replays fixed draws and then returns 0 forever.
type scriptedRand struct {
	vals []int
	i    int
}

func draws(vals ...int) *scriptedRand {
	return &scriptedRand{vals: vals}
}

func (r *scriptedRand) Intn(n int) int {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i]
	r.i++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted draw %d out of range [0,%d)", v, n))
	}
	return v
}

// gridFromText builds a grid from rows of '.' (empty) and '#' (red).
func gridFromText(rows ...string) Grid {
	out := make([][]core.Color, len(rows))
	for y, row := range rows {
		out[y] = make([]core.Color, len(row))
		for x, r := range row {
			if r == '#' {
				out[y][x] = core.ColorRed
			}
		}
	}
	return GridFromRows(out)
}

// gridText renders a grid back to '.'/'#' rows.
func gridText(rows [][]core.Color) string {
	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}

// emptyRows returns n rows of width w as text.
func emptyRows(w, n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return rows
}
