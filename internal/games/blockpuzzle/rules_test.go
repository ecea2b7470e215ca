package blockpuzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockpuzzle/internal/core"
)

func TestIsValid(t *testing.T) {
	grid := gridFromText(
		"....",
		"....",
		"#...",
		"##..",
	)
	square := parseShape("##", "##")
	bar := parseShape("#", "#", "#", "#")

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"free space", Piece{Shape: square, X: 2, Y: 2}, true},
		{"left wall", Piece{Shape: square, X: -1, Y: 0}, false},
		{"right wall", Piece{Shape: square, X: 3, Y: 0}, false},
		{"below floor", Piece{Shape: square, X: 2, Y: 3}, false},
		{"overlaps stack", Piece{Shape: square, X: 0, Y: 1}, false},
		{"touching stack", Piece{Shape: square, X: 1, Y: 0}, true},
		{"above top is allowed", Piece{Shape: bar, X: 3, Y: -3}, true},
		{"mostly above top", Piece{Shape: bar, X: 1, Y: -2}, true},
		{"above top and overlapping", Piece{Shape: bar, X: 0, Y: -1}, false},
		{"above top but off the side", Piece{Shape: bar, X: 4, Y: -4}, false},
		{"empty corners of T ignored", Piece{Shape: parseShape("###", ".#."), X: 1, Y: 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValid(tc.piece, grid))
		})
	}
}

// A straightforward restatement of the placement rule, checked against every
// anchor position for every catalog shape and rotation.
func TestIsValidMatchesRuleEverywhere(t *testing.T) {
	grid := gridFromText(
		".....",
		".....",
		"..#..",
		".....",
		"#...#",
	)
	shapes, _ := Catalog()

	for _, s := range shapes {
		for iter := 0; iter < 4; iter++ {
			for y := -4; y <= grid.Height(); y++ {
				for x := -4; x <= grid.Width(); x++ {
					p := Piece{Shape: s, X: x, Y: y, Color: core.ColorRed}

					want := true
					for _, b := range p.Blocks() {
						outside := b.X < 0 || b.X >= grid.Width() || b.Y >= grid.Height()
						if outside || (b.Y >= 0 && grid.Get(b.X, b.Y) != Empty) {
							want = false
						}
					}
					require.Equal(t, want, IsValid(p, grid), "shape\n%s\nat (%d,%d)", s, x, y)
				}
			}
			s = s.Rotate()
		}
	}
}

func TestLockClearsCompletedRow(t *testing.T) {
	rows := emptyRows(10, 20)
	rows[18] = "...#......"
	rows[19] = "#########."
	grid := gridFromText(rows...)
	dot := Piece{Shape: parseShape("#"), X: 9, Y: 19, Color: core.ColorBlue}

	out, lines, delta := Lock(dot, grid)

	assert.Equal(t, 1, lines)
	assert.Equal(t, 100, delta)
	assert.Equal(t, 10, out.Width())
	assert.Equal(t, 20, out.Height())

	want := emptyRows(10, 20)
	want[19] = "...#......"
	assert.Equal(t, strings.Join(want, "\n"), gridText(out.Rows()))
}

func TestLockClearsTwoRowsInOneCall(t *testing.T) {
	rows := emptyRows(10, 20)
	rows[17] = "#........."
	rows[18] = "#########."
	rows[19] = "#########."
	grid := gridFromText(rows...)
	pair := Piece{Shape: parseShape("#", "#"), X: 9, Y: 18, Color: core.ColorGreen}

	out, lines, delta := Lock(pair, grid)

	assert.Equal(t, 2, lines)
	assert.Equal(t, 200, delta)
	assert.Equal(t, 1, out.FilledCount())
	assert.Equal(t, core.ColorRed, out.Get(0, 19))
}

func TestLockWritesPieceColor(t *testing.T) {
	grid := NewGrid(6, 6)
	p := Piece{Shape: parseShape("###", ".#."), X: 1, Y: 4, Color: core.ColorMagenta}

	out, lines, delta := Lock(p, grid)

	assert.Zero(t, lines)
	assert.Zero(t, delta)
	for _, b := range p.Blocks() {
		assert.Equal(t, core.ColorMagenta, out.Get(b.X, b.Y))
	}
	assert.Equal(t, 4, out.FilledCount())
	assert.Zero(t, grid.FilledCount(), "input grid must not change")
}

func TestLockDropsCellsAboveTop(t *testing.T) {
	grid := NewGrid(5, 5)
	p := Piece{Shape: parseShape("###", ".#."), X: 1, Y: -1, Color: core.ColorRed}

	var out Grid
	require.NotPanics(t, func() { out, _, _ = Lock(p, grid) })

	assert.Equal(t, 1, out.FilledCount())
	assert.Equal(t, core.ColorRed, out.Get(2, 0))
}

func TestDropAndLockConservesCells(t *testing.T) {
	rows := emptyRows(8, 10)
	rows[9] = "##.#####"
	grid := gridFromText(rows...)
	shapes, _ := Catalog()

	for _, s := range shapes {
		p := SpawnPiece(s, core.ColorCyan, grid.Width())
		require.True(t, IsValid(p, grid))

		for {
			next := p.Moved(0, 1)
			if !IsValid(next, grid) {
				break
			}
			p = next
		}

		before := grid.FilledCount()
		out, lines, _ := Lock(p, grid)
		assert.Equal(t, before+len(p.Blocks())-lines*grid.Width(), out.FilledCount(), "shape\n%s", s)
	}
}
