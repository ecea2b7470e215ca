package blockpuzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockpuzzle/internal/core"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(10, 20)

	require.Equal(t, 10, g.Width())
	require.Equal(t, 20, g.Height())
	assert.Zero(t, g.FilledCount())
	assert.Equal(t, Empty, g.Get(9, 19))
}

func TestNewGridRejectsBadSize(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 20) })
	assert.Panics(t, func() { NewGrid(10, -1) })
}

func TestGridGetOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(4, 4)

	for _, pt := range []core.Point{{X: -1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 4}} {
		assert.Panics(t, func() { g.Get(pt.X, pt.Y) }, "(%d,%d)", pt.X, pt.Y)
	}
}

func TestWithCellsSetReturnsCopy(t *testing.T) {
	g := NewGrid(4, 4)

	next := g.WithCellsSet([]Block{{X: 1, Y: 2, Color: core.ColorGreen}})

	assert.Equal(t, core.ColorGreen, next.Get(1, 2))
	assert.Equal(t, Empty, g.Get(1, 2), "original grid must not change")
	assert.Panics(t, func() { g.WithCellsSet([]Block{{X: 4, Y: 0, Color: core.ColorRed}}) })
}

func TestRemoveFullRowsAndCompact(t *testing.T) {
	tests := []struct {
		name  string
		in    []string
		want  []string
		lines int
	}{
		{
			name:  "no full rows",
			in:    []string{"....", "#...", "###."},
			want:  []string{"....", "#...", "###."},
			lines: 0,
		},
		{
			name:  "bottom row",
			in:    []string{"....", ".#..", "####"},
			want:  []string{"....", "....", ".#.."},
			lines: 1,
		},
		{
			name:  "two separated rows at once",
			in:    []string{"#...", "####", ".#..", "####", "..#."},
			want:  []string{"....", "....", "#...", ".#..", "..#."},
			lines: 2,
		},
		{
			name:  "every row",
			in:    []string{"####", "####"},
			want:  []string{"....", "...."},
			lines: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFromText(tc.in...)

			out, lines := g.RemoveFullRowsAndCompact()

			assert.Equal(t, tc.lines, lines)
			assert.Equal(t, strings.Join(tc.want, "\n"), gridText(out.Rows()))
			assert.Equal(t, g.Width(), out.Width())
			assert.Equal(t, g.Height(), out.Height())
			assert.Equal(t, strings.Join(tc.in, "\n"), gridText(g.Rows()), "input grid must not change")
		})
	}
}

func TestRowsIsDeepCopy(t *testing.T) {
	g := gridFromText("#.", "..")
	rows := g.Rows()
	rows[0][0] = Empty

	assert.Equal(t, core.ColorRed, g.Get(0, 0))
}

func TestGridFromRowsRejectsRagged(t *testing.T) {
	assert.Panics(t, func() {
		GridFromRows([][]core.Color{{Empty, Empty}, {Empty}})
	})
}
