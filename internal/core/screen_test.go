package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	require.Equal(t, 80, s.Width())
	require.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))
	assert.Equal(t, ColorDefault, s.GetCell(5, 5).Color)

	s.SetColored(2, 3, '█', ColorCyan)
	assert.Equal(t, Cell{Rune: '█', Color: ColorCyan}, s.GetCell(2, 3))

	// Out of bounds writes are ignored, reads return blanks
	assert.NotPanics(t, func() {
		s.Set(-1, 0, 'A')
		s.Set(100, 0, 'A')
		s.Set(0, -1, 'A')
		s.Set(0, 100, 'A')
	})
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 4; y++ {
		assert.Equal(t, "    ", s.Row(y))
		assert.Equal(t, ColorDefault, s.GetCell(0, y).Color)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')

	s.Resize(20, 5)
	assert.Equal(t, 20, s.Width())
	assert.Equal(t, 5, s.Height())
	assert.Equal(t, ' ', s.Get(1, 1))
}

func TestDrawText(t *testing.T) {
	s := NewScreen(12, 3)

	s.DrawText(1, 0, "Score")
	assert.Equal(t, " Score      ", s.Row(0))

	s.DrawTextColored(10, 1, "clipped", ColorYellow)
	assert.Equal(t, "          cl", s.Row(1))
	assert.Equal(t, ColorYellow, s.GetCell(11, 1).Color)

	s.DrawTextCentered(2, "ab")
	assert.Equal(t, "     ab     ", s.Row(2))
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	assert.Equal(t, "┌──┐\n│  │\n└──┘", s.String())
	assert.Equal(t, ColorGray, s.GetCell(0, 1).Color)
	assert.Equal(t, ColorDefault, s.GetCell(1, 1).Color)
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	lines := strings.Split(s.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a  ", lines[0])
	assert.Equal(t, "  b", lines[1])
	assert.Equal(t, "   ", s.Row(-1))
}
