package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockpuzzle/internal/config"
)

func TestPrintShapes(t *testing.T) {
	var buf bytes.Buffer
	printShapes(&buf)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "5 shapes, 6 colors\n"))
	for _, name := range []string{"bar", "square"} {
		assert.Contains(t, out, name)
	}
	// The bar lying flat and standing up.
	assert.Contains(t, out, "####")
	assert.Contains(t, out, "#   ")
}

func TestPrintConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 12\n"), 0o644))

	old := flagConfig
	flagConfig = path
	t.Cleanup(func() { flagConfig = old })

	var buf bytes.Buffer
	require.NoError(t, printConfig(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "# source: "+path))

	var got config.PuzzleConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 12, got.Grid.Width)
	assert.Equal(t, 20, got.Grid.Height)
}

func TestPrintConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  cell_width: 5\n"), 0o644))

	old := flagConfig
	flagConfig = path
	t.Cleanup(func() { flagConfig = old })

	err := printConfig(&bytes.Buffer{})
	assert.ErrorContains(t, err, "render.cell_width")
}

func TestNewLoggerLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "debug"
	logger, err := newLogger(&bytes.Buffer{}, "test")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	flagLogLevel = "loud"
	_, err = newLogger(&bytes.Buffer{}, "test")
	assert.Error(t, err)
}
