package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockpuzzle/internal/config"
	"github.com/vovakirdan/blockpuzzle/internal/core"
	"github.com/vovakirdan/blockpuzzle/internal/platform/tui"
)

var (
	flagSeed         int64
	flagFallInterval time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/H       - Move left
  Right/L      - Move right
  Down/J       - Move down one row
  Up/K/X       - Rotate clockwise
  P            - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot to ~/.blockpuzzle/screenshots
  Q/Ctrl+C     - Quit

With --log-level debug, events are written to ~/.blockpuzzle/play.log.

Examples:
  blockpuzzle play
  blockpuzzle play --seed 42
  blockpuzzle play --fall-interval 300ms`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().DurationVar(&flagFallInterval, "fall-interval", 0, "Override the automatic descent period")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	puzzleCfg, _, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := puzzleCfg.Apply(core.DefaultConfig())
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.Seed = flagSeed
	if cmd.Flags().Changed("fall-interval") {
		if flagFallInterval <= 0 {
			return fmt.Errorf("--fall-interval must be positive, got %s", flagFallInterval)
		}
		cfg.FallInterval = flagFallInterval
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("game started", "grid", fmt.Sprintf("%dx%d", cfg.GridW, cfg.GridH), "fall_interval", cfg.FallInterval, "seed", cfg.Seed)

	var shotDir string
	if home := config.HomeDir(); home != "" {
		shotDir = filepath.Join(home, "screenshots")
	}

	if err := tui.Run(cmd.Context(), tui.Settings{
		Config:        cfg,
		ShowHelp:      puzzleCfg.Render.ShowHelp,
		ScreenshotDir: shotDir,
	}, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// playLogger logs to ~/.blockpuzzle/play.log at debug level and discards
// otherwise; the alt screen owns the terminal while playing.
func playLogger() (*log.Logger, func(), error) {
	logger, err := newLogger(io.Discard, "blockpuzzle")
	if err != nil {
		return nil, nil, err
	}
	if logger.GetLevel() > log.DebugLevel {
		return logger, func() {}, nil
	}

	dir := config.HomeDir()
	if dir == "" {
		return logger, func() {}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "play.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, func() { f.Close() }, nil
}
