// blockpuzzle is a falling-block puzzle for the terminal.
//
// Usage:
//
//	blockpuzzle play         - Play in this terminal
//	blockpuzzle serve        - Start SSH server for remote play
//	blockpuzzle shapes       - Print the shape catalog with rotations
//	blockpuzzle config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.blockpuzzle, ./configs)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockpuzzle",
	Short: "Block Puzzle - falling blocks in your terminal",
	Long: `Block Puzzle drops random pieces into a grid. Move and rotate them
to complete rows; every cleared row scores 100 points. The game ends when
a new piece has no room to appear.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  shapes   - Print the shape catalog
  config   - Print the effective configuration

Examples:
  blockpuzzle play
  blockpuzzle play --seed 42 --fall-interval 500ms
  blockpuzzle serve --ssh :2222
  blockpuzzle config --config ./configs/blockpuzzle.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}
