// Package tui provides the Bubble Tea integration for the block puzzle.
// It maps keys to runner requests and paints the views the runner publishes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockpuzzle/internal/loop"
)

// ViewMsg carries a view published by the runner.
type ViewMsg loop.View

// RunnerDoneMsg is sent once the runner's update channel is closed.
type RunnerDoneMsg struct{}

// waitForView returns a command that blocks until the runner publishes.
// The model re-issues it after every ViewMsg, so the game clock lives in the
// runner and Bubble Tea only repaints.
func waitForView(updates <-chan loop.View) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-updates
		if !ok {
			return RunnerDoneMsg{}
		}
		return ViewMsg(v)
	}
}
