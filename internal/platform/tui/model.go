package tui

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockpuzzle/internal/core"
	"github.com/vovakirdan/blockpuzzle/internal/games/blockpuzzle"
	"github.com/vovakirdan/blockpuzzle/internal/loop"
)

// Settings configures a game screen.
type Settings struct {
	Config   core.RuntimeConfig
	ShowHelp bool

	// ScreenshotDir receives ctrl+s screen dumps. Empty disables them.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one game. The runner owns the engine;
// the model only forwards requests and paints the latest view.
type Model struct {
	runner     *loop.Runner
	settings   Settings
	keys       KeyMap
	screenshot key.Binding
	help       help.Model
	screen     *core.Screen
	view       loop.View
	hasView    bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model around a started runner.
func NewModel(runner *loop.Runner, s Settings) Model {
	h := help.New()
	h.Width = s.Config.ScreenW

	m := Model{
		runner:   runner,
		settings: s,
		keys:     DefaultKeyMap(),
		screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		help: h,
	}
	m.screen = core.NewScreen(s.Config.ScreenW, m.boardHeight(s.Config.ScreenH))
	return m
}

// RunnerOptions builds runner options from a runtime config.
// A zero seed is replaced with the current time.
func RunnerOptions(cfg core.RuntimeConfig, logger *log.Logger) loop.Options {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return loop.Options{
		Width:        cfg.GridW,
		Height:       cfg.GridH,
		FallInterval: cfg.FallInterval,
		Rand:         rand.New(rand.NewSource(seed)), //nolint:gosec // gameplay randomness
		Logger:       logger,
	}
}

// Init starts listening for runner views.
func (m Model) Init() tea.Cmd {
	return waitForView(m.runner.Updates())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ViewMsg:
		m.view = loop.View(msg)
		m.hasView = true
		return m, waitForView(m.runner.Updates())

	case RunnerDoneMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.settings.Config.ScreenW = msg.Width
		m.settings.Config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, m.boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.screenshot) {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.runner.Stop()
		return m, tea.Quit
	case core.ActionPause:
		m.runner.TogglePause()
	case core.ActionRestart:
		if m.view.GameOver {
			m.runner.Reset()
		}
	default:
		if cmd, ok := blockpuzzle.CommandForAction(action); ok {
			m.runner.Send(cmd)
		}
	}
	return m, nil
}

// boardHeight is the screen height left for the board after the help line.
func (m Model) boardHeight(h int) int {
	if m.settings.ShowHelp {
		h--
	}
	return max(h, 1)
}

func (m Model) paint() {
	blockpuzzle.Render(m.screen, m.view.Snapshot, blockpuzzle.RenderOptions{
		CellWidth: m.settings.Config.CellWidth,
		Paused:    m.view.Paused,
	})
}

// saveScreenshot writes the current screen as plain text and returns the path.
func (m Model) saveScreenshot() (string, error) {
	if m.settings.ScreenshotDir == "" || !m.hasView {
		return "", nil
	}
	m.paint()

	if err := os.MkdirAll(m.settings.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	name := fmt.Sprintf("blockpuzzle_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.settings.ScreenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || !m.hasView {
		return ""
	}

	m.paint()
	out := RenderScreen(m.screen)
	if m.settings.ShowHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run plays one local game until the player quits.
func Run(ctx context.Context, s Settings, logger *log.Logger) error {
	runner := loop.Start(ctx, RunnerOptions(s.Config, logger))
	defer runner.Stop()

	p := tea.NewProgram(
		NewModel(runner, s),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
