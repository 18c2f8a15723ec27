package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kite/internal/core"
	"github.com/vovakirdan/tui-kite/internal/games/kite"
)

// Rows below the game screen reserved for the key help.
const helpRows = 1

// Model is the Bubble Tea model for one kite session.
type Model struct {
	game          *kite.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          *KeyMapper
	help          help.Model
	logger        *log.Logger
	screenshotDir string

	gen      uint64 // Current tick run; bumped on every start and restart
	ticking  bool   // A tick for gen is in flight
	phase    kite.Phase
	quitting bool
}

// NewModel creates a model for game sized to cfg's screen. The game is reset
// immediately and waits idle for the first flap. A nil logger discards.
func NewModel(game *kite.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rc := cfg
	rc.ScreenH = gameHeight(cfg.ScreenH)
	game.Reset(rc)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(rc.ScreenW, rc.ScreenH),
		config: rc,
		keys:   NewKeyMapper(),
		help:   h,
		logger: logger,
		phase:  game.Phase(),
	}
}

// WithScreenshotDir sets where ctrl+s screenshots are written.
// The default is ~/.kite/screenshots.
func (m Model) WithScreenshotDir(dir string) Model {
	m.screenshotDir = dir
	return m
}

func gameHeight(termH int) int {
	return core.Max(termH-helpRows, 0)
}

// Init sets the window title. Nothing ticks until the first flap.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(kite.Title)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.keys.MapMouse(msg) == core.ActionJump {
			in := core.NewInputFrame()
			in.Set(core.ActionJump)
			return m.apply(in)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	in := core.NewInputFrame()
	if m.keys.MapKeyToFrame(msg, &in) {
		m.quitting = true
		return m, tea.Quit
	}
	if in.Empty() {
		return m, nil
	}
	return m.apply(in)
}

// apply feeds input to the game between ticks and starts a tick run when the
// round begins.
func (m Model) apply(in core.InputFrame) (tea.Model, tea.Cmd) {
	if m.game.Apply(in) {
		// Any tick still in flight belongs to the old round
		m.gen++
		m.ticking = false
	}
	m.observe(m.game.Snapshot())

	if m.phase == kite.PhaseRunning && !m.ticking {
		m.gen++
		m.ticking = true
		return m, tickCmd(m.gen, m.config.Interval())
	}
	return m, nil
}

// handleTick advances the simulation and re-arms the tick while running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.game.Phase() != kite.PhaseRunning {
		return m, nil
	}

	m.observe(m.game.Advance())

	if m.phase != kite.PhaseRunning {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.gen, m.config.Interval())
}

// observe logs phase transitions.
func (m *Model) observe(snap kite.Snapshot) {
	if snap.Phase() == m.phase {
		return
	}
	m.logger.Debug("phase changed",
		"from", m.phase,
		"to", snap.Phase(),
		"score", snap.State.Score,
		"tick", snap.Tick,
	)
	m.phase = snap.Phase()
}

// handleResize processes window resize events. The game only rebuilds its
// field while idle.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := gameHeight(msg.Height)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = h
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".kite", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game *kite.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
