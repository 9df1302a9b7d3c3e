package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of rows reserved below the board for the key legend.
const helpHeight = 1

// Model is the Bubble Tea model that drives a snake game.
type Model struct {
	game          *snake.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game. cfg holds the
// full terminal size; one row is kept for the key legend. A nil logger
// discards output.
func NewModel(game *snake.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	h := help.New()
	h.Width = cfg.ScreenW

	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".snake", "screenshots")
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		screenshotDir: dir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started",
		"seed", m.config.Seed,
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"interval", m.game.Interval(),
	)
	return tickCmd(m.game.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions. They are applied in order on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(a)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height, "too_small", m.game.TooSmall())

	return m, nil
}

// handleTick runs one simulation step and schedules the next tick with the
// interval the game reports afterwards.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State
	m.logEvents(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.game.Interval())
}

func (m Model) logEvents(result core.StepResult) {
	for _, ev := range result.Events {
		switch ev {
		case core.EventLevelUp:
			m.logger.Info("level up", "difficulty", result.State.Level, "interval", m.game.Interval())
		case core.EventGameOver:
			reason := snake.ReasonNone
			if s := m.game.Session(); s != nil {
				reason = s.Reason()
			}
			m.logger.Info("game over", "score", result.State.Score, "difficulty", result.State.Level, "reason", reason)
		case core.EventRestart:
			m.logger.Info("restart")
		case core.EventAte:
			m.logger.Debug("ate", "score", result.State.Score)
		}
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		m.logger.Warn("screenshot skipped: no home directory")
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *snake.Game, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
