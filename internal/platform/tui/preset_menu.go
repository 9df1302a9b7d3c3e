package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// presetOrder is the order presets are listed in the menu.
var presetOrder = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// PresetModel lets users choose a difficulty preset before playing.
type PresetModel struct {
	base     config.SnakeConfig
	cursor   int
	width    int
	height   int
	keys     KeyMap
	selected config.DifficultyPreset
	choosing bool
	quitting bool
}

// NewPresetModel creates a preset menu. base is the loaded config that each
// preset is applied to when describing its pacing.
func NewPresetModel(base config.SnakeConfig, width, height int) PresetModel {
	return PresetModel{
		base:     base,
		cursor:   1, // Normal
		width:    width,
		height:   height,
		keys:     DefaultKeyMap(),
		choosing: true,
	}
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m PresetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapMenu(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(presetOrder)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = presetOrder[m.cursor]
		m.choosing = false
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m PresetModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range presetOrder {
		line := fmt.Sprintf("  %-7s %s", p, m.describe(p))
		if i == m.cursor {
			line = "> " + line[2:]
			b.WriteString(centerText(menuCursorStyle.Render(line), m.width))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	hint := "Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render(hint), m.width))

	return b.String()
}

// describe summarises the pacing a preset gives on top of the base config.
func (m PresetModel) describe(p config.DifficultyPreset) string {
	cfg := m.base
	config.ApplySnakePreset(&cfg, p)
	d := cfg.Difficulty
	if d.EffectiveMaxLevel() == 0 {
		return fmt.Sprintf("steady %dms", d.BaseInterval.Milliseconds())
	}
	return fmt.Sprintf("%dms → %dms", d.BaseInterval.Milliseconds(), d.FastestInterval().Milliseconds())
}

// Selected returns the chosen preset and whether a choice was made.
func (m PresetModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing || m.quitting {
		return "", false
	}
	return m.selected, true
}

// centerText centers text within given width. Styled text is measured by its
// visible width.
func centerText(text string, width int) string {
	textW := lipgloss.Width(text)
	if textW >= width {
		return text
	}
	return strings.Repeat(" ", (width-textW)/2) + text
}

// RunPresetSelector shows the preset menu. ok is false when the user quit
// without choosing.
func RunPresetSelector(base config.SnakeConfig, cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	model := NewPresetModel(base, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isPreset := finalModel.(PresetModel)
	if !isPreset {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}
