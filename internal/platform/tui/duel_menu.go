package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blastpong/internal/config"
	"github.com/vovakirdan/blastpong/internal/core"
)

// DuelSelection holds the user's selection from the Duel menu.
type DuelSelection struct {
	Preset config.DifficultyPreset
}

// duelOption pairs a preset with its menu description.
type duelOption struct {
	preset config.DifficultyPreset
	label  string
	detail string
}

var duelOptions = []duelOption{
	{config.DifficultyEasy, "Easy", "sloppy CPU aim, slower paddle"},
	{config.DifficultyNormal, "Normal", "tracking as configured"},
	{config.DifficultyHard, "Hard", "tight aim, full-speed paddle"},
}

// DuelModeModel lets users choose the CPU difficulty for the duel.
type DuelModeModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection DuelSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewDuelModeModel creates a new Duel difficulty selection model.
func NewDuelModeModel(width, height int) DuelModeModel {
	return DuelModeModel{
		cursor:    1, // Normal preselected
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DuelModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DuelModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DuelModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(duelOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = DuelSelection{Preset: duelOptions[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m DuelModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B L A S T   D U E L", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range duelOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-6s - %s", cursor, opt.label, opt.detail)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m DuelModeModel) Selected() *DuelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m DuelModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m DuelModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DuelModeModel) WantsBack() bool {
	return m.back
}

// RunDuelSelector runs the Duel difficulty selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunDuelSelector(cfg core.RuntimeConfig) (*DuelSelection, core.RuntimeConfig, error) {
	model := NewDuelModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(DuelModeModel)
	if !ok {
		return nil, cfg, nil
	}

	// Carry any resize that happened while the selector was up.
	cfg.ScreenW = m.width
	cfg.ScreenH = m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
