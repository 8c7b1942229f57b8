package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/core"
)

// difficultyChoices are the presets offered on the level selector.
// The empty preset keeps the config as loaded.
var difficultyChoices = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "config"
	}
	return string(p)
}

// LevelSelection holds the user's choice from the level selector.
type LevelSelection struct {
	Level      string
	Difficulty config.DifficultyPreset
}

// LevelSelectModel lets users pick a level and a difficulty preset.
// Left/Right cycles the difficulty.
type LevelSelectModel struct {
	title     string
	levels    []config.LevelInfo
	cursor    int
	diff      int
	width     int
	height    int
	keyMapper *KeyMapper
	selection LevelSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a level selector for the given mode title,
// starting on the current level and difficulty when they are listed.
func NewLevelSelectModel(title string, levels []config.LevelInfo, current string, preset config.DifficultyPreset, width, height int) LevelSelectModel {
	m := LevelSelectModel{
		title:     title,
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	if current == "" {
		current = config.DefaultLevel
	}
	for i, l := range levels {
		if l.ID == current {
			m.cursor = i
		}
	}
	for i, p := range difficultyChoices {
		if p == preset {
			m.diff = i
		}
	}
	return m
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.diff = (m.diff + len(difficultyChoices) - 1) % len(difficultyChoices)
	case MenuActionRight:
		m.diff = (m.diff + 1) % len(difficultyChoices)
	case MenuActionSelect:
		if len(m.levels) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = LevelSelection{
			Level:      m.levels[m.cursor].ID,
			Difficulty: difficultyChoices[m.diff],
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title)+" - SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText("No levels found", m.width))
		b.WriteString("\n")
	}
	for i, l := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-24s %s", cursor, l.Title, l.Source)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", presetLabel(difficultyChoices[m.diff])), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Play  |  Left/Right: Difficulty  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelSelectModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selector for a mode. A nil selection means
// the user backed out or quit.
func RunLevelSelector(title, current string, preset config.DifficultyPreset, cfg core.RuntimeConfig) (*LevelSelection, core.RuntimeConfig, error) {
	model := NewLevelSelectModel(title, config.ListLevels(), current, preset, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
